package ccache

import (
	"os"
	"syscall"
	"time"
)

func fileIdentity(info os.FileInfo) (inode uint64, ctime int64, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return uint64(st.Ino), time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)).UnixNano(), true
}
