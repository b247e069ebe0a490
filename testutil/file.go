package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const settleDelay = 100 * time.Millisecond

// WriteTempFile writes data to a file called name inside a fresh temporary
// directory. The returned function removes the directory.
func WriteTempFile(t testing.TB, name string, data []byte) (string, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "shadigest-test")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, data, 0600); err != nil {
		os.RemoveAll(dir)
		t.Fatalf("write temp file: %v", err)
	}
	return path, func() { os.RemoveAll(dir) }
}

// SettleFiles waits until files written just before are old enough for
// their digests to be cached.
func SettleFiles() {
	time.Sleep(settleDelay)
}
