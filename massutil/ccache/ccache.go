package ccache

import (
	"os"
	"sync"

	"github.com/golang/groupcache/lru"
	"massnet.org/shadigest/sha256"
)

// FileKey identifies one version of a file's contents. Times are in
// nanoseconds since the epoch. ChangeTime is the inode change time, which
// user space can not set, so restoring the mtime after a rewrite still
// yields a new key.
type FileKey struct {
	Path       string
	Size       int64
	ModTime    int64
	Inode      uint64
	ChangeTime int64
	Double     bool
}

// NewFileKey builds the cache key for a file from its stat info. ok is
// false when the platform does not report the inode and change time; such
// files must not be cached.
func NewFileKey(path string, info os.FileInfo, double bool) (key FileKey, ok bool) {
	inode, ctime, ok := fileIdentity(info)
	if !ok {
		return FileKey{}, false
	}
	return FileKey{
		Path:       path,
		Size:       info.Size(),
		ModTime:    info.ModTime().UnixNano(),
		Inode:      inode,
		ChangeTime: ctime,
		Double:     double,
	}, true
}

// DigestCache is a concurrent safe lru cache of file digests.
type DigestCache struct {
	l      sync.Mutex
	cache  *lru.Cache
	hits   uint64
	misses uint64
}

// NewDigestCache returns a cache holding at most maxEntries digests.
// Zero means no limit.
func NewDigestCache(maxEntries int) *DigestCache {
	return &DigestCache{
		cache: lru.New(maxEntries),
	}
}

func (c *DigestCache) Get(key FileKey) (sha256.Hash, bool) {
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(key)
	if !ok {
		c.misses++
		return sha256.Hash{}, false
	}
	c.hits++
	return v.(sha256.Hash), true
}

func (c *DigestCache) Add(key FileKey, h sha256.Hash) {
	c.l.Lock()
	c.cache.Add(key, h)
	c.l.Unlock()
}

func (c *DigestCache) Clear() {
	c.l.Lock()
	c.cache.Clear()
	c.l.Unlock()
}

func (c *DigestCache) Len() int {
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}

// Stats returns the number of hits and misses seen by Get.
func (c *DigestCache) Stats() (hits, misses uint64) {
	c.l.Lock()
	defer c.l.Unlock()
	return c.hits, c.misses
}
