// Package source turns user supplied text and files into digests.
package source

import (
	"io/ioutil"
	"os"
	"time"

	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/massutil"
	"massnet.org/shadigest/massutil/ccache"
	"massnet.org/shadigest/sha256"
)

const (
	KindText = "text"
	KindFile = "file"
)

// racyWindow is how long a file must have been left unchanged before its
// digest is cached. Writes within one kernel clock tick can share a change
// time.
const racyWindow = 50 * time.Millisecond

// FileDigest is the digest of one file.
type FileDigest struct {
	Path   string
	Hash   sha256.Hash
	Size   int64
	Cached bool
}

// Digester hashes text and files with a fixed hash function, serving
// unchanged files from an optional cache. It is safe for concurrent use.
type Digester struct {
	fn     massutil.HashFunc
	name   string
	double bool
	cache  *ccache.DigestCache
}

// NewDigester returns a Digester computing SHA-256, or SHA-256d when double
// is set. cache may be nil.
func NewDigester(double bool, cache *ccache.DigestCache) *Digester {
	fn, name := massutil.HashFuncByName(double)
	return &Digester{
		fn:     fn,
		name:   name,
		double: double,
		cache:  cache,
	}
}

// Name returns the display name of the hash function.
func (d *Digester) Name() string {
	return d.name
}

func (d *Digester) sum(data []byte) (sha256.Hash, error) {
	h, err := d.fn(data)
	if err != nil {
		return sha256.Hash{}, errors.Wrap(errors.ErrCodeInputOverflow, err, "digest")
	}
	return h, nil
}

// Text hashes the UTF-8 bytes of text.
func (d *Digester) Text(text string) (sha256.Hash, error) {
	return d.sum([]byte(text))
}

// File hashes the whole contents of the regular file at path.
func (d *Digester) File(path string) (*FileDigest, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf(errors.ErrCodeFileNotFound, "File not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeReadFailure, err, "stat file")
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Errorf(errors.ErrCodeFileNotFound, "File not found: %s", path)
	}

	key, cacheable := ccache.NewFileKey(path, info, d.double)
	cacheable = cacheable && d.cache != nil
	if cacheable {
		if h, ok := d.cache.Get(key); ok {
			return &FileDigest{Path: path, Hash: h, Size: info.Size(), Cached: true}, nil
		}
	}

	readAt := time.Now()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf(errors.ErrCodeFileNotFound, "File not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeReadFailure, err, "read file")
	}
	h, err := d.sum(data)
	if err != nil {
		return nil, err
	}

	if cacheable && int64(len(data)) == key.Size && d.stable(path, key, readAt) {
		d.cache.Add(key, h)
	}
	return &FileDigest{Path: path, Hash: h, Size: int64(len(data))}, nil
}

// stable reports whether the file at path still matches key after being
// read at readAt, and had last changed long enough before the read that any
// later write gets a different change time.
func (d *Digester) stable(path string, key ccache.FileKey, readAt time.Time) bool {
	if readAt.UnixNano()-key.ChangeTime < int64(racyWindow) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	after, ok := ccache.NewFileKey(path, info, d.double)
	return ok && after == key
}
