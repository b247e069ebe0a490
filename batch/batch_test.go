package batch

import (
	stdsha256 "crypto/sha256"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/massutil/ccache"
	"massnet.org/shadigest/sha256"
	"massnet.org/shadigest/source"
	"massnet.org/shadigest/testutil"
)

func writeFiles(t *testing.T, n int) (string, []string, [][]byte) {
	dir, err := ioutil.TempDir("", "shadigest-batch")
	require.NoError(t, err)

	paths := make([]string, n)
	contents := make([][]byte, n)
	for i := 0; i < n; i++ {
		contents[i] = make([]byte, i*37)
		for j := range contents[i] {
			contents[i][j] = byte(i + j)
		}
		paths[i] = filepath.Join(dir, fmt.Sprintf("file-%02d.bin", i))
		require.NoError(t, ioutil.WriteFile(paths[i], contents[i], 0600))
	}
	return dir, paths, contents
}

func TestHashFiles(t *testing.T) {
	dir, paths, contents := writeFiles(t, 24)
	defer os.RemoveAll(dir)

	h, err := NewHasher(4, source.NewDigester(false, nil))
	require.NoError(t, err)
	defer h.Release()

	missing := filepath.Join(dir, "missing.bin")
	request := append(append([]string(nil), paths...), missing, paths[0])
	results := h.HashFiles(request)
	require.Len(t, results, len(request))

	for i := range paths {
		require.NoError(t, results[i].Err)
		assert.Equal(t, paths[i], results[i].Path)
		assert.Equal(t, sha256.Hash(stdsha256.Sum256(contents[i])), results[i].Hash)
		assert.Equal(t, int64(len(contents[i])), results[i].Size)
	}

	miss := results[len(paths)]
	assert.Equal(t, missing, miss.Path)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.CodeOf(miss.Err))

	dup := results[len(paths)+1]
	assert.Equal(t, results[0], dup)
}

func TestHashFilesUsesCache(t *testing.T) {
	dir, paths, _ := writeFiles(t, 3)
	defer os.RemoveAll(dir)
	testutil.SettleFiles()

	cache := ccache.NewDigestCache(16)
	h, err := NewHasher(2, source.NewDigester(false, cache))
	require.NoError(t, err)
	defer h.Release()

	for _, r := range h.HashFiles(paths) {
		assert.False(t, r.Cached)
	}
	for _, r := range h.HashFiles(paths) {
		assert.True(t, r.Cached)
	}
}

func TestNewHasherWorkers(t *testing.T) {
	_, err := NewHasher(0, source.NewDigester(false, nil))
	assert.Equal(t, ErrInvalidWorkers, err)
	_, err = NewHasher(maxPoolWorker+1, source.NewDigester(false, nil))
	assert.Equal(t, ErrInvalidWorkers, err)
}
