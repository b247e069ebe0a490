package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"massnet.org/shadigest/database/storage"
	_ "massnet.org/shadigest/database/storage/ldbstorage"
)

var dbtype = ""

func TestAll(t *testing.T) {
	require.NotEmpty(t, storage.RegisteredDbTypes())
	for _, tp := range storage.RegisteredDbTypes() {
		t.Logf("run tests with %s...", tp)
		dbtype = tp
		testPutGet(t)
		testBatch(t)
		testIterator(t)
		testReopen(t)
	}
}

func getStorage(t *testing.T) (storage.Storage, string, func()) {
	root, err := ioutil.TempDir("", "shadigest-storage")
	require.NoError(t, err)
	dbPath := filepath.Join(root, "db")

	db, err := storage.OpenOrCreateStorage(dbtype, dbPath)
	require.NoError(t, err)

	tearDown := func() {
		db.Close()
		os.RemoveAll(root)
	}
	return db, dbPath, tearDown
}

func testPutGet(t *testing.T) {
	store, _, tearDown := getStorage(t)
	defer tearDown()

	assert.Equal(t, storage.ErrInvalidKey, store.Put(nil, []byte("v")))
	require.NoError(t, store.Put([]byte("a123"), []byte("a123")))
	require.NoError(t, store.Put([]byte("novalue"), nil))

	getTests := []struct {
		name   string
		key    string
		expect string
		err    error
	}{
		{"existing", "a123", "a123", nil},
		{"non-existent", "a", "", storage.ErrNotFound},
		{"empty value", "novalue", "", nil},
	}
	for _, test := range getTests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := store.Get([]byte(test.key))
			assert.Equal(t, test.expect, string(actual))
			assert.Equal(t, test.err, err)
		})
	}

	has, err := store.Has([]byte("a123"))
	assert.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, store.Delete([]byte("a123")))
	has, err = store.Has([]byte("a123"))
	assert.NoError(t, err)
	assert.False(t, has)
}

func testBatch(t *testing.T) {
	store, _, tearDown := getStorage(t)
	defer tearDown()

	batch := store.NewBatch()
	assert.Equal(t, storage.ErrInvalidKey, batch.Put(nil, nil))
	require.NoError(t, batch.Put([]byte("k1"), []byte("v1")))
	require.NoError(t, batch.Put([]byte("k2"), []byte("v2")))
	require.NoError(t, batch.Delete([]byte("k1")))
	require.NoError(t, store.Write(batch))
	batch.Release()

	_, err := store.Get([]byte("k1"))
	assert.Equal(t, storage.ErrNotFound, err)
	v, err := store.Get([]byte("k2"))
	assert.NoError(t, err)
	assert.Equal(t, "v2", string(v))
}

func testIterator(t *testing.T) {
	store, _, tearDown := getStorage(t)
	defer tearDown()

	for _, k := range []string{"a1", "b1", "b2", "b3", "c1"} {
		require.NoError(t, store.Put([]byte(k), []byte("v"+k)))
	}

	it := store.NewIterator(storage.BytesPrefix([]byte("b")))
	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(t, it.Error())
	it.Release()
	assert.Equal(t, []string{"b1", "b2", "b3"}, keys)

	it = store.NewIterator(storage.BytesPrefix([]byte("b")))
	keys = keys[:0]
	for ok := it.Last(); ok; ok = it.Prev() {
		keys = append(keys, string(it.Key()))
	}
	it.Release()
	assert.Equal(t, []string{"b3", "b2", "b1"}, keys)

	it = store.NewIterator(nil)
	count := 0
	for it.Next() {
		count++
	}
	it.Release()
	assert.Equal(t, 5, count)
}

func testReopen(t *testing.T) {
	store, dbPath, tearDown := getStorage(t)
	defer tearDown()

	require.NoError(t, store.Put([]byte("persist"), []byte("yes")))
	require.NoError(t, store.Close())

	reopened, err := storage.OpenOrCreateStorage(dbtype, dbPath)
	require.NoError(t, err)
	v, err := reopened.Get([]byte("persist"))
	assert.NoError(t, err)
	assert.Equal(t, "yes", string(v))
	require.NoError(t, reopened.Close())

	_, err = storage.OpenOrCreateStorage("unknown", dbPath)
	assert.Equal(t, storage.ErrDbUnknownType, err)
}

func TestBytesPrefix(t *testing.T) {
	r := storage.BytesPrefix([]byte{'r', 0xff})
	assert.Equal(t, []byte{'s'}, r.Limit)

	r = storage.BytesPrefix([]byte{0xff})
	assert.Nil(t, r.Limit)
}

func TestCheckCompatibility(t *testing.T) {
	dir, err := ioutil.TempDir("", "shadigest-ver")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, storage.CheckCompatibility("leveldb", dir))
	require.NoError(t, storage.CheckCompatibility("leveldb", dir))
	assert.Equal(t, storage.ErrIncompatibleStorage, storage.CheckCompatibility("other", dir))
}
