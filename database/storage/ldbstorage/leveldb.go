package ldbstorage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"massnet.org/shadigest/database/storage"
	"massnet.org/shadigest/logging"
)

// DbType is the driver name registered with package storage.
const DbType = "leveldb"

type levelDB struct {
	db *leveldb.DB
}

type levelBatch struct {
	b *leveldb.Batch
}

type levelIterator struct {
	iterator.Iterator
}

func init() {
	storage.RegisterDriver(storage.StorageDriver{
		DbType:        DbType,
		OpenStorage:   OpenDB,
		CreateStorage: CreateDB,
	})
}

func CreateDB(path string) (storage.Storage, error) {
	return newLevelDB(path, true)
}

func OpenDB(path string) (storage.Storage, error) {
	return newLevelDB(path, false)
}

func newLevelDB(path string, create bool) (storage.Storage, error) {
	opts := &opt.Options{
		Filter:             filter.NewBloomFilter(10),
		WriteBuffer:        4 * opt.MiB,
		BlockSize:          4 * opt.KiB,
		BlockCacheCapacity: 8 * opt.MiB,
		Compression:        opt.DefaultCompression,
		ErrorIfMissing:     !create,
		ErrorIfExist:       create,
	}

	ldb, err := leveldb.OpenFile(path, opts)
	if err != nil {
		logging.CPrint(logging.ERROR, "init leveldb error", logging.LogFormat{
			"path":   path,
			"create": create,
			"err":    err,
		})
		return nil, err
	}

	logging.VPrint(logging.DEBUG, "init leveldb", logging.LogFormat{
		"path":   path,
		"create": create,
	})
	return &levelDB{db: ldb}, nil
}

// Wrap exposes an already open goleveldb database as a storage.Storage.
func Wrap(db *leveldb.DB) storage.Storage {
	return &levelDB{db: db}
}

func (l *levelDB) Close() error {
	return l.db.Close()
}

func (l *levelDB) Get(key []byte) ([]byte, error) {
	value, err := l.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, storage.ErrNotFound
	}
	return value, err
}

func (l *levelDB) Put(key, value []byte) error {
	if len(key) == 0 {
		return storage.ErrInvalidKey
	}
	return l.db.Put(key, value, nil)
}

func (l *levelDB) Has(key []byte) (bool, error) {
	return l.db.Has(key, nil)
}

func (l *levelDB) Delete(key []byte) error {
	return l.db.Delete(key, nil)
}

func (l *levelDB) NewBatch() storage.Batch {
	return &levelBatch{
		b: new(leveldb.Batch),
	}
}

func (l *levelDB) Write(batch storage.Batch) error {
	lb, ok := batch.(*levelBatch)
	if !ok {
		return storage.ErrInvalidBatch
	}
	return l.db.Write(lb.b, nil)
}

func (l *levelDB) NewIterator(slice *storage.Range) storage.Iterator {
	r := &util.Range{}
	if slice != nil {
		if len(slice.Start) != 0 {
			r.Start = slice.Start
		}
		if len(slice.Limit) != 0 {
			r.Limit = slice.Limit
		}
	}
	return &levelIterator{l.db.NewIterator(r, nil)}
}

// -------------levelBatch-------------

func (b *levelBatch) Put(key, value []byte) error {
	if len(key) == 0 {
		return storage.ErrInvalidKey
	}
	b.b.Put(key, value)
	return nil
}

func (b *levelBatch) Delete(key []byte) error {
	if len(key) == 0 {
		return storage.ErrInvalidKey
	}
	b.b.Delete(key)
	return nil
}

func (b *levelBatch) Reset() {
	b.b.Reset()
}

func (b *levelBatch) Release() {
	b.b = nil
}

// -----------------levelIterator-----------------

// Key returns a copy of the current key; goleveldb reuses its buffer.
func (it *levelIterator) Key() []byte {
	return append([]byte(nil), it.Iterator.Key()...)
}

func (it *levelIterator) Value() []byte {
	return append([]byte(nil), it.Iterator.Value()...)
}
