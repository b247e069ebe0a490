// Package memdb provides a storage driver that keeps everything in memory.
// Each open returns a fresh, empty database that is lost on Close.
package memdb

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	dbstorage "massnet.org/shadigest/database/storage"
	"massnet.org/shadigest/database/storage/ldbstorage"
)

// DbType is the driver name registered with package storage.
const DbType = "memdb"

func init() {
	dbstorage.RegisterDriver(dbstorage.StorageDriver{
		DbType:        DbType,
		InMemory:      true,
		CreateStorage: open,
		OpenStorage:   open,
	})
}

// New returns an empty in-memory storage.
func New() (dbstorage.Storage, error) {
	mdb, err := leveldb.Open(storage.NewMemStorage(), &opt.Options{})
	if err != nil {
		return nil, err
	}
	return ldbstorage.Wrap(mdb), nil
}

func open(string) (dbstorage.Storage, error) {
	return New()
}
