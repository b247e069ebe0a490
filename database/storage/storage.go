package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

const (
	// StorageV1
	//		- initial: records keyed by sequence plus digest index
	StorageV1 int32 = 1 + iota

	CurrentStorageVersion int32 = StorageV1
)

const (
	KiB = 1024
	MiB = KiB * 1024
)

const versionFile = ".ver"

var (
	ErrDbUnknownType       = errors.New("non-existent database type")
	ErrInvalidKey          = errors.New("invalid key")
	ErrInvalidBatch        = errors.New("invalid batch")
	ErrNotFound            = errors.New("not found")
	ErrIncompatibleStorage = errors.New("incompatible storage")
)

// Range is a key range.
type Range struct {
	// Start of the key range, include in the range.
	Start []byte

	// Limit of the key range, not include in the range.
	Limit []byte
}

// BytesPrefix returns the key range covering every key that starts with
// prefix.
func BytesPrefix(prefix []byte) *Range {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return &Range{Start: prefix, Limit: limit}
}

type Iterator interface {
	Release()
	Error() error
	First() bool
	Last() bool
	Prev() bool
	Next() bool
	Key() []byte
	Value() []byte
}

type Batch interface {
	Release()
	Put(key, value []byte) error
	Delete(key []byte) error
	Reset()
}

type Storage interface {
	Close() error
	// Get returns ErrNotFound if key not exist
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Has(key []byte) (bool, error)
	Delete(key []byte) error
	Write(batch Batch) error
	NewBatch() Batch
	NewIterator(slice *Range) Iterator
}

type StorageDriver struct {
	DbType string
	// InMemory drivers ignore the storage path and keep no version file.
	InMemory      bool
	CreateStorage func(storPath string) (s Storage, err error)
	OpenStorage   func(storPath string) (s Storage, err error)
}

var drivers []StorageDriver

func RegisterDriver(instance StorageDriver) {
	for _, drv := range drivers {
		if drv.DbType == instance.DbType {
			return
		}
	}
	drivers = append(drivers, instance)
}

func driver(dbtype string) (StorageDriver, error) {
	for _, drv := range drivers {
		if drv.DbType == dbtype {
			return drv, nil
		}
	}
	return StorageDriver{}, ErrDbUnknownType
}

// CreateStorage intializes and opens a database.
func CreateStorage(dbtype, dbpath string) (Storage, error) {
	drv, err := driver(dbtype)
	if err != nil {
		return nil, err
	}
	return drv.CreateStorage(dbpath)
}

// OpenStorage opens an existing database.
func OpenStorage(dbtype, dbpath string) (Storage, error) {
	drv, err := driver(dbtype)
	if err != nil {
		return nil, err
	}
	return drv.OpenStorage(dbpath)
}

// OpenOrCreateStorage opens the database at dbpath, creating it when the
// directory does not exist yet. The version file next to the data is
// checked or written.
func OpenOrCreateStorage(dbtype, dbpath string) (Storage, error) {
	drv, err := driver(dbtype)
	if err != nil {
		return nil, err
	}
	if drv.InMemory {
		return drv.CreateStorage(dbpath)
	}

	var s Storage
	if _, statErr := os.Stat(dbpath); os.IsNotExist(statErr) {
		s, err = CreateStorage(dbtype, dbpath)
	} else {
		s, err = OpenStorage(dbtype, dbpath)
	}
	if err != nil {
		return nil, err
	}
	if err = CheckCompatibility(dbtype, dbpath); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func RegisteredDbTypes() []string {
	var types []string
	for _, drv := range drivers {
		types = append(types, drv.DbType)
	}
	return types
}

type storageVersion struct {
	Dbtype  string `json:"dbtype,omitempty"`
	Version int32  `json:"version,omitempty"`
}

// CheckCompatibility writes the version file under storPath on first use,
// and afterwards requires it to match dbtype and CurrentStorageVersion.
func CheckCompatibility(dbtype, storPath string) error {
	verFile := filepath.Join(storPath, versionFile)
	fs, err := os.Stat(verFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		data, err := json.Marshal(storageVersion{
			Dbtype:  dbtype,
			Version: CurrentStorageVersion,
		})
		if err != nil {
			return fmt.Errorf("marshal failed: %v", err)
		}
		return ioutil.WriteFile(verFile, data, 0600)
	}
	if fs.IsDir() {
		return fmt.Errorf("directory %s already exists", verFile)
	}

	buf, err := ioutil.ReadFile(verFile)
	if err != nil {
		return fmt.Errorf("read version file error: %v", err)
	}
	var ver storageVersion
	if err = json.Unmarshal(buf, &ver); err != nil {
		return fmt.Errorf("unmarshal failed: %v", err)
	}

	if ver.Version == CurrentStorageVersion && ver.Dbtype == dbtype {
		return nil
	}
	return ErrIncompatibleStorage
}
