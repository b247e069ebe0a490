// Package history keeps a ledger of computed digests.
package history

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"massnet.org/shadigest/database/storage"
	"massnet.org/shadigest/sha256"
)

// maxSourceLen bounds how much of a text input is kept in a record.
const maxSourceLen = 64

var (
	recordPrefix = []byte("r")
	digestPrefix = []byte("d")
	seqKey       = []byte("mseq")
)

var (
	ErrInvalidRecord = errors.New("invalid history record")
)

// Record is one ledger entry.
type Record struct {
	Seq    uint64      `json:"seq"`
	Kind   string      `json:"kind"`
	Source string      `json:"source"`
	Func   string      `json:"func"`
	Digest sha256.Hash `json:"-"`
	Hex    string      `json:"digest"`
	Size   int         `json:"size"`
	Time   time.Time   `json:"time"`
}

// Store is a digest ledger backed by a storage.Storage.
type Store struct {
	mu  sync.Mutex
	db  storage.Storage
	seq uint64
	now func() time.Time
}

// Open opens or creates the ledger of the given storage type under dir.
func Open(dbtype, dir string) (*Store, error) {
	db, err := storage.OpenOrCreateStorage(dbtype, dir)
	if err != nil {
		return nil, err
	}
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open storage, resuming the sequence it holds.
func New(db storage.Storage) (*Store, error) {
	s := &Store{db: db, now: time.Now}
	buf, err := db.Get(seqKey)
	switch err {
	case nil:
		if len(buf) != 8 {
			return nil, ErrInvalidRecord
		}
		s.seq = binary.BigEndian.Uint64(buf)
	case storage.ErrNotFound:
	default:
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(seq uint64) []byte {
	key := make([]byte, len(recordPrefix)+8)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], seq)
	return key
}

func digestKey(h sha256.Hash, seq uint64) []byte {
	key := make([]byte, 0, len(digestPrefix)+sha256.Size+8)
	key = append(key, digestPrefix...)
	key = append(key, h[:]...)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	return append(key, buf[:]...)
}

// truncateSource shortens s to at most maxSourceLen bytes without cutting a
// UTF-8 sequence in half.
func truncateSource(s string) string {
	if len(s) <= maxSourceLen {
		return s
	}
	cut := maxSourceLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// Append stores rec, filling in Seq, Hex and Time.
func (s *Store) Append(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seq + 1
	rec.Seq = seq
	rec.Hex = rec.Digest.String()
	rec.Source = truncateSource(rec.Source)
	if rec.Time.IsZero() {
		rec.Time = s.now().UTC()
	}

	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], seq)

	batch := s.db.NewBatch()
	defer batch.Release()
	if err = batch.Put(recordKey(seq), value); err != nil {
		return err
	}
	if err = batch.Put(digestKey(rec.Digest, seq), nil); err != nil {
		return err
	}
	if err = batch.Put(seqKey, seqBuf[:]); err != nil {
		return err
	}
	if err = s.db.Write(batch); err != nil {
		return err
	}

	s.seq = seq
	return nil
}

func decodeRecord(value []byte) (*Record, error) {
	rec := new(Record)
	if err := json.Unmarshal(value, rec); err != nil {
		return nil, err
	}
	h, err := sha256.NewHashFromStr(rec.Hex)
	if err != nil {
		return nil, ErrInvalidRecord
	}
	rec.Digest = *h
	return rec, nil
}

// Recent returns up to limit records, newest first. A limit of zero or less
// returns every record.
func (s *Store) Recent(limit int) ([]*Record, error) {
	it := s.db.NewIterator(storage.BytesPrefix(recordPrefix))
	defer it.Release()

	var records []*Record
	for ok := it.Last(); ok; ok = it.Prev() {
		if limit > 0 && len(records) >= limit {
			break
		}
		rec, err := decodeRecord(it.Value())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, it.Error()
}

// FindByDigest returns every record whose digest is h, oldest first.
func (s *Store) FindByDigest(h sha256.Hash) ([]*Record, error) {
	prefix := append(append([]byte(nil), digestPrefix...), h[:]...)
	it := s.db.NewIterator(storage.BytesPrefix(prefix))
	defer it.Release()

	var records []*Record
	for it.Next() {
		key := it.Key()
		if len(key) != len(prefix)+8 {
			return nil, ErrInvalidRecord
		}
		seq := binary.BigEndian.Uint64(key[len(prefix):])
		value, err := s.db.Get(recordKey(seq))
		if err != nil {
			return nil, err
		}
		rec, err := decodeRecord(value)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, it.Error()
}

// Len returns the number of records appended so far.
func (s *Store) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}
