package sha256

import (
	"encoding/hex"
	"fmt"
)

// MaxHashStringSize is the length of a Hash rendered as a hex string.
const MaxHashStringSize = Size * 2

// Hash is a SHA-256 checksum.
type Hash [Size]byte

// String returns the Hash as 64 lowercase hexadecimal characters.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// Bytes returns a copy of the hash bytes.
func (hash *Hash) Bytes() []byte {
	newHash := make([]byte, Size)
	copy(newHash, hash[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash.  An error is returned if
// the number of bytes passed in is not Size.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != Size {
		return fmt.Errorf("invalid sha length of %v, want %v", nhlen, Size)
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// NewHash returns a new Hash from a byte slice.  An error is returned if
// the number of bytes passed in is not Size.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from its hexadecimal string form.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	if err := Decode(ret, hash); err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes a hexadecimal hash string into dst. Both letter cases are
// accepted; the string must be exactly MaxHashStringSize characters.
func Decode(dst *Hash, src string) error {
	if len(src) != MaxHashStringSize {
		return ErrHashStrSize
	}

	var result Hash
	if _, err := hex.Decode(result[:], []byte(src)); err != nil {
		return err
	}
	*dst = result

	return nil
}
