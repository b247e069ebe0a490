// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4 over fully resident messages.
//
// Every call owns its hash state and working registers, and the constant
// tables are never written, so independent calls may run concurrently.
package sha256

import "encoding/binary"

const (
	// Size is the size of a SHA-256 checksum in bytes.
	Size = 32

	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = 64
)

// Sum returns the SHA-256 checksum of data. A nil slice is the empty
// message.
func Sum(data []byte) (Hash, error) {
	padded, err := Pad(data)
	if err != nil {
		return Hash{}, err
	}
	blocks, err := SplitBlocks(padded)
	if err != nil {
		return Hash{}, err
	}

	state := initState
	for _, block := range blocks {
		w := schedule(block)
		compress(&state, &w)
	}

	return stateHash(&state), nil
}

// Digest returns the SHA-256 checksum of data as 64 lowercase hexadecimal
// characters.
func Digest(data []byte) (string, error) {
	h, err := Sum(data)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// MustDigest is like Digest but panics if data is too long to be hashed.
func MustDigest(data []byte) string {
	s, err := Digest(data)
	if err != nil {
		panic(err)
	}
	return s
}

// stateHash serializes the eight state words big-endian.
func stateHash(state *[8]uint32) Hash {
	var h Hash
	for i, v := range state {
		binary.BigEndian.PutUint32(h[i*4:], v)
	}
	return h
}
