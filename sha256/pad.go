package sha256

import (
	"encoding/binary"
	"math"
)

const (
	// padMarker is the single 1 bit appended right after the message.
	padMarker = 0x80

	// lengthSize is the size of the big-endian bit length suffix.
	lengthSize = 8

	maxInt = uint64(^uint(0) >> 1)
)

// bitLength returns the length in bits of an n byte message. It refuses
// lengths whose bit count can not be stored in the 64-bit length field.
func bitLength(n uint64) (uint64, error) {
	if n > math.MaxUint64/8 {
		return 0, ErrInputOverflow
	}
	return n << 3, nil
}

// paddedLen returns the smallest multiple of BlockSize that holds an n byte
// message, the marker byte and the length suffix.
func paddedLen(n uint64) uint64 {
	return (n + 1 + lengthSize + BlockSize - 1) / BlockSize * BlockSize
}

// Pad returns a new slice holding msg followed by the 0x80 marker, the
// minimal zero fill that brings the length to 56 mod 64 bytes, and the
// original bit length as a big-endian uint64. msg is not modified.
//
// A message whose length sits at 56 mod 64 bytes or above has no room left
// for the suffix in its last block and wraps into an additional one.
func Pad(msg []byte) ([]byte, error) {
	n := uint64(len(msg))
	length, err := bitLength(n)
	if err != nil {
		return nil, err
	}

	total := paddedLen(n)
	if total > maxInt {
		return nil, ErrInputOverflow
	}

	padded := make([]byte, total)
	copy(padded, msg)
	padded[n] = padMarker
	binary.BigEndian.PutUint64(padded[total-lengthSize:], length)

	return padded, nil
}

// SplitBlocks cuts a padded message into consecutive BlockSize slices,
// preserving their order. The blocks share memory with padded.
func SplitBlocks(padded []byte) ([][]byte, error) {
	if len(padded)%BlockSize != 0 {
		return nil, ErrBlockAlignment
	}

	blocks := make([][]byte, 0, len(padded)/BlockSize)
	for len(padded) > 0 {
		blocks = append(blocks, padded[:BlockSize:BlockSize])
		padded = padded[BlockSize:]
	}
	return blocks, nil
}
