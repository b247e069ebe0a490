package sha256

import "errors"

var (
	// ErrInputOverflow indicates that the bit length of a message does not
	// fit into the 64-bit length field of the padding.
	ErrInputOverflow = errors.New("message bit length overflows 64 bits")

	// ErrBlockAlignment indicates that a padded message is not a whole number
	// of blocks.
	ErrBlockAlignment = errors.New("padded message is not a multiple of the block size")

	// ErrHashStrSize describes an error that indicates the caller specified a
	// hash string of the wrong length.
	ErrHashStrSize = errors.New("hash string must be 64 hexadecimal characters")
)
