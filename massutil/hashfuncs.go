package massutil

import (
	"massnet.org/shadigest/sha256"
)

// HashFunc computes a 256-bit digest over a resident message.
type HashFunc func(data []byte) (sha256.Hash, error)

// Sha256 returns sha256(data)
func Sha256(data []byte) (sha256.Hash, error) {
	return sha256.Sum(data)
}

// Hash256 returns sha256(sha256(data))
func Hash256(data []byte) (sha256.Hash, error) {
	h1, err := sha256.Sum(data)
	if err != nil {
		return sha256.Hash{}, err
	}
	return sha256.Sum(h1[:])
}

// HashFuncByName returns Hash256 when double is set and Sha256 otherwise,
// together with a display name for the selected function.
func HashFuncByName(double bool) (HashFunc, string) {
	if double {
		return Hash256, "SHA-256d"
	}
	return Sha256, "SHA-256"
}
