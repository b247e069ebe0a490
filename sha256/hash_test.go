package sha256

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHash tests the Hash API.
func TestHash(t *testing.T) {
	abcStr := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	abcHash, err := NewHashFromStr(abcStr)
	require.NoError(t, err)

	buf := []byte{
		0xe3, 0xb0, 0xc4, 0x42, 0x98, 0xfc, 0x1c, 0x14,
		0x9a, 0xfb, 0xf4, 0xc8, 0x99, 0x6f, 0xb9, 0x24,
		0x27, 0xae, 0x41, 0xe4, 0x64, 0x9b, 0x93, 0x4c,
		0xa4, 0x95, 0x99, 0x1b, 0x78, 0x52, 0xb8, 0x55,
	}

	hash, err := NewHash(buf)
	require.NoError(t, err)
	assert.Len(t, *hash, Size)
	assert.True(t, bytes.Equal(hash[:], buf))

	emptySum, err := Sum(nil)
	require.NoError(t, err)
	assert.True(t, hash.IsEqual(&emptySum))
	assert.False(t, hash.IsEqual(abcHash))

	// Set hash from byte slice and ensure contents match.
	require.NoError(t, hash.SetBytes(abcHash.Bytes()))
	assert.True(t, hash.IsEqual(abcHash))
	assert.Equal(t, abcStr, hash.String())

	// Invalid sizes.
	assert.Error(t, hash.SetBytes([]byte{0x00}))
	_, err = NewHash(make([]byte, Size+1))
	assert.Error(t, err)

	var nilHash *Hash
	assert.True(t, nilHash.IsEqual(nil))
	assert.False(t, nilHash.IsEqual(hash))
}

func TestBytesIsCopy(t *testing.T) {
	h, err := Sum([]byte("abc"))
	require.NoError(t, err)
	b := h.Bytes()
	b[0] ^= 0xff
	assert.Equal(t, byte(0xba), h[0])
}

// TestNewHashFromStr executes tests against the NewHashFromStr function.
func TestNewHashFromStr(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{
			"BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			false,
		},
		{"", "", true},
		{"ba7816bf", "", true},
		{"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad00", "", true},
		{"zz7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", "", true},
	}

	for _, test := range tests {
		got, err := NewHashFromStr(test.in)
		if test.err {
			assert.Error(t, err, "in %q", test.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.want, got.String())
	}

	_, err := NewHashFromStr("abc")
	assert.Equal(t, ErrHashStrSize, err)
}
