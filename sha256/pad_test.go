package sha256

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadInvariant(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = 0xff
		}

		padded, err := Pad(msg)
		require.NoError(t, err)

		// Length is a whole number of blocks.
		require.Equal(t, 0, len(padded)%BlockSize, "length %d", n)

		added := (len(padded) - n) * 8
		assert.True(t, added >= 72 && added <= 576, "length %d added %d bits", n, added)

		assert.Equal(t, msg, padded[:n])
		assert.Equal(t, byte(padMarker), padded[n])
		for i := n + 1; i < len(padded)-lengthSize; i++ {
			require.Equal(t, byte(0), padded[i], "length %d offset %d", n, i)
		}
		// Before the suffix the length is 448 mod 512 bits.
		assert.Equal(t, 448, (len(padded)-lengthSize)*8%512)
		assert.Equal(t, uint64(n)*8, binary.BigEndian.Uint64(padded[len(padded)-lengthSize:]))
	}
}

func TestPadBoundary(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 64},
		{55, 64},
		{56, 128},
		{57, 128},
		{63, 128},
		{64, 128},
		{119, 128},
		{120, 192},
	}

	for _, test := range tests {
		padded, err := Pad(make([]byte, test.length))
		require.NoError(t, err)
		assert.Equal(t, test.want, len(padded), "length %d", test.length)
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	msg := make([]byte, 3, 64)
	copy(msg, "abc")
	padded, err := Pad(msg)
	require.NoError(t, err)

	padded[0] = 'z'
	assert.Equal(t, []byte("abc"), msg)
	assert.Equal(t, byte(0), msg[:4][3])
}

func TestBitLength(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
		err  error
	}{
		{0, 0, nil},
		{1, 8, nil},
		{64, 512, nil},
		{math.MaxUint64 / 8, math.MaxUint64 &^ 7, nil},
		{math.MaxUint64/8 + 1, 0, ErrInputOverflow},
		{math.MaxUint64, 0, ErrInputOverflow},
	}

	for _, test := range tests {
		got, err := bitLength(test.n)
		assert.Equal(t, test.err, err, "n %d", test.n)
		assert.Equal(t, test.want, got, "n %d", test.n)
	}
}

func TestSplitBlocks(t *testing.T) {
	padded := make([]byte, 3*BlockSize)
	for i := range padded {
		padded[i] = byte(i / BlockSize)
	}

	blocks, err := SplitBlocks(padded)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for i, block := range blocks {
		assert.Len(t, block, BlockSize)
		assert.Equal(t, byte(i), block[0])
		assert.Equal(t, byte(i), block[BlockSize-1])
		assert.Equal(t, BlockSize, cap(block))
	}

	blocks, err = SplitBlocks(nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestSplitBlocksAlignment(t *testing.T) {
	for _, n := range []int{1, 63, 65, 127} {
		_, err := SplitBlocks(make([]byte, n))
		assert.Equal(t, ErrBlockAlignment, err, "length %d", n)
	}
}

func TestSchedule(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	require.NoError(t, err)

	w := schedule(padded)
	assert.Equal(t, uint32(0x61626380), w[0])
	assert.Equal(t, uint32(0x00000018), w[15])
	// W16 reduces to W0 and W17 to σ1(W15) for a single short block.
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000f0000), w[17])
}

func TestCompressSingleBlock(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	require.NoError(t, err)

	state := initState
	w := schedule(padded)
	compress(&state, &w)

	assert.Equal(t, [8]uint32{
		0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223,
		0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad,
	}, state)
}
