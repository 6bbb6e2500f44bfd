package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotateLeftBitsIdentityAtFullLength(t *testing.T) {
	require := require.New(t)

	data := make([]byte, BlockSize)
	for i := range data {
		data[i] = byte(i * 7)
	}

	got := RotateLeftBits(data, 8*len(data))
	require.Equal(data, got, "rotation by N bits, N = 8*len, must be the identity")

	got = RotateLeftBits(data, 0)
	require.Equal(data, got, "rotation by zero bits must be the identity")
}

func TestRotateLeftBitsByteShiftOnly(t *testing.T) {
	require := require.New(t)

	data := []byte{0x01, 0x02, 0x03, 0x04}
	got := RotateLeftBits(data, 8) // one full byte, bitShift == 0
	require.Equal([]byte{0x04, 0x01, 0x02, 0x03}, got)
}

func TestRotateLeftBitsSubByteShift(t *testing.T) {
	require := require.New(t)

	// 0x80 0x00 rotated left by 1 bit shifts the top bit out of the
	// first byte and carries it into the bottom bit of the second byte.
	data := []byte{0x80, 0x00}
	got := RotateLeftBits(data, 1)
	require.Equal([]byte{0x00, 0x01}, got)
}

func TestRotateLeftBitsComposes(t *testing.T) {
	require := require.New(t)

	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i*31 + 5)
	}

	oneAtATime := append([]byte{}, data...)
	for i := 0; i < 11; i++ {
		oneAtATime = RotateLeftBits(oneAtATime, 1)
	}

	allAtOnce := RotateLeftBits(data, 11)
	require.Equal(allAtOnce, oneAtATime, "rotating by 1 bit eleven times must equal rotating by 11 bits once")
}

func TestXORBytes(t *testing.T) {
	require := require.New(t)

	a := []byte{0x0f, 0xf0, 0xaa}
	b := []byte{0xff, 0xff, 0x55}
	dst := make([]byte, 3)

	XORBytes(dst, a, b, 3)
	require.Equal([]byte{0xf0, 0x0f, 0xff}, dst)
}

func TestRotateBytesLeft(t *testing.T) {
	require := require.New(t)

	b := []byte{1, 2, 3, 4, 5}
	RotateBytesLeft(b, 2)
	require.Equal([]byte{3, 4, 5, 1, 2}, b)
}

func TestBzero(t *testing.T) {
	require := require.New(t)

	b := []byte{1, 2, 3}
	Bzero(b)
	require.Equal([]byte{0, 0, 0}, b)
}
