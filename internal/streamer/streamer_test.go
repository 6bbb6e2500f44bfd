package streamer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opossum-cipher/opossum/internal/api"
	"github.com/opossum-cipher/opossum/internal/ctr"
	"github.com/opossum-cipher/opossum/internal/refimpl"
	"github.com/opossum-cipher/opossum/internal/tables"
)

func newBackend() (api.BlockCipher, [api.BlockSize]byte) {
	sbox, _ := tables.DefaultSBox()
	perm := tables.BuildPermutation()
	return refimpl.New(sbox, perm, api.DefaultRounds), sbox
}

func TestStreamMatchesWholeBufferRun(t *testing.T) {
	require := require.New(t)

	backend, sbox := newBackend()
	key := make([]byte, api.KeySize)
	iv := make([]byte, api.IVSize)
	for i := range key {
		key[i] = byte(i)
	}

	plaintext := make([]byte, 900)
	for i := range plaintext {
		plaintext[i] = byte(i * 13)
	}

	want, err := ctr.Run(backend, sbox, api.DefaultRounds, plaintext, key, iv)
	require.NoError(err)

	s, err := New(backend, sbox, api.DefaultRounds, key, iv)
	require.NoError(err)

	got := make([]byte, len(plaintext))
	// Feed it in irregular chunk sizes to exercise partial-block reuse.
	chunks := []int{1, 255, 2, 256, 1, 385}
	pos := 0
	for _, n := range chunks {
		if pos+n > len(plaintext) {
			n = len(plaintext) - pos
		}
		s.XORKeyStream(got[pos:pos+n], plaintext[pos:pos+n])
		pos += n
	}

	require.Equal(want, got)
}

func TestStreamRejectsWrongKeySize(t *testing.T) {
	require := require.New(t)

	backend, sbox := newBackend()
	_, err := New(backend, sbox, api.DefaultRounds, make([]byte, api.KeySize-1), make([]byte, api.IVSize))
	require.ErrorIs(err, api.ErrInvalidKeySize)
}

func TestStreamXORKeyStreamPanicsOnShortDst(t *testing.T) {
	require := require.New(t)

	backend, sbox := newBackend()
	s, err := New(backend, sbox, api.DefaultRounds, make([]byte, api.KeySize), make([]byte, api.IVSize))
	require.NoError(err)

	require.Panics(func() {
		s.XORKeyStream(make([]byte, 1), make([]byte, 2))
	})
}
