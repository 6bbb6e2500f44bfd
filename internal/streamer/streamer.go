// Package streamer implements an incremental, cipher.Stream-shaped
// façade over the Opossum CTR driver, for callers that want to process
// data a chunk at a time instead of buffering a whole message.
//
// Feeding N total bytes through XORKeyStream in arbitrary chunk sizes
// is bit-identical to a single ctr.Run call over those same N bytes:
// both advance the same counter field one BlockSize at a time.
package streamer

import (
	"github.com/opossum-cipher/opossum/internal/api"
	"github.com/opossum-cipher/opossum/internal/ctr"
	"github.com/opossum-cipher/opossum/internal/keyschedule"
)

// Stream holds one CTR session's expanded round keys and counter state.
// A Stream is single-use per (key, iv) pair and is not safe for
// concurrent use by multiple goroutines.
type Stream struct {
	backend   api.BlockCipher
	roundKeys [][]byte
	counter   [api.BlockSize]byte
	keystream [api.BlockSize]byte
	used      int // bytes of keystream already consumed
}

// New expands key under sbox/rounds and starts a CTR session seeded
// with iv.
func New(backend api.BlockCipher, sbox [api.BlockSize]byte, rounds int, key, iv []byte) (*Stream, error) {
	if len(key) != api.KeySize {
		return nil, api.ErrInvalidKeySize
	}
	if len(iv) != api.IVSize {
		return nil, api.ErrInvalidIVSize
	}

	roundKeys, err := keyschedule.Expand(key, sbox, rounds)
	if err != nil {
		return nil, err
	}

	s := &Stream{backend: backend, roundKeys: roundKeys, used: api.BlockSize}
	copy(s.counter[:api.IVSize], iv)
	return s, nil
}

// XORKeyStream XORs each byte of src with the next keystream byte and
// writes the result to dst. dst and src may overlap exactly. Panics if
// dst is shorter than src, matching the crypto/cipher.Stream contract.
func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("opossum: output smaller than input")
	}

	for len(src) > 0 {
		if s.used == api.BlockSize {
			// Errors are unreachable here: counter is always exactly
			// BlockSize bytes and roundKeys was validated at New.
			_ = s.backend.BlockEncrypt(s.keystream[:], s.counter[:], s.roundKeys)
			ctr.IncrementCounter(s.counter[:])
			s.used = 0
		}

		n := api.BlockSize - s.used
		if n > len(src) {
			n = len(src)
		}
		api.XORBytes(dst[:n], src[:n], s.keystream[s.used:s.used+n], n)

		s.used += n
		dst = dst[n:]
		src = src[n:]
	}
}

// Reset clears this Stream's round keys so no key material lingers.
func (s *Stream) Reset() {
	for _, rk := range s.roundKeys {
		api.Bzero(rk)
	}
	api.Bzero(s.counter[:])
	api.Bzero(s.keystream[:])
}
