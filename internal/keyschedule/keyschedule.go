// Package keyschedule expands an Opossum master key into the sequence
// of round keys the block primitive consumes.
package keyschedule

import "github.com/opossum-cipher/opossum/internal/api"

// Expand derives rounds+1 round keys of api.BlockSize bytes each from a
// KeySize-byte master key, under the given S-box.
//
// Each window after the first is produced by rotating the previous
// window left by three bytes, substituting every fourth byte through
// sbox, folding in a round constant, and XORing the result back against
// the untransformed previous window.
func Expand(masterKey []byte, sbox [api.BlockSize]byte, rounds int) ([][]byte, error) {
	if len(masterKey) != api.KeySize {
		return nil, api.ErrInvalidKeySize
	}
	if rounds < 1 {
		return nil, api.ErrInvalidRoundCount
	}

	count := rounds + 1
	expanded := make([]byte, count*api.BlockSize)
	copy(expanded[:api.BlockSize], masterKey)

	for i := api.BlockSize; i < len(expanded); i += api.BlockSize {
		prev := expanded[i-api.BlockSize : i]

		t := make([]byte, api.BlockSize)
		copy(t, prev)

		api.RotateBytesLeft(t, 3)

		for j := 0; j < api.BlockSize; j += 4 {
			t[j] = sbox[t[j]]
		}

		rc := byte((i / api.BlockSize) % 256)
		t[0] ^= rc

		api.XORBytes(t, t, prev, api.BlockSize)

		copy(expanded[i:i+api.BlockSize], t)
	}

	roundKeys := make([][]byte, count)
	for i := range roundKeys {
		roundKeys[i] = expanded[i*api.BlockSize : (i+1)*api.BlockSize]
	}
	return roundKeys, nil
}
