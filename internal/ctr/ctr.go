// Package ctr implements the counter-mode driver that turns an
// api.BlockCipher into a length-preserving stream cipher.
package ctr

import (
	"github.com/opossum-cipher/opossum/internal/api"
	"github.com/opossum-cipher/opossum/internal/keyschedule"
)

// Run encrypts or decrypts input under backend, keyed by key and iv,
// and returns the result in a newly allocated slice of the same length;
// input is not modified. Encryption and decryption are the same
// operation: CTR mode is an involution over its keystream.
func Run(backend api.BlockCipher, sbox [api.BlockSize]byte, rounds int, input, key, iv []byte) ([]byte, error) {
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
	defer func() {
		for _, rk := range roundKeys {
			api.Bzero(rk)
		}
	}()

	output := make([]byte, len(input))
	if len(input) == 0 {
		return output, nil
	}

	var counter [api.BlockSize]byte
	copy(counter[:api.IVSize], iv)

	var ks [api.BlockSize]byte
	for p := 0; p < len(input); {
		if err := backend.BlockEncrypt(ks[:], counter[:], roundKeys); err != nil {
			return nil, err
		}

		n := len(input) - p
		if n > api.BlockSize {
			n = api.BlockSize
		}
		api.XORBytes(output[p:p+n], input[p:p+n], ks[:n], n)

		p += n
		IncrementCounter(counter[:])
	}

	return output, nil
}

// IncrementCounter treats counter[api.IVSize:] as a big-endian integer
// and increments it by one, carrying from the least-significant byte
// toward — but never into — the IV prefix. A full wrap of the counter
// field is silent: the next block is produced from an all-zero counter
// field.
func IncrementCounter(counter []byte) {
	for i := len(counter) - 1; i >= api.IVSize; i-- {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}
