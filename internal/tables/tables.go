// Package tables builds the two fixed lookup tables the Opossum block
// primitive depends on: the substitution box (and its inverse) and the
// byte-position permutation table.
//
// Both are deterministic functions of fixed constants only — no key
// material enters here. A Cipher builds them once at construction and
// reuses them for every Encrypt/Decrypt call.
package tables

import (
	"math/rand"

	"github.com/opossum-cipher/opossum/internal/api"
)

// BuildSBox runs a Fisher-Yates shuffle over the identity permutation of
// [0,256) using math/rand seeded with seed, returning the resulting
// substitution box and its inverse.
//
// The reference construction depends on reproducing one specific
// non-cryptographic generator's output stream; math/rand's algorithm is
// pinned by the standard library, so seeding it once here is sufficient
// to make BuildSBox's output stable across Go versions and platforms.
func BuildSBox(seed int64) (sbox, invSBox [api.BlockSize]byte) {
	for i := range sbox {
		sbox[i] = byte(i)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := api.BlockSize - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}

	for i, v := range sbox {
		invSBox[v] = byte(i)
	}
	return
}

// DefaultSBox returns the S-box fixed by api.ShuffleSeed, the only seed
// Opossum ciphers ever construct against.
func DefaultSBox() (sbox, invSBox [api.BlockSize]byte) {
	return BuildSBox(api.ShuffleSeed)
}

// BuildPermutation builds the byte-position permutation table: block
// positions viewed as a 16x16 row-major matrix, each row cyclically
// shifted left by its own row index.
func BuildPermutation() [api.BlockSize]int {
	const side = 16
	var perm [api.BlockSize]int

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			orig := row*side + col
			newCol := (col + side - row) % side
			perm[orig] = row*side + newCol
		}
	}
	return perm
}
