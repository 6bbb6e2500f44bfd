// Package refimpl is the portable, byte-oriented reference backend for
// the Opossum block primitive. It favors being easy to check against
// the design notes byte-for-byte over raw throughput; internal/batched
// implements the identical transform with pooled scratch buffers for
// callers streaming long inputs.
package refimpl

import "github.com/opossum-cipher/opossum/internal/api"

// Impl is a stateless Opossum block encryptor bound to one S-box,
// permutation table and round count.
type Impl struct {
	sbox   [api.BlockSize]byte
	perm   [api.BlockSize]int
	rounds int
}

// New returns a reference backend for the given tables and round count.
func New(sbox [api.BlockSize]byte, perm [api.BlockSize]int, rounds int) *Impl {
	return &Impl{sbox: sbox, perm: perm, rounds: rounds}
}

// Name identifies this backend.
func (impl *Impl) Name() string {
	return "refimpl"
}

// BlockEncrypt implements api.BlockCipher.
func (impl *Impl) BlockEncrypt(dst, src []byte, roundKeys [][]byte) error {
	if len(src) != api.BlockSize {
		return api.ErrInvalidBlockSize
	}

	var state [api.BlockSize]byte
	copy(state[:], src)

	api.XORBytes(state[:], state[:], roundKeys[0], api.BlockSize)

	for round := 1; round < impl.rounds; round++ {
		impl.subBytes(state[:])
		impl.permuteBytes(state[:])
		impl.mixColumns(state[:])
		impl.applyRoundDependentTransforms(state[:], round)
		api.XORBytes(state[:], state[:], roundKeys[round], api.BlockSize)
	}

	impl.subBytes(state[:])
	impl.permuteBytes(state[:])
	impl.applyRoundDependentTransforms(state[:], impl.rounds)
	api.XORBytes(state[:], state[:], roundKeys[impl.rounds], api.BlockSize)

	if len(dst) < api.BlockSize {
		return api.ErrInvalidBlockSize
	}
	copy(dst[:api.BlockSize], state[:])
	return nil
}

func (impl *Impl) subBytes(state []byte) {
	for i, b := range state {
		state[i] = impl.sbox[b]
	}
}

func (impl *Impl) permuteBytes(state []byte) {
	var t [api.BlockSize]byte
	for i, b := range state {
		t[impl.perm[i]] = b
	}
	copy(state, t[:])
}

// mixColumns applies the intra-group diffusion step: the block is
// partitioned into 16 groups of 16 bytes, and every byte is XORed with
// a rotated and a plain copy of its neighbours taken from a snapshot of
// the group before any byte in it was updated.
func (impl *Impl) mixColumns(state []byte) {
	const (
		groupSize  = 16
		groupCount = api.BlockSize / groupSize
	)

	var g [groupSize]byte
	for group := 0; group < groupCount; group++ {
		start := group * groupSize
		copy(g[:], state[start:start+groupSize])

		for i := 0; i < groupSize; i++ {
			next := g[(i+1)%groupSize]
			rotated := ((next << 3) | (next >> 5)) & 0xFF
			state[start+i] ^= rotated
			state[start+i] ^= g[(i+groupSize-1)%groupSize]
		}
	}
}

// applyRoundDependentTransforms rotates the whole state left by a
// round-dependent bit count and XORs in a round-dependent byte stream.
func (impl *Impl) applyRoundDependentTransforms(state []byte, round int) {
	rot := (round % 8) + 1
	rotated := api.RotateLeftBits(state, rot)
	copy(state, rotated)

	x := byte((round*17 + 83) % 256)
	for i := range state {
		state[i] ^= x + byte(i)
	}
}
