// Package opossum implements the Opossum block cipher: a 2048-bit-block,
// 2048-bit-key substitution-permutation network wrapped in counter (CTR)
// mode.
//
// Opossum is an experimental, unvetted construction. It is not a
// cryptographically reviewed primitive and should not be relied on for
// anything requiring real security; its value is that its transform is
// fully specified and reproducible, so conforming implementations
// interoperate bit-for-bit.
package opossum

import (
	"github.com/opossum-cipher/opossum/internal/api"
	"github.com/opossum-cipher/opossum/internal/batched"
	"github.com/opossum-cipher/opossum/internal/ctr"
	"github.com/opossum-cipher/opossum/internal/refimpl"
	"github.com/opossum-cipher/opossum/internal/tables"
)

const (
	// BlockSize is the Opossum block size in bytes.
	BlockSize = api.BlockSize

	// KeySize is the Opossum master key size in bytes.
	KeySize = api.KeySize

	// IVSize is the Opossum CTR IV size in bytes.
	IVSize = api.IVSize

	// DefaultRounds is the round count used by NewCipher unless
	// overridden with WithRounds.
	DefaultRounds = api.DefaultRounds
)

var (
	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = api.ErrInvalidKeySize

	// ErrInvalidIVSize is returned when an IV is not exactly IVSize bytes.
	ErrInvalidIVSize = api.ErrInvalidIVSize

	// ErrInvalidBlockSize is returned by internal block-level calls on a
	// malformed block; unreachable through Cipher's public methods.
	ErrInvalidBlockSize = api.ErrInvalidBlockSize

	// ErrInvalidRoundCount is returned by NewCipher when WithRounds is
	// given a value less than 1.
	ErrInvalidRoundCount = api.ErrInvalidRoundCount
)

// Backend selects which api.BlockCipher implementation a Cipher drives.
type Backend int

const (
	// BackendReference is the portable, allocation-per-block backend.
	// It is the default and the one every backend is verified against.
	BackendReference Backend = iota

	// BackendBatched behaves identically to BackendReference but reuses
	// pooled scratch buffers across calls; worth it for long streams,
	// unnecessary for one-off small messages.
	BackendBatched
)

// Option configures a Cipher at construction time.
type Option func(*cipherConfig)

type cipherConfig struct {
	rounds  int
	backend Backend
}

// WithRounds overrides the round count used by the block primitive.
// The default, matching the design's recommended parameterization, is
// DefaultRounds.
func WithRounds(rounds int) Option {
	return func(cfg *cipherConfig) {
		cfg.rounds = rounds
	}
}

// WithBackend selects the block-cipher implementation a Cipher drives.
func WithBackend(backend Backend) Option {
	return func(cfg *cipherConfig) {
		cfg.backend = backend
	}
}

// Cipher owns the S-box, inverse S-box, permutation table and round
// count built at construction time. It holds no key material and is
// safe to share across goroutines for concurrent Encrypt/Decrypt calls,
// provided each call supplies its own key and IV.
type Cipher struct {
	rounds  int
	sbox    [api.BlockSize]byte
	invSBox [api.BlockSize]byte
	perm    [api.BlockSize]int
	backend api.BlockCipher
}

// NewCipher builds a Cipher's tables and selects its backend. It
// performs no I/O.
func NewCipher(opts ...Option) (*Cipher, error) {
	cfg := cipherConfig{rounds: DefaultRounds, backend: BackendReference}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rounds < 1 {
		return nil, ErrInvalidRoundCount
	}

	sbox, invSBox := tables.DefaultSBox()
	perm := tables.BuildPermutation()

	var backend api.BlockCipher
	switch cfg.backend {
	case BackendBatched:
		backend = batched.New(sbox, perm, cfg.rounds)
	default:
		backend = refimpl.New(sbox, perm, cfg.rounds)
	}

	return &Cipher{
		rounds:  cfg.rounds,
		sbox:    sbox,
		invSBox: invSBox,
		perm:    perm,
		backend: backend,
	}, nil
}

// Encrypt XORs plaintext against the Opossum CTR keystream derived from
// key and iv, returning a ciphertext the same length as plaintext.
func (c *Cipher) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	return ctr.Run(c.backend, c.sbox, c.rounds, plaintext, key, iv)
}

// Decrypt is bit-identical to Encrypt: CTR mode is an involution over
// its keystream, so there is no separate decryption algorithm.
func (c *Cipher) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	return ctr.Run(c.backend, c.sbox, c.rounds, ciphertext, key, iv)
}

// SBox returns a copy of the substitution box this Cipher was built
// with. Exposed for callers validating invariants (§8 of the design
// notes) without reaching into internal packages.
func (c *Cipher) SBox() [api.BlockSize]byte {
	return c.sbox
}

// InvSBox returns a copy of this Cipher's inverse substitution box.
func (c *Cipher) InvSBox() [api.BlockSize]byte {
	return c.invSBox
}

// Permutation returns a copy of this Cipher's byte-position permutation
// table.
func (c *Cipher) Permutation() [api.BlockSize]int {
	return c.perm
}

// Rounds returns the round count this Cipher was constructed with.
func (c *Cipher) Rounds() int {
	return c.rounds
}
