package opossum

import "github.com/opossum-cipher/opossum/internal/streamer"

// Stream is an incremental CTR session bound to one (key, iv) pair. It
// is additive to Encrypt/Decrypt: callers who prefer not to buffer a
// whole message up front can use it to process an io.Reader/io.Writer
// pair one chunk at a time, in the style of crypto/cipher.Stream.
type Stream struct {
	inner *streamer.Stream
}

// NewStream starts an incremental CTR session under key and iv, using
// this Cipher's tables, round count and backend.
func (c *Cipher) NewStream(key, iv []byte) (*Stream, error) {
	inner, err := streamer.New(c.backend, c.sbox, c.rounds, key, iv)
	if err != nil {
		return nil, err
	}
	return &Stream{inner: inner}, nil
}

// XORKeyStream XORs src against the next len(src) keystream bytes,
// writing the result to dst. dst and src may overlap exactly.
func (s *Stream) XORKeyStream(dst, src []byte) {
	s.inner.XORKeyStream(dst, src)
}

// Reset clears this Stream's round keys and counter state.
func (s *Stream) Reset() {
	s.inner.Reset()
}
