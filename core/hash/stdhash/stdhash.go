// Package stdhash adapts standard library style hash.Hash implementations to
// the typed hasher contract.
package stdhash

import (
	"fmt"
	gohash "hash"

	"github.com/storacha/go-hasher/core/hash"
)

// Hasher is a hash.Hasher backed by a hash.Hash. Finalize does not disturb
// the running state since hash.Hash.Sum does not. The zero value has no
// underlying hash and is not usable, construct one with New.
type Hasher[A hash.Array] struct {
	h       gohash.Hash
	scratch [64]byte
}

var _ hash.Hasher[[32]byte] = (*Hasher[[32]byte])(nil)

// New wraps h. It panics if h does not produce digests of exactly the size
// of A, which is a programming error.
func New[A hash.Array](h gohash.Hash) *Hasher[A] {
	if h.Size() != hash.SizeOf[A]() {
		panic(fmt.Sprintf("stdhash: %T produces %d byte digests, want %d", h, h.Size(), hash.SizeOf[A]()))
	}
	return &Hasher[A]{h: h}
}

func (s *Hasher[A]) Update(p []byte) {
	// hash.Hash never returns an error from Write
	_, _ = s.h.Write(p)
}

func (s *Hasher[A]) Finalize() hash.Digest[A] {
	d, err := hash.DigestFromBytes[A](s.h.Sum(s.scratch[:0]))
	if err != nil {
		panic(err)
	}
	return d
}

func (s *Hasher[A]) Reset() {
	s.h.Reset()
}

func (s *Hasher[A]) BlockSize() int {
	return s.h.BlockSize()
}
