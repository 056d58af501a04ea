package hash

import (
	gohash "hash"
	"io"
)

// Writer adapts a Hasher to io.Writer so it can sit anywhere a byte sink is
// expected. It owns the wrapped hasher; callers should not use the hasher
// directly once wrapped.
type Writer[A Array, H Hasher[A]] struct {
	h H
}

var _ io.Writer = (*Writer[[32]byte, Hasher[[32]byte]])(nil)

// NewWriter wraps h.
func NewWriter[A Array, H Hasher[A]](h H) *Writer[A, H] {
	return &Writer[A, H]{h: h}
}

// Write absorbs p and always reports it was written in full.
func (w *Writer[A, H]) Write(p []byte) (int, error) {
	w.h.Update(p)
	return len(p), nil
}

// Flush is a no-op, hashers do not buffer output.
func (w *Writer[A, H]) Flush() error {
	return nil
}

func (w *Writer[A, H]) Finalize() Digest[A] {
	return w.h.Finalize()
}

func (w *Writer[A, H]) Reset() {
	w.h.Reset()
}

// Hasher returns the wrapped hasher.
func (w *Writer[A, H]) Hasher() H {
	return w.h
}

// Copy copies src to dst, hashing the copied bytes with h, until EOF or an
// error. It returns the number of bytes copied and the digest of those bytes.
// The digest is only meaningful when err is nil.
func Copy[A Array, H Hasher[A]](dst io.Writer, src io.Reader, h H) (int64, Digest[A], error) {
	w := NewWriter[A](h)
	n, err := io.Copy(io.MultiWriter(dst, w), src)
	if err != nil {
		return n, Digest[A]{}, err
	}
	return n, w.Finalize(), nil
}

// blockSizer is implemented by hashers that know their block size.
type blockSizer interface {
	BlockSize() int
}

type stdHash[A Array, H Hasher[A]] struct {
	*Writer[A, H]
}

var _ gohash.Hash = stdHash[[32]byte, Hasher[[32]byte]]{}

func (s stdHash[A, H]) Sum(b []byte) []byte {
	d := s.Finalize()
	return append(b, d.Bytes()...)
}

func (s stdHash[A, H]) Size() int {
	return SizeOf[A]()
}

func (s stdHash[A, H]) BlockSize() int {
	if bs, ok := any(s.h).(blockSizer); ok {
		return bs.BlockSize()
	}
	return 1
}

// AsHash exposes h as a standard library hash.Hash.
func AsHash[A Array, H Hasher[A]](h H) gohash.Hash {
	return stdHash[A, H]{NewWriter[A](h)}
}
