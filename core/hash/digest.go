package hash

import (
	"crypto/subtle"
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a byte slice does not match the length of
// the digest type it is converted to.
var ErrInvalidSize = errors.New("invalid digest size")

// Array is the set of byte array types a digest can be backed by. The array
// length is the digest size, so digests of different sizes are different
// types.
type Array interface {
	[1]byte | [4]byte | [8]byte | [16]byte | [20]byte | [28]byte | [32]byte | [48]byte | [64]byte
}

// Digest is the fixed size output of a hash computation. It is a comparable
// value type: two digests of the same type are equal with == iff their bytes
// are equal, and digests of different sizes cannot be compared at all.
type Digest[A Array] struct {
	sum A
}

// NewDigest creates a digest from an array.
func NewDigest[A Array](sum A) Digest[A] {
	return Digest[A]{sum: sum}
}

// DigestFromBytes creates a digest by copying b, which must be exactly the
// digest size.
func DigestFromBytes[A Array](b []byte) (Digest[A], error) {
	var d Digest[A]
	view := bytesOf(&d.sum)
	if len(b) != len(view) {
		return Digest[A]{}, errors.Wrapf(ErrInvalidSize, "expected %d bytes, got %d", len(view), len(b))
	}
	copy(view, b)
	return d, nil
}

// Bytes returns a view of the digest bytes. The slice aliases the digest and
// must not be modified. Bytes needs an addressable digest, so bind a returned
// digest to a variable before calling it.
func (d *Digest[A]) Bytes() []byte {
	return bytesOf(&d.sum)
}

// Array returns a copy of the underlying array.
func (d Digest[A]) Array() A {
	return d.sum
}

// Size returns the digest length in bytes.
func (d Digest[A]) Size() int {
	return SizeOf[A]()
}

// Equal reports whether two digests hold the same bytes, in constant time.
func (d Digest[A]) Equal(other Digest[A]) bool {
	return subtle.ConstantTimeCompare(d.Bytes(), other.Bytes()) == 1
}

// IsZero reports whether every byte of the digest is zero.
func (d Digest[A]) IsZero() bool {
	var zero A
	return d.sum == zero
}

func (d Digest[A]) String() string {
	return fmt.Sprintf("%v", d.Bytes())
}

func (d Digest[A]) GoString() string {
	return fmt.Sprintf("hash.Digest[%d]%#v", d.Size(), d.Bytes())
}

// SizeOf returns the number of bytes in a digest backed by A.
func SizeOf[A Array]() int {
	var a A
	return len(bytesOf(&a))
}

// bytesOf returns a slice aliasing the array pointed to by a.
func bytesOf[A Array](a *A) []byte {
	switch s := any(a).(type) {
	case *[1]byte:
		return s[:]
	case *[4]byte:
		return s[:]
	case *[8]byte:
		return s[:]
	case *[16]byte:
		return s[:]
	case *[20]byte:
		return s[:]
	case *[28]byte:
		return s[:]
	case *[32]byte:
		return s[:]
	case *[48]byte:
		return s[:]
	case *[64]byte:
		return s[:]
	}
	panic(fmt.Sprintf("unsupported digest array %T", a))
}
