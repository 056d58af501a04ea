package hash

import (
	"github.com/multiformats/go-multicodec"
)

// Hasher is the running state of an incremental hash computation producing
// digests backed by A.
//
// The digest is a function of the bytes passed to Update since the hasher was
// constructed or last reset, regardless of how they were split across calls.
// A Hasher is not safe for concurrent use.
type Hasher[A Array] interface {
	// Update absorbs p into the hash state. It never fails.
	Update(p []byte)
	// Finalize returns the digest of all bytes absorbed so far. It does not
	// change the observable state unless the hasher reports a destructive
	// finalize, see [RollingFinalize].
	Finalize() Digest[A]
	// Reset restores the hasher to its freshly constructed state.
	Reset()
}

// Sum returns the digest of input computed by a hasher fresh from newHasher,
// which must return a hasher in its initial state. It is identical to
// calling Update once followed by Finalize.
func Sum[A Array, H Hasher[A]](newHasher func() H, input []byte) Digest[A] {
	h := newHasher()
	h.Update(input)
	return h.Finalize()
}

// DestructiveFinalizer is implemented by hashers whose Finalize consumes the
// hash state, after which Update must not be called until Reset.
type DestructiveFinalizer interface {
	DestructiveFinalize() bool
}

// RollingFinalize reports whether h may keep absorbing input after Finalize,
// so that repeated calls yield digests of a growing prefix.
func RollingFinalize(h any) bool {
	if d, ok := h.(DestructiveFinalizer); ok {
		return !d.DestructiveFinalize()
	}
	return true
}

// Info describes a hash algorithm.
type Info struct {
	// Name is the human readable algorithm name.
	Name string
	// Code is the multicodec code of the algorithm. It is only meaningful
	// when Registered is set.
	Code multicodec.Code
	// Registered reports whether the digest is the one multihash defines
	// for Code.
	Registered bool
	// Size is the digest size in bytes.
	Size int
	// BlockSize is the algorithm's underlying block size in bytes.
	BlockSize int
	// Rolling is false when Finalize is destructive.
	Rolling bool
}
