// Package sha256 implements the SHA2-256 hasher.
package sha256

import (
	"github.com/minio/sha256-simd"
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/core/hash/stdhash"
)

// sha2-256
const Code = multicodec.Sha2_256

// sha2-256 hash has a 32-byte sum
const Size = sha256.Size

type Array = [Size]byte

type Digest = hash.Digest[Array]

type Hasher = stdhash.Hasher[Array]

var Info = hash.Info{
	Name:       "sha2-256",
	Code:       Code,
	Registered: true,
	Size:       Size,
	BlockSize:  sha256.BlockSize,
	Rolling:    true,
}

// New returns a SHA2-256 hasher in its initial state.
func New() *Hasher {
	return stdhash.New[Array](sha256.New())
}

// Sum returns the SHA2-256 digest of b.
func Sum(b []byte) Digest {
	return hash.Sum[Array](New, b)
}
