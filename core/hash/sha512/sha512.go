// Package sha512 implements the SHA2-512 hasher.
package sha512

import (
	"crypto/sha512"

	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/core/hash/stdhash"
)

// sha2-512
const Code = multicodec.Sha2_512

const Size = sha512.Size

type Array = [Size]byte

type Digest = hash.Digest[Array]

type Hasher = stdhash.Hasher[Array]

var Info = hash.Info{
	Name:       "sha2-512",
	Code:       Code,
	Registered: true,
	Size:       Size,
	BlockSize:  sha512.BlockSize,
	Rolling:    true,
}

func New() *Hasher {
	return stdhash.New[Array](sha512.New())
}

func Sum(b []byte) Digest {
	return hash.Sum[Array](New, b)
}
