// Package blake3 implements the BLAKE3 hasher with 256 bit output, in plain,
// keyed and key derivation modes.
package blake3

import (
	"github.com/multiformats/go-multicodec"
	"github.com/pkg/errors"
	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/core/hash/stdhash"
	"github.com/zeebo/blake3"
)

const Code = multicodec.Blake3

// Size is the default BLAKE3 output length.
const Size = 32

// KeySize is the length of a BLAKE3 key.
const KeySize = 32

type Array = [Size]byte

type Digest = hash.Digest[Array]

type Hasher = stdhash.Hasher[Array]

var Info = hash.Info{
	Name:       "blake3",
	Code:       Code,
	Registered: true,
	Size:       Size,
	BlockSize:  64,
	Rolling:    true,
}

// ErrInvalidKey is returned for keys that are not KeySize bytes.
var ErrInvalidKey = errors.New("blake3 key must be 32 bytes")

func New() *Hasher {
	return stdhash.New[Array](blake3.New())
}

// NewKeyed returns a hasher in keyed mode. Hashes computed with different
// keys are unrelated, which gives domain separation between uses of the same
// input. Reset keeps the key.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeySize {
		return nil, errors.Wrapf(ErrInvalidKey, "got %d bytes", len(key))
	}
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, errors.Wrap(err, "creating keyed blake3")
	}
	return stdhash.New[Array](h), nil
}

// NewDeriveKey returns a hasher in key derivation mode for the given context
// string.
func NewDeriveKey(context string) *Hasher {
	return stdhash.New[Array](blake3.NewDeriveKey(context))
}

func Sum(b []byte) Digest {
	return hash.Sum[Array](New, b)
}
