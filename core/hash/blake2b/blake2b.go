// Package blake2b implements BLAKE2b hashers with 256 and 128 bit output.
package blake2b

import (
	"github.com/multiformats/go-multicodec"
	"github.com/pkg/errors"
	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/core/hash/stdhash"
	"golang.org/x/crypto/blake2b"
)

const (
	Code256 = multicodec.Blake2b256
	Code128 = multicodec.Blake2b128

	Size256 = blake2b.Size256
	Size128 = 16
)

type (
	Array256 = [Size256]byte
	Array128 = [Size128]byte

	Digest256 = hash.Digest[Array256]
	Digest128 = hash.Digest[Array128]

	Hasher256 = stdhash.Hasher[Array256]
	Hasher128 = stdhash.Hasher[Array128]
)

var (
	Info256 = hash.Info{
		Name:       "blake2b-256",
		Code:       Code256,
		Registered: true,
		Size:       Size256,
		BlockSize:  blake2b.BlockSize,
		Rolling:    true,
	}
	Info128 = hash.Info{
		Name:       "blake2b-128",
		Code:       Code128,
		Registered: true,
		Size:       Size128,
		BlockSize:  blake2b.BlockSize,
		Rolling:    true,
	}
)

// New256 returns an unkeyed BLAKE2b-256 hasher.
func New256() *Hasher256 {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only possible with an oversized key
		panic(err)
	}
	return stdhash.New[Array256](h)
}

// New128 returns an unkeyed BLAKE2b-128 hasher.
func New128() *Hasher128 {
	h, err := blake2b.New(Size128, nil)
	if err != nil {
		panic(err)
	}
	return stdhash.New[Array128](h)
}

// NewKeyed256 returns a BLAKE2b-256 hasher in MAC mode. The key must be at
// most 64 bytes. Reset keeps the key.
func NewKeyed256(key []byte) (*Hasher256, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return nil, errors.Wrap(err, "creating keyed blake2b-256")
	}
	return stdhash.New[Array256](h), nil
}

// Sum256 returns the BLAKE2b-256 digest of b.
func Sum256(b []byte) Digest256 {
	return hash.Sum[Array256](New256, b)
}

// Sum128 returns the BLAKE2b-128 digest of b.
func Sum128(b []byte) Digest128 {
	return hash.Sum[Array128](New128, b)
}
