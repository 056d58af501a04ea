// Package keccak implements the legacy Keccak-256 hasher used by Ethereum
// and the standardised SHA3-256.
package keccak

import (
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/core/hash/stdhash"
	"golang.org/x/crypto/sha3"
)

const (
	Code     = multicodec.Keccak256
	CodeSHA3 = multicodec.Sha3_256

	Size = 32
)

type Array = [Size]byte

type Digest = hash.Digest[Array]

type Hasher = stdhash.Hasher[Array]

// keccak-256 and sha3-256 share a 136 byte rate
const rate = 136

var (
	Info = hash.Info{
		Name:       "keccak-256",
		Code:       Code,
		Registered: true,
		Size:       Size,
		BlockSize:  rate,
		Rolling:    true,
	}
	InfoSHA3 = hash.Info{
		Name:       "sha3-256",
		Code:       CodeSHA3,
		Registered: true,
		Size:       Size,
		BlockSize:  rate,
		Rolling:    true,
	}
)

// New returns a legacy Keccak-256 hasher (pre-standard padding).
func New() *Hasher {
	return stdhash.New[Array](sha3.NewLegacyKeccak256())
}

// NewSHA3 returns a FIPS 202 SHA3-256 hasher.
func NewSHA3() *Hasher {
	return stdhash.New[Array](sha3.New256())
}

// Sum returns the Keccak-256 digest of b.
func Sum(b []byte) Digest {
	return hash.Sum[Array](New, b)
}

// SumSHA3 returns the SHA3-256 digest of b.
func SumSHA3(b []byte) Digest {
	return hash.Sum[Array](NewSHA3, b)
}
