// Package twox implements the Twox family of non-cryptographic hashers: one
// or more xxHash64 lanes with consecutive seeds, each lane contributing 8
// little endian bytes to the digest. It also provides canonical XXH64, a
// single seed 0 lane written big endian as xxhsum prints it.
package twox

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-hasher/core/hash"
)

// laneSize is the number of digest bytes one xxHash64 lane contributes.
const laneSize = 8

type (
	Array64  = [8]byte
	Array128 = [16]byte
	Array256 = [32]byte

	Digest64  = hash.Digest[Array64]
	Digest128 = hash.Digest[Array128]
	Digest256 = hash.Digest[Array256]
)

var (
	// Info64 describes Twox64. Its digest is the little endian xxHash64 with
	// seed 0, which is byte reversed from the xxh-64 multihash, so it has no
	// registered multicodec.
	Info64 = hash.Info{
		Name:      "twox-64",
		Size:      8,
		BlockSize: 32,
		Rolling:   true,
	}
	// Info128 describes Twox128. It has no registered multicodec.
	Info128 = hash.Info{
		Name:      "twox-128",
		Size:      16,
		BlockSize: 32,
		Rolling:   true,
	}
	// Info256 describes Twox256. It has no registered multicodec.
	Info256 = hash.Info{
		Name:      "twox-256",
		Size:      32,
		BlockSize: 32,
		Rolling:   true,
	}
	// InfoXXH64 describes canonical big endian XXH64.
	InfoXXH64 = hash.Info{
		Name:       "xxh-64",
		Code:       multicodec.Xxh64,
		Registered: true,
		Size:       8,
		BlockSize:  32,
		Rolling:    true,
	}
)

// Hasher runs one xxHash64 lane per 8 bytes of A, lane i seeded with i. The
// zero value is a little endian Twox hasher ready to use.
type Hasher[A hash.Array] struct {
	lanes     []*xxhash.XXHash64
	bigEndian bool
}

var _ hash.Hasher[Array128] = (*Hasher[Array128])(nil)

func (h *Hasher[A]) init() {
	if h.lanes != nil {
		return
	}
	h.lanes = make([]*xxhash.XXHash64, hash.SizeOf[A]()/laneSize)
	for i := range h.lanes {
		h.lanes[i] = xxhash.NewS64(uint64(i))
	}
}

func New64() *Hasher[Array64] {
	return &Hasher[Array64]{}
}

func New128() *Hasher[Array128] {
	return &Hasher[Array128]{}
}

func New256() *Hasher[Array256] {
	return &Hasher[Array256]{}
}

// NewXXH64 returns a canonical XXH64 hasher, whose digest is the big endian
// encoding of the seed 0 xxHash64.
func NewXXH64() *Hasher[Array64] {
	return &Hasher[Array64]{bigEndian: true}
}

func (h *Hasher[A]) Update(p []byte) {
	h.init()
	for _, l := range h.lanes {
		// xxhash never returns an error from Write
		_, _ = l.Write(p)
	}
}

func (h *Hasher[A]) Finalize() hash.Digest[A] {
	h.init()
	var order binary.ByteOrder = binary.LittleEndian
	if h.bigEndian {
		order = binary.BigEndian
	}
	var buf [32]byte
	for i, l := range h.lanes {
		order.PutUint64(buf[i*laneSize:], l.Sum64())
	}
	d, err := hash.DigestFromBytes[A](buf[:len(h.lanes)*laneSize])
	if err != nil {
		panic(err)
	}
	return d
}

func (h *Hasher[A]) Reset() {
	h.init()
	for _, l := range h.lanes {
		l.Reset()
	}
}

func (h *Hasher[A]) BlockSize() int {
	return 32
}

func Sum64(b []byte) Digest64 {
	return hash.Sum[Array64](New64, b)
}

func Sum128(b []byte) Digest128 {
	return hash.Sum[Array128](New128, b)
}

func Sum256(b []byte) Digest256 {
	return hash.Sum[Array256](New256, b)
}

// SumXXH64 returns the canonical XXH64 digest of b.
func SumXXH64(b []byte) Digest64 {
	return hash.Sum[Array64](NewXXH64, b)
}
