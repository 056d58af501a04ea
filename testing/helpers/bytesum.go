package helpers

import "github.com/storacha/go-hasher/core/hash"

// ByteSum is a trivial hasher whose one byte digest is the sum of its input
// bytes modulo 256. It is useful for checking code written against the hasher
// contract without depending on a real algorithm.
type ByteSum struct {
	sum byte
}

var _ hash.Hasher[[1]byte] = (*ByteSum)(nil)

func NewByteSum() *ByteSum {
	return &ByteSum{}
}

func (b *ByteSum) Update(p []byte) {
	for _, c := range p {
		b.sum += c
	}
}

func (b *ByteSum) Finalize() hash.Digest[[1]byte] {
	return hash.NewDigest([1]byte{b.sum})
}

func (b *ByteSum) Reset() {
	b.sum = 0
}
