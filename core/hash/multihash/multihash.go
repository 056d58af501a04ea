// Package multihash gives typed digests a self-describing identity: a
// multihash (algorithm code, length and digest bytes) and a CIDv1 link.
package multihash

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"
	mh "github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
	"github.com/storacha/go-hasher/core/hash"
)

// ErrUnexpectedCode is returned when decoding a multihash produced by a
// different algorithm than the one asked for.
var ErrUnexpectedCode = errors.New("unexpected multihash code")

// ErrUnregistered is returned for algorithms without a multicodec code.
var ErrUnregistered = errors.New("algorithm has no multihash code")

// Encode returns the multihash of d tagged with code.
func Encode[A hash.Array](code multicodec.Code, d hash.Digest[A]) (mh.Multihash, error) {
	m, err := mh.Encode(d.Bytes(), uint64(code))
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s multihash", code)
	}
	return m, nil
}

// EncodeInfo is Encode using the code of an algorithm descriptor. It fails if
// the algorithm has no registered code or its size differs from the digest.
func EncodeInfo[A hash.Array](info hash.Info, d hash.Digest[A]) (mh.Multihash, error) {
	if !info.Registered {
		return nil, errors.Wrap(ErrUnregistered, info.Name)
	}
	if info.Size != d.Size() {
		return nil, errors.Wrapf(hash.ErrInvalidSize, "%s produces %d byte digests, got %d", info.Name, info.Size, d.Size())
	}
	return Encode(info.Code, d)
}

// Decode parses m, checks it was produced by the algorithm identified by code
// and returns its digest.
func Decode[A hash.Array](code multicodec.Code, m mh.Multihash) (hash.Digest[A], error) {
	dm, err := mh.Decode(m)
	if err != nil {
		return hash.Digest[A]{}, errors.Wrap(err, "decoding multihash")
	}
	if dm.Code != uint64(code) {
		return hash.Digest[A]{}, errors.Wrapf(ErrUnexpectedCode, "expected %s, got 0x%x", code, dm.Code)
	}
	return hash.DigestFromBytes[A](dm.Digest)
}

// Sum hashes b with a fresh hasher and returns the multihash of the result.
func Sum[A hash.Array, H hash.Hasher[A]](info hash.Info, newHasher func() H, b []byte) (mh.Multihash, error) {
	return EncodeInfo(info, hash.Sum[A](newHasher, b))
}

// Link returns the CIDv1 addressing content with the given codec whose
// digest is d.
func Link[A hash.Array](codec multicodec.Code, info hash.Info, d hash.Digest[A]) (cid.Cid, error) {
	m, err := EncodeInfo(info, d)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(uint64(codec), m), nil
}
