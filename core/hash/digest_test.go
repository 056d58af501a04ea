package hash_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/storacha/go-hasher/core/hash"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	t.Run("bytes view", func(t *testing.T) {
		d := hash.NewDigest([4]byte{1, 2, 3, 4})
		require.Equal(t, []byte{1, 2, 3, 4}, d.Bytes())
		require.Equal(t, 4, d.Size())
		require.Equal(t, [4]byte{1, 2, 3, 4}, d.Array())

		// the view aliases the digest rather than a copy
		b := d.Bytes()
		require.Same(t, &b[0], &d.Bytes()[0])
	})

	t.Run("equality", func(t *testing.T) {
		a := hash.NewDigest([20]byte{1})
		b := hash.NewDigest([20]byte{1})
		c := hash.NewDigest([20]byte{2})
		require.True(t, a == b)
		require.True(t, a.Equal(b))
		require.False(t, a == c)
		require.False(t, a.Equal(c))
	})

	t.Run("sizes are distinct types", func(t *testing.T) {
		var d32 any = hash.NewDigest([32]byte{})
		var d20 any = hash.NewDigest([20]byte{})
		require.NotEqual(t, d32, d20)
		_, ok := d32.(hash.Digest[[20]byte])
		require.False(t, ok)
		require.Equal(t, 32, hash.SizeOf[[32]byte]())
		require.Equal(t, 20, hash.SizeOf[[20]byte]())
	})

	t.Run("from bytes", func(t *testing.T) {
		d, err := hash.DigestFromBytes[[8]byte]([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		require.NoError(t, err)
		require.Equal(t, hash.NewDigest([8]byte{1, 2, 3, 4, 5, 6, 7, 8}), d)

		for _, b := range [][]byte{nil, {1, 2, 3}, make([]byte, 9)} {
			_, err := hash.DigestFromBytes[[8]byte](b)
			require.Error(t, err)
			require.True(t, errors.Is(err, hash.ErrInvalidSize))
		}
	})

	t.Run("from bytes copies", func(t *testing.T) {
		src := []byte{9, 9, 9, 9}
		d, err := hash.DigestFromBytes[[4]byte](src)
		require.NoError(t, err)
		src[0] = 0
		require.Equal(t, byte(9), d.Bytes()[0])
	})

	t.Run("zero", func(t *testing.T) {
		require.True(t, hash.Digest[[16]byte]{}.IsZero())
		require.False(t, hash.NewDigest([16]byte{15: 1}).IsZero())
	})

	t.Run("formatting", func(t *testing.T) {
		d := hash.NewDigest([4]byte{0xde, 0xad, 0xbe, 0xef})
		require.Equal(t, "[222 173 190 239]", d.String())
		require.Equal(t, "[222 173 190 239]", fmt.Sprint(d))
		require.Equal(t, "hash.Digest[4][]byte{0xde, 0xad, 0xbe, 0xef}", fmt.Sprintf("%#v", d))
	})
}
