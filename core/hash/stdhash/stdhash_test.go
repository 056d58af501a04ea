package stdhash_test

import (
	"crypto/md5"
	"crypto/sha1"
	"testing"

	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/core/hash/stdhash"
	"github.com/storacha/go-hasher/testing/hashertest"
	"github.com/stretchr/testify/require"
)

func TestStdHash(t *testing.T) {
	t.Run("sha1", func(t *testing.T) {
		newSHA1 := func() *stdhash.Hasher[[20]byte] { return stdhash.New[[20]byte](sha1.New()) }
		hashertest.Run[[20]byte](t, newSHA1, nil)

		d := hash.Sum[[20]byte](newSHA1, []byte("abc"))
		want := sha1.Sum([]byte("abc"))
		require.Equal(t, want, d.Array())
		require.Equal(t, sha1.BlockSize, newSHA1().BlockSize())
	})

	t.Run("size mismatch", func(t *testing.T) {
		require.Panics(t, func() { stdhash.New[[32]byte](md5.New()) })
	})
}
