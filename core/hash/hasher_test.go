package hash_test

import (
	"testing"

	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/testing/hashertest"
	"github.com/storacha/go-hasher/testing/helpers"
	"github.com/stretchr/testify/require"
)

func TestByteSum(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		d := hash.Sum[[1]byte](helpers.NewByteSum, []byte{1, 2, 3})
		require.Equal(t, []byte{6}, d.Bytes())

		h := helpers.NewByteSum()
		h.Update([]byte{1})
		h.Update([]byte{2, 3})
		require.Equal(t, hash.NewDigest([1]byte{6}), h.Finalize())

		h.Reset()
		require.Equal(t, hash.NewDigest([1]byte{0}), h.Finalize())
		require.Equal(t, hash.NewDigest([1]byte{0}), hash.Sum[[1]byte](helpers.NewByteSum, nil))
	})

	t.Run("wraps", func(t *testing.T) {
		d := hash.Sum[[1]byte](helpers.NewByteSum, []byte{200, 100})
		require.Equal(t, []byte{44}, d.Bytes())
	})

	t.Run("contract", func(t *testing.T) {
		hashertest.Run[[1]byte](t, helpers.NewByteSum, nil)
	})
}

// consuming declares a destructive finalize, like a construction whose
// padding overwrites state.
type consuming struct {
	helpers.ByteSum
}

func (c *consuming) DestructiveFinalize() bool {
	return true
}

func TestRollingFinalize(t *testing.T) {
	require.True(t, hash.RollingFinalize(helpers.NewByteSum()))
	require.False(t, hash.RollingFinalize(&consuming{}))
	require.True(t, hash.RollingFinalize(struct{}{}))

	t.Run("contract", func(t *testing.T) {
		hashertest.Run[[1]byte](t, func() *consuming { return &consuming{} }, nil)
	})
}
