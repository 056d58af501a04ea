// Package hashertest checks that a hasher implementation honours the
// hasher contract.
package hashertest

import (
	"bytes"
	"testing"

	"github.com/storacha/go-hasher/core/hash"
	"github.com/storacha/go-hasher/testing/fixtures"
	"github.com/storacha/go-hasher/testing/helpers"
	"github.com/stretchr/testify/require"
)

var inputSizes = []int{0, 1, 7, 63, 64, 65, 1000, 8193}

// Run exercises the hasher contract against hashers built by newHasher and,
// when given, checks the known answer vectors.
func Run[A hash.Array, H hash.Hasher[A]](t *testing.T, newHasher func() H, vectors []fixtures.Vector) {
	t.Helper()

	t.Run("size", func(t *testing.T) {
		d := newHasher().Finalize()
		require.Equal(t, hash.SizeOf[A](), d.Size())
		require.Len(t, d.Bytes(), d.Size())
	})

	t.Run("vectors", func(t *testing.T) {
		for _, v := range vectors {
			d := hash.Sum[A](newHasher, v.Input)
			require.Equal(t, v.Digest, d.Bytes(), "input %q", v.Input)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		a := hash.Sum[A](newHasher, nil)
		b := hash.Sum[A](newHasher, []byte{})
		require.Equal(t, a, b)
		require.Equal(t, a, newHasher().Finalize())
	})

	t.Run("chunking invariance", func(t *testing.T) {
		for _, size := range inputSizes {
			input := helpers.RandomBytes(size)
			want := hash.Sum[A](newHasher, input)
			for _, n := range []int{1, 2, 3, 17} {
				h := newHasher()
				for _, c := range helpers.Chunks(input, n) {
					h.Update(c)
				}
				require.Equal(t, want, h.Finalize(), "size %d in %d chunks", size, n)
			}
		}
	})

	t.Run("one-shot equivalence", func(t *testing.T) {
		for _, size := range inputSizes {
			input := helpers.RandomBytes(size)
			h := newHasher()
			h.Update(input)
			require.Equal(t, h.Finalize(), hash.Sum[A](newHasher, input))
		}
	})

	t.Run("reset", func(t *testing.T) {
		input := helpers.RandomBytes(100)
		h := newHasher()
		h.Update(helpers.RandomBytes(333))
		h.Reset()
		require.Equal(t, newHasher().Finalize(), h.Finalize())
		h.Update(input)
		require.Equal(t, hash.Sum[A](newHasher, input), h.Finalize())
	})

	t.Run("determinism", func(t *testing.T) {
		input := helpers.RandomBytes(500)
		a := hash.Sum[A](newHasher, input)
		b := hash.Sum[A](newHasher, bytes.Clone(input))
		require.Equal(t, a, b)
		require.True(t, a.Equal(b))
	})

	t.Run("finalize", func(t *testing.T) {
		h := newHasher()
		if !hash.RollingFinalize(h) {
			t.Skip("finalize is destructive")
		}
		first, second := helpers.RandomBytes(70), helpers.RandomBytes(90)
		h.Update(first)
		require.Equal(t, h.Finalize(), h.Finalize())
		require.Equal(t, hash.Sum[A](newHasher, first), h.Finalize())

		h.Update(second)
		require.Equal(t, hash.Sum[A](newHasher, append(bytes.Clone(first), second...)), h.Finalize())
	})

	t.Run("writer", func(t *testing.T) {
		input := helpers.RandomBytes(4096)
		w := hash.NewWriter[A](newHasher())
		for _, c := range helpers.Chunks(input, 5) {
			n, err := w.Write(c)
			require.NoError(t, err)
			require.Equal(t, len(c), n)
		}
		require.NoError(t, w.Flush())
		require.Equal(t, hash.Sum[A](newHasher, input), w.Finalize())
	})

	t.Run("stdlib hash", func(t *testing.T) {
		input := helpers.RandomBytes(300)
		h := hash.AsHash[A](newHasher())
		_, err := h.Write(input)
		require.NoError(t, err)
		want := hash.Sum[A](newHasher, input)
		require.Equal(t, want.Bytes(), h.Sum(nil))
		require.Equal(t, append([]byte{1, 2}, want.Bytes()...), h.Sum([]byte{1, 2}))
		require.Equal(t, hash.SizeOf[A](), h.Size())
		require.Positive(t, h.BlockSize())
	})
}
