package keccak

import (
	"testing"

	"github.com/storacha/go-hasher/testing/fixtures"
	"github.com/storacha/go-hasher/testing/hashertest"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	hashertest.Run[Array](t, New, fixtures.Keccak256)
}

func TestSHA3_256(t *testing.T) {
	hashertest.Run[Array](t, NewSHA3, fixtures.SHA3_256)
}

func TestPaddingDiffers(t *testing.T) {
	// same sponge, different domain separation
	require.NotEqual(t, Sum(nil), SumSHA3(nil))
}
