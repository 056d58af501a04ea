package sha512

import (
	"testing"

	"github.com/storacha/go-hasher/testing/fixtures"
	"github.com/storacha/go-hasher/testing/hashertest"
)

func TestSHA512(t *testing.T) {
	hashertest.Run[Array](t, New, fixtures.SHA512)
}
