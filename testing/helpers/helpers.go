package helpers

import (
	crand "crypto/rand"
	"math/rand"
	"slices"
)

// Must takes return values from a function and returns the non-error one. If
// the error value is non-nil then it panics.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func RandomBytes(size int) []byte {
	bytes := make([]byte, size)
	_, _ = crand.Read(bytes)
	return bytes
}

// Chunks splits b into n consecutive, possibly empty, chunks at random
// boundaries. Concatenating the result yields b.
func Chunks(b []byte, n int) [][]byte {
	if n < 1 {
		n = 1
	}
	cuts := make([]int, n-1)
	for i := range cuts {
		cuts[i] = rand.Intn(len(b) + 1)
	}
	slices.Sort(cuts)

	chunks := make([][]byte, 0, n)
	prev := 0
	for _, c := range cuts {
		chunks = append(chunks, b[prev:c])
		prev = c
	}
	return append(chunks, b[prev:])
}
