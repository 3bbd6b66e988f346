//go:build amd64 && !noasm

package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReLUAVX512Dispatch(t *testing.T) {
	fn, ok := NativeReLU()
	if ActiveISA() != AVX512 {
		assert.False(t, ok)
		assert.Nil(t, fn)
		t.Skip("AVX-512F not in use on this machine")
	}
	require.True(t, ok)

	// Exactly one full group leaves no scalar tail; 16+15 leaves the longest one.
	for _, n := range []int{Lanes, 2*Lanes - 1, 4 * Lanes} {
		src := sawtooth(n)
		want := make([]float32, n)
		got := make([]float32, n)

		ReLUScalar(want, src)
		fn(got, src)

		assert.Equal(t, bitsOf(want), bitsOf(got), "n=%d", n)
	}
}
