package simd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedKernel struct {
	name string
	fn   func(dst, src []float32)
}

// allKernels returns every kernel that may run on this machine.
func allKernels() []namedKernel {
	ks := []namedKernel{
		{"scalar", ReLUScalar},
		{"vector", ReLUVector},
		{"dispatch", ReLU},
	}
	if fn, ok := NativeReLU(); ok {
		ks = append(ks, namedKernel{"native", fn})
	}
	return ks
}

func run(k namedKernel, src []float32) []float32 {
	dst := make([]float32, len(src))
	k.fn(dst, src)
	return dst
}

func bitsOf(v []float32) []uint32 {
	out := make([]uint32, len(v))
	for i, x := range v {
		out[i] = math.Float32bits(x)
	}
	return out
}

func assertBitsEqual(t *testing.T, want, got []float32) {
	t.Helper()
	require.Len(t, got, len(want))
	assert.Equal(t, bitsOf(want), bitsOf(got))
}

func TestReLUScenario(t *testing.T) {
	in := []float32{-10, -5, 0, 5, 10}
	want := []float32{0, 0, 0, 5, 10}

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			assertBitsEqual(t, want, run(k, in))
		})
	}
}

func TestReLUAlternatingRemainder(t *testing.T) {
	in := make([]float32, 33)
	want := make([]float32, 33)
	for i := range in {
		if i%2 == 0 {
			in[i] = -1
		} else {
			in[i] = 1
			want[i] = 1
		}
	}

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			assertBitsEqual(t, want, run(k, in))
		})
	}
}

func TestReLURemainderLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33} {
		in := make([]float32, n)
		for i := range in {
			in[i] = rng.Float32()*2 - 1
		}
		want := run(namedKernel{"scalar", ReLUScalar}, in)

		for _, k := range allKernels() {
			got := run(k, in)
			require.Len(t, got, n, "%s n=%d", k.name, n)
			assert.Equal(t, bitsOf(want), bitsOf(got), "%s n=%d", k.name, n)
		}
	}
}

func TestReLUEdgeValues(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tiny := float32(math.SmallestNonzeroFloat32)

	in := []float32{negZero, 0, -1e-30, 1e-30, -math.MaxFloat32, math.MaxFloat32, nan, inf, -inf, tiny, -tiny}
	want := []float32{0, 0, 0, 1e-30, 0, math.MaxFloat32, 0, inf, 0, tiny, 0}

	// Repeat so the values also land in full vector groups at every lane.
	var src, expected []float32
	for r := 0; r < Lanes+1; r++ {
		src = append(src, in...)
		expected = append(expected, want...)
	}

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			assertBitsEqual(t, want, run(k, in))
			assertBitsEqual(t, expected, run(k, src))
		})
	}
}

func TestReLUNaNPayloads(t *testing.T) {
	in := make([]float32, Lanes+3)
	for i := range in {
		// Quiet and signalling NaNs of both signs.
		payload := uint32(0x7f800001) + uint32(i)<<12
		if i%2 == 1 {
			payload |= 1 << 31
		}
		in[i] = math.Float32frombits(payload)
	}

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			for i, v := range run(k, in) {
				assert.Equal(t, uint32(0), math.Float32bits(v), "lane %d", i)
			}
		})
	}
}

func TestReLURandomEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(1000)
		in := make([]float32, n)
		for i := range in {
			in[i] = (rng.Float32()*2 - 1) * float32(math.Pow(10, float64(rng.Intn(60)-30)))
		}
		want := run(namedKernel{"scalar", ReLUScalar}, in)

		for _, k := range allKernels() {
			assert.Equal(t, bitsOf(want), bitsOf(run(k, in)), "%s n=%d", k.name, n)
		}
	}
}

func TestReLUIdempotent(t *testing.T) {
	in := make([]float32, 100)
	for i := range in {
		in[i] = float32(i%20) - 10
	}

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			once := run(k, in)
			assertBitsEqual(t, once, run(k, once))
		})
	}
}

func TestReLUBounds(t *testing.T) {
	in := make([]float32, 37)
	for i := range in {
		in[i] = float32(i) - 18
	}
	orig := append([]float32(nil), in...)

	const sentinel = float32(-42)

	for _, k := range allKernels() {
		t.Run(k.name, func(t *testing.T) {
			dst := make([]float32, len(in)+Lanes)
			for i := range dst {
				dst[i] = sentinel
			}
			k.fn(dst, in)

			assert.Equal(t, orig, in, "input must not be modified")
			for i := len(in); i < len(dst); i++ {
				assert.Equal(t, sentinel, dst[i], "wrote past len(src) at %d", i)
			}
		})
	}
}
