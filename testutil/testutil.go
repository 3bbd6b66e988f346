package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// FillMixed fills dst with values of both signs spanning magnitudes from
// 1e-40 (subnormal) to 1e38, with roughly one in sixteen drawn from
// EdgeCases.
func (r *RNG) FillMixed(dst []float32) {
	edges := EdgeCases()

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		if r.rand.Intn(16) == 0 {
			dst[i] = edges[r.rand.Intn(len(edges))]
			continue
		}
		mag := math.Pow(10, float64(r.rand.Intn(79)-40))
		dst[i] = float32((r.rand.Float64()*2 - 1) * mag)
	}
}

// Sawtooth returns n values following (i mod 20) - 10.
func Sawtooth(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(i%20) - 10
	}
	return v
}

// Alternating returns n values -1, 1, -1, 1, ...
func Alternating(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		if i%2 == 0 {
			v[i] = -1
		} else {
			v[i] = 1
		}
	}
	return v
}

// EdgeCases returns threshold and special values:
// -0, +0, -1e-30, 1e-30, -MaxFloat32, MaxFloat32, NaN, +Inf, -Inf,
// and the smallest subnormal of each sign.
func EdgeCases() []float32 {
	tiny := float32(math.SmallestNonzeroFloat32)
	return []float32{
		float32(math.Copysign(0, -1)),
		0,
		-1e-30,
		1e-30,
		-math.MaxFloat32,
		math.MaxFloat32,
		float32(math.NaN()),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		tiny,
		-tiny,
	}
}

// ReLU is the textbook definition used as an independent reference:
// x if x > 0, otherwise +0.
func ReLU(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}
