package relu

import (
	"github.com/hupe1980/relu/internal/simd"
)

// Lanes is the number of float32 elements one vector group processes.
const Lanes = simd.Lanes

// Tier identifies one ReLU implementation.
type Tier uint8

const (
	// TierScalar is the element-at-a-time reference implementation.
	TierScalar Tier = iota
	// TierVector is the portable 16-lane vector implementation.
	TierVector
	// TierNative is the hardware-specific vector implementation (AVX-512).
	TierNative
)

// String returns the string representation of a Tier.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierVector:
		return "vector"
	case TierNative:
		return "native"
	default:
		return "unknown"
	}
}

// Kernel is a handle to one ReLU implementation.
//
// Kernels can only be obtained from Scalar, Vector, Native, Available or
// Best, so a native kernel always implies that the capability check passed.
// The zero value is the scalar kernel.
type Kernel struct {
	tier Tier
	fn   func(dst, src []float32)
}

// Tier returns the implementation tier of k.
func (k Kernel) Tier() Tier {
	return k.tier
}

// String returns the tier name.
func (k Kernel) String() string {
	return k.tier.String()
}

// Apply returns a newly allocated slice holding max(x[i], +0) for every
// element of x. x is never modified. NaN and -0 map to +0.
// Safe for concurrent use.
func (k Kernel) Apply(x []float32) []float32 {
	out := make([]float32, len(x))
	if k.fn == nil {
		simd.ReLUScalar(out, x)
		return out
	}
	k.fn(out, x)
	return out
}

// Scalar returns the reference kernel.
func Scalar() Kernel {
	return Kernel{tier: TierScalar, fn: simd.ReLUScalar}
}

// Vector returns the portable vector kernel.
func Vector() Kernel {
	return Kernel{tier: TierVector, fn: simd.ReLUVector}
}

// Native returns the hardware-specific kernel, or ErrNativeUnsupported if
// the running CPU (or the build) cannot execute it.
func Native() (Kernel, error) {
	fn, ok := simd.NativeReLU()
	if !ok {
		return Kernel{}, ErrNativeUnsupported
	}
	return Kernel{tier: TierNative, fn: fn}, nil
}

// Available returns every kernel that may run on this machine, ordered
// from TierScalar upwards.
func Available() []Kernel {
	kernels := []Kernel{Scalar(), Vector()}
	if k, err := Native(); err == nil {
		kernels = append(kernels, k)
	}
	return kernels
}

// Best returns the widest kernel available on this machine.
func Best() Kernel {
	if k, err := Native(); err == nil {
		return k
	}
	return Vector()
}

// Apply computes ReLU over x with the kernel selected at startup.
func Apply(x []float32) []float32 {
	out := make([]float32, len(x))
	simd.ReLU(out, x)
	return out
}

// Accelerated reports whether hardware acceleration is usable.
// The result is fixed for the lifetime of the process.
func Accelerated() bool {
	return simd.Accelerated()
}

// ActiveISA returns the name of the instruction set the dispatcher selected.
func ActiveISA() string {
	return simd.ActiveISA().String()
}
