package simd

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with SIMD versions when available.
var (
	kernelReLU = reluVector

	// nativeReLU stays nil unless the active ISA provides a native kernel.
	nativeReLU func(dst, src []float32)
)

// ============================================================================
// Public API - Zero-overhead dispatch through function pointers
// ============================================================================

// ReLU writes max(src[i], +0) to dst[i] using the best available kernel.
//
// SAFETY: Assumes len(dst) >= len(src). Caller MUST ensure this.
func ReLU(dst, src []float32) {
	kernelReLU(dst, src)
}

// ReLUScalar is the element-at-a-time reference kernel.
func ReLUScalar(dst, src []float32) {
	reluScalar(dst, src)
}

// ReLUVector processes src in groups of Lanes elements with portable
// vector operations and finishes the remainder with the scalar kernel.
func ReLUVector(dst, src []float32) {
	reluVector(dst, src)
}

// NativeReLU returns the hardware-specific kernel and true, or nil and
// false when the running CPU (or the build) does not support it.
// The returned function has the same contract as ReLU.
func NativeReLU() (func(dst, src []float32), bool) {
	return nativeReLU, nativeReLU != nil
}

// ============================================================================
// Generic kernels
// ============================================================================

func reluScalar(dst, src []float32) {
	dst = dst[:len(src)]
	for i, x := range src {
		if x > 0 {
			dst[i] = x
		} else {
			dst[i] = 0
		}
	}
}

func reluVector(dst, src []float32) {
	n := len(src)
	dst = dst[:n]
	zero := Zero()

	i := 0
	for ; i+Lanes <= n; i += Lanes {
		v := Load(src[i:])
		Store(IfThenElse(GreaterThan(v, zero), v, zero), dst[i:])
	}

	reluScalar(dst[i:], src[i:])
}
