// Package relu computes the rectified linear unit f(x) = max(x, 0) over
// float32 buffers with runtime-dispatched SIMD kernels.
//
// # Quick Start
//
//	out := relu.Apply(in) // best kernel for this CPU, fresh output slice
//
// # Kernel Tiers
//
// Three interchangeable tiers produce bit-identical results:
//
//	relu.Scalar()  // reference implementation, the oracle
//	relu.Vector()  // portable 16-lane compare-and-select
//	relu.Native()  // AVX-512, only when the CPU supports it
//
// Native returns ErrNativeUnsupported instead of a kernel when acceleration
// is unavailable, so the hardware kernel can never run on a CPU that lacks
// it. Accelerated reports the capability, detected once at startup.
//
// # Numeric Policy
//
// Every tier computes x > 0 ? x : +0 with an ordered comparison. NaN and
// -0 therefore map to +0, positive subnormals are kept, and +Inf is kept.
//
// # Verification
//
//	v := relu.NewVerifier(relu.WithLogger(relu.NewTextLogger(slog.LevelInfo)))
//	report, err := v.Verify(in)
//	if errors.Is(err, relu.ErrDivergence) {
//	    // a kernel bug: fail hard, do not retry
//	}
//
// # Configuration
//
// Build with -tags noasm to compile out the assembly. Setting RELU_SIMD=generic
// disables the native kernel at runtime; the variable can never enable a
// tier the hardware lacks.
package relu
