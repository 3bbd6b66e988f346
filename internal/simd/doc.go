// Package simd provides the ReLU kernels and their runtime dispatch.
//
// # Supported Platforms
//
//   - x86-64: AVX-512F (16 float32 lanes per ZMM register)
//   - everything else: scalar and portable 16-lane Go kernels
//
// Runtime CPU feature detection selects the optimal implementation.
// Build with -tags noasm to force the generic Go fallback, or set
// RELU_SIMD=generic to disable the native kernel at runtime.
//
// # Kernels
//
//   - ReLUScalar: the reference implementation every other tier must match
//   - ReLUVector: 16-lane compare-and-select in portable Go
//   - NativeReLU: AVX-512 assembly, handed out only when supported
//
// All kernels compute dst[i] = src[i] if src[i] > 0, else +0. NaN and -0
// map to +0.
package simd
