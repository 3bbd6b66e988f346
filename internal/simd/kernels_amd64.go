//go:build amd64 && !noasm

package simd

import "unsafe"

// init installs the AVX-512 kernel when the active ISA allows it.
// This runs after capability_amd64.go init() has detected CPU features
// and selected the active ISA.
func init() {
	if activeISA == AVX512 {
		kernelReLU = reluAVX512
		nativeReLU = reluAVX512
	}
}

// reluAvx512 processes groups*16 float32 values from src into dst.
//
//go:noescape
func reluAvx512(dst, src unsafe.Pointer, groups int64)

func reluAVX512(dst, src []float32) {
	n := len(src)
	dst = dst[:n]

	groups := n / Lanes
	if groups > 0 {
		reluAvx512(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), int64(groups))
	}

	tail := groups * Lanes
	reluScalar(dst[tail:], src[tail:])
}
