//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	// HasAVX512F is only set when the OS saves ZMM and opmask state.
	hasAVX512F = cpu.X86.HasAVX512F
	initCapabilities()
}
