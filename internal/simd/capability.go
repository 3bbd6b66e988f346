package simd

import (
	"os"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the pure Go tiers (scalar and portable vector).
	Generic ISA = iota
	// AVX512 represents x86-64 AVX-512 Foundation (512-bit, 16 float32 lanes).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// OverrideEnv names the environment variable that restricts ISA selection.
const OverrideEnv = "RELU_SIMD"

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if RELU_SIMD was set and honoured.
	hasOverride bool

	// hasAVX512F is set by the platform-specific init when the native
	// kernel is compiled in and the CPU and OS support it.
	hasAVX512F bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA, hasOverride = selectISA(os.Getenv(OverrideEnv))
}

// selectISA resolves the active ISA from an optional override value.
// An override is only honoured when the requested ISA is available, so it
// can restrict the native tier but never enable it.
func selectISA(override string) (ISA, bool) {
	if override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			return isa, true
		}
	}

	return selectBestISA(), false
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case AVX512:
		return hasAVX512F
	default:
		return false
	}
}

// selectBestISA chooses the widest ISA the platform supports.
func selectBestISA() ISA {
	if hasAVX512F {
		return AVX512
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if RELU_SIMD was set and honoured.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX512 returns true if the AVX-512 kernel is compiled in and the CPU
// supports AVX-512F.
func HasAVX512() bool {
	return hasAVX512F
}

// Accelerated reports whether the native vector kernel is in use.
func Accelerated() bool {
	return activeISA != Generic
}
