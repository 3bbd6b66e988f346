package relu

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrNativeUnsupported is returned when the native kernel cannot run here.
	ErrNativeUnsupported = errors.New("relu: native kernel not supported on this CPU")

	// ErrDivergence is matched by every error reporting a tier that
	// disagrees with the scalar oracle.
	ErrDivergence = errors.New("relu: kernel diverged from scalar oracle")
)

// DivergenceError reports element values that differ from the oracle.
//
// Index, Want and Got describe the first diverging element. Mismatches holds
// every diverging index up to math.MaxUint32; Count includes all of them.
type DivergenceError struct {
	Tier       Tier
	Index      int
	Want       float32
	Got        float32
	Count      uint64
	Mismatches *roaring.Bitmap
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("relu: %s tier diverged from scalar oracle at index %d: got %v (0x%08x), want %v (0x%08x); %d mismatched elements",
		e.Tier, e.Index, e.Got, math.Float32bits(e.Got), e.Want, math.Float32bits(e.Want), e.Count)
}

func (e *DivergenceError) Unwrap() error { return ErrDivergence }

// LengthMismatchError reports a tier whose output length differs from the
// oracle's.
type LengthMismatchError struct {
	Tier     Tier
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("relu: %s tier output length mismatch: expected %d, got %d", e.Tier, e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrDivergence }
