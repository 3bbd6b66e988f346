package relu

import (
	"context"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Report summarizes a successful verification run.
type Report struct {
	// Length is the number of input elements.
	Length int
	// Verified lists the tiers that ran, oracle first.
	Verified []Tier
	// Skipped lists the tiers the dispatcher did not permit on this machine.
	Skipped []Tier
}

// Verifier runs the scalar oracle and every permitted tier on the same
// input and requires bit-identical output.
//
// A Verifier is safe for concurrent use.
type Verifier struct {
	logger     *Logger
	candidates []Kernel
	skipped    []Tier
	noticeOnce sync.Once
}

// NewVerifier creates a Verifier for the kernels available on this machine.
func NewVerifier(opts ...Option) *Verifier {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &Verifier{
		logger:     o.logger,
		candidates: []Kernel{Vector()},
	}
	if k, err := Native(); err == nil {
		v.candidates = append(v.candidates, k)
	} else {
		v.skipped = append(v.skipped, TierNative)
	}

	return v
}

// Verify is VerifyContext with a background context.
func (v *Verifier) Verify(input []float32) (*Report, error) {
	return v.VerifyContext(context.Background(), input)
}

// VerifyContext compares every candidate tier with the scalar oracle.
//
// The first disagreeing tier stops the run with a *LengthMismatchError or
// a *DivergenceError, both matching ErrDivergence. ctx is only passed to
// the logger; kernels always run to completion.
func (v *Verifier) VerifyContext(ctx context.Context, input []float32) (*Report, error) {
	log := v.logger.WithLength(len(input))

	if len(v.skipped) > 0 {
		v.noticeOnce.Do(func() {
			log.LogAccelerationUnavailable(ctx, ActiveISA())
		})
	}

	oracle := Scalar().Apply(input)
	report := &Report{
		Length:   len(input),
		Verified: []Tier{TierScalar},
		Skipped:  append([]Tier(nil), v.skipped...),
	}

	for _, k := range v.candidates {
		err := compare(k.Tier(), oracle, k.Apply(input))
		log.LogVerify(ctx, k.Tier(), err)
		if err != nil {
			return nil, err
		}
		report.Verified = append(report.Verified, k.Tier())
	}

	return report, nil
}

// MustVerify is like Verify but panics if any tier diverges.
func (v *Verifier) MustVerify(input []float32) *Report {
	report, err := v.Verify(input)
	if err != nil {
		panic(err)
	}
	return report
}

// compare checks got against the oracle bit for bit, so +0 and -0 differ.
func compare(t Tier, want, got []float32) error {
	if len(got) != len(want) {
		return &LengthMismatchError{Tier: t, Expected: len(want), Actual: len(got)}
	}

	var div *DivergenceError
	for i := range want {
		if math.Float32bits(got[i]) == math.Float32bits(want[i]) {
			continue
		}
		if div == nil {
			div = &DivergenceError{
				Tier:       t,
				Index:      i,
				Want:       want[i],
				Got:        got[i],
				Mismatches: roaring.New(),
			}
		}
		div.Count++
		if uint64(i) <= math.MaxUint32 {
			div.Mismatches.Add(uint32(i))
		}
	}

	if div != nil {
		return div
	}
	return nil
}
