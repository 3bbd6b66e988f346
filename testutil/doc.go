// Package testutil provides testing utilities for relu.
//
// This package is intended for use in tests, benchmarks and the example
// driver only. It provides deterministic input buffers for the kernels.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	buf := make([]float32, 1024)
//	rng.FillUniformRange(buf, -1, 1) // uniform [-1, 1)
//	rng.FillMixed(buf)               // wide magnitudes plus special values
//
// # Fixed Inputs
//
//	testutil.Sawtooth(n)    // (i mod 20) - 10, the reference benchmark input
//	testutil.Alternating(n) // -1, 1, -1, 1, ...
//	testutil.EdgeCases()    // signed zeros, tiny and huge values, NaN, Inf
package testutil
