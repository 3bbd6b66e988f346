package simd

// Lanes is the number of float32 elements in one vector group.
const Lanes = 16

// Vec16 is a portable 16-lane float32 vector.
type Vec16 [Lanes]float32

// Mask16 holds one bit per lane; bit j set means lane j is selected.
type Mask16 uint16

// Load creates a vector from the first Lanes elements of src.
// Panics if len(src) < Lanes.
func Load(src []float32) Vec16 {
	return Vec16(src[:Lanes])
}

// Store writes all lanes of v to the first Lanes elements of dst.
// Panics if len(dst) < Lanes.
func Store(v Vec16, dst []float32) {
	copy(dst[:Lanes], v[:])
}

// Zero creates a vector with all lanes set to +0.
func Zero() Vec16 {
	return Vec16{}
}

// GreaterThan returns a mask of lanes where a > b.
// The comparison is ordered: lanes holding NaN are never selected.
func GreaterThan(a, b Vec16) Mask16 {
	var m Mask16
	for i := range a {
		if a[i] > b[i] {
			m |= 1 << i
		}
	}
	return m
}

// IfThenElse selects a's lane where mask is set, b's lane otherwise.
func IfThenElse(mask Mask16, a, b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		if mask&(1<<i) != 0 {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}
