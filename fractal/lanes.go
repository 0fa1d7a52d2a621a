// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

// This file provides the fixed-width lane primitives used by the
// vectorized kernel. The kernel always operates on laneCount points at
// a time, so the vector and mask types are arrays rather than slices;
// the compiler keeps them in registers and the operations below compile
// to straight-line code.

// laneCount is the vector width of the portable kernel: the number of
// pixels iterated per kernel call.
const laneCount = 4

// vec is a fixed-width vector of float64 lanes.
type vec [laneCount]float64

// mask records which lanes are active.
type mask [laneCount]bool

// set returns a vector with all lanes set to the same value.
func set(v float64) vec {
	return vec{v, v, v, v}
}

// add performs lane-wise addition.
func add(a, b vec) vec {
	var r vec
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// sub performs lane-wise subtraction.
func sub(a, b vec) vec {
	var r vec
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// mul performs lane-wise multiplication.
func mul(a, b vec) vec {
	var r vec
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// fma computes a*b + c per lane. The multiply and add round separately,
// matching the scalar kernel's arithmetic exactly.
func fma(a, b, c vec) vec {
	var r vec
	for i := range r {
		r[i] = a[i]*b[i] + c[i]
	}
	return r
}

// greaterThan returns a mask of the lanes where a > b.
func greaterThan(a, b vec) mask {
	var m mask
	for i := range m {
		m[i] = a[i] > b[i]
	}
	return m
}

// ifThenElse selects yes where the mask is active and no elsewhere.
func ifThenElse(m mask, yes, no vec) vec {
	var r vec
	for i := range r {
		if m[i] {
			r[i] = yes[i]
		} else {
			r[i] = no[i]
		}
	}
	return r
}

// andNot returns a && !b per lane.
func andNot(a, b mask) mask {
	var r mask
	for i := range r {
		r[i] = a[i] && !b[i]
	}
	return r
}

// anyTrue reports whether at least one lane is active.
func (m mask) anyTrue() bool {
	for _, bit := range m {
		if bit {
			return true
		}
	}
	return false
}
