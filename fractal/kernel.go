// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

// escapeRadiusSq is the squared escape threshold: a point has escaped
// once |z|^2 exceeds it.
const escapeRadiusSq = 4.0

// iterate runs the escape-time recurrence z <- z^2 + c from z = 0 for a
// single point. It returns the iteration count at which the point first
// exceeded the escape threshold (or maxIter if it never did) and |z|^2
// at loop exit.
//
// Pure and allocation-free. The vectorized kernel in kernel_vector.go
// performs these arithmetic steps in the same order, so for any c both
// kernels produce bit-identical results.
func iterate(cre, cim float64, maxIter int) (n int, magSq float64) {
	var zre, zim float64
	for n < maxIter {
		zre, zim = zre*zre-zim*zim+cre, 2*zre*zim+cim
		n++
		magSq = zre*zre + zim*zim
		if magSq > escapeRadiusSq {
			break
		}
	}
	return n, magSq
}
