// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

// iterateVec runs the escape-time recurrence for laneCount points at
// once. Per lane it returns the same (iteration count, exit |z|^2) pair
// as iterate.
//
// Each step updates z unconditionally for every lane; the iteration
// counters advance only for lanes that were still active going into the
// step. The exit magnitude of a lane is written while the lane is
// active and latched on its active -> inactive transition: the escape
// test runs against the pre-update mask, so once a lane escapes its
// magnitude is never touched again. Overwriting it on later steps would
// silently corrupt smooth coloring for that pixel, because the escaped
// lane's z keeps growing while its siblings finish. The loop exits as
// soon as no lane is active.
func iterateVec(cre, cim vec, maxIter int) (n [laneCount]int, magSq vec) {
	var zre, zim vec
	active := mask{true, true, true, true}
	limit := set(escapeRadiusSq)

	for step := 0; step < maxIter; step++ {
		zre, zim = add(sub(mul(zre, zre), mul(zim, zim)), cre), fma(add(zre, zre), zim, cim)
		for l := range n {
			if active[l] {
				n[l]++
			}
		}

		m := add(mul(zre, zre), mul(zim, zim))
		// Lanes active before this step get the fresh magnitude;
		// inactive lanes keep their latched escape value.
		magSq = ifThenElse(active, m, magSq)

		escaped := greaterThan(m, limit)
		active = andNot(active, escaped)
		if !active.anyTrue() {
			break
		}
	}
	return n, magSq
}
