// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import "testing"

func TestIterateInSet(t *testing.T) {
	tests := []struct {
		name     string
		cre, cim float64
	}{
		{"origin", 0, 0},
		{"period two cycle", -1, 0},
		{"cardioid interior", -0.5, 0},
		{"tip of the antenna", -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, magSq := iterate(tt.cre, tt.cim, 100)
			if n != 100 {
				t.Errorf("iterate(%v, %v) = %d iterations, want the cap 100", tt.cre, tt.cim, n)
			}
			if magSq > escapeRadiusSq {
				t.Errorf("in-set point reports escape magnitude %v > %v", magSq, escapeRadiusSq)
			}
		})
	}
}

func TestIterateEscapes(t *testing.T) {
	// c = 2: z runs 0, 2, 6; |6|^2 = 36 crosses the threshold on the
	// second iteration.
	n, magSq := iterate(2, 0, 100)
	if n != 2 {
		t.Errorf("iterate(2, 0) = %d iterations, want 2", n)
	}
	if magSq != 36 {
		t.Errorf("iterate(2, 0) escape magnitude = %v, want 36", magSq)
	}
}

func TestIterateEscapeMagnitudeAboveThreshold(t *testing.T) {
	// Every escaping point must report the magnitude that actually
	// crossed the threshold.
	points := []struct{ cre, cim float64 }{
		{0.5, 0.5}, {-1.5, 1.0}, {0.3, 0.8}, {1.0, 1.0},
	}
	for _, p := range points {
		n, magSq := iterate(p.cre, p.cim, 1000)
		if n == 1000 {
			t.Fatalf("iterate(%v, %v) did not escape, bad test point", p.cre, p.cim)
		}
		if magSq <= escapeRadiusSq {
			t.Errorf("iterate(%v, %v) escaped at %d with magnitude %v, want > %v",
				p.cre, p.cim, n, magSq, escapeRadiusSq)
		}
	}
}

func TestIterateDeterministic(t *testing.T) {
	n1, m1 := iterate(0.3, 0.5, 500)
	n2, m2 := iterate(0.3, 0.5, 500)
	if n1 != n2 || m1 != m2 {
		t.Errorf("repeated calls differ: (%d, %v) vs (%d, %v)", n1, m1, n2, m2)
	}
}
