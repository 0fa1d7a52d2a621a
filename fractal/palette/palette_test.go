// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package palette

import (
	"image/color"
	"strings"
	"testing"
)

func mustGradient(t *testing.T, stops ...Stop) *Gradient {
	t.Helper()
	g, err := New(stops...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestAtClampsToBoundaryStops(t *testing.T) {
	g := mustGradient(t,
		Stop{Position: 0.2, R: 10, G: 20, B: 30},
		Stop{Position: 0.8, R: 200, G: 210, B: 220},
	)

	first := color.RGBA{R: 10, G: 20, B: 30, A: 0xff}
	last := color.RGBA{R: 200, G: 210, B: 220, A: 0xff}

	// At or below the first stop: that stop's exact color.
	for _, pos := range []float64{-5, 0, 0.2} {
		if got := g.At(pos); got != first {
			t.Errorf("At(%v) = %v, want first stop %v", pos, got, first)
		}
	}
	// At or above the last stop: that stop's exact color.
	for _, pos := range []float64{0.8, 1, 100} {
		if got := g.At(pos); got != last {
			t.Errorf("At(%v) = %v, want last stop %v", pos, got, last)
		}
	}
}

func TestAtInteriorStopExact(t *testing.T) {
	g := mustGradient(t,
		Stop{Position: 0, R: 0, G: 0, B: 0},
		Stop{Position: 0.25, R: 13, G: 77, B: 201},
		Stop{Position: 1, R: 255, G: 255, B: 255},
	)

	// Exactly on an interior stop: its color with zero interpolation
	// drift.
	want := color.RGBA{R: 13, G: 77, B: 201, A: 0xff}
	if got := g.At(0.25); got != want {
		t.Errorf("At(0.25) = %v, want %v", got, want)
	}
}

func TestAtMidpoint(t *testing.T) {
	g := mustGradient(t,
		Stop{Position: 0},
		Stop{Position: 1, R: 255, G: 255, B: 255},
	)

	got := g.At(0.5)
	if got.R != 128 || got.G != 128 || got.B != 128 || got.A != 0xff {
		t.Errorf("At(0.5) = %v, want mid-gray", got)
	}
}

func TestNewRejectsInvalidStops(t *testing.T) {
	if _, err := New(Stop{Position: 0}); err == nil {
		t.Error("New with one stop: want error")
	}
	if _, err := New(Stop{Position: 0.5}, Stop{Position: 0.5, R: 1}); err == nil {
		t.Error("New with duplicate positions: want error")
	}
	if _, err := New(Stop{Position: 0.7}, Stop{Position: 0.2}); err == nil {
		t.Error("New with descending positions: want error")
	}
	if _, err := New(Stop{Position: -0.1}, Stop{Position: 1}); err == nil {
		t.Error("New with position below 0: want error")
	}
}

func TestLoad(t *testing.T) {
	src := `[
		{"position": 0, "r": 0, "g": 0, "b": 0},
		{"position": 0.5, "r": 255, "g": 128, "b": 0},
		{"position": 1, "r": 255, "g": 255, "b": 255}
	]`

	g, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := color.RGBA{R: 255, G: 128, B: 0, A: 0xff}
	if got := g.At(0.5); got != want {
		t.Errorf("At(0.5) = %v, want %v", got, want)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	if _, err := Load(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Error("Load with non-array JSON: want error")
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		g, ok := ByName(name)
		if !ok || g == nil {
			t.Errorf("ByName(%q) missing", name)
		}
	}
	if _, ok := ByName("no-such-palette"); ok {
		t.Error(`ByName("no-such-palette") = ok, want missing`)
	}
}

func TestBuiltinsValid(t *testing.T) {
	for _, name := range Names() {
		g, _ := ByName(name)
		stops := g.Stops()
		if len(stops) < 2 {
			t.Errorf("palette %q has %d stops, want >= 2", name, len(stops))
		}
		for i := 1; i < len(stops); i++ {
			if stops[i].Position <= stops[i-1].Position {
				t.Errorf("palette %q stops not ascending at %d", name, i)
			}
		}
	}
}
