// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

// Package palette provides gradient palettes for fractal coloring: an
// ordered set of color stops interpolated linearly per channel, with
// positions outside the stop range clamped to the boundary stops.
package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
)

// Stop pins a color at a position along the gradient.
type Stop struct {
	Position float64 `json:"position"`
	R        uint8   `json:"r"`
	G        uint8   `json:"g"`
	B        uint8   `json:"b"`
}

func (s Stop) rgba() color.RGBA {
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: 0xff}
}

// Gradient is an ordered set of color stops. Immutable after creation,
// so it can be shared across render workers without synchronization.
type Gradient struct {
	stops []Stop
}

// New builds a gradient from the given stops. It requires at least two
// stops with strictly ascending positions in [0, 1].
func New(stops ...Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("palette: need at least 2 stops, got %d", len(stops))
	}
	for i, s := range stops {
		if s.Position < 0 || s.Position > 1 {
			return nil, fmt.Errorf("palette: stop %d position %v outside [0, 1]", i, s.Position)
		}
		if i > 0 && s.Position <= stops[i-1].Position {
			return nil, fmt.Errorf("palette: stop positions must be strictly ascending, stop %d (%v) <= stop %d (%v)",
				i, s.Position, i-1, stops[i-1].Position)
		}
	}
	owned := make([]Stop, len(stops))
	copy(owned, stops)
	return &Gradient{stops: owned}, nil
}

// MustNew is like New but panics on invalid stops. For package-level
// palette definitions.
func MustNew(stops ...Stop) *Gradient {
	g, err := New(stops...)
	if err != nil {
		panic(err)
	}
	return g
}

// Stops returns a copy of the gradient's stops.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// At returns the gradient color at position t. Values of t at or
// outside the first/last stop positions return that stop's exact color;
// in between, the bracketing stops are interpolated linearly per
// channel.
func (g *Gradient) At(t float64) color.RGBA {
	first := g.stops[0]
	last := g.stops[len(g.stops)-1]
	if t <= first.Position || math.IsNaN(t) {
		return first.rgba()
	}
	if t >= last.Position {
		return last.rgba()
	}
	for i := 0; i < len(g.stops)-1; i++ {
		s1 := g.stops[i+1]
		if t <= s1.Position {
			s0 := g.stops[i]
			local := (t - s0.Position) / (s1.Position - s0.Position)
			return color.RGBA{
				R: lerp8(s0.R, s1.R, local),
				G: lerp8(s0.G, s1.G, local),
				B: lerp8(s0.B, s1.B, local),
				A: 0xff,
			}
		}
	}
	return last.rgba()
}

// lerp8 interpolates a single 8-bit channel.
func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Load decodes a gradient from JSON: an array of stops, each with a
// "position" in [0, 1] and "r"/"g"/"b" channels.
func Load(r io.Reader) (*Gradient, error) {
	var stops []Stop
	if err := json.NewDecoder(r).Decode(&stops); err != nil {
		return nil, fmt.Errorf("palette: decode: %w", err)
	}
	return New(stops...)
}

// LoadFile reads a gradient from a JSON file.
func LoadFile(path string) (*Gradient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	defer f.Close()
	return Load(f)
}
