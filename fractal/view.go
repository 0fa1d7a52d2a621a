// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import "math"

// View describes the window onto the complex plane for one render:
// where it is centered, how far it is zoomed in, how it is rotated, and
// how many iterations the escape-time kernel may spend per point.
//
// A View is a value; Render takes a snapshot and never mutates it.
// Zoom must be positive and MaxIter at least 1. Both are caller
// preconditions, not runtime errors.
type View struct {
	CenterX  float64
	CenterY  float64
	Zoom     float64 // > 0
	Rotation float64 // radians, counter-clockwise
	MaxIter  int     // >= 1
}

// Point maps a pixel to its complex-plane coordinate under this view.
//
// The pixel is normalized to [-0.5, 0.5] per axis, rotated, scaled by
// (3.5/Zoom, 2.0/Zoom) and translated by the center. Every backend must
// evaluate exactly this operation order; a GPU shader matching this
// engine has to follow it too.
func (v View) Point(px, py, width, height int) (re, im float64) {
	nx := float64(px)/float64(width) - 0.5
	ny := float64(py)/float64(height) - 0.5
	sin, cos := math.Sincos(v.Rotation)
	rx := nx*cos - ny*sin
	ry := nx*sin + ny*cos
	re = rx*(3.5/v.Zoom) + v.CenterX
	im = ry*(2.0/v.Zoom) + v.CenterY
	return re, im
}

// Classic landmarks in the Mandelbrot set, ready to render.
var (
	// Home is the full set with the main cardioid centered.
	Home = View{CenterX: -0.5, Zoom: 1, MaxIter: 250}

	// SeahorseValley – dense filaments and repeating “seahorse” curls
	SeahorseValley = View{CenterX: -0.75, CenterY: 0.1, Zoom: 35, MaxIter: 500}

	// ElephantValley – large bulb with trunk-like tendrils
	ElephantValley = View{CenterX: -1.8, CenterY: -0.06, Zoom: 35, MaxIter: 500}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = View{CenterX: -0.74275, CenterY: 0.13175, Zoom: 2333, MaxIter: 2000}

	// TripleSpiral – threefold symmetric spiral structure
	TripleSpiral = View{CenterX: -0.7465, CenterY: 0.0965, Zoom: 1167, MaxIter: 1500}

	// ValleyOfTheDragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = View{CenterX: -0.7375, CenterY: 0.1825, Zoom: 700, MaxIter: 1000}
)

// Views maps landmark names to their View, for CLIs and servers.
var Views = map[string]View{
	"home":                 Home,
	"seahorse-valley":      SeahorseValley,
	"elephant-valley":      ElephantValley,
	"spiral-minibrot":      SpiralMinibrot,
	"triple-spiral":        TripleSpiral,
	"valley-of-the-dragon": ValleyOfTheDragon,
}
