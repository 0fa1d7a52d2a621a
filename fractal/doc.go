// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

// Package fractal computes the Mandelbrot escape-time fractal over an
// arbitrary view window (center, zoom, rotation) into a caller-owned
// pixel buffer.
//
// The engine provides two kernel backends, a scalar one and a portable
// four-lane vectorized one, behind a single synchronous entry point:
//
//	view := fractal.SeahorseValley
//	img := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
//	fractal.Render(img, view, fractal.Options{
//		Backend: fractal.DefaultBackend(),
//		Mode:    fractal.ModeSmooth,
//	})
//
// Work is distributed dynamically: a fixed pool of workers claims image
// rows from a shared atomic cursor, so rows that escape quickly and rows
// that iterate to the cap balance out across threads. Row writes are
// disjoint and need no locking.
//
// All backends share one coordinate transform and one set of coloring
// formulas, evaluated in the same operation order, so switching backends
// at runtime produces indistinguishable output. External GPU renderers
// that want to match this engine must use the same contract: normalize
// the pixel to [-0.5, 0.5] per axis, rotate, scale by (3.5/zoom,
// 2.0/zoom), translate by the center; iterate z <- z^2 + c with escape
// threshold |z|^2 > 4; and refine with n + 1 - log2(log(|z|)) for smooth
// coloring.
package fractal
