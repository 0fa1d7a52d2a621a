// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import (
	"image/color"
	"math"

	"github.com/fractal-dev/go-fractal/fractal/palette"
)

// Mode selects the coloring pipeline applied to kernel results.
type Mode int

const (
	// ModeDiscrete maps the raw iteration count to the palette.
	ModeDiscrete Mode = iota

	// ModeSmooth refines the iteration count with the escape magnitude,
	// removing color banding.
	ModeSmooth

	// ModeAdaptive equalizes the iteration histogram before the palette
	// lookup, maximizing contrast for the distribution actually present
	// in the image. Requires a full raw pass, so renders run two phases.
	ModeAdaptive

	// ModeAdaptiveSmooth is ModeAdaptive with the smooth estimator's
	// fractional part folded into the equalized lookup.
	ModeAdaptiveSmooth
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDiscrete:
		return "discrete"
	case ModeSmooth:
		return "smooth"
	case ModeAdaptive:
		return "adaptive"
	case ModeAdaptiveSmooth:
		return "adaptive-smooth"
	default:
		return "unknown"
	}
}

func (m Mode) adaptive() bool {
	return m == ModeAdaptive || m == ModeAdaptiveSmooth
}

func (m Mode) smooth() bool {
	return m == ModeSmooth || m == ModeAdaptiveSmooth
}

// inSetColor is the color of points that never escape.
var inSetColor = color.RGBA{A: 0xff}

// smoothIterations refines a discrete escape count into a continuous
// one using the latched escape magnitude:
//
//	nu = n + 1 - log2(log(|z|))
//
// For magnitudes at or below 1 the double log is undefined, so the raw
// count is used; the result is clamped at zero as a safety net for
// points escaping at very low iteration counts.
func smoothIterations(n int, magSq float64) float64 {
	if magSq <= 1.0 {
		return float64(n)
	}
	nu := float64(n) + 1 - math.Log(math.Log(math.Sqrt(magSq)))/math.Ln2
	if nu < 0 {
		return 0
	}
	return nu
}

// pixelColor maps one kernel result to a color for the non-adaptive
// modes.
func pixelColor(pal *palette.Gradient, mode Mode, n, maxIter int, magSq float64) color.RGBA {
	if mode.smooth() {
		nu := smoothIterations(n, magSq)
		if nu >= float64(maxIter) {
			return inSetColor
		}
		return pal.At(nu / float64(maxIter))
	}
	if n >= maxIter {
		return inSetColor
	}
	return pal.At(float64(n) / float64(maxIter))
}
