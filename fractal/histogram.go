// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import (
	"image/color"

	"github.com/fractal-dev/go-fractal/fractal/palette"
)

// histogram counts pixels per discrete escape iteration and exposes the
// empirical cumulative distribution used by adaptive coloring. Built
// once per image between the two adaptive phases, then shared read-only
// across workers.
type histogram struct {
	// cdf[i] is the fraction of pixels with iteration count <= i.
	// cdf[maxIter] is exactly 1.
	cdf []float64
}

// newHistogram bins the raw iteration counts of a full image
// (bin = discrete iteration, 0..maxIter) and converts the bins to a
// CDF by cumulative sum over the pixel count.
func newHistogram(iters []int32, maxIter int) *histogram {
	bins := make([]int, maxIter+1)
	for _, n := range iters {
		bins[n]++
	}

	cdf := make([]float64, maxIter+1)
	total := float64(len(iters))
	sum := 0
	for i, count := range bins {
		sum += count
		cdf[i] = float64(sum) / total
	}
	return &histogram{cdf: cdf}
}

// lookup returns the equalized palette position for an iteration count.
func (h *histogram) lookup(n int) float64 {
	if n >= len(h.cdf) {
		n = len(h.cdf) - 1
	}
	return h.cdf[n]
}

// colorAdaptive maps one raw kernel result to a color through the
// equalized distribution. Points at the iteration cap map to t >= 1 and
// render as the in-set color. In smooth mode the fractional part of the
// smooth estimate interpolates between the neighbouring CDF bins.
func (h *histogram) colorAdaptive(pal *palette.Gradient, mode Mode, n, maxIter int, magSq float64) color.RGBA {
	if n >= maxIter {
		return inSetColor
	}
	t := h.lookup(n)
	if mode.smooth() {
		nu := smoothIterations(n, magSq)
		frac := nu - float64(n)
		if frac > 0 && frac < 1 {
			next := h.lookup(n + 1)
			t = t + (next-t)*frac
		}
	}
	return pal.At(t)
}
