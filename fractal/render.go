// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import (
	"image"

	"github.com/fractal-dev/go-fractal/fractal/palette"
	"github.com/fractal-dev/go-fractal/fractal/workerpool"
)

// recolorBatch is the row batch size of the adaptive recolor phase.
// Recoloring is a table lookup per pixel, far cheaper than iterating,
// so rows are claimed in batches to amortize the cursor.
const recolorBatch = 16

// Options selects the kernel backend, coloring mode, palette and worker
// count for one render call.
type Options struct {
	// Backend selects the kernel implementation. The zero value is
	// BackendScalar; use DefaultBackend() for the detected best choice.
	Backend Backend

	// Mode selects the coloring pipeline.
	Mode Mode

	// Palette colors escaped points. Nil means palette.Grayscale.
	Palette *palette.Gradient

	// Workers is the size of the per-render worker pool.
	// Values <= 0 mean GOMAXPROCS.
	Workers int
}

// Render computes the view into dst, filling every pixel of its bounds.
// The buffer is caller-owned; the engine writes disjoint row ranges and
// never reads prior contents.
//
// Render is synchronous: it spawns a worker pool, distributes rows
// through an atomic cursor, and returns only after all workers have
// finished. There is no cancellation; callers that lose interest in a
// result discard it. There is no resolution ceiling beyond memory for
// dst and, in adaptive mode, two temporary width x height arrays.
func Render(dst *image.RGBA, view View, opts Options) {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return
	}
	pal := opts.Palette
	if pal == nil {
		pal = palette.Grayscale
	}

	pool := workerpool.New(opts.Workers)
	defer pool.Close()

	if opts.Mode.adaptive() {
		renderAdaptive(pool, dst, view, opts, pal)
		return
	}

	pool.ParallelForAtomic(height, func(y int) {
		renderRow(dst, view, opts, pal, y)
	})
}

// renderRow computes and colors one image row. With the vector backend
// the row is processed laneCount pixels at a time with a scalar
// epilogue for widths that are not lane-divisible.
func renderRow(dst *image.RGBA, view View, opts Options, pal *palette.Gradient, y int) {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	maxIter := view.MaxIter

	x := 0
	if opts.Backend == BackendVector {
		var cre, cim vec
		for ; x+laneCount <= width; x += laneCount {
			for l := 0; l < laneCount; l++ {
				cre[l], cim[l] = view.Point(x+l, y, width, height)
			}
			ns, magSqs := iterateVec(cre, cim, maxIter)
			for l := 0; l < laneCount; l++ {
				dst.SetRGBA(bounds.Min.X+x+l, bounds.Min.Y+y,
					pixelColor(pal, opts.Mode, ns[l], maxIter, magSqs[l]))
			}
		}
	}
	for ; x < width; x++ {
		re, im := view.Point(x, y, width, height)
		n, magSq := iterate(re, im, maxIter)
		dst.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y,
			pixelColor(pal, opts.Mode, n, maxIter, magSq))
	}
}

// renderAdaptive runs the two-phase histogram-equalized pipeline: a raw
// escape pass into full-image temporaries, a single-threaded histogram
// build, then a parallel recolor pass through the equalized
// distribution. The full-image materialization is intrinsic:
// equalization needs the global distribution before any pixel can be
// colored.
func renderAdaptive(pool *workerpool.Pool, dst *image.RGBA, view View, opts Options, pal *palette.Gradient) {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	maxIter := view.MaxIter

	iters := make([]int32, width*height)
	magSqs := make([]float64, width*height)

	pool.ParallelForAtomic(height, func(y int) {
		escapeRow(view, opts.Backend, y, width, height, iters, magSqs)
	})

	hist := newHistogram(iters, maxIter)

	pool.ParallelForAtomicBatched(height, recolorBatch, func(start, end int) {
		for y := start; y < end; y++ {
			row := y * width
			for x := 0; x < width; x++ {
				dst.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y,
					hist.colorAdaptive(pal, opts.Mode, int(iters[row+x]), maxIter, magSqs[row+x]))
			}
		}
	})
}

// escapeRow stores one row of raw kernel results into the full-image
// temporaries for the adaptive phase-1 pass.
func escapeRow(view View, backend Backend, y, width, height int, iters []int32, magSqs []float64) {
	maxIter := view.MaxIter
	row := y * width

	x := 0
	if backend == BackendVector {
		var cre, cim vec
		for ; x+laneCount <= width; x += laneCount {
			for l := 0; l < laneCount; l++ {
				cre[l], cim[l] = view.Point(x+l, y, width, height)
			}
			ns, mags := iterateVec(cre, cim, maxIter)
			for l := 0; l < laneCount; l++ {
				iters[row+x+l] = int32(ns[l])
				magSqs[row+x+l] = mags[l]
			}
		}
	}
	for ; x < width; x++ {
		re, im := view.Point(x, y, width, height)
		n, magSq := iterate(re, im, maxIter)
		iters[row+x] = int32(n)
		magSqs[row+x] = magSq
	}
}
