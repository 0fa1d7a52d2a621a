// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/fractal-dev/go-fractal/fractal/palette"
)

// TestRenderCenterPixelInSet renders a tiny image of the classic view:
// the center pixel maps to (-0.5, 0), a known in-set point, and must
// come out opaque black under discrete coloring.
func TestRenderCenterPixelInSet(t *testing.T) {
	view := View{CenterX: -0.5, Zoom: 1, MaxIter: 50}
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	Render(img, view, Options{Mode: ModeDiscrete, Palette: palette.Grayscale})

	if got := img.RGBAAt(4, 4); got != (color.RGBA{A: 0xff}) {
		t.Errorf("center pixel = %v, want opaque black", got)
	}
}

// TestRenderBackendsAgree renders the same view with both backends and
// compares the quantized buffers. The kernels share arithmetic order,
// so agreement should be total; the test still allows the 0.1% budget
// for lanes sitting exactly on the escape threshold.
func TestRenderBackendsAgree(t *testing.T) {
	view := View{CenterX: -0.5, Zoom: 1, MaxIter: 50}
	const width, height = 800, 450

	scalar := image.NewRGBA(image.Rect(0, 0, width, height))
	vector := image.NewRGBA(image.Rect(0, 0, width, height))

	Render(scalar, view, Options{Backend: BackendScalar, Mode: ModeSmooth, Palette: palette.Classic})
	Render(vector, view, Options{Backend: BackendVector, Mode: ModeSmooth, Palette: palette.Classic})

	mismatched := 0
	for i := range scalar.Pix {
		if scalar.Pix[i] != vector.Pix[i] {
			mismatched++
		}
	}
	budget := len(scalar.Pix) / 1000 // 0.1%
	if mismatched > budget {
		t.Errorf("%d of %d buffer bytes differ between backends, budget %d",
			mismatched, len(scalar.Pix), budget)
	}
}

// TestRenderFillsEveryPixel checks the dynamic row scheduler leaves no
// gaps: the engine must write every pixel of the caller's buffer.
func TestRenderFillsEveryPixel(t *testing.T) {
	view := View{CenterX: -0.5, Zoom: 1, MaxIter: 30}

	for _, mode := range []Mode{ModeDiscrete, ModeSmooth, ModeAdaptive, ModeAdaptiveSmooth} {
		img := image.NewRGBA(image.Rect(0, 0, 50, 37)) // width not lane-divisible
		Render(img, view, Options{Backend: BackendVector, Mode: mode, Workers: 7})

		for y := 0; y < 37; y++ {
			for x := 0; x < 50; x++ {
				if img.RGBAAt(x, y).A != 0xff {
					t.Fatalf("mode %v: pixel (%d, %d) never written", mode, x, y)
				}
			}
		}
	}
}

// TestRenderDeterministic renders twice with different worker counts;
// scheduling order must not affect the output.
func TestRenderDeterministic(t *testing.T) {
	view := View{CenterX: -0.75, CenterY: 0.1, Zoom: 35, MaxIter: 100}

	one := image.NewRGBA(image.Rect(0, 0, 64, 48))
	many := image.NewRGBA(image.Rect(0, 0, 64, 48))

	opts := Options{Backend: BackendVector, Mode: ModeAdaptiveSmooth, Palette: palette.Fire}
	opts.Workers = 1
	Render(one, view, opts)
	opts.Workers = 8
	Render(many, view, opts)

	if !bytes.Equal(one.Pix, many.Pix) {
		t.Error("renders with 1 and 8 workers differ")
	}
}

// TestRenderAdaptiveAllInSet: a view entirely inside the set produces a
// single-bin histogram and a fully black image.
func TestRenderAdaptiveAllInSet(t *testing.T) {
	view := View{Zoom: 10000, MaxIter: 40} // deep inside the main cardioid
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))

	Render(img, view, Options{Mode: ModeAdaptive, Palette: palette.Classic})

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := img.RGBAAt(x, y); got != (color.RGBA{A: 0xff}) {
				t.Fatalf("pixel (%d, %d) = %v, want opaque black", x, y, got)
			}
		}
	}
}

// TestRenderSubImage checks that rendering into a sub-image respects
// its bounds offset.
func TestRenderSubImage(t *testing.T) {
	view := View{CenterX: -0.5, Zoom: 1, MaxIter: 30}
	base := image.NewRGBA(image.Rect(0, 0, 32, 32))
	sub := base.SubImage(image.Rect(8, 8, 24, 24)).(*image.RGBA)

	Render(sub, view, Options{Mode: ModeDiscrete})

	if got := base.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside the sub-image written: %v", got)
	}
	if got := base.RGBAAt(16, 16); got.A != 0xff {
		t.Errorf("sub-image center never written: %v", got)
	}
}

func TestRenderEmptyBuffer(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	// Must not panic or spin.
	Render(img, Home, Options{})
}
