// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import (
	"image"
	"testing"
)

func BenchmarkIterateScalar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iterate(-0.7435, 0.1314, 1000)
	}
}

func BenchmarkIterateVector(b *testing.B) {
	cre := vec{-0.7435, -0.7434, -0.7433, -0.7432}
	cim := set(0.1314)
	for i := 0; i < b.N; i++ {
		iterateVec(cre, cim, 1000)
	}
}

func benchmarkRender(b *testing.B, backend Backend, mode Mode) {
	view := View{CenterX: -0.75, CenterY: 0.1, Zoom: 35, MaxIter: 500}
	img := image.NewRGBA(image.Rect(0, 0, 640, 360))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render(img, view, Options{Backend: backend, Mode: mode})
	}
}

func BenchmarkRenderScalar(b *testing.B)   { benchmarkRender(b, BackendScalar, ModeSmooth) }
func BenchmarkRenderVector(b *testing.B)   { benchmarkRender(b, BackendVector, ModeSmooth) }
func BenchmarkRenderAdaptive(b *testing.B) { benchmarkRender(b, BackendVector, ModeAdaptiveSmooth) }
