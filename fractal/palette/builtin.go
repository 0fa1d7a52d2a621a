// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package palette

import "sort"

// Built-in palettes.
var (
	// Grayscale runs black to white.
	Grayscale = MustNew(
		Stop{Position: 0},
		Stop{Position: 1, R: 255, G: 255, B: 255},
	)

	// Classic is the familiar deep-blue / gold banding.
	Classic = MustNew(
		Stop{Position: 0, R: 0, G: 7, B: 100},
		Stop{Position: 0.16, R: 32, G: 107, B: 203},
		Stop{Position: 0.42, R: 237, G: 255, B: 255},
		Stop{Position: 0.6425, R: 255, G: 170, B: 0},
		Stop{Position: 0.8575, R: 0, G: 2, B: 0},
		Stop{Position: 1, R: 0, G: 7, B: 100},
	)

	// Fire runs black through reds and oranges to near-white.
	Fire = MustNew(
		Stop{Position: 0},
		Stop{Position: 0.25, R: 120},
		Stop{Position: 0.5, R: 255, G: 80},
		Stop{Position: 0.75, R: 255, G: 200},
		Stop{Position: 1, R: 255, G: 255, B: 230},
	)

	// Ocean runs black through blues to white foam.
	Ocean = MustNew(
		Stop{Position: 0},
		Stop{Position: 0.3, B: 90},
		Stop{Position: 0.6, R: 0, G: 120, B: 200},
		Stop{Position: 0.85, R: 120, G: 220, B: 255},
		Stop{Position: 1, R: 255, G: 255, B: 255},
	)
)

var builtins = map[string]*Gradient{
	"grayscale": Grayscale,
	"classic":   Classic,
	"fire":      Fire,
	"ocean":     Ocean,
}

// ByName looks up a built-in palette.
func ByName(name string) (*Gradient, bool) {
	g, ok := builtins[name]
	return g, ok
}

// Names returns the built-in palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
