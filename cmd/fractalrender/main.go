// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

// fractalrender renders a Mandelbrot view to a PNG file. It drives the
// same engine entry point the interactive surfaces use, so it handles
// very large static exports (tested up to 15360x8640) limited only by
// memory for the output buffer.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/fractal-dev/go-fractal/fractal"
	"github.com/fractal-dev/go-fractal/fractal/palette"
)

type renderFlags struct {
	width, height int
	view          string
	centerX       float64
	centerY       float64
	zoom          float64
	rotation      float64
	iterations    int
	mode          string
	backend       string
	paletteName   string
	paletteFile   string
	workers       int
	out           string
	thumbnail     string
	thumbWidth    int
}

func mainCmd() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "fractalrender",
		Short: "Render a Mandelbrot view to PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.width, "width", 1920, "output width in pixels")
	f.IntVar(&flags.height, "height", 1080, "output height in pixels")
	f.StringVar(&flags.view, "view", "", "named view to start from (home, seahorse-valley, ...)")
	f.Float64Var(&flags.centerX, "center-x", -0.5, "view center, real part")
	f.Float64Var(&flags.centerY, "center-y", 0, "view center, imaginary part")
	f.Float64Var(&flags.zoom, "zoom", 1, "zoom factor (> 0)")
	f.Float64Var(&flags.rotation, "rotation", 0, "view rotation in radians")
	f.IntVar(&flags.iterations, "iterations", 0, "iteration cap (0 = the view's default)")
	f.StringVar(&flags.mode, "mode", "smooth", "coloring mode: discrete, smooth, adaptive, adaptive-smooth")
	f.StringVar(&flags.backend, "backend", "auto", "kernel backend: auto, scalar, vector")
	f.StringVar(&flags.paletteName, "palette", "classic", "built-in palette name")
	f.StringVar(&flags.paletteFile, "palette-file", "", "JSON palette file (overrides --palette)")
	f.IntVar(&flags.workers, "workers", 0, "worker count (0 = GOMAXPROCS)")
	f.StringVar(&flags.out, "out", "mandel.png", "output PNG path")
	f.StringVar(&flags.thumbnail, "thumbnail", "", "optional downscaled thumbnail PNG path")
	f.IntVar(&flags.thumbWidth, "thumb-width", 320, "thumbnail width in pixels")

	return cmd
}

func run(cmd *cobra.Command, flags *renderFlags) error {
	view, err := buildView(cmd, flags)
	if err != nil {
		return err
	}
	if flags.width < 1 || flags.height < 1 {
		return fmt.Errorf("image size %dx%d: both dimensions must be positive", flags.width, flags.height)
	}

	mode, err := parseMode(flags.mode)
	if err != nil {
		return err
	}
	backend, err := parseBackend(flags.backend)
	if err != nil {
		return err
	}
	pal, err := loadPalette(flags.paletteName, flags.paletteFile)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, flags.width, flags.height))

	log.Printf("rendering %dx%d, %d iterations, %s coloring, %s backend",
		flags.width, flags.height, view.MaxIter, mode, backend)
	start := time.Now()
	fractal.Render(img, view, fractal.Options{
		Backend: backend,
		Mode:    mode,
		Palette: pal,
		Workers: flags.workers,
	})
	log.Printf("rendered in %v", time.Since(start))

	if err := writePNG(flags.out, img); err != nil {
		return err
	}
	log.Printf("saved %q", flags.out)

	if flags.thumbnail != "" {
		thumb := scaleTo(img, flags.thumbWidth)
		if err := writePNG(flags.thumbnail, thumb); err != nil {
			return err
		}
		log.Printf("saved thumbnail %q", flags.thumbnail)
	}
	return nil
}

// buildView starts from the named view if given, then applies any
// explicitly set flags on top.
func buildView(cmd *cobra.Command, flags *renderFlags) (fractal.View, error) {
	view := fractal.Home
	if flags.view != "" {
		named, ok := fractal.Views[flags.view]
		if !ok {
			return fractal.View{}, fmt.Errorf("unknown view %q", flags.view)
		}
		view = named
	}

	f := cmd.Flags()
	if f.Changed("center-x") {
		view.CenterX = flags.centerX
	}
	if f.Changed("center-y") {
		view.CenterY = flags.centerY
	}
	if f.Changed("zoom") {
		view.Zoom = flags.zoom
	}
	if f.Changed("rotation") {
		view.Rotation = flags.rotation
	}
	if flags.iterations > 0 {
		view.MaxIter = flags.iterations
	}

	if view.Zoom <= 0 {
		return fractal.View{}, fmt.Errorf("zoom %v: must be positive", view.Zoom)
	}
	if view.MaxIter < 1 {
		return fractal.View{}, fmt.Errorf("iterations %d: must be at least 1", view.MaxIter)
	}
	return view, nil
}

func parseMode(s string) (fractal.Mode, error) {
	switch s {
	case "discrete":
		return fractal.ModeDiscrete, nil
	case "smooth":
		return fractal.ModeSmooth, nil
	case "adaptive":
		return fractal.ModeAdaptive, nil
	case "adaptive-smooth":
		return fractal.ModeAdaptiveSmooth, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func parseBackend(s string) (fractal.Backend, error) {
	switch s {
	case "auto":
		return fractal.DefaultBackend(), nil
	case "scalar":
		return fractal.BackendScalar, nil
	case "vector":
		return fractal.BackendVector, nil
	default:
		return 0, fmt.Errorf("unknown backend %q", s)
	}
}

func loadPalette(name, file string) (*palette.Gradient, error) {
	if file != "" {
		return palette.LoadFile(file)
	}
	pal, ok := palette.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q, have %v", name, palette.Names())
	}
	return pal, nil
}

// scaleTo downscales img to the given width, keeping aspect ratio.
func scaleTo(img *image.RGBA, width int) *image.RGBA {
	bounds := img.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	thumb := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(thumb, thumb.Bounds(), img, bounds, xdraw.Src, nil)
	return thumb
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}

func main() {
	if err := mainCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
