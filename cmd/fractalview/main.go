// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

// fractalview is an interactive desktop viewer. It renders views into an
// RGBA buffer off the UI thread and re-uploads the buffer to a GPU
// texture whenever a render completes.
//
// Keys: arrows pan, Z/X zoom, Q/E rotate, M cycles the coloring mode,
// B toggles the kernel backend, P cycles palettes, [ and ] change the
// iteration cap, R resets, Esc quits.
package main

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fractal-dev/go-fractal/fractal"
	"github.com/fractal-dev/go-fractal/fractal/palette"
)

const (
	renderWidth  = 960
	renderHeight = 540
)

type game struct {
	view    fractal.View
	mode    fractal.Mode
	backend fractal.Backend
	palIdx  int

	tex       *ebiten.Image
	frames    chan *image.RGBA
	rendering bool
	dirty     bool
}

func newGame() *game {
	return &game{
		view:    fractal.Home,
		mode:    fractal.ModeSmooth,
		backend: fractal.DefaultBackend(),
		tex:     ebiten.NewImage(renderWidth, renderHeight),
		frames:  make(chan *image.RGBA, 1),
		dirty:   true,
	}
}

func (g *game) palette() *palette.Gradient {
	names := palette.Names()
	pal, _ := palette.ByName(names[g.palIdx%len(names)])
	return pal
}

func (g *game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	if g.dirty && !g.rendering {
		g.dirty = false
		g.rendering = true
		view := g.view
		opts := fractal.Options{Backend: g.backend, Mode: g.mode, Palette: g.palette()}
		go func() {
			img := image.NewRGBA(image.Rect(0, 0, renderWidth, renderHeight))
			fractal.Render(img, view, opts)
			g.frames <- img
		}()
	}

	select {
	case img := <-g.frames:
		g.rendering = false
		g.tex.WritePixels(img.Pix)
		ebiten.SetWindowTitle(g.title())
	default:
	}
	return nil
}

func (g *game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Pan step in plane units, a fixed fraction of the visible window.
	pan := 0.02 * 3.5 / g.view.Zoom
	sin, cos := math.Sincos(g.view.Rotation)

	move := func(dx, dy float64) {
		// Pan along the rotated view axes so the image moves the way
		// the keys point regardless of rotation.
		g.view.CenterX += (dx*cos - dy*sin) * pan
		g.view.CenterY += (dx*sin + dy*cos) * pan
		g.dirty = true
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move(-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move(1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move(0, -1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move(0, 1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		g.view.Zoom *= 1.04
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		g.view.Zoom /= 1.04
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.view.Rotation -= 0.03
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.view.Rotation += 0.03
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mode = (g.mode + 1) % 4
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if g.backend == fractal.BackendScalar {
			g.backend = fractal.BackendVector
		} else {
			g.backend = fractal.BackendScalar
		}
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.palIdx++
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.view.MaxIter += 100
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.view.MaxIter > 100 {
		g.view.MaxIter -= 100
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.view = fractal.Home
		g.dirty = true
	}
	return nil
}

func (g *game) title() string {
	return fmt.Sprintf("fractalview  (%.6f, %.6f)  zoom %.1f  iter %d  %s/%s",
		g.view.CenterX, g.view.CenterY, g.view.Zoom, g.view.MaxIter, g.mode, g.backend)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return renderWidth, renderHeight
}

func main() {
	g := newGame()
	ebiten.SetWindowTitle(g.title())
	ebiten.SetWindowSize(renderWidth, renderHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("run: %v", err)
	}
}
