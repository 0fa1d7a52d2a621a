// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

// fractalserve exposes the render engine over HTTP: GET /render returns
// a PNG for the requested view, and /ws accepts a websocket where each
// JSON request message is answered with a binary PNG frame, the
// transport an interactive web front end uses while panning.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"

	"github.com/fractal-dev/go-fractal/fractal"
	"github.com/fractal-dev/go-fractal/fractal/palette"
)

// maxDimension caps per-request image size. Large static exports go
// through the CLI; a network endpoint should not hand out gigabyte
// buffers.
const maxDimension = 4096

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/render", renderHandler)
	mux.HandleFunc("/ws", websocketHandler)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on %s (backend: %s)", *addr, fractal.DefaultBackend())
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("httpServer: %v", err)
	}
}

// renderRequest is one view request, from query parameters or a
// websocket JSON message.
type renderRequest struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	View     string  `json:"view,omitempty"`
	CenterX  float64 `json:"centerX"`
	CenterY  float64 `json:"centerY"`
	Zoom     float64 `json:"zoom"`
	Rotation float64 `json:"rotation"`
	MaxIter  int     `json:"maxIter"`
	Mode     string  `json:"mode,omitempty"`
	Palette  string  `json:"palette,omitempty"`
}

// render validates the request and produces the PNG bytes.
func (req *renderRequest) render() ([]byte, error) {
	if req.Width < 1 || req.Height < 1 || req.Width > maxDimension || req.Height > maxDimension {
		return nil, fmt.Errorf("size %dx%d outside 1..%d", req.Width, req.Height, maxDimension)
	}

	view := fractal.Home
	if req.View != "" {
		named, ok := fractal.Views[req.View]
		if !ok {
			return nil, fmt.Errorf("unknown view %q", req.View)
		}
		view = named
	} else {
		view = fractal.View{
			CenterX:  req.CenterX,
			CenterY:  req.CenterY,
			Zoom:     req.Zoom,
			Rotation: req.Rotation,
			MaxIter:  req.MaxIter,
		}
	}
	if view.Zoom <= 0 {
		return nil, fmt.Errorf("zoom %v: must be positive", view.Zoom)
	}
	if view.MaxIter < 1 {
		return nil, fmt.Errorf("maxIter %d: must be at least 1", view.MaxIter)
	}

	mode := fractal.ModeSmooth
	switch req.Mode {
	case "", "smooth":
	case "discrete":
		mode = fractal.ModeDiscrete
	case "adaptive":
		mode = fractal.ModeAdaptive
	case "adaptive-smooth":
		mode = fractal.ModeAdaptiveSmooth
	default:
		return nil, fmt.Errorf("unknown mode %q", req.Mode)
	}

	pal := palette.Classic
	if req.Palette != "" {
		named, ok := palette.ByName(req.Palette)
		if !ok {
			return nil, fmt.Errorf("unknown palette %q", req.Palette)
		}
		pal = named
	}

	img := image.NewRGBA(image.Rect(0, 0, req.Width, req.Height))
	start := time.Now()
	fractal.Render(img, view, fractal.Options{
		Backend: fractal.DefaultBackend(),
		Mode:    mode,
		Palette: pal,
	})
	log.Printf("rendered %dx%d zoom %v in %v", req.Width, req.Height, view.Zoom, time.Since(start))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHandler(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data, err := req.render()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func requestFromQuery(r *http.Request) (*renderRequest, error) {
	q := r.URL.Query()
	req := &renderRequest{
		Width:   1280,
		Height:  720,
		CenterX: -0.5,
		Zoom:    1,
		MaxIter: 250,
		View:    q.Get("view"),
		Mode:    q.Get("mode"),
		Palette: q.Get("palette"),
	}

	var err error
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"w", &req.Width}, {"h", &req.Height}, {"iter", &req.MaxIter},
	} {
		if s := q.Get(p.key); s != "" {
			if *p.dst, err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.key, err)
			}
		}
	}
	for _, p := range []struct {
		key string
		dst *float64
	}{
		{"cx", &req.CenterX}, {"cy", &req.CenterY}, {"zoom", &req.Zoom}, {"rot", &req.Rotation},
	} {
		if s := q.Get(p.key); s != "" {
			if *p.dst, err = strconv.ParseFloat(s, 64); err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.key, err)
			}
		}
	}
	return req, nil
}

// websocketHandler answers each JSON request message with a binary PNG
// frame. The engine has no cancellation, so a client that pans away
// simply drops the stale frame.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := context.Background()
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			return
		}

		var req renderRequest
		if err := json.Unmarshal(data, &req); err != nil {
			writeError(ctx, c, fmt.Errorf("decode request: %w", err))
			continue
		}

		frame, err := req.render()
		if err != nil {
			writeError(ctx, c, err)
			continue
		}
		if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
			return
		}
	}
}

func writeError(ctx context.Context, c *websocket.Conn, err error) {
	msg, _ := json.Marshal(map[string]string{"error": err.Error()})
	c.Write(ctx, websocket.MessageText, msg)
}
