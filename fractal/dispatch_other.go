// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package fractal

func init() {
	defaultBackend = BackendScalar
}
