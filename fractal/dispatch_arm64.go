// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package fractal

import "golang.org/x/sys/cpu"

func init() {
	if noSimdEnv() {
		defaultBackend = BackendScalar
		return
	}
	// ASIMD (NEON) is baseline on arm64; the feature check mirrors the
	// amd64 path rather than assuming.
	if cpu.ARM64.HasASIMD {
		defaultBackend = BackendVector
	} else {
		defaultBackend = BackendScalar
	}
}
