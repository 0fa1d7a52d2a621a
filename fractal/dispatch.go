// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

package fractal

import (
	"os"
	"strconv"
)

// Backend selects which escape-time kernel implementation a render
// uses. Both backends produce matching output; BackendVector iterates
// four pixels per kernel call.
type Backend int

const (
	// BackendScalar iterates one point at a time.
	BackendScalar Backend = iota

	// BackendVector iterates laneCount points at a time with lane-wise
	// early exit.
	BackendVector
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendVector:
		return "vector"
	default:
		return "unknown"
	}
}

// defaultBackend is the backend detected for this runtime.
// Set by init() in dispatch_*.go files.
var defaultBackend Backend

// DefaultBackend returns the kernel backend detected for this CPU.
// It can be overridden per render through Options.Backend.
func DefaultBackend() Backend {
	return defaultBackend
}

// noSimdEnv checks if the FRACTAL_NO_SIMD environment variable is set.
// When set, the default backend is scalar regardless of CPU
// capabilities. This is useful for testing and debugging.
func noSimdEnv() bool {
	val := os.Getenv("FRACTAL_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
