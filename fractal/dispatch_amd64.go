// Copyright 2026 The go-fractal Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package fractal

import "golang.org/x/sys/cpu"

func init() {
	if noSimdEnv() {
		defaultBackend = BackendScalar
		return
	}
	// The four-lane kernel pays off once the compiler can keep its
	// lanes in wide registers; gate on AVX2+FMA like the rest of the
	// x86-64 world does.
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		defaultBackend = BackendVector
	} else {
		defaultBackend = BackendScalar
	}
}
