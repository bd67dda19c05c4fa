// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cpuext probes the host CPU for the SIMD extensions this
// resampler knows how to target and exposes the legal set for the
// current build's architecture.
package cpuext

import (
	"os"
	"strconv"
)

// Extension is one CPU SIMD level a kernel can be compiled/dispatched for.
// Which variants are legal depends on GOARCH; Supported() enumerates them.
type Extension int

const (
	// None is the portable scalar fallback, legal on every architecture.
	None Extension = iota
	// SSE41 is the x86_64 128-bit baseline extension this library targets.
	SSE41
	// AVX2 is the x86_64 256-bit extension this library targets.
	AVX2
	// NEON is the AArch64 128-bit extension this library targets.
	NEON
	// Simd128 is the wasm32 128-bit extension this library targets.
	Simd128
)

func (e Extension) String() string {
	switch e {
	case None:
		return "none"
	case SSE41:
		return "sse4.1"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	case Simd128:
		return "simd128"
	default:
		return "unknown"
	}
}

// NoSimdEnv reports whether RESAMPLE_NO_SIMD requests the scalar fallback
// regardless of hardware capability. Checked before any CPU probing runs,
// mirroring hwy's HWY_NO_SIMD.
func NoSimdEnv() bool {
	val := os.Getenv("RESAMPLE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Supported returns every Extension legal to request on this architecture,
// ordered from least to most capable, always starting with None.
func Supported() []Extension {
	return supportedForArch()
}

// IsSupported reports whether the host CPU actually provides ext. None is
// always supported.
func IsSupported(ext Extension) bool {
	if ext == None {
		return true
	}
	for _, e := range supportedForArch() {
		if e == ext && hardwareHas(e) {
			return true
		}
	}
	return false
}

// Default returns the best Extension this host's CPU actually supports,
// or None if RESAMPLE_NO_SIMD is set or no accelerated path exists.
func Default() Extension {
	if NoSimdEnv() {
		return None
	}
	best := None
	for _, e := range supportedForArch() {
		if e != None && hardwareHas(e) {
			best = e
		}
	}
	return best
}
