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

//go:build !(amd64 && goexperiment.simd)

package kernel

import (
	"github.com/pixreskit/resample/internal/convolve"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// HorizontalF32x4AVX2 is unavailable outside an amd64 build with
// GOEXPERIMENT=simd; the dispatch table still needs the symbol, so this
// falls through to the scalar routine it would otherwise specialise.
func HorizontalF32x4AVX2(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], yOffset int, coeffs convolve.Coefficients) {
	HorizontalF32[pixel.F32x4Pix](src, dst, yOffset, coeffs)
}
