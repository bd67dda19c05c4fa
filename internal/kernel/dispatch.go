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

package kernel

import (
	"github.com/pixreskit/resample/internal/convolve"
	"github.com/pixreskit/resample/internal/cpuext"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// DispatchHorizontalU8 and its siblings below are the (pixel type x CPU
// extension) routing table's scalar cells: F32x4 has the only hand-tuned
// AVX2 path, so every other pixel type's dispatcher ignores ext and
// always runs the generic scalar kernel. Keeping the ext parameter on every cell, used or not, means
// adding a new accelerated cell later is a one-line change at the call
// site rather than a new call signature.

func DispatchHorizontalU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer16, ext cpuext.Extension) {
	HorizontalU8[P](src, dst, yOffset, norm)
}

func DispatchVerticalU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer16, ext cpuext.Extension) {
	VerticalU8[P](src, dst, yOffset, norm)
}

func DispatchHorizontalU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer32, ext cpuext.Extension) {
	HorizontalU16[P](src, dst, yOffset, norm)
}

func DispatchVerticalU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer32, ext cpuext.Extension) {
	VerticalU16[P](src, dst, yOffset, norm)
}

func DispatchHorizontalI32(src raster.View[pixel.I32Pix], dst raster.MutView[pixel.I32Pix], yOffset int, norm convolve.Normalizer32, ext cpuext.Extension) {
	HorizontalI32(src, dst, yOffset, norm)
}

func DispatchVerticalI32(src raster.View[pixel.I32Pix], dst raster.MutView[pixel.I32Pix], yOffset int, norm convolve.Normalizer32, ext cpuext.Extension) {
	VerticalI32(src, dst, yOffset, norm)
}

// DispatchHorizontalF32 covers F32, F32x2, F32x3: no accelerated kernel
// targets these channel counts, so this too always runs scalar.
func DispatchHorizontalF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], yOffset int, coeffs convolve.Coefficients, ext cpuext.Extension) {
	HorizontalF32[P](src, dst, yOffset, coeffs)
}

func DispatchVerticalF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], yOffset int, coeffs convolve.Coefficients, ext cpuext.Extension) {
	VerticalF32[P](src, dst, yOffset, coeffs)
}

// DispatchHorizontalF32x4 is the one routing cell with a real accelerated
// branch: AVX2 runs HorizontalF32x4AVX2, everything else falls through to
// the generic scalar kernel.
func DispatchHorizontalF32x4(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], yOffset int, coeffs convolve.Coefficients, ext cpuext.Extension) {
	if ext == cpuext.AVX2 {
		HorizontalF32x4AVX2(src, dst, yOffset, coeffs)
		return
	}
	HorizontalF32[pixel.F32x4Pix](src, dst, yOffset, coeffs)
}

func DispatchVerticalF32x4(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], yOffset int, coeffs convolve.Coefficients, ext cpuext.Extension) {
	if ext == cpuext.AVX2 {
		VerticalF32x4AVX2(src, dst, yOffset, coeffs)
		return
	}
	VerticalF32[pixel.F32x4Pix](src, dst, yOffset, coeffs)
}
