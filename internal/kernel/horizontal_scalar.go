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

// Package kernel holds the per-(pixel type x CPU extension) horizontal
// and vertical convolution routines; the nearest-neighbour copy lives in
// internal/nearest. Each routine's contract: dst pixel (xDst, yDst) is
//
//	sum over x in chunk(xDst) of src[chunk.start+x, yOffset+yDst] * chunk.values[x]
//
// Scalar routines here are written generically over any pixel type whose
// channels share a storage kind (uint8, uint16, float32), using
// pixel.Components to flatten a row to its raw channels; a single
// function therefore serves every channel-count variant of that kind,
// collapsing what the dispatch table still treats as distinct cells.
package kernel

import (
	"github.com/pixreskit/resample/internal/convolve"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// HorizontalU8 runs the fixed-point horizontal convolution for any
// uint8-channel pixel type (U8, U8x2, U8x3, U8x4).
func HorizontalU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer16) {
	var zero P
	n := zero.PixelType().ComponentCount()
	bias := int32(1) << (norm.Precision - 1)
	chunks := norm.Chunks()
	dstHeight := dst.Height()

	for y := 0; y < dstHeight; y++ {
		srcRow := pixel.Components[P, uint8](src.Row(yOffset + y))
		dstRow := pixel.Components[P, uint8](dst.RowMut(y))
		for x, chunk := range chunks {
			base := int(chunk.Start) * n
			for c := 0; c < n; c++ {
				acc := bias
				for k, w := range chunk.Values {
					acc += int32(srcRow[base+k*n+c]) * int32(w)
				}
				dstRow[x*n+c] = convolve.Clip8(acc, norm.Precision)
			}
		}
	}
}

// HorizontalU16 runs the fixed-point horizontal convolution for any
// uint16-channel pixel type (U16, U16x2, U16x3, U16x4).
func HorizontalU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer32) {
	var zero P
	n := zero.PixelType().ComponentCount()
	bias := int64(1) << (norm.Precision - 1)
	chunks := norm.Chunks()
	dstHeight := dst.Height()

	for y := 0; y < dstHeight; y++ {
		srcRow := pixel.Components[P, uint16](src.Row(yOffset + y))
		dstRow := pixel.Components[P, uint16](dst.RowMut(y))
		for x, chunk := range chunks {
			base := int(chunk.Start) * n
			for c := 0; c < n; c++ {
				acc := bias
				for k, w := range chunk.Values {
					acc += int64(srcRow[base+k*n+c]) * int64(w)
				}
				dstRow[x*n+c] = convolve.Clip16(acc, norm.Precision)
			}
		}
	}
}

// HorizontalF32 runs the horizontal convolution for any float32-channel
// pixel type (F32, F32x2, F32x3, F32x4), accumulating in float64 for
// precision and narrowing at the end; there is no fixed-point step.
func HorizontalF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], yOffset int, coeffs convolve.Coefficients) {
	var zero P
	n := zero.PixelType().ComponentCount()
	chunks := coeffs.Chunks()
	dstHeight := dst.Height()

	for y := 0; y < dstHeight; y++ {
		srcRow := pixel.Components[P, float32](src.Row(yOffset + y))
		dstRow := pixel.Components[P, float32](dst.RowMut(y))
		for x, chunk := range chunks {
			base := int(chunk.Start) * n
			for c := 0; c < n; c++ {
				acc := 0.0
				for k, w := range chunk.Values {
					acc += float64(srcRow[base+k*n+c]) * w
				}
				dstRow[x*n+c] = float32(acc)
			}
		}
	}
}

// HorizontalI32 runs the horizontal convolution for the single-channel
// I32 pixel type, accumulating in int64 with no output-range clamp: I32
// rasters carry arbitrary signed data (e.g. label/depth planes), not a
// fixed 8/16-bit range, so there is nothing to saturate against.
func HorizontalI32(src raster.View[pixel.I32Pix], dst raster.MutView[pixel.I32Pix], yOffset int, norm convolve.Normalizer32) {
	bias := int64(1) << (norm.Precision - 1)
	chunks := norm.Chunks()
	dstHeight := dst.Height()

	for y := 0; y < dstHeight; y++ {
		srcRow := src.Row(yOffset + y)
		dstRow := dst.RowMut(y)
		for x, chunk := range chunks {
			acc := bias
			for k, w := range chunk.Values {
				acc += int64(srcRow[int(chunk.Start)+k][0]) * int64(w)
			}
			dstRow[x] = pixel.I32Pix{int32(acc >> norm.Precision)}
		}
	}
}
