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

// Package pipeline implements the SuperSampling algorithm: an integer-
// factor box-average pre-pass that shrinks the source by k before the
// final convolution resizes from that intermediate image. Box averaging
// here is a direct k x k mean, written per component kind the same way
// internal/alpha and internal/kernel are, rather than routed through the
// separable-filter coefficient machinery: a plain box mean has no
// negative lobes and no edge taps to precompute.
package pipeline

import (
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// OutSize returns the box-averaged intermediate dimension for a source
// dimension and integer factor k: floor(srcSize / k). Callers only run
// SuperSampling when both dimensions shrink by at least k (checked by
// the facade), so this is always >= the final destination size.
func OutSize(srcSize, k int) int {
	return srcSize / k
}

// BoxDownsampleU8 averages each k x k source block into one destination
// pixel, for any uint8-channel pixel type. Channel sums accumulate in
// uint32 and divide by k*k with round-half-up.
func BoxDownsampleU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], k int) {
	var zero P
	n := zero.PixelType().ComponentCount()
	area := uint32(k * k)
	half := area / 2
	dstW, dstH := dst.Width(), dst.Height()

	for y := 0; y < dstH; y++ {
		dstRow := pixel.Components[P, uint8](dst.RowMut(y))
		sums := make([]uint32, dstW*n)
		for ky := 0; ky < k; ky++ {
			srcRow := pixel.Components[P, uint8](src.Row(y*k + ky))
			for x := 0; x < dstW; x++ {
				base := x * k * n
				out := x * n
				for kx := 0; kx < k; kx++ {
					off := base + kx*n
					for c := 0; c < n; c++ {
						sums[out+c] += uint32(srcRow[off+c])
					}
				}
			}
		}
		for i, s := range sums {
			dstRow[i] = uint8((s + half) / area)
		}
	}
}

// BoxDownsampleU16 is the uint16-channel analogue of BoxDownsampleU8.
func BoxDownsampleU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], k int) {
	var zero P
	n := zero.PixelType().ComponentCount()
	area := uint64(k * k)
	half := area / 2
	dstW, dstH := dst.Width(), dst.Height()

	for y := 0; y < dstH; y++ {
		dstRow := pixel.Components[P, uint16](dst.RowMut(y))
		sums := make([]uint64, dstW*n)
		for ky := 0; ky < k; ky++ {
			srcRow := pixel.Components[P, uint16](src.Row(y*k + ky))
			for x := 0; x < dstW; x++ {
				base := x * k * n
				out := x * n
				for kx := 0; kx < k; kx++ {
					off := base + kx*n
					for c := 0; c < n; c++ {
						sums[out+c] += uint64(srcRow[off+c])
					}
				}
			}
		}
		for i, s := range sums {
			dstRow[i] = uint16((s + half) / area)
		}
	}
}

// BoxDownsampleF32 is the float32-channel analogue; no rounding bias
// needed since there is no integer truncation.
func BoxDownsampleF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], k int) {
	var zero P
	n := zero.PixelType().ComponentCount()
	area := float64(k * k)
	dstW, dstH := dst.Width(), dst.Height()

	for y := 0; y < dstH; y++ {
		dstRow := pixel.Components[P, float32](dst.RowMut(y))
		sums := make([]float64, dstW*n)
		for ky := 0; ky < k; ky++ {
			srcRow := pixel.Components[P, float32](src.Row(y*k + ky))
			for x := 0; x < dstW; x++ {
				base := x * k * n
				out := x * n
				for kx := 0; kx < k; kx++ {
					off := base + kx*n
					for c := 0; c < n; c++ {
						sums[out+c] += float64(srcRow[off+c])
					}
				}
			}
		}
		for i, s := range sums {
			dstRow[i] = float32(s / area)
		}
	}
}

// BoxDownsampleI32 averages I32's single raw channel directly, with no
// saturation: I32 rasters carry arbitrary signed data, not a fixed
// range, matching HorizontalI32/VerticalI32's rationale.
func BoxDownsampleI32(src raster.View[pixel.I32Pix], dst raster.MutView[pixel.I32Pix], k int) {
	area := int64(k * k)
	dstW, dstH := dst.Width(), dst.Height()

	for y := 0; y < dstH; y++ {
		dstRow := dst.RowMut(y)
		sums := make([]int64, dstW)
		for ky := 0; ky < k; ky++ {
			srcRow := src.Row(y*k + ky)
			for x := 0; x < dstW; x++ {
				base := x * k
				for kx := 0; kx < k; kx++ {
					sums[x] += int64(srcRow[base+kx][0])
				}
			}
		}
		for i, s := range sums {
			dstRow[i] = pixel.I32Pix{int32(s / area)}
		}
	}
}
