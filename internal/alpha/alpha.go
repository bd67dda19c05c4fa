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

// Package alpha implements the premultiply/unpremultiply engine that runs
// before and after convolution: convolving non-premultiplied colour
// channels against an independent alpha channel produces halos at hard
// edges, so every alpha-bearing pixel format is multiplied going in and
// divided going back out. The bias-and-shift formulation below is the
// Pillow-SIMD integer-division trick, generalised across storage kinds.
package alpha

import (
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// MultiplyU8 premultiplies every non-alpha channel by the trailing alpha
// channel for any uint8-channel alpha-bearing pixel type (U8x2, U8x4):
// c' = round(c*a/255), computed as ((c*a+128) + ((c*a+128)>>8)) >> 8,
// which matches round(c*a/255) exactly for every (c, a) in [0,255]^2.
func MultiplyU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P]) {
	var zero P
	n := zero.PixelType().ComponentCount()
	a := n - 1
	height := src.Height()

	for y := 0; y < height; y++ {
		srcRow := pixel.Components[P, uint8](src.Row(y))
		dstRow := pixel.Components[P, uint8](dst.RowMut(y))
		width := len(srcRow) / n
		for x := 0; x < width; x++ {
			base := x * n
			av := uint32(srcRow[base+a])
			for c := 0; c < a; c++ {
				t := uint32(srcRow[base+c])*av + 128
				dstRow[base+c] = uint8((t + (t >> 8)) >> 8)
			}
			dstRow[base+a] = srcRow[base+a]
		}
	}
}

// DivideU8 is the inverse of MultiplyU8: a=0 pixels become all zero;
// otherwise c' = min(c*255/a, 255), truncated. This is the ground-truth
// reference the accelerated reciprocal-multiply paths are allowed to
// differ from by at most 1.
func DivideU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P]) {
	var zero P
	n := zero.PixelType().ComponentCount()
	a := n - 1
	height := src.Height()

	for y := 0; y < height; y++ {
		srcRow := pixel.Components[P, uint8](src.Row(y))
		dstRow := pixel.Components[P, uint8](dst.RowMut(y))
		width := len(srcRow) / n
		for x := 0; x < width; x++ {
			base := x * n
			av := srcRow[base+a]
			if av == 0 {
				for c := 0; c <= a; c++ {
					dstRow[base+c] = 0
				}
				continue
			}
			recip := 255.0 / float32(av)
			for c := 0; c < a; c++ {
				v := uint32(float32(srcRow[base+c]) * recip)
				if v > 255 {
					v = 255
				}
				dstRow[base+c] = uint8(v)
			}
			dstRow[base+a] = av
		}
	}
}

// MultiplyU16 is the 16-bit analogue of MultiplyU8 (bias 0x8000, shift 16).
func MultiplyU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P]) {
	var zero P
	n := zero.PixelType().ComponentCount()
	a := n - 1
	height := src.Height()

	for y := 0; y < height; y++ {
		srcRow := pixel.Components[P, uint16](src.Row(y))
		dstRow := pixel.Components[P, uint16](dst.RowMut(y))
		width := len(srcRow) / n
		for x := 0; x < width; x++ {
			base := x * n
			av := uint64(srcRow[base+a])
			for c := 0; c < a; c++ {
				t := uint64(srcRow[base+c])*av + 0x8000
				dstRow[base+c] = uint16((t + (t >> 16)) >> 16)
			}
			dstRow[base+a] = srcRow[base+a]
		}
	}
}

// DivideU16 is the 16-bit analogue of DivideU8.
func DivideU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P]) {
	var zero P
	n := zero.PixelType().ComponentCount()
	a := n - 1
	height := src.Height()

	for y := 0; y < height; y++ {
		srcRow := pixel.Components[P, uint16](src.Row(y))
		dstRow := pixel.Components[P, uint16](dst.RowMut(y))
		width := len(srcRow) / n
		for x := 0; x < width; x++ {
			base := x * n
			av := srcRow[base+a]
			if av == 0 {
				for c := 0; c <= a; c++ {
					dstRow[base+c] = 0
				}
				continue
			}
			recip := 65535.0 / float64(av)
			for c := 0; c < a; c++ {
				v := uint64(float64(srcRow[base+c]) * recip)
				if v > 65535 {
					v = 65535
				}
				dstRow[base+c] = uint16(v)
			}
			dstRow[base+a] = av
		}
	}
}

// MultiplyF32 and DivideF32 have no fixed-point precision concern: f32
// channels and alpha are assumed normalised to [0,1], so multiply is a
// direct product and divide just guards against a=0.
func MultiplyF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P]) {
	var zero P
	n := zero.PixelType().ComponentCount()
	a := n - 1
	height := src.Height()

	for y := 0; y < height; y++ {
		srcRow := pixel.Components[P, float32](src.Row(y))
		dstRow := pixel.Components[P, float32](dst.RowMut(y))
		width := len(srcRow) / n
		for x := 0; x < width; x++ {
			base := x * n
			av := srcRow[base+a]
			for c := 0; c < a; c++ {
				dstRow[base+c] = srcRow[base+c] * av
			}
			dstRow[base+a] = av
		}
	}
}

func DivideF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P]) {
	var zero P
	n := zero.PixelType().ComponentCount()
	a := n - 1
	height := src.Height()

	for y := 0; y < height; y++ {
		srcRow := pixel.Components[P, float32](src.Row(y))
		dstRow := pixel.Components[P, float32](dst.RowMut(y))
		width := len(srcRow) / n
		for x := 0; x < width; x++ {
			base := x * n
			av := srcRow[base+a]
			if av == 0 {
				for c := 0; c <= a; c++ {
					dstRow[base+c] = 0
				}
				continue
			}
			for c := 0; c < a; c++ {
				dstRow[base+c] = srcRow[base+c] / av
			}
			dstRow[base+a] = av
		}
	}
}
