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

//go:build amd64 && goexperiment.simd

package alpha

import (
	"simd/archsimd"

	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// MultiplyF32x4AVX2 premultiplies two F32x4 pixels per vector op: each
// pixel's alpha (lane 3 or lane 7) is broadcast across its own four
// lanes and multiplied against the whole pixel, then the alpha lane is
// restored verbatim since alpha always premultiplies to itself.
func MultiplyF32x4AVX2(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix]) {
	height := src.Height()
	for y := 0; y < height; y++ {
		srcRow := pixel.Components[pixel.F32x4Pix, float32](src.Row(y))
		dstRow := pixel.Components[pixel.F32x4Pix, float32](dst.RowMut(y))
		width := len(srcRow)

		i := 0
		for ; i+8 <= width; i += 8 {
			pixels := archsimd.LoadFloat32x8Slice(srcRow[i : i+8])
			a0 := srcRow[i+3]
			a1 := srcRow[i+7]
			alphaVec := archsimd.LoadFloat32x8Slice([]float32{a0, a0, a0, a0, a1, a1, a1, a1})
			res := pixels.Mul(alphaVec)
			var out [8]float32
			res.StoreSlice(out[:])
			out[3] = a0
			out[7] = a1
			copy(dstRow[i:i+8], out[:])
		}
		for ; i < width; i += 4 {
			a := srcRow[i+3]
			for c := 0; c < 3; c++ {
				dstRow[i+c] = srcRow[i+c] * a
			}
			dstRow[i+3] = a
		}
	}
}

// DivideF32x4AVX2 is the AVX2 form of DivideF32 for F32x4: zero-alpha
// pixels zero out, others divide by a broadcast reciprocal so the inner
// loop stays a multiply.
func DivideF32x4AVX2(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix]) {
	height := src.Height()
	for y := 0; y < height; y++ {
		srcRow := pixel.Components[pixel.F32x4Pix, float32](src.Row(y))
		dstRow := pixel.Components[pixel.F32x4Pix, float32](dst.RowMut(y))
		width := len(srcRow)

		i := 0
		for ; i+8 <= width; i += 8 {
			a0 := srcRow[i+3]
			a1 := srcRow[i+7]
			r0, r1 := float32(0), float32(0)
			if a0 != 0 {
				r0 = 1.0 / a0
			}
			if a1 != 0 {
				r1 = 1.0 / a1
			}
			pixels := archsimd.LoadFloat32x8Slice(srcRow[i : i+8])
			recipVec := archsimd.LoadFloat32x8Slice([]float32{r0, r0, r0, r0, r1, r1, r1, r1})
			res := pixels.Mul(recipVec)
			var out [8]float32
			res.StoreSlice(out[:])
			if a0 == 0 {
				out[0], out[1], out[2], out[3] = 0, 0, 0, 0
			} else {
				out[3] = a0
			}
			if a1 == 0 {
				out[4], out[5], out[6], out[7] = 0, 0, 0, 0
			} else {
				out[7] = a1
			}
			copy(dstRow[i:i+8], out[:])
		}
		for ; i < width; i += 4 {
			a := srcRow[i+3]
			if a == 0 {
				dstRow[i], dstRow[i+1], dstRow[i+2], dstRow[i+3] = 0, 0, 0, 0
				continue
			}
			recip := 1.0 / a
			for c := 0; c < 3; c++ {
				dstRow[i+c] = srcRow[i+c] * recip
			}
			dstRow[i+3] = a
		}
	}
}
