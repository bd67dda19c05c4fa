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

package kernel

import (
	"simd/archsimd"

	"github.com/pixreskit/resample/internal/convolve"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// HorizontalF32x4AVX2 is the AVX2 form of HorizontalF32 specialised to
// F32x4: the four-channel pixel unrolls onto one Float32x8 lane pair, so
// two filter taps are folded per vector op instead of one. Coefficient
// pairs are broadcast into an 8-wide weight vector (w0 in lanes 0-3, w1
// in lanes 4-7) and multiplied against two consecutive source pixels
// loaded as a single Float32x8; accumulation folds lo+hi once the tap
// loop ends. An odd tap count falls back to scalar accumulation for the
// final one.
func HorizontalF32x4AVX2(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], yOffset int, coeffs convolve.Coefficients) {
	chunks := coeffs.Chunks()
	dstHeight := dst.Height()

	for y := 0; y < dstHeight; y++ {
		srcRow := pixel.Components[pixel.F32x4Pix, float32](src.Row(yOffset + y))
		dstRow := pixel.Components[pixel.F32x4Pix, float32](dst.RowMut(y))

		for x, chunk := range chunks {
			base := int(chunk.Start) * 4
			acc := archsimd.BroadcastFloat32x8(0)

			k := 0
			for ; k+1 < len(chunk.Values); k += 2 {
				w0 := float32(chunk.Values[k])
				w1 := float32(chunk.Values[k+1])
				pair := archsimd.LoadFloat32x8Slice(srcRow[base+k*4 : base+k*4+8])
				weights := archsimd.LoadFloat32x8Slice([]float32{w0, w0, w0, w0, w1, w1, w1, w1})
				acc = acc.Add(pair.Mul(weights))
			}

			var folded [8]float32
			acc.StoreSlice(folded[:])
			var result [4]float32
			for c := 0; c < 4; c++ {
				result[c] = folded[c] + folded[c+4]
			}

			for ; k < len(chunk.Values); k++ {
				w := float32(chunk.Values[k])
				off := base + k*4
				for c := 0; c < 4; c++ {
					result[c] += srcRow[off+c] * w
				}
			}

			copy(dstRow[x*4:x*4+4], result[:])
		}
	}
}
