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

// VerticalF32x4AVX2 is the AVX2 form of VerticalF32 specialised to F32x4.
// Unlike the horizontal pass, every destination column shares the same
// chunk, so this vectorises across columns: two adjacent F32x4 pixels
// (8 floats) accumulate together per tap, with the source row's weight
// broadcast across all 8 lanes since there's only one tap per row here.
func VerticalF32x4AVX2(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], yOffset int, coeffs convolve.Coefficients) {
	chunks := coeffs.Chunks()
	width := dst.Width() * 4

	for y, chunk := range chunks {
		dstRow := pixel.Components[pixel.F32x4Pix, float32](dst.RowMut(y))
		accVecs := make([]archsimd.Float32x8, (width+7)/8)

		for k, w := range chunk.Values {
			srcRow := pixel.Components[pixel.F32x4Pix, float32](src.Row(yOffset + int(chunk.Start) + k))
			wVec := archsimd.BroadcastFloat32x8(float32(w))
			i := 0
			vi := 0
			for ; i+8 <= width; i += 8 {
				v := archsimd.LoadFloat32x8Slice(srcRow[i : i+8])
				accVecs[vi] = accVecs[vi].Add(v.Mul(wVec))
				vi++
			}
			if i < width {
				var tail [8]float32
				copy(tail[:], srcRow[i:width])
				v := archsimd.LoadFloat32x8Slice(tail[:])
				accVecs[vi] = accVecs[vi].Add(v.Mul(wVec))
			}
		}

		i := 0
		vi := 0
		for ; i+8 <= width; i += 8 {
			accVecs[vi].StoreSlice(dstRow[i : i+8])
			vi++
		}
		if i < width {
			var out [8]float32
			accVecs[vi].StoreSlice(out[:])
			copy(dstRow[i:width], out[:width-i])
		}
	}
}
