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

package pipeline

import (
	"math"
	"testing"

	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

func TestOutSize(t *testing.T) {
	cases := []struct{ src, k, want int }{
		{10, 2, 5}, {11, 2, 5}, {9, 3, 3}, {8, 3, 2}, {5, 1, 5},
	}
	for _, c := range cases {
		if got := OutSize(c.src, c.k); got != c.want {
			t.Errorf("OutSize(%d, %d) = %d, want %d", c.src, c.k, got, c.want)
		}
	}
}

func TestBoxDownsampleU8ExactMeans(t *testing.T) {
	// 4x4 in blocks of 2x2 whose members are picked so each mean is exact.
	src := raster.New[pixel.U8x2Pix](4, 4)
	blockVals := [][4]uint8{
		{0, 0, 0, 0},
		{10, 20, 30, 40},
		{255, 255, 255, 255},
		{1, 3, 5, 7},
	}
	for b, vals := range blockVals {
		bx, by := (b%2)*2, (b/2)*2
		for i, v := range vals {
			src.RowMut(by + i/2)[bx+i%2] = pixel.U8x2Pix{v, 255 - v}
		}
	}
	dst := raster.New[pixel.U8x2Pix](2, 2)
	BoxDownsampleU8[pixel.U8x2Pix](src, dst, 2)

	wants := []uint8{0, 25, 255, 4}
	for b, w := range wants {
		got := dst.Row(b / 2)[b%2]
		if got[0] != w {
			t.Errorf("block %d mean = %d, want %d", b, got[0], w)
		}
		if got[1] != 255-w {
			t.Errorf("block %d second channel = %d, want %d", b, got[1], 255-w)
		}
	}
}

func TestBoxDownsampleU8RoundsHalfUp(t *testing.T) {
	src := raster.New[pixel.U8Pix](2, 2)
	for i, v := range []uint8{0, 1, 1, 1} { // mean 0.75 rounds to 1
		src.RowMut(i / 2)[i%2] = pixel.U8Pix{v}
	}
	dst := raster.New[pixel.U8Pix](1, 1)
	BoxDownsampleU8[pixel.U8Pix](src, dst, 2)
	if got := dst.Row(0)[0][0]; got != 1 {
		t.Errorf("mean of {0,1,1,1} = %d, want 1", got)
	}
}

func TestBoxDownsampleU16(t *testing.T) {
	src := raster.New[pixel.U16Pix](3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.RowMut(y)[x] = pixel.U16Pix{uint16(9000 + x + 3*y)}
		}
	}
	dst := raster.New[pixel.U16Pix](1, 1)
	BoxDownsampleU16[pixel.U16Pix](src, dst, 3)
	// Mean of 9000..9008 is exactly 9004.
	if got := dst.Row(0)[0][0]; got != 9004 {
		t.Errorf("3x3 mean = %d, want 9004", got)
	}
}

func TestBoxDownsampleF32(t *testing.T) {
	src := raster.New[pixel.F32x2Pix](2, 2)
	vals := []float32{0.1, 0.2, 0.3, 0.4}
	for i, v := range vals {
		src.RowMut(i / 2)[i%2] = pixel.F32x2Pix{v, -v}
	}
	dst := raster.New[pixel.F32x2Pix](1, 1)
	BoxDownsampleF32[pixel.F32x2Pix](src, dst, 2)

	got := dst.Row(0)[0]
	if math.Abs(float64(got[0])-0.25) > 1e-6 {
		t.Errorf("mean = %g, want 0.25", got[0])
	}
	if math.Abs(float64(got[1])+0.25) > 1e-6 {
		t.Errorf("second channel mean = %g, want -0.25", got[1])
	}
}

func TestBoxDownsampleI32HandlesNegatives(t *testing.T) {
	src := raster.New[pixel.I32Pix](2, 2)
	for i, v := range []int32{-100, -200, 100, -400} { // sum -600, mean -150
		src.RowMut(i / 2)[i%2] = pixel.I32Pix{v}
	}
	dst := raster.New[pixel.I32Pix](1, 1)
	BoxDownsampleI32(src, dst, 2)
	if got := dst.Row(0)[0][0]; got != -150 {
		t.Errorf("mean = %d, want -150", got)
	}
}

func TestBoxDownsampleIgnoresRaggedEdge(t *testing.T) {
	// 5x5 with k=2 produces 2x2; source row/column 4 is never read.
	src := raster.New[pixel.U8Pix](5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			v := uint8(10)
			if x == 4 || y == 4 {
				v = 255 // must not leak into any output mean
			}
			src.RowMut(y)[x] = pixel.U8Pix{v}
		}
	}
	dst := raster.New[pixel.U8Pix](2, 2)
	BoxDownsampleU8[pixel.U8Pix](src, dst, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.Row(y)[x][0]; got != 10 {
				t.Errorf("(%d,%d) = %d, want 10", x, y, got)
			}
		}
	}
}
