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

package alpha

import (
	"math"
	"testing"

	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// TestMultiplyU8MatchesExactRounding sweeps a grid of (colour, alpha)
// pairs and checks the bias-and-shift formulation against the exact
// round(c*a/255) it is supposed to equal for every input pair.
func TestMultiplyU8MatchesExactRounding(t *testing.T) {
	values := []uint8{0, 1, 2, 63, 64, 127, 128, 129, 200, 254, 255}
	src := raster.New[pixel.U8x2Pix](len(values)*len(values), 1)
	row := src.RowMut(0)
	i := 0
	for _, c := range values {
		for _, a := range values {
			row[i] = pixel.U8x2Pix{c, a}
			i++
		}
	}
	dst := raster.New[pixel.U8x2Pix](src.Width(), 1)
	MultiplyU8[pixel.U8x2Pix](src, dst)

	out := dst.Row(0)
	i = 0
	for _, c := range values {
		for _, a := range values {
			want := uint8(math.Round(float64(c) * float64(a) / 255.0))
			if out[i][0] != want {
				t.Errorf("multiply(c=%d, a=%d) = %d, want %d", c, a, out[i][0], want)
			}
			if out[i][1] != a {
				t.Errorf("multiply(c=%d, a=%d) changed alpha to %d", c, a, out[i][1])
			}
			i++
		}
	}
}

func TestDivideU8ZeroAlphaZeroesPixel(t *testing.T) {
	src := raster.New[pixel.U8x4Pix](1, 1)
	src.RowMut(0)[0] = pixel.U8x4Pix{255, 128, 7, 0}
	dst := raster.New[pixel.U8x4Pix](1, 1)
	DivideU8[pixel.U8x4Pix](src, dst)
	if got := dst.Row(0)[0]; got != (pixel.U8x4Pix{0, 0, 0, 0}) {
		t.Errorf("divide with zero alpha = %v, want all zeros", got)
	}
}

func TestDivideU8Truncates(t *testing.T) {
	cases := []struct {
		in   pixel.U8x4Pix
		want pixel.U8x4Pix
	}{
		{pixel.U8x4Pix{128, 64, 0, 128}, pixel.U8x4Pix{255, 127, 0, 128}},
		{pixel.U8x4Pix{255, 128, 0, 255}, pixel.U8x4Pix{255, 128, 0, 255}},
		{pixel.U8x4Pix{10, 1, 0, 20}, pixel.U8x4Pix{127, 12, 0, 20}},
	}
	src := raster.New[pixel.U8x4Pix](len(cases), 1)
	for i, c := range cases {
		src.RowMut(0)[i] = c.in
	}
	dst := raster.New[pixel.U8x4Pix](len(cases), 1)
	DivideU8[pixel.U8x4Pix](src, dst)
	for i, c := range cases {
		if got := dst.Row(0)[i]; got != c.want {
			t.Errorf("divide(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDivideU8ClampsOverflow(t *testing.T) {
	src := raster.New[pixel.U8x2Pix](1, 1)
	src.RowMut(0)[0] = pixel.U8x2Pix{200, 10}
	dst := raster.New[pixel.U8x2Pix](1, 1)
	DivideU8[pixel.U8x2Pix](src, dst)
	// 200*255/10 = 5100, clamped.
	if got := dst.Row(0)[0][0]; got != 255 {
		t.Errorf("divide(200, a=10) = %d, want 255", got)
	}
}

func TestMultiplyDivideU16RoundTrip(t *testing.T) {
	cases := []pixel.U16x4Pix{
		{65535, 32768, 255, 65535},
		{50000, 10000, 1, 40000},
		{12345, 54321, 33333, 2},
	}
	src := raster.New[pixel.U16x4Pix](len(cases), 1)
	for i, c := range cases {
		src.RowMut(0)[i] = c
	}
	premul := raster.New[pixel.U16x4Pix](len(cases), 1)
	MultiplyU16[pixel.U16x4Pix](src, premul)
	back := raster.New[pixel.U16x4Pix](len(cases), 1)
	DivideU16[pixel.U16x4Pix](premul, back)

	for i, c := range cases {
		got := back.Row(0)[i]
		if got[3] != c[3] {
			t.Errorf("pixel %d: alpha %d round-tripped to %d", i, c[3], got[3])
		}
		a := float64(c[3])
		for ch := 0; ch < 3; ch++ {
			// One premultiply LSB expands by 65535/a on the way back.
			tolerance := 1.0
			if a > 0 {
				tolerance = 1 + 65535.0/a
			}
			if diff := math.Abs(float64(c[ch]) - float64(got[ch])); diff > tolerance {
				t.Errorf("pixel %d channel %d: %d -> %d (alpha %d), want within %g", i, ch, c[ch], got[ch], c[3], tolerance)
			}
		}
	}
}

func TestMultiplyU16ZeroAlpha(t *testing.T) {
	src := raster.New[pixel.U16x2Pix](1, 1)
	src.RowMut(0)[0] = pixel.U16x2Pix{40000, 0}
	dst := raster.New[pixel.U16x2Pix](1, 1)
	MultiplyU16[pixel.U16x2Pix](src, dst)
	if got := dst.Row(0)[0]; got != (pixel.U16x2Pix{0, 0}) {
		t.Errorf("multiply with zero alpha = %v, want zeros", got)
	}
}

func TestMultiplyDivideF32RoundTrip(t *testing.T) {
	cases := []pixel.F32x4Pix{
		{1.0, 0.5, 0.25, 1.0},
		{0.75, 0.1, 0.9, 0.5},
		{0.2, 0.4, 0.6, 0.001},
	}
	src := raster.New[pixel.F32x4Pix](len(cases), 1)
	for i, c := range cases {
		src.RowMut(0)[i] = c
	}
	premul := raster.New[pixel.F32x4Pix](len(cases), 1)
	MultiplyF32[pixel.F32x4Pix](src, premul)
	back := raster.New[pixel.F32x4Pix](len(cases), 1)
	DivideF32[pixel.F32x4Pix](premul, back)

	for i, c := range cases {
		got := back.Row(0)[i]
		for ch := 0; ch < 4; ch++ {
			rel := math.Abs(float64(got[ch]-c[ch])) / math.Max(float64(c[ch]), 1e-6)
			if rel > 1e-5 {
				t.Errorf("pixel %d channel %d: %g -> %g, relative error %g", i, ch, c[ch], got[ch], rel)
			}
		}
	}
}

func TestDivideF32ZeroAlphaZeroesPixel(t *testing.T) {
	src := raster.New[pixel.F32x2Pix](1, 1)
	src.RowMut(0)[0] = pixel.F32x2Pix{0.7, 0}
	dst := raster.New[pixel.F32x2Pix](1, 1)
	DivideF32[pixel.F32x2Pix](src, dst)
	if got := dst.Row(0)[0]; got != (pixel.F32x2Pix{0, 0}) {
		t.Errorf("divide with zero alpha = %v, want zeros", got)
	}
}

// TestMultiplyF32x4AVX2AgreesWithScalar checks the AVX2 routing cells agree
// with the scalar reference whatever build this test runs under: on a
// non-SIMD build they are the scalar routine, on a SIMD build the vector
// path must match it to an absolute 1e-5.
func TestMultiplyF32x4AVX2AgreesWithScalar(t *testing.T) {
	src := raster.New[pixel.F32x4Pix](5, 3)
	v := float32(0.01)
	for y := 0; y < 3; y++ {
		row := src.RowMut(y)
		for x := range row {
			row[x] = pixel.F32x4Pix{v, v * 2, v * 3, 0.5 + v}
			v += 0.03
		}
	}

	want := raster.New[pixel.F32x4Pix](5, 3)
	MultiplyF32[pixel.F32x4Pix](src, want)
	got := raster.New[pixel.F32x4Pix](5, 3)
	MultiplyF32x4AVX2(src, got)

	for y := 0; y < 3; y++ {
		wr, gr := want.Row(y), got.Row(y)
		for x := range wr {
			for ch := 0; ch < 4; ch++ {
				diff := math.Abs(float64(wr[x][ch] - gr[x][ch]))
				if diff > 1e-5 {
					t.Errorf("(%d,%d) channel %d: scalar %g vs dispatched %g", x, y, ch, wr[x][ch], gr[x][ch])
				}
			}
		}
	}
}
