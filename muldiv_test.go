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

package resample

import (
	"testing"

	"github.com/pixreskit/resample/pixel"
)

// TestMultiplyAlphaU8x4 pins the premultiply of three representative
// pixels: partial alpha, full alpha, and zero alpha.
func TestMultiplyAlphaU8x4(t *testing.T) {
	src := NewImage(3, 1, pixel.U8x4)
	copy(src.Bytes(), []byte{
		255, 128, 0, 128,
		255, 128, 0, 255,
		255, 128, 0, 0,
	})
	dst := NewImage(3, 1, pixel.U8x4)

	m := NewMulDiv()
	if err := m.MultiplyAlpha(src, dst); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}

	want := []byte{
		128, 64, 0, 128,
		255, 128, 0, 255,
		0, 0, 0, 0,
	}
	got := dst.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// TestDivideAlphaU8x4 pins the unpremultiply of the same three
// representative pixels, including the zero-alpha all-zeros fallback.
func TestDivideAlphaU8x4(t *testing.T) {
	src := NewImage(3, 1, pixel.U8x4)
	copy(src.Bytes(), []byte{
		128, 64, 0, 128,
		255, 128, 0, 255,
		255, 128, 0, 0,
	})
	dst := NewImage(3, 1, pixel.U8x4)

	m := NewMulDiv()
	if err := m.DivideAlpha(src, dst); err != nil {
		t.Fatalf("DivideAlpha: %v", err)
	}

	want := []byte{
		255, 127, 0, 128,
		255, 128, 0, 255,
		0, 0, 0, 0,
	}
	got := dst.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

// TestMultiplyDivideAlphaRoundTrip checks that for pixels with nonzero
// alpha, divide(multiply(p)) reproduces p within the rounding error
// introduced by the two integer roundtrips.
func TestMultiplyDivideAlphaRoundTrip(t *testing.T) {
	src := NewImage(4, 1, pixel.U8x4)
	copy(src.Bytes(), []byte{
		200, 100, 50, 255,
		200, 100, 50, 200,
		10, 250, 30, 64,
		0, 0, 0, 1,
	})

	premul := NewImage(4, 1, pixel.U8x4)
	m := NewMulDiv()
	if err := m.MultiplyAlpha(src, premul); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}
	unpremul := NewImage(4, 1, pixel.U8x4)
	if err := m.DivideAlpha(premul, unpremul); err != nil {
		t.Fatalf("DivideAlpha: %v", err)
	}

	srcData, gotData := src.Bytes(), unpremul.Bytes()
	for px := 0; px < 4; px++ {
		alphaIdx := px*4 + 3
		alpha := srcData[alphaIdx]
		for ch := 0; ch < 3; ch++ {
			i := px*4 + ch
			diff := int(srcData[i]) - int(gotData[i])
			// Low alpha amplifies rounding error on divide; scale the
			// tolerance by how much a single premultiply LSB expands.
			tolerance := 1
			if alpha > 0 {
				tolerance = 1 + 255/int(alpha)
			}
			if diff < -tolerance || diff > tolerance {
				t.Errorf("pixel %d channel %d: src=%d got=%d (alpha=%d), want within +/-%d", px, ch, srcData[i], gotData[i], alpha, tolerance)
			}
		}
		// Alpha itself must always round-trip exactly.
		if srcData[alphaIdx] != gotData[alphaIdx] {
			t.Errorf("pixel %d alpha: src=%d got=%d, want exact", px, srcData[alphaIdx], gotData[alphaIdx])
		}
	}
}

func TestMultiplyAlphaRejectsNoAlphaType(t *testing.T) {
	src := NewImage(2, 2, pixel.U8x3)
	dst := NewImage(2, 2, pixel.U8x3)
	m := NewMulDiv()
	if err := m.MultiplyAlpha(src, dst); err == nil {
		t.Fatal("MultiplyAlpha on alpha-less pixel type: want error, got nil")
	}
}

func TestMultiplyAlphaRejectsMismatchedTypes(t *testing.T) {
	src := NewImage(2, 2, pixel.U8x4)
	dst := NewImage(2, 2, pixel.U16x4)
	m := NewMulDiv()
	if err := m.MultiplyAlpha(src, dst); err == nil {
		t.Fatal("MultiplyAlpha with mismatched pixel types: want error, got nil")
	}
}

func TestMultiplyAlphaRejectsMismatchedDimensions(t *testing.T) {
	src := NewImage(2, 2, pixel.U8x4)
	dst := NewImage(3, 2, pixel.U8x4)
	m := NewMulDiv()
	if err := m.MultiplyAlpha(src, dst); err == nil {
		t.Fatal("MultiplyAlpha with mismatched dimensions: want error, got nil")
	}
}

func TestMultiplyAlphaInplace(t *testing.T) {
	img := NewImage(1, 1, pixel.U8x4)
	copy(img.Bytes(), []byte{255, 128, 0, 128})
	m := NewMulDiv()
	if err := m.MultiplyAlphaInplace(img); err != nil {
		t.Fatalf("MultiplyAlphaInplace: %v", err)
	}
	want := []byte{128, 64, 0, 128}
	got := img.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}
