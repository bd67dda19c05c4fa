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

func TestSrgbLinearRoundTrip(t *testing.T) {
	src := NewImage(1, 1, pixel.U8x4)
	copy(src.Bytes(), []byte{10, 128, 250, 128})

	// The linear intermediate must be float: quantising linear light to
	// 8 bits collapses dark sRGB values (10 would come back as 13).
	linear := NewImage(1, 1, pixel.F32x4)
	if err := SrgbIntoRgb(src, linear); err != nil {
		t.Fatalf("SrgbIntoRgb: %v", err)
	}
	back := NewImage(1, 1, pixel.U8x4)
	if err := RgbIntoSrgb(linear, back); err != nil {
		t.Fatalf("RgbIntoSrgb: %v", err)
	}

	srcData, backData := src.Bytes(), back.Bytes()
	for i := range srcData {
		diff := int(srcData[i]) - int(backData[i])
		if diff < -1 || diff > 1 {
			t.Errorf("channel %d: src=%d round-tripped=%d, want within +/-1", i, srcData[i], backData[i])
		}
	}
	// Alpha must pass through with no transfer function applied.
	if srcData[3] != backData[3] {
		t.Errorf("alpha: src=%d round-tripped=%d, want exact", srcData[3], backData[3])
	}
}

func TestGamma22LinearRoundTrip(t *testing.T) {
	src := NewImage(1, 1, pixel.U8x4)
	copy(src.Bytes(), []byte{10, 128, 250, 200})

	linear := NewImage(1, 1, pixel.F32x4)
	if err := Gamma22IntoLinear(src, linear); err != nil {
		t.Fatalf("Gamma22IntoLinear: %v", err)
	}
	back := NewImage(1, 1, pixel.U8x4)
	if err := LinearIntoGamma22(linear, back); err != nil {
		t.Fatalf("LinearIntoGamma22: %v", err)
	}

	srcData, backData := src.Bytes(), back.Bytes()
	for i := 0; i < 3; i++ {
		diff := int(srcData[i]) - int(backData[i])
		if diff < -1 || diff > 1 {
			t.Errorf("channel %d: src=%d round-tripped=%d, want within +/-1", i, srcData[i], backData[i])
		}
	}
}

func TestSrgbIntoRgbEndpointsPreserved(t *testing.T) {
	src := NewImage(2, 1, pixel.U8x4)
	copy(src.Bytes(), []byte{
		0, 0, 0, 0,
		255, 255, 255, 255,
	})
	dst := NewImage(2, 1, pixel.U8x4)
	if err := SrgbIntoRgb(src, dst); err != nil {
		t.Fatalf("SrgbIntoRgb: %v", err)
	}
	data := dst.Bytes()
	for _, i := range []int{0, 1, 2, 3} {
		if data[i] != 0 {
			t.Errorf("black pixel channel %d = %d, want 0", i, data[i])
		}
	}
	for _, i := range []int{4, 5, 6, 7} {
		if data[i] != 255 {
			t.Errorf("white pixel channel %d = %d, want 255", i, data[i])
		}
	}
}

func TestSrgbIntoRgbRejectsDimensionMismatch(t *testing.T) {
	src := NewImage(2, 2, pixel.U8x4)
	dst := NewImage(3, 2, pixel.U8x4)
	if err := SrgbIntoRgb(src, dst); err == nil {
		t.Fatal("SrgbIntoRgb with mismatched dimensions: want error, got nil")
	}
}

func TestSrgbIntoRgbRejectsChannelMismatch(t *testing.T) {
	src := NewImage(2, 2, pixel.U8x4)
	dst := NewImage(2, 2, pixel.U8x3)
	if err := SrgbIntoRgb(src, dst); err == nil {
		t.Fatal("SrgbIntoRgb with mismatched channel count: want error, got nil")
	}
}
