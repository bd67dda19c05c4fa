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
	"errors"
	"testing"

	"github.com/pixreskit/resample/pixel"
)

func TestNewImageZeroedAndSized(t *testing.T) {
	img := NewImage(4, 3, pixel.U8x4)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("dims = %dx%d, want 4x3", img.Width(), img.Height())
	}
	if img.PixelType() != pixel.U8x4 {
		t.Fatalf("PixelType = %v, want U8x4", img.PixelType())
	}
	data := img.Bytes()
	if len(data) != 4*3*4 {
		t.Fatalf("len(Bytes()) = %d, want %d", len(data), 4*3*4)
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0 (freshly allocated image)", i, b)
		}
	}
}

func TestNewImageFromBytesWrapsNoCopy(t *testing.T) {
	buf := make([]byte, 2*2*4)
	for i := range buf {
		buf[i] = byte(i)
	}
	img, err := NewImageFromBytes(2, 2, pixel.U8x4, buf)
	if err != nil {
		t.Fatalf("NewImageFromBytes: %v", err)
	}
	buf[0] = 200
	if img.Bytes()[0] != 200 {
		t.Fatal("NewImageFromBytes copied the buffer; want it aliased")
	}
}

func TestNewImageFromBytesRejectsWrongSize(t *testing.T) {
	buf := make([]byte, 10)
	_, err := NewImageFromBytes(2, 2, pixel.U8x4, buf)
	if err == nil {
		t.Fatal("NewImageFromBytes with wrong buffer size: want error, got nil")
	}
	if !errors.Is(err, ErrInvalidBufferSize) {
		t.Errorf("error = %v, want wrapping ErrInvalidBufferSize", err)
	}
}

func TestNewImageFromBytesRejectsMisalignment(t *testing.T) {
	buf := make([]byte, 2*2*2+1)
	_, err := NewImageFromBytes(2, 2, pixel.U16, buf[1:])
	if err == nil {
		t.Fatal("NewImageFromBytes with misaligned buffer: want error, got nil")
	}
	if !errors.Is(err, ErrInvalidBufferAlignment) {
		t.Errorf("error = %v, want wrapping ErrInvalidBufferAlignment", err)
	}
}
