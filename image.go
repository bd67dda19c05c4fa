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
	"fmt"

	"github.com/pixreskit/resample/pixel"
)

// Image is the dynamically pixel-typed surface callers hold: a width,
// height, pixel.Type tag, and the raw interleaved-channel bytes. Every
// kernel operates on a compile-time-typed raster.Image reinterpreted
// from these same bytes with no copy; Image itself never allocates
// beyond NewImage's zeroed buffer.
type Image struct {
	width, height int
	pixelType     pixel.Type
	data          []byte
}

// NewImage allocates a new zeroed, owned image of the given dimensions
// and pixel type.
func NewImage(width, height int, pixelType pixel.Type) *Image {
	return &Image{
		width:     width,
		height:    height,
		pixelType: pixelType,
		data:      make([]byte, width*height*pixelType.Size()),
	}
}

// NewImageFromBytes wraps a caller-owned buffer as an Image with no
// copy. data's length must equal width*height*pixelType.Size(), and its
// start address must satisfy pixelType's alignment.
func NewImageFromBytes(width, height int, pixelType pixel.Type, data []byte) (*Image, error) {
	want := width * height * pixelType.Size()
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d %s", ErrInvalidBufferSize, len(data), want, width, height, pixelType)
	}
	if !pixelType.IsAligned(data) {
		return nil, fmt.Errorf("%w: buffer for %s must start on a %d-byte boundary", ErrInvalidBufferAlignment, pixelType, pixelType.Alignment())
	}
	return &Image{width: width, height: height, pixelType: pixelType, data: data}, nil
}

func (img *Image) Width() int            { return img.width }
func (img *Image) Height() int           { return img.height }
func (img *Image) PixelType() pixel.Type { return img.pixelType }

// Bytes returns the image's backing buffer, row-major with no padding.
func (img *Image) Bytes() []byte { return img.data }
