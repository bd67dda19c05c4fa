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

import "errors"

// Sentinel errors form the closed taxonomy every operation in this
// package reports through; callers compare with errors.Is since
// constructors and Resizer.Resize wrap these with context via
// fmt.Errorf("%w: ...").
var (
	ErrInvalidBufferSize         = errors.New("resample: buffer size does not match declared dimensions and pixel type")
	ErrInvalidBufferAlignment    = errors.New("resample: buffer start address is not aligned to the pixel type's component size")
	ErrUnsupportedPixelType      = errors.New("resample: operation does not support this pixel type")
	ErrPixelTypesAreDifferent    = errors.New("resample: source and destination pixel types differ")
	ErrSizeIsDifferent           = errors.New("resample: source and destination dimensions differ")
	ErrDifferentDimensions       = errors.New("resample: views do not share dimensions")
	ErrUnsupportedImageTypeCombo = errors.New("resample: unsupported combination of image pixel types")
	ErrCropOutOfBounds           = errors.New("resample: crop box origin falls outside the source image")
	ErrCropSizeOutOfBounds       = errors.New("resample: crop box extends past the source image bounds")
	ErrInvalidFilterSupport      = errors.New("resample: custom filter support must be finite and greater than zero")
	ErrZeroSizedImage            = errors.New("resample: image width and height must both be nonzero")
	ErrUnsupportedSuperSampling  = errors.New("resample: super-sampling factor must shrink both dimensions by at least k")
)
