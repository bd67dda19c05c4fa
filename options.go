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

import "github.com/pixreskit/resample/internal/convolve"

// FilterType selects a named preset separable filter for Convolution and
// SuperSampling. Values and supports mirror internal/convolve.FilterType
// exactly; this package keeps its own copy so callers outside this
// module never need to import an internal package.
type FilterType int

const (
	Box FilterType = iota
	Bilinear
	Hamming
	CatmullRom
	Mitchell
	Gaussian
	Lanczos3
)

func (f FilterType) toInternal() convolve.FilterType {
	return convolve.FilterType(f)
}

// CustomFilter is a caller-supplied separable filter kernel, for
// Convolution/SuperSampling resizes that need a response curve none of
// the named FilterType presets provide. Func is evaluated at a
// source-space offset in units of the filter's own scale; Support is
// the half-width, in source pixels at 1x scale, beyond which Func is
// assumed zero. Support must be finite and > 0 or Resize returns
// ErrInvalidFilterSupport.
type CustomFilter struct {
	Func    func(x float64) float64
	Support float64
}

func (f CustomFilter) toInternal() convolve.Filter {
	return convolve.Filter{Name: "Custom", Func: f.Func, Support: f.Support}
}

// Algorithm selects the resampling strategy.
type Algorithm int

const (
	// Nearest copies the nearest source pixel, no blending.
	Nearest Algorithm = iota
	// Convolution runs the full separable-filter resize pipeline.
	Convolution
	// SuperSampling box-averages by an integer factor before convolving,
	// legal only when both dimensions shrink by at least that factor.
	SuperSampling
)

// CropBox restricts a resize to a sub-rectangle of the source image, in
// source-pixel coordinates; fields may be fractional.
type CropBox struct {
	Left, Top, Width, Height float64
}

// Options configures a single Resizer.Resize call.
type Options struct {
	Algorithm Algorithm
	Filter    FilterType

	// Custom overrides Filter with a caller-supplied kernel when non-nil.
	Custom *CustomFilter

	// SuperSamplingFactor is the integer box-average factor k used when
	// Algorithm is SuperSampling; ignored otherwise.
	SuperSamplingFactor int

	// Crop restricts the resize to a sub-rectangle of the source image,
	// in source coordinates. Nil means the whole image.
	Crop *CropBox

	// UseAlpha wraps the convolution passes in multiply/divide-alpha
	// when the pixel type carries an alpha channel. Ignored for Nearest,
	// which neither blurs nor averages so premultiplication has no
	// effect on its output.
	UseAlpha bool
}

func (o Options) cropBounds(srcW, srcH int) (x0, x1, y0, y1 float64) {
	if o.Crop == nil {
		return 0, float64(srcW), 0, float64(srcH)
	}
	return o.Crop.Left, o.Crop.Left + o.Crop.Width, o.Crop.Top, o.Crop.Top + o.Crop.Height
}
