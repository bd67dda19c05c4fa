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

// Package resample is a high-throughput image-resampling library:
// separable-filter convolution and nearest-neighbour resizing over a
// fixed set of pixel formats, dispatching per (pixel type, CPU
// extension) to a hand-tuned SIMD kernel where one exists and a scalar
// fallback everywhere else.
package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/pixreskit/resample/internal/alpha"
	"github.com/pixreskit/resample/internal/convolve"
	"github.com/pixreskit/resample/internal/cpuext"
	"github.com/pixreskit/resample/internal/kernel"
	"github.com/pixreskit/resample/internal/nearest"
	"github.com/pixreskit/resample/internal/pipeline"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/internal/split"
	"github.com/pixreskit/resample/internal/workerpool"
	"github.com/pixreskit/resample/pixel"
)

// scratchKey identifies the geometry+pixel type a cached scratch image
// was built for; any mismatch on a later call reallocates.
type scratchKey struct {
	srcW, srcH, dstW, dstH int
	pt                     pixel.Type
}

// Resizer binds a CPU-extension choice and worker pool to repeated
// resize calls. A Resizer is single-owner: callers wanting concurrent
// independent resizes use separate Resizer instances, since the cached
// scratch buffer is not synchronised.
type Resizer struct {
	ext        cpuext.Extension
	forcedExt  bool
	numThreads int
	pool       *workerpool.Pool

	scratchKey scratchKey
	scratch    any // *raster.Image[P] for whichever P last used this geometry
}

// ResizerOption configures New.
type ResizerOption func(*Resizer)

// WithNumThreads overrides the worker pool size; <= 0 means GOMAXPROCS,
// matching workerpool.New's own default.
func WithNumThreads(n int) ResizerOption {
	return func(r *Resizer) { r.numThreads = n }
}

// New creates a Resizer with the CPU extension auto-detected from the
// host (or RESAMPLE_NO_SIMD) and a worker pool of GOMAXPROCS workers,
// both overridable. The default pool size counts logical CPUs as
// GOMAXPROCS reports them; physical cores are not detected.
func New(opts ...ResizerOption) *Resizer {
	r := &Resizer{ext: cpuext.Default()}
	for _, opt := range opts {
		opt(r)
	}
	r.pool = workerpool.New(r.numThreads)
	if r.numThreads <= 0 {
		r.numThreads = r.pool.NumWorkers()
	}
	return r
}

// SetCPUExtensions forces the CPU extension used for every subsequent
// Resize call, bypassing the runtime probe.
//
// Unsafe: forcing an extension the host CPU does not actually provide
// is undefined behaviour. The kernel preconditions (shift constants,
// vector widths) assume real hardware support for the requested level,
// so callers must have independently verified CPU capability first.
func (r *Resizer) SetCPUExtensions(ext CPUExtension) {
	r.ext = ext.toInternal()
	r.forcedExt = true
}

// ResetInternalBuffers discards the cached scratch image, freeing its
// memory immediately instead of waiting for the next geometry change to
// evict it.
func (r *Resizer) ResetInternalBuffers() {
	r.scratch = nil
	r.scratchKey = scratchKey{}
}

// Resize fills dst by resampling src per opts. src and dst must share a
// pixel type; both must be nonzero-sized.
func (r *Resizer) Resize(src, dst *Image, opts Options) error {
	if src.pixelType != dst.pixelType {
		return fmt.Errorf("%w: src is %s, dst is %s", ErrPixelTypesAreDifferent, src.pixelType, dst.pixelType)
	}
	if src.width == 0 || src.height == 0 || dst.width == 0 || dst.height == 0 {
		return fmt.Errorf("%w: src %dx%d, dst %dx%d", ErrZeroSizedImage, src.width, src.height, dst.width, dst.height)
	}

	if opts.Algorithm == Nearest {
		return r.resizeNearest(src, dst, opts)
	}

	effSrc := src
	effOpts := opts
	if opts.Algorithm == SuperSampling {
		k := opts.SuperSamplingFactor
		if k < 1 {
			k = 1
		}
		if src.width < dst.width*k || src.height < dst.height*k {
			return fmt.Errorf("%w: %dx%d cannot shrink by %d to fit %dx%d", ErrUnsupportedSuperSampling, src.width, src.height, k, dst.width, dst.height)
		}
		iw, ih := pipeline.OutSize(src.width, k), pipeline.OutSize(src.height, k)
		intermediate := NewImage(iw, ih, src.pixelType)
		if err := r.boxDownsample(src, intermediate, k); err != nil {
			return err
		}
		effSrc = intermediate
		if opts.Crop != nil {
			c := *opts.Crop
			c.Left, c.Top, c.Width, c.Height = c.Left/float64(k), c.Top/float64(k), c.Width/float64(k), c.Height/float64(k)
			effOpts.Crop = &c
		}
	}

	return r.resizeConvolution(effSrc, dst, effOpts)
}

func (r *Resizer) resizeNearest(src, dst *Image, opts Options) error {
	x0, x1, y0, y1 := opts.cropBounds(src.width, src.height)
	if opts.Crop != nil {
		if err := wrapCropErr(raster.ValidateCrop(raster.CropBounds{Left: x0, Top: y0, Width: x1 - x0, Height: y1 - y0}, src.width, src.height)); err != nil {
			return err
		}
	}
	cx0, cy0 := int(x0), int(y0)
	cw, ch := int(x1)-cx0, int(y1)-cy0
	if cw <= 0 || ch <= 0 {
		return fmt.Errorf("%w: crop resolves to an empty region", ErrCropSizeOutOfBounds)
	}
	return dispatchNearest(src.pixelType, src, dst, cx0, cy0, cw, ch)
}

func (r *Resizer) resizeConvolution(src, dst *Image, opts Options) error {
	x0, x1, y0, y1 := opts.cropBounds(src.width, src.height)
	if err := wrapCropErr(raster.ValidateCrop(raster.CropBounds{Left: x0, Top: y0, Width: x1 - x0, Height: y1 - y0}, src.width, src.height)); err != nil {
		return err
	}
	filter := convolve.GetFilter(opts.Filter.toInternal())
	if opts.Custom != nil {
		if math.IsNaN(opts.Custom.Support) || math.IsInf(opts.Custom.Support, 0) || opts.Custom.Support <= 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidFilterSupport, opts.Custom.Support)
		}
		filter = opts.Custom.toInternal()
	}
	return dispatchConvolution(r, src, dst, x0, x1, y0, y1, filter, opts.UseAlpha)
}

func (r *Resizer) boxDownsample(src, dst *Image, k int) error {
	return dispatchBoxDownsample(src.pixelType, src, dst, k)
}

// getScratch returns the cached scratch image for key if one of the
// right concrete type already exists, allocating a fresh one otherwise.
func getScratch[P any](r *Resizer, key scratchKey) *raster.Image[P] {
	if r.scratchKey == key {
		if img, ok := r.scratch.(*raster.Image[P]); ok {
			return img
		}
	}
	img := raster.New[P](key.dstW, key.srcH)
	r.scratchKey = key
	r.scratch = img
	return img
}

// wrapCropErr translates raster's internal crop sentinels to this
// package's public ones, so callers can errors.Is against
// ErrCropOutOfBounds / ErrCropSizeOutOfBounds without importing
// internal/raster.
func wrapCropErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, raster.ErrCropPositionOutOfBounds):
		return fmt.Errorf("%w: %s", ErrCropOutOfBounds, err)
	case errors.Is(err, raster.ErrCropSizeOutOfBounds):
		return fmt.Errorf("%w: %s", ErrCropSizeOutOfBounds, err)
	default:
		return err
	}
}

func scratchGeometry(src, dst *Image) scratchKey {
	return scratchKey{srcW: src.width, srcH: src.height, dstW: dst.width, dstH: dst.height, pt: src.pixelType}
}

// runConvolveU8 executes the full Convolution pipeline for any
// uint8-channel pixel type: optional premultiply, horizontal pass into
// the scratch image, vertical pass into dst, optional in-place divide.
func runConvolveU8[P pixel.InnerPixel[uint8]](r *Resizer, src, dst *Image, x0, x1, y0, y1 float64, filter convolve.Filter, useAlpha bool) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}

	var workSrc raster.View[P] = srcImg
	hasAlpha := src.pixelType.HasAlpha()
	if useAlpha && hasAlpha {
		premult := raster.New[P](src.width, src.height)
		split.Vertical(r.pool, r.numThreads, srcImg, premult, func(s raster.View[P], d raster.MutView[P]) {
			alpha.DispatchMultiplyU8[P](s, d, r.ext)
		})
		workSrc = premult
	}

	coeffsH, err := convolve.Precompute(uint32(src.width), x0, x1, uint32(dst.width), filter)
	if err != nil {
		return err
	}
	normH := convolve.NewNormalizer16(coeffsH)

	scratch := getScratch[P](r, scratchGeometry(src, dst))
	split.Horizontal(r.pool, r.numThreads, workSrc, scratch, func(s raster.View[P], d raster.MutView[P], yOffset int) {
		kernel.DispatchHorizontalU8[P](s, d, yOffset, normH, r.ext)
	})

	coeffsV, err := convolve.Precompute(uint32(src.height), y0, y1, uint32(dst.height), filter)
	if err != nil {
		return err
	}
	normV := convolve.NewNormalizer16(coeffsV)

	split.Vertical(r.pool, r.numThreads, scratch, dstImg, func(s raster.View[P], d raster.MutView[P]) {
		kernel.DispatchVerticalU8[P](s, d, 0, normV, r.ext)
	})

	if useAlpha && hasAlpha {
		split.Vertical(r.pool, r.numThreads, dstImg, dstImg, func(s raster.View[P], d raster.MutView[P]) {
			alpha.DispatchDivideU8[P](s, d, r.ext)
		})
	}
	return nil
}

// runConvolveU16 is the uint16-channel analogue of runConvolveU8.
func runConvolveU16[P pixel.InnerPixel[uint16]](r *Resizer, src, dst *Image, x0, x1, y0, y1 float64, filter convolve.Filter, useAlpha bool) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}

	var workSrc raster.View[P] = srcImg
	hasAlpha := src.pixelType.HasAlpha()
	if useAlpha && hasAlpha {
		premult := raster.New[P](src.width, src.height)
		split.Vertical(r.pool, r.numThreads, srcImg, premult, func(s raster.View[P], d raster.MutView[P]) {
			alpha.DispatchMultiplyU16[P](s, d, r.ext)
		})
		workSrc = premult
	}

	coeffsH, err := convolve.Precompute(uint32(src.width), x0, x1, uint32(dst.width), filter)
	if err != nil {
		return err
	}
	normH := convolve.NewNormalizer32(coeffsH)

	scratch := getScratch[P](r, scratchGeometry(src, dst))
	split.Horizontal(r.pool, r.numThreads, workSrc, scratch, func(s raster.View[P], d raster.MutView[P], yOffset int) {
		kernel.DispatchHorizontalU16[P](s, d, yOffset, normH, r.ext)
	})

	coeffsV, err := convolve.Precompute(uint32(src.height), y0, y1, uint32(dst.height), filter)
	if err != nil {
		return err
	}
	normV := convolve.NewNormalizer32(coeffsV)

	split.Vertical(r.pool, r.numThreads, scratch, dstImg, func(s raster.View[P], d raster.MutView[P]) {
		kernel.DispatchVerticalU16[P](s, d, 0, normV, r.ext)
	})

	if useAlpha && hasAlpha {
		split.Vertical(r.pool, r.numThreads, dstImg, dstImg, func(s raster.View[P], d raster.MutView[P]) {
			alpha.DispatchDivideU16[P](s, d, r.ext)
		})
	}
	return nil
}

// runConvolveF32 is the float32-channel analogue; no alpha fixed-point
// normalizer exists for float channels, only Coefficients directly.
func runConvolveF32[P pixel.InnerPixel[float32]](r *Resizer, src, dst *Image, x0, x1, y0, y1 float64, filter convolve.Filter, useAlpha bool) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}

	var workSrc raster.View[P] = srcImg
	hasAlpha := src.pixelType.HasAlpha()
	if useAlpha && hasAlpha {
		premult := raster.New[P](src.width, src.height)
		split.Vertical(r.pool, r.numThreads, srcImg, premult, func(s raster.View[P], d raster.MutView[P]) {
			alpha.DispatchMultiplyF32[P](s, d, r.ext)
		})
		workSrc = premult
	}

	coeffsH, err := convolve.Precompute(uint32(src.width), x0, x1, uint32(dst.width), filter)
	if err != nil {
		return err
	}

	scratch := getScratch[P](r, scratchGeometry(src, dst))
	split.Horizontal(r.pool, r.numThreads, workSrc, scratch, func(s raster.View[P], d raster.MutView[P], yOffset int) {
		kernel.DispatchHorizontalF32[P](s, d, yOffset, coeffsH, r.ext)
	})

	coeffsV, err := convolve.Precompute(uint32(src.height), y0, y1, uint32(dst.height), filter)
	if err != nil {
		return err
	}

	split.Vertical(r.pool, r.numThreads, scratch, dstImg, func(s raster.View[P], d raster.MutView[P]) {
		kernel.DispatchVerticalF32[P](s, d, 0, coeffsV, r.ext)
	})

	if useAlpha && hasAlpha {
		split.Vertical(r.pool, r.numThreads, dstImg, dstImg, func(s raster.View[P], d raster.MutView[P]) {
			alpha.DispatchDivideF32[P](s, d, r.ext)
		})
	}
	return nil
}

// runConvolveF32x4 mirrors runConvolveF32 but routes through the
// dedicated F32x4 dispatch cells (kernel.DispatchHorizontalF32x4 and
// friends), the one pixel type with a real AVX2 kernel.
func runConvolveF32x4(r *Resizer, src, dst *Image, x0, x1, y0, y1 float64, filter convolve.Filter, useAlpha bool) error {
	srcImg, err := raster.TypedFromBytes[pixel.F32x4Pix](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[pixel.F32x4Pix](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}

	var workSrc raster.View[pixel.F32x4Pix] = srcImg
	if useAlpha {
		premult := raster.New[pixel.F32x4Pix](src.width, src.height)
		split.Vertical(r.pool, r.numThreads, srcImg, premult, func(s raster.View[pixel.F32x4Pix], d raster.MutView[pixel.F32x4Pix]) {
			alpha.DispatchMultiplyF32x4(s, d, r.ext)
		})
		workSrc = premult
	}

	coeffsH, err := convolve.Precompute(uint32(src.width), x0, x1, uint32(dst.width), filter)
	if err != nil {
		return err
	}

	scratch := getScratch[pixel.F32x4Pix](r, scratchGeometry(src, dst))
	split.Horizontal(r.pool, r.numThreads, workSrc, scratch, func(s raster.View[pixel.F32x4Pix], d raster.MutView[pixel.F32x4Pix], yOffset int) {
		kernel.DispatchHorizontalF32x4(s, d, yOffset, coeffsH, r.ext)
	})

	coeffsV, err := convolve.Precompute(uint32(src.height), y0, y1, uint32(dst.height), filter)
	if err != nil {
		return err
	}

	split.Vertical(r.pool, r.numThreads, scratch, dstImg, func(s raster.View[pixel.F32x4Pix], d raster.MutView[pixel.F32x4Pix]) {
		kernel.DispatchVerticalF32x4(s, d, 0, coeffsV, r.ext)
	})

	if useAlpha {
		split.Vertical(r.pool, r.numThreads, dstImg, dstImg, func(s raster.View[pixel.F32x4Pix], d raster.MutView[pixel.F32x4Pix]) {
			alpha.DispatchDivideF32x4(s, d, r.ext)
		})
	}
	return nil
}

// runConvolveI32 is I32's single concrete-type pipeline; I32 never
// carries alpha (single channel), so there is no premultiply step.
func runConvolveI32(r *Resizer, src, dst *Image, x0, x1, y0, y1 float64, filter convolve.Filter) error {
	srcImg, err := raster.TypedFromBytes[pixel.I32Pix](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[pixel.I32Pix](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}

	coeffsH, err := convolve.Precompute(uint32(src.width), x0, x1, uint32(dst.width), filter)
	if err != nil {
		return err
	}
	normH := convolve.NewNormalizer32(coeffsH)

	scratch := getScratch[pixel.I32Pix](r, scratchGeometry(src, dst))
	split.Horizontal(r.pool, r.numThreads, srcImg, scratch, func(s raster.View[pixel.I32Pix], d raster.MutView[pixel.I32Pix], yOffset int) {
		kernel.DispatchHorizontalI32(s, d, yOffset, normH, r.ext)
	})

	coeffsV, err := convolve.Precompute(uint32(src.height), y0, y1, uint32(dst.height), filter)
	if err != nil {
		return err
	}
	normV := convolve.NewNormalizer32(coeffsV)

	split.Vertical(r.pool, r.numThreads, scratch, dstImg, func(s raster.View[pixel.I32Pix], d raster.MutView[pixel.I32Pix]) {
		kernel.DispatchVerticalI32(s, d, 0, normV, r.ext)
	})
	return nil
}

// dispatchConvolution is the (pixel type -> concrete Go type) routing
// switch every dynamically-typed entry point needs: Go generics require
// a static type argument, so the 13-way pixel.Type enum must be matched
// explicitly once here rather than threaded through as a type parameter.
func dispatchConvolution(r *Resizer, src, dst *Image, x0, x1, y0, y1 float64, filter convolve.Filter, useAlpha bool) error {
	switch src.pixelType {
	case pixel.U8:
		return runConvolveU8[pixel.U8Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U8x2:
		return runConvolveU8[pixel.U8x2Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U8x3:
		return runConvolveU8[pixel.U8x3Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U8x4:
		return runConvolveU8[pixel.U8x4Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U16:
		return runConvolveU16[pixel.U16Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U16x2:
		return runConvolveU16[pixel.U16x2Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U16x3:
		return runConvolveU16[pixel.U16x3Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.U16x4:
		return runConvolveU16[pixel.U16x4Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.I32:
		return runConvolveI32(r, src, dst, x0, x1, y0, y1, filter)
	case pixel.F32:
		return runConvolveF32[pixel.F32Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.F32x2:
		return runConvolveF32[pixel.F32x2Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.F32x3:
		return runConvolveF32[pixel.F32x3Pix](r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	case pixel.F32x4:
		return runConvolveF32x4(r, src, dst, x0, x1, y0, y1, filter, useAlpha)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPixelType, src.pixelType)
	}
}

func runNearest[P any](src, dst *Image, cx0, cy0, cw, ch int) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	cropped := srcImg.Slice(cx0, cy0, cw, ch)
	nearest.Resize[P](cropped, dstImg)
	return nil
}

func dispatchNearest(pt pixel.Type, src, dst *Image, cx0, cy0, cw, ch int) error {
	switch pt {
	case pixel.U8:
		return runNearest[pixel.U8Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U8x2:
		return runNearest[pixel.U8x2Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U8x3:
		return runNearest[pixel.U8x3Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U8x4:
		return runNearest[pixel.U8x4Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U16:
		return runNearest[pixel.U16Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U16x2:
		return runNearest[pixel.U16x2Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U16x3:
		return runNearest[pixel.U16x3Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.U16x4:
		return runNearest[pixel.U16x4Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.I32:
		return runNearest[pixel.I32Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.F32:
		return runNearest[pixel.F32Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.F32x2:
		return runNearest[pixel.F32x2Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.F32x3:
		return runNearest[pixel.F32x3Pix](src, dst, cx0, cy0, cw, ch)
	case pixel.F32x4:
		return runNearest[pixel.F32x4Pix](src, dst, cx0, cy0, cw, ch)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPixelType, pt)
	}
}

func runBoxDownsampleU8[P pixel.InnerPixel[uint8]](src, dst *Image, k int) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	pipeline.BoxDownsampleU8[P](srcImg, dstImg, k)
	return nil
}

func runBoxDownsampleU16[P pixel.InnerPixel[uint16]](src, dst *Image, k int) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	pipeline.BoxDownsampleU16[P](srcImg, dstImg, k)
	return nil
}

func runBoxDownsampleF32[P pixel.InnerPixel[float32]](src, dst *Image, k int) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	pipeline.BoxDownsampleF32[P](srcImg, dstImg, k)
	return nil
}

func runBoxDownsampleI32(src, dst *Image, k int) error {
	srcImg, err := raster.TypedFromBytes[pixel.I32Pix](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[pixel.I32Pix](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	pipeline.BoxDownsampleI32(srcImg, dstImg, k)
	return nil
}

func dispatchBoxDownsample(pt pixel.Type, src, dst *Image, k int) error {
	switch pt {
	case pixel.U8:
		return runBoxDownsampleU8[pixel.U8Pix](src, dst, k)
	case pixel.U8x2:
		return runBoxDownsampleU8[pixel.U8x2Pix](src, dst, k)
	case pixel.U8x3:
		return runBoxDownsampleU8[pixel.U8x3Pix](src, dst, k)
	case pixel.U8x4:
		return runBoxDownsampleU8[pixel.U8x4Pix](src, dst, k)
	case pixel.U16:
		return runBoxDownsampleU16[pixel.U16Pix](src, dst, k)
	case pixel.U16x2:
		return runBoxDownsampleU16[pixel.U16x2Pix](src, dst, k)
	case pixel.U16x3:
		return runBoxDownsampleU16[pixel.U16x3Pix](src, dst, k)
	case pixel.U16x4:
		return runBoxDownsampleU16[pixel.U16x4Pix](src, dst, k)
	case pixel.I32:
		return runBoxDownsampleI32(src, dst, k)
	case pixel.F32:
		return runBoxDownsampleF32[pixel.F32Pix](src, dst, k)
	case pixel.F32x2:
		return runBoxDownsampleF32[pixel.F32x2Pix](src, dst, k)
	case pixel.F32x3:
		return runBoxDownsampleF32[pixel.F32x3Pix](src, dst, k)
	case pixel.F32x4:
		return runBoxDownsampleF32[pixel.F32x4Pix](src, dst, k)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPixelType, pt)
	}
}
