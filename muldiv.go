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

	"github.com/pixreskit/resample/internal/alpha"
	"github.com/pixreskit/resample/internal/cpuext"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// MulDiv is the standalone premultiply/unpremultiply engine, usable
// independently of Resizer.Resize (e.g. a caller premultiplying once
// before several resizes, or undoing premultiplication applied
// elsewhere).
type MulDiv struct {
	ext cpuext.Extension
}

// NewMulDiv creates a MulDiv with the CPU extension auto-detected from
// the host.
func NewMulDiv() *MulDiv {
	return &MulDiv{ext: cpuext.Default()}
}

// SetCPUExtensions forces the CPU extension used for every subsequent
// call, bypassing the runtime probe. Unsafe for the same reason as
// Resizer.SetCPUExtensions.
func (m *MulDiv) SetCPUExtensions(ext CPUExtension) {
	m.ext = ext.toInternal()
}

func (m *MulDiv) checkPair(src, dst *Image) error {
	if !src.pixelType.HasAlpha() {
		return fmt.Errorf("%w: %s has no alpha channel", ErrUnsupportedPixelType, src.pixelType)
	}
	if src.pixelType != dst.pixelType {
		return fmt.Errorf("%w: src is %s, dst is %s", ErrPixelTypesAreDifferent, src.pixelType, dst.pixelType)
	}
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("%w: src is %dx%d, dst is %dx%d", ErrSizeIsDifferent, src.width, src.height, dst.width, dst.height)
	}
	return nil
}

// MultiplyAlpha premultiplies src's colour channels by its alpha channel
// into dst. src and dst must share a pixel type and dimensions, and the
// pixel type must carry an alpha channel.
func (m *MulDiv) MultiplyAlpha(src, dst *Image) error {
	if err := m.checkPair(src, dst); err != nil {
		return err
	}
	return dispatchAlpha(src.pixelType, src, dst, m.ext, true)
}

// MultiplyAlphaInplace premultiplies img's colour channels in place.
func (m *MulDiv) MultiplyAlphaInplace(img *Image) error {
	return m.MultiplyAlpha(img, img)
}

// DivideAlpha is the inverse of MultiplyAlpha: pixels with alpha zero
// become all zero; others are rescaled back out of premultiplied form.
func (m *MulDiv) DivideAlpha(src, dst *Image) error {
	if err := m.checkPair(src, dst); err != nil {
		return err
	}
	return dispatchAlpha(src.pixelType, src, dst, m.ext, false)
}

// DivideAlphaInplace unpremultiplies img's colour channels in place.
func (m *MulDiv) DivideAlphaInplace(img *Image) error {
	return m.DivideAlpha(img, img)
}

func dispatchAlpha(pt pixel.Type, src, dst *Image, ext cpuext.Extension, multiply bool) error {
	switch pt {
	case pixel.U8x2:
		return runAlphaU8[pixel.U8x2Pix](src, dst, ext, multiply)
	case pixel.U8x4:
		return runAlphaU8[pixel.U8x4Pix](src, dst, ext, multiply)
	case pixel.U16x2:
		return runAlphaU16[pixel.U16x2Pix](src, dst, ext, multiply)
	case pixel.U16x4:
		return runAlphaU16[pixel.U16x4Pix](src, dst, ext, multiply)
	case pixel.F32x2:
		return runAlphaF32[pixel.F32x2Pix](src, dst, ext, multiply)
	case pixel.F32x4:
		return runAlphaF32x4(src, dst, ext, multiply)
	default:
		return fmt.Errorf("%w: %s has no alpha channel", ErrUnsupportedPixelType, pt)
	}
}

func runAlphaU8[P pixel.InnerPixel[uint8]](src, dst *Image, ext cpuext.Extension, multiply bool) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	if multiply {
		alpha.DispatchMultiplyU8[P](srcImg, dstImg, ext)
	} else {
		alpha.DispatchDivideU8[P](srcImg, dstImg, ext)
	}
	return nil
}

func runAlphaU16[P pixel.InnerPixel[uint16]](src, dst *Image, ext cpuext.Extension, multiply bool) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	if multiply {
		alpha.DispatchMultiplyU16[P](srcImg, dstImg, ext)
	} else {
		alpha.DispatchDivideU16[P](srcImg, dstImg, ext)
	}
	return nil
}

func runAlphaF32x4(src, dst *Image, ext cpuext.Extension, multiply bool) error {
	srcImg, err := raster.TypedFromBytes[pixel.F32x4Pix](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[pixel.F32x4Pix](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	if multiply {
		alpha.DispatchMultiplyF32x4(srcImg, dstImg, ext)
	} else {
		alpha.DispatchDivideF32x4(srcImg, dstImg, ext)
	}
	return nil
}

func runAlphaF32[P pixel.InnerPixel[float32]](src, dst *Image, ext cpuext.Extension, multiply bool) error {
	srcImg, err := raster.TypedFromBytes[P](src.width, src.height, src.data)
	if err != nil {
		return err
	}
	dstImg, err := raster.TypedFromBytes[P](dst.width, dst.height, dst.data)
	if err != nil {
		return err
	}
	if multiply {
		alpha.DispatchMultiplyF32[P](srcImg, dstImg, ext)
	} else {
		alpha.DispatchDivideF32[P](srcImg, dstImg, ext)
	}
	return nil
}
