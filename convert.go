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
	"math"

	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// ChangeComponents rescales src's components into dst's storage kind,
// keeping channel count fixed: u8<->u16<->f32 conversions linearly
// rescale from src's max representable value to dst's (f32 is treated
// as normalised to [0, 1]). src and dst must share a channel count and
// dimensions.
func ChangeComponents(src, dst *Image) error {
	if src.pixelType.ComponentCount() != dst.pixelType.ComponentCount() {
		return fmt.Errorf("%w: %s has %d channels, %s has %d", ErrUnsupportedImageTypeCombo, src.pixelType, src.pixelType.ComponentCount(), dst.pixelType, dst.pixelType.ComponentCount())
	}
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("%w: src is %dx%d, dst is %dx%d", ErrDifferentDimensions, src.width, src.height, dst.width, dst.height)
	}
	return dispatchChangeComponents(src, dst)
}

func maxValue(k pixel.Kind) float64 {
	switch k {
	case pixel.KindU8:
		return 255
	case pixel.KindU16:
		return 65535
	case pixel.KindF32:
		return 1
	default:
		return 1
	}
}

func rescale(v, srcMax, dstMax float64) float64 {
	return v / srcMax * dstMax
}

func dispatchChangeComponents(src, dst *Image) error {
	srcMax := maxValue(src.pixelType.ComponentKind())
	dstMax := maxValue(dst.pixelType.ComponentKind())

	switch src.pixelType.ComponentKind() {
	case pixel.KindU8:
		srcVals, err := rawComponentsU8(src)
		if err != nil {
			return err
		}
		return writeComponents(dst, len(srcVals), func(i int) float64 {
			return rescale(float64(srcVals[i]), srcMax, dstMax)
		})
	case pixel.KindU16:
		srcVals, err := rawComponentsU16(src)
		if err != nil {
			return err
		}
		return writeComponents(dst, len(srcVals), func(i int) float64 {
			return rescale(float64(srcVals[i]), srcMax, dstMax)
		})
	case pixel.KindF32:
		srcVals, err := rawComponentsF32(src)
		if err != nil {
			return err
		}
		return writeComponents(dst, len(srcVals), func(i int) float64 {
			return rescale(float64(srcVals[i]), srcMax, dstMax)
		})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPixelType, src.pixelType)
	}
}

func rawComponentsU8(img *Image) ([]uint8, error) {
	switch img.pixelType {
	case pixel.U8:
		return componentsOf[pixel.U8Pix, uint8](img)
	case pixel.U8x2:
		return componentsOf[pixel.U8x2Pix, uint8](img)
	case pixel.U8x3:
		return componentsOf[pixel.U8x3Pix, uint8](img)
	case pixel.U8x4:
		return componentsOf[pixel.U8x4Pix, uint8](img)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPixelType, img.pixelType)
	}
}

func rawComponentsU16(img *Image) ([]uint16, error) {
	switch img.pixelType {
	case pixel.U16:
		return componentsOf[pixel.U16Pix, uint16](img)
	case pixel.U16x2:
		return componentsOf[pixel.U16x2Pix, uint16](img)
	case pixel.U16x3:
		return componentsOf[pixel.U16x3Pix, uint16](img)
	case pixel.U16x4:
		return componentsOf[pixel.U16x4Pix, uint16](img)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPixelType, img.pixelType)
	}
}

func rawComponentsF32(img *Image) ([]float32, error) {
	switch img.pixelType {
	case pixel.F32:
		return componentsOf[pixel.F32Pix, float32](img)
	case pixel.F32x2:
		return componentsOf[pixel.F32x2Pix, float32](img)
	case pixel.F32x3:
		return componentsOf[pixel.F32x3Pix, float32](img)
	case pixel.F32x4:
		return componentsOf[pixel.F32x4Pix, float32](img)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPixelType, img.pixelType)
	}
}

func componentsOf[P pixel.InnerPixel[C], C pixel.Component](img *Image) ([]C, error) {
	typed, err := raster.TypedFromBytes[P](img.width, img.height, img.data)
	if err != nil {
		return nil, err
	}
	return pixel.Components[P, C](typed.Pixels()), nil
}

// writeComponents fills dst's raw component buffer with count values
// produced by gen(i), rounding and clamping each to dst's range for u8
// and u16 components; f32 values are stored unclamped.
func writeComponents(dst *Image, count int, gen func(i int) float64) error {
	switch dst.pixelType.ComponentKind() {
	case pixel.KindU8:
		out, err := rawComponentsU8(dst)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			out[i] = uint8(clampRound(gen(i), 0, 255))
		}
	case pixel.KindU16:
		out, err := rawComponentsU16(dst)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			out[i] = uint16(clampRound(gen(i), 0, 65535))
		}
	case pixel.KindF32:
		out, err := rawComponentsF32(dst)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			out[i] = float32(gen(i))
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPixelType, dst.pixelType)
	}
	return nil
}

func clampRound(v, lo, hi float64) float64 {
	v = math.Round(v)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
