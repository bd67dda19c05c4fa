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

	"github.com/pixreskit/resample/pixel"
)

// Colour-space mappers: pixel-wise transfer-function changes between
// sRGB/gamma-2.2 encodings and linear light. Each function computes its
// transfer function directly rather than through a precomputed lookup
// table. Alpha channels, when present, pass through unchanged.

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func gamma22ToLinear(c float64) float64 { return math.Pow(c, 2.2) }
func linearToGamma22(c float64) float64 { return math.Pow(c, 1/2.2) }

// SrgbIntoRgb maps every colour channel of src from sRGB transfer
// function to linear light into dst. src and dst must share dimensions.
func SrgbIntoRgb(src, dst *Image) error { return mapColor(src, dst, srgbToLinear) }

// RgbIntoSrgb is SrgbIntoRgb's inverse.
func RgbIntoSrgb(src, dst *Image) error { return mapColor(src, dst, linearToSrgb) }

// Gamma22IntoLinear maps every colour channel from gamma-2.2 encoding to
// linear light.
func Gamma22IntoLinear(src, dst *Image) error { return mapColor(src, dst, gamma22ToLinear) }

// LinearIntoGamma22 is Gamma22IntoLinear's inverse.
func LinearIntoGamma22(src, dst *Image) error { return mapColor(src, dst, linearToGamma22) }

func mapColor(src, dst *Image, f func(float64) float64) error {
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("%w: src is %dx%d, dst is %dx%d", ErrDifferentDimensions, src.width, src.height, dst.width, dst.height)
	}
	n := src.pixelType.ComponentCount()
	if n != dst.pixelType.ComponentCount() {
		return fmt.Errorf("%w: %s has %d channels, %s has %d", ErrUnsupportedImageTypeCombo, src.pixelType, n, dst.pixelType, dst.pixelType.ComponentCount())
	}

	srcMax := maxValue(src.pixelType.ComponentKind())
	dstMax := maxValue(dst.pixelType.ComponentKind())
	hasAlpha := src.pixelType.HasAlpha()

	srcVals, err := rawComponents(src)
	if err != nil {
		return err
	}
	count := len(srcVals)
	return writeComponents(dst, count, func(i int) float64 {
		if hasAlpha && (i+1)%n == 0 {
			// Alpha channel: rescale verbatim, no transfer function.
			return rescale(srcVals[i], srcMax, dstMax)
		}
		normalized := srcVals[i] / srcMax
		return f(normalized) * dstMax
	})
}

// rawComponents is mapColor's read side: it returns src's raw component
// values as float64 regardless of storage kind, since the transfer
// function always operates in normalised space.
func rawComponents(img *Image) ([]float64, error) {
	switch img.pixelType.ComponentKind() {
	case pixel.KindU8:
		vals, err := rawComponentsU8(img)
		if err != nil {
			return nil, err
		}
		return toFloat64s(vals), nil
	case pixel.KindU16:
		vals, err := rawComponentsU16(img)
		if err != nil {
			return nil, err
		}
		return toFloat64s(vals), nil
	case pixel.KindF32:
		vals, err := rawComponentsF32(img)
		if err != nil {
			return nil, err
		}
		return toFloat64s(vals), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPixelType, img.pixelType)
	}
}

func toFloat64s[T pixel.Component](vals []T) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
