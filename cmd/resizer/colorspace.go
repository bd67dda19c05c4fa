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

package main

import (
	"fmt"
	"strings"

	"github.com/pixreskit/resample"
	"github.com/pixreskit/resample/pixel"
)

// toLinear converts img (U8x4, or U16x4 under --high-precision) to a
// linear-light F32x4 working copy, applying the -c transfer function.
// Resampling a non-linear-encoded signal blurs highlights and shadows
// asymmetrically, so -c resizes in linear light and re-encodes after.
func toLinear(img *resample.Image, colorspace string) (*resample.Image, error) {
	floatImg := resample.NewImage(img.Width(), img.Height(), pixel.F32x4)
	if err := resample.ChangeComponents(img, floatImg); err != nil {
		return nil, fmt.Errorf("-c: %w", err)
	}
	linear := resample.NewImage(img.Width(), img.Height(), pixel.F32x4)
	if err := applyTransfer(colorspace, floatImg, linear, true); err != nil {
		return nil, err
	}
	return linear, nil
}

// fromLinear is toLinear's inverse, converting the resized linear-light
// F32x4 image back to sRGB- or gamma-encoded outType for file output.
func fromLinear(img *resample.Image, colorspace string, outType pixel.Type) (*resample.Image, error) {
	encoded := resample.NewImage(img.Width(), img.Height(), pixel.F32x4)
	if err := applyTransfer(colorspace, img, encoded, false); err != nil {
		return nil, err
	}
	out := resample.NewImage(img.Width(), img.Height(), outType)
	if err := resample.ChangeComponents(encoded, out); err != nil {
		return nil, fmt.Errorf("-c: %w", err)
	}
	return out, nil
}

func applyTransfer(colorspace string, src, dst *resample.Image, toLinear bool) error {
	switch strings.ToLower(colorspace) {
	case "srgb":
		if toLinear {
			return resample.SrgbIntoRgb(src, dst)
		}
		return resample.RgbIntoSrgb(src, dst)
	case "gamma22":
		if toLinear {
			return resample.Gamma22IntoLinear(src, dst)
		}
		return resample.LinearIntoGamma22(src, dst)
	default:
		return fmt.Errorf("-c: unknown colorspace %q", colorspace)
	}
}
