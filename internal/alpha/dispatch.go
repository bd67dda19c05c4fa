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

package alpha

import (
	"github.com/pixreskit/resample/internal/cpuext"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// DispatchMultiplyU8, and its siblings below, route a pixel format's
// multiply/divide call to its accelerated kernel when one exists and ext
// selects it; every non-F32x4 cell is scalar-only.

func DispatchMultiplyU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], ext cpuext.Extension) {
	MultiplyU8[P](src, dst)
}

func DispatchDivideU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], ext cpuext.Extension) {
	DivideU8[P](src, dst)
}

func DispatchMultiplyU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], ext cpuext.Extension) {
	MultiplyU16[P](src, dst)
}

func DispatchDivideU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], ext cpuext.Extension) {
	DivideU16[P](src, dst)
}

// DispatchMultiplyF32 covers F32x2: no accelerated kernel, always scalar.
func DispatchMultiplyF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], ext cpuext.Extension) {
	MultiplyF32[P](src, dst)
}

func DispatchDivideF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], ext cpuext.Extension) {
	DivideF32[P](src, dst)
}

// DispatchMultiplyF32x4 and DispatchDivideF32x4 pick the AVX2 kernel when
// ext says so, falling back to the generic scalar routine otherwise.
func DispatchMultiplyF32x4(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], ext cpuext.Extension) {
	if ext == cpuext.AVX2 {
		MultiplyF32x4AVX2(src, dst)
		return
	}
	MultiplyF32[pixel.F32x4Pix](src, dst)
}

func DispatchDivideF32x4(src raster.View[pixel.F32x4Pix], dst raster.MutView[pixel.F32x4Pix], ext cpuext.Extension) {
	if ext == cpuext.AVX2 {
		DivideF32x4AVX2(src, dst)
		return
	}
	DivideF32[pixel.F32x4Pix](src, dst)
}
