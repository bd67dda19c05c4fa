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

// Package nearest implements nearest-neighbour resampling: no
// convolution, no alpha handling, just an index map and a pixel copy.
package nearest

import "github.com/pixreskit/resample/internal/raster"

// Resize fills dst with src sampled at the nearest source pixel for each
// destination coordinate: ys = floor((yd+0.5)*srcH/dstH), xs likewise
// over width. Any pixel format works identically since no arithmetic
// touches pixel values, only their addresses.
func Resize[P any](src raster.View[P], dst raster.MutView[P]) {
	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := dst.Width(), dst.Height()
	if dstW == 0 || dstH == 0 {
		return
	}

	yStep := float64(srcH) / float64(dstH)
	rows := raster.RowsWithStep(0.5*yStep, yStep, dstH)

	xStep := float64(srcW) / float64(dstW)
	cols := raster.RowsWithStep(0.5*xStep, xStep, dstW)

	for yd := 0; yd < dstH; yd++ {
		srcRow := src.Row(rows[yd])
		dstRow := dst.RowMut(yd)
		for xd := 0; xd < dstW; xd++ {
			dstRow[xd] = srcRow[cols[xd]]
		}
	}
}
