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

// Package split decides how many disjoint bands a convolution pass
// should run across and hands each band to the worker pool, one kernel
// invocation per band, strictly single-threaded within a band.
package split

import (
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/internal/workerpool"
)

// NumParts computes min(numThreads, floor(maxSrcDstWidth*height/1024),
// height): the band count for a pass producing `height` destination
// rows, given the wider of source/destination width. The 1024-pixel
// threshold keeps small images from paying parallel dispatch overhead
// for no benefit.
func NumParts(numThreads, srcWidth, dstWidth, height int) int {
	if height <= 0 || numThreads <= 0 {
		return 1
	}
	w := srcWidth
	if dstWidth > w {
		w = dstWidth
	}
	byWork := (w * height) / 1024
	parts := numThreads
	if byWork < parts {
		parts = byWork
	}
	if height < parts {
		parts = height
	}
	if parts < 1 {
		parts = 1
	}
	return parts
}

// Horizontal splits dst into NumParts disjoint row bands; src is passed
// through unsliced to every band since the horizontal pass never changes
// row count, so band i's dst rows [0, bandHeight) read src rows
// [yOffset, yOffset+bandHeight) at the same absolute y — fn receives
// that yOffset rather than a pre-sliced src, matching how
// kernel.HorizontalU8 and friends already index src by yOffset+y.
func Horizontal[P any](pool *workerpool.Pool, numThreads int, src raster.View[P], dst raster.MutView[P], fn func(src raster.View[P], dst raster.MutView[P], yOffset int)) {
	height := dst.Height()
	if height == 0 {
		return
	}
	parts := NumParts(numThreads, src.Width(), dst.Width(), height)

	dstBands, ok := raster.SplitByHeight(dst, 0, height, parts)
	if !ok {
		fn(src, dst, 0)
		return
	}

	bandHeight := height / parts
	pool.ParallelFor(parts, func(i int) {
		fn(src, dstBands[i], i*bandHeight)
	})
}

// Vertical is Horizontal's transpose for the vertical pass: both src and
// dst are sliced into disjoint column bands of matching width, since
// vertical convolution vectorises across columns and each column's
// output depends only on that column's own source data. Column offsets
// are handled transparently by the View slicing itself, so fn never
// needs a row or column offset argument the way the horizontal pass
// does.
func Vertical[P any](pool *workerpool.Pool, numThreads int, src raster.View[P], dst raster.MutView[P], fn func(src raster.View[P], dst raster.MutView[P])) {
	width := dst.Width()
	if width == 0 {
		return
	}
	parts := NumParts(numThreads, src.Height(), dst.Height(), width)

	srcBands, ok1 := splitViewByWidth(src, parts)
	dstBands, ok2 := raster.SplitByWidth(dst, 0, width, parts)
	if !ok1 || !ok2 {
		fn(src, dst)
		return
	}

	pool.ParallelFor(parts, func(i int) {
		fn(srcBands[i], dstBands[i])
	})
}

func splitViewByWidth[P any](v raster.View[P], n int) ([]raster.View[P], bool) {
	if n <= 0 {
		return nil, false
	}
	width := v.Width()
	bandWidth := width / n
	if bandWidth == 0 {
		return nil, false
	}
	parts := make([]raster.View[P], n)
	x := 0
	for i := 0; i < n; i++ {
		w := bandWidth
		if i == n-1 {
			w = width - bandWidth*(n-1)
		}
		parts[i] = v.Slice(x, 0, w, v.Height())
		x += bandWidth
	}
	return parts, true
}
