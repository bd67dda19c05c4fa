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

// Package raster is the typed image-view layer every kernel consumes: a
// row-major raster with borrowed or owned storage, plus the split
// operations the work splitter (see internal/split) relies on.
package raster

// View is a read-only row-major raster of pixel type P. Rows are exactly
// Width() elements long; consecutive rows are not required to be
// contiguous in memory, which is what lets Slice produce cropped views
// without copying.
type View[P any] interface {
	Width() int
	Height() int
	// Row returns the y-th row, a slice of exactly Width() elements.
	Row(y int) []P
	// Slice returns a read-only sub-view covering [x0, x0+w) x [y0, y0+h).
	Slice(x0, y0, w, h int) View[P]
}

// MutView additionally exposes mutable rows and sub-views.
type MutView[P any] interface {
	View[P]
	RowMut(y int) []P
	SliceMut(x0, y0, w, h int) MutView[P]
}

// subView is a cropped window into a parent MutView, expressed in the
// parent's own coordinate space so nested slices compose by addition.
type subView[P any] struct {
	parent MutView[P]
	x0, y0 int
	w, h   int
}

// Slice returns a cropped window into a read-only parent.
func Slice[P any](v View[P], x0, y0, w, h int) View[P] {
	return v.Slice(x0, y0, w, h)
}

func (s *subView[P]) Width() int  { return s.w }
func (s *subView[P]) Height() int { return s.h }

func (s *subView[P]) Row(y int) []P {
	row := s.parent.Row(s.y0 + y)
	return row[s.x0 : s.x0+s.w]
}

func (s *subView[P]) RowMut(y int) []P {
	row := s.parent.RowMut(s.y0 + y)
	return row[s.x0 : s.x0+s.w]
}

func (s *subView[P]) Slice(x0, y0, w, h int) View[P] {
	return &subView[P]{parent: s.parent, x0: s.x0 + x0, y0: s.y0 + y0, w: w, h: h}
}

func (s *subView[P]) SliceMut(x0, y0, w, h int) MutView[P] {
	return &subView[P]{parent: s.parent, x0: s.x0 + x0, y0: s.y0 + y0, w: w, h: h}
}
