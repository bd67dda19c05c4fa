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

// Package pixel enumerates the fixed set of pixel formats the resampler
// understands and binds each one to a concrete Go component type.
package pixel

import "unsafe"

// Kind identifies the scalar storage type of a pixel's components.
type Kind int

const (
	KindU8 Kind = iota
	KindU16
	KindI32
	KindF32
)

// Type is a closed enumeration of the pixel formats the resampler can
// operate on. Every variant fixes a component count, a component Kind,
// a pixel size in bytes, and an alignment equal to the component size.
type Type int

const (
	U8 Type = iota
	U8x2
	U8x3
	U8x4
	U16
	U16x2
	U16x3
	U16x4
	I32
	F32
	F32x2
	F32x3
	F32x4
)

type layout struct {
	components int
	kind       Kind
	compSize   int
}

var layouts = [...]layout{
	U8:    {1, KindU8, 1},
	U8x2:  {2, KindU8, 1},
	U8x3:  {3, KindU8, 1},
	U8x4:  {4, KindU8, 1},
	U16:   {1, KindU16, 2},
	U16x2: {2, KindU16, 2},
	U16x3: {3, KindU16, 2},
	U16x4: {4, KindU16, 2},
	I32:   {1, KindI32, 4},
	F32:   {1, KindF32, 4},
	F32x2: {2, KindF32, 4},
	F32x3: {3, KindF32, 4},
	F32x4: {4, KindF32, 4},
}

// String returns a human-readable name, e.g. "U8x4".
func (t Type) String() string {
	switch t {
	case U8:
		return "U8"
	case U8x2:
		return "U8x2"
	case U8x3:
		return "U8x3"
	case U8x4:
		return "U8x4"
	case U16:
		return "U16"
	case U16x2:
		return "U16x2"
	case U16x3:
		return "U16x3"
	case U16x4:
		return "U16x4"
	case I32:
		return "I32"
	case F32:
		return "F32"
	case F32x2:
		return "F32x2"
	case F32x3:
		return "F32x3"
	case F32x4:
		return "F32x4"
	default:
		return "unknown"
	}
}

// ComponentCount returns the number of channels (1..=4).
func (t Type) ComponentCount() int { return layouts[t].components }

// ComponentKind returns the scalar storage kind of each channel.
func (t Type) ComponentKind() Kind { return layouts[t].kind }

// ComponentSize returns the size in bytes of one channel.
func (t Type) ComponentSize() int { return layouts[t].compSize }

// Size returns the pixel size in bytes: ComponentCount * ComponentSize.
func (t Type) Size() int { return layouts[t].components * layouts[t].compSize }

// Alignment returns the required start alignment of a buffer holding
// pixels of this type, equal to ComponentSize.
func (t Type) Alignment() int { return layouts[t].compSize }

// HasAlpha reports whether the last channel of this format is an alpha
// channel eligible for the premultiply/unpremultiply engine.
func (t Type) HasAlpha() bool {
	switch t {
	case U8x2, U8x4, U16x2, U16x4, F32x2, F32x4:
		return true
	default:
		return false
	}
}

// IsAligned reports whether buf's start address satisfies t's Alignment.
func (t Type) IsAligned(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))%uintptr(t.Alignment()) == 0
}

// Component is the scalar numeric type every InnerPixel is built from.
// A pixel value is always a fixed-length array of Component.
type Component interface {
	~uint8 | ~uint16 | ~int32 | ~float32
}

// InnerPixel binds a compile-time Go array type P to a runtime Type and
// exposes it as a flat, copy-free slice of its Component elements.
//
// Implementations are plain fixed-size arrays, e.g.:
//
//	type RGBA8 [4]uint8
//	func (RGBA8) PixelType() pixel.Type { return pixel.U8x4 }
//
// Because P is a contiguous array of Component, Components can reinterpret
// a []P as a []Component without copying.
type InnerPixel[C Component] interface {
	PixelType() Type
}
