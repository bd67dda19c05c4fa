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

// Package convolve precomputes separable-filter coefficients and
// quantises them to fixed point for the horizontal/vertical convolution
// kernels in internal/kernel.
package convolve

import "math"

// Func is a 1-D filter kernel evaluated at a source-space offset.
type Func func(x float64) float64

// Filter pairs a named or custom kernel function with its support (the
// half-width, in source pixels at 1x scale, over which it is non-zero).
type Filter struct {
	Name    string
	Func    Func
	Support float64
}

// FilterType selects a named preset filter.
type FilterType int

const (
	Box FilterType = iota
	Bilinear
	Hamming
	CatmullRom
	Mitchell
	Gaussian
	Lanczos3
)

func boxFunc(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x < 0.5 {
		return 1
	}
	if x == 0.5 {
		return 0.5
	}
	return 0
}

func bilinearFunc(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x < 1 {
		return 1 - x
	}
	return 0
}

func hammingFunc(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x == 0 {
		return 1
	}
	if x >= 1 {
		return 0
	}
	x *= math.Pi
	return math.Sin(x) / x * (0.54 + 0.46*math.Cos(x))
}

func catmullRomFunc(x float64) float64 {
	if x < 0 {
		x = -x
	}
	const a = -0.5
	if x < 1 {
		return ((a+2)*x-(a+3))*x*x + 1
	}
	if x < 2 {
		return (((x-5)*x+8)*x - 4) * a
	}
	return 0
}

func mitchellFunc(x float64) float64 {
	if x < 0 {
		x = -x
	}
	const b = 1.0 / 3.0
	const c = 1.0 / 3.0
	if x < 1 {
		return ((12-9*b-6*c)*x*x*x + (-18+12*b+6*c)*x*x + (6 - 2*b)) / 6
	}
	if x < 2 {
		return ((-b-6*c)*x*x*x + (6*b+30*c)*x*x + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	}
	return 0
}

func gaussianFunc(x float64) float64 {
	const sigma = 0.5
	return math.Exp(-(x*x)/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

func lanczos3Func(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x >= 3 {
		return 0
	}
	return sinc(x) * sinc(x/3)
}

// GetFilter resolves a preset FilterType to its Filter. Supports:
// Box 0.5, Bilinear 1.0, Hamming 1.0, Catmull-Rom 2.0, Mitchell 2.0,
// Gaussian 3.0 (sigma=0.5), Lanczos3 3.0.
func GetFilter(t FilterType) Filter {
	switch t {
	case Box:
		return Filter{Name: "Box", Func: boxFunc, Support: 0.5}
	case Bilinear:
		return Filter{Name: "Bilinear", Func: bilinearFunc, Support: 1.0}
	case Hamming:
		return Filter{Name: "Hamming", Func: hammingFunc, Support: 1.0}
	case CatmullRom:
		return Filter{Name: "CatmullRom", Func: catmullRomFunc, Support: 2.0}
	case Mitchell:
		return Filter{Name: "Mitchell", Func: mitchellFunc, Support: 2.0}
	case Gaussian:
		return Filter{Name: "Gaussian", Func: gaussianFunc, Support: 3.0}
	case Lanczos3:
		return Filter{Name: "Lanczos3", Func: lanczos3Func, Support: 3.0}
	default:
		return Filter{Name: "Lanczos3", Func: lanczos3Func, Support: 3.0}
	}
}
