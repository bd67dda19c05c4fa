package convolve

import (
	"fmt"
	"math"
)

// Bound is the active support of one destination row/column's filter:
// the index of the first source row/column consulted, and how many are.
type Bound struct {
	Start uint32
	Size  uint32
}

// Coefficients holds every destination index's filter weights back to
// back in a single slice, each chunk padded with zeros to WindowSize so
// kernels can index them as a uniform-stride 2-D matrix (start, length,
// stride) with no pointer indirection, per the design notes.
type Coefficients struct {
	Values     []float64
	WindowSize int
	Bounds     []Bound
}

// Chunk is one destination index's view into Coefficients: the first
// source index it consults and its Size weights (the window padding is
// not included).
type Chunk struct {
	Start  uint32
	Values []float64
}

// Chunks splits Values back into one Chunk per Bound.
func (c Coefficients) Chunks() []Chunk {
	chunks := make([]Chunk, len(c.Bounds))
	for i, b := range c.Bounds {
		off := i * c.WindowSize
		chunks[i] = Chunk{Start: b.Start, Values: c.Values[off : off+int(b.Size)]}
	}
	return chunks
}

// Precompute builds separable filter coefficients for resampling inSize
// source pixels, cropped to [in0, in1), down to outSize destination
// pixels:
//
//	scale = (in1-in0)/outSize; filterScale = max(scale, 1)
//	filterRadius = support * filterScale
//	windowSize = ceil(filterRadius)*2 + 1
//
// and, per destination index j, a chunk over source indices
// [xMin, xMax) whose weights are filter((x-center)/filterScale)
// normalised to sum to 1 (unless the raw sum was exactly 0).
func Precompute(inSize uint32, in0, in1 float64, outSize uint32, filter Filter) (Coefficients, error) {
	if inSize == 0 || outSize == 0 {
		return Coefficients{}, fmt.Errorf("convolve: inSize and outSize must be nonzero, got %d and %d", inSize, outSize)
	}
	scale := (in1 - in0) / float64(outSize)
	filterScale := math.Max(scale, 1.0)
	filterRadius := filter.Support * filterScale
	windowSize := int(math.Ceil(filterRadius))*2 + 1
	recipFilterScale := 1.0 / filterScale

	values := make([]float64, 0, windowSize*int(outSize))
	bounds := make([]Bound, 0, outSize)

	for j := uint32(0); j < outSize; j++ {
		center := in0 + (float64(j)+0.5)*scale - 0.5

		xMin := int(math.Max(math.Floor(center-filterRadius+0.5), 0))
		xMax := int(math.Min(math.Ceil(center+filterRadius+0.5), float64(inSize)))
		if xMax < xMin {
			xMax = xMin
		}

		start := len(values)
		sum := 0.0
		for x := xMin; x < xMax; x++ {
			w := filter.Func((float64(x) - center) * recipFilterScale)
			values = append(values, w)
			sum += w
		}
		if sum != 0 {
			for i := start; i < len(values); i++ {
				values[i] /= sum
			}
		}
		for len(values) < start+windowSize {
			values = append(values, 0)
		}
		bounds = append(bounds, Bound{Start: uint32(xMin), Size: uint32(xMax - xMin)})
	}

	return Coefficients{Values: values, WindowSize: windowSize, Bounds: bounds}, nil
}
