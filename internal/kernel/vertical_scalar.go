package kernel

import (
	"github.com/pixreskit/resample/internal/convolve"
	"github.com/pixreskit/resample/internal/raster"
	"github.com/pixreskit/resample/pixel"
)

// VerticalU8 mirrors HorizontalU8 along the orthogonal axis: each dst
// row y consults chunk(y)'s source rows, accumulating per column. A
// production SIMD kernel vectorises across columns here (many output
// pixels share one coefficient), the opposite of the horizontal form;
// the scalar routine below is correctness-first and loop-order-neutral.
func VerticalU8[P pixel.InnerPixel[uint8]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer16) {
	var zero P
	n := zero.PixelType().ComponentCount()
	bias := int32(1) << (norm.Precision - 1)
	chunks := norm.Chunks()
	width := dst.Width() * n

	for y, chunk := range chunks {
		dstRow := pixel.Components[P, uint8](dst.RowMut(y))
		for i := 0; i < width; i++ {
			dstRow[i] = 0
		}
		acc := make([]int32, width)
		for i := range acc {
			acc[i] = bias
		}
		for k, w := range chunk.Values {
			srcRow := pixel.Components[P, uint8](src.Row(yOffset + int(chunk.Start) + k))
			w32 := int32(w)
			for i := 0; i < width; i++ {
				acc[i] += int32(srcRow[i]) * w32
			}
		}
		for i := 0; i < width; i++ {
			dstRow[i] = convolve.Clip8(acc[i], norm.Precision)
		}
	}
}

// VerticalU16 is the uint16-channel analogue of VerticalU8.
func VerticalU16[P pixel.InnerPixel[uint16]](src raster.View[P], dst raster.MutView[P], yOffset int, norm convolve.Normalizer32) {
	var zero P
	n := zero.PixelType().ComponentCount()
	bias := int64(1) << (norm.Precision - 1)
	chunks := norm.Chunks()
	width := dst.Width() * n

	for y, chunk := range chunks {
		dstRow := pixel.Components[P, uint16](dst.RowMut(y))
		acc := make([]int64, width)
		for i := range acc {
			acc[i] = bias
		}
		for k, w := range chunk.Values {
			srcRow := pixel.Components[P, uint16](src.Row(yOffset + int(chunk.Start) + k))
			w64 := int64(w)
			for i := 0; i < width; i++ {
				acc[i] += int64(srcRow[i]) * w64
			}
		}
		for i := 0; i < width; i++ {
			dstRow[i] = convolve.Clip16(acc[i], norm.Precision)
		}
	}
}

// VerticalF32 is the float32-channel analogue, accumulating in float64.
func VerticalF32[P pixel.InnerPixel[float32]](src raster.View[P], dst raster.MutView[P], yOffset int, coeffs convolve.Coefficients) {
	var zero P
	n := zero.PixelType().ComponentCount()
	chunks := coeffs.Chunks()
	width := dst.Width() * n

	for y, chunk := range chunks {
		dstRow := pixel.Components[P, float32](dst.RowMut(y))
		acc := make([]float64, width)
		for k, w := range chunk.Values {
			srcRow := pixel.Components[P, float32](src.Row(yOffset + int(chunk.Start) + k))
			for i := 0; i < width; i++ {
				acc[i] += float64(srcRow[i]) * w
			}
		}
		for i := 0; i < width; i++ {
			dstRow[i] = float32(acc[i])
		}
	}
}

// VerticalI32 is the I32 analogue; see HorizontalI32 for why there is no
// output-range clamp.
func VerticalI32(src raster.View[pixel.I32Pix], dst raster.MutView[pixel.I32Pix], yOffset int, norm convolve.Normalizer32) {
	bias := int64(1) << (norm.Precision - 1)
	chunks := norm.Chunks()
	width := dst.Width()

	for y, chunk := range chunks {
		dstRow := dst.RowMut(y)
		acc := make([]int64, width)
		for i := range acc {
			acc[i] = bias
		}
		for k, w := range chunk.Values {
			srcRow := src.Row(yOffset + int(chunk.Start) + k)
			for i := 0; i < width; i++ {
				acc[i] += int64(srcRow[i][0]) * int64(w)
			}
		}
		for i := 0; i < width; i++ {
			dstRow[i] = pixel.I32Pix{int32(acc[i] >> norm.Precision)}
		}
	}
}
