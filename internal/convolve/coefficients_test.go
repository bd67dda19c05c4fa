package convolve

import (
	"math"
	"testing"
)

func sumChunk(c Chunk) float64 {
	s := 0.0
	for _, w := range c.Values {
		s += w
	}
	return s
}

func TestPrecomputeChunksSumToOne(t *testing.T) {
	filters := []FilterType{Box, Bilinear, Hamming, CatmullRom, Mitchell, Gaussian, Lanczos3}
	sizes := []struct{ in, out uint32 }{
		{100, 50},  // downscale
		{50, 100},  // upscale
		{64, 64},   // identity-ish
		{7, 3},
	}

	for _, ft := range filters {
		filter := GetFilter(ft)
		for _, sz := range sizes {
			coeffs, err := Precompute(sz.in, 0, float64(sz.in), sz.out, filter)
			if err != nil {
				t.Fatalf("Precompute(%v, %d->%d) error: %v", ft, sz.in, sz.out, err)
			}
			for i, c := range coeffs.Chunks() {
				if len(c.Values) == 0 {
					continue
				}
				sum := sumChunk(c)
				if math.Abs(sum-1.0) > 1e-9 {
					t.Errorf("filter %v %d->%d chunk %d: weights sum to %v, want 1", ft, sz.in, sz.out, i, sum)
				}
			}
		}
	}
}

func TestPrecomputeBoundsWithinSource(t *testing.T) {
	filter := GetFilter(Lanczos3)
	coeffs, err := Precompute(40, 0, 40, 17, filter)
	if err != nil {
		t.Fatalf("Precompute error: %v", err)
	}
	for i, b := range coeffs.Bounds {
		if b.Start+b.Size > 40 {
			t.Errorf("chunk %d: [%d, %d) exceeds source size 40", i, b.Start, b.Start+b.Size)
		}
	}
}

func TestPrecomputeZeroSizeRejected(t *testing.T) {
	filter := GetFilter(Box)
	if _, err := Precompute(0, 0, 0, 10, filter); err == nil {
		t.Error("Precompute with zero inSize: want error, got nil")
	}
	if _, err := Precompute(10, 0, 10, 0, filter); err == nil {
		t.Error("Precompute with zero outSize: want error, got nil")
	}
}

func TestNewNormalizer16RoundTrips(t *testing.T) {
	filter := GetFilter(CatmullRom)
	coeffs, err := Precompute(100, 0, 100, 40, filter)
	if err != nil {
		t.Fatalf("Precompute error: %v", err)
	}
	norm := NewNormalizer16(coeffs)
	for i, c := range norm.Chunks() {
		if len(c.Values) == 0 {
			continue
		}
		var sum int64
		for _, v := range c.Values {
			sum += int64(v)
		}
		// Fixed-point weights should sum close to 1<<precision; each of
		// up to WindowSize terms can carry up to 0.5 of rounding error.
		want := int64(1) << norm.Precision
		tolerance := int64(norm.WindowSize) + 1
		if diff := sum - want; diff > tolerance || diff < -tolerance {
			t.Errorf("chunk %d: fixed-point weights sum to %d, want ~%d (+/-%d)", i, sum, want, tolerance)
		}
	}
}

func TestClip8Saturates(t *testing.T) {
	cases := []struct {
		in   int32
		want uint8
	}{
		{-100, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{1000, 255},
	}
	for _, c := range cases {
		if got := Clip8(c.in, 0); got != c.want {
			t.Errorf("Clip8(%d, 0) = %d, want %d", c.in, got, c.want)
		}
	}
}
