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
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pixreskit/resample"
	"github.com/pixreskit/resample/pixel"
)

type jobOptions struct {
	width, height string
	algorithm     string
	filter        string
	colorspace    string
	highPrecision bool
	overwrite     bool
}

// runJob decodes srcPath, resizes it per opts, and writes the result to
// dstPath (or a derived default), returning the path actually written.
func runJob(srcPath, dstPath string, opts jobOptions) (string, error) {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	decoded, format, err := image.Decode(srcFile)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", srcPath, err)
	}
	slog.Info("decoded source", "format", format, "bounds", decoded.Bounds())

	if dstPath == "" {
		dstPath = "./result" + filepath.Ext(srcPath)
	}
	if !opts.overwrite {
		if _, err := os.Stat(dstPath); err == nil {
			return "", fmt.Errorf("destination %s already exists (pass -o to overwrite)", dstPath)
		}
	}

	bounds := decoded.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	dstW, dstH, err := targetDims(srcW, srcH, opts.width, opts.height)
	if err != nil {
		return "", err
	}

	workType := pixel.U8x4
	if opts.highPrecision {
		workType = pixel.U16x4
	}
	srcImg := rgbaFromImage(decoded, workType)
	algorithm, err := parseAlgorithm(opts.algorithm)
	if err != nil {
		return "", err
	}
	filter, err := parseFilter(opts.filter)
	if err != nil {
		return "", err
	}

	if opts.colorspace != "" {
		linear, err := toLinear(srcImg, opts.colorspace)
		if err != nil {
			return "", err
		}
		srcImg = linear
	}

	dstImg := resample.NewImage(dstW, dstH, srcImg.PixelType())
	resizer := resample.New()
	resizeOpts := resample.Options{Algorithm: algorithm, Filter: filter, UseAlpha: true}
	if algorithm == resample.SuperSampling {
		resizeOpts.SuperSamplingFactor = superSamplingFactor(srcW, srcH, dstW, dstH)
	}
	if err := resizer.Resize(srcImg, dstImg, resizeOpts); err != nil {
		return "", fmt.Errorf("resize: %w", err)
	}

	if opts.colorspace != "" {
		back, err := fromLinear(dstImg, opts.colorspace, workType)
		if err != nil {
			return "", err
		}
		dstImg = back
	}

	if err := writeImage(dstPath, dstImg); err != nil {
		return "", err
	}
	return dstPath, nil
}

// targetDims resolves -w/-h, each either empty (keep source size), an
// integer pixel count, or a percent string like "50%".
func targetDims(srcW, srcH int, w, h string) (int, int, error) {
	dstW, err := resolveDim(w, srcW)
	if err != nil {
		return 0, 0, fmt.Errorf("-w: %w", err)
	}
	dstH, err := resolveDim(h, srcH)
	if err != nil {
		return 0, 0, fmt.Errorf("-h: %w", err)
	}
	if dstW <= 0 {
		dstW = srcW
	}
	if dstH <= 0 {
		dstH = srcH
	}
	return dstW, dstH, nil
}

func resolveDim(spec string, srcDim int) (int, error) {
	if spec == "" {
		return 0, nil
	}
	if strings.HasSuffix(spec, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(spec, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid percent %q: %w", spec, err)
		}
		return int(float64(srcDim) * pct / 100), nil
	}
	n, err := strconv.Atoi(spec)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q: %w", spec, err)
	}
	return n, nil
}

func parseAlgorithm(s string) (resample.Algorithm, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return resample.Nearest, nil
	case "", "convolution":
		return resample.Convolution, nil
	case "supersampling", "super-sampling":
		return resample.SuperSampling, nil
	default:
		return 0, fmt.Errorf("-a: unknown algorithm %q", s)
	}
}

func parseFilter(s string) (resample.FilterType, error) {
	switch strings.ToLower(s) {
	case "box":
		return resample.Box, nil
	case "bilinear":
		return resample.Bilinear, nil
	case "hamming":
		return resample.Hamming, nil
	case "", "catmullrom":
		return resample.CatmullRom, nil
	case "mitchell":
		return resample.Mitchell, nil
	case "gaussian":
		return resample.Gaussian, nil
	case "lanczos3":
		return resample.Lanczos3, nil
	default:
		return 0, fmt.Errorf("-f: unknown filter %q", s)
	}
}

// superSamplingFactor picks the largest integer k such that srcW/k and
// srcH/k are still at least dstW and dstH.
func superSamplingFactor(srcW, srcH, dstW, dstH int) int {
	k := 1
	for {
		next := k + 1
		if srcW/next < dstW || srcH/next < dstH {
			break
		}
		k = next
	}
	return k
}

// rgbaFromImage copies decoded into a resample.Image of workType
// (pixel.U8x4, or pixel.U16x4 under --high-precision).
func rgbaFromImage(decoded image.Image, workType pixel.Type) *resample.Image {
	bounds := decoded.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := resample.NewImage(w, h, workType)
	data := img.Bytes()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := decoded.At(x, y).RGBA()
			if workType == pixel.U16x4 {
				putU16(data, i+0, uint16(r))
				putU16(data, i+2, uint16(g))
				putU16(data, i+4, uint16(b))
				putU16(data, i+6, uint16(a))
				i += 8
			} else {
				data[i+0] = byte(r >> 8)
				data[i+1] = byte(g >> 8)
				data[i+2] = byte(b >> 8)
				data[i+3] = byte(a >> 8)
				i += 4
			}
		}
	}
	return img
}

func putU16(data []byte, offset int, v uint16) {
	data[offset+0] = byte(v)
	data[offset+1] = byte(v >> 8)
}

func getU16(data []byte, offset int) uint16 {
	return uint16(data[offset]) | uint16(data[offset+1])<<8
}

func writeImage(dstPath string, img *resample.Image) error {
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer out.Close()

	rgba := toStdImage(img)
	switch strings.ToLower(filepath.Ext(dstPath)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(out, rgba, &jpeg.Options{Quality: 92})
	default:
		return png.Encode(out, rgba)
	}
}

// toStdImage renders img as a standard library image.Image for
// encoding, preserving 16-bit-per-channel precision when img is U16x4.
func toStdImage(img *resample.Image) image.Image {
	w, h := img.Width(), img.Height()
	data := img.Bytes()
	if img.PixelType() == pixel.U16x4 {
		out := image.NewNRGBA64(image.Rect(0, 0, w, h))
		i := 0
		for p := 0; p < w*h; p++ {
			out.Pix[i+0] = byte(getU16(data, i) >> 8)
			out.Pix[i+1] = byte(getU16(data, i))
			out.Pix[i+2] = byte(getU16(data, i+2) >> 8)
			out.Pix[i+3] = byte(getU16(data, i+2))
			out.Pix[i+4] = byte(getU16(data, i+4) >> 8)
			out.Pix[i+5] = byte(getU16(data, i+4))
			out.Pix[i+6] = byte(getU16(data, i+6) >> 8)
			out.Pix[i+7] = byte(getU16(data, i+6))
			i += 8
		}
		return out
	}
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, data)
	return out
}
