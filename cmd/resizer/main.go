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

// Command resizer is a thin CLI over the resample library:
// resizer <src> [<dst>] [-w W] [-h H] [-a alg] [-f filter]
// [-c colorspace] [--high-precision] [-o] [-v]. File decode/encode is a
// stdlib image/png + image/jpeg shim; resample itself does the resizing.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, flattenErr(err))
		os.Exit(1)
	}
}

// flattenErr renders err as a single stderr line.
func flattenErr(err error) string {
	return fmt.Sprintf("resizer: %v", err)
}

var (
	widthFlag      string
	heightFlag     string
	algFlag        string
	filterFlag     string
	colorspaceFlag string
	highPrecision  bool
	overwrite      bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "resizer <src> [dst]",
	Short: "Resample an image with the resample library",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runResize,
}

func init() {
	rootCmd.Flags().StringVarP(&widthFlag, "width", "w", "", "target width: integer pixels or a percent string like 50%")
	rootCmd.Flags().StringVarP(&heightFlag, "height", "h", "", "target height: integer pixels or a percent string like 50%")
	rootCmd.Flags().StringVarP(&algFlag, "algorithm", "a", "convolution", "resampling algorithm: nearest, convolution, supersampling")
	rootCmd.Flags().StringVarP(&filterFlag, "filter", "f", "catmullrom", "filter: box, bilinear, hamming, catmullrom, mitchell, gaussian, lanczos3")
	rootCmd.Flags().StringVarP(&colorspaceFlag, "colorspace", "c", "", "colour transfer function to apply before/after resize: srgb, gamma22")
	rootCmd.Flags().BoolVar(&highPrecision, "high-precision", false, "resample in 16-bit-per-channel intermediate precision")
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "overwrite the destination file if it already exists")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func runResize(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	srcPath := args[0]
	dstPath := ""
	if len(args) == 2 {
		dstPath = args[1]
	}

	opts := jobOptions{
		width:         widthFlag,
		height:        heightFlag,
		algorithm:     algFlag,
		filter:        filterFlag,
		colorspace:    colorspaceFlag,
		highPrecision: highPrecision,
		overwrite:     overwrite,
	}

	outPath, err := runJob(srcPath, dstPath, opts)
	if err != nil {
		return err
	}
	slog.Info("wrote resized image", "path", outPath)
	fmt.Println(outPath)
	return nil
}
