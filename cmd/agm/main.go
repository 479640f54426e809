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

// Command agm applies the adaptive gamma remap to grayscale image files.
//
// Usage:
//
//	agm apply --out-dir out frames/*.png
//	agm apply --raw 1920x1080 --bits 10 --out-dir out frame.yuv
//	agm apply --config preset.yaml --jobs 8 --out-dir out a.tif b.tif
//	agm info
//	agm curve --bits 10
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-agm/agm"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "agm",
		Short:         "Adaptive gamma remap for luma planes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			agm.SetLogger(logger)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log filter and per-frame details")
	root.AddCommand(newApplyCmd(), newInfoCmd(), newCurveCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "agm: %v\n", err)
		os.Exit(1)
	}
}
