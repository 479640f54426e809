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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-agm/agm"
	"github.com/ajroetker/go-agm/hwy/contrib/image"
)

type applyOptions struct {
	outDir      string
	configPath  string
	lumaScaling float32
	fade        bool
	opt         string
	workers     int
	jobs        int
	bits        int
	raw         string
	float       bool
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply [files...]",
		Short: "Remap grayscale PNG, TIFF, BMP or raw planes",
		Long: `apply reads every input file, remaps its luma plane and writes the result
with the same name and container format into --out-dir.

Settings come from the defaults, then the --config preset, then any flag
given explicitly on the command line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			files, err := expandInputs(args)
			if err != nil {
				return err
			}
			return applyFiles(cmd.Context(), files, cfg, opts)
		},
	}
	opts.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("out-dir")
	return cmd
}

// bind registers the apply flags. Defaults mirror agm.DefaultConfig.
func (o *applyOptions) bind(f *pflag.FlagSet) {
	def := agm.DefaultConfig()
	f.StringVarP(&o.outDir, "out-dir", "o", "", "output directory (required)")
	f.StringVar(&o.configPath, "config", "", "YAML preset with luma_scaling, fade, opt and workers")
	f.Float32Var(&o.lumaScaling, "luma-scaling", def.LumaScaling, "exponent multiplier")
	f.BoolVar(&o.fade, "fade", def.Fade, "keep studio footroom and map headroom to fixed values")
	f.StringVar(&o.opt, "opt", def.Variant.String(), "kernel variant: -1..4 or auto, scalar, sse2, avx2, avx512, neon")
	f.IntVar(&o.workers, "workers", def.Workers, "row bands per frame processed in parallel, 0 for GOMAXPROCS")
	f.IntVarP(&o.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files processed concurrently")
	f.IntVar(&o.bits, "bits", 0, "sample bit depth, overrides the container depth (required for 10 to 14-bit data)")
	f.StringVar(&o.raw, "raw", "", "read headerless little-endian planes of size WxH")
	f.BoolVar(&o.float, "float", false, "raw planes hold 32-bit float samples")
}

// resolveConfig layers the preset and explicitly set flags over the
// defaults.
func resolveConfig(cmd *cobra.Command, opts *applyOptions) (agm.Config, error) {
	cfg := agm.DefaultConfig()
	if opts.configPath != "" {
		if err := loadPreset(opts.configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", opts.configPath, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("luma-scaling") {
		cfg.LumaScaling = opts.lumaScaling
	}
	if flags.Changed("fade") {
		cfg.Fade = opts.fade
	}
	if flags.Changed("opt") {
		v, err := agm.ParseVariant(opts.opt)
		if err != nil {
			return cfg, err
		}
		cfg.Variant = v
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if opts.float && opts.raw == "" {
		return cfg, errors.New("--float needs --raw")
	}
	return cfg, nil
}

// expandInputs expands glob patterns and drops duplicates, keeping order.
func expandInputs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		files = append(files, matches...)
	}
	return lo.Uniq(files), nil
}

func applyFiles(ctx context.Context, files []string, cfg agm.Config, opts *applyOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for _, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return applyFile(path, cfg, opts)
		})
	}
	return g.Wait()
}

func applyFile(path string, cfg agm.Config, opts *applyOptions) error {
	start := time.Now()
	outPath := filepath.Join(opts.outDir, filepath.Base(path))
	if same, err := samePath(path, outPath); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	} else if same {
		return fmt.Errorf("%s: output would overwrite the input", path)
	}

	fr, err := readFrame(path, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := filterFrame(fr, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := fr.encode(out); err != nil {
		out.Close()
		return fmt.Errorf("%s: encode %s: %w", path, outPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("processed", "in", path, "out", outPath, "format", fr.format, "elapsed", time.Since(start))
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

func readFrame(path string, opts *applyOptions) (*frame, error) {
	if opts.raw != "" {
		w, h, err := parseSize(opts.raw)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return decodeRaw(data, rawLayout{width: w, height: h, bits: opts.bits, float: opts.float})
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeImage(f, opts.bits)
}

// filterFrame replaces the frame's plane with its remapped version.
func filterFrame(fr *frame, cfg agm.Config) error {
	var err error
	switch {
	case fr.u8 != nil:
		fr.u8, err = runFilter(fr.format, cfg, fr.u8)
	case fr.u16 != nil:
		fr.u16, err = runFilter(fr.format, cfg, fr.u16)
	case fr.f32 != nil:
		fr.f32, err = runFilter(fr.format, cfg, fr.f32)
	default:
		// No luma plane; FormatFor reports why.
		_, err = agm.FormatFor(fr.format)
		if err == nil {
			err = fmt.Errorf("%v: no plane decoded", fr.format)
		}
	}
	return err
}

func runFilter[T agm.Samples](pf agm.PlaneFormat, cfg agm.Config, src *image.Image[T]) (*image.Image[T], error) {
	f, err := agm.New[T](pf, agm.WithConfig(cfg))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Process(src)
}
