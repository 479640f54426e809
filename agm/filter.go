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

package agm

import (
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-agm/hwy"
	"github.com/ajroetker/go-agm/hwy/contrib/image"
	"github.com/ajroetker/go-agm/hwy/contrib/workerpool"
)

// Filter applies the adaptive gamma remap to planes of sample type T.
//
// A Filter is immutable after New. Process and ProcessInto may be called
// concurrently on distinct frames.
type Filter[T Samples] struct {
	cfg    Config
	format Format
	level  hwy.DispatchLevel
	lanes  int
	table  []float32
	sum    sumFunc[T]
	remap  remapFunc[T]
	pool   *workerpool.Pool
	logger *slog.Logger
}

// New validates pf against T and the options and returns a ready filter.
// Every configuration error is reported here; see the Err* sentinels.
func New[T Samples](pf PlaneFormat, opts ...Option) (*Filter[T], error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	format, err := FormatFor(pf)
	if err != nil {
		return nil, fmt.Errorf("agm: %w", err)
	}
	if err := checkSampleType[T](format); err != nil {
		return nil, fmt.Errorf("agm: %w", err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("agm: workers must be >= 0, got %d", cfg.Workers)
	}
	level, err := cfg.Variant.Level()
	if err != nil {
		return nil, fmt.Errorf("agm: opt=%d: %w", int(cfg.Variant), err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = Logger()
	}

	f := &Filter[T]{
		cfg:    cfg,
		format: format,
		level:  level,
		lanes:  lanesFor(level),
		logger: logger,
	}
	if !format.Float {
		if f.table, err = CurveTable(format.BitDepth); err != nil {
			return nil, fmt.Errorf("agm: %w", err)
		}
	}
	if f.lanes == 0 {
		f.sum, f.remap = scalarSum[T](), scalarRemap[T]()
	} else {
		f.sum, f.remap = batchSum[T](), batchRemap[T]()
	}
	if cfg.Workers != 1 {
		f.pool = workerpool.New(cfg.Workers)
	}

	logger.Debug("agm filter created",
		"format", format,
		"variant", cfg.Variant,
		"dispatch", level,
		"lanes", f.lanes,
		"workers", f.pool.NumWorkers(),
		"luma_scaling", cfg.LumaScaling,
		"fade", cfg.Fade)
	return f, nil
}

func checkSampleType[T Samples](f Format) error {
	var zero T
	ok := false
	switch any(zero).(type) {
	case uint8:
		ok = !f.Float && f.BitDepth == 8
	case uint16:
		ok = !f.Float && f.BitDepth > 8
	case float32:
		ok = f.Float
	}
	if !ok {
		return fmt.Errorf("%T samples for %v format: %w", zero, f, ErrSampleTypeMismatch)
	}
	return nil
}

// Config returns the filter's configuration.
func (f *Filter[T]) Config() Config {
	return f.cfg
}

// Format returns the format descriptor the filter was built for.
func (f *Filter[T]) Format() Format {
	return f.format
}

// Level returns the dispatch level of the selected kernel.
func (f *Filter[T]) Level() hwy.DispatchLevel {
	return f.level
}

// Close releases the filter's worker pool. The filter must not be used
// afterwards.
func (f *Filter[T]) Close() {
	f.pool.Close()
}

// Process returns a new plane holding the remapped src.
func (f *Filter[T]) Process(src *image.Image[T]) (*image.Image[T], error) {
	if src == nil {
		return nil, ErrNilFrame
	}
	dst := image.NewImage[T](src.Width(), src.Height())
	if err := f.ProcessInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// ProcessInto writes the remapped src into dst, which must have the same
// width and height. Strides may differ; only the width x height region of
// dst is written.
func (f *Filter[T]) ProcessInto(dst, src *image.Image[T]) error {
	if dst == nil || src == nil {
		return ErrNilFrame
	}
	if !image.SameSize(dst, src) {
		return fmt.Errorf("dst %dx%d, src %dx%d: %w",
			dst.Width(), dst.Height(), src.Width(), src.Height(), ErrDimensionMismatch)
	}
	if src.Empty() {
		return nil
	}

	avg := f.average(src)
	p := &frameParams{
		format:   f.format,
		table:    f.table,
		exponent: Exponent(avg, f.cfg.LumaScaling),
		fade:     f.cfg.Fade,
		lanes:    f.lanes,
	}
	f.logger.Debug("agm frame",
		"width", src.Width(),
		"height", src.Height(),
		"average", avg,
		"exponent", p.exponent)

	f.pool.ParallelFor(src.Height(), func(y0, y1 int) {
		dst.CopyRows(src, y0, y1)
		f.remap(dst, src, y0, y1, p)
	})
	return nil
}

// Exponent returns the exponent Process would apply to src.
func (f *Filter[T]) Exponent(src *image.Image[T]) (float32, error) {
	if src == nil {
		return 0, ErrNilFrame
	}
	return Exponent(f.average(src), f.cfg.LumaScaling), nil
}

// average reduces src in row bands and combines the partial sums.
func (f *Filter[T]) average(src *image.Image[T]) float32 {
	h := src.Height()
	bands, _ := f.pool.Bands(h)
	if bands == 0 {
		return 0
	}
	partial := make([]planeSum, bands)
	f.pool.ParallelBands(h, func(band, y0, y1 int) {
		partial[band] = f.sum(src, y0, y1, f.lanes)
	})
	var total planeSum
	for _, s := range partial {
		total = total.add(s)
	}
	return normalize[T](total, src.Width()*h, f.format)
}
