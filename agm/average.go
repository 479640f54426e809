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
	"github.com/ajroetker/go-agm/hwy/contrib/image"
)

// Samples is the set of sample types a filter can process: uint8 for 8-bit
// planes, uint16 for 10 to 16-bit planes and float32 for normalized float
// planes.
type Samples interface {
	uint8 | uint16 | float32
}

// planeSum is a partial sum over a band of rows. Integer planes accumulate
// into ints, float planes into floats.
type planeSum struct {
	ints   int64
	floats float64
}

func (s planeSum) add(o planeSum) planeSum {
	return planeSum{ints: s.ints + o.ints, floats: s.floats + o.floats}
}

// sumFunc sums the active region of rows [y0, y1).
type sumFunc[T Samples] func(img *image.Image[T], y0, y1, lanes int) planeSum

func isFloat[T Samples]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}

// normalize turns a full-plane sum of n samples into an average in [0, 1].
func normalize[T Samples](s planeSum, n int, f Format) float32 {
	if n <= 0 {
		return 0
	}
	if isFloat[T]() {
		return float32(s.floats / float64(n))
	}
	return float32(s.ints) / float32(n) / float32(f.Peak)
}

// AveragePlane returns the mean brightness of img normalized to [0, 1].
// Only the width x height region is read; row padding is ignored. An empty
// or nil plane averages to 0.
func AveragePlane[T Samples](img *image.Image[T], f Format) float32 {
	if img == nil || img.Empty() {
		return 0
	}
	sum := scalarSum[T]()(img, 0, img.Height(), 0)
	return normalize[T](sum, img.Width()*img.Height(), f)
}

func sumRowsInt[T uint8 | uint16](img *image.Image[T], y0, y1, _ int) planeSum {
	var sum int64
	for y := y0; y < y1; y++ {
		for _, v := range img.RowSlice(y) {
			sum += int64(v)
		}
	}
	return planeSum{ints: sum}
}

func sumRowsFloat(img *image.Image[float32], y0, y1, _ int) planeSum {
	var sum float64
	for y := y0; y < y1; y++ {
		for _, v := range img.RowSlice(y) {
			sum += float64(v)
		}
	}
	return planeSum{floats: sum}
}

func scalarSum[T Samples]() sumFunc[T] {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(sumFunc[uint8](sumRowsInt[uint8])).(sumFunc[T])
	case uint16:
		return any(sumFunc[uint16](sumRowsInt[uint16])).(sumFunc[T])
	default:
		return any(sumFunc[float32](sumRowsFloat)).(sumFunc[T])
	}
}
