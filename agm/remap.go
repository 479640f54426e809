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
	"math"

	"github.com/ajroetker/go-agm/hwy/contrib/image"
)

// frameParams is everything a remap kernel needs for one frame.
type frameParams struct {
	format   Format
	table    []float32
	exponent float32
	fade     bool
	lanes    int
}

// remapFunc remaps rows [y0, y1) of src into dst. dst already holds a copy
// of src; pixels the fade ladder keeps are left untouched.
type remapFunc[T Samples] func(dst, src *image.Image[T], y0, y1 int, p *frameParams)

// Exponent returns the per-frame exponent avg*avg*lumaScaling.
func Exponent(avg, lumaScaling float32) float32 {
	return float32(avg*avg) * lumaScaling
}

func nonNegative(v float32) float32 {
	if v >= 0 {
		return v
	}
	return 0
}

func pow32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// remapSample is the integer per-pixel remap. keep reports a pixel the
// fade ladder leaves at its source value.
func remapSample(s int32, p *frameParams) (out int32, keep bool) {
	f := &p.format
	if p.fade {
		switch {
		case s <= f.YMin:
			return s, true
		case s <= f.Y1:
			return f.D0, false
		case s <= f.Y2:
			return f.D1, false
		case s >= f.YMax:
			return 0, false
		}
	}
	// Samples above peak are out of range for the depth; they read the
	// last table entry.
	idx := min(s, f.Peak)
	peak := float32(f.Peak)
	v := pow32(nonNegative(p.table[idx]), p.exponent)
	x := float32(v*peak) + 0.5
	if !(x < peak) {
		x = peak
	}
	return min(max(int32(x), 0), f.Peak), false
}

// remapFloatSample is the float per-pixel remap.
func remapFloatSample(s float32, p *frameParams) (out float32, keep bool) {
	if p.fade {
		switch s {
		case 0:
			return s, true
		case 1:
			return 0, false
		}
	}
	v := pow32(nonNegative(BaseCurve(s)), p.exponent)
	if !(v > 0) {
		return 0, false
	}
	if !(v < 1) {
		return 1, false
	}
	return v, false
}

func remapRowsInt[T uint8 | uint16](dst, src *image.Image[T], y0, y1 int, p *frameParams) {
	for y := y0; y < y1; y++ {
		d := dst.RowSlice(y)
		for x, s := range src.RowSlice(y) {
			if out, keep := remapSample(int32(s), p); !keep {
				d[x] = T(out)
			}
		}
	}
}

func remapRowsFloat(dst, src *image.Image[float32], y0, y1 int, p *frameParams) {
	for y := y0; y < y1; y++ {
		d := dst.RowSlice(y)
		for x, s := range src.RowSlice(y) {
			if out, keep := remapFloatSample(s, p); !keep {
				d[x] = out
			}
		}
	}
}

func scalarRemap[T Samples]() remapFunc[T] {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(remapFunc[uint8](remapRowsInt[uint8])).(remapFunc[T])
	case uint16:
		return any(remapFunc[uint16](remapRowsInt[uint16])).(remapFunc[T])
	default:
		return any(remapFunc[float32](remapRowsFloat)).(remapFunc[T])
	}
}
