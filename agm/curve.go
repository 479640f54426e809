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
	"sync"
)

// Quintic coefficients of the base curve, highest order first.
const (
	c5 = 18.188
	c4 = 45.47
	c3 = 36.624
	c2 = 9.466
	c1 = 1.124
)

// BaseCurve evaluates the base tone curve
//
//	1 - (x*(x*(x*(x*(x*18.188 - 45.47) + 36.624) - 9.466) + 1.124))
//
// in float32. Each product is rounded before the following addition, so the
// result never depends on whether the compiler would fuse a multiply-add.
// The input is not clamped. Over [0, 1] the curve falls from 1 to about 0;
// outside that range it can be negative or exceed 1.
func BaseCurve(x float32) float32 {
	p := float32(x*c5) - c4
	p = float32(x*p) + c3
	p = float32(x*p) - c2
	p = float32(x*p) + c1
	return 1 - float32(x*p)
}

// BuildTable returns a fresh curve table for an integer bit depth: entry i
// holds BaseCurve(i/peak), for i in [0, peak].
func BuildTable(bitDepth int) ([]float32, error) {
	f, err := FormatForBitDepth(bitDepth)
	if err != nil {
		return nil, fmt.Errorf("curve table: %w", err)
	}
	return buildTable(f.Peak), nil
}

func buildTable(peak int32) []float32 {
	table := make([]float32, peak+1)
	scale := float32(peak)
	for i := range table {
		table[i] = BaseCurve(float32(i) / scale)
	}
	return table
}

// tables holds one lazily built table per supported depth.
var tables = func() map[int]func() []float32 {
	m := make(map[int]func() []float32, len(integerFormats))
	for bits, f := range integerFormats {
		peak := f.Peak
		m[bits] = sync.OnceValue(func() []float32 { return buildTable(peak) })
	}
	return m
}()

// CurveTable returns the shared table for bitDepth, building it on first
// use. The returned slice is shared by every filter of that depth and must
// not be modified.
func CurveTable(bitDepth int) ([]float32, error) {
	get, ok := tables[bitDepth]
	if !ok {
		return nil, fmt.Errorf("curve table for %d-bit: %w", bitDepth, ErrUnsupportedBitDepth)
	}
	return get(), nil
}
