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
	"github.com/ajroetker/go-agm/hwy"
	"github.com/ajroetker/go-agm/hwy/contrib/image"
)

// Batched kernels. Each step mirrors the scalar kernel's float32 rounding
// so results match it bit for bit; the last partial vector of a row is
// zero-padded by LoadN and truncated by Store.

func batchSumRowsInt[T uint8 | uint16](img *image.Image[T], y0, y1, lanes int) planeSum {
	acc := hwy.ZeroN[int64](lanes)
	for y := y0; y < y1; y++ {
		row := img.RowSlice(y)
		for x := 0; x < len(row); x += lanes {
			v := hwy.PromoteUToI32(hwy.LoadN(row[x:], lanes))
			acc = hwy.Add(acc, hwy.PromoteI32ToI64(v))
		}
	}
	return planeSum{ints: hwy.ReduceSum(acc)}
}

func batchSumRowsFloat(img *image.Image[float32], y0, y1, lanes int) planeSum {
	acc := hwy.ZeroN[float64](lanes)
	for y := y0; y < y1; y++ {
		row := img.RowSlice(y)
		for x := 0; x < len(row); x += lanes {
			acc = hwy.Add(acc, hwy.PromoteF32ToF64(hwy.LoadN(row[x:], lanes)))
		}
	}
	return planeSum{floats: hwy.ReduceSum(acc)}
}

// intConsts holds the broadcast constants of the integer kernel.
type intConsts struct {
	peakIdx, ymin, y1, y2, ymax, d0, d1, zero hwy.Vec[int32]
	peak, half, exponent                      hwy.Vec[float32]
}

func newIntConsts(p *frameParams) intConsts {
	f, n := p.format, p.lanes
	return intConsts{
		peakIdx:  hwy.SetN(f.Peak, n),
		ymin:     hwy.SetN(f.YMin, n),
		y1:       hwy.SetN(f.Y1, n),
		y2:       hwy.SetN(f.Y2, n),
		ymax:     hwy.SetN(f.YMax, n),
		d0:       hwy.SetN(f.D0, n),
		d1:       hwy.SetN(f.D1, n),
		zero:     hwy.ZeroN[int32](n),
		peak:     hwy.SetN(float32(f.Peak), n),
		half:     hwy.SetN[float32](0.5, n),
		exponent: hwy.SetN(p.exponent, n),
	}
}

func batchRemapRowsInt[T uint8 | uint16](dst, src *image.Image[T], y0, y1 int, p *frameParams) {
	lanes := p.lanes
	c := newIntConsts(p)
	for y := y0; y < y1; y++ {
		s, d := src.RowSlice(y), dst.RowSlice(y)
		for x := 0; x < len(s); x += lanes {
			sv := hwy.PromoteUToI32(hwy.LoadN(s[x:], lanes))

			curve := hwy.GatherIndex(p.table, hwy.Min(sv, c.peakIdx))
			v := hwy.Pow(hwy.ZeroIfNegative(curve), c.exponent)
			v = hwy.Min(hwy.Add(hwy.Mul(v, c.peak), c.half), c.peak)
			out := hwy.Min(hwy.Max(hwy.ConvertToInt32(v), c.zero), c.peakIdx)

			if p.fade {
				// Lowest priority first so the ymin test wins.
				out = hwy.IfThenElse(hwy.GreaterEqual(sv, c.ymax), c.zero, out)
				out = hwy.IfThenElse(hwy.LessEqual(sv, c.y2), c.d1, out)
				out = hwy.IfThenElse(hwy.LessEqual(sv, c.y1), c.d0, out)
				out = hwy.IfThenElse(hwy.LessEqual(sv, c.ymin), sv, out)
			}
			hwy.Store(hwy.DemoteI32ToU[T](out), d[x:])
		}
	}
}

func batchCurve(x hwy.Vec[float32], lanes int) hwy.Vec[float32] {
	p := hwy.Sub(hwy.Mul(x, hwy.SetN[float32](c5, lanes)), hwy.SetN[float32](c4, lanes))
	p = hwy.Add(hwy.Mul(x, p), hwy.SetN[float32](c3, lanes))
	p = hwy.Sub(hwy.Mul(x, p), hwy.SetN[float32](c2, lanes))
	p = hwy.Add(hwy.Mul(x, p), hwy.SetN[float32](c1, lanes))
	return hwy.Sub(hwy.SetN[float32](1, lanes), hwy.Mul(x, p))
}

func batchRemapRowsFloat(dst, src *image.Image[float32], y0, y1 int, p *frameParams) {
	lanes := p.lanes
	zero := hwy.ZeroN[float32](lanes)
	one := hwy.SetN[float32](1, lanes)
	exponent := hwy.SetN(p.exponent, lanes)
	for y := y0; y < y1; y++ {
		s, d := src.RowSlice(y), dst.RowSlice(y)
		for x := 0; x < len(s); x += lanes {
			sv := hwy.LoadN(s[x:], lanes)
			v := hwy.Pow(hwy.ZeroIfNegative(batchCurve(sv, lanes)), exponent)
			v = hwy.Min(hwy.Max(v, zero), one)
			if p.fade {
				v = hwy.IfThenElse(hwy.Equal(sv, one), zero, v)
				v = hwy.IfThenElse(hwy.Equal(sv, zero), sv, v)
			}
			hwy.Store(v, d[x:])
		}
	}
}

func batchSum[T Samples]() sumFunc[T] {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(sumFunc[uint8](batchSumRowsInt[uint8])).(sumFunc[T])
	case uint16:
		return any(sumFunc[uint16](batchSumRowsInt[uint16])).(sumFunc[T])
	default:
		return any(sumFunc[float32](batchSumRowsFloat)).(sumFunc[T])
	}
}

func batchRemap[T Samples]() remapFunc[T] {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(remapFunc[uint8](batchRemapRowsInt[uint8])).(remapFunc[T])
	case uint16:
		return any(remapFunc[uint16](batchRemapRowsInt[uint16])).(remapFunc[T])
	default:
		return any(remapFunc[float32](batchRemapRowsFloat)).(remapFunc[T])
	}
}
