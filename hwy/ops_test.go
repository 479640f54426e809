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

package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadNShortSource(t *testing.T) {
	v := LoadN([]uint16{7, 9}, 8)

	if v.NumLanes() != 8 {
		t.Fatalf("LoadN: got %d lanes, want 8", v.NumLanes())
	}
	want := []uint16{7, 9, 0, 0, 0, 0, 0, 0}
	for i, w := range want {
		if v.data[i] != w {
			t.Errorf("LoadN: lane %d: got %v, want %v", i, v.data[i], w)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := SetN[float32](10.0, 4)
	b := SetN[float32](4.0, 4)

	tests := []struct {
		name string
		got  Vec[float32]
		want float32
	}{
		{"add", Add(a, b), 14},
		{"sub", Sub(a, b), 6},
		{"mul", Mul(a, b), 40},
		{"min", Min(a, b), 4},
		{"max", Max(a, b), 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < tc.got.NumLanes(); i++ {
				if tc.got.data[i] != tc.want {
					t.Errorf("lane %d: got %v, want %v", i, tc.got.data[i], tc.want)
				}
			}
		})
	}
}

func TestPow(t *testing.T) {
	base := Vec[float32]{data: []float32{0, 0.25, 0.5, 1}}
	exp := SetN[float32](0.5, 4)
	got := Pow(base, exp)

	for i, b := range base.data {
		want := float32(math.Pow(float64(b), 0.5))
		if got.data[i] != want {
			t.Errorf("Pow(%v, 0.5): got %v, want %v", b, got.data[i], want)
		}
	}

	// pow(x, 0) is exactly 1, including x == 0.
	one := Pow(base, ZeroN[float32](4))
	for i, v := range one.data {
		if v != 1 {
			t.Errorf("Pow(%v, 0): got %v, want 1", base.data[i], v)
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Vec[int64]{data: []int64{1, 2, 3, 4}}
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum: got %d, want 10", got)
	}
}

func TestCompareAndSelect(t *testing.T) {
	v := Vec[int32]{data: []int32{1, 5, 9, 12}}
	five := SetN[int32](5, 4)

	le := LessEqual(v, five)
	checkBits(t, "LessEqual", le, true, true, false, false)
	checkBits(t, "GreaterEqual", GreaterEqual(v, five), false, true, true, true)
	checkBits(t, "Equal", Equal(v, five), false, true, false, false)

	got := IfThenElse(le, ZeroN[int32](4), v)
	want := []int32{0, 0, 9, 12}
	for i := range want {
		if got.data[i] != want[i] {
			t.Errorf("IfThenElse: lane %d: got %d, want %d", i, got.data[i], want[i])
		}
	}
}

func TestZeroIfNegative(t *testing.T) {
	v := Vec[float32]{data: []float32{-1e-7, 0, 0.5, -3}}
	got := ZeroIfNegative(v)
	want := []float32{0, 0, 0.5, 0}
	for i := range want {
		if got.data[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}
}

func TestConversions(t *testing.T) {
	f := Vec[float32]{data: []float32{0.4, 1.5, 254.99, 70000}}
	i := ConvertToInt32(f)
	wantI := []int32{0, 1, 254, 70000}
	for k := range wantI {
		if i.data[k] != wantI[k] {
			t.Errorf("ConvertToInt32: lane %d: got %d, want %d", k, i.data[k], wantI[k])
		}
	}

	u8 := DemoteI32ToU[uint8](Vec[int32]{data: []int32{-5, 0, 128, 300}})
	wantU8 := []uint8{0, 0, 128, 255}
	for k := range wantU8 {
		if u8.data[k] != wantU8[k] {
			t.Errorf("DemoteI32ToU[uint8]: lane %d: got %d, want %d", k, u8.data[k], wantU8[k])
		}
	}

	u16 := DemoteI32ToU[uint16](Vec[int32]{data: []int32{70000, 65535}})
	if u16.data[0] != 65535 || u16.data[1] != 65535 {
		t.Errorf("DemoteI32ToU[uint16]: got %v", u16.data)
	}

	p := PromoteUToI32(Vec[uint16]{data: []uint16{65535, 3}})
	if p.data[0] != 65535 || p.data[1] != 3 {
		t.Errorf("PromoteUToI32: got %v", p.data)
	}

	w := PromoteI32ToI64(Vec[int32]{data: []int32{-1, 1 << 30}})
	if w.data[0] != -1 || w.data[1] != 1<<30 {
		t.Errorf("PromoteI32ToI64: got %v", w.data)
	}
}

func TestGatherIndex(t *testing.T) {
	table := []float32{0.5, 0.25, 0.125}
	got := GatherIndex(table, Vec[int32]{data: []int32{2, 0, 7, -1}})
	want := []float32{0.125, 0.5, 0, 0}
	for i := range want {
		if got.data[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}
}

func checkBits[T Lanes](t *testing.T, name string, m Mask[T], want ...bool) {
	t.Helper()
	if m.NumLanes() != len(want) {
		t.Fatalf("%s: got %d lanes, want %d", name, m.NumLanes(), len(want))
	}
	for i, w := range want {
		if m.bits[i] != w {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, m.bits[i], w)
		}
	}
}
