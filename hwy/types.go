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

// Package hwy provides portable batched lane operations with runtime CPU
// dispatch.
//
// Kernels are written against Vec[T] and Mask[T] in the style of the Highway
// C++ library. Every op is a plain Go loop over a slice; the detected (or
// explicitly requested) dispatch level only chooses the lane count, so the
// same code runs at the scalar, SSE2, AVX2, AVX-512 and NEON batch widths.
// No op emits vector instructions, and each one allocates its result.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-agm/hwy"
//
//	lanes := hwy.MaxLanes[float32]()
//	a := hwy.LoadN(data1, lanes)
//	b := hwy.LoadN(data2, lanes)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. It wraps a slice whose length is the
// lane count.
//
// Vec instances should not be created directly; use Load, LoadN, Set, SetN
// or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Mask represents the result of a comparison operation.
// It is consumed by IfThenElse to select lanes.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}
