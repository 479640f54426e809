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

// This file provides pure Go (scalar) implementations of lane type
// conversions. Widths never change: a conversion keeps the lane count.

// ConvertToInt32 converts float32 or float64 to int32 (truncate toward zero).
// For values outside the int32 range, the result is undefined.
func ConvertToInt32[T ~float32 | ~float64](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// PromoteF32ToF64 widens float32 to float64.
func PromoteF32ToF64(v Vec[float32]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = float64(v.data[i])
	}
	return Vec[float64]{data: result}
}

// PromoteI32ToI64 widens int32 to int64.
func PromoteI32ToI64(v Vec[int32]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int64(v.data[i])
	}
	return Vec[int64]{data: result}
}

// PromoteUToI32 widens uint8 or uint16 lanes to int32.
func PromoteUToI32[T ~uint8 | ~uint16](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int32(v.data[i])
	}
	return Vec[int32]{data: result}
}

// DemoteI32ToU narrows int32 lanes to uint8 or uint16 with unsigned
// saturation: negative lanes become 0, lanes above the type's maximum
// become the maximum.
func DemoteI32ToU[T ~uint8 | ~uint16](v Vec[int32]) Vec[T] {
	limit := int32(^T(0))
	result := make([]T, len(v.data))
	for i, x := range v.data {
		switch {
		case x < 0:
			result[i] = 0
		case x > limit:
			result[i] = T(limit)
		default:
			result[i] = T(x)
		}
	}
	return Vec[T]{data: result}
}
