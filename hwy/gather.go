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

// This file provides pure Go (scalar) implementations of gather operations.

// GatherIndex loads elements from non-contiguous memory locations specified by indices.
// For each lane i in the index vector, it loads src[indices[i]].
// If an index is out of bounds (negative or >= len(src)), the result for that lane is zero.
func GatherIndex[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I]) Vec[T] {
	n := len(indices.data)
	result := make([]T, n)
	for i := range n {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(src) {
			result[i] = src[idx]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}
