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
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel names a CPU instruction set. Kernels take their batch width
// from it; the portable ops do not emit its instructions.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes a kernel uses at this level.
// Scalar mode still reports 16 bytes so batched code has a lane count.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// ParseDispatchLevel parses a level name as printed by String.
func ParseDispatchLevel(name string) (DispatchLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "c", "fallback":
		return DispatchScalar, nil
	case "sse2":
		return DispatchSSE2, nil
	case "avx2":
		return DispatchAVX2, nil
	case "avx512", "avx512f":
		return DispatchAVX512, nil
	case "neon", "asimd":
		return DispatchNEON, nil
	}
	return DispatchScalar, fmt.Errorf("unknown dispatch level %q", name)
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
var currentName string

// supported records every level the running CPU can execute.
// Filled in by init() in dispatch_*.go files; scalar is always present.
var supported = map[DispatchLevel]bool{DispatchScalar: true}

// CurrentLevel returns the best SIMD instruction set available.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentName
}

// Supports reports whether the running CPU can execute kernels at level.
// HWY_NO_SIMD does not hide hardware support here; it only changes the
// level picked automatically.
func Supports(level DispatchLevel) bool {
	return supported[level]
}

// SupportedLevels returns every supported level in ascending order.
func SupportedLevels() []DispatchLevel {
	var levels []DispatchLevel
	for l := DispatchScalar; l <= DispatchNEON; l++ {
		if supported[l] {
			levels = append(levels, l)
		}
	}
	return levels
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar fallback is selected regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentWidth = level.Width()
	currentName = level.String()
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - uint16: 32/2 = 16 lanes
func MaxLanes[T Lanes]() int {
	return LanesAt[T](currentLevel)
}

// LanesAt returns the number of lanes for type T at the given level.
func LanesAt[T Lanes](level DispatchLevel) int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return level.Width() / elementSize
}
