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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	detectCPUFeatures()

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	switch {
	case supported[DispatchAVX512]:
		setLevel(DispatchAVX512)
	case supported[DispatchAVX2]:
		setLevel(DispatchAVX2)
	case supported[DispatchSSE2]:
		setLevel(DispatchSSE2)
	default:
		setScalarMode()
	}
}

func detectCPUFeatures() {
	// SSE2 is part of the amd64 baseline, but x/sys/cpu still reports it.
	supported[DispatchSSE2] = cpu.X86.HasSSE2

	// AVX2 kernels assume FMA is present as well (Haswell+).
	supported[DispatchAVX2] = cpu.X86.HasAVX2 && cpu.X86.HasFMA

	// AVX-512 foundation is all the 512-bit float32 kernels need.
	supported[DispatchAVX512] = cpu.X86.HasAVX512F
}
