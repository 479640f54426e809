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

// Package agm implements an adaptive gamma remap for single-channel (luma)
// planes.
//
// Each frame's tone curve is modulated by that frame's own average
// brightness: the exponent applied to a fixed quintic base curve is
// avg*avg*LumaScaling, so dark frames are pulled towards white less than
// bright ones. Frames are independent; there is no temporal state.
//
// Integer planes (8, 10, 12, 14 and 16 bits) look the base curve up in a
// table built once per bit depth. Float planes (32-bit, normalized to
// [0, 1]) evaluate the polynomial directly. With fade enabled, studio-range
// footroom and headroom pixels skip the curve and are kept or mapped to
// fixed values instead.
//
// # Usage
//
//	f, err := agm.New[uint16](agm.GrayFormat(10), agm.WithLumaScaling(8))
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	out, err := f.Process(frame)
//
// # Variants
//
// A scalar reference kernel and a batched kernel written against hwy
// vectors produce identical output. The batched kernel runs at the lane
// count of the selected dispatch level. VariantAuto runs the scalar kernel,
// which is the faster of the two, and an explicitly requested level the CPU lacks fails New
// with ErrUnsupportedVariant.
package agm
