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

// Package image provides padded single-channel planes.
//
// Image[T] is one luma-like plane of 8/16-bit integer or 32-bit float
// samples. Planes allocated with NewImage have rows padded to the hwy
// vector width; planes created with Wrap view caller-owned memory with an
// arbitrary stride. In both cases only the first Width samples of a row are
// part of the picture.
//
// # Usage Example
//
//	// Create a 1080p 8-bit luma plane
//	img := image.NewImage[uint8](1920, 1080)
//
//	// View a host frame buffer with a 2048-sample pitch
//	src, err := image.Wrap(pix, 1920, 1080, 2048)
//
//	// Baseline copy before per-pixel overrides
//	out := image.NewImage[uint8](1920, 1080)
//	out.CopyFrom(src)
package image
