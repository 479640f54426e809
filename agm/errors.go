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

import "errors"

// Configuration errors returned by New and FormatFor. They are wrapped with
// the offending value, so test with errors.Is.
var (
	ErrNotPlanar              = errors.New("only planar input is supported")
	ErrUnsupportedColorFamily = errors.New("only single-plane luma input is supported")
	ErrUnsupportedBitDepth    = errors.New("unsupported bit depth")
	ErrUnsupportedVariant     = errors.New("variant not supported by this CPU")
	ErrSampleTypeMismatch     = errors.New("sample type does not match format")
)

// Processing errors returned by Process and ProcessInto.
var (
	ErrNilFrame          = errors.New("nil frame")
	ErrDimensionMismatch = errors.New("frame dimensions do not match")
)
