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

import "fmt"

// ColorFamily is the color model of the host's pixel format.
type ColorFamily int

const (
	// ColorGray is a single luma plane.
	ColorGray ColorFamily = iota
	// ColorYUV carries chroma planes next to luma.
	ColorYUV
	// ColorRGB is an RGB format, planar or packed.
	ColorRGB
)

func (c ColorFamily) String() string {
	switch c {
	case ColorGray:
		return "gray"
	case ColorYUV:
		return "yuv"
	case ColorRGB:
		return "rgb"
	default:
		return fmt.Sprintf("ColorFamily(%d)", int(c))
	}
}

// SampleType tells integer samples from floating point ones.
type SampleType int

const (
	SampleInteger SampleType = iota
	SampleFloat
)

func (s SampleType) String() string {
	if s == SampleFloat {
		return "float"
	}
	return "integer"
}

// PlaneFormat describes a host pixel format before it is accepted.
type PlaneFormat struct {
	Family        ColorFamily
	Sample        SampleType
	BitsPerSample int
	Planar        bool
}

// GrayFormat returns the planar gray integer format of the given depth.
func GrayFormat(bits int) PlaneFormat {
	return PlaneFormat{Family: ColorGray, Sample: SampleInteger, BitsPerSample: bits, Planar: true}
}

// GrayFloatFormat returns the planar gray 32-bit float format.
func GrayFloatFormat() PlaneFormat {
	return PlaneFormat{Family: ColorGray, Sample: SampleFloat, BitsPerSample: 32, Planar: true}
}

func (pf PlaneFormat) String() string {
	return fmt.Sprintf("%s %s %d-bit planar=%t", pf.Family, pf.Sample, pf.BitsPerSample, pf.Planar)
}

// Format is the per-depth descriptor the kernels run against.
//
// YMin, Y1, Y2 and YMax are the fade thresholds, D0 and D1 the values
// written for pixels in (YMin, Y1] and (Y1, Y2]. They are the published
// studio-range constants for each depth and are not a pure rescale of the
// 8-bit set (16-bit YMax is 60160, not 235*257).
type Format struct {
	BitDepth int
	Float    bool
	Peak     int32
	YMin     int32
	Y1       int32
	Y2       int32
	YMax     int32
	D0       int32
	D1       int32
}

func (f Format) String() string {
	if f.Float {
		return "float32"
	}
	return fmt.Sprintf("%d-bit", f.BitDepth)
}

// FloatFormat is the descriptor of 32-bit float planes. Thresholds are
// unused: the float fade ladder tests 0.0 and 1.0 exactly.
var FloatFormat = Format{BitDepth: 32, Float: true}

var integerFormats = map[int]Format{
	8:  {BitDepth: 8, Peak: 255, YMin: 16, Y1: 17, Y2: 18, YMax: 235, D0: 85, D1: 170},
	10: {BitDepth: 10, Peak: 1023, YMin: 64, Y1: 68, Y2: 72, YMax: 940, D0: 340, D1: 680},
	12: {BitDepth: 12, Peak: 4095, YMin: 256, Y1: 272, Y2: 288, YMax: 3760, D0: 1360, D1: 2720},
	14: {BitDepth: 14, Peak: 16383, YMin: 1024, Y1: 1088, Y2: 1152, YMax: 15040, D0: 5440, D1: 10880},
	16: {BitDepth: 16, Peak: 65535, YMin: 4096, Y1: 4352, Y2: 4608, YMax: 60160, D0: 21760, D1: 43520},
}

// SupportedBitDepths lists the integer depths in ascending order.
var SupportedBitDepths = []int{8, 10, 12, 14, 16}

// FormatForBitDepth returns the integer descriptor for bits.
func FormatForBitDepth(bits int) (Format, error) {
	f, ok := integerFormats[bits]
	if !ok {
		return Format{}, fmt.Errorf("%d-bit integer: %w", bits, ErrUnsupportedBitDepth)
	}
	return f, nil
}

// FormatFor validates a host format and returns its descriptor.
// Only planar single-plane gray formats are accepted.
func FormatFor(pf PlaneFormat) (Format, error) {
	if !pf.Planar {
		return Format{}, fmt.Errorf("%v: %w", pf, ErrNotPlanar)
	}
	if pf.Family != ColorGray {
		return Format{}, fmt.Errorf("%v: %w", pf, ErrUnsupportedColorFamily)
	}
	if pf.Sample == SampleFloat {
		if pf.BitsPerSample != 32 {
			return Format{}, fmt.Errorf("%d-bit float: %w", pf.BitsPerSample, ErrUnsupportedBitDepth)
		}
		return FloatFormat, nil
	}
	return FormatForBitDepth(pf.BitsPerSample)
}
