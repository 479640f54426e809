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

package image

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-agm/hwy"
)

// Samples is the set of sample types a luma plane can hold.
type Samples interface {
	~uint8 | ~uint16 | ~float32
}

// ErrShortBuffer is returned by Wrap when the buffer cannot hold the plane.
var ErrShortBuffer = errors.New("buffer too short for plane")

// Image is a single-channel 2D plane with a row stride.
// Each row holds stride elements, of which the first width are pixels.
type Image[T Samples] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
}

// NewImage creates a new plane with the specified dimensions.
// Rows are padded to the vector width of the current dispatch level.
func NewImage[T Samples](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	// Elements per row, rounded up to the vector width
	stride := hwy.AlignedSize[T](width)

	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Wrap returns a plane backed by pix without copying it. stride is the
// distance between row starts in elements; it must be at least width.
// The last row only needs width elements.
func Wrap[T Samples](pix []T, width, height, stride int) (*Image[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid plane size %dx%d", width, height)
	}
	if stride < width {
		return nil, fmt.Errorf("stride %d is smaller than width %d", stride, width)
	}
	if need := (height-1)*stride + width; len(pix) < need {
		return nil, fmt.Errorf("%dx%d stride %d needs %d samples, have %d: %w",
			width, height, stride, need, len(pix), ErrShortBuffer)
	}
	return &Image[T]{
		data:   pix,
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the plane width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the plane height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// Pix returns the backing buffer, padding included.
func (img *Image[T]) Pix() []T {
	return img.data
}

// Empty reports whether the plane has no pixels.
func (img *Image[T]) Empty() bool {
	return img.data == nil || img.width == 0 || img.height == 0
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// SameSize returns true if both planes have the same dimensions.
func SameSize[T, U Samples](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// CopyFrom copies the width×height pixels of src into img row by row.
// Strides may differ; padding is neither read nor written.
// It panics if the planes differ in size.
func (img *Image[T]) CopyFrom(src *Image[T]) {
	if !SameSize(img, src) {
		panic(fmt.Sprintf("image: CopyFrom %dx%d into %dx%d",
			src.width, src.height, img.width, img.height))
	}
	for y := 0; y < img.height; y++ {
		copy(img.RowSlice(y), src.RowSlice(y))
	}
}

// CopyRows is CopyFrom restricted to rows [y0, y1).
func (img *Image[T]) CopyRows(src *Image[T], y0, y1 int) {
	for y := max(y0, 0); y < min(y1, img.height, src.height); y++ {
		copy(img.RowSlice(y), src.RowSlice(y))
	}
}
