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
	"testing"

	"github.com/ajroetker/go-agm/hwy"
)

func TestNewImage(t *testing.T) {
	img := NewImage[uint16](100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}

	// Stride should be >= width and aligned to vector width
	lanes := hwy.MaxLanes[uint16]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), lanes)
	}
	if len(img.Pix()) != img.Stride()*50 {
		t.Errorf("Pix length: got %d, want %d", len(img.Pix()), img.Stride()*50)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewImage[float32](0, 0)
	if img.Width() != 0 || img.Height() != 0 || !img.Empty() {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewImage[float32](-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		pix     int
		w, h, s int
		wantErr bool
	}{
		{"exact", 12, 4, 3, 4, false},
		{"padded", 22, 4, 3, 9, false},
		{"last_row_short", 4 + 9 + 9, 4, 3, 9, false},
		{"short", 21, 4, 3, 9, true},
		{"stride_below_width", 12, 4, 3, 3, true},
		{"zero_height", 12, 4, 0, 4, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := Wrap(make([]uint8, tc.pix), tc.w, tc.h, tc.s)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Wrap: %v", err)
			}
			if img.Stride() != tc.s {
				t.Errorf("Stride: got %d, want %d", img.Stride(), tc.s)
			}
			if got := len(img.RowSlice(tc.h - 1)); got != tc.w {
				t.Errorf("last RowSlice length: got %d, want %d", got, tc.w)
			}
		})
	}

	_, err := Wrap(make([]uint8, 3), 2, 2, 2)
	if !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Wrap short buffer: got %v, want ErrShortBuffer", err)
	}
}

func TestImage_RowSlice(t *testing.T) {
	img := NewImage[float32](10, 5)

	row0 := img.RowSlice(0)
	if len(row0) != 10 {
		t.Fatalf("RowSlice length: got %d, want 10", len(row0))
	}
	for i := range row0 {
		row0[i] = float32(i)
	}
	for i := range 10 {
		if got := img.Pix()[i]; got != float32(i) {
			t.Errorf("RowSlice(0)[%d]: got %v, want %v", i, got, float32(i))
		}
	}

	// Rows do not overlap
	img.RowSlice(1)[0] = 999
	if row0[0] == 999 {
		t.Error("Rows should be independent")
	}
	if got := img.Pix()[img.Stride()]; got != 999 {
		t.Errorf("RowSlice(1) starts at %v, want 999", got)
	}

	if img.RowSlice(-1) != nil {
		t.Error("RowSlice(-1) should return nil")
	}
	if img.RowSlice(5) != nil {
		t.Error("RowSlice(5) should return nil")
	}
}

func TestImage_Set(t *testing.T) {
	img := NewImage[uint8](10, 10)

	img.Set(5, 7, 42)
	if got := img.RowSlice(7)[5]; got != 42 {
		t.Errorf("(5,7): got %v, want 42", got)
	}

	// Out of bounds is a no-op
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		img.Set(p[0], p[1], 99)
	}
	for i, v := range img.Pix() {
		if v != 0 && i != 7*img.Stride()+5 {
			t.Errorf("sample %d written: %v", i, v)
		}
	}
}

func TestImage_CopyFromDifferentStride(t *testing.T) {
	pix := make([]uint16, 3*7)
	for i := range pix {
		pix[i] = 0xBEEF // padding marker
	}
	src, err := Wrap(pix, 5, 3, 7)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	for y := range 3 {
		for x := range 5 {
			src.Set(x, y, uint16(y*10+x))
		}
	}

	dst := NewImage[uint16](5, 3)
	dst.CopyFrom(src)

	for y := range 3 {
		for x, got := range dst.RowSlice(y) {
			if got != uint16(y*10+x) {
				t.Errorf("(%d,%d): got %d, want %d", x, y, got, y*10+x)
			}
		}
		for x := 5; x < dst.Stride(); x++ {
			if v := dst.Pix()[y*dst.Stride()+x]; v != 0 {
				t.Errorf("padding at (%d,%d) was written: %d", x, y, v)
			}
		}
	}
}

func TestImage_CopyFromSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CopyFrom with mismatched size should panic")
		}
	}()
	NewImage[uint8](4, 4).CopyFrom(NewImage[uint8](4, 5))
}

func TestImage_CopyRows(t *testing.T) {
	src := NewImage[uint8](4, 4)
	for y := range 4 {
		for x := range 4 {
			src.Set(x, y, 7)
		}
	}
	dst := NewImage[uint8](4, 4)
	dst.CopyRows(src, 1, 3)

	for y := range 4 {
		want := uint8(0)
		if y == 1 || y == 2 {
			want = 7
		}
		if got := dst.RowSlice(y)[0]; got != want {
			t.Errorf("row %d: got %d, want %d", y, got, want)
		}
	}
}
