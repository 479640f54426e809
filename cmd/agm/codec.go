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

package main

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	stdimage "image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-agm/agm"
	"github.com/ajroetker/go-agm/hwy/contrib/image"
)

// container is the file format a frame was read from and is written back to.
type container string

const (
	containerPNG  container = "png"
	containerTIFF container = "tiff"
	containerBMP  container = "bmp"
	containerRaw  container = "raw"
)

// frame is one decoded input file. Exactly one of u8, u16 and f32 is set
// when format describes a luma plane; color inputs carry only format so
// the filter can reject them.
type frame struct {
	container container
	format    agm.PlaneFormat
	u8        *image.Image[uint8]
	u16       *image.Image[uint16]
	f32       *image.Image[float32]
}

// rawLayout describes a headerless little-endian plane.
type rawLayout struct {
	width, height int
	bits          int
	float         bool
}

func (l rawLayout) sampleSize() int {
	switch {
	case l.float:
		return 4
	case l.bits <= 8:
		return 1
	default:
		return 2
	}
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}

// decodeImage decodes a PNG, TIFF or BMP file. bits overrides the depth of
// the samples (a 10-bit plane stored in a 16-bit PNG, say); 0 keeps the
// container's depth.
func decodeImage(r io.Reader, bits int) (*frame, error) {
	img, name, err := stdimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	fr := &frame{container: container(name)}
	if p, ok := img.(*stdimage.Paletted); ok {
		if g, ok := grayFromPaletted(p); ok {
			img = g
		}
	}
	switch m := img.(type) {
	case *stdimage.Gray:
		fr.format = agm.GrayFormat(cmp.Or(bits, 8))
		fr.u8 = planeFromGray(m)
	case *stdimage.Gray16:
		fr.format = agm.GrayFormat(cmp.Or(bits, 16))
		fr.u16 = planeFromGray16(m)
	case *stdimage.YCbCr:
		fr.format = agm.PlaneFormat{Family: agm.ColorYUV, BitsPerSample: 8, Planar: true}
	default:
		fr.format = agm.PlaneFormat{Family: agm.ColorRGB, BitsPerSample: 8}
	}
	return fr, nil
}

// grayFromPaletted converts a paletted image whose palette is all gray.
// 8-bit BMP files decode this way.
func grayFromPaletted(p *stdimage.Paletted) (*stdimage.Gray, bool) {
	lut := make([]uint8, len(p.Palette))
	for i, c := range p.Palette {
		r, g, b, _ := c.RGBA()
		if r != g || g != b {
			return nil, false
		}
		lut[i] = uint8(r >> 8)
	}
	b := p.Bounds()
	g := stdimage.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			idx := p.ColorIndexAt(x, y)
			if int(idx) < len(lut) {
				g.SetGray(x, y, color.Gray{Y: lut[idx]})
			}
		}
	}
	return g, true
}

func planeFromGray(m *stdimage.Gray) *image.Image[uint8] {
	b := m.Bounds()
	p := image.NewImage[uint8](b.Dx(), b.Dy())
	for y := range p.Height() {
		off := m.PixOffset(b.Min.X, b.Min.Y+y)
		copy(p.RowSlice(y), m.Pix[off:off+b.Dx()])
	}
	return p
}

func planeFromGray16(m *stdimage.Gray16) *image.Image[uint16] {
	b := m.Bounds()
	p := image.NewImage[uint16](b.Dx(), b.Dy())
	for y := range p.Height() {
		off := m.PixOffset(b.Min.X, b.Min.Y+y)
		row := p.RowSlice(y)
		for x := range row {
			row[x] = binary.BigEndian.Uint16(m.Pix[off+2*x:])
		}
	}
	return p
}

func grayFromPlane(p *image.Image[uint8]) *stdimage.Gray {
	g := stdimage.NewGray(stdimage.Rect(0, 0, p.Width(), p.Height()))
	for y := range p.Height() {
		copy(g.Pix[y*g.Stride:], p.RowSlice(y))
	}
	return g
}

func gray16FromPlane(p *image.Image[uint16]) *stdimage.Gray16 {
	g := stdimage.NewGray16(stdimage.Rect(0, 0, p.Width(), p.Height()))
	for y := range p.Height() {
		dst := g.Pix[y*g.Stride:]
		for x, v := range p.RowSlice(y) {
			binary.BigEndian.PutUint16(dst[2*x:], v)
		}
	}
	return g
}

// encode writes fr in the container it was read from.
func (fr *frame) encode(w io.Writer) error {
	if fr.container == containerRaw {
		_, err := w.Write(fr.raw())
		return err
	}

	var img stdimage.Image
	switch {
	case fr.u8 != nil:
		img = grayFromPlane(fr.u8)
	case fr.u16 != nil:
		img = gray16FromPlane(fr.u16)
	default:
		return errors.New("encode: frame holds no luma plane")
	}

	switch fr.container {
	case containerPNG:
		return png.Encode(w, img)
	case containerTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case containerBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("encode: unsupported container %q", fr.container)
	}
}

// decodeRaw reads a headerless little-endian plane.
func decodeRaw(data []byte, l rawLayout) (*frame, error) {
	if want := l.width * l.height * l.sampleSize(); len(data) != want {
		return nil, fmt.Errorf("raw %dx%d plane needs %d bytes, file has %d", l.width, l.height, want, len(data))
	}
	fr := &frame{container: containerRaw}
	switch {
	case l.float:
		fr.format = agm.GrayFloatFormat()
		fr.f32 = image.NewImage[float32](l.width, l.height)
		fillRows(fr.f32, func(i int) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		})
	case l.bits <= 8:
		fr.format = agm.GrayFormat(cmp.Or(l.bits, 8))
		fr.u8 = image.NewImage[uint8](l.width, l.height)
		fillRows(fr.u8, func(i int) uint8 { return data[i] })
	default:
		fr.format = agm.GrayFormat(l.bits)
		fr.u16 = image.NewImage[uint16](l.width, l.height)
		fillRows(fr.u16, func(i int) uint16 {
			return binary.LittleEndian.Uint16(data[2*i:])
		})
	}
	return fr, nil
}

// fillRows sets every pixel of p from sample(i), i counting pixels in
// row-major order.
func fillRows[T image.Samples](p *image.Image[T], sample func(i int) T) {
	for y := range p.Height() {
		row := p.RowSlice(y)
		for x := range row {
			row[x] = sample(y*p.Width() + x)
		}
	}
}

func (fr *frame) raw() []byte {
	var out []byte
	switch {
	case fr.f32 != nil:
		out = make([]byte, 0, 4*fr.f32.Width()*fr.f32.Height())
		for y := range fr.f32.Height() {
			for _, v := range fr.f32.RowSlice(y) {
				out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
			}
		}
	case fr.u16 != nil:
		out = make([]byte, 0, 2*fr.u16.Width()*fr.u16.Height())
		for y := range fr.u16.Height() {
			for _, v := range fr.u16.RowSlice(y) {
				out = binary.LittleEndian.AppendUint16(out, v)
			}
		}
	case fr.u8 != nil:
		out = make([]byte, 0, fr.u8.Width()*fr.u8.Height())
		for y := range fr.u8.Height() {
			out = append(out, fr.u8.RowSlice(y)...)
		}
	}
	return out
}
