// seehuhn.de/go/shape - a 2D shape rasterisation library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shape

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"seehuhn.de/go/geom/rect"
)

// Pixmap is a fixed-size grid of colours, stored row-major.  It is the
// compositing target of a draw pass; the rasteriser's clipping
// guarantees that no write falls outside the grid, but Blend and
// SetPixel tolerate out-of-range coordinates anyway.
type Pixmap struct {
	width  int
	height int
	pix    []Color
}

// NewPixmap creates a pixmap filled with the background colour.
func NewPixmap(width, height int, background Color) *Pixmap {
	pix := make([]Color, width*height)
	for i := range pix {
		pix[i] = background
	}
	return &Pixmap{width: width, height: height, pix: pix}
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Extent returns the pixmap's device region, for use as a rasteriser
// clip rectangle.
func (p *Pixmap) Extent() rect.Rect {
	return rect.Rect{URx: float64(p.width), URy: float64(p.height)}
}

// At returns the colour of a single pixel, or Transparent outside the
// grid.
func (p *Pixmap) At(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return p.pix[y*p.width+x]
}

// SetPixel overwrites a single pixel.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// Blend composites c over a single pixel at the given coverage.
func (p *Pixmap) Blend(x, y int, c Color, coverage float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := y*p.width + x
	p.pix[i] = c.Over(p.pix[i], coverage)
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for y := range p.height {
		for x := range p.width {
			img.SetRGBA(x, y, toRGBA(p.pix[y*p.width+x]))
		}
	}
	return img
}

// WritePPM writes the pixmap in plain-text PPM format (P3), ignoring
// opacity.
func (p *Pixmap) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", p.width, p.height)
	for y := range p.height {
		for x := range p.width {
			c := p.pix[y*p.width+x]
			fmt.Fprintf(bw, "%d %d %d\n",
				quantise(c.R), quantise(c.G), quantise(c.B))
		}
	}
	return bw.Flush()
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, p.ToImage())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// toRGBA converts to the premultiplied 8-bit representation used by
// image.RGBA.
func toRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: quantise(c.R * c.A),
		G: quantise(c.G * c.A),
		B: quantise(c.B * c.A),
		A: quantise(c.A),
	}
}
