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

import "image/color"

// Color is an RGB colour with an opacity, all channels in [0, 1].
// Color is an immutable value type.
type Color struct {
	R, G, B, A float64
}

// RGB returns a fully opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a colour with the given opacity.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Over composites c onto dst using source-over blending, with the
// source weighted by coverage in [0, 1]:
//
//	out = c·(coverage·c.A) + dst·(1 − coverage·c.A)
//
// Blending with zero coverage or zero opacity leaves dst unchanged.
func (c Color) Over(dst Color, coverage float64) Color {
	w := coverage * c.A
	return Color{
		R: c.R*w + dst.R*(1-w),
		G: c.G*w + dst.G*(1-w),
		B: c.B*w + dst.B*(1-w),
		A: w + dst.A*(1-w),
	}
}

// NRGBA converts the colour to the standard library's 8-bit
// non-premultiplied representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: quantise(c.R),
		G: quantise(c.G),
		B: quantise(c.B),
		A: quantise(c.A),
	}
}

func quantise(x float64) uint8 {
	v := int(x*255 + 0.5)
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Colours used by the example scenes.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Transparent = RGBA(0, 0, 0, 0)
)
