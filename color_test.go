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
	"image/color"
	"math"
	"testing"
)

func colorNear(a, b Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestOver(t *testing.T) {
	cases := []struct {
		name     string
		src, dst Color
		coverage float64
		want     Color
	}{
		{"opaque full", Red, White, 1, Red},
		{"opaque none", Red, White, 0, White},
		{"opaque half", White, Black, 0.5, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"translucent full", RGBA(1, 0, 0, 0.5), White, 1,
			Color{R: 1, G: 0.5, B: 0.5, A: 1}},
		{"transparent src", Transparent, Green, 1, Green},
		{"onto transparent", RGBA(0, 0, 1, 0.5), Transparent, 1,
			Color{B: 0.5, A: 0.5}},
	}
	for _, c := range cases {
		if got := c.src.Over(c.dst, c.coverage); !colorNear(got, c.want, 1e-12) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

// TestOverCoverageScaling checks that coverage and opacity enter the
// blend symmetrically: half coverage of an opaque colour equals full
// coverage at half opacity.
func TestOverCoverageScaling(t *testing.T) {
	dst := RGB(0.2, 0.4, 0.6)
	a := RGB(1, 0, 0).Over(dst, 0.5)
	b := RGBA(1, 0, 0, 0.5).Over(dst, 1)
	if !colorNear(a, b, 1e-12) {
		t.Errorf("half coverage %v != half opacity %v", a, b)
	}
}

func TestNRGBA(t *testing.T) {
	cases := []struct {
		c    Color
		want color.NRGBA
	}{
		{White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{Black, color.NRGBA{A: 255}},
		{RGBA(0.5, 0, 1, 0.5), color.NRGBA{R: 128, B: 255, A: 128}},
		{Color{R: 2, G: -1, B: 0, A: 1}, color.NRGBA{R: 255, A: 255}}, // clamped
	}
	for _, c := range cases {
		if got := c.c.NRGBA(); got != c.want {
			t.Errorf("NRGBA(%v) = %v, want %v", c.c, got, c.want)
		}
	}
}
