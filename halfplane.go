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
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrDegenerate is returned when a shape constructor is given geometry
// with no usable interior (zero normal, too few vertices, zero radius).
var ErrDegenerate = errors.New("degenerate shape")

// HalfPlane is the set of points with a·x + b·y + c ≤ 0.  The normal
// (a, b) is kept at unit length, so the raw line expression is the
// exact signed distance.  This is the only shape whose distance bound
// is exact rather than merely conservative.
type HalfPlane struct {
	a, b, c float64
	col     Color
}

// NewHalfPlane creates the half-plane a·x + b·y + c ≤ 0.  The
// coefficients need not be normalised.  A zero normal (a, b) is
// reported as ErrDegenerate.
func NewHalfPlane(a, b, c float64, col Color) (*HalfPlane, error) {
	n := math.Hypot(a, b)
	if n == 0 {
		return nil, ErrDegenerate
	}
	return &HalfPlane{a: a / n, b: b / n, c: c / n, col: col}, nil
}

// HalfPlaneThrough creates the half-plane whose boundary passes through
// p and q and whose interior lies to the left of the direction p→q.
// Coincident points are reported as ErrDegenerate.
func HalfPlaneThrough(p, q vec.Vec2, col Color) (*HalfPlane, error) {
	d := q.Sub(p)
	return NewHalfPlane(d.Y, -d.X, -d.Y*p.X+d.X*p.Y, col)
}

// Contains reports whether p lies in the half-plane.
func (h *HalfPlane) Contains(p vec.Vec2) bool {
	return h.a*p.X+h.b*p.Y+h.c <= 0
}

// SignedDistanceBound returns the exact signed distance from p to the
// boundary line, negative inside.
func (h *HalfPlane) SignedDistanceBound(p vec.Vec2) float64 {
	return h.a*p.X + h.b*p.Y + h.c
}

// BoundingBox returns an infinite box; a half-plane has no finite
// extent.
func (h *HalfPlane) BoundingBox() rect.Rect {
	return unboundedBox()
}

// Color returns the fill colour.
func (h *HalfPlane) Color() Color {
	return h.col
}
