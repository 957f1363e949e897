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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Ellipse is the unit circle under an affine transform.  The distance
// bound is the exact unit-circle distance of the inverse-mapped point,
// scaled by the smaller radius; for a circle this is exact, for
// anisotropic radii it is conservative.
type Ellipse struct {
	t      Transform
	cx, cy float64
	rx, ry float64
	theta  float64
	bbox   rect.Rect
	dscale float64
	col    Color
}

// NewEllipse creates an ellipse with the given center, radii and
// rotation angle (radians, applied counter-clockwise).  Non-positive
// radii are reported as ErrDegenerate.
func NewEllipse(center vec.Vec2, rx, ry, theta float64, col Color) (*Ellipse, error) {
	if rx <= 0 || ry <= 0 {
		return nil, ErrDegenerate
	}

	sc, err := Scaling(rx, ry)
	if err != nil {
		return nil, ErrDegenerate
	}
	t := Translation(center.X, center.Y).Mul(Rotation(theta)).Mul(sc)

	// The i-th row of the linear part is the image of the i-th unit
	// vector; its length is the ellipse's extent along that axis.
	m := t.Matrix()
	ex := math.Hypot(m[0], m[2])
	ey := math.Hypot(m[1], m[3])

	return &Ellipse{
		t:  t,
		cx: center.X, cy: center.Y,
		rx: rx, ry: ry,
		theta: theta,
		bbox: rect.Rect{
			LLx: center.X - ex,
			LLy: center.Y - ey,
			URx: center.X + ex,
			URy: center.Y + ey,
		},
		dscale: t.MinStretch(),
		col:    col,
	}, nil
}

// Circle creates a circle, i.e. an ellipse with equal radii.
func Circle(center vec.Vec2, r float64, col Color) (*Ellipse, error) {
	return NewEllipse(center, r, r, 0, col)
}

// Center returns the center point.
func (s *Ellipse) Center() vec.Vec2 {
	return vec.Vec2{X: s.cx, Y: s.cy}
}

// Radii returns the two radii.
func (s *Ellipse) Radii() (rx, ry float64) {
	return s.rx, s.ry
}

// Angle returns the rotation angle in radians.
func (s *Ellipse) Angle() float64 {
	return s.theta
}

// Contains tests the inverse-mapped point against the unit circle.
func (s *Ellipse) Contains(p vec.Vec2) bool {
	q := s.t.ApplyInverse(p)
	return q.X*q.X+q.Y*q.Y <= 1
}

// SignedDistanceBound returns a conservative signed distance to the
// ellipse's boundary, negative inside.
func (s *Ellipse) SignedDistanceBound(p vec.Vec2) float64 {
	q := s.t.ApplyInverse(p)
	// |q|−1 is the exact signed distance to the unit circle; scaling by
	// the minimum stretch of the placement transform keeps it valid
	// after mapping.
	return (math.Hypot(q.X, q.Y) - 1) * s.dscale
}

// BoundingBox returns the enclosing box of the rotated ellipse.
func (s *Ellipse) BoundingBox() rect.Rect {
	return s.bbox
}

// Color returns the fill colour.
func (s *Ellipse) Color() Color {
	return s.col
}
