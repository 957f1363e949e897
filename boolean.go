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

// boolOp identifies a boolean set operation.
type boolOp int

const (
	opUnion boolOp = iota
	opIntersect
	opSubtract
)

// boolean combines two shapes with a set operation.  The combined
// boundary is a subset of the union of the operands' boundaries, so the
// smaller of the two operand bounds is a valid bound for the result,
// whatever the operation.  The sign always comes from the combined
// containment test; near operation-specific boundary features this is
// more conservative than necessary, which costs supersampling work but
// never correctness.
type boolean struct {
	op   boolOp
	a, b Shape
}

// Union returns the shape containing the points of a or b.
// The combined shape is painted in a's colour.
func Union(a, b Shape) Shape {
	return &boolean{op: opUnion, a: a, b: b}
}

// Intersect returns the shape containing the points of both a and b.
// The combined shape is painted in a's colour.
func Intersect(a, b Shape) Shape {
	return &boolean{op: opIntersect, a: a, b: b}
}

// Subtract returns the shape containing the points of a outside b.
// The combined shape is painted in a's colour.
func Subtract(a, b Shape) Shape {
	return &boolean{op: opSubtract, a: a, b: b}
}

func (s *boolean) Contains(p vec.Vec2) bool {
	switch s.op {
	case opUnion:
		return s.a.Contains(p) || s.b.Contains(p)
	case opIntersect:
		return s.a.Contains(p) && s.b.Contains(p)
	default: // opSubtract
		return s.a.Contains(p) && !s.b.Contains(p)
	}
}

func (s *boolean) SignedDistanceBound(p vec.Vec2) float64 {
	bound := min(
		math.Abs(s.a.SignedDistanceBound(p)),
		math.Abs(s.b.SignedDistanceBound(p)),
	)
	if s.Contains(p) {
		return -bound
	}
	return bound
}

func (s *boolean) BoundingBox() rect.Rect {
	switch s.op {
	case opUnion:
		return boxUnion(s.a.BoundingBox(), s.b.BoundingBox())
	default:
		// Intersection and subtraction only remove points from a.
		return s.a.BoundingBox()
	}
}

func (s *boolean) Color() Color {
	return s.a.Color()
}
