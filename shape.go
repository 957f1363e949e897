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

// Package shape implements an implicit-shape rasteriser.
//
// Shapes are described not by their outlines but by two queries: a
// containment test and a conservative lower bound on the distance to the
// shape's boundary.  The rasteriser uses the bound to resolve whole runs
// of uniformly-inside or uniformly-outside pixels with a single query,
// and falls back to supersampling only for pixels the bound cannot
// decide.  Empty-space skipping and anti-aliasing thus share one test.
//
// Primitive shapes are half-planes, convex polygons and ellipses.
// Shapes compose by boolean operations (union, intersection,
// subtraction) and affine transformation; every composition preserves
// the bound contract.
package shape

//go:generate go run ./testcases/genpdf

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is an implicitly-defined region of the plane.
//
// Shapes are immutable once constructed.  Composing shapes produces new
// Shape values and never mutates the operands, so a Shape may appear in
// several compositions at once.
type Shape interface {
	// Contains reports whether p lies in the shape's interior.
	// Boundary membership is unspecified, but the result is always
	// consistent with the sign of SignedDistanceBound.
	Contains(p vec.Vec2) bool

	// SignedDistanceBound returns a value whose magnitude never exceeds
	// the true distance from p to the shape's boundary.  The sign is
	// negative (or zero) when Contains(p) holds and positive otherwise.
	// Zero is always a valid, if unhelpful, bound.
	SignedDistanceBound(p vec.Vec2) float64

	// BoundingBox returns an axis-aligned box outside which the shape is
	// guaranteed to be empty.  Unbounded shapes return an infinite box.
	BoundingBox() rect.Rect

	// Color returns the colour the shape is painted with.
	// Combinators report the colour of their first operand.
	Color() Color
}
