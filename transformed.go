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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// transformed applies an affine transform to an inner shape.  Queries
// map the point back into the inner shape's space; the distance bound
// is scaled by the transform's minimum stretch so that it stays valid
// in the outer space.
type transformed struct {
	inner  Shape
	t      Transform
	dscale float64
}

// Transformed returns s mapped through the transform t.
func Transformed(s Shape, t Transform) Shape {
	return &transformed{
		inner:  s,
		t:      t,
		dscale: t.MinStretch(),
	}
}

func (s *transformed) Contains(p vec.Vec2) bool {
	return s.inner.Contains(s.t.ApplyInverse(p))
}

func (s *transformed) SignedDistanceBound(p vec.Vec2) float64 {
	// A ball of radius b around the source point maps to a region that
	// reaches at least b·σmin from p in every direction, so the scaled
	// bound cannot overestimate.
	return s.inner.SignedDistanceBound(s.t.ApplyInverse(p)) * s.dscale
}

func (s *transformed) BoundingBox() rect.Rect {
	inner := s.inner.BoundingBox()
	if isUnbounded(inner) {
		// Mapping infinite corners would produce NaNs.
		return unboundedBox()
	}
	corners := []vec.Vec2{
		s.t.Apply(vec.Vec2{X: inner.LLx, Y: inner.LLy}),
		s.t.Apply(vec.Vec2{X: inner.URx, Y: inner.LLy}),
		s.t.Apply(vec.Vec2{X: inner.URx, Y: inner.URy}),
		s.t.Apply(vec.Vec2{X: inner.LLx, Y: inner.URy}),
	}
	return boxAround(corners)
}

func (s *transformed) Color() Color {
	return s.inner.Color()
}
