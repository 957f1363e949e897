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

// unboundedBox returns the infinite box used by shapes without finite
// extent.  The rasteriser clips every bounding box against its Clip
// rectangle, so the infinities never reach pixel arithmetic.
func unboundedBox() rect.Rect {
	return rect.Rect{
		LLx: math.Inf(-1),
		LLy: math.Inf(-1),
		URx: math.Inf(1),
		URy: math.Inf(1),
	}
}

// isUnbounded reports whether b extends to infinity in any direction.
func isUnbounded(b rect.Rect) bool {
	return math.IsInf(b.LLx, -1) || math.IsInf(b.LLy, -1) ||
		math.IsInf(b.URx, 1) || math.IsInf(b.URy, 1)
}

// boxUnion returns the smallest box containing both a and b.
func boxUnion(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// boxAround returns the smallest box containing all points.
// The points slice must be non-empty.
func boxAround(points []vec.Vec2) rect.Rect {
	b := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}
