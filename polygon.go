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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ConvexPolygon is the intersection of the half-planes spanned by its
// edges.  The distance bound is the most conservative of the edges'
// exact line distances; it degenerates to zero for points on the
// infinite extension of an edge, which costs supersampling work there
// but never correctness.
type ConvexPolygon struct {
	verts []vec.Vec2
	edges []HalfPlane
	bbox  rect.Rect
	col   Color
}

// NewConvexPolygon creates a convex polygon from its vertices, given in
// either winding order.  Fewer than three vertices, or vertices with
// zero enclosed area, are reported as ErrDegenerate.  The vertex slice
// is copied; the caller may reuse it.
//
// The vertices must describe a convex outline.  For a non-convex
// outline the containment test silently becomes the intersection of the
// edge half-planes, i.e. the convex kernel of the outline.
func NewConvexPolygon(vertices []vec.Vec2, col Color) (*ConvexPolygon, error) {
	if len(vertices) < 3 {
		return nil, ErrDegenerate
	}

	verts := slices.Clone(vertices)

	// Shoelace formula.  A negative area means the vertices are wound
	// the other way round; reverse so that the interior is to the left
	// of each directed edge.
	area := 0.0
	for i, p := range verts {
		q := verts[(i+1)%len(verts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return nil, ErrDegenerate
	}
	if area < 0 {
		slices.Reverse(verts)
	}

	edges := make([]HalfPlane, len(verts))
	for i, p := range verts {
		q := verts[(i+1)%len(verts)]
		h, err := HalfPlaneThrough(p, q, col)
		if err != nil {
			return nil, err
		}
		edges[i] = *h
	}

	return &ConvexPolygon{
		verts: verts,
		edges: edges,
		bbox:  boxAround(verts),
		col:   col,
	}, nil
}

// Rectangle creates the axis-aligned rectangle with corners ll and ur.
func Rectangle(ll, ur vec.Vec2, col Color) (*ConvexPolygon, error) {
	return NewConvexPolygon([]vec.Vec2{
		ll,
		{X: ur.X, Y: ll.Y},
		ur,
		{X: ll.X, Y: ur.Y},
	}, col)
}

// LineSegment creates a thin rectangle of the given width along the
// segment from p to q.  Coincident endpoints or a non-positive width
// are reported as ErrDegenerate.
func LineSegment(p, q vec.Vec2, width float64, col Color) (*ConvexPolygon, error) {
	d := q.Sub(p)
	length := d.Length()
	if length == 0 || width <= 0 {
		return nil, ErrDegenerate
	}
	// unit normal, scaled to half the width
	n := vec.Vec2{X: -d.Y / length, Y: d.X / length}.Mul(width / 2)
	return NewConvexPolygon([]vec.Vec2{
		p.Add(n),
		p.Sub(n),
		q.Sub(n),
		q.Add(n),
	}, col)
}

// Vertices returns the polygon's vertices in left-winding order.
// The returned slice must not be modified.
func (s *ConvexPolygon) Vertices() []vec.Vec2 {
	return s.verts
}

// Contains reports whether p lies inside all edge half-planes.
func (s *ConvexPolygon) Contains(p vec.Vec2) bool {
	for i := range s.edges {
		if !s.edges[i].Contains(p) {
			return false
		}
	}
	return true
}

// SignedDistanceBound returns the smallest of the edges' exact line
// distances, signed by containment.
func (s *ConvexPolygon) SignedDistanceBound(p vec.Vec2) float64 {
	bound := math.Inf(1)
	inside := true
	for i := range s.edges {
		d := s.edges[i].SignedDistanceBound(p)
		if d > 0 {
			inside = false
		}
		bound = min(bound, math.Abs(d))
	}
	if inside {
		return -bound
	}
	return bound
}

// BoundingBox returns the tight axis-aligned hull of the vertices.
func (s *ConvexPolygon) BoundingBox() rect.Rect {
	return s.bbox
}

// Color returns the fill colour.
func (s *ConvexPolygon) Color() Color {
	return s.col
}
