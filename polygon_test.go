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
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

var unitSquare = []vec.Vec2{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}}

func TestPolygonContains(t *testing.T) {
	poly, err := NewConvexPolygon(unitSquare, White)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		p    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 5, Y: 5}, true},
		{vec.Vec2{X: 0, Y: 0}, true},  // vertex
		{vec.Vec2{X: 5, Y: 10}, true}, // edge
		{vec.Vec2{X: 11, Y: 5}, false},
		{vec.Vec2{X: 5, Y: -0.01}, false},
		{vec.Vec2{X: -3, Y: 15}, false},
	}
	for _, c := range cases {
		if got := poly.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

// TestPolygonWinding checks that both vertex orders describe the same
// polygon.
func TestPolygonWinding(t *testing.T) {
	ccw, err := NewConvexPolygon(unitSquare, White)
	if err != nil {
		t.Fatal(err)
	}
	rev := slices.Clone(unitSquare)
	slices.Reverse(rev)
	cw, err := NewConvexPolygon(rev, White)
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		p := vec.Vec2{X: rng.Float64()*20 - 5, Y: rng.Float64()*20 - 5}
		if ccw.Contains(p) != cw.Contains(p) {
			t.Fatalf("windings disagree at %v", p)
		}
	}
}

func TestPolygonDegenerate(t *testing.T) {
	cases := [][]vec.Vec2{
		{},
		{{X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 2, Y: 2}},
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, // collinear
	}
	for _, verts := range cases {
		if _, err := NewConvexPolygon(verts, White); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%d collinear/missing vertices: err = %v, want ErrDegenerate",
				len(verts), err)
		}
	}
}

// TestPolygonBound verifies the bound contract against the exact
// distance to the polygon outline, computed by brute force over the
// boundary segments.
func TestPolygonBound(t *testing.T) {
	shapes := map[string][]vec.Vec2{
		"square":   unitSquare,
		"triangle": {{X: 2, Y: 1}, {X: 9, Y: 3}, {X: 4, Y: 8}},
		"hexagon": {
			{X: 8, Y: 4}, {X: 6, Y: 7.46}, {X: 2, Y: 7.46},
			{X: 0, Y: 4}, {X: 2, Y: 0.54}, {X: 6, Y: 0.54},
		},
	}

	rng := rand.New(rand.NewPCG(7, 8))
	for name, verts := range shapes {
		poly, err := NewConvexPolygon(verts, White)
		if err != nil {
			t.Fatal(err)
		}
		for range 500 {
			p := vec.Vec2{X: rng.Float64()*24 - 7, Y: rng.Float64()*24 - 7}
			bound := poly.SignedDistanceBound(p)
			exact := outlineDistance(verts, p)
			inside := poly.Contains(p)

			if math.Abs(bound) > exact+1e-9 {
				t.Fatalf("%s: bound %g overestimates distance %g at %v",
					name, bound, exact, p)
			}
			if inside && bound > 0 || !inside && bound < 0 {
				t.Fatalf("%s: bound %g has wrong sign at %v (inside=%v)",
					name, bound, p, inside)
			}
		}
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	poly, err := NewConvexPolygon([]vec.Vec2{
		{X: 2, Y: 1}, {X: 9, Y: 3}, {X: 4, Y: 8},
	}, White)
	if err != nil {
		t.Fatal(err)
	}
	bb := poly.BoundingBox()
	if bb.LLx != 2 || bb.LLy != 1 || bb.URx != 9 || bb.URy != 8 {
		t.Errorf("bounding box = %v, want [2, 1, 9, 8]", bb)
	}
}

func TestRectangle(t *testing.T) {
	r, err := Rectangle(vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 5, Y: 4}, Red)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Contains(vec.Vec2{X: 3, Y: 3}) {
		t.Error("center should be inside")
	}
	if r.Contains(vec.Vec2{X: 3, Y: 4.5}) {
		t.Error("point above should be outside")
	}
	if r.Color() != Red {
		t.Errorf("colour = %v, want Red", r.Color())
	}
}

func TestLineSegment(t *testing.T) {
	p := vec.Vec2{X: 0, Y: 0}
	q := vec.Vec2{X: 10, Y: 0}
	seg, err := LineSegment(p, q, 2, White)
	if err != nil {
		t.Fatal(err)
	}

	if !seg.Contains(vec.Vec2{X: 5, Y: 0.9}) {
		t.Error("point within half-width should be inside")
	}
	if seg.Contains(vec.Vec2{X: 5, Y: 1.1}) {
		t.Error("point beyond half-width should be outside")
	}
	if seg.Contains(vec.Vec2{X: -0.5, Y: 0}) {
		t.Error("point beyond the endpoint should be outside")
	}

	if _, err := LineSegment(p, p, 2, White); !errors.Is(err, ErrDegenerate) {
		t.Errorf("coincident endpoints: err = %v, want ErrDegenerate", err)
	}
	if _, err := LineSegment(p, q, 0, White); !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero width: err = %v, want ErrDegenerate", err)
	}
}

// outlineDistance returns the exact distance from p to the closed
// polygonal outline.
func outlineDistance(verts []vec.Vec2, p vec.Vec2) float64 {
	d := math.Inf(1)
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		d = min(d, segmentDistance(a, b, p))
	}
	return d
}

func segmentDistance(a, b, p vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (ab.X*ab.X + ab.Y*ab.Y)
	t = max(0, min(1, t))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}
