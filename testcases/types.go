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

// Package testcases defines example scenes for the shape rasteriser.
// The scenes serve as rendering tests and as the demo images produced
// by the export command.
package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string       // lowercase a-z and _ only
	Width      int          // canvas width in pixels
	Height     int          // canvas height in pixels
	Background shape.Color  // canvas colour before drawing
	Scene      *shape.Scene // the shapes to render, in draw order
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// The scene builders below panic on constructor errors; all inputs are
// literals, so an error is a bug in the test data.

func polygon(col shape.Color, verts ...vec.Vec2) *shape.ConvexPolygon {
	s, err := shape.NewConvexPolygon(verts, col)
	if err != nil {
		panic(err)
	}
	return s
}

func rectangle(x1, y1, x2, y2 float64, col shape.Color) *shape.ConvexPolygon {
	s, err := shape.Rectangle(pt(x1, y1), pt(x2, y2), col)
	if err != nil {
		panic(err)
	}
	return s
}

func segment(x1, y1, x2, y2, width float64, col shape.Color) *shape.ConvexPolygon {
	s, err := shape.LineSegment(pt(x1, y1), pt(x2, y2), width, col)
	if err != nil {
		panic(err)
	}
	return s
}

func circle(cx, cy, r float64, col shape.Color) *shape.Ellipse {
	s, err := shape.Circle(pt(cx, cy), r, col)
	if err != nil {
		panic(err)
	}
	return s
}

func ellipse(cx, cy, rx, ry, theta float64, col shape.Color) *shape.Ellipse {
	s, err := shape.NewEllipse(pt(cx, cy), rx, ry, theta, col)
	if err != nil {
		panic(err)
	}
	return s
}

func halfPlane(a, b, c float64, col shape.Color) *shape.HalfPlane {
	s, err := shape.NewHalfPlane(a, b, c, col)
	if err != nil {
		panic(err)
	}
	return s
}

func scaling(sx, sy float64) shape.Transform {
	t, err := shape.Scaling(sx, sy)
	if err != nil {
		panic(err)
	}
	return t
}
