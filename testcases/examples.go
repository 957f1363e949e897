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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/shape"
)

// The "examples" category holds full-size demo scenes: translucent
// primitives, a De Stijl composition, boolean combinations, and
// transformed shapes.

var exampleCases = []TestCase{
	{
		Name:       "e1",
		Width:      512,
		Height:     512,
		Background: shape.White,
		Scene:      e1(),
	},
	{
		Name:       "destijl",
		Width:      512,
		Height:     512,
		Background: shape.White,
		Scene:      deStijl(),
	},
	{
		Name:       "e2",
		Width:      512,
		Height:     512,
		Background: shape.White,
		Scene:      e2(),
	},
	{
		Name:       "e3",
		Width:      512,
		Height:     512,
		Background: shape.White,
		Scene:      e3(),
	},
}

// e1 overlaps three translucent circles, exercising alpha compositing.
func e1() *shape.Scene {
	const r = 120
	const a = 0.6
	return shape.NewScene(
		circle(216, 200, r, shape.RGBA(1, 0, 0, a)),
		circle(296, 200, r, shape.RGBA(0, 1, 0, a)),
		circle(256, 280, r, shape.RGBA(0, 0, 1, a)),
	)
}

// deStijl builds a Mondrian-style composition from opaque rectangles
// and black dividing lines.
func deStijl() *shape.Scene {
	sc := shape.NewScene(
		rectangle(0, 0, 160, 160, shape.Red),
		rectangle(416, 0, 512, 96, shape.Blue),
		rectangle(0, 416, 96, 512, shape.Yellow),
		rectangle(416, 416, 512, 512, shape.RGB(0.9, 0.9, 0.85)),
	)
	const w = 12
	sc.Add(
		segment(160, 0, 160, 512, w, shape.Black),
		segment(416, 0, 416, 512, w, shape.Black),
		segment(0, 160, 512, 160, w, shape.Black),
		segment(0, 416, 512, 416, w, shape.Black),
		segment(416, 96, 512, 96, w, shape.Black),
		segment(0, 96, 160, 96, w, shape.Black),
	)
	return sc
}

// e2 demonstrates the boolean combinators: a lens, a ring, and a
// rounded plaque with a bite taken out.
func e2() *shape.Scene {
	lens := shape.Intersect(
		circle(140, 130, 80, shape.RGBA(0.8, 0.1, 0.1, 0.9)),
		circle(220, 130, 80, shape.Red),
	)
	ring := shape.Subtract(
		circle(370, 140, 90, shape.Blue),
		circle(370, 140, 55, shape.White),
	)
	plaque := shape.Subtract(
		shape.Union(
			rectangle(100, 320, 412, 440, shape.RGB(0.1, 0.6, 0.2)),
			circle(100, 380, 60, shape.RGB(0.1, 0.6, 0.2)),
		),
		circle(412, 380, 70, shape.White),
	)
	return shape.NewScene(lens, ring, plaque)
}

// e3 demonstrates transformed shapes: a ring of rotated squares around
// a sheared ellipse.
func e3() *shape.Scene {
	sc := shape.NewScene()

	square := rectangle(-40, -40, 40, 40, shape.RGBA(0.2, 0.2, 0.7, 0.8))
	const n = 8
	for i := range n {
		theta := float64(i) * 2 * math.Pi / n
		t := shape.Translation(256, 256).
			Mul(shape.Rotation(theta)).
			Mul(shape.Translation(170, 0)).
			Mul(shape.Rotation(theta / 2))
		sc.Add(shape.Transformed(square, t))
	}

	shear, err := shape.NewTransform(matrix.Matrix{1, 0, 0.4, 1, 256, 256})
	if err != nil {
		panic(err)
	}
	inner := ellipse(0, 0, 110, 60, math.Pi/6, shape.RGBA(0.9, 0.5, 0.1, 0.9))
	sc.Add(shape.Transformed(inner, shear))

	return sc
}
