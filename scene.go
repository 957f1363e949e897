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

// Scene is an ordered list of shapes.  Rendering draws the shapes in
// insertion order, so later shapes paint over earlier ones (painter's
// algorithm).  There is no depth or occlusion model beyond draw order.
type Scene struct {
	shapes []Shape
}

// NewScene creates a scene containing the given shapes.
func NewScene(shapes ...Shape) *Scene {
	return &Scene{shapes: shapes}
}

// Add appends shapes to the scene, after all shapes added so far.
func (sc *Scene) Add(shapes ...Shape) {
	sc.shapes = append(sc.shapes, shapes...)
}

// Shapes returns the shapes in draw order.
// The returned slice must not be modified.
func (sc *Scene) Shapes() []Shape {
	return sc.shapes
}

// Render draws the scene into dst in insertion order.
func (sc *Scene) Render(r *Rasteriser, dst *Pixmap) {
	for _, s := range sc.shapes {
		r.Draw(s, dst)
	}
}
