package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/shape"
)

// The "fill" category holds small single-shape scenes, used for
// reference-image comparison.  All shapes are opaque polygons or
// ellipses so that PDF reference images can be generated for them.

var fillCases = []TestCase{
	{
		Name:       "triangle",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			polygon(shape.White, pt(10, 50), pt(32, 10), pt(54, 50)),
		),
	},
	{
		Name:       "rectangle",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			rectangle(10, 10, 44, 44, shape.White),
		),
	},
	{
		Name:       "hexagon",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			regularPolygon(32, 32, 25, 6, shape.White),
		),
	},
	{
		Name:       "circle",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			circle(32, 32, 25, shape.White),
		),
	},
	{
		Name:       "ellipse_rotated",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			ellipse(32, 32, 28, 12, math.Pi/5, shape.White),
		),
	},
	{
		Name:       "thin_diagonal",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			segment(4, 60, 60, 4, 3, shape.White),
		),
	},
}

// regularPolygon builds a regular n-gon inscribed in a circle.
func regularPolygon(cx, cy, r float64, n int, col shape.Color) *shape.ConvexPolygon {
	verts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		verts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return polygon(col, verts...)
}
