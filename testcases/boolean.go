package testcases

import "seehuhn.de/go/shape"

// The "boolean" category exercises the set-operation combinators on
// small canvases.

var booleanCases = []TestCase{
	{
		Name:       "union",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Union(
				circle(26, 32, 18, shape.White),
				circle(38, 32, 18, shape.White),
			),
		),
	},
	{
		Name:       "intersection",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Intersect(
				circle(26, 32, 18, shape.White),
				circle(38, 32, 18, shape.White),
			),
		),
	},
	{
		Name:       "subtraction",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Subtract(
				circle(32, 32, 22, shape.White),
				circle(40, 32, 16, shape.White),
			),
		),
	},
	{
		Name:       "ring",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Subtract(
				circle(32, 32, 24, shape.White),
				circle(32, 32, 14, shape.White),
			),
		),
	},
	{
		Name:       "polygon_clip",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Intersect(
				circle(32, 32, 24, shape.White),
				rectangle(10, 10, 54, 32, shape.White),
			),
		),
	},
	{
		Name:       "halfplane_cut",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Intersect(
				circle(32, 32, 24, shape.White),
				halfPlane(1, 1, -64, shape.White),
			),
		),
	},
}
