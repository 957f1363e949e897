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

import "seehuhn.de/go/shape"

// The "transform" category exercises TransformedShape with the builder
// transforms and their compositions.

var transformCases = []TestCase{
	{
		Name:       "scale_2x",
		Width:      128,
		Height:     128,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Transformed(
				rectangle(0, 0, 20, 20, shape.White),
				shape.Translation(24, 24).Mul(scaling(2, 2)),
			),
		),
	},
	{
		Name:       "scale_half",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Transformed(
				rectangle(0, 0, 80, 80, shape.White),
				shape.Translation(12, 12).Mul(scaling(0.5, 0.5)),
			),
		),
	},
	{
		Name:       "rotate_45",
		Width:      64,
		Height:     64,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Transformed(
				rectangle(-15, -15, 15, 15, shape.White),
				shape.Translation(32, 32).Mul(shape.RotationDeg(45)),
			),
		),
	},
	{
		Name:       "rotate_scale",
		Width:      128,
		Height:     128,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Transformed(
				rectangle(-10, -10, 10, 10, shape.White),
				shape.Translation(64, 64).
					Mul(shape.RotationDeg(30)).
					Mul(scaling(3, 1.5)),
			),
		),
	},
	{
		Name:       "anisotropic_circle",
		Width:      128,
		Height:     128,
		Background: shape.Black,
		Scene: shape.NewScene(
			shape.Transformed(
				circle(0, 0, 20, shape.White),
				shape.Translation(64, 64).Mul(scaling(2.5, 1)),
			),
		),
	},
}
