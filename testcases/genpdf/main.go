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

// Command genpdf generates reference images for rasteriser tests.
// It creates PDFs from test cases and renders them to PNGs using
// Ghostscript.
//
// Only scenes built from opaque polygon and ellipse leaves can be
// expressed as PDF fills; test cases containing half-planes, boolean
// combinations, transformed shapes, or translucent colours are skipped.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if !pdfable(tc) {
				fmt.Printf("skipping %s (not expressible as PDF fills)\n", name)
				continue
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// pdfable reports whether every shape in the scene is an opaque
// polygon or ellipse leaf.
func pdfable(tc testcases.TestCase) bool {
	if tc.Background.A != 1 {
		return false
	}
	for _, s := range tc.Scene.Shapes() {
		switch s := s.(type) {
		case *shape.ConvexPolygon, *shape.Ellipse:
			if s.Color().A != 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Paint the background colour first.
	bg := tc.Background
	page.SetFillColor(color.DeviceRGB{bg.R, bg.G, bg.B})
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	for _, s := range tc.Scene.Shapes() {
		c := s.Color()
		page.SetFillColor(color.DeviceRGB{c.R, c.G, c.B})

		switch s := s.(type) {
		case *shape.ConvexPolygon:
			verts := s.Vertices()
			page.MoveTo(verts[0].X, verts[0].Y)
			for _, v := range verts[1:] {
				page.LineTo(v.X, v.Y)
			}
			page.ClosePath()
		case *shape.Ellipse:
			drawEllipse(page, s)
		}
		page.Fill()
	}

	return page.Close()
}

// drawEllipse approximates the ellipse with four cubic Bézier arcs of
// the unit circle, mapped through the ellipse's placement transform.
func drawEllipse(page *document.Page, s *shape.Ellipse) {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498

	c := s.Center()
	rx, ry := s.Radii()
	sc, err := shape.Scaling(rx, ry)
	if err != nil {
		panic(err)
	}
	t := shape.Translation(c.X, c.Y).Mul(shape.Rotation(s.Angle())).Mul(sc)

	// unit-circle control points, one quarter arc at a time
	pts := [][6]float64{
		{1, k, k, 1, 0, 1},
		{-k, 1, -1, k, -1, 0},
		{-1, -k, -k, -1, 0, -1},
		{k, -1, 1, -k, 1, 0},
	}

	start := t.Apply(vec.Vec2{X: 1})
	page.MoveTo(start.X, start.Y)
	for _, q := range pts {
		c1 := t.Apply(vec.Vec2{X: q[0], Y: q[1]})
		c2 := t.Apply(vec.Vec2{X: q[2], Y: q[3]})
		end := t.Apply(vec.Vec2{X: q[4], Y: q[5]})
		page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	page.ClosePath()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
