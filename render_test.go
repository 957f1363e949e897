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

package shape_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/testcases"
)

// TestAgainstReference renders each test case and compares the result
// with Ghostscript-rendered reference images, where available.  The
// references are produced by the genpdf command; cases which cannot be
// expressed as PDF fills have no reference and are skipped.
func TestAgainstReference(t *testing.T) {
	refDir := filepath.Join("testdata", "reference")
	if _, err := os.Stat(refDir); os.IsNotExist(err) {
		t.Skipf("no reference images; run go generate to create %s", refDir)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join(refDir, name+".png")
				ref, err := loadRGB(refPath)
				if os.IsNotExist(err) {
					t.Skip("no reference image for this case")
				}
				if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				pm := shape.NewPixmap(tc.Width, tc.Height, tc.Background)
				r := shape.NewRasteriser(pm.Extent())
				tc.Scene.Render(r, pm)
				actual := flattenRGB(pm)

				if err := compareImages(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// flattenRGB converts a pixmap to interleaved 8-bit RGB, ignoring
// opacity (the reference renderer writes opaque RGB).
func flattenRGB(pm *shape.Pixmap) []byte {
	w, h := pm.Width(), pm.Height()
	buf := make([]byte, 0, w*h*3)
	for y := range h {
		for x := range w {
			c := pm.At(x, y).NRGBA()
			buf = append(buf, c.R, c.G, c.B)
		}
	}
	return buf
}

func loadRGB(path string) (rgb []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgb = make([]byte, 0, w*h*3)
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			rgb = append(rgb, c.R, c.G, c.B)
		}
	}
	return rgb, nil
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := len(expected)
	if len(actual) != total {
		return fmt.Errorf("size mismatch: %d vs %d samples", total, len(actual))
	}

	// Collect all absolute channel differences
	diffs := make([]int, total)
	for i := range total {
		e, a := int(expected[i]), int(actual[i])
		diff := e - a
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}

	// Sort differences to compute percentiles
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	// Check criteria:
	// - at least 80% of samples are identical (p80 == 0)
	// - at least 95% of differences are < 64 (p95 < 64)
	// - at least 99% of differences are < 128 (p99 < 128)
	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage saves a 3-panel comparison (actual, diff, reference)
// to the debug directory for failed cases.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := (y*w + x) * 3

			// Left panel: actual output
			img.Set(x, y, color.NRGBA{R: actual[i], G: actual[i+1], B: actual[i+2], A: 255})

			// Middle panel: largest channel difference, green=under,
			// red=over, black=match
			under, over := 0, 0
			for c := range 3 {
				diff := int(expected[i+c]) - int(actual[i+c])
				if diff > 0 {
					under = max(under, diff)
				} else {
					over = max(over, -diff)
				}
			}
			img.Set(x+w, y, color.NRGBA{R: uint8(over), G: uint8(under), A: 255})

			// Right panel: reference
			img.Set(x+w*2, y, color.NRGBA{R: expected[i], G: expected[i+1], B: expected[i+2], A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// BenchmarkRasteriseAll measures steady-state performance by reusing a
// single Rasteriser and Pixmap per canvas size across all test cases.
func BenchmarkRasteriseAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	r := shape.NewRasteriser(rect.Rect{})
	emit := func(y, xMin int, coverage []float32) {}

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range cases {
			r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
			for _, s := range tc.Scene.Shapes() {
				r.Fill(s, emit)
			}
		}
	}
}
