// Command export renders every test case to PNG and PPM files.
// Run from the go-shape module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/shape"
	"seehuhn.de/go/shape/testcases"
)

const outDir = "testdata/output"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := render(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func render(tc testcases.TestCase, name string) error {
	pm := shape.NewPixmap(tc.Width, tc.Height, tc.Background)
	r := shape.NewRasteriser(pm.Extent())
	tc.Scene.Render(r, pm)

	if err := pm.SavePNG(filepath.Join(outDir, name+".png")); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".ppm"))
	if err != nil {
		return err
	}
	err = pm.WritePPM(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
