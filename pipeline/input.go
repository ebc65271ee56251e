package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/nucleusforce/force"
	"github.com/katalvlaran/nucleusforce/grid"
	"github.com/katalvlaran/nucleusforce/imaging"
)

// BoundaryColors names the three colors of an unmarked segmentation.
type BoundaryColors struct {
	Background, Cell, Nucleus imaging.RGB
}

// MarkedColors names the colors of a segmentation whose force origins were
// painted by hand. Pixels of any other color are background.
type MarkedColors struct {
	Cell, Nucleus, Origin imaging.RGB
}

// FromBoundaryImage builds an Input seeded on the cell boundary. The image
// must hold exactly the three given colors. Nucleus pixels are counted as cell.
func FromBoundaryImage(cm *imaging.ColorMap, colors BoundaryColors, method force.Method) (Input, error) {
	err := cm.Recolor(map[imaging.RGB]int{
		colors.Background: 0,
		colors.Cell:       1,
		colors.Nucleus:    2,
	})
	if err != nil {
		return Input{}, err
	}
	cell, err := cm.Isolate(colors.Cell)
	if err != nil {
		return Input{}, err
	}
	nucleus, err := cm.Isolate(colors.Nucleus)
	if err != nil {
		return Input{}, err
	}
	// The nucleus color is painted over the cell body; the propagators expect
	// nucleus pixels inside the cell mask.
	cell, err = grid.Union(cell, nucleus)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:    inputName(cm.Source()),
		Cell:    cell,
		Nucleus: nucleus,
		Method:  method,
	}, nil
}

// FromMarkedImage builds an Input seeded on the hand-marked origin pixels.
// Nucleus and origin pixels are counted as cell.
func FromMarkedImage(cm *imaging.ColorMap, colors MarkedColors, method force.Method) (Input, error) {
	cell, err := cm.Isolate(colors.Cell)
	if err != nil {
		return Input{}, err
	}
	nucleus, err := cm.Isolate(colors.Nucleus)
	if err != nil {
		return Input{}, err
	}
	origins, err := cm.Isolate(colors.Origin)
	if err != nil {
		return Input{}, err
	}
	if origins.Count() == 0 {
		return Input{}, fmt.Errorf("pipeline %s: no pixels of origin color %s", cm.Source(), colors.Origin)
	}

	fixed, seed, err := imaging.Normalize(cell, nucleus, origins)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:    inputName(cm.Source()),
		Cell:    fixed,
		Nucleus: nucleus,
		Seed:    seed,
		Method:  method,
	}, nil
}

// inputName is the file name without directory or extension.
func inputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UniqueNames returns an output name for every path: the file name without
// extension, with "-2", "-3", ... appended to repeats in path order.
func UniqueNames(paths []string) []string {
	taken := make(map[string]bool, len(paths))
	for _, p := range paths {
		taken[inputName(p)] = true
	}

	seen := make(map[string]bool, len(paths))
	out := make([]string, len(paths))
	for i, p := range paths {
		name := inputName(p)
		if seen[name] {
			base := name
			for k := 2; taken[name]; k++ {
				name = fmt.Sprintf("%s-%d", base, k)
			}
			taken[name] = true
		}
		seen[name] = true
		out[i] = name
	}
	return out
}
