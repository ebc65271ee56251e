package force

import (
	"github.com/katalvlaran/nucleusforce/boundary"
	"github.com/katalvlaran/nucleusforce/grid"
)

// BoundaryForce is the force assumed on every boundary pixel by FromBoundary.
const BoundaryForce = 1.0

// FromBoundary returns the default seed: BoundaryForce on every boundary
// pixel of cell (see package boundary) and zero elsewhere.
func FromBoundary(cell, nucleus *grid.Labels) (*grid.Forces, error) {
	b, err := boundary.Find(cell, nucleus)
	if err != nil {
		return nil, err
	}
	return FromMask(b, BoundaryForce), nil
}

// FromMask returns a force grid holding value on every nonzero pixel of mask.
func FromMask(mask *grid.Labels, value float64) *grid.Forces {
	f := grid.Like[float64](mask)
	out := f.Values()
	for i, v := range mask.Values() {
		if v != 0 {
			out[i] = value
		}
	}
	return f
}
