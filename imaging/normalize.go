package imaging

import (
	"github.com/katalvlaran/nucleusforce/force"
	"github.com/katalvlaran/nucleusforce/grid"
)

// OriginForce is the seed placed on every marked force-origin pixel.
const OriginForce = 1.0

// Normalize repairs a hand-marked segmentation: nucleus and origin pixels
// are painted over the cell body, so they are added back to the cell mask.
// It returns the corrected cell and a seed holding OriginForce on every
// origin pixel. The input masks are not modified.
//
// Errors:
//   - grid.ErrNilGrid, grid.ErrDimensionMismatch if the masks do not line up.
func Normalize(cell, nucleus, origins *grid.Labels) (*grid.Labels, *grid.Forces, error) {
	fixed, err := grid.Union(cell, nucleus, origins)
	if err != nil {
		return nil, nil, err
	}
	return fixed, force.FromMask(origins, OriginForce), nil
}
