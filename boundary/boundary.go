// Package boundary marks the outer rim of a segmented cell.
//
// A cell pixel is a boundary pixel iff at least one of its 8 neighbors is
// outside the grid or is neither cell nor nucleus. The nucleus counts as
// "inside" the cell, so a cell pixel wrapped by cell-or-nucleus pixels is
// interior. Non-cell pixels are never marked.
//
// Complexity: O(R×C×8) time, O(R×C) memory.
package boundary

import (
	"github.com/katalvlaran/nucleusforce/grid"
)

// Connectivity is the adjacency used to decide whether a pixel touches empty space.
const Connectivity = grid.Conn8

// Find returns a 0/1 grid marking the boundary pixels of cell.
// cell and nucleus must share a shape (grid.ErrDimensionMismatch otherwise).
// Neither input is modified.
func Find(cell, nucleus *grid.Labels) (*grid.Labels, error) {
	if err := grid.SameShape(cell, nucleus); err != nil {
		return nil, err
	}

	out := grid.Like[int](cell)
	for r := 0; r < cell.Rows(); r++ {
		for c := 0; c < cell.Cols(); c++ {
			if cell.At(r, c) == 0 {
				continue
			}
			if touchesEmpty(cell, nucleus, r, c) {
				out.Set(r, c, 1)
			}
		}
	}

	return out, nil
}

// touchesEmpty reports whether any Conn8 neighbor of (r,c) is off-grid or
// belongs to neither mask.
func touchesEmpty(cell, nucleus *grid.Labels, r, c int) bool {
	for _, d := range Connectivity.Offsets() {
		nr, nc := r+d[0], c+d[1]
		if !cell.InBounds(nr, nc) {
			return true
		}
		if cell.At(nr, nc) == 0 && nucleus.At(nr, nc) == 0 {
			return true
		}
	}
	return false
}
