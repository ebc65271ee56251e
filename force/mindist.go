// Package force redistributes a scalar force field from source pixels of a
// cell toward its nucleus.
//
// Two methods are provided. They model different propagation assumptions and
// give different numbers on the same input; neither is a reference for the
// other.
//
// MinDistance (MethodMinDistance)
//
//   - Computes the distance field (see package distance).
//   - Drains pixels farthest-first from a max-heap: each pixel splits its whole
//     residual equally among its Conn4 neighbors at the minimum reached
//     distance, then holds zero. Nucleus pixels are absorbing sinks.
//   - Total force is conserved: whatever leaves the cell pixels connected to
//     the nucleus ends up on nucleus pixels.
//   - Time:  O((R×C) log(R×C)), Space: O(R×C).
//
// Layer (MethodLayer)
//
//   - Repeatedly peels "removable" pixels off a working copy of the cell and
//     spreads each peeled pixel's force over its remaining 3×3 neighborhood.
//   - Force spreads isotropically through successive topological layers
//     rather than strictly along graph distance.
//   - Each peeled pixel keeps the force it held when peeled, so the result
//     reads as the load that passed through every pixel; it is not conserved.
//   - Typically faster on sparse force sources since no distance field or
//     heap is needed.
//
// Errors (sentinel):
//
//   - grid.ErrDimensionMismatch if cell, nucleus and seed differ in shape.
//   - grid.ErrNilGrid if any of them is nil.
//   - ErrUnknownMethod from ParseMethod / Propagate.
//
// Example usage:
//
//	seed, _ := force.FromBoundary(cell, nucleus)
//	f, err := force.MinDistance(cell, nucleus, seed)
//	if err != nil {
//	    log.Fatal(err)
//	}
package force

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/nucleusforce/distance"
	"github.com/katalvlaran/nucleusforce/grid"
)

// MinDistance returns a new force grid in which the force seeded on cell
// pixels has been moved onto the nucleus, farthest pixels first.
//
// Preconditions and validation (in order):
//  1. cell, nucleus and seed are non-nil (grid.ErrNilGrid).
//  2. They share one shape (grid.ErrDimensionMismatch).
//
// Behavior:
//
//   - Every cell pixel that is not a nucleus pixel and holds a nonzero seed
//     (negative seeds included) is queued with its distance as priority.
//     Seeds on nucleus pixels count as absorbed and stay where they are.
//   - A popped pixel with zero residual is a stale duplicate and is skipped.
//   - Otherwise its residual is split equally across the Conn4 neighbors that
//     are cell-or-nucleus, reached, and at the minimum such distance; every
//     receiving non-nucleus neighbor is queued again. The pixel is then zeroed.
//   - A pixel without reached neighbors (cut off from the nucleus) loses its force.
//   - Seed values on non-cell pixels are copied through untouched.
//
// The caller's grids are not modified; the returned grid is owned by the caller.
func MinDistance(cell, nucleus *grid.Labels, seed *grid.Forces) (*grid.Forces, error) {
	if err := grid.SameShape(cell, nucleus, seed); err != nil {
		return nil, err
	}

	dist, err := distance.Field(cell, nucleus)
	if err != nil {
		return nil, err
	}

	r := &drainer{
		cell:    cell,
		nucleus: nucleus,
		dist:    dist,
		f:       seed.Clone(),
		pq:      make(pixelPQ, 0, cell.Count()),
	}
	r.init()
	r.process()

	return r.f, nil
}

// MinDistanceFromBoundary runs MinDistance with the default seed of 1.0 on
// every boundary pixel (see FromBoundary).
func MinDistanceFromBoundary(cell, nucleus *grid.Labels) (*grid.Forces, error) {
	seed, err := FromBoundary(cell, nucleus)
	if err != nil {
		return nil, err
	}
	return MinDistance(cell, nucleus, seed)
}

// drainer holds the mutable state of a single MinDistance execution.
type drainer struct {
	cell    *grid.Labels // read-only
	nucleus *grid.Labels // read-only
	dist    *grid.Labels // distance field; read-only
	f       *grid.Forces // working and result force grid
	pq      pixelPQ
}

// init queues every draining source pixel.
func (r *drainer) init() {
	for row := 0; row < r.cell.Rows(); row++ {
		for col := 0; col < r.cell.Cols(); col++ {
			if r.cell.At(row, col) == 0 || r.nucleus.At(row, col) != 0 {
				continue
			}
			if r.f.At(row, col) == 0 {
				continue
			}
			r.pq = append(r.pq, pixelItem{row: row, col: col, dist: r.dist.At(row, col)})
		}
	}
	heap.Init(&r.pq)
}

// process pops pixels farthest-first until the heap is empty.
func (r *drainer) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(pixelItem)
		residual := r.f.At(item.row, item.col)
		if residual == 0 {
			continue // already drained by an earlier entry
		}

		minDist, count := r.nearest(item.row, item.col)
		if count > 0 {
			share := residual / float64(count)
			r.f.Neighbors(item.row, item.col, distance.Connectivity, func(nr, nc int) {
				if !r.eligible(nr, nc) || r.dist.At(nr, nc) != minDist {
					return
				}
				r.f.Add(nr, nc, share)
				if r.nucleus.At(nr, nc) == 0 {
					heap.Push(&r.pq, pixelItem{row: nr, col: nc, dist: minDist})
				}
			})
		}

		r.f.Set(item.row, item.col, 0)
	}
}

// nearest returns the minimum reached distance among eligible neighbors of
// (row,col) and how many neighbors share it. count is 0 when none qualifies.
func (r *drainer) nearest(row, col int) (minDist, count int) {
	minDist = math.MaxInt
	r.f.Neighbors(row, col, distance.Connectivity, func(nr, nc int) {
		if !r.eligible(nr, nc) {
			return
		}
		switch d := r.dist.At(nr, nc); {
		case d < minDist:
			minDist, count = d, 1
		case d == minDist:
			count++
		}
	})
	return minDist, count
}

// eligible reports whether (row,col) can receive force: it must belong to the
// cell or the nucleus and be connected to the nucleus.
func (r *drainer) eligible(row, col int) bool {
	if r.cell.At(row, col) == 0 && r.nucleus.At(row, col) == 0 {
		return false
	}
	return distance.Reached(r.dist.At(row, col))
}
