// Package distance computes, for every cell pixel, the number of orthogonal
// cell-pixel hops to the nearest nucleus pixel.
//
// What
//
//   - Multi-source breadth-first search seeded with every nucleus pixel at
//     distance 0, expanding through Conn4 neighbors whose cell value is nonzero.
//   - Each pixel is assigned once, so distances are non-decreasing in BFS order.
//   - Pixels not connected to the nucleus through cell pixels stay Unreached.
//
// Determinism
//
//	Seeds are enqueued in row-major order and neighbors in the order of
//	grid.Conn4's offset table. The result does not depend on this order.
//
// Complexity
//
//   - Time:   O(R×C×4)
//   - Memory: O(R×C) for the queue and the distance grid.
//
// Errors
//
//   - grid.ErrDimensionMismatch if cell and nucleus differ in shape.
//   - grid.ErrNilGrid if either is nil.
package distance

import (
	"github.com/katalvlaran/nucleusforce/grid"
)

// Unreached marks pixels with no cell path to any nucleus pixel.
const Unreached = -1

// Connectivity is the adjacency the search expands through.
const Connectivity = grid.Conn4

// queueItem pairs a pixel index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	cell  *grid.Labels
	dist  *grid.Labels
	queue []queueItem
}

// Field runs the multi-source BFS and returns the distance grid.
// Nucleus pixels have distance 0 whether or not they are also cell pixels.
// Neither input is modified; calling Field twice on the same inputs returns
// identical grids.
func Field(cell, nucleus *grid.Labels) (*grid.Labels, error) {
	if err := grid.SameShape(cell, nucleus); err != nil {
		return nil, err
	}

	dist := grid.Like[int](cell)
	vals := dist.Values()
	for i := range vals {
		vals[i] = Unreached
	}

	w := &walker{
		cell:  cell,
		dist:  dist,
		queue: make([]queueItem, 0, cell.Len()),
	}

	// Seed queue with all nucleus pixels
	for i, v := range nucleus.Values() {
		if v != 0 {
			w.enqueue(i, 0)
		}
	}
	w.loop()

	return dist, nil
}

// enqueue records d as the final distance of idx and appends it to the queue.
func (w *walker) enqueue(idx, d int) {
	w.dist.Values()[idx] = d
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty. The head index advances instead of
// reslicing so the backing array is reused.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		r, c := w.dist.Coordinate(item.idx)
		w.dist.Neighbors(r, c, Connectivity, func(nr, nc int) {
			if w.dist.At(nr, nc) != Unreached || w.cell.At(nr, nc) == 0 {
				return
			}
			w.enqueue(w.dist.Index(nr, nc), item.depth+1)
		})
	}
}

// Reached reports whether d is a real distance rather than Unreached.
func Reached(d int) bool {
	return d >= 0
}
