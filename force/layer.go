package force

import (
	"github.com/katalvlaran/nucleusforce/grid"
)

// compactAfter is the queue head offset beyond which consumed entries are
// dropped from the backing slice.
const compactAfter = 1024

// Layer returns a new force grid computed by peeling the cell one removable
// pixel at a time and spreading each peeled pixel's force over the cell
// pixels still present in its 3×3 neighborhood.
//
// Preconditions and validation (in order):
//  1. cell, nucleus and seed are non-nil (grid.ErrNilGrid).
//  2. They share one shape (grid.ErrDimensionMismatch).
//
// Behavior:
//
//   - Only strictly positive seed values are copied into the result.
//   - Every removable cell pixel is queued (FIFO). A popped pixel that is no
//     longer removable goes to the back of the queue.
//   - A removable pixel is erased from a private copy of cell and its current
//     force is divided equally among the remaining cell pixels of its clamped
//     3×3 neighborhood; newly removable neighbors are queued once. With no
//     remaining neighbor the share is dropped. The peeled pixel keeps its value.
//   - The run ends when the queue is empty or a full pass over it erased
//     nothing, i.e. every queued pixel is blocked.
//
// The caller's grids are not modified; the returned grid is owned by the caller.
func Layer(cell, nucleus *grid.Labels, seed *grid.Forces) (*grid.Forces, error) {
	if err := grid.SameShape(cell, nucleus, seed); err != nil {
		return nil, err
	}

	f := grid.Like[float64](seed)
	out := f.Values()
	for i, v := range seed.Values() {
		if v > 0 {
			out[i] = v
		}
	}

	e := newEroder(cell, nucleus, f)
	e.seed()
	e.run()

	return f, nil
}

// eroder holds the mutable state of a single Layer execution.
type eroder struct {
	work    *grid.Labels // private copy of cell, zeroed as pixels are peeled
	nucleus *grid.Labels // read-only
	f       *grid.Forces
	queue   []int // row-major pixel indices
	head    int
	queued  []bool
}

func newEroder(cell, nucleus *grid.Labels, f *grid.Forces) *eroder {
	return &eroder{
		work:    cell.Clone(),
		nucleus: nucleus,
		f:       f,
		queue:   make([]int, 0, cell.Count()),
		queued:  make([]bool, cell.Len()),
	}
}

// seed queues every removable cell pixel in row-major order.
func (e *eroder) seed() {
	for r := 0; r < e.work.Rows(); r++ {
		for c := 0; c < e.work.Cols(); c++ {
			if e.work.At(r, c) != 0 && e.removable(r, c) {
				e.enqueue(r, c)
			}
		}
	}
}

func (e *eroder) enqueue(r, c int) {
	idx := e.work.Index(r, c)
	e.queued[idx] = true
	e.queue = append(e.queue, idx)
}

// run drains the queue. stalled counts consecutive pops that found a blocked
// pixel; once it covers every pending entry nothing can change any more.
func (e *eroder) run() {
	stalled := 0
	for e.head < len(e.queue) {
		idx := e.queue[e.head]
		e.head++
		r, c := e.work.Coordinate(idx)

		if !e.removable(r, c) {
			e.queue = append(e.queue, idx)
			stalled++
			if stalled >= len(e.queue)-e.head {
				return
			}
			continue
		}
		stalled = 0

		e.peel(r, c)
		e.compact()
	}
}

// peel erases (r,c), spreads its force and queues neighbors that became removable.
func (e *eroder) peel(r, c int) {
	e.work.Set(r, c, 0)

	r0, r1 := max(0, r-1), min(e.work.Rows()-1, r+1)
	c0, c1 := max(0, c-1), min(e.work.Cols()-1, c+1)

	count := 0
	for i := r0; i <= r1; i++ {
		for j := c0; j <= c1; j++ {
			if e.work.At(i, j) != 0 {
				count++
			}
		}
	}
	if count == 0 {
		return // dead end
	}

	share := e.f.At(r, c) / float64(count)
	for i := r0; i <= r1; i++ {
		for j := c0; j <= c1; j++ {
			if e.work.At(i, j) != 0 {
				e.f.Add(i, j, share)
			}
		}
	}

	for i := r0; i <= r1; i++ {
		for j := c0; j <= c1; j++ {
			if e.work.At(i, j) != 0 && !e.queued[e.work.Index(i, j)] && e.removable(i, j) {
				e.enqueue(i, j)
			}
		}
	}
}

// compact drops consumed queue entries once they dominate the backing slice.
func (e *eroder) compact() {
	if e.head < compactAfter || e.head*2 < len(e.queue) {
		return
	}
	n := copy(e.queue, e.queue[e.head:])
	e.queue = e.queue[:n]
	e.head = 0
}

// removable reports whether (r,c) may be peeled without breaking the
// remaining mass. A pixel is blocked when it is a nucleus pixel, or when its
// 3×3 neighborhood in the working mask shows any of:
//
//   - two orthogonal neighbors meeting at a corner whose diagonal is empty
//     (up+left, down+right, up+right, down+left);
//   - a vertical bridge (up+down) with neither left nor right;
//   - a horizontal bridge (left+right) with neither up nor down;
//   - all four orthogonal neighbors present.
//
// This is a local, simplified topology test, not a full thinning criterion.
func (e *eroder) removable(r, c int) bool {
	if e.nucleus.At(r, c) != 0 {
		return false
	}
	has := e.work.Has
	up, down := has(r-1, c), has(r+1, c)
	left, right := has(r, c-1), has(r, c+1)

	switch {
	case up && left && !has(r-1, c-1):
		return false
	case down && right && !has(r+1, c+1):
		return false
	case up && right && !has(r-1, c+1):
		return false
	case down && left && !has(r+1, c-1):
		return false
	case up && down && !left && !right:
		return false
	case left && right && !up && !down:
		return false
	case left && right && up && down:
		return false
	}
	return true
}
