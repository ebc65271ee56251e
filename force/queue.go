package force

// pixelItem is a pixel and its distance to the nucleus.
type pixelItem struct {
	row, col int
	dist     int
}

// pixelPQ is a max-heap of pixelItem ordered by dist descending, so the
// pixels farthest from the nucleus are drained first. Equal distances are
// ordered by greater row, then greater column, which keeps runs reproducible.
//
// Like a lazy decrease-key Dijkstra queue, the same pixel may be pushed more
// than once; stale entries are recognised by a zero residual when popped.
type pixelPQ []pixelItem

// Len returns the number of items in the heap.
func (pq pixelPQ) Len() int { return len(pq) }

// Less defines the comparison: larger dist → higher priority.
func (pq pixelPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist > b.dist
	}
	if a.row != b.row {
		return a.row > b.row
	}
	return a.col > b.col
}

// Swap swaps two elements in the heap.
func (pq pixelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type pixelItem.
func (pq *pixelPQ) Push(x any) { *pq = append(*pq, x.(pixelItem)) }

// Pop removes and returns the highest-priority element.
// Called by heap.Pop; the result must be cast to pixelItem.
func (pq *pixelPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
