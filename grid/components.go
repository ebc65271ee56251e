package grid

// ConnectedComponents finds all contiguous regions ("islands") of nonzero
// pixels of g, according to conn.
// Returns a slice of components; each component is a slice of pixel indices
// (row-major) in BFS discovery order. Components are ordered by their first
// pixel in row-major scan order.
//
// To convert an index back to (r,c), use Coordinate(idx).
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func ConnectedComponents[T Number](g *Grid[T], conn Connectivity) [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int
	offsets := conn.Offsets()

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.At(r, c) == 0 {
				continue // empty
			}
			i0 := g.Index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.Has(vr, vc) {
						continue
					}
					vi := g.Index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
