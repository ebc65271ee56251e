package grid

import (
	"fmt"
)

// New allocates a rows×cols grid of zero values.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(R×C) time and memory.
func New[T Number](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// From2D builds a grid from a non-empty, rectangular 2D slice.
// It deep-copies the input, so later changes to values are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func From2D[T Number](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{rows: h, cols: w, data: make([]T, h*w)}
	for r := 0; r < h; r++ {
		copy(g.data[r*w:(r+1)*w], values[r])
	}

	return g, nil
}

// MustFrom2D is like From2D but panics on error. Intended for fixtures.
func MustFrom2D[T Number](values [][]T) *Grid[T] {
	g, err := From2D(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Like allocates a zeroed grid of element type T with the shape of s.
func Like[T Number](s Shape) *Grid[T] {
	return &Grid[T]{rows: s.Rows(), cols: s.Cols(), data: make([]T, s.Rows()*s.Cols())}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r,c) to its row-major index r*Cols + c.
func (g *Grid[T]) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
func (g *Grid[T]) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// At returns the value at (r,c). The caller guarantees InBounds(r,c).
func (g *Grid[T]) At(r, c int) T {
	return g.data[r*g.cols+c]
}

// Set stores v at (r,c). The caller guarantees InBounds(r,c).
func (g *Grid[T]) Set(r, c int, v T) {
	g.data[r*g.cols+c] = v
}

// Add increments the value at (r,c) by v.
func (g *Grid[T]) Add(r, c int, v T) {
	g.data[r*g.cols+c] += v
}

// Has reports whether (r,c) is in bounds and holds a nonzero value.
// Out-of-range coordinates read as empty, which is what membership tests
// around the grid edge want.
func (g *Grid[T]) Has(r, c int) bool {
	return g.InBounds(r, c) && g.data[r*g.cols+c] != 0
}

// Values exposes the row-major backing slice. Mutating it mutates g.
func (g *Grid[T]) Values() []T {
	return g.data
}

// Clone returns an independent deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{rows: g.rows, cols: g.cols, data: data}
}

// To2D returns a freshly allocated [][]T copy of g.
func (g *Grid[T]) To2D() [][]T {
	out := make([][]T, g.rows)
	for r := range out {
		out[r] = make([]T, g.cols)
		copy(out[r], g.data[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Count returns how many pixels hold a nonzero value.
func (g *Grid[T]) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Equal reports whether g and o have the same shape and identical values.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Neighbors calls fn for every in-bounds neighbor of (r,c) under conn,
// in the order of conn's offset table. Out-of-range offsets are skipped,
// never wrapped.
// Complexity: O(d).
func (g *Grid[T]) Neighbors(r, c int, conn Connectivity, fn func(nr, nc int)) {
	for _, d := range conn.Offsets() {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		fn(nr, nc)
	}
}

// String renders the grid one row per line, for debugging and test failures.
func (g *Grid[T]) String() string {
	buf := make([]byte, 0, len(g.data)*3)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				buf = append(buf, ' ')
			}
			buf = fmt.Appendf(buf, "%v", g.At(r, c))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// SameShape returns nil if every grid shares the shape of the first one.
// It returns ErrNilGrid for a nil entry and ErrDimensionMismatch, wrapped
// with both shapes, for the first differing grid.
func SameShape(grids ...Shape) error {
	if len(grids) == 0 {
		return nil
	}
	for i, g := range grids {
		if isNil(g) {
			return fmt.Errorf("%w: argument %d", ErrNilGrid, i)
		}
	}
	r0, c0 := grids[0].Rows(), grids[0].Cols()
	for _, g := range grids[1:] {
		if g.Rows() != r0 || g.Cols() != c0 {
			return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, r0, c0, g.Rows(), g.Cols())
		}
	}
	return nil
}

// Union returns a new 0/1 mask set wherever any of masks is nonzero.
// The masks must share one shape (ErrNilGrid, ErrDimensionMismatch).
func Union(masks ...*Labels) (*Labels, error) {
	if len(masks) == 0 {
		return nil, ErrNilGrid
	}
	shapes := make([]Shape, len(masks))
	for i, m := range masks {
		shapes[i] = m
	}
	if err := SameShape(shapes...); err != nil {
		return nil, err
	}

	out := Like[int](masks[0])
	dst := out.Values()
	for _, m := range masks {
		for i, v := range m.Values() {
			if v != 0 {
				dst[i] = 1
			}
		}
	}
	return out, nil
}

// isNil catches typed nil pointers hidden in the Shape interface.
func isNil(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Grid[int]:
		return v == nil
	case *Grid[float64]:
		return v == nil
	case *Grid[int32]:
		return v == nil
	case *Grid[int64]:
		return v == nil
	case *Grid[float32]:
		return v == nil
	}
	return false
}
