package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensionMismatch indicates grids passed to one operation differ in shape.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
	// ErrNilGrid indicates a nil grid was supplied.
	ErrNilGrid = errors.New("grid: grid is nil")
)

// Number is the set of element types a Grid can hold.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: E, S, W, N.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: E, S, W, N, SE, SW, NW, NE.
	Conn8
)

// Offsets are (row, col) deltas.
var (
	offsets4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	offsets8 = [8][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// Offsets returns the (row, col) delta table for c.
// The returned slice aliases package state and must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8[:]
	}
	return offsets4[:]
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Point is a (row, col) pixel coordinate.
type Point struct {
	Row, Col int
}

// Shape is anything with grid dimensions. Every Grid[T] satisfies it,
// which lets SameShape compare label and force grids in one call.
type Shape interface {
	Rows() int
	Cols() int
}

// Grid is a rectangular, row-major field of T. Its dimensions never change
// after construction; data holds rows*cols elements.
type Grid[T Number] struct {
	rows, cols int
	data       []T
}

// Labels is a membership grid: nonzero marks a member pixel.
type Labels = Grid[int]

// Forces is a scalar force field.
type Forces = Grid[float64]
