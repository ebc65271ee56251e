// Package grid treats a rectangular 2D field of labels or scalars as a
// graph of pixels, and is the shared model for every other package of
// nucleusforce.
//
// What:
//
//   - Grid[T] wraps a row-major, fixed-size field of T (ints for label and
//     distance grids, float64 for force grids).
//   - Conn4 / Conn8 select orthogonal or orthogonal+diagonal adjacency;
//     the offset tables are package-level and never copied.
//   - Neighbors iterates in-bounds neighbors only (no wrapping).
//   - SameShape validates that every grid of one operation shares R×C.
//   - ConnectedComponents finds the islands of nonzero pixels.
//
// Complexity:
//
//   - From2D, Clone, To2D:   O(R×C) time and memory.
//   - Neighbors:             O(d), d = 4 or 8.
//   - ConnectedComponents:   O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: two grids of one operation differ in shape.
//   - ErrNilGrid: a nil grid was passed where one is required.
package grid
