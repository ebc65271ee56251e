package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nucleusforce/boundary"
	"github.com/katalvlaran/nucleusforce/grid"
)

func zeros(r, c int) *grid.Labels {
	g, _ := grid.New[int](r, c)
	return g
}

// TestFind_BlankMapHasNoBoundary: an all-zero map has no boundary.
func TestFind_BlankMapHasNoBoundary(t *testing.T) {
	b, err := boundary.Find(zeros(4, 4), zeros(4, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, 0, b.Count())
}

// TestFind_DotIsAllBoundary: every pixel of an isolated 2×2 block touches
// empty space.
func TestFind_DotIsAllBoundary(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	b, err := boundary.Find(cell, zeros(4, 4))
	require.NoError(t, err)
	assert.True(t, b.Equal(cell), "boundary:\n%s", b)
}

// TestFind_GridEdgeIsBoundary: pixels on the grid edge count as touching
// empty space, interior pixels do not.
func TestFind_GridEdgeIsBoundary(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 1, 1},
		{0, 1, 1, 1},
	})
	b, err := boundary.Find(cell, zeros(4, 4))
	require.NoError(t, err)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0
			if r > 0 && c > 0 && (r == 1 || c == 1 || r == 3 || c == 3) {
				want = 1
			}
			assert.Equal(t, want, b.At(r, c), "pixel (%d,%d)", r, c)
		}
	}
}

// TestFind_NucleusCountsAsInside: a cell pixel next to the nucleus is not
// boundary, and nucleus pixels themselves are never marked.
func TestFind_NucleusCountsAsInside(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	nucleus := zeros(5, 5)
	nucleus.Set(2, 2, 1)

	b, err := boundary.Find(cell, nucleus)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Count())
	assert.Equal(t, 0, b.At(1, 1))
	assert.Equal(t, 0, b.At(2, 1))
	assert.Equal(t, 0, b.At(2, 2))

	// Without the nucleus, the hole makes its whole ring boundary.
	b2, err := boundary.Find(cell, zeros(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 24, b2.Count())
}

// TestFind_InteriorPixel: a pixel with cell on all 8 sides is interior.
func TestFind_InteriorPixel(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	b, err := boundary.Find(cell, zeros(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, b.At(1, 1))
	assert.Equal(t, 8, b.Count())
}

// TestFind_Idempotent: repeated calls give identical output and leave the
// inputs unchanged.
func TestFind_Idempotent(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 0},
	})
	before := cell.Clone()
	nucleus := zeros(4, 4)

	a, err := boundary.Find(cell, nucleus)
	require.NoError(t, err)
	b, err := boundary.Find(cell, nucleus)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.True(t, cell.Equal(before))
}

// TestFind_DimensionMismatch rejects differently shaped inputs.
func TestFind_DimensionMismatch(t *testing.T) {
	_, err := boundary.Find(zeros(4, 4), zeros(3, 3))
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = boundary.Find(nil, zeros(3, 3))
	assert.ErrorIs(t, err, grid.ErrNilGrid)
}
