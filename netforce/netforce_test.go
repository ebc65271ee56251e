package netforce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nucleusforce/grid"
	"github.com/katalvlaran/nucleusforce/netforce"
)

// TestCentroid averages columns into X and rows into Y.
func TestCentroid(t *testing.T) {
	nucleus := grid.MustFrom2D([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 1},
	})
	m, err := netforce.Centroid(nucleus)
	require.NoError(t, err)
	assert.InDelta(t, (1+2+1+2+3)/5.0, m.X, 1e-12)
	assert.InDelta(t, (1+1+2+2+2)/5.0, m.Y, 1e-12)
}

// TestCentroid_Empty is an input error rather than NaN.
func TestCentroid_Empty(t *testing.T) {
	nucleus, _ := grid.New[int](4, 4)
	_, err := netforce.Centroid(nucleus)
	assert.ErrorIs(t, err, netforce.ErrEmptyNucleus)

	f, _ := grid.New[float64](4, 4)
	_, err = netforce.Of(nucleus, f)
	assert.ErrorIs(t, err, netforce.ErrEmptyNucleus)
}

// TestOf_Symmetric: equal loads on opposite sides cancel.
func TestOf_Symmetric(t *testing.T) {
	nucleus := grid.MustFrom2D([][]int{{1, 1, 1}})
	f := grid.MustFrom2D([][]float64{{2, 0, 2}})

	v, err := netforce.Of(nucleus, f)
	require.NoError(t, err)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)
	assert.InDelta(t, 0, v.Magnitude(), 1e-12)
}

// TestOf_OneSided: a load on the left edge pushes toward +X with its own
// magnitude; a load below the centroid pushes toward -Y.
func TestOf_OneSided(t *testing.T) {
	nucleus := grid.MustFrom2D([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	left := grid.MustFrom2D([][]float64{
		{0, 0, 0},
		{3, 0, 0},
		{0, 0, 0},
	})
	v, err := netforce.Of(nucleus, left)
	require.NoError(t, err)
	assert.InDelta(t, 3, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)
	assert.InDelta(t, 0, v.Angle(), 1e-12)

	corner := grid.MustFrom2D([][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, math.Sqrt2},
	})
	v, err = netforce.Of(nucleus, corner)
	require.NoError(t, err)
	assert.InDelta(t, -1, v.X, 1e-12)
	assert.InDelta(t, -1, v.Y, 1e-12)
}

// TestOf_AtCentroid: the pixel on the centroid contributes zero instead of NaN.
func TestOf_AtCentroid(t *testing.T) {
	nucleus := grid.MustFrom2D([][]int{{1, 1, 1}})
	f := grid.MustFrom2D([][]float64{{1, 5, 0}})

	v, err := netforce.Of(nucleus, f)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y))
	assert.InDelta(t, 1, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)
}

// TestOf_IgnoresNonNucleus: only nucleus pixels carry load.
func TestOf_IgnoresNonNucleus(t *testing.T) {
	nucleus := grid.MustFrom2D([][]int{{0, 1, 1}})
	f := grid.MustFrom2D([][]float64{{100, 1, 0}})

	v, err := netforce.Of(nucleus, f)
	require.NoError(t, err)
	assert.InDelta(t, 1, v.X, 1e-12)

	total, err := netforce.Total(nucleus, f)
	require.NoError(t, err)
	assert.InDelta(t, 1, total, 1e-12)
}

// TestOf_DimensionMismatch rejects differently shaped grids.
func TestOf_DimensionMismatch(t *testing.T) {
	nucleus, _ := grid.New[int](4, 4)
	f, _ := grid.New[float64](3, 3)
	_, err := netforce.Of(nucleus, f)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
	_, err = netforce.Total(nucleus, f)
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
}
