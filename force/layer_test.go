package force_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nucleusforce/force"
	"github.com/katalvlaran/nucleusforce/grid"
)

// TestLayer_Line: on a 1×3 line ending in the nucleus, the force peeled off
// the far end passes through every pixel on its way in.
func TestLayer_Line(t *testing.T) {
	cell := grid.MustFrom2D([][]int{{1, 1, 1}})
	nucleus := grid.MustFrom2D([][]int{{0, 0, 1}})
	seed := grid.MustFrom2D([][]float64{{1, 0, 0}})

	f, err := force.Layer(cell, nucleus, seed)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1}}, f.To2D())
}

// TestLayer_RingAroundNucleus traces a full 3×3 cell around a central
// nucleus seeded on its 8 boundary pixels. The bottom-middle pixel is
// blocked once and re-queued before it can be peeled; in the end all 8 units
// reach the nucleus.
func TestLayer_RingAroundNucleus(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	nucleus, _ := grid.New[int](3, 3)
	nucleus.Set(1, 1, 1)
	seed, err := force.FromBoundary(cell, nucleus)
	require.NoError(t, err)

	f, err := force.Layer(cell, nucleus, seed)
	require.NoError(t, err)

	want := [][]float64{
		{1, 4.0 / 3, 4.0 / 3},
		{5.0 / 3, 8, 2},
		{14.0 / 9, 23.0 / 6, 5.0 / 3},
	}
	for r := range want {
		for c := range want[r] {
			assert.InDelta(t, want[r][c], f.At(r, c), eps, "pixel (%d,%d)", r, c)
		}
	}
}

// TestLayer_NegativeSeedIgnored: only strictly positive seeds are copied.
func TestLayer_NegativeSeedIgnored(t *testing.T) {
	cell := grid.MustFrom2D([][]int{{1, 1, 1}})
	nucleus := grid.MustFrom2D([][]int{{0, 0, 1}})
	seed := grid.MustFrom2D([][]float64{{-1, 0, 0}})

	f, err := force.Layer(cell, nucleus, seed)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Count())
}

// TestLayer_DeadEnd: an isolated pixel has nowhere to send its force; the
// share is dropped without error and the pixel keeps its own value.
func TestLayer_DeadEnd(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	})
	nucleus, _ := grid.New[int](3, 3)
	nucleus.Set(2, 2, 1)
	seed := grid.MustFrom2D([][]float64{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	f, err := force.Layer(cell, nucleus, seed)
	require.NoError(t, err)
	assert.Equal(t, 2.0, f.At(0, 0))
	assert.Equal(t, 0.0, f.At(2, 2))
}

// TestLayer_InputsUntouched: erosion works on a private copy.
func TestLayer_InputsUntouched(t *testing.T) {
	cell := grid.MustFrom2D([][]int{
		{1, 1, 1},
		{1, 1, 1},
	})
	nucleus := grid.MustFrom2D([][]int{
		{0, 0, 0},
		{0, 0, 1},
	})
	seed := grid.MustFrom2D([][]float64{
		{1, 0, 0},
		{0, 0, 0},
	})
	cell0, seed0 := cell.Clone(), seed.Clone()

	_, err := force.Layer(cell, nucleus, seed)
	require.NoError(t, err)
	assert.True(t, cell.Equal(cell0))
	assert.True(t, seed.Equal(seed0))
}

// TestLayer_DimensionMismatch: mismatched shapes fail before any work.
func TestLayer_DimensionMismatch(t *testing.T) {
	_, err := force.Layer(labels(4, 4), labels(3, 3), forces(4, 4))
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
	_, err = force.Layer(labels(4, 4), labels(4, 4), nil)
	assert.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestPropagate dispatches by method and rejects unknown ones.
func TestPropagate(t *testing.T) {
	cell := grid.MustFrom2D([][]int{{1, 1, 1}})
	nucleus := grid.MustFrom2D([][]int{{0, 0, 1}})
	seed := grid.MustFrom2D([][]float64{{1, 0, 0}})

	md, err := force.Propagate(force.MethodMinDistance, cell, nucleus, seed)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 1}}, md.To2D())

	ly, err := force.Propagate(force.MethodLayer, cell, nucleus, seed)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1}}, ly.To2D())

	_, err = force.Propagate(force.Method(7), cell, nucleus, seed)
	assert.ErrorIs(t, err, force.ErrUnknownMethod)
}

// TestParseMethod covers accepted spellings and the failure case.
func TestParseMethod(t *testing.T) {
	cases := map[string]force.Method{
		"mindist":      force.MethodMinDistance,
		"Min-Distance": force.MethodMinDistance,
		" layer ":      force.MethodLayer,
	}
	for in, want := range cases {
		got, err := force.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		back, err := force.ParseMethod(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, back)
	}
	_, err := force.ParseMethod("diffuse")
	assert.ErrorIs(t, err, force.ErrUnknownMethod)
}
