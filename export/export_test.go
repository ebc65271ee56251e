package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nucleusforce/export"
	"github.com/katalvlaran/nucleusforce/grid"
)

func TestWrite_Labels(t *testing.T) {
	var buf bytes.Buffer
	g := grid.MustFrom2D([][]int{{0, 1, -1}, {2, 3, 4}})
	require.NoError(t, export.Write(&buf, g))
	assert.Equal(t, "0,1,-1\n2,3,4\n", buf.String())
}

func TestWrite_Forces(t *testing.T) {
	var buf bytes.Buffer
	g := grid.MustFrom2D([][]float64{{0, 0.5, 1.0 / 3}, {12, -2.25, 1e-7}})
	require.NoError(t, export.Write(&buf, g))
	assert.Equal(t, "0,0.5,0.3333333333333333\n12,-2.25,1e-07\n", buf.String())

	back, err := export.Read(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestWrite_Nil(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, export.Write[int](&buf, nil), grid.ErrNilGrid)
}

func TestRead_Errors(t *testing.T) {
	_, err := export.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = export.Read(strings.NewReader("1,2\n3\n"))
	assert.Error(t, err)

	_, err = export.Read(strings.NewReader("1,x\n"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := grid.MustFrom2D([][]float64{{1, 2}, {3, 4}})

	path := "out/run1/" + export.ForceFile
	require.NoError(t, export.Save(fs, path, g))

	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, ok)

	back, err := export.Load(fs, path)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	_, err = export.Load(fs, "out/missing.csv")
	assert.Error(t, err)
}
