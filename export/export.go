// Package export writes grids as comma-separated text, one grid row per line.
//
// Integers are written in decimal and floats in their shortest exact form
// (strconv 'g' with precision -1), so a written force grid reads back
// bit-for-bit with Read.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"github.com/katalvlaran/nucleusforce/grid"
)

// Standard artifact names for a single run.
const (
	BoundaryFile = "boundary.csv"
	DistanceFile = "dist.csv"
	ForceFile    = "force.csv"
)

// Write encodes g to w.
func Write[T grid.Number](w io.Writer, g *grid.Grid[T]) error {
	if err := grid.SameShape(g); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	record := make([]string, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := range record {
			record[c] = format(g.At(r, c))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: row %d: %w", r, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes g to path on fs, creating parent directories as needed.
func Save[T grid.Number](fs afero.Fs, path string, g *grid.Grid[T]) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read parses a grid written by Write. Every row must have the same number
// of fields.
func Read(r io.Reader) (*grid.Forces, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if len(records) == 0 {
		return nil, grid.ErrEmptyGrid
	}

	values := make([][]float64, len(records))
	for i, rec := range records {
		values[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("export: row %d col %d: %w", i, j, err)
			}
			values[i][j] = v
		}
	}
	return grid.From2D(values)
}

// Load reads the grid stored at path on fs.
func Load(fs afero.Fs, path string) (*grid.Forces, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func format[T grid.Number](v T) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return fmt.Sprint(v)
}
