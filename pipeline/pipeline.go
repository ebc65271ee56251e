// Package pipeline runs the complete analysis for one segmented cell:
// boundary → distance field → force propagation → nucleus load, and writes
// the resulting grids as CSV artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/katalvlaran/nucleusforce/boundary"
	"github.com/katalvlaran/nucleusforce/distance"
	"github.com/katalvlaran/nucleusforce/export"
	"github.com/katalvlaran/nucleusforce/force"
	"github.com/katalvlaran/nucleusforce/grid"
	"github.com/katalvlaran/nucleusforce/imaging"
	"github.com/katalvlaran/nucleusforce/netforce"
)

// HeatmapFile is the PNG rendering of the force grid written by Export.
const HeatmapFile = "force.png"

var (
	// ErrNoCell is returned when the cell mask has no member pixels.
	ErrNoCell = errors.New("pipeline: cell mask is empty")
	// ErrDuplicateName is returned by Batch when two inputs would export into
	// the same directory.
	ErrDuplicateName = errors.New("pipeline: duplicate input name")
)

// Input is one cell to analyse.
type Input struct {
	Name    string
	Cell    *grid.Labels
	Nucleus *grid.Labels
	// Seed is the initial force. Nil means force.BoundaryForce on every
	// boundary pixel.
	Seed   *grid.Forces
	Method force.Method
}

// Stats records per-stage timings and pixel counts.
type Stats struct {
	CellPixels     int
	NucleusPixels  int
	BoundaryPixels int
	BoundaryTime   time.Duration
	DistanceTime   time.Duration
	ForceTime      time.Duration
}

// Result holds every grid and summary a run produces.
type Result struct {
	Name     string
	Method   force.Method
	Boundary *grid.Labels
	Distance *grid.Labels
	Force    *grid.Forces
	Centroid netforce.Point
	Net      netforce.Vector
	Total    float64
	Stats    Stats
}

// Runner executes pipelines. It holds no per-run state, so one Runner may
// serve concurrent calls.
type Runner struct {
	Fs     afero.Fs
	Logger *log.Logger
}

// NewRunner returns a Runner writing artifacts to fs. A nil fs means the OS
// filesystem; a nil logger means log.Default().
func NewRunner(fs afero.Fs, logger *log.Logger) *Runner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fs: fs, Logger: logger}
}

// Execute runs every stage for in. The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, in Input) (*Result, error) {
	if err := grid.SameShape(in.Cell, in.Nucleus); err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", in.Name, err)
	}
	if in.Cell.Count() == 0 {
		return nil, fmt.Errorf("pipeline %s: %w", in.Name, ErrNoCell)
	}
	logger := r.Logger.With("input", in.Name)
	res := &Result{Name: in.Name, Method: in.Method}
	res.Stats.CellPixels = in.Cell.Count()
	res.Stats.NucleusPixels = in.Nucleus.Count()

	start := time.Now()
	b, err := boundary.Find(in.Cell, in.Nucleus)
	if err != nil {
		return nil, fmt.Errorf("boundary: %w", err)
	}
	res.Boundary = b
	res.Stats.BoundaryPixels = b.Count()
	res.Stats.BoundaryTime = time.Since(start)
	logger.Debug("found boundary", "pixels", res.Stats.BoundaryPixels, "duration", res.Stats.BoundaryTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	d, err := distance.Field(in.Cell, in.Nucleus)
	if err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	res.Distance = d
	res.Stats.DistanceTime = time.Since(start)
	logger.Debug("computed distance field", "duration", res.Stats.DistanceTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed := in.Seed
	if seed == nil {
		seed = force.FromMask(b, force.BoundaryForce)
	}
	start = time.Now()
	f, err := force.Propagate(in.Method, in.Cell, in.Nucleus, seed)
	if err != nil {
		return nil, fmt.Errorf("force: %w", err)
	}
	res.Force = f
	res.Stats.ForceTime = time.Since(start)
	logger.Debug("propagated force", "method", in.Method, "duration", res.Stats.ForceTime)

	if res.Centroid, err = netforce.Centroid(in.Nucleus); err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	if res.Net, err = netforce.Of(in.Nucleus, f); err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	if res.Total, err = netforce.Total(in.Nucleus, f); err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}

	logger.Info("analysed cell",
		"method", in.Method,
		"cell_pixels", res.Stats.CellPixels,
		"total", res.Total,
		"net_x", res.Net.X,
		"net_y", res.Net.Y)
	return res, nil
}

// Export writes boundary.csv, dist.csv, force.csv and force.png into dir.
func (r *Runner) Export(res *Result, dir string) error {
	if err := r.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := export.Save(r.Fs, filepath.Join(dir, export.BoundaryFile), res.Boundary); err != nil {
		return err
	}
	if err := export.Save(r.Fs, filepath.Join(dir, export.DistanceFile), res.Distance); err != nil {
		return err
	}
	if err := export.Save(r.Fs, filepath.Join(dir, export.ForceFile), res.Force); err != nil {
		return err
	}
	img, err := imaging.Heatmap(res.Force)
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(r.Fs, filepath.Join(dir, HeatmapFile), img); err != nil {
		return err
	}
	r.Logger.Debug("exported results", "dir", dir)
	return nil
}
