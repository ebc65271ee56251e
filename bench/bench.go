// Package bench compares the wall-clock cost of the force propagation
// methods on one input.
//
// Each method runs Iterations times on the same cell, nucleus and seed.
// Reported per method: the mean run time, the sample standard deviation
// (n-1 denominator) and the mean time per cell pixel. The faster method is
// reported with its relative advantage, (slow - fast) / fast × 100.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nucleusforce/force"
	"github.com/katalvlaran/nucleusforce/grid"
)

// ErrNoIterations is returned when Iterations is below 1.
var ErrNoIterations = errors.New("bench: iterations must be at least 1")

// Options configures a comparison.
type Options struct {
	Iterations int
	Methods    []force.Method // default: MethodMinDistance, MethodLayer
	Logger     *log.Logger
}

// Stats summarises the runs of one method.
type Stats struct {
	Method   force.Method
	Runs     []time.Duration
	Mean     time.Duration
	StdDev   time.Duration
	PerPixel time.Duration
}

// Report is the outcome of Run.
type Report struct {
	Iterations int
	CellPixels int
	Methods    []Stats
}

// Run times every method in opts over the same inputs. Methods run one after
// the other; the context is checked between iterations.
func Run(ctx context.Context, cell, nucleus *grid.Labels, seed *grid.Forces, opts Options) (*Report, error) {
	if opts.Iterations < 1 {
		return nil, ErrNoIterations
	}
	if err := grid.SameShape(cell, nucleus, seed); err != nil {
		return nil, err
	}
	methods := opts.Methods
	if len(methods) == 0 {
		methods = []force.Method{force.MethodMinDistance, force.MethodLayer}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rep := &Report{Iterations: opts.Iterations, CellPixels: cell.Count()}
	logger.Info("running benchmark", "iterations", opts.Iterations, "cell_pixels", rep.CellPixels)

	for _, m := range methods {
		runs := make([]time.Duration, 0, opts.Iterations)
		for i := 0; i < opts.Iterations; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			start := time.Now()
			if _, err := force.Propagate(m, cell, nucleus, seed); err != nil {
				return nil, fmt.Errorf("bench %s: %w", m, err)
			}
			runs = append(runs, time.Since(start))
		}
		s := summarize(m, runs, rep.CellPixels)
		logger.Debug("method timed", "method", m, "mean", s.Mean, "stddev", s.StdDev)
		rep.Methods = append(rep.Methods, s)
	}
	return rep, nil
}

func summarize(m force.Method, runs []time.Duration, pixels int) Stats {
	xs := make([]float64, len(runs))
	for i, d := range runs {
		xs[i] = float64(d)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if math.IsNaN(std) {
		std = 0 // single run
	}
	s := Stats{
		Method: m,
		Runs:   runs,
		Mean:   time.Duration(mean),
		StdDev: time.Duration(std),
	}
	if pixels > 0 {
		s.PerPixel = time.Duration(mean / float64(pixels))
	}
	return s
}

// Fastest returns the method with the lowest mean and how much faster it is
// than the slowest, in percent. ok is false when there are fewer than two
// methods or all means tie.
func (r *Report) Fastest() (m force.Method, percent float64, ok bool) {
	if len(r.Methods) < 2 {
		return 0, 0, false
	}
	fast, slow := r.Methods[0], r.Methods[0]
	for _, s := range r.Methods[1:] {
		if s.Mean < fast.Mean {
			fast = s
		}
		if s.Mean > slow.Mean {
			slow = s
		}
	}
	if fast.Mean == slow.Mean || fast.Mean <= 0 {
		return 0, 0, false
	}
	return fast.Method, float64(slow.Mean-fast.Mean) / float64(fast.Mean) * 100, true
}
