package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nucleusforce/export"
	"github.com/katalvlaran/nucleusforce/imaging"
	"github.com/katalvlaran/nucleusforce/pipeline"
)

func newBoundaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "boundary [image]",
		Short: "Propagate force seeded on the cell boundary",
		Long: `Reads a segmentation holding exactly three colors (background, cell and
nucleus; see the boundary.* config keys), seeds 1.0 on every cell boundary
pixel and propagates it toward the nucleus.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadBoundary(args[0])
			if err != nil {
				return err
			}
			return a.analyse(cmd.Context(), cmd.OutOrStdout(), in, a.cfg.OutputDir)
		},
	}
}

func newMarkedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "marked [image]",
		Short: "Propagate force seeded on hand-marked origin pixels",
		Long: `Reads a segmentation with cell, nucleus and force-origin colors (see the
marked.* config keys). Nucleus and origin pixels count as cell; every
origin pixel is seeded with 1.0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.loadMarked(args[0])
			if err != nil {
				return err
			}
			return a.analyse(cmd.Context(), cmd.OutOrStdout(), in, a.cfg.OutputDir)
		},
	}
}

func (a *app) loadBoundary(path string) (pipeline.Input, error) {
	bg, cell, nucleus, err := a.cfg.Boundary.Parse()
	if err != nil {
		return pipeline.Input{}, err
	}
	method, err := a.cfg.PropagationMethod()
	if err != nil {
		return pipeline.Input{}, err
	}
	cm, err := imaging.Load(a.fs, path)
	if err != nil {
		return pipeline.Input{}, err
	}
	colors := pipeline.BoundaryColors{Background: bg, Cell: cell, Nucleus: nucleus}
	return pipeline.FromBoundaryImage(cm, colors, method)
}

func (a *app) loadMarked(path string) (pipeline.Input, error) {
	cell, nucleus, origin, err := a.cfg.Marked.Parse()
	if err != nil {
		return pipeline.Input{}, err
	}
	method, err := a.cfg.PropagationMethod()
	if err != nil {
		return pipeline.Input{}, err
	}
	cm, err := imaging.Load(a.fs, path)
	if err != nil {
		return pipeline.Input{}, err
	}
	colors := pipeline.MarkedColors{Cell: cell, Nucleus: nucleus, Origin: origin}
	return pipeline.FromMarkedImage(cm, colors, method)
}

// analyse runs one pipeline, exports it into dir and prints the summary.
func (a *app) analyse(ctx context.Context, w io.Writer, in pipeline.Input, dir string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(a.fs, logger)
	res, err := runner.Execute(ctx, in)
	if err != nil {
		return err
	}
	if err := runner.Export(res, dir); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analysed %s", in.Name))

	printResult(w, res)
	for _, name := range []string{export.BoundaryFile, export.DistanceFile, export.ForceFile, pipeline.HeatmapFile} {
		printFile(w, filepath.Join(dir, name))
	}
	return nil
}

func printResult(w io.Writer, res *pipeline.Result) {
	printTitle(w, res.Name)
	printKeyValue(w, "method", res.Method)
	printKeyValue(w, "cell pixels", res.Stats.CellPixels)
	printKeyValue(w, "boundary", res.Stats.BoundaryPixels)
	printKeyValue(w, "centroid", fmt.Sprintf("(%.3f, %.3f)", res.Centroid.X, res.Centroid.Y))
	printKeyValue(w, "total load", fmt.Sprintf("%.6g", res.Total))
	printKeyValue(w, "net force", fmt.Sprintf("(%.6g, %.6g) |%.6g|", res.Net.X, res.Net.Y, res.Net.Magnitude()))
}
