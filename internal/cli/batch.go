package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nucleusforce/pipeline"
)

func newBatchCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "batch [images...]",
		Short: "Analyse many images concurrently",
		Long: `Runs "boundary" or "marked" (--mode) on every image, at most batch.workers
at a time. Results for image NAME.ext are written to <out>/NAME/; repeated names get
a -2, -3, ... suffix in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var load func(string) (pipeline.Input, error)
			switch mode {
			case "boundary":
				load = a.loadBoundary
			case "marked":
				load = a.loadMarked
			default:
				return fmt.Errorf("unknown mode %q: want boundary or marked", mode)
			}

			names := pipeline.UniqueNames(args)
			jobs := make([]pipeline.Job, len(args))
			for i, path := range args {
				i, path := i, path
				jobs[i] = func(context.Context) (pipeline.Input, error) {
					in, err := load(path)
					in.Name = names[i]
					return in, err
				}
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			runner := pipeline.NewRunner(a.fs, logger)
			results, err := runner.Batch(cmd.Context(), jobs, a.cfg.OutputDir, a.cfg.Batch.Workers)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Analysed %d images", len(results)))

			out := cmd.OutOrStdout()
			for _, res := range results {
				printResult(out, res)
				printFile(out, filepath.Join(a.cfg.OutputDir, res.Name))
			}
			printSuccess(out, "%d images", len(results))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "boundary", "input kind: boundary or marked")
	cmd.Flags().IntP("workers", "w", 4, "images processed concurrently")
	_ = a.v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	return cmd
}
