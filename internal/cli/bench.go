package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nucleusforce/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [image] [iterations]",
		Short: "Compare the runtime of the propagation methods",
		Long: `Times both propagation methods on a marked segmentation (see "marked")
and reports the mean, standard deviation and per-pixel cost of each.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations := a.cfg.Bench.Iterations
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					return fmt.Errorf("iterations must be a positive integer, got %q", args[1])
				}
				iterations = n
			}

			in, err := a.loadMarked(args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			rep, err := bench.Run(cmd.Context(), in.Cell, in.Nucleus, in.Seed, bench.Options{
				Iterations: iterations,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			prog.done("Benchmark finished")

			out := cmd.OutOrStdout()
			if err := rep.WriteText(out); err != nil {
				return err
			}
			if path := a.cfg.Bench.Chart; path != "" {
				f, err := a.fs.Create(path)
				if err != nil {
					return err
				}
				if err := rep.WriteChart(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				printFile(out, path)
			}
			return nil
		},
	}
	cmd.Flags().Int("iterations", 100, "runs per method")
	cmd.Flags().String("chart", "", "write a PNG bar chart of mean runtimes to this path")
	_ = a.v.BindPFlag("bench.iterations", cmd.Flags().Lookup("iterations"))
	_ = a.v.BindPFlag("bench.chart", cmd.Flags().Lookup("chart"))
	return cmd
}
