package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Job loads one Input. It runs on a batch worker goroutine.
type Job func(ctx context.Context) (Input, error)

// Batch runs every job with at most workers in flight and exports each
// result into outDir/<input name>. Results keep the order of jobs. The first
// failure cancels the remaining jobs and is returned. When exporting, two
// inputs with the same name fail with ErrDuplicateName; see UniqueNames.
func (r *Runner) Batch(ctx context.Context, jobs []Job, outDir string, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*Result, len(jobs))
	var (
		mu    sync.Mutex
		names = make(map[string]int, len(jobs))
	)
	claim := func(i int, name string) error {
		mu.Lock()
		defer mu.Unlock()
		if j, ok := names[name]; ok {
			return fmt.Errorf("job %d: %w %q (also job %d)", i, ErrDuplicateName, name, j)
		}
		names[name] = i
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in, err := job(ctx)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			if outDir != "" {
				if err := claim(i, in.Name); err != nil {
					return err
				}
			}
			res, err := r.Execute(ctx, in)
			if err != nil {
				return err
			}
			if outDir != "" {
				if err := r.Export(res, filepath.Join(outDir, in.Name)); err != nil {
					return err
				}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("batch complete", "inputs", len(jobs), "workers", workers)
	return results, nil
}
