package bench

import (
	"fmt"
	"io"
	"time"
)

// WriteText prints the human-readable summary.
func (r *Report) WriteText(w io.Writer) error {
	us := func(d time.Duration) float64 { return float64(d) / float64(time.Microsecond) }

	if _, err := fmt.Fprintf(w, "Test Results\n-----\nCell pixel count: %d\n", r.CellPixels); err != nil {
		return err
	}
	for _, s := range r.Methods {
		_, err := fmt.Fprintf(w,
			"The %s method had an average runtime of %.3fμs (%.3fμs per cell pixel), with a standard deviation of %.3fμs.\n",
			s.Method, us(s.Mean), us(s.Mean)/float64(max(r.CellPixels, 1)), us(s.StdDev))
		if err != nil {
			return err
		}
	}
	if m, pct, ok := r.Fastest(); ok {
		if _, err := fmt.Fprintf(w, "The %s method is %.3f%% faster.\n", m, pct); err != nil {
			return err
		}
	}
	return nil
}
