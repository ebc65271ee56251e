package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var barColors = []drawing.Color{
	{R: 71, G: 78, B: 147, A: 255},
	{R: 114, G: 186, B: 169, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
}

// WriteChart renders the mean run time of every method as a PNG bar chart.
func (r *Report) WriteChart(w io.Writer) error {
	if len(r.Methods) == 0 {
		return fmt.Errorf("bench: nothing to chart")
	}
	yMax := 0.0
	bars := make([]chart.Value, 0, len(r.Methods))
	for i, s := range r.Methods {
		us := float64(s.Mean) / float64(time.Microsecond)
		yMax = max(yMax, us)
		bars = append(bars, chart.Value{
			Label: s.Method.String(),
			Value: us,
			Style: chart.Style{
				FillColor:   barColors[i%len(barColors)],
				StrokeColor: barColors[i%len(barColors)],
			},
		})
	}
	if yMax == 0 {
		yMax = 1
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Mean runtime over %d iterations (μs)", r.Iterations),
		Width:    480,
		Height:   360,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax * 1.1},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}
