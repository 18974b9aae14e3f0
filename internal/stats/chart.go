package stats

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

// RenderChart writes a PNG line chart of the per-state bee counts.
func RenderChart(w io.Writer, s Series, width, height int) error {
	if s.Len() < 2 {
		return ErrTooFewPoints
	}

	xs := s.Timesteps()
	series := make([]chart.Series, 0, len(style.States())+1)
	for _, st := range style.States() {
		sty, _ := style.Lookup(st)
		series = append(series, chart.ContinuousSeries{
			Name:    sty.Label,
			XValues: xs,
			YValues: s.State(st),
			Style: chart.Style{
				StrokeColor: drawing.Color{R: sty.Color.R, G: sty.Color.G, B: sty.Color.B, A: 255},
				StrokeWidth: 2.0,
			},
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "All bees",
		XValues: xs,
		YValues: s.Bees(),
		Style: chart.Style{
			StrokeColor:     chart.ColorBlack,
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	})

	graph := chart.Chart{
		Title:  "Bee states per timestep",
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "timestep",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "bees",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("stats: render chart: %w", err)
	}
	return nil
}
