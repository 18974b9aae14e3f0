package render

import (
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

// DefaultBeeSize is the marker area of a bee in pt².
const DefaultBeeSize = 30.0

// Renderer translates frames into canvas primitives.
type Renderer struct {
	Theme   style.Theme
	BeeSize float64
	// GridDivisions is the number of grid cells along each world side.
	GridDivisions int
}

func NewRenderer(th style.Theme) *Renderer {
	return &Renderer{Theme: th, BeeSize: DefaultBeeSize, GridDivisions: 8}
}

// Draw renders f onto c from scratch.
func (r *Renderer) Draw(c Canvas, f frame.Frame) {
	th := r.Theme
	c.Begin(f.WorldSize, th)
	c.Title(f.Title())
	if r.GridDivisions > 0 {
		c.Grid(f.WorldSize / float64(r.GridDivisions))
	}

	c.FillCircle(Circle{
		Center:    Point{X: f.Hive.X, Y: f.Hive.Y},
		Radius:    f.Hive.Radius,
		Fill:      th.HiveFill,
		Edge:      th.HiveEdge,
		EdgeWidth: 2,
		Alpha:     0.4,
	})
	legend := []LegendEntry{{Label: "Hive", Marker: MarkerCircle, Fill: th.HiveFill, Edge: th.HiveEdge}}

	if len(f.Flowers) > 0 {
		pts := make([]Point, len(f.Flowers))
		sizes := make([]float64, len(f.Flowers))
		for i, fl := range f.Flowers {
			pts[i] = Point{X: fl.X, Y: fl.Y}
			sizes[i] = fl.Size
		}
		c.Scatter(ScatterSet{
			Label:     "Flowers",
			Points:    pts,
			Sizes:     sizes,
			Marker:    MarkerStar,
			Fill:      th.FlowerFill,
			Edge:      th.FlowerEdge,
			EdgeWidth: 2,
			Alpha:     0.8,
		})
		legend = append(legend, LegendEntry{Label: "Flowers", Marker: MarkerStar, Fill: th.FlowerFill, Edge: th.FlowerEdge})
	}

	for _, b := range f.Buckets {
		if b.Len() == 0 {
			continue
		}
		pts := make([]Point, b.Len())
		for i, rec := range b.Records {
			pts[i] = Point{X: rec.X, Y: rec.Y}
		}
		c.Scatter(ScatterSet{
			Label:     b.Label(),
			Points:    pts,
			Size:      r.BeeSize,
			Marker:    MarkerCircle,
			Fill:      b.Style.Color,
			Edge:      th.BeeEdge,
			EdgeWidth: 0.5,
			Alpha:     0.7,
		})
		legend = append(legend, LegendEntry{Label: b.Label(), Marker: MarkerCircle, Fill: b.Style.Color, Edge: th.BeeEdge})
	}

	c.Legend(legend)
	c.TextBox(f.StatsText())
}
