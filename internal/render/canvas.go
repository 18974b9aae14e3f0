package render

import (
	"image/color"
	"math"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

// Marker is the glyph of a scatter point.
type Marker uint8

const (
	MarkerCircle Marker = iota
	MarkerStar
)

type Point struct {
	X, Y float64
}

// ScatterSet is a group of points drawn with one style. Sizes holds the
// marker area of each point in pt²; a nil Sizes uses Size for every point.
type ScatterSet struct {
	Label     string
	Points    []Point
	Sizes     []float64
	Size      float64
	Marker    Marker
	Fill      color.RGBA
	Edge      color.RGBA
	EdgeWidth float64 // pt
	Alpha     float64
}

// SizeAt returns the marker area of point i.
func (s ScatterSet) SizeAt(i int) float64 {
	if s.Sizes != nil {
		return s.Sizes[i]
	}
	return s.Size
}

// Circle is a filled circle with a radius in world units.
type Circle struct {
	Center    Point
	Radius    float64
	Fill      color.RGBA
	Edge      color.RGBA
	EdgeWidth float64 // pt
	Alpha     float64
}

type LegendEntry struct {
	Label  string
	Marker Marker
	Fill   color.RGBA
	Edge   color.RGBA
}

// Canvas is the drawing capability a frame is rendered with.
type Canvas interface {
	// Begin clears the canvas for a world of the given side length.
	Begin(world float64, th style.Theme)
	Title(text string)
	// Grid draws reference lines every step world units.
	Grid(step float64)
	FillCircle(c Circle)
	Scatter(s ScatterSet)
	// TextBox draws text in the top-left corner of the world area.
	TextBox(text string)
	// Legend draws entries in the top-right corner of the world area.
	Legend(entries []LegendEntry)
}

// markerRadius converts a marker area in pt² to a radius in pt.
func markerRadius(area float64) float64 {
	if area <= 0 {
		return 0
	}
	return math.Sqrt(area) / 2
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * float64(c.A)))}
}
