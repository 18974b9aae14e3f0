package render

import "math"

// Figure is the output size in inches at a resolution in dots per inch.
type Figure struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DPI    float64 `yaml:"dpi"`
}

// ReferenceFigure is a 12×10 inch figure at 80 dpi (960×800 px).
var ReferenceFigure = Figure{Width: 12, Height: 10, DPI: 80}

// Pixels returns the figure size in pixels.
func (f Figure) Pixels() (int, int) {
	return int(math.Round(f.Width * f.DPI)), int(math.Round(f.Height * f.DPI))
}

// PointPx returns the number of pixels per typographic point.
func (f Figure) PointPx() float64 {
	return f.DPI / 72
}

// layout places a square world area inside a figure, leaving room for the
// title above and tick labels below and left.
type layout struct {
	world           float64
	left, top, side float64
	width, height   float64
}

func newLayout(fig Figure, world float64) layout {
	w, h := fig.Pixels()
	marginTop := 0.6 * fig.DPI
	marginBottom := 0.5 * fig.DPI
	marginLeft := 0.6 * fig.DPI
	marginRight := 0.3 * fig.DPI

	availW := float64(w) - marginLeft - marginRight
	availH := float64(h) - marginTop - marginBottom
	side := math.Max(1, math.Min(availW, availH))
	if world <= 0 {
		world = 1
	}
	return layout{
		world:  world,
		left:   marginLeft + (availW-side)/2,
		top:    marginTop + (availH-side)/2,
		side:   side,
		width:  float64(w),
		height: float64(h),
	}
}

// toPx maps world coordinates to pixel coordinates, y pointing down.
func (l layout) toPx(p Point) (float64, float64) {
	return l.left + p.X/l.world*l.side, l.top + (1-p.Y/l.world)*l.side
}

// scale returns pixels per world unit.
func (l layout) scale() float64 {
	return l.side / l.world
}

// Viewport exposes the figure layout to canvases outside this package.
type Viewport struct {
	l layout
}

func NewViewport(fig Figure, world float64) Viewport {
	return Viewport{l: newLayout(fig, world)}
}

// ToPx maps world coordinates to pixels, y pointing down.
func (v Viewport) ToPx(p Point) (float64, float64) { return v.l.toPx(p) }

// Scale returns pixels per world unit.
func (v Viewport) Scale() float64 { return v.l.scale() }

// Plot returns the top-left corner and side of the square world area.
func (v Viewport) Plot() (left, top, side float64) {
	return v.l.left, v.l.top, v.l.side
}

// World returns the world side length.
func (v Viewport) World() float64 { return v.l.world }
