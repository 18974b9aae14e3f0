package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

func pixelAt(c *RasterCanvas, p Point) color.RGBA {
	x, y := c.l.toPx(p)
	return c.Image().RGBAAt(int(math.Floor(x)), int(math.Floor(y)))
}

func TestRasterCanvas(t *testing.T) {
	table := trace.Table{
		{Timestep: 3, Kind: trace.Bee, X: 250, Y: 250, State: trace.Scout},
		{Timestep: 3, Kind: trace.Bee, X: 650, Y: 250, State: trace.Returning},
		{Timestep: 3, Kind: trace.Flower, X: 250, Y: 650, Nectar: 20},
	}
	f := frame.Build(table, 3, frame.DefaultConfig())
	c := NewRasterCanvas(ReferenceFigure)
	NewRenderer(style.ThemeLight).Draw(c, f)

	b := c.Image().Bounds()
	if b.Dx() != 960 || b.Dy() != 800 {
		t.Fatalf("image = %v, want 960x800", b)
	}
	if got := c.Image().RGBAAt(2, b.Dy()-2); got != style.ThemeLight.Background {
		t.Errorf("background = %v, want %v", got, style.ThemeLight.Background)
	}

	scout := pixelAt(c, Point{X: 250, Y: 250})
	if int(scout.B) < int(scout.R)+100 {
		t.Errorf("scout pixel = %v, want blue", scout)
	}
	returning := pixelAt(c, Point{X: 650, Y: 250})
	if int(returning.G) < int(returning.R)+50 || int(returning.G) < int(returning.B)+50 {
		t.Errorf("returning pixel = %v, want green", returning)
	}
	hive := pixelAt(c, Point{X: 403, Y: 403})
	if hive.R <= hive.B {
		t.Errorf("hive pixel = %v, want brown", hive)
	}
	flower := pixelAt(c, Point{X: 250, Y: 650})
	if flower.R <= flower.G {
		t.Errorf("flower pixel = %v, want pink", flower)
	}
	empty := pixelAt(c, Point{X: 560, Y: 560})
	if empty != style.ThemeLight.Axes {
		t.Errorf("empty pixel = %v, want axes %v", empty, style.ThemeLight.Axes)
	}
}

func TestRasterCanvasReuse(t *testing.T) {
	c := NewRasterCanvas(Figure{Width: 4, Height: 4, DPI: 50})
	r := NewRenderer(style.ThemeLight)

	busy := frame.Build(trace.Table{{Timestep: 0, Kind: trace.Bee, X: 250, Y: 250, State: trace.Dancing}}, 0, frame.DefaultConfig())
	r.Draw(c, busy)
	if p := pixelAt(c, Point{X: 250, Y: 250}); p == style.ThemeLight.Axes {
		t.Fatalf("bee not drawn")
	}

	r.Draw(c, frame.Build(nil, 1, frame.DefaultConfig()))
	if p := pixelAt(c, Point{X: 250, Y: 250}); p != style.ThemeLight.Axes {
		t.Errorf("pixel after redraw = %v, want axes", p)
	}
}

func TestStarShape(t *testing.T) {
	s := star(50, 50, 20)
	if !s.inside(50, 50) {
		t.Error("centre outside star")
	}
	if !s.inside(50, 32) {
		t.Error("top point outside star")
	}
	// Between two points, past the inner radius.
	if s.inside(50, 68) {
		t.Error("notch below centre inside star")
	}
	d := disc(10, 10, 3)
	if !d.inside(10, 12.9) || d.inside(10, 13.5) {
		t.Error("disc boundary wrong")
	}
	r := ring(disc(0, 0, 4), disc(0, 0, 2))
	if r.inside(0, 0) || !r.inside(3, 0) {
		t.Error("ring wrong")
	}
}
