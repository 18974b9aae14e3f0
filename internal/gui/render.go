package gui

import (
	"image/color"
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

const (
	fontSize      = 16
	smallFontSize = 10
	starInner     = 0.382
)

// Canvas draws frames with raylib. Calls must happen between
// rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	fig render.Figure
	vp  render.Viewport
	th  style.Theme
}

func NewCanvas(fig render.Figure) *Canvas {
	return &Canvas{fig: fig}
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(math.Round(alpha*float64(c.A))))
}

func (c *Canvas) point(p render.Point) rl.Vector2 {
	x, y := c.vp.ToPx(p)
	return rl.NewVector2(float32(x), float32(y))
}

func (c *Canvas) Begin(world float64, th style.Theme) {
	c.th = th
	c.vp = render.NewViewport(c.fig, world)
	rl.ClearBackground(th.Background)
	left, top, side := c.vp.Plot()
	rl.DrawRectangle(int32(left), int32(top), int32(side), int32(side), th.Axes)
}

func (c *Canvas) Title(text string) {
	left, top, side := c.vp.Plot()
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(left+side/2)-w/2, int32(top-0.2*c.fig.DPI)-fontSize, fontSize, c.th.Text)
}

func (c *Canvas) Grid(step float64) {
	if step <= 0 {
		return
	}
	left, top, side := c.vp.Plot()
	grid := fade(c.th.Grid, 0.2)
	for v := 0.0; v <= c.vp.World()+1e-9; v += step {
		p := c.point(render.Point{X: v, Y: v})
		for d := float32(0); d < float32(side); d += 10 {
			seg := min(6, float32(side)-d)
			rl.DrawLineV(rl.NewVector2(p.X, float32(top)+d), rl.NewVector2(p.X, float32(top)+d+seg), grid)
			rl.DrawLineV(rl.NewVector2(float32(left)+d, p.Y), rl.NewVector2(float32(left)+d+seg, p.Y), grid)
		}

		label := strconv.FormatFloat(v, 'g', -1, 64)
		w := rl.MeasureText(label, smallFontSize)
		rl.DrawText(label, int32(p.X)-w/2, int32(top+side)+6, smallFontSize, c.th.Text)
		rl.DrawText(label, int32(left)-w-6, int32(p.Y)-smallFontSize/2, smallFontSize, c.th.Text)
	}
	rl.DrawRectangleLines(int32(left), int32(top), int32(side), int32(side), c.th.Text)
}

func (c *Canvas) FillCircle(ci render.Circle) {
	center := c.point(ci.Center)
	r := float32(ci.Radius * c.vp.Scale())
	ew := float32(ci.EdgeWidth * c.fig.PointPx())
	rl.DrawCircleV(center, r, fade(ci.Fill, ci.Alpha))
	if ew > 0 {
		rl.DrawRing(center, r-ew/2, r+ew/2, 0, 360, 48, fade(ci.Edge, ci.Alpha))
	}
}

func (c *Canvas) Scatter(s render.ScatterSet) {
	ew := float32(s.EdgeWidth * c.fig.PointPx())
	fill, edge := fade(s.Fill, s.Alpha), fade(s.Edge, s.Alpha)
	for i, p := range s.Points {
		r := float32(math.Sqrt(max(s.SizeAt(i), 0)) / 2 * c.fig.PointPx())
		c.marker(s.Marker, c.point(p), r, ew, fill, edge)
	}
}

func (c *Canvas) marker(m render.Marker, center rl.Vector2, r, ew float32, fill, edge color.RGBA) {
	if m == render.MarkerStar {
		drawStar(center, r+ew/2, edge)
		drawStar(center, max(r-ew/2, 0), fill)
		return
	}
	rl.DrawCircleV(center, max(r-ew/2, 0.5), fill)
	if ew > 0 {
		rl.DrawRing(center, max(r-ew/2, 0), r+ew/2, 0, 360, 24, edge)
	}
}

// drawStar fills a five-pointed star with one point up.
func drawStar(center rl.Vector2, r float32, col color.RGBA) {
	if r <= 0 {
		return
	}
	var pts [11]rl.Vector2
	for k := range pts {
		ang := math.Pi/2 + float64(k)*math.Pi/5
		rad := float64(r)
		if k%2 == 1 {
			rad *= starInner
		}
		pts[k] = rl.NewVector2(center.X+float32(rad*math.Cos(ang)), center.Y-float32(rad*math.Sin(ang)))
	}
	for k := 0; k < 10; k++ {
		rl.DrawTriangle(center, pts[k], pts[k+1], col)
	}
}

func (c *Canvas) TextBox(text string) {
	left, top, side := c.vp.Plot()
	x, y := int32(left+0.02*side), int32(top+0.02*side)
	w := rl.MeasureText(text, fontSize)
	rl.DrawRectangle(x, y, w+12, fontSize+10, fade(c.th.Panel, 0.8))
	rl.DrawRectangleLines(x, y, w+12, fontSize+10, c.th.Text)
	rl.DrawText(text, x+6, y+5, fontSize, c.th.Text)
}

func (c *Canvas) Legend(entries []render.LegendEntry) {
	if len(entries) == 0 {
		return
	}
	const rowH, pad = 20, 6
	var maxW int32
	for _, e := range entries {
		maxW = max(maxW, rl.MeasureText(e.Label, fontSize))
	}
	left, top, side := c.vp.Plot()
	boxW := maxW + 28 + 2*pad
	boxH := int32(len(entries))*rowH + 2*pad
	x0 := int32(left+side-0.02*side) - boxW
	y0 := int32(top + 0.02*side)
	rl.DrawRectangle(x0, y0, boxW, boxH, fade(c.th.Panel, 0.9))
	rl.DrawRectangleLines(x0, y0, boxW, boxH, fade(c.th.Grid, 0.3))

	for i, e := range entries {
		cy := float32(y0 + pad + int32(i)*rowH + rowH/2)
		center := rl.NewVector2(float32(x0+pad+8), cy)
		c.marker(e.Marker, center, 6, 1, e.Fill, e.Edge)
		rl.DrawText(e.Label, x0+pad+22, int32(cy)-fontSize/2, fontSize, c.th.Text)
	}
}
