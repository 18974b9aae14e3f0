package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

// starInner is the ratio of inner to outer radius of the star marker.
const starInner = 0.382

// RasterCanvas draws frames into an RGBA image. The image is reused: it is
// overwritten by the next Begin.
type RasterCanvas struct {
	fig  Figure
	img  *image.RGBA
	th   style.Theme
	l    layout
	face font.Face
}

func NewRasterCanvas(fig Figure) *RasterCanvas {
	w, h := fig.Pixels()
	return &RasterCanvas{
		fig:  fig,
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
}

// Image returns the drawn frame.
func (c *RasterCanvas) Image() *image.RGBA { return c.img }

func (c *RasterCanvas) Begin(world float64, th style.Theme) {
	c.th = th
	c.l = newLayout(c.fig, world)
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)
	draw.Draw(c.img, c.plotRect(), image.NewUniform(th.Axes), image.Point{}, draw.Src)
}

func (c *RasterCanvas) plotRect() image.Rectangle {
	l := c.l
	return image.Rect(int(l.left), int(l.top), int(l.left+l.side), int(l.top+l.side))
}

func (c *RasterCanvas) Title(text string) {
	w := font.MeasureString(c.face, text).Ceil()
	x := int(c.l.left+c.l.side/2) - w/2
	y := int(c.l.top - 0.2*c.fig.DPI)
	c.text(x, y, text, c.th.Text)
}

func (c *RasterCanvas) Grid(step float64) {
	if step <= 0 {
		return
	}
	l := c.l
	grid := withAlpha(c.th.Grid, 0.2)
	rect := c.plotRect()
	for v := 0.0; v <= l.world+1e-9; v += step {
		px, py := l.toPx(Point{X: v, Y: v})
		x, y := int(math.Round(px)), int(math.Round(py))
		c.dashed(image.Pt(x, rect.Min.Y), image.Pt(x, rect.Max.Y), grid)
		c.dashed(image.Pt(rect.Min.X, y), image.Pt(rect.Max.X, y), grid)

		label := strconv.FormatFloat(v, 'g', -1, 64)
		w := font.MeasureString(c.face, label).Ceil()
		c.text(x-w/2, rect.Max.Y+16, label, c.th.Text)
		c.text(rect.Min.X-w-6, y+4, label, c.th.Text)
	}
	c.outline(rect, withAlpha(c.th.Text, 1))
}

func (c *RasterCanvas) FillCircle(ci Circle) {
	cx, cy := c.l.toPx(ci.Center)
	r := ci.Radius * c.l.scale()
	ew := ci.EdgeWidth * c.fig.PointPx()
	c.paint(disc(cx, cy, r-ew/2), withAlpha(ci.Fill, ci.Alpha))
	if ew > 0 {
		c.paint(ring(disc(cx, cy, r+ew/2), disc(cx, cy, r-ew/2)), withAlpha(ci.Edge, ci.Alpha))
	}
}

func (c *RasterCanvas) Scatter(s ScatterSet) {
	ew := s.EdgeWidth * c.fig.PointPx()
	fill := withAlpha(s.Fill, s.Alpha)
	edge := withAlpha(s.Edge, s.Alpha)
	for i, p := range s.Points {
		cx, cy := c.l.toPx(p)
		r := markerRadius(s.SizeAt(i)) * c.fig.PointPx()
		c.marker(s.Marker, cx, cy, r, ew, fill, edge)
	}
}

func (c *RasterCanvas) marker(m Marker, cx, cy, r, ew float64, fill, edge color.NRGBA) {
	shapeOf := func(radius float64) shape {
		if m == MarkerStar {
			return star(cx, cy, radius)
		}
		return disc(cx, cy, radius)
	}
	inner := shapeOf(math.Max(r-ew/2, 0))
	c.paint(inner, fill)
	if ew > 0 {
		c.paint(ring(shapeOf(r+ew/2), inner), edge)
	}
}

func (c *RasterCanvas) TextBox(text string) {
	const pad = 5
	w := font.MeasureString(c.face, text).Ceil()
	x := int(c.l.left + 0.02*c.l.side)
	y := int(c.l.top + 0.02*c.l.side)
	box := image.Rect(x, y, x+w+2*pad, y+13+2*pad)
	c.fillRect(box, withAlpha(c.th.Panel, 0.8))
	c.outline(box, withAlpha(c.th.Text, 1))
	c.text(x+pad, y+pad+10, text, c.th.Text)
}

func (c *RasterCanvas) Legend(entries []LegendEntry) {
	if len(entries) == 0 {
		return
	}
	const rowH, pad = 18, 6
	maxW := 0
	for _, e := range entries {
		if w := font.MeasureString(c.face, e.Label).Ceil(); w > maxW {
			maxW = w
		}
	}
	boxW := maxW + 28 + 2*pad
	boxH := len(entries)*rowH + 2*pad
	x0 := int(c.l.left+c.l.side-0.02*c.l.side) - boxW
	y0 := int(c.l.top + 0.02*c.l.side)
	box := image.Rect(x0, y0, x0+boxW, y0+boxH)
	c.fillRect(box, withAlpha(c.th.Panel, 0.9))
	c.outline(box, withAlpha(c.th.Grid, 0.3))

	for i, e := range entries {
		cy := float64(y0 + pad + i*rowH + rowH/2)
		cx := float64(x0 + pad + 8)
		c.marker(e.Marker, cx, cy, 5, 1, withAlpha(e.Fill, 1), withAlpha(e.Edge, 1))
		c.text(x0+pad+22, int(cy)+4, e.Label, c.th.Text)
	}
}

func (c *RasterCanvas) text(x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (c *RasterCanvas) fillRect(r image.Rectangle, col color.NRGBA) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *RasterCanvas) outline(r image.Rectangle, col color.NRGBA) {
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	c.fillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	c.fillRect(image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1), col)
	c.fillRect(image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1), col)
}

// dashed draws an axis-aligned dashed line from a to b.
func (c *RasterCanvas) dashed(a, b image.Point, col color.NRGBA) {
	const on, off = 6, 4
	if a.X == b.X {
		for y := a.Y; y < b.Y; y += on + off {
			c.fillRect(image.Rect(a.X, y, a.X+1, min(y+on, b.Y)), col)
		}
		return
	}
	for x := a.X; x < b.X; x += on + off {
		c.fillRect(image.Rect(x, a.Y, min(x+on, b.X), a.Y+1), col)
	}
}

func (c *RasterCanvas) paint(s shape, col color.NRGBA) {
	if s.bounds.Empty() || col.A == 0 {
		return
	}
	draw.DrawMask(c.img, s.bounds, image.NewUniform(col), image.Point{}, s, s.bounds.Min, draw.Over)
}

// shape is an alpha mask defined by a point predicate on pixel centres.
type shape struct {
	bounds image.Rectangle
	inside func(x, y float64) bool
}

func (s shape) ColorModel() color.Model { return color.AlphaModel }
func (s shape) Bounds() image.Rectangle { return s.bounds }
func (s shape) At(x, y int) color.Color {
	if s.inside(float64(x)+0.5, float64(y)+0.5) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func boundsAround(cx, cy, r float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(cx-r))-1, int(math.Floor(cy-r))-1,
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1,
	)
}

func disc(cx, cy, r float64) shape {
	if r <= 0 {
		return shape{}
	}
	// Keep tiny markers visible as a single pixel.
	r = math.Max(r, 0.5)
	r2 := r * r
	return shape{
		bounds: boundsAround(cx, cy, r),
		inside: func(x, y float64) bool {
			dx, dy := x-cx, y-cy
			return dx*dx+dy*dy <= r2
		},
	}
}

// star is a five-pointed star with one point up.
func star(cx, cy, r float64) shape {
	if r <= 0 {
		return shape{}
	}
	r = math.Max(r, 0.5)
	var xs, ys [10]float64
	for k := 0; k < 10; k++ {
		ang := math.Pi/2 + float64(k)*math.Pi/5
		rad := r
		if k%2 == 1 {
			rad = r * starInner
		}
		xs[k] = cx + rad*math.Cos(ang)
		ys[k] = cy - rad*math.Sin(ang)
	}
	return shape{
		bounds: boundsAround(cx, cy, r),
		inside: func(x, y float64) bool {
			in := false
			for i, j := 0, 9; i < 10; j, i = i, i+1 {
				if (ys[i] > y) != (ys[j] > y) &&
					x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
					in = !in
				}
			}
			return in
		},
	}
}

// ring is the part of outer not covered by inner.
func ring(outer, inner shape) shape {
	if outer.inside == nil {
		return shape{}
	}
	return shape{
		bounds: outer.bounds,
		inside: func(x, y float64) bool {
			if !outer.inside(x, y) {
				return false
			}
			return inner.inside == nil || !inner.inside(x, y)
		},
	}
}
