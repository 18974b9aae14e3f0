package render

import (
	"fmt"
	"html"
	"image/color"
	"math"
	"strings"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

// SVGCanvas draws frames as SVG documents sized like a Figure.
type SVGCanvas struct {
	fig Figure
	l   layout
	th  style.Theme
	sb  strings.Builder
}

func NewSVGCanvas(fig Figure) *SVGCanvas {
	return &SVGCanvas{fig: fig}
}

func (c *SVGCanvas) Begin(world float64, th style.Theme) {
	c.th = th
	c.l = newLayout(c.fig, world)
	c.sb.Reset()
	w, h := c.fig.Pixels()
	c.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, w, h, w, h, style.Hex(th.Background), c.l.left, c.l.top, c.l.side, c.l.side, style.Hex(th.Axes)))
}

func (c *SVGCanvas) Title(text string) {
	c.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.1f" fill="%s">%s</text>
`, c.l.left+c.l.side/2, c.l.top-0.2*c.fig.DPI, 14*c.fig.PointPx(), style.Hex(c.th.Text), html.EscapeString(text)))
}

func (c *SVGCanvas) Grid(step float64) {
	if step <= 0 {
		return
	}
	l := c.l
	c.sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-opacity="0.2" stroke-dasharray="6 4">
`, style.Hex(c.th.Grid)))
	var labels strings.Builder
	for v := 0.0; v <= l.world+1e-9; v += step {
		x, y := l.toPx(Point{X: v, Y: v})
		c.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x, l.top, x, l.top+l.side, l.left, y, l.left+l.side, y))
		labels.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%g</text>
`, x, l.top+l.side+16, v, l.left-6, y+4, v))
	}
	c.sb.WriteString("</g>\n")
	c.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s"/>
<g font-size="10" fill="%s">
`, l.left, l.top, l.side, l.side, style.Hex(c.th.Text), style.Hex(c.th.Text)))
	c.sb.WriteString(labels.String())
	c.sb.WriteString("</g>\n")
}

func (c *SVGCanvas) FillCircle(ci Circle) {
	x, y := c.l.toPx(ci.Center)
	c.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>
`, x, y, ci.Radius*c.l.scale(), paintAttrs(ci.Fill, ci.Edge, ci.EdgeWidth*c.fig.PointPx(), ci.Alpha)))
}

func (c *SVGCanvas) Scatter(s ScatterSet) {
	c.sb.WriteString(fmt.Sprintf(`<g %s>
`, paintAttrs(s.Fill, s.Edge, s.EdgeWidth*c.fig.PointPx(), s.Alpha)))
	for i, p := range s.Points {
		x, y := c.l.toPx(p)
		r := markerRadius(s.SizeAt(i)) * c.fig.PointPx()
		c.sb.WriteString(markerElement(s.Marker, x, y, r))
	}
	c.sb.WriteString("</g>\n")
}

func (c *SVGCanvas) TextBox(text string) {
	x := c.l.left + 0.02*c.l.side
	y := c.l.top + 0.02*c.l.side
	w := float64(len(text))*7 + 10
	c.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="23" fill="%s" fill-opacity="0.8" stroke="%s"/>
<text x="%.1f" y="%.1f" font-size="12" fill="%s">%s</text>
`, x, y, w, style.Hex(c.th.Panel), style.Hex(c.th.Text), x+5, y+16, style.Hex(c.th.Text), html.EscapeString(text)))
}

func (c *SVGCanvas) Legend(entries []LegendEntry) {
	if len(entries) == 0 {
		return
	}
	const rowH, pad = 18.0, 6.0
	maxLen := 0
	for _, e := range entries {
		maxLen = max(maxLen, len(e.Label))
	}
	boxW := float64(maxLen)*7 + 28 + 2*pad
	boxH := float64(len(entries))*rowH + 2*pad
	x0 := c.l.left + c.l.side - 0.02*c.l.side - boxW
	y0 := c.l.top + 0.02*c.l.side
	c.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.9" stroke="%s" stroke-opacity="0.3"/>
`, x0, y0, boxW, boxH, style.Hex(c.th.Panel), style.Hex(c.th.Grid)))
	for i, e := range entries {
		cy := y0 + pad + float64(i)*rowH + rowH/2
		c.sb.WriteString(fmt.Sprintf(`<g %s>%s</g>
<text x="%.1f" y="%.1f" font-size="12" fill="%s">%s</text>
`, paintAttrs(e.Fill, e.Edge, 1, 1), strings.TrimSpace(markerElement(e.Marker, x0+pad+8, cy, 5)),
			x0+pad+22, cy+4, style.Hex(c.th.Text), html.EscapeString(e.Label)))
	}
}

// String closes and returns the document.
func (c *SVGCanvas) String() string {
	return c.sb.String() + "</svg>\n"
}

func paintAttrs(fill, edge color.RGBA, width, alpha float64) string {
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%.2f" opacity="%.2f"`,
		style.Hex(fill), style.Hex(edge), width, alpha)
}

func markerElement(m Marker, x, y, r float64) string {
	if m != MarkerStar {
		return fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, x, y, r)
	}
	var pts strings.Builder
	for k := 0; k < 10; k++ {
		ang := math.Pi/2 + float64(k)*math.Pi/5
		rad := r
		if k%2 == 1 {
			rad = r * starInner
		}
		if k > 0 {
			pts.WriteByte(' ')
		}
		pts.WriteString(fmt.Sprintf("%.1f,%.1f", x+rad*math.Cos(ang), y-rad*math.Sin(ang)))
	}
	return fmt.Sprintf(`<polygon points="%s"/>
`, pts.String())
}
