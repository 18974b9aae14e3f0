package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// BrailleCanvas draws frames as coloured braille characters for a
// terminal. Each cell holds 2x4 dots and takes the colour of the last
// primitive drawn into it.
type BrailleCanvas struct {
	Width, Height int
	Cells         [][]rune
	Colors        [][]lipgloss.Color

	world  float64
	side   int
	th     style.Theme
	title  string
	stats  string
	legend []LegendEntry
}

func NewBrailleCanvas(w, h int) *BrailleCanvas {
	c := &BrailleCanvas{}
	c.Resize(w, h)
	return c
}

// Resize changes the canvas size in cells and clears it.
func (c *BrailleCanvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	c.Width, c.Height = w, h
	c.Cells = make([][]rune, h)
	c.Colors = make([][]lipgloss.Color, h)
	for i := range c.Cells {
		c.Cells[i] = make([]rune, w)
		c.Colors[i] = make([]lipgloss.Color, w)
	}
	c.side = min(w*2, h*4)
	c.Clear()
}

// Clear resets every cell.
func (c *BrailleCanvas) Clear() {
	for i := range c.Cells {
		for j := range c.Cells[i] {
			c.Cells[i][j] = brailleBlank
			c.Colors[i][j] = ""
		}
	}
}

// Set sets a dot at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *BrailleCanvas) Set(x, y int, col lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}
	cell, row := x/2, y/4
	if cell >= c.Width || row >= c.Height {
		return
	}
	c.Cells[row][cell] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cell] = col
}

// unset clears a dot.
func (c *BrailleCanvas) unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cell, row := x/2, y/4
	if cell >= c.Width || row >= c.Height {
		return
	}
	c.Cells[row][cell] &^= rune(pixelMap[y%4][x%2])
	if c.Cells[row][cell] < brailleBlank {
		c.Cells[row][cell] = brailleBlank
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *BrailleCanvas) DrawLine(x0, y0, x1, y1 int, col lipgloss.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// toDot maps world coordinates into the square dot area.
func (c *BrailleCanvas) toDot(p Point) (int, int) {
	n := float64(c.side - 1)
	x := int(math.Round(p.X / c.world * n))
	y := int(math.Round((1 - p.Y/c.world) * n))
	return x, y
}

func (c *BrailleCanvas) Begin(world float64, th style.Theme) {
	if world <= 0 {
		world = 1
	}
	c.world = world
	c.th = th
	c.title, c.stats, c.legend = "", "", nil
	c.Clear()
}

func (c *BrailleCanvas) Title(text string) { c.title = text }

// Grid frames the world area; interior lines would drown the dots.
func (c *BrailleCanvas) Grid(step float64) {
	col := lipgloss.Color(style.Hex(c.th.Grid))
	n := c.side - 1
	c.DrawLine(0, 0, n, 0, col)
	c.DrawLine(n, 0, n, n, col)
	c.DrawLine(n, n, 0, n, col)
	c.DrawLine(0, n, 0, 0, col)
}

func (c *BrailleCanvas) FillCircle(ci Circle) {
	cx, cy := c.toDot(ci.Center)
	r := int(math.Ceil(ci.Radius / c.world * float64(c.side-1)))
	col := lipgloss.Color(style.Hex(ci.Edge))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

func (c *BrailleCanvas) Scatter(s ScatterSet) {
	col := lipgloss.Color(style.Hex(s.Fill))
	if s.Marker == MarkerStar {
		col = lipgloss.Color(style.Hex(s.Edge))
	}
	for _, p := range s.Points {
		x, y := c.toDot(p)
		c.Set(x, y, col)
		if s.Marker == MarkerStar {
			c.Set(x-1, y, col)
			c.Set(x+1, y, col)
			c.Set(x, y-1, col)
			c.Set(x, y+1, col)
		}
	}
}

func (c *BrailleCanvas) TextBox(text string) { c.stats = text }

func (c *BrailleCanvas) Legend(entries []LegendEntry) {
	c.legend = append(c.legend[:0], entries...)
}

// Caption returns the title set for the current frame.
func (c *BrailleCanvas) Caption() string { return c.title }

// Stats returns the text box contents of the current frame.
func (c *BrailleCanvas) Stats() string { return c.stats }

// LegendLines renders one coloured swatch and label per legend entry.
func (c *BrailleCanvas) LegendLines() []string {
	lines := make([]string, 0, len(c.legend))
	for _, e := range c.legend {
		glyph := "●"
		fill := e.Fill
		if e.Marker == MarkerStar {
			glyph = "✱"
			fill = e.Edge
		}
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Hex(fill))).Render(glyph)
		lines = append(lines, sw+" "+e.Label)
	}
	return lines
}

func (c *BrailleCanvas) String() string {
	var b strings.Builder
	for i, row := range c.Cells {
		for j, r := range row {
			if col := c.Colors[i][j]; col != "" && r != brailleBlank {
				b.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(r)))
				continue
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// plain returns the dots without colour.
func (c *BrailleCanvas) plain() string {
	var b strings.Builder
	for _, row := range c.Cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
