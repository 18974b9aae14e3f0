package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
)

// GIF buffers paletted frames and writes the animation on Close.
type GIF struct {
	FPS int
	// Loop repeats the animation forever; otherwise it plays once.
	Loop bool
	// Dither uses Floyd-Steinberg error diffusion when mapping to the palette.
	Dither bool

	f    *os.File
	anim gif.GIF
}

// NewGIF creates path and returns a looping encoder.
func NewGIF(path string, fps int) (*GIF, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: create gif: %w", err)
	}
	return &GIF{FPS: fps, Loop: true, f: f}, nil
}

// Delay returns the frame delay in hundredths of a second.
func (g *GIF) Delay() int {
	fps := g.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return max(1, int(math.Round(100/float64(fps))))
}

func (g *GIF) Add(img image.Image) error {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	if g.Dither {
		draw.FloydSteinberg.Draw(p, b, img, b.Min)
	} else {
		draw.Draw(p, b, img, b.Min, draw.Src)
	}
	g.anim.Image = append(g.anim.Image, p)
	g.anim.Delay = append(g.anim.Delay, g.Delay())
	return nil
}

// Len returns the number of buffered frames.
func (g *GIF) Len() int { return len(g.anim.Image) }

func (g *GIF) Close() error {
	defer g.f.Close()
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("export: gif has no frames")
	}
	g.anim.LoopCount = 0
	if !g.Loop {
		g.anim.LoopCount = -1
	}
	if err := gif.EncodeAll(g.f, &g.anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return g.f.Close()
}
