package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
)

// SVGDir writes each frame as frame_NNNNN.svg into a directory.
type SVGDir struct {
	Dir    string
	canvas *render.SVGCanvas
	count  int
}

func NewSVGDir(dir string, fig render.Figure) (*SVGDir, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export: create svg dir: %w", err)
	}
	return &SVGDir{Dir: dir, canvas: render.NewSVGCanvas(fig)}, nil
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.svg", i)
}

func (s *SVGDir) Canvas() render.Canvas { return s.canvas }

func (s *SVGDir) Add(i int, f frame.Frame) error {
	path := filepath.Join(s.Dir, FrameName(i))
	if err := os.WriteFile(path, []byte(s.canvas.String()), 0644); err != nil {
		return fmt.Errorf("export: write svg: %w", err)
	}
	s.count++
	return nil
}

// Len returns the number of frames written.
func (s *SVGDir) Len() int { return s.count }

func (s *SVGDir) Close() error { return nil }
