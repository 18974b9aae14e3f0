// Package export writes rendered frames to animation files.
package export

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
)

// DefaultFPS is the reference playback rate.
const DefaultFPS = 10

const (
	FormatGIF = "gif"
	FormatAVI = "avi"
	FormatSVG = "svg"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported output formats.
func Formats() []string { return []string{FormatGIF, FormatAVI, FormatSVG} }

// Encoder accumulates raster frames into one output.
type Encoder interface {
	Add(img image.Image) error
	Close() error
}

// New returns a raster encoder writing to path.
func New(format, path string, fps int) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatGIF:
		return NewGIF(path, fps)
	case FormatAVI, "mjpeg":
		return NewMJPEG(path, fps), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// FormatOf guesses the format from a file extension. Paths without a known
// extension are treated as SVG frame directories.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return FormatGIF
	case ".avi", ".mjpeg":
		return FormatAVI
	}
	return FormatSVG
}

// Sink is a frame destination for a driver run.
type Sink interface {
	Canvas() render.Canvas
	Add(i int, f frame.Frame) error
	Close() error
}

// Open returns a sink writing format to path with frames sized by fig.
func Open(format, path string, fps int, fig render.Figure) (Sink, error) {
	if strings.ToLower(format) == FormatSVG {
		return NewSVGDir(path, fig)
	}
	enc, err := New(format, path, fps)
	if err != nil {
		return nil, err
	}
	return NewRasterSink(enc, fig), nil
}

// RasterSink draws frames on a raster canvas and feeds them to an encoder.
type RasterSink struct {
	canvas *render.RasterCanvas
	enc    Encoder
}

func NewRasterSink(enc Encoder, fig render.Figure) *RasterSink {
	return &RasterSink{canvas: render.NewRasterCanvas(fig), enc: enc}
}

func (s *RasterSink) Canvas() render.Canvas { return s.canvas }

func (s *RasterSink) Add(i int, f frame.Frame) error {
	return s.enc.Add(s.canvas.Image())
}

func (s *RasterSink) Close() error { return s.enc.Close() }
