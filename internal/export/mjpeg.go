package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// MJPEG writes frames as JPEG images into an AVI container. The video size
// is taken from the first frame.
type MJPEG struct {
	Path    string
	FPS     int
	Quality int

	aw  mjpeg.AviWriter
	buf bytes.Buffer
}

func NewMJPEG(path string, fps int) *MJPEG {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &MJPEG{Path: path, FPS: fps, Quality: 90}
}

func (m *MJPEG) Add(img image.Image) error {
	b := img.Bounds()
	if m.aw == nil {
		aw, err := mjpeg.New(m.Path, int32(b.Dx()), int32(b.Dy()), int32(m.FPS))
		if err != nil {
			return fmt.Errorf("export: create avi: %w", err)
		}
		m.aw = aw
	}

	m.buf.Reset()
	if err := jpeg.Encode(&m.buf, img, &jpeg.Options{Quality: m.Quality}); err != nil {
		return fmt.Errorf("export: encode jpeg: %w", err)
	}
	if err := m.aw.AddFrame(m.buf.Bytes()); err != nil {
		return fmt.Errorf("export: add avi frame: %w", err)
	}
	return nil
}

func (m *MJPEG) Close() error {
	if m.aw == nil {
		return fmt.Errorf("export: avi has no frames")
	}
	return m.aw.Close()
}
