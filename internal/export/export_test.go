package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/anim"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

var small = render.Figure{Width: 2, Height: 2, DPI: 40}

var table = trace.Table{
	{Timestep: 0, Kind: trace.Bee, X: 5, Y: 5, State: trace.Scout},
	{Timestep: 0, Kind: trace.Flower, X: 10, Y: 10, Nectar: 4},
	{Timestep: 1, Kind: trace.Bee, X: 6, Y: 6, State: trace.Returning},
	{Timestep: 3, Kind: trace.Bee, X: 7, Y: 7, State: trace.Dancing},
}

func driver() *anim.Driver {
	return anim.FromTable(table, frame.DefaultConfig(), render.NewRenderer(style.ThemeLight))
}

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGIFDelay(t *testing.T) {
	tests := []struct {
		fps  int
		want int
	}{
		{10, 10},
		{0, 10},
		{-3, 10},
		{25, 4},
		{30, 3},
		{500, 1},
	}
	for _, tt := range tests {
		g := &GIF{FPS: tt.fps}
		if got := g.Delay(); got != tt.want {
			t.Errorf("Delay() at %d fps = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestGIFEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	sink, err := Open(FormatGIF, path, 10, small)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := driver().Run(context.Background(), sink); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("frames = %d, want 3", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 10 {
			t.Errorf("delay[%d] = %d, want 10", i, d)
		}
	}
	if g.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0", g.LoopCount)
	}
	if b := g.Image[0].Bounds(); b.Dx() != 80 || b.Dy() != 80 {
		t.Errorf("frame size = %v, want 80x80", b)
	}
}

func TestGIFDither(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.gif")
	g, err := NewGIF(path, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Dither = true
	g.Loop = false
	if err := g.Add(solid(color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff})); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestGIFEmpty(t *testing.T) {
	g, err := NewGIF(filepath.Join(t.TempDir(), "e.gif"), 10)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Close(); err == nil {
		t.Error("Close with no frames succeeded")
	}
}

func TestGIFCreateFails(t *testing.T) {
	_, err := NewGIF(filepath.Join(t.TempDir(), "missing", "x.gif"), 10)
	if err == nil {
		t.Error("NewGIF into a missing directory succeeded")
	}
}

func TestMJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	enc, err := New(FormatAVI, path, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, c := range []color.Color{color.White, color.Black} {
		if err := enc.Add(solid(c)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Contains(data[:16], []byte("AVI ")) {
		t.Errorf("not an AVI file: % x", data[:16])
	}
}

func TestSVGDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	sink, err := Open(FormatSVG, dir, 10, small)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := driver().Run(context.Background(), sink); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("files = %d, want 3", len(entries))
	}
	if entries[2].Name() != "frame_00002.svg" {
		t.Errorf("last file = %q", entries[2].Name())
	}
	last, err := os.ReadFile(filepath.Join(dir, "frame_00002.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(last), "Timestep: 3") {
		t.Error("frame_00002.svg does not show timestep 3")
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := New("webm", filepath.Join(t.TempDir(), "x"), 10)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"bee_simulation.gif": FormatGIF,
		"OUT.GIF":            FormatGIF,
		"movie.avi":          FormatAVI,
		"frames":             FormatSVG,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}
