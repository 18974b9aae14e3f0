// Package anim walks a log timestep by timestep and hands each rendered frame
// to a sink.
package anim

import (
	"context"
	"fmt"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

// Sink receives frames in ascending timestep order. Canvas is drawn on before
// each Add.
type Sink interface {
	Canvas() render.Canvas
	Add(i int, f frame.Frame) error
}

// FrameError reports a sink failure at one frame.
type FrameError struct {
	Index    int
	Timestep int
	Err      error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (timestep %d): %v", e.Index, e.Timestep, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

type Driver struct {
	Builder  *frame.Builder
	Renderer *render.Renderer
	// Progress, when set, is called after each frame is added.
	Progress func(done, total int)
}

func New(b *frame.Builder, r *render.Renderer) *Driver {
	return &Driver{Builder: b, Renderer: r}
}

// FromTable indexes t and returns a driver over its timesteps.
func FromTable(t trace.Table, cfg frame.Config, r *render.Renderer) *Driver {
	return New(frame.NewBuilder(trace.NewIndex(t), cfg), r)
}

// Len returns the number of frames.
func (d *Driver) Len() int { return d.Builder.Index().Len() }

// Timestep returns the timestep shown by frame i.
func (d *Driver) Timestep(i int) int { return d.Builder.Index().At(i) }

// Frame builds frame i.
func (d *Driver) Frame(i int) frame.Frame {
	return d.Builder.Build(d.Timestep(i))
}

// Draw renders frame i onto c and returns it.
func (d *Driver) Draw(c render.Canvas, i int) frame.Frame {
	f := d.Frame(i)
	d.Renderer.Draw(c, f)
	return f
}

// Run renders every frame in order into sink. It stops at the first sink
// error or when ctx is cancelled; frames already added stay added.
func (d *Driver) Run(ctx context.Context, sink Sink) error {
	n := d.Len()
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := d.Draw(sink.Canvas(), i)
		if err := sink.Add(i, f); err != nil {
			return &FrameError{Index: i, Timestep: f.Timestep, Err: err}
		}
		if d.Progress != nil {
			d.Progress(i+1, n)
		}
	}
	return nil
}
