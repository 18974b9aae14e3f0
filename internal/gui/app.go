// Package gui plays a log in a raylib window.
package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/anim"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
)

type Options struct {
	Title  string
	FPS    int
	Figure render.Figure
}

type App struct {
	Driver *anim.Driver
	Canvas *Canvas
	Head   anim.Playhead
	opts   Options
}

// initWindow opens a window sized like the figure, drawing at 60 fps while
// frames advance at the playback rate.
func initWindow(opts Options) {
	w, h := opts.Figure.Pixels()
	rl.InitWindow(int32(w), int32(h), opts.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(d *anim.Driver, opts Options) *App {
	if opts.Title == "" {
		opts.Title = "beeviz"
	}
	if opts.Figure.DPI <= 0 {
		opts.Figure = render.ReferenceFigure
	}
	return &App{
		Driver: d,
		Canvas: NewCanvas(opts.Figure),
		Head:   anim.NewPlayhead(d.Len()),
		opts:   opts,
	}
}

// Run opens the window and blocks until it is closed.
func Run(d *anim.Driver, opts Options) {
	app := NewApp(d, opts)
	initWindow(app.opts)
	defer rl.CloseWindow()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles keys and advances playback. It returns false on quit.
func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		a.Head.Toggle()
	case rl.IsKeyPressed(rl.KeyLeft):
		a.Head.Step(-1)
	case rl.IsKeyPressed(rl.KeyRight):
		a.Head.Step(1)
	case rl.IsKeyPressed(rl.KeyR):
		a.Head.Restart()
	}

	elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	a.Head.Advance(elapsed, anim.Interval(a.opts.FPS))
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if a.Driver.Len() == 0 {
		rl.ClearBackground(rl.RayWhite)
		rl.DrawText("no timesteps in log", 20, 20, fontSize, rl.Black)
	} else {
		a.Driver.Draw(a.Canvas, a.Head.Pos())
	}
	if !a.Head.Running() {
		rl.DrawText("PAUSED", 10, 10, fontSize, rl.Gray)
	}
	rl.EndDrawing()
}
