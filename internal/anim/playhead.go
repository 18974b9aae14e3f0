package anim

import "time"

// Playhead tracks the shown frame of a looping playback.
type Playhead struct {
	n       int
	pos     int
	running bool
	acc     time.Duration
}

// NewPlayhead returns a running playhead over n frames.
func NewPlayhead(n int) Playhead {
	return Playhead{n: max(n, 0), running: true}
}

func (p Playhead) Pos() int      { return p.pos }
func (p Playhead) Len() int      { return p.n }
func (p Playhead) Running() bool { return p.running }

// Toggle pauses or resumes playback.
func (p *Playhead) Toggle() { p.running = !p.running }

// Step pauses and moves delta frames, stopping at either end.
func (p *Playhead) Step(delta int) {
	p.running = false
	p.Seek(p.pos + delta)
}

// Seek moves to frame i, clamped to the valid range.
func (p *Playhead) Seek(i int) {
	p.pos = min(max(i, 0), max(p.n-1, 0))
}

func (p *Playhead) Restart() {
	p.pos = 0
	p.acc = 0
}

// Resize changes the frame count, keeping the position in range.
func (p *Playhead) Resize(n int) {
	p.n = max(n, 0)
	p.Seek(p.pos)
}

// Tick advances one frame when running, wrapping to the start.
func (p *Playhead) Tick() {
	if p.running && p.n > 0 {
		p.pos = (p.pos + 1) % p.n
	}
}

// Advance accumulates wall time and ticks once per interval. It returns the
// number of frames advanced.
func (p *Playhead) Advance(elapsed, interval time.Duration) int {
	if !p.running || interval <= 0 {
		return 0
	}
	p.acc += elapsed
	ticks := 0
	for p.acc >= interval {
		p.acc -= interval
		p.Tick()
		ticks++
	}
	return ticks
}

// Interval returns the frame duration at fps frames per second.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 10
	}
	return time.Second / time.Duration(fps)
}
