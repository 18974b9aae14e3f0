// Package player plays a log as braille frames in the terminal.
package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/anim"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/stats"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/watch"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	panelWidth    = 42
	graphWindow   = 60
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Padding(1, 0)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type TickMsg time.Time

// ChangedMsg reports that the log on disk changed.
type ChangedMsg struct{}

// ReloadedMsg carries the driver of a reloaded log.
type ReloadedMsg struct {
	Driver *anim.Driver
	Err    error
}

// WatchErrMsg reports a failure of the log watcher.
type WatchErrMsg struct {
	Err error
}

type Options struct {
	Name string
	FPS  int
	// Reload rebuilds the driver after the log changed.
	Reload func() (*anim.Driver, error)
}

// Model is the bubbletea model of the player.
type Model struct {
	driver        *anim.Driver
	opts          Options
	canvas        *render.BrailleCanvas
	series        stats.Series
	head          anim.Playhead
	width, height int
	help          help.Model
	showHelp      bool
	status        string
}

func New(d *anim.Driver, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 10
	}
	m := Model{
		driver: d,
		opts:   opts,
		canvas: render.NewBrailleCanvas(1, 1),
		series: stats.Collect(d),
		head:   anim.NewPlayhead(d.Len()),
		help:   help.New(),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Pos returns the current frame position.
func (m Model) Pos() int { return m.head.Pos() }

// Running reports whether playback is advancing.
func (m Model) Running() bool { return m.head.Running() }

// Theme returns the theme frames are drawn with.
func (m Model) Theme() style.Theme { return m.driver.Renderer.Theme }

func (m Model) tick() tea.Cmd {
	return tea.Tick(anim.Interval(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.canvas.Resize(max(w-panelWidth-6, 10), max(h-4, 5))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			m.head.Toggle()
		case key.Matches(msg, keys.Prev):
			m.head.Step(-1)
		case key.Matches(msg, keys.Next):
			m.head.Step(1)
		case key.Matches(msg, keys.Restart):
			m.head.Restart()
		case key.Matches(msg, keys.Theme):
			m.driver.Renderer.Theme = style.NextTheme(m.driver.Renderer.Theme)
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TickMsg:
		m.head.Tick()
		return m, m.tick()

	case ChangedMsg:
		if m.opts.Reload == nil {
			return m, nil
		}
		reload := m.opts.Reload
		return m, func() tea.Msg {
			d, err := reload()
			return ReloadedMsg{Driver: d, Err: err}
		}

	case WatchErrMsg:
		m.status = fmt.Sprintf("watch: %v", msg.Err)

	case ReloadedMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.Err)
			return m, nil
		}
		m.swap(msg.Driver)
	}
	return m, nil
}

// swap replaces the driver, staying on the current timestep when the new log
// still has it.
func (m *Model) swap(d *anim.Driver) {
	ts := -1
	if m.driver.Len() > 0 {
		ts = m.driver.Timestep(m.head.Pos())
	}
	d.Renderer.Theme = m.driver.Renderer.Theme
	m.driver = d
	m.series = stats.Collect(d)
	m.status = fmt.Sprintf("reloaded at %s", time.Now().Format("15:04:05"))

	m.head.Resize(d.Len())
	if i := d.Builder.Index().Position(ts); i >= 0 {
		m.head.Seek(i)
	}
}

func (m Model) View() string {
	if m.driver.Len() == 0 {
		return headerStyle.Render(m.opts.Name) + "\n\nno timesteps in log\n\n" + m.help.View(keys)
	}

	pos := m.head.Pos()
	f := m.driver.Draw(m.canvas, pos)
	canvasView := canvasStyle.Render(headerStyle.Render(m.canvas.Caption()) + "\n" + m.canvas.String())

	var s strings.Builder
	status := "PLAYING"
	if !m.head.Running() {
		status = "PAUSED"
	}
	s.WriteString(headerStyle.Render(strings.ToUpper(m.opts.Name)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", pos+1, m.driver.Len())) + "\n")
	s.WriteString(labelStyle.Render("Timestep") + valueStyle.Render(fmt.Sprintf("%d", f.Timestep)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.driver.Renderer.Theme.Name) + "\n\n")
	for _, line := range m.canvas.LegendLines() {
		s.WriteString(line + "\n")
	}
	s.WriteString("\n" + valueStyle.Render(m.canvas.Stats()) + "\n")

	if hist := m.history(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Bees"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.status != "" {
		s.WriteString(errorStyle.Render(m.status) + "\n")
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
	footer := m.help.ShortHelpView(keys.ShortHelp())
	if m.showHelp {
		footer = m.help.FullHelpView(keys.FullHelp())
	}
	return truncateLines(mainView+"\n"+footer, m.width)
}

// history returns the bee counts of the frames leading up to the current one.
func (m Model) history() []float64 {
	bees := m.series.Bees()
	pos := m.head.Pos()
	if pos >= len(bees) {
		return nil
	}
	end := pos + 1
	return bees[max(0, end-graphWindow):end]
}

// truncateLines cuts each line to at most width visible cells, keeping ANSI
// escape codes intact.
func truncateLines(content string, width int) string {
	if width <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

// Run plays m full screen. Changes seen by w, when not nil, reload the log.
func Run(m Model, w *watch.Watcher) error {
	if w != nil {
		m.status = "watching " + w.Path()
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if w != nil {
		done := make(chan struct{})
		defer close(done)
		go forward(w, p.Send, done)
	}
	_, err := p.Run()
	return err
}

// forward relays watcher signals and errors to send until done is closed.
func forward(w *watch.Watcher, send func(tea.Msg), done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-w.Changes():
			send(ChangedMsg{})
		case err := <-w.Errors():
			send(WatchErrMsg{Err: err})
		}
	}
}
