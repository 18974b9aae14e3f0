package player

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Pause   key.Binding
	Prev    key.Binding
	Next    key.Binding
	Restart key.Binding
	Theme   key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous frame")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next frame")),
	Restart: key.NewBinding(key.WithKeys("home", "r"), key.WithHelp("home/r", "restart")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Prev, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Prev, k.Next, k.Restart},
		{k.Theme, k.Help, k.Quit},
	}
}
