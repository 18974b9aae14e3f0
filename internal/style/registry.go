// Package style maps bee states and scene elements to display colours.
package style

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

// Style is the display encoding of one bee state.
type Style struct {
	State trace.BeeState
	Label string
	Hex   string
	Color color.RGBA
}

// Term returns the style colour for terminal rendering.
func (s Style) Term() lipgloss.Color {
	return lipgloss.Color(s.Hex)
}

var registry = [trace.NumStates]Style{
	{State: trace.Idle, Label: "Idle", Hex: "#808080"},
	{State: trace.Scout, Label: "Scout", Hex: "#0000ff"},
	{State: trace.Returning, Label: "Returning", Hex: "#008000"},
	{State: trace.Dancing, Label: "Dancing", Hex: "#ff0000"},
	{State: trace.Follower, Label: "Follower", Hex: "#00ffff"},
	{State: trace.Foraging, Label: "Foraging", Hex: "#ffa500"},
}

func init() {
	for i := range registry {
		registry[i].Color = MustHex(registry[i].Hex)
	}
}

// Lookup returns the style of s. Unknown states report false.
func Lookup(s trace.BeeState) (Style, bool) {
	if !s.Known() {
		return Style{}, false
	}
	return registry[s], true
}

// ColorOf returns the colour of s, or the zero colour for unknown states.
func ColorOf(s trace.BeeState) color.RGBA {
	st, _ := Lookup(s)
	return st.Color
}

// LabelOf returns the legend label of s, or "" for unknown states.
func LabelOf(s trace.BeeState) string {
	st, _ := Lookup(s)
	return st.Label
}

// States returns the known states in enumeration order.
func States() []trace.BeeState {
	states := make([]trace.BeeState, trace.NumStates)
	for i := range states {
		states[i] = trace.BeeState(i)
	}
	return states
}
