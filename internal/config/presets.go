package config

import (
	"sort"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
)

// Presets are complete configurations selectable by name.
var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"draft": {
		Log: DefaultLog, Output: "bee_simulation_draft.gif", FPS: 5, Loop: true,
		Display: DisplayNone, Theme: "light", BeeSize: 20, GridDivisions: 4, DataDir: DefaultDataDir,
		World:  frame.DefaultConfig(),
		Figure: render.Figure{Width: 6, Height: 5, DPI: 60},
	},
	"hd": {
		Log: DefaultLog, Output: "bee_simulation_hd.avi", Format: "avi", FPS: 25, Loop: true,
		Display: DisplayNone, Theme: "light", BeeSize: 30, GridDivisions: 8, DataDir: DefaultDataDir,
		World:  frame.DefaultConfig(),
		Figure: render.Figure{Width: 12, Height: 10, DPI: 160},
	},
	"dark": {
		Log: DefaultLog, Output: DefaultOutput, FPS: DefaultFPS, Loop: true, Dither: true,
		Display: DisplayTUI, Theme: "dark", BeeSize: 30, GridDivisions: 8, DataDir: DefaultDataDir,
		World:  frame.DefaultConfig(),
		Figure: render.ReferenceFigure,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
