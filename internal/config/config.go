package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/export"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/frame"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/render"
	"github.com/ognjenzekovic/bee-foraging-hpc/internal/style"
)

const (
	DefaultLog           = "positions.csv"
	DefaultOutput        = "bee_simulation.gif"
	DefaultFPS           = 10
	DefaultGridDivisions = 8
	DefaultDataDir       = ".beeviz"
)

const (
	DisplayWindow = "window"
	DisplayTUI    = "tui"
	DisplayNone   = "none"
)

type Config struct {
	Log           string        `yaml:"log"`
	Output        string        `yaml:"output"`
	Format        string        `yaml:"format,omitempty"`
	FPS           int           `yaml:"fps"`
	Loop          bool          `yaml:"loop"`
	Dither        bool          `yaml:"dither"`
	Display       string        `yaml:"display"`
	Theme         string        `yaml:"theme"`
	BeeSize       float64       `yaml:"bee_size"`
	GridDivisions int           `yaml:"grid_divisions"`
	DataDir       string        `yaml:"data_dir"`
	World         frame.Config  `yaml:"world"`
	Figure        render.Figure `yaml:"figure"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:           DefaultLog,
		Output:        DefaultOutput,
		FPS:           DefaultFPS,
		Loop:          true,
		Display:       DisplayWindow,
		Theme:         style.ThemeLight.Name,
		BeeSize:       render.DefaultBeeSize,
		GridDivisions: DefaultGridDivisions,
		DataDir:       DefaultDataDir,
		World:         frame.DefaultConfig(),
		Figure:        render.ReferenceFigure,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot drive a render.
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	case c.Figure.DPI <= 0:
		return fmt.Errorf("config: dpi must be positive, got %g", c.Figure.DPI)
	case c.Figure.Width <= 0 || c.Figure.Height <= 0:
		return fmt.Errorf("config: figure size must be positive, got %gx%g", c.Figure.Width, c.Figure.Height)
	case c.World.WorldSize <= 0:
		return fmt.Errorf("config: world size must be positive, got %g", c.World.WorldSize)
	case c.World.HiveRadius < 0:
		return fmt.Errorf("config: hive radius must not be negative, got %g", c.World.HiveRadius)
	case c.World.SizeScale <= 0:
		return fmt.Errorf("config: size scale must be positive, got %g", c.World.SizeScale)
	case c.BeeSize <= 0:
		return fmt.Errorf("config: bee size must be positive, got %g", c.BeeSize)
	case c.GridDivisions < 0:
		return fmt.Errorf("config: grid divisions must not be negative, got %d", c.GridDivisions)
	case !slices.Contains([]string{DisplayWindow, DisplayTUI, DisplayNone}, c.Display):
		return fmt.Errorf("config: unknown display %q", c.Display)
	case !slices.Contains(style.ThemeNames(), c.Theme):
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	case c.Format != "" && !slices.Contains(export.Formats(), strings.ToLower(c.Format)):
		return fmt.Errorf("config: unknown format %q (want one of %s)", c.Format, strings.Join(export.Formats(), ", "))
	}
	return nil
}

// Renderer returns a renderer configured by c.
func (c *Config) Renderer() *render.Renderer {
	r := render.NewRenderer(style.GetTheme(c.Theme))
	r.BeeSize = c.BeeSize
	r.GridDivisions = c.GridDivisions
	return r
}
