package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FPS != 10 {
		t.Errorf("expected fps 10, got %d", cfg.FPS)
	}
	if w, h := cfg.Figure.Pixels(); w != 960 || h != 800 {
		t.Errorf("expected 960x800 figure, got %dx%d", w, h)
	}
	if cfg.World.WorldSize != 800 || cfg.World.HiveRadius != 10 || cfg.World.SizeScale != 3 {
		t.Errorf("unexpected world %+v", cfg.World)
	}
	if cfg.Output != "bee_simulation.gif" {
		t.Errorf("expected bee_simulation.gif, got %s", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"fps", func(c *Config) { c.FPS = 0 }, "fps"},
		{"dpi", func(c *Config) { c.Figure.DPI = -1 }, "dpi"},
		{"figure", func(c *Config) { c.Figure.Width = 0 }, "figure size"},
		{"world", func(c *Config) { c.World.WorldSize = 0 }, "world size"},
		{"hive", func(c *Config) { c.World.HiveRadius = -1 }, "hive radius"},
		{"scale", func(c *Config) { c.World.SizeScale = 0 }, "size scale"},
		{"bee", func(c *Config) { c.BeeSize = 0 }, "bee size"},
		{"grid", func(c *Config) { c.GridDivisions = -2 }, "grid divisions"},
		{"display", func(c *Config) { c.Display = "hologram" }, "display"},
		{"theme", func(c *Config) { c.Theme = "sepia" }, "theme"},
		{"format", func(c *Config) { c.Format = "webm" }, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	for _, format := range []string{"", "gif", "AVI", "svg"} {
		cfg := DefaultConfig()
		cfg.Format = format
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q rejected: %v", format, err)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beeviz.yaml")
	cfg := DefaultConfig()
	cfg.FPS = 24
	cfg.Theme = "dark"
	cfg.World.SizeScale = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.FPS != 24 || loaded.Theme != "dark" || loaded.World.SizeScale != 5 {
		t.Errorf("round trip lost settings: %+v", loaded)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := "fps: 30\nworld:\n  size_scale: 6\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.World.SizeScale != 6 {
		t.Errorf("expected size scale 6, got %g", cfg.World.SizeScale)
	}
	if cfg.World.WorldSize != 800 {
		t.Errorf("unset world size should keep default, got %g", cfg.World.WorldSize)
	}
	if cfg.Figure.DPI != 80 {
		t.Errorf("unset dpi should keep default, got %g", cfg.Figure.DPI)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("draft")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.FPS != 5 {
		t.Errorf("expected fps 5, got %d", cfg.FPS)
	}

	cfg.FPS = 99
	if GetPreset("draft").FPS != 5 {
		t.Error("GetPreset returned a shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestRenderer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "dark"
	cfg.BeeSize = 12
	cfg.GridDivisions = 0

	r := cfg.Renderer()
	if r.Theme.Name != "dark" || r.BeeSize != 12 || r.GridDivisions != 0 {
		t.Errorf("unexpected renderer %+v", r)
	}
}
