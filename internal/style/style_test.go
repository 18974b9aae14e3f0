package style

import (
	"image/color"
	"testing"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

func TestRegistryTotal(t *testing.T) {
	tests := []struct {
		state trace.BeeState
		label string
		hex   string
	}{
		{trace.Idle, "Idle", "#808080"},
		{trace.Scout, "Scout", "#0000ff"},
		{trace.Returning, "Returning", "#008000"},
		{trace.Dancing, "Dancing", "#ff0000"},
		{trace.Follower, "Follower", "#00ffff"},
		{trace.Foraging, "Foraging", "#ffa500"},
	}

	for _, tt := range tests {
		if got := LabelOf(tt.state); got != tt.label {
			t.Errorf("LabelOf(%d) = %q, want %q", tt.state, got, tt.label)
		}
		if got := Hex(ColorOf(tt.state)); got != tt.hex {
			t.Errorf("ColorOf(%d) = %s, want %s", tt.state, got, tt.hex)
		}
		st, ok := Lookup(tt.state)
		if !ok || st.State != tt.state {
			t.Errorf("Lookup(%d) = %+v, %v", tt.state, st, ok)
		}
		if st.Color.A != 0xff {
			t.Errorf("state %d colour not opaque", tt.state)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	for _, s := range []trace.BeeState{-1, 6, 99} {
		if _, ok := Lookup(s); ok {
			t.Errorf("Lookup(%d) reported known", s)
		}
		if got := LabelOf(s); got != "" {
			t.Errorf("LabelOf(%d) = %q, want empty", s, got)
		}
		if got := ColorOf(s); got != (color.RGBA{}) {
			t.Errorf("ColorOf(%d) = %v, want zero", s, got)
		}
	}
}

func TestStatesOrder(t *testing.T) {
	states := States()
	if len(states) != trace.NumStates {
		t.Fatalf("expected %d states, got %d", trace.NumStates, len(states))
	}
	for i, s := range states {
		if int(s) != i {
			t.Errorf("States()[%d] = %d", i, s)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffa500")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != (color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}) {
		t.Errorf("ParseHex = %v", c)
	}

	for _, bad := range []string{"", "ffa500", "#ffa5", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) expected error", bad)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("dark").Name != "dark" {
		t.Error("expected dark theme")
	}
	if GetTheme("nonexistent").Name != "light" {
		t.Error("unknown theme should fall back to light")
	}
	if NextTheme(ThemeLight).Name != "dark" || NextTheme(ThemeDark).Name != "light" {
		t.Error("NextTheme should cycle")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
