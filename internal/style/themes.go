package style

import (
	"fmt"
	"image/color"
	"strconv"
)

// Theme defines the colours of the scene around the bees.
type Theme struct {
	Name       string
	Background color.RGBA // figure
	Axes       color.RGBA // world area
	Grid       color.RGBA
	Text       color.RGBA
	HiveFill   color.RGBA
	HiveEdge   color.RGBA
	FlowerFill color.RGBA
	FlowerEdge color.RGBA
	BeeEdge    color.RGBA
	Panel      color.RGBA // legend and stats boxes
}

// Available themes
var (
	ThemeLight = Theme{
		Name:       "light",
		Background: MustHex("#ffffff"),
		Axes:       MustHex("#f0f0f0"),
		Grid:       MustHex("#000000"),
		Text:       MustHex("#000000"),
		HiveFill:   MustHex("#a52a2a"), // brown
		HiveEdge:   MustHex("#8b4513"), // saddlebrown
		FlowerFill: MustHex("#ffc0cb"), // pink
		FlowerEdge: MustHex("#ff0000"),
		BeeEdge:    MustHex("#000000"),
		Panel:      MustHex("#ffffff"),
	}

	ThemeDark = Theme{
		Name:       "dark",
		Background: MustHex("#0a0a0a"),
		Axes:       MustHex("#1a1a1a"),
		Grid:       MustHex("#888888"),
		Text:       MustHex("#e0e0e0"),
		HiveFill:   MustHex("#cd853f"),
		HiveEdge:   MustHex("#deb887"),
		FlowerFill: MustHex("#ff69b4"),
		FlowerEdge: MustHex("#ff4444"),
		BeeEdge:    MustHex("#e0e0e0"),
		Panel:      MustHex("#222222"),
	}

	// Themes lists every theme, default first.
	Themes = []Theme{
		ThemeLight,
		ThemeDark,
	}
)

// GetTheme returns a theme by name, falling back to the light theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLight
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// ParseHex parses a #rrggbb colour.
func ParseHex(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("style: invalid hex colour %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("style: invalid hex colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHex is ParseHex for package-level tables.
func MustHex(hex string) color.RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
