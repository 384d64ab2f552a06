package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the configurable colors. Values can be ANSI color
// numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
}

// BaseThemeNames lists the theme bases; the dark/light variant is picked
// from the terminal background when no suffix is given.
var BaseThemeNames = []string{
	"default",
	"vivid",
	"mono",
}

// ThemeNames lists every theme with its explicit dark/light variant.
var ThemeNames = []string{
	"default-dark", "default-light",
	"vivid-dark", "vivid-light",
	"mono-dark", "mono-light",
}

// Themes contains the built-in palettes. "default" sticks to the
// classic bright/dark ANSI pairs, "vivid" turns the saturation up, and
// "mono" is pure grayscale for colorblind or minimal setups.
var Themes = map[string]ColorConfig{
	"default-dark":  {Success: "10", Error: "9", Info: "14", Muted: "245", Header: "bold", Prompt: "14"},
	"default-light": {Success: "22", Error: "88", Info: "25", Muted: "242", Header: "bold", Prompt: "25"},
	"vivid-dark":    {Success: "118", Error: "204", Info: "45", Muted: "246", Header: "bold", Prompt: "45"},
	"vivid-light":   {Success: "35", Error: "125", Info: "26", Muted: "244", Header: "bold", Prompt: "26"},
	"mono-dark":     {Success: "253", Error: "248", Info: "251", Muted: "241", Header: "bold", Prompt: "253"},
	"mono-light":    {Success: "233", Error: "240", Info: "235", Muted: "247", Header: "bold", Prompt: "233"},
}

// IsDarkBackground returns true if the terminal has a dark background.
// Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName returns the full theme name. A name without a
// -dark/-light suffix gets one appended from terminal background
// detection.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	variant := "-light"
	if IsDarkBackground() {
		variant = "-dark"
	}
	return name + variant
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority per color:
// 1. Environment variable (CMDTREE_COLOR_*)
// 2. Config file value (color_*)
// 3. The active theme (CMDTREE_THEME, then the "theme" config key)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	result := activeTheme(cfg)

	overrides := []struct {
		key string
		dst *string
	}{
		{"color_success", &result.Success},
		{"color_error", &result.Error},
		{"color_info", &result.Info},
		{"color_muted", &result.Muted},
		{"color_header", &result.Header},
		{"color_prompt", &result.Prompt},
	}
	for _, o := range overrides {
		if value := lookupColor(o.key, cfg); value != "" {
			*o.dst = value
		}
	}

	return result
}

// lookupColor resolves one color key, environment first, config second.
func lookupColor(key string, cfg map[string]string) string {
	if value := os.Getenv("CMDTREE_" + strings.ToUpper(key)); value != "" {
		return value
	}
	return cfg[key]
}

// activeTheme picks the theme palette. CMDTREE_THEME beats the config
// "theme" key, and an unknown name falls back to default-dark.
func activeTheme(cfg map[string]string) ColorConfig {
	name := os.Getenv("CMDTREE_THEME")
	if name == "" {
		name = cfg["theme"]
	}
	if name == "" {
		name = "default"
	}

	theme, ok := Themes[ResolveThemeName(name)]
	if !ok {
		theme = Themes["default-dark"]
	}
	return theme
}
