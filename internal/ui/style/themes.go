package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "242",
		Header:  "bold",
	},

	"mono-dark": {
		Success: "255",
		Warning: "250",
		Error:   "bold",
		Info:    "252",
		Muted:   "243",
		Header:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "235",
		Muted:   "245",
		Header:  "bold",
	},

	"ocean-dark": {
		Success: "79",
		Warning: "222",
		Error:   "210",
		Info:    "75",
		Muted:   "66",
		Header:  "bold",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "160",
		Info:    "25",
		Muted:   "67",
		Header:  "bold",
	},

	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
	},
	"contrast-light": {
		Success: "22",
		Warning: "94",
		Error:   "88",
		Info:    "18",
		Muted:   "236",
		Header:  "bold",
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (FANOUT_COLOR_*)
// 2. Config file value
// 3. Theme value (from the theme key)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("FANOUT_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	// Get base theme (fall back to default-dark if unknown)
	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme

	for configKey, fieldName := range colorConfigKeys {
		envKey := "FANOUT_" + strings.ToUpper(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	}
}
