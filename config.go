package rectedit

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds editor settings. Every field has a working default, so a
// missing or partial config file is fine.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	ButtonSize    int    `yaml:"buttonSize"`
	Sound         bool   `yaml:"sound"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshotDir"`

	// Colors are hex strings: "#rrggbb" or "#rrggbbaa".
	Colors struct {
		Background string `yaml:"background"`
		Outline    string `yaml:"outline"`
		Highlight  string `yaml:"highlight"`
		Minus      string `yaml:"minus"`
		Plus       string `yaml:"plus"`
	} `yaml:"colors"`
}

// DefaultConfig returns the built-in settings: an 800x600 window, 50px
// toolbar buttons, and the classic palette.
func DefaultConfig() Config {
	var c Config
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.Title = "rectedit"
	c.ButtonSize = 50
	c.ScreenshotDir = "screenshots"
	c.Colors.Background = "#000000"
	c.Colors.Outline = "#c8c8c8"
	c.Colors.Highlight = "#c8c80a"
	c.Colors.Minus = "#c80a0a"
	c.Colors.Plus = "#0ac80a"
	return c
}

// LoadConfig reads a YAML config file, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("parse config %s: window size must be positive", path)
	}
	if cfg.ButtonSize <= 0 {
		return cfg, fmt.Errorf("parse config %s: buttonSize must be positive", path)
	}
	return cfg, nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" into an RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// mustColor parses a hex color, falling back to fallback (with a stderr
// complaint) when the string is malformed. Used for config-sourced
// colors where a bad value should not kill the editor.
func mustColor(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[rectedit] %v, using default\n", err)
		return fallback
	}
	return c
}
