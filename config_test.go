package rectedit

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("default window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.ButtonSize != 50 {
		t.Errorf("default buttonSize = %d, want 50", cfg.ButtonSize)
	}
	if cfg.Sound {
		t.Error("sound should default to off")
	}
	for name, s := range map[string]string{
		"background": cfg.Colors.Background,
		"outline":    cfg.Colors.Outline,
		"highlight":  cfg.Colors.Highlight,
		"minus":      cfg.Colors.Minus,
		"plus":       cfg.Colors.Plus,
	} {
		if _, err := ParseHexColor(s); err != nil {
			t.Errorf("default %s color %q does not parse: %v", name, s, err)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("missing file should yield defaults, got width %d", cfg.Window.Width)
	}
}

func TestLoadConfigPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rectedit.yaml")
	data := []byte("window:\n  width: 1024\n  height: 768\nsound: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Sound {
		t.Error("sound not read from file")
	}
	// Unset keys keep their defaults.
	if cfg.ButtonSize != 50 {
		t.Errorf("buttonSize = %d, want default 50", cfg.ButtonSize)
	}
	if cfg.Colors.Outline != "#c8c8c8" {
		t.Errorf("outline color = %q, want default", cfg.Colors.Outline)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "window: [oops"},
		{"zero width", "window:\n  width: 0\n"},
		{"negative buttonSize", "buttonSize: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rectedit.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig accepted a bad config")
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"rgb", "#c8c80a", color.RGBA{200, 200, 10, 255}, false},
		{"rgba", "#c8c80a80", color.RGBA{200, 200, 10, 128}, false},
		{"black", "#000000", color.RGBA{0, 0, 0, 255}, false},
		{"no hash", "c8c80a", color.RGBA{}, true},
		{"too short", "#fff", color.RGBA{}, true},
		{"not hex", "#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
