package simulation

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.json")
	data := `{"name":"test","width":320,"height":240,"gravity":0.5,"radius":10,"restitution":0.9,"background":"#102030","dt":1}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "test" || cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BackgroundColor() != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Errorf("background = %v", cfg.BackgroundColor())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"zero dt", func(c *Config) { c.Dt = 0 }, false},
		{"zero radius", func(c *Config) { c.Radius = 0 }, false},
		{"radius too large", func(c *Config) { c.Radius = 300 }, false},
		{"restitution zero", func(c *Config) { c.Restitution = 0 }, false},
		{"restitution above one", func(c *Config) { c.Restitution = 1.1 }, false},
		{"restitution one", func(c *Config) { c.Restitution = 1 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseColorFallback(t *testing.T) {
	if got := parseColor("not-a-color"); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("fallback = %v", got)
	}
	if got := parseColor("#ff8000"); got != (color.RGBA{0xff, 0x80, 0x00, 255}) {
		t.Errorf("parsed = %v", got)
	}
}
