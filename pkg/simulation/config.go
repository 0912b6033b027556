package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// --- Environment configuration ---
type Config struct {
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Gravity     float64 `json:"gravity"`     // velocity gained per step
	Radius      float64 `json:"radius"`      // radius of every spawned body
	Restitution float64 `json:"restitution"` // (0, 1]
	Background  string  `json:"background"`  // #rrggbb
	Dt          float64 `json:"dt"`
}

// DefaultConfig mirrors the classic arena: 640x480, heavy-ish gravity,
// slightly lossy bounces, white background, one step per frame.
func DefaultConfig() Config {
	return Config{
		Name:        "classic",
		Width:       640,
		Height:      480,
		Gravity:     0.2,
		Radius:      20,
		Restitution: 0.8,
		Background:  "#ffffff",
		Dt:          1,
	}
}

// --- Loading a config file ---
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading environment file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("environment %q: %w", cfg.Name, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("arena must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", c.Radius)
	}
	if 2*c.Radius >= float64(c.Width) || 2*c.Radius >= float64(c.Height) {
		return fmt.Errorf("radius %g does not fit a %dx%d arena", c.Radius, c.Width, c.Height)
	}
	if c.Restitution <= 0 || c.Restitution > 1 {
		return fmt.Errorf("restitution must be in (0, 1], got %g", c.Restitution)
	}
	return nil
}

func (c Config) BackgroundColor() color.RGBA {
	return parseColor(c.Background)
}

// --- HEX color parser ---
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{255, 255, 255, 255}
}
