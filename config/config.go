package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"canvas2d/palette"
	"canvas2d/viewport"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the demo looks for its config when none is given.
const DefaultPath = "canvas2d.yaml"

var ErrInvalidConfig = errors.New("invalid config")

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type WindowConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	Resizable bool `yaml:"resizable"`
}

type GridConfig struct {
	Enabled bool    `yaml:"enabled"`
	Spacing float64 `yaml:"spacing"`
}

// Config is the demo's settings file.
type Config struct {
	Title         string       `yaml:"title"`
	Canvas        Size         `yaml:"canvas"`
	Window        WindowConfig `yaml:"window"`
	Filter        string       `yaml:"filter"`
	Letterbox     string       `yaml:"letterbox"`
	Background    string       `yaml:"background"`
	Grid          GridConfig   `yaml:"grid"`
	Script        string       `yaml:"script"`
	Font          string       `yaml:"font"`
	FontSize      float64      `yaml:"font_size"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	Debug         bool         `yaml:"debug"`
}

const (
	FilterNearest = "nearest"
	FilterLinear  = "linear"
)

// Default returns the built-in settings: an 800x600 canvas in a resizable
// 1024x768 window.
func Default() *Config {
	return &Config{
		Title:         "canvas2d",
		Canvas:        Size{Width: 800, Height: 600},
		Window:        WindowConfig{Width: 1024, Height: 768, Resizable: true},
		Filter:        FilterNearest,
		Letterbox:     palette.Hex(palette.Black),
		Background:    palette.Hex(palette.White),
		Grid:          GridConfig{Enabled: false, Spacing: 50},
		FontSize:      16,
		ScreenshotDir: ".",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// The result is not validated; apply any overrides with Merge and then call
// Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks every field that the demo would otherwise fail on later.
func (c *Config) Validate() error {
	if _, err := viewport.New(float64(c.Canvas.Width), float64(c.Canvas.Height)); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Filter != FilterNearest && c.Filter != FilterLinear {
		return fmt.Errorf("%w: filter %q, want %q or %q", ErrInvalidConfig, c.Filter, FilterNearest, FilterLinear)
	}
	if _, err := palette.Parse(c.Letterbox); err != nil {
		return fmt.Errorf("letterbox: %w", err)
	}
	if _, err := palette.Parse(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if c.Grid.Enabled && c.Grid.Spacing <= 0 {
		return fmt.Errorf("%w: grid spacing %v", ErrInvalidConfig, c.Grid.Spacing)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.FontSize)
	}
	return nil
}

// LetterboxColor returns the parsed letterbox color. Call Validate first.
func (c *Config) LetterboxColor() color.RGBA {
	clr, _ := palette.Parse(c.Letterbox)
	return clr
}

// BackgroundColor returns the parsed background color. Call Validate first.
func (c *Config) BackgroundColor() color.RGBA {
	clr, _ := palette.Parse(c.Background)
	return clr
}

// Merge applies CLI flag overrides; zero values leave the config as is.
func (c *Config) Merge(width, height int, script string) {
	if width > 0 {
		c.Canvas.Width = width
	}
	if height > 0 {
		c.Canvas.Height = height
	}
	if script != "" {
		c.Script = script
	}
}
