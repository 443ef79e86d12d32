package config

import (
	"os"
	"path/filepath"
	"testing"

	"canvas2d/palette"
	"canvas2d/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas2d.yaml")
	data := "canvas:\n  width: 320\n  height: 240\nfilter: linear\nletterbox: \"#202020\"\ngrid:\n  enabled: true\n  spacing: 16\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 320, Height: 240}, cfg.Canvas)
	assert.Equal(t, FilterLinear, cfg.Filter)
	assert.True(t, cfg.Grid.Enabled)
	assert.Equal(t, 16.0, cfg.Grid.Spacing)
	// unset fields keep their defaults
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "canvas2d", cfg.Title)
	assert.Equal(t, uint8(0x20), cfg.LetterboxColor().R)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
		return path
	}

	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero.yaml", "canvas:\n  width: 0\n", viewport.ErrInvalidSize},
		{"filter.yaml", "filter: bicubic\n", ErrInvalidConfig},
		{"color.yaml", "letterbox: chartreuse-ish\n", palette.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Load only parses; the bad value surfaces from Validate.
			cfg, err := Load(write(tt.name, tt.data))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	_, err := Load(write("yaml.yaml", "canvas: [\n"))
	assert.Error(t, err)
}

func TestLoad_OverriddenBeforeValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas2d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas:\n  width: 0\n  height: 240\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), viewport.ErrInvalidSize)

	// --width fixes the file's zero width.
	cfg.Merge(640, 0, "")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Size{Width: 640, Height: 240}, cfg.Canvas)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window", func(c *Config) { c.Window.Height = 0 }},
		{"grid spacing", func(c *Config) { c.Grid = GridConfig{Enabled: true, Spacing: 0} }},
		{"font size", func(c *Config) { c.FontSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := Default()
	cfg.Canvas = Size{Width: 256, Height: 224}
	cfg.Script = "scenes/demo.star"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMerge(t *testing.T) {
	cfg := Default()
	cfg.Merge(0, 0, "")
	assert.Equal(t, Default(), cfg)

	cfg.Merge(640, 0, "x.star")
	assert.Equal(t, Size{Width: 640, Height: 600}, cfg.Canvas)
	assert.Equal(t, "x.star", cfg.Script)
}
