package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Size)
	assert.Equal(t, 0.5, cfg.Density)
	assert.Equal(t, "bounded", cfg.Rule)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": 12, "mode": "save", "frame_rate": 50000000}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, ModeSave, cfg.Mode)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameRate)
	assert.Equal(t, 1000, cfg.Generations)
	assert.Equal(t, "gameoflife.gif", cfg.Output)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[LoadConfig] failed to read file")
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size":`), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative generations", func(c *Config) { c.Generations = -1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"density above one", func(c *Config) { c.Density = 1.2 }},
		{"unknown mode", func(c *Config) { c.Mode = "video" }},
		{"save without output", func(c *Config) { c.Mode = ModeSave; c.Output = "" }},
		{"unknown rule", func(c *Config) { c.Rule = "seeds" }},
		{"zero cell pixels", func(c *Config) { c.CellPixels = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := DefaultConfig()
	cfg.Size = 0
	cfg.BoardFile = "board.txt"
	assert.NoError(t, cfg.Validate(), "board file supplies the size")
}
