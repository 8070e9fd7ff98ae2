package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-bounded/rules"
)

// Output modes
const (
	ModeDisplay = "display"
	ModeText    = "text"
	ModeSave    = "save"
)

// Config holds the configuration for a run
type Config struct {
	Size             int           `json:"size"`
	Generations      int           `json:"generations"`
	FrameRate        time.Duration `json:"frame_rate"`
	Seed             int64         `json:"seed"`
	Density          float64       `json:"density"`
	Mode             string        `json:"mode"`
	Output           string        `json:"output"`
	BoardFile        string        `json:"board_file"`
	Rule             string        `json:"rule"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	CellPixels       int           `json:"cell_pixels"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:             50,
		Generations:      1000,
		FrameRate:        100 * time.Millisecond,
		Seed:             0, // time-based
		Density:          0.5,
		Mode:             ModeDisplay,
		Output:           "gameoflife.gif",
		Rule:             rules.Bounded.String(),
		UseMemoryPool:    true,
		StopOnStagnation: false,
		CellPixels:       8,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot drive a run
func (c Config) Validate() error {
	switch {
	case c.BoardFile == "" && c.Size <= 0:
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	case c.Generations < 0:
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("[Validate] density must be within [0,1], got %v", c.Density)
	case c.Mode != ModeDisplay && c.Mode != ModeText && c.Mode != ModeSave:
		return errors.Errorf("[Validate] unknown mode: %q", c.Mode)
	case c.Mode == ModeSave && c.Output == "":
		return errors.New("[Validate] save mode needs an output path")
	case c.CellPixels <= 0:
		return errors.Errorf("[Validate] cell pixels must be positive, got %d", c.CellPixels)
	}
	if _, err := rules.ParseRule(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate] failed to parse rule")
	}
	return nil
}
