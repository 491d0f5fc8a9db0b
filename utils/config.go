package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Rows                      int           `json:"rows"`
	Cols                      int           `json:"cols"`
	GenerationIntervalSeconds float64       `json:"generation_interval_seconds"`
	ReviveProbability         float64       `json:"revive_probability"`
	Wraparound                bool          `json:"wraparound"`
	Seed                      int64         `json:"seed"`
	RandomDensity             float64       `json:"random_density"`
	AutoRestart               bool          `json:"auto_restart"`
	RestartPauseSeconds       float64       `json:"restart_pause_seconds"`
	StagnationThreshold       int           `json:"stagnation_threshold"`
	InjectionCount            int           `json:"injection_count"`
	MaxGenerations            int           `json:"max_generations"`
	StrictTiming              bool          `json:"strict_timing"`
	FrameRate                 time.Duration `json:"frame_rate"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                      30,
		Cols:                      60,
		GenerationIntervalSeconds: 1.0,
		ReviveProbability:         0,
		Wraparound:                false,
		Seed:                      1,
		RandomDensity:             0.15,
		AutoRestart:               true,
		RestartPauseSeconds:       2.0,
		StagnationThreshold:       5,
		InjectionCount:            3,
		MaxGenerations:            1000,
		StrictTiming:              false,
		FrameRate:                 50 * time.Millisecond,
	}
}

// GenerationInterval returns the configured generation interval as a duration.
func (c Config) GenerationInterval() time.Duration {
	return time.Duration(c.GenerationIntervalSeconds * float64(time.Second))
}

// RestartPause returns the configured extinction restart pause as a duration.
func (c Config) RestartPause() time.Duration {
	return time.Duration(c.RestartPauseSeconds * float64(time.Second))
}

// Validate checks configuration values that would otherwise surface as
// surprising behavior deep inside the simulation.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.GenerationIntervalSeconds <= 0 {
		return errors.Errorf("[Validate] generation interval must be positive, got %v", c.GenerationIntervalSeconds)
	}
	if c.ReviveProbability < 0 || c.ReviveProbability > 1 {
		return errors.Errorf("[Validate] revive probability must be in [0,1], got %v", c.ReviveProbability)
	}
	if c.Wraparound {
		return errors.New("[Validate] wraparound grids are not supported")
	}
	return nil
}

// LoadConfig loads configuration from JSON file
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
