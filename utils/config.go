package utils

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Gliders             int           `json:"gliders"`
	Seed                int64         `json:"seed"` // 0 picks a time based seed
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               20,
		Height:              10,
		FrameRate:           500 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Gliders:             1,
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

// Validate checks that the configuration describes a runnable game
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be within [0,1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0 || c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.Gliders < 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] limits and counts must not be negative")
	}
	return nil
}

// Rand returns a random source for seeding, deterministic when Seed is set
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
