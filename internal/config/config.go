package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "BMI"

	MinHeight = 100
	MaxHeight = 250
)

var (
	ErrInvalidHeight = errors.New("height out of range")
	ErrInvalidWeight = errors.New("weight must be positive")
)

// Config holds all application configuration.
// Both parts are embedded so their keys sit directly under the BMI_ prefix.
type Config struct {
	LogConfig
	InitialState
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	JSON  bool   `envconfig:"JSON_LOGS" default:"false"`
}

// InitialState holds the values the window opens with.
type InitialState struct {
	Height int     `envconfig:"HEIGHT" default:"170"`
	Weight float64 `envconfig:"WEIGHT" default:"65"`
	Metric bool    `envconfig:"METRIC" default:"true"`
}

// Load loads configuration from BMI_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogConfig: LogConfig{
			Level: "info",
		},
		InitialState: InitialState{
			Height: 170,
			Weight: 65,
			Metric: true,
		},
	}
}

// Validate checks the initial state against the slider domain.
func (c *Config) Validate() error {
	if c.Height < MinHeight || c.Height > MaxHeight {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidHeight, c.Height, MinHeight, MaxHeight)
	}
	if c.Weight <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, c.Weight)
	}
	return nil
}
