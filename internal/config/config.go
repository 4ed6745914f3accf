// Package config holds the YAML-backed runtime configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS          = 30
	DefaultPeriod       = 365.0
	DefaultTimeScale    = 1.0
	DefaultTrailLength  = 180
	DefaultCameraHeight = 1500.0
)

type Config struct {
	FPS           int          `yaml:"fps"`
	Feed          string       `yaml:"feed"`           // path to a JSON feed, empty = builtin dataset
	DefaultPeriod float64      `yaml:"default_period"` // orbital period for records without one
	TimeScale     float64      `yaml:"time_scale"`
	TrailLength   int          `yaml:"trail_length"`
	Camera        CameraConfig `yaml:"camera"`
}

type CameraConfig struct {
	Height      float64 `yaml:"height"`       // default camera z position
	FrameClose  float64 `yaml:"frame_close"`  // framing factor while tracking
	InterpSteps int     `yaml:"interp_steps"` // ticks per camera move
}

func DefaultConfig() *Config {
	return &Config{
		FPS:           DefaultFPS,
		DefaultPeriod: DefaultPeriod,
		TimeScale:     DefaultTimeScale,
		TrailLength:   DefaultTrailLength,
		Camera: CameraConfig{
			Height: DefaultCameraHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.DefaultPeriod <= 0 {
		return fmt.Errorf("config: default_period must be positive, got %f", c.DefaultPeriod)
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("config: time_scale must be positive, got %f", c.TimeScale)
	}
	if c.TrailLength < 0 {
		return fmt.Errorf("config: trail_length must not be negative, got %d", c.TrailLength)
	}
	return nil
}
