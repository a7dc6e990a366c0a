package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-leo/flyweight"
	"github.com/pelletier/go-toml/v2"
)

// Config drives the demonstration. Every field has a default, so the file is optional.
type Config struct {
	Iterations int       `toml:"iterations"`
	Step       float64   `toml:"step"`
	Longitude  float64   `toml:"longitude"`
	Latitude   float64   `toml:"latitude"`
	Keys       []string  `toml:"keys"`
	Log        LogConfig `toml:"log"`
}

type LogConfig struct {
	Level       string `toml:"level"` // debug, info, warn or error
	Development bool   `toml:"development"`
}

func DefaultConfig() Config {
	return Config{
		Iterations: 5,
		Step:       0.1,
		Longitude:  37.61,
		Latitude:   55.74,
		Keys: []string{
			flyweight.KeyInfantry,
			flyweight.KeyTransport,
			flyweight.KeyEquipment,
			flyweight.KeyAircraft,
		},
		Log: LogConfig{Level: "info", Development: true},
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if len(c.Keys) == 0 {
		return errors.New("keys must not be empty")
	}
	return nil
}
