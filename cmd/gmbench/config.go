package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Config struct {
	Workers int     `yaml:"workers"`
	Samples int     `yaml:"samples"`
	Seed    uint64  `yaml:"seed"`
	Epsilon float64 `yaml:"epsilon"`

	// Checks limits the run to the named checks. All checks run when empty.
	Checks []string `yaml:"checks"`

	// Profile is one of cpu, mem or none.
	Profile string `yaml:"profile"`

	Log LogConfig `yaml:"log"`
}

func Defaults() Config {
	return Config{
		Workers: 4,
		Samples: 10_000,
		Seed:    0x5eed,
		Epsilon: 1e-6,
		Profile: "none",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads the yaml file at path on top of the defaults. Fields
// missing in the file keep their default value. The result is not validated,
// command line overrides are applied first and Validate is called afterwards.
func LoadConfig(path string) (Config, error) {
	config := Defaults()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %q: %w", path, err)
	}

	return config, nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, ErrInvalidConfig)

	case c.Samples < 1:
		return fmt.Errorf("samples must be positive, got %d: %w", c.Samples, ErrInvalidConfig)

	case c.Epsilon < 0:
		return fmt.Errorf("epsilon must not be negative, got %g: %w", c.Epsilon, ErrInvalidConfig)
	}

	switch c.Profile {
	case "", "none", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile %q: %w", c.Profile, ErrInvalidConfig)
	}

	for _, name := range c.Checks {
		if _, ok := checkByName(name); !ok {
			return fmt.Errorf("unknown check %q: %w", name, ErrInvalidConfig)
		}
	}

	return nil
}
