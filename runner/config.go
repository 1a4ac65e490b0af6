package runner

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("runner: invalid config")

// DefaultInput is the input path used when none is given.
const DefaultInput = "./input.txt"

// Config holds the harness settings.
type Config struct {
	// Input is the puzzle input file.
	Input string `yaml:"input"`
	// Day selects the registered puzzle to run.
	Day int `yaml:"day"`
	// Workers bounds parallel trials for puzzles that support them; 1 runs serially.
	Workers int `yaml:"workers"`
	// LogLevel is any logrus level name.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a Config reading ./input.txt serially with info-level text logs.
func DefaultConfig() Config {
	return Config{
		Input:     DefaultInput,
		Day:       0,
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("runner: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	case c.Day < 0:
		return fmt.Errorf("%w: day cannot be negative (%d)", ErrInvalidConfig, c.Day)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1 (%d)", ErrInvalidConfig, c.Workers)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger builds a logger writing to stderr as configured.
// c must have passed Validate.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}
