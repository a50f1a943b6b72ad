// Package config holds the run configuration of the decider.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/forestrie/go-ngramcps/decider"
	"github.com/forestrie/go-ngramcps/ngram"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRadius          = 4
	DefaultMaxContextCount = 1_000_000
	DefaultOutputDir       = "."
	DefaultLogLevel        = "INFO"
)

var ErrBadContextBudget = errors.New("config: max_context_count must not be negative")

// Config is the decider run configuration. Fields missing from a file keep
// their defaults.
type Config struct {
	Radius          uint8  `yaml:"radius"`
	MaxContextCount int    `yaml:"max_context_count"`
	Workers         int    `yaml:"workers"`
	OutputDir       string `yaml:"output_dir"`
	MetricsListen   string `yaml:"metrics_listen"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Radius:          DefaultRadius,
		MaxContextCount: DefaultMaxContextCount,
		Workers:         runtime.NumCPU(),
		OutputDir:       DefaultOutputDir,
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile reads the YAML file at path over the defaults without validating
// it, so that callers can apply overrides first.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode decodes YAML data over the defaults.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration can drive a run.
func (c Config) Validate() error {
	if err := ngram.CheckRadius(c.Radius); err != nil {
		return fmt.Errorf("config: radius %d: %w", c.Radius, err)
	}
	if c.MaxContextCount < 0 {
		return ErrBadContextBudget
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers %d: %w", c.Workers, decider.ErrBadWorkers)
	}
	return nil
}
