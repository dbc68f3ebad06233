// Package config loads optional dircompat settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the config file looked up in the working directory.
const FileName = ".dircompat.yaml"

// Config holds settings that flags may override.
type Config struct {
	Filesystems []string `yaml:"filesystems"`
	Exclude     []string `yaml:"exclude"`
	Absolute    bool     `yaml:"absolute"`
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
}

// Load reads and parses the config file at path. Unknown keys are rejected
// so typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOptional loads path when explicit is true. Otherwise it loads the
// default file if present and returns an empty Config when it is not.
func LoadOptional(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) && !explicit {
		return &Config{}, nil
	}
	return cfg, err
}
