package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads, parses, normalizes, and validates a config file. A missing
// file yields the default config.
func Load(path string) (UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return UserConfig{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return UserConfig{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return UserConfig{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads a config and falls back to defaults when the file is
// unreadable or invalid. The error is returned alongside for reporting.
func LoadOrDefault(path string) (UserConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}
