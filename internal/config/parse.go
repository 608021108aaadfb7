package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (UserConfig, error) {
	var cfg UserConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return UserConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return UserConfig{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return UserConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
