package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration with two-space indentation.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Overlay applies the fields present in data on top of c. Fields absent
// from the document keep their current values, which gives later config
// sources per-field precedence over earlier ones.
func (c *Config) Overlay(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// Clone deep-copies the serializable fields via a YAML round trip and
// carries the CLI-level fields across directly.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	data, err := c.ToYAML()
	if err != nil {
		out := *c
		return &out
	}

	clone, err := FromYAML(data)
	if err != nil {
		out := *c
		return &out
	}

	clone.Jobs = c.Jobs
	clone.DryRun = c.DryRun
	clone.Format = c.Format
	return clone
}
