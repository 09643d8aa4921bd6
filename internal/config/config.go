// Package config loads converter defaults from an optional YAML file.
package config

import (
	"os"

	"calmh.dev/gpx2geojson/geojson"
	"gopkg.in/yaml.v3"
)

// Config holds converter defaults. Command line flags take precedence over
// these values.
type Config struct {
	ExtensionPrefix string `yaml:"extension_prefix,omitempty"`
	Elevation       bool   `yaml:"elevation,omitempty"`
	Indent          bool   `yaml:"indent,omitempty"`
}

// Load reads and parses the YAML defaults file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Options merges command line values with the configured defaults into
// conversion options. The flag wins where it was given.
func (c *Config) Options(elevation bool, prefix string) geojson.Options {
	if prefix == "" {
		prefix = c.ExtensionPrefix
	}
	return geojson.Options{
		IncludeElevation: elevation || c.Elevation,
		ExtensionPrefix:  prefix,
	}
}
