// Package config loads and hot-reloads the editor's YAML configuration
// file, via gopkg.in/yaml.v3 since this editor's config is meant to be
// hand-edited.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the editor core's user-tunable knobs. Everything else
// (keybindings, backend choice, AI settings) lives outside the core's
// scope.
type Config struct {
	TabWidth     int    `yaml:"tab_width"`
	WrapWidth    int    `yaml:"wrap_width"`
	ThemeName    string `yaml:"theme"`
	ScaleHeaders bool   `yaml:"scale_headers"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TabWidth:     4,
		WrapWidth:    80,
		ThemeName:    "default",
		ScaleHeaders: true,
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
