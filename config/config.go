// Package config loads the optional tuning overrides. The scryer takes
// no flags; a scryer.yaml next to the binary may adjust the few knobs
// below. A missing or malformed file silently yields the defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the runtime tuning surface.
type Config struct {
	// FPS is the target frame rate, clamped to [1, 60].
	FPS int `yaml:"fps"`

	// Audio enables the resonance cues.
	Audio bool `yaml:"audio"`

	// AssetRoot is the directory holding the verified sigil assets.
	AssetRoot string `yaml:"asset_root"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:       20,
		Audio:     true,
		AssetRoot: "assets",
	}
}

// Load reads a YAML override file on top of the defaults. Any read or
// parse failure degrades to the defaults.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.FPS < 1 {
		cfg.FPS = 1
	} else if cfg.FPS > 60 {
		cfg.FPS = 60
	}
	if cfg.AssetRoot == "" {
		cfg.AssetRoot = Default().AssetRoot
	}
	return cfg
}
