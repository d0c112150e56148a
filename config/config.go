// Package config loads runtime settings from a TOML file. Missing file means
// defaults; a malformed file is an error so bad edits are not silently
// swallowed.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-runner/parameter"
)

// Config is the full runtime configuration.
type Config struct {
	Game    Game    `toml:"game"`
	Display Display `toml:"display"`
	Logging Logging `toml:"logging"`
	Audio   Audio   `toml:"audio"`
}

// Game holds gameplay settings.
type Game struct {
	Lives    int    `toml:"lives"`
	Level    string `toml:"level"`
	SavePath string `toml:"save_path"`
	TickMs   int    `toml:"tick_ms"`
}

// Display holds virtual framebuffer settings.
type Display struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Logging holds log sink settings. Logs go to a file because stdout belongs
// to the terminal renderer.
type Logging struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// Audio holds sound settings.
type Audio struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: Game{
			Lives:    parameter.StartingLives,
			SavePath: "vi-runner.save",
			TickMs:   16,
		},
		Display: Display{
			Width:  parameter.DisplayWidth,
			Height: parameter.DisplayHeight,
		},
		Logging: Logging{
			Level: "info",
			Path:  "vi-runner.log",
		},
		Audio: Audio{
			Enabled: true,
		},
	}
}

// Load reads a TOML config from path, applying it over the defaults. A
// missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Game.TickMs <= 0 {
		cfg.Game.TickMs = 16
	}
	if cfg.Game.Lives < 0 {
		cfg.Game.Lives = 0
	}
	return cfg, nil
}
