package config

import (
	_ "embed"
)

//go:embed defaults/colortrap.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickIntervalMs:  100,
			AnnounceDelayMs: 1000,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
