// Package config provides YAML-based configuration loading for colortrap.
package config

// Config is the top-level configuration.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Audio AudioConfig `yaml:"audio"`
}

// GameConfig tunes the session loop timing.
type GameConfig struct {
	// TickIntervalMs is the timer sampling cadence. 100ms keeps the
	// ceiling-second countdown accurate; larger values trade accuracy
	// for fewer redraws.
	TickIntervalMs int `yaml:"tick_interval_ms"`

	// AnnounceDelayMs postpones the first announcement of a level so it
	// lands after the board is on screen.
	AnnounceDelayMs int `yaml:"announce_delay_ms"`
}

// AudioConfig controls the tone announcer.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}
