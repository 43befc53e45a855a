package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Game.TickIntervalMs != 100 {
		t.Errorf("TickIntervalMs = %d, expected 100", cfg.Game.TickIntervalMs)
	}
	if cfg.Game.AnnounceDelayMs != 1000 {
		t.Errorf("AnnounceDelayMs = %d, expected 1000", cfg.Game.AnnounceDelayMs)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should be enabled by default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("game:\n  tick_interval_ms: 50\naudio:\n  enabled: false\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.TickIntervalMs != 50 {
		t.Errorf("TickIntervalMs = %d, expected the override 50", cfg.Game.TickIntervalMs)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by the override")
	}
	// Untouched keys keep their defaults.
	if cfg.Game.AnnounceDelayMs != 1000 {
		t.Errorf("AnnounceDelayMs = %d, expected the default 1000", cfg.Game.AnnounceDelayMs)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("a broken custom path must be reported, not silently defaulted")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed YAML in a custom path must be an error")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// No custom path and no user/local file in the test environment means
	// Load falls through to the embedded YAML, which must agree with
	// Default().
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded config %+v diverges from Default() %+v", cfg, Default())
	}
}
