package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 800 {
		t.Errorf("Expected default window 1280x800, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.RulesPath != "data/rules.json" {
		t.Errorf("Expected default rules path, got %q", cfg.RulesPath)
	}
	if !cfg.AudioEnabled {
		t.Error("Expected audio enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "640")
	t.Setenv("WINDOW_HEIGHT", "480")
	t.Setenv("RULES_PATH", "custom/rules.json")
	t.Setenv("AUDIO_ENABLED", "false")

	cfg := Load()

	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("Expected window 640x480, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.RulesPath != "custom/rules.json" {
		t.Errorf("Expected overridden rules path, got %q", cfg.RulesPath)
	}
	if cfg.AudioEnabled {
		t.Error("Expected audio disabled")
	}
}
