package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigTiers(t *testing.T) {
	cfg := DefaultConfig()

	for _, id := range []string{"easy", "normal", "hard"} {
		d, ok := cfg.Difficulties[id]
		if !ok {
			t.Fatalf("Expected default tier %q", id)
		}
		if d.TimeLimitSeconds <= 0 {
			t.Errorf("Tier %q: expected positive time limit, got %d", id, d.TimeLimitSeconds)
		}
		if d.SizeFactor <= 0 || d.SizeFactor > 1 {
			t.Errorf("Tier %q: expected size factor in (0,1], got %v", id, d.SizeFactor)
		}
		if d.LightRadius <= 0 {
			t.Errorf("Tier %q: expected positive light radius, got %v", id, d.LightRadius)
		}
		if d.MoveDurationMS <= 0 {
			t.Errorf("Tier %q: expected positive move duration, got %d", id, d.MoveDurationMS)
		}
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if cfg.CellSize != DefaultConfig().CellSize {
		t.Errorf("Expected default cell size %v, got %v", DefaultConfig().CellSize, cfg.CellSize)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	data := `{
		"cell_size": 32,
		"difficulties": {
			"nightmare": {
				"time_limit_seconds": 45,
				"size_factor": 1.0,
				"light_radius": 90,
				"move_duration_ms": 110
			}
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.CellSize != 32 {
		t.Errorf("Expected overridden cell size 32, got %v", cfg.CellSize)
	}
	// Untouched fields keep their defaults.
	if cfg.PlayerRadius != DefaultConfig().PlayerRadius {
		t.Errorf("Expected default player radius, got %v", cfg.PlayerRadius)
	}
	d := cfg.MustDifficulty("nightmare")
	if d.TimeLimitSeconds != 45 {
		t.Errorf("Expected nightmare time limit 45, got %d", d.TimeLimitSeconds)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestMustDifficultyPanicsOnUnknownID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown difficulty id")
		}
	}()
	DefaultConfig().MustDifficulty("impossible")
}
