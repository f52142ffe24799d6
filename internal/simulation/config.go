// Package simulation provides the game's rule configuration and the player
// movement simulation. Rules are loaded from a data file so tuning never
// requires a rebuild.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/glimmergames/lanternmaze/internal/world/maze"
)

// Config holds all simulation rules for a game.
type Config struct {
	// Grid geometry
	CellSize     float64 `json:"cell_size"`     // Cell edge length in pixels
	PlayerRadius float64 `json:"player_radius"` // Player collision circle radius in pixels

	// Lighting
	RayCount int     `json:"ray_count"` // Rays cast per light boundary computation
	RayStep  float64 `json:"ray_step"`  // Ray march step in pixels

	// Movement
	MoveDebounceMS int `json:"move_debounce_ms"` // Minimum gap between moves after one completes

	// Maze generation
	Loops         maze.LoopOptions `json:"loops"`
	MazeMinWidth  int              `json:"maze_min_width"`
	MazeMinHeight int              `json:"maze_min_height"`
	MazeMaxWidth  int              `json:"maze_max_width"`
	MazeMaxHeight int              `json:"maze_max_height"`

	// Difficulty tiers, keyed by identifier
	Difficulties map[string]Difficulty `json:"difficulties"`
}

// Difficulty is one named configuration bundle. The session treats these as
// data; nothing in the core branches on a tier name.
type Difficulty struct {
	TimeLimitSeconds int     `json:"time_limit_seconds"`
	SizeFactor       float64 `json:"size_factor"`      // Maze size scale in (0, 1]
	LightRadius      float64 `json:"light_radius"`     // In pixels
	MoveDurationMS   int     `json:"move_duration_ms"` // Per-cell move time
}

// DefaultConfig returns the shipped tuning: three tiers from quick moves,
// wide light and a short timer down to slow moves, narrow light and a long
// timer.
func DefaultConfig() *Config {
	return &Config{
		CellSize:       40,
		PlayerRadius:   12,
		RayCount:       360,
		RayStep:        4,
		MoveDebounceMS: 60,
		Loops:          maze.DefaultLoopOptions(),
		MazeMinWidth:   15,
		MazeMinHeight:  11,
		MazeMaxWidth:   41,
		MazeMaxHeight:  31,
		Difficulties: map[string]Difficulty{
			"easy": {
				TimeLimitSeconds: 120,
				SizeFactor:       0.6,
				LightRadius:      220,
				MoveDurationMS:   160,
			},
			"normal": {
				TimeLimitSeconds: 90,
				SizeFactor:       0.8,
				LightRadius:      160,
				MoveDurationMS:   140,
			},
			"hard": {
				TimeLimitSeconds: 60,
				SizeFactor:       1.0,
				LightRadius:      110,
				MoveDurationMS:   120,
			},
		},
	}
}

// LoadConfig loads simulation rules from a JSON file, layered over the
// defaults. A missing file is not an error; the defaults are used as-is.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// MustDifficulty returns the tier for id. An unknown id is a programmer
// error, not a runtime condition, so this panics rather than defaulting.
func (c *Config) MustDifficulty(id string) Difficulty {
	d, ok := c.Difficulties[id]
	if !ok {
		panic(fmt.Sprintf("unknown difficulty %q", id))
	}
	return d
}

// DifficultyIDs returns the known tier identifiers.
func (c *Config) DifficultyIDs() []string {
	ids := make([]string, 0, len(c.Difficulties))
	for id := range c.Difficulties {
		ids = append(ids, id)
	}
	return ids
}
