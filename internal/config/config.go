// Package config provides YAML-based game configuration loading and
// difficulty management for the Pac-Man platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxMouth is the widest opening of the player's mouth animation.
const MaxMouth = 0.5

// PacmanConfig contains all configuration for the Pac-Man game.
type PacmanConfig struct {
	Maze       PacmanMaze       `yaml:"maze"`
	Player     PacmanPlayer     `yaml:"player"`
	Ghosts     PacmanGhosts     `yaml:"ghosts"`
	Scoring    PacmanScoring    `yaml:"scoring"`
	Power      PacmanPower      `yaml:"power"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanMaze defines the maze grid and the generator parameters.
type PacmanMaze struct {
	Width       int      `yaml:"width"`        // Cells per row of a generated maze
	Height      int      `yaml:"height"`       // Rows of a generated maze
	CellSize    float64  `yaml:"cell_size"`    // Simulation units per cell
	HouseWidth  int      `yaml:"house_width"`  // Ghost house width in cells
	HouseHeight int      `yaml:"house_height"` // Ghost house height in cells
	Layout      []string `yaml:"layout"`       // Custom layout for the classic variant
}

// PacmanPlayer defines player parameters.
type PacmanPlayer struct {
	Speed     float64 `yaml:"speed"`      // Units per tick
	MouthStep float64 `yaml:"mouth_step"` // Mouth animation step per tick
}

// PacmanGhosts defines ghost parameters.
type PacmanGhosts struct {
	Speed            float64  `yaml:"speed"`              // Units per tick
	VulnerableFactor float64  `yaml:"vulnerable_factor"`  // Speed multiplier while vulnerable
	AmbushOffset     float64  `yaml:"ambush_offset"`      // Cells ahead of the player
	RandomTurnChance float64  `yaml:"random_turn_chance"` // Per-tick reroll probability
	CollisionRadius  float64  `yaml:"collision_radius"`   // Contact distance in cells
	Strategies       []string `yaml:"strategies"`         // One entry per ghost
}

// PacmanScoring defines points awarded.
type PacmanScoring struct {
	Dot      int `yaml:"dot"`
	PowerDot int `yaml:"power_dot"`
	Ghost    int `yaml:"ghost"`
}

// PacmanPower defines the power-mode window.
type PacmanPower struct {
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the power-mode window as a time.Duration.
func (p PacmanPower) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// Validate checks that the config describes a playable game.
func (c PacmanConfig) Validate() error {
	m := c.Maze
	switch {
	case m.Width < 7 || m.Height < 7:
		return fmt.Errorf("%w: maze must be at least 7x7, got %dx%d", ErrInvalidConfig, m.Width, m.Height)
	case m.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidConfig)
	case m.HouseWidth < 1 || m.HouseHeight < 1:
		return fmt.Errorf("%w: ghost house must be at least 1x1", ErrInvalidConfig)
	}

	// At half a cell per tick every point is near a centre and turns jump.
	half := m.CellSize / 2
	if c.Player.Speed <= 0 || c.Player.Speed >= half {
		return fmt.Errorf("%w: player speed %.2f outside (0, %.2f)", ErrInvalidConfig, c.Player.Speed, half)
	}
	if c.Player.MouthStep <= 0 || c.Player.MouthStep > MaxMouth {
		return fmt.Errorf("%w: mouth_step %.2f outside (0, %.2f]", ErrInvalidConfig, c.Player.MouthStep, MaxMouth)
	}
	if c.Ghosts.Speed <= 0 || c.Ghosts.Speed >= half {
		return fmt.Errorf("%w: ghost speed %.2f outside (0, %.2f)", ErrInvalidConfig, c.Ghosts.Speed, half)
	}
	if c.Ghosts.AmbushOffset < 0 {
		return fmt.Errorf("%w: ambush_offset must not be negative", ErrInvalidConfig)
	}
	if c.Ghosts.CollisionRadius <= 0 {
		return fmt.Errorf("%w: collision_radius must be positive", ErrInvalidConfig)
	}
	if c.Ghosts.VulnerableFactor <= 0 || c.Ghosts.VulnerableFactor > 1 {
		return fmt.Errorf("%w: vulnerable_factor must be in (0, 1]", ErrInvalidConfig)
	}
	if c.Ghosts.RandomTurnChance < 0 || c.Ghosts.RandomTurnChance > 1 {
		return fmt.Errorf("%w: random_turn_chance must be in [0, 1]", ErrInvalidConfig)
	}
	if len(c.Ghosts.Strategies) == 0 {
		return fmt.Errorf("%w: at least one ghost strategy is required", ErrInvalidConfig)
	}
	sc := c.Scoring
	if sc.Dot < 0 || sc.PowerDot < 0 || sc.Ghost < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
	}
	if c.Power.DurationMS <= 0 {
		return fmt.Errorf("%w: power duration must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ghost speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings return "" (no preset).
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
