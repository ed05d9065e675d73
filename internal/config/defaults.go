package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
// It mirrors defaults/pacman.yaml and is used when the embedded file cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Maze: PacmanMaze{
			Width:       28,
			Height:      28,
			CellSize:    20,
			HouseWidth:  6,
			HouseHeight: 3,
		},
		Player: PacmanPlayer{
			Speed:     2,
			MouthStep: 0.1,
		},
		Ghosts: PacmanGhosts{
			Speed:            1.5,
			VulnerableFactor: 0.5,
			AmbushOffset:     5,
			RandomTurnChance: 0.02,
			CollisionRadius:  1,
			Strategies:       []string{"aggressive", "ambush", "random", "patrol"},
		},
		Scoring: PacmanScoring{
			Dot:      10,
			PowerDot: 50,
			Ghost:    200,
		},
		Power: PacmanPower{
			DurationMS: 10000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
