package pacman

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePowered     GameStateType = "powered"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost.
type GhostSnapshot struct {
	Strategy   string
	X, Y       float64
	Dir        Direction
	Vulnerable bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	PlayerX   float64
	PlayerY   float64
	PlayerDir Direction
	Ghosts    []GhostSnapshot
	PowerLeft time.Duration
	DotsLeft  int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.powerLeft > 0:
		state = StatePowered
	}

	ghosts := make([]GhostSnapshot, len(g.ghosts))
	for i, gh := range g.ghosts {
		ghosts[i] = GhostSnapshot{
			Strategy:   gh.Strategy().Name(),
			X:          gh.X,
			Y:          gh.Y,
			Dir:        gh.Dir,
			Vulnerable: gh.vulnerable,
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		Score:     g.score,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		PlayerDir: g.player.Dir,
		Ghosts:    ghosts,
		PowerLeft: g.powerLeft,
		DotsLeft:  g.maze.DotsLeft(),
		State:     state,
	}
}
