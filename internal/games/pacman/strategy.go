package pacman

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrUnknownStrategy is returned by NewStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown ghost strategy")

// Strategy names accepted by NewStrategy.
const (
	StrategyAggressive = "aggressive"
	StrategyAmbush     = "ambush"
	StrategyRandom     = "random"
	StrategyPatrol     = "patrol"
)

// World is the read-only view a strategy decides from.
type World struct {
	Maze      *Maze
	PlayerX   float64
	PlayerY   float64
	PlayerDir Direction
	Rand      *rand.Rand
}

// Strategy picks a ghost's direction at a cell centre.
// The ghost checks the result and falls back to a legal direction.
type Strategy interface {
	Name() string
	Choose(g *Ghost, w *World) Direction
}

// ticker is implemented by strategies that keep per-tick state.
type ticker interface {
	Tick(g *Ghost, w *World)
}

// NewStrategy creates a strategy by name.
// ambushOffset is in cells; turnChance is the Random per-tick reroll probability.
func NewStrategy(name string, ambushOffset, turnChance float64) (Strategy, error) {
	switch name {
	case StrategyAggressive:
		return Aggressive{}, nil
	case StrategyAmbush:
		return Ambush{Offset: ambushOffset}, nil
	case StrategyRandom:
		return &Random{Chance: turnChance}, nil
	case StrategyPatrol:
		return Patrol{}, nil
	default:
		return nil, fmt.Errorf("pacman: %w %q", ErrUnknownStrategy, name)
	}
}

// Aggressive chases the player directly.
type Aggressive struct{}

func (Aggressive) Name() string { return StrategyAggressive }

func (Aggressive) Choose(g *Ghost, w *World) Direction {
	return steer(g, w.Maze, w.PlayerX, w.PlayerY)
}

// Ambush targets a point Offset cells ahead of the player.
type Ambush struct {
	Offset float64
}

func (Ambush) Name() string { return StrategyAmbush }

func (a Ambush) Choose(g *Ghost, w *World) Direction {
	dx, dy := w.PlayerDir.Delta()
	reach := a.Offset * w.Maze.CellSize()
	return steer(g, w.Maze, w.PlayerX+float64(dx)*reach, w.PlayerY+float64(dy)*reach)
}

// Random wanders, rerolling its heading when blocked or when a per-tick
// roll below Chance has come up since the last decision.
type Random struct {
	Chance  float64
	pending bool
}

func (*Random) Name() string { return StrategyRandom }

func (r *Random) Tick(_ *Ghost, w *World) {
	if w.Rand.Float64() < r.Chance {
		r.pending = true
	}
}

func (r *Random) Choose(g *Ghost, w *World) Direction {
	cell := g.Cell(w.Maze)
	if !r.pending && w.Maze.CanEnter(cell, g.Dir) {
		return g.Dir
	}
	r.pending = false

	legal := legalDirections(w.Maze, cell)
	if len(legal) == 0 {
		return g.Dir
	}
	return legal[w.Rand.Intn(len(legal))]
}

// Patrol keeps its heading and turns clockwise when blocked.
type Patrol struct{}

func (Patrol) Name() string { return StrategyPatrol }

func (Patrol) Choose(g *Ghost, w *World) Direction {
	cell := g.Cell(w.Maze)
	d := g.Dir
	if d == DirNone {
		d = DirRight
	}
	for range len(Directions) {
		if w.Maze.CanEnter(cell, d) {
			return d
		}
		d = d.Clockwise()
	}
	return g.Dir
}

// steer heads along the axis with the larger gap to the target, or
// along the other axis when that way is blocked.
func steer(g *Ghost, m *Maze, tx, ty float64) Direction {
	dx := tx - g.X
	dy := ty - g.Y

	horiz := DirLeft
	if dx > 0 {
		horiz = DirRight
	}
	vert := DirUp
	if dy > 0 {
		vert = DirDown
	}

	first, second := vert, horiz
	if math.Abs(dx) > math.Abs(dy) {
		first, second = horiz, vert
	}
	if m.CanEnter(g.Cell(m), first) {
		return first
	}
	return second
}

func legalDirections(m *Maze, cell Point) []Direction {
	legal := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if m.CanEnter(cell, d) {
			legal = append(legal, d)
		}
	}
	return legal
}
