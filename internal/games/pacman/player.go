package pacman

import "github.com/vovakirdan/tui-pacman/internal/config"

// MaxMouth is the widest mouth opening of the player sprite.
const MaxMouth = config.MaxMouth

// Player is the user-controlled character.
type Player struct {
	actor
	next      Direction // Buffered request, applied when the grid allows
	speed     float64
	mouth     float64
	mouthStep float64 // Signed; flips at 0 and MaxMouth
}

// NewPlayer places a player on the centre of the maze start cell, facing right.
func NewPlayer(m *Maze, speed, mouthStep float64) *Player {
	x, y := m.Center(m.Start())
	return &Player{
		actor:     actor{X: x, Y: y, Dir: DirRight},
		speed:     speed,
		mouthStep: mouthStep,
	}
}

// SetDirection buffers a direction request. DirNone is ignored.
func (p *Player) SetDirection(d Direction) {
	if d != DirNone {
		p.next = d
	}
}

// Update animates the mouth, moves the player and consumes the cell under
// its centre. It returns the kind of cell consumed, or CellEmpty.
func (p *Player) Update(m *Maze) CellKind {
	p.animate()

	m.advance(&p.actor, p.next, p.speed)
	if p.next == p.Dir {
		p.next = DirNone
	}

	return m.Consume(m.CellAt(p.X, p.Y))
}

func (p *Player) animate() {
	p.mouth += p.mouthStep
	switch {
	case p.mouth >= MaxMouth:
		p.mouth = MaxMouth
		p.mouthStep = -p.mouthStep
	case p.mouth <= 0:
		p.mouth = 0
		p.mouthStep = -p.mouthStep
	}
}

// Position returns the player centre.
func (p *Player) Position() (float64, float64) { return p.X, p.Y }

// Direction returns the facing direction.
func (p *Player) Direction() Direction { return p.Dir }

// Mouth returns the current mouth opening in [0, MaxMouth].
func (p *Player) Mouth() float64 { return p.mouth }
