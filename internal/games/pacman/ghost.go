package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// ghostColors cycles over ghosts in spawn order.
var ghostColors = [...]core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange}

// VulnerableColor is the colour of every ghost during power mode.
const VulnerableColor = core.ColorBrightBlue

// Ghost is a computer-controlled enemy driven by a fixed Strategy.
type Ghost struct {
	actor
	strategy   Strategy
	color      core.Color
	spawn      Point
	baseSpeed  float64
	speed      float64
	slowFactor float64 // Speed multiplier while vulnerable
	vulnerable bool

	// Cell of the last decision; ghosts decide once per cell.
	decided    Point
	hasDecided bool
}

// NewGhost creates a ghost at its spawn cell, facing up.
func NewGhost(m *Maze, spawn Point, s Strategy, color core.Color, speed, slowFactor float64) *Ghost {
	g := &Ghost{
		strategy:   s,
		color:      color,
		spawn:      spawn,
		baseSpeed:  speed,
		slowFactor: slowFactor,
	}
	g.Reset(m)
	return g
}

// Reset returns the ghost to its spawn cell in normal state, facing up.
func (g *Ghost) Reset(m *Maze) {
	g.X, g.Y = m.Center(g.spawn)
	g.Dir = DirUp
	g.hasDecided = false
	g.SetNormal()
}

// SetVulnerable flags the ghost and slows it. Repeated calls do not compound.
func (g *Ghost) SetVulnerable() {
	g.vulnerable = true
	g.speed = g.baseSpeed * g.slowFactor
}

// SetNormal clears vulnerability and restores full speed.
func (g *Ghost) SetNormal() {
	g.vulnerable = false
	g.speed = g.baseSpeed
}

// SetBaseSpeed changes the full speed, keeping the current state.
func (g *Ghost) SetBaseSpeed(speed float64) {
	g.baseSpeed = speed
	if g.vulnerable {
		g.speed = speed * g.slowFactor
	} else {
		g.speed = speed
	}
}

// Update lets the strategy steer at cell centres and moves the ghost.
func (g *Ghost) Update(w *World) {
	if t, ok := g.strategy.(ticker); ok {
		t.Tick(g, w)
	}

	m := w.Maze
	want := DirNone
	cell := g.Cell(m)
	if m.NearCenter(g.X, g.Y, g.speed) && (!g.hasDecided || cell != g.decided) {
		g.decided, g.hasDecided = cell, true
		want = g.choose(w, cell)
	}

	m.advance(&g.actor, want, g.speed)
}

// choose asks the strategy and corrects an illegal answer: keep the
// current heading if possible, else take the first legal direction that
// is not a reversal, else reverse.
func (g *Ghost) choose(w *World, cell Point) Direction {
	m := w.Maze
	if d := g.strategy.Choose(g, w); m.CanEnter(cell, d) {
		return d
	}
	if m.CanEnter(cell, g.Dir) {
		return g.Dir
	}

	back := g.Dir.Opposite()
	for _, d := range Directions {
		if d != back && m.CanEnter(cell, d) {
			return d
		}
	}
	if m.CanEnter(cell, back) {
		return back
	}
	return g.Dir
}

// Cell returns the cell containing the ghost centre.
func (g *Ghost) Cell(m *Maze) Point { return m.CellAt(g.X, g.Y) }

// Position returns the ghost centre.
func (g *Ghost) Position() (float64, float64) { return g.X, g.Y }

// Direction returns the facing direction.
func (g *Ghost) Direction() Direction { return g.Dir }

// Vulnerable reports whether the ghost can be captured.
func (g *Ghost) Vulnerable() bool { return g.vulnerable }

// Speed returns the current speed in units per tick.
func (g *Ghost) Speed() float64 { return g.speed }

// Color returns the colour to draw the ghost with.
func (g *Ghost) Color() core.Color {
	if g.vulnerable {
		return VulnerableColor
	}
	return g.color
}

// Strategy returns the ghost's steering strategy.
func (g *Ghost) Strategy() Strategy { return g.strategy }
