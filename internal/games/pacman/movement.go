package pacman

import "math"

// actor is a moving entity centred at (X, Y) in simulation units.
type actor struct {
	X, Y float64
	Dir  Direction
}

// Wrap maps a point back into the maze area. Each axis wraps on its own.
func (m *Maze) Wrap(x, y float64) (float64, float64) {
	return wrapAxis(x, float64(m.width)*m.cellSize), wrapAxis(y, float64(m.height)*m.cellSize)
}

func wrapAxis(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v -= size
	}
	return v
}

// CellAt returns the cell containing the point after wrapping.
func (m *Maze) CellAt(x, y float64) Point {
	x, y = m.Wrap(x, y)
	return Point{
		X: min(int(math.Floor(x/m.cellSize)), m.width-1),
		Y: min(int(math.Floor(y/m.cellSize)), m.height-1),
	}
}

// Center returns the centre of cell p in simulation units.
func (m *Maze) Center(p Point) (float64, float64) {
	return (float64(p.X) + 0.5) * m.cellSize, (float64(p.Y) + 0.5) * m.cellSize
}

// CanMove reports whether shifting (x, y) by step along d lands in a
// cell that is not a wall. The shifted point wraps, so stepping off an
// edge is judged by the cell on the opposite side.
func (m *Maze) CanMove(x, y float64, d Direction, step float64) bool {
	dx, dy := d.Delta()
	return !m.IsWall(m.CellAt(x+float64(dx)*step, y+float64(dy)*step))
}

// NearCenter reports whether (x, y) is within step of its cell centre on both axes.
func (m *Maze) NearCenter(x, y, step float64) bool {
	x, y = m.Wrap(x, y)
	cx, cy := m.Center(m.CellAt(x, y))
	return math.Abs(x-cx) <= step && math.Abs(y-cy) <= step
}

// Neighbor returns the cell next to p along d, wrapping at the edges.
func (m *Maze) Neighbor(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return Point{
		X: (p.X + dx + m.width) % m.width,
		Y: (p.Y + dy + m.height) % m.height,
	}
}

// CanEnter reports whether the cell next to p along d is open.
func (m *Maze) CanEnter(p Point, d Direction) bool {
	if d == DirNone {
		return false
	}
	return !m.IsWall(m.Neighbor(p, d))
}

// Distance returns the straight-line distance between two points,
// measured the short way around on wrapping axes.
func (m *Maze) Distance(x1, y1, x2, y2 float64) float64 {
	dx := math.Abs(x1 - x2)
	dy := math.Abs(y1 - y2)
	if w := float64(m.width) * m.cellSize; dx > w/2 {
		dx = w - dx
	}
	if h := float64(m.height) * m.cellSize; dy > h/2 {
		dy = h - dy
	}
	return math.Hypot(dx, dy)
}

func (m *Maze) snap(a *actor) {
	a.X, a.Y = m.Center(m.CellAt(a.X, a.Y))
}

// advance moves a by speed, turning toward want when the grid allows.
// Reversals are taken at any point. Perpendicular turns happen only near
// a cell centre, after snapping onto it. An actor facing a wall stops on
// the centre of its cell. Reports whether the actor moved.
func (m *Maze) advance(a *actor, want Direction, speed float64) bool {
	if want != DirNone && want != a.Dir {
		cell := m.CellAt(a.X, a.Y)
		switch {
		case want == a.Dir.Opposite():
			if m.CanMove(a.X, a.Y, want, speed) {
				a.Dir = want
			}
		case m.NearCenter(a.X, a.Y, speed) && m.CanEnter(cell, want):
			m.snap(a)
			a.Dir = want
		}
	}

	if a.Dir == DirNone {
		return false
	}
	if m.NearCenter(a.X, a.Y, speed) && !m.CanEnter(m.CellAt(a.X, a.Y), a.Dir) {
		m.snap(a)
		return false
	}
	if !m.CanMove(a.X, a.Y, a.Dir, speed) {
		return false
	}

	dx, dy := a.Dir.Delta()
	a.X, a.Y = m.Wrap(a.X+float64(dx)*speed, a.Y+float64(dy)*speed)
	return true
}
