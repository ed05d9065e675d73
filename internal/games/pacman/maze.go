package pacman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// CellKind is the content of one maze cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellDot
	CellPower
)

// ErrInvalidLayout is wrapped by every ParseLayout failure.
var ErrInvalidLayout = errors.New("invalid layout")

// Point represents a cell coordinate.
type Point struct {
	X, Y int
}

// Maze is a fixed grid of cells with a ghost house and a player start.
// Only dot consumption mutates it after construction.
type Maze struct {
	width    int
	height   int
	cellSize float64
	cells    []CellKind // Row-major
	house    []bool
	homes    []Point // Ghost house cells in scan order
	start    Point
	dots     int // Dots and power-dots left
}

func newMaze(w, h int, cellSize float64) *Maze {
	m := &Maze{
		width:    w,
		height:   h,
		cellSize: cellSize,
		cells:    make([]CellKind, w*h),
		house:    make([]bool, w*h),
	}
	for i := range m.cells {
		m.cells[i] = CellWall
	}
	return m
}

// Width returns the maze width in cells.
func (m *Maze) Width() int { return m.width }

// Height returns the maze height in cells.
func (m *Maze) Height() int { return m.height }

// CellSize returns the size of one cell in simulation units.
func (m *Maze) CellSize() float64 { return m.cellSize }

// Start returns the player start cell.
func (m *Maze) Start() Point { return m.start }

// DotsLeft returns the number of dots and power-dots not yet consumed.
func (m *Maze) DotsLeft() int { return m.dots }

// HouseCells returns the ghost house cells in scan order.
func (m *Maze) HouseCells() []Point { return m.homes }

func (m *Maze) inBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

func (m *Maze) index(p Point) int {
	return p.Y*m.width + p.X
}

// At returns the cell kind at p. Cells outside the grid read as walls.
func (m *Maze) At(p Point) CellKind {
	if !m.inBounds(p) {
		return CellWall
	}
	return m.cells[m.index(p)]
}

func (m *Maze) set(p Point, k CellKind) {
	if m.inBounds(p) {
		m.cells[m.index(p)] = k
	}
}

// IsWall reports whether p is a wall.
func (m *Maze) IsWall(p Point) bool {
	return m.At(p) == CellWall
}

// InHouse reports whether p belongs to the ghost house.
func (m *Maze) InHouse(p Point) bool {
	return m.inBounds(p) && m.house[m.index(p)]
}

func (m *Maze) markHouse(p Point) {
	if !m.inBounds(p) || m.house[m.index(p)] {
		return
	}
	m.house[m.index(p)] = true
	m.homes = append(m.homes, p)
}

// Consume empties a dot or power-dot at p and returns what was there.
// Any other cell is left alone and reported as CellEmpty, so consuming
// the same cell twice yields nothing the second time.
func (m *Maze) Consume(p Point) CellKind {
	k := m.At(p)
	if k != CellDot && k != CellPower {
		return CellEmpty
	}
	m.set(p, CellEmpty)
	m.dots--
	return k
}

// countDots recomputes the dots counter from the grid.
func (m *Maze) countDots() {
	m.dots = 0
	for _, k := range m.cells {
		if k == CellDot || k == CellPower {
			m.dots++
		}
	}
}

// String renders the maze in layout notation.
func (m *Maze) String() string {
	var sb strings.Builder
	for y := range m.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range m.width {
			p := Point{X: x, Y: y}
			switch {
			case p == m.start:
				sb.WriteByte('P')
			case m.InHouse(p):
				sb.WriteByte('-')
			default:
				sb.WriteByte(layoutRunes[m.At(p)])
			}
		}
	}
	return sb.String()
}

var layoutRunes = [...]byte{
	CellEmpty: ' ',
	CellWall:  '#',
	CellDot:   '.',
	CellPower: 'o',
}

// ParseLayout builds a maze from text rows.
//
//	'#' wall   '.' dot   'o' power-dot   ' ' empty
//	'-' ghost house   'P' player start
//
// A layout without 'P' starts the player at the open cell nearest the
// lower middle of the maze.
func ParseLayout(lines []string, cellSize float64) (*Maze, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("pacman: %w: empty layout", ErrInvalidLayout)
	}

	w := len(lines[0])
	m := newMaze(w, len(lines), cellSize)
	hasStart := false

	for y, row := range lines {
		if len(row) != w {
			return nil, fmt.Errorf("pacman: %w: row %d has %d cells, expected %d", ErrInvalidLayout, y, len(row), w)
		}
		for x := range len(row) {
			p := Point{X: x, Y: y}
			switch ch := row[x]; ch {
			case '#':
				m.set(p, CellWall)
			case '.':
				m.set(p, CellDot)
			case 'o':
				m.set(p, CellPower)
			case ' ':
				m.set(p, CellEmpty)
			case '-':
				m.set(p, CellEmpty)
				m.markHouse(p)
			case 'P':
				m.set(p, CellEmpty)
				m.start = p
				hasStart = true
			default:
				return nil, fmt.Errorf("pacman: %w: unknown cell %q at %d,%d", ErrInvalidLayout, ch, x, y)
			}
		}
	}

	if len(m.homes) == 0 {
		return nil, fmt.Errorf("pacman: %w: no ghost house", ErrInvalidLayout)
	}
	if !hasStart {
		start, ok := m.nearestOpen(Point{X: w / 2, Y: m.height - 5})
		if !ok {
			return nil, fmt.Errorf("pacman: %w: no open cell for the player", ErrInvalidLayout)
		}
		m.start = start
	}

	m.countDots()
	return m, nil
}

// nearestOpen finds the non-wall, non-house cell closest to target by
// manhattan distance. Ties go to the first cell in scan order.
func (m *Maze) nearestOpen(target Point) (Point, bool) {
	target.Y = max(0, min(target.Y, m.height-1))
	best, bestDist := Point{}, -1
	for y := range m.height {
		for x := range m.width {
			p := Point{X: x, Y: y}
			if m.IsWall(p) || m.InHouse(p) {
				continue
			}
			d := core.Abs(p.X-target.X) + core.Abs(p.Y-target.Y)
			if bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}

