package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// MinMazeSize is the smallest width or height Generate accepts.
const MinMazeSize = 7

// Generator builds random mazes from a seeded RNG.
type Generator struct {
	rng      *rand.Rand
	cellSize float64
	houseW   int
	houseH   int
}

// NewGenerator creates a generator. The ghost house is houseW x houseH cells.
func NewGenerator(rng *rand.Rand, cellSize float64, houseW, houseH int) *Generator {
	return &Generator{
		rng:      rng,
		cellSize: cellSize,
		houseW:   houseW,
		houseH:   houseH,
	}
}

// edge is a frontier entry: the wall two cells away from a carved cell.
type edge struct {
	from Point
	dir  Direction
}

// Generate builds a w x h maze. Sizes below MinMazeSize are raised to it.
//
// The border is solid wall, the four inner corners hold power-dots, the
// ghost house is open and every dot is reachable from the player start.
func (g *Generator) Generate(w, h int) *Maze {
	w = max(w, MinMazeSize)
	h = max(h, MinMazeSize)
	m := newMaze(w, h, g.cellSize)

	g.carve(m)
	g.placeHouse(m)
	g.sealBorder(m)

	for _, p := range []Point{{1, 1}, {w - 2, 1}, {1, h - 2}, {w - 2, h - 2}} {
		m.set(p, CellPower)
	}

	m.start, _ = m.nearestOpen(Point{X: w / 2, Y: h - 5})
	g.repair(m)
	g.fill(m)

	return m
}

// carve runs randomized Prim's over the odd cell lattice.
func (g *Generator) carve(m *Maze) {
	start := Point{X: oddFloor(m.width / 2), Y: oddFloor(m.height / 2)}
	m.set(start, CellEmpty)

	var frontier []edge
	frontier = g.addFrontier(m, frontier, start)

	for len(frontier) > 0 {
		i := g.rng.Intn(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		dx, dy := e.dir.Delta()
		far := Point{X: e.from.X + 2*dx, Y: e.from.Y + 2*dy}
		if !m.IsWall(far) {
			continue
		}
		m.set(Point{X: e.from.X + dx, Y: e.from.Y + dy}, CellEmpty)
		m.set(far, CellEmpty)
		frontier = g.addFrontier(m, frontier, far)
	}
}

func (g *Generator) addFrontier(m *Maze, frontier []edge, p Point) []edge {
	for _, d := range Directions {
		dx, dy := d.Delta()
		far := Point{X: p.X + 2*dx, Y: p.Y + 2*dy}
		if far.X < 1 || far.X > m.width-2 || far.Y < 1 || far.Y > m.height-2 {
			continue
		}
		if m.IsWall(far) {
			frontier = append(frontier, edge{from: p, dir: d})
		}
	}
	return frontier
}

// placeHouse clears the centred ghost house rectangle.
func (g *Generator) placeHouse(m *Maze) {
	hw := core.Clamp(g.houseW, 1, m.width-4)
	hh := core.Clamp(g.houseH, 1, m.height-4)
	r := core.NewRect(0, 0, m.width, m.height).Centered(hw, hh)

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			p := Point{X: x, Y: y}
			m.set(p, CellEmpty)
			m.markHouse(p)
		}
	}
}

func (g *Generator) sealBorder(m *Maze) {
	for x := range m.width {
		m.set(Point{X: x, Y: 0}, CellWall)
		m.set(Point{X: x, Y: m.height - 1}, CellWall)
	}
	for y := range m.height {
		m.set(Point{X: 0, Y: y}, CellWall)
		m.set(Point{X: m.width - 1, Y: y}, CellWall)
	}
}

// repair carves L-shaped corridors until every open cell is reachable
// from the player start.
func (g *Generator) repair(m *Maze) {
	for {
		seen := m.reachable(m.start)
		lost, ok := m.firstUnreached(seen)
		if !ok {
			return
		}
		target := m.nearestReached(seen, lost)

		// Horizontal leg first, then vertical
		x, y := lost.X, lost.Y
		for x != target.X {
			x += sign(target.X - x)
			g.open(m, Point{X: x, Y: y})
		}
		for y != target.Y {
			y += sign(target.Y - y)
			g.open(m, Point{X: x, Y: y})
		}
	}
}

func (g *Generator) open(m *Maze, p Point) {
	if m.IsWall(p) {
		m.set(p, CellEmpty)
	}
}

// fill turns every empty cell outside the ghost house into a dot.
// The player start stays empty.
func (g *Generator) fill(m *Maze) {
	for y := range m.height {
		for x := range m.width {
			p := Point{X: x, Y: y}
			if m.At(p) == CellEmpty && !m.InHouse(p) && p != m.start {
				m.set(p, CellDot)
			}
		}
	}
	m.countDots()
}

// reachable floods from p over non-wall cells, wrapping at the edges.
func (m *Maze) reachable(from Point) []bool {
	seen := make([]bool, len(m.cells))
	if m.IsWall(from) {
		return seen
	}
	seen[m.index(from)] = true
	stack := []Point{from}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range Directions {
			dx, dy := d.Delta()
			n := Point{
				X: (p.X + dx + m.width) % m.width,
				Y: (p.Y + dy + m.height) % m.height,
			}
			if m.IsWall(n) || seen[m.index(n)] {
				continue
			}
			seen[m.index(n)] = true
			stack = append(stack, n)
		}
	}
	return seen
}

func (m *Maze) firstUnreached(seen []bool) (Point, bool) {
	for i, k := range m.cells {
		if k != CellWall && !seen[i] {
			return Point{X: i % m.width, Y: i / m.width}, true
		}
	}
	return Point{}, false
}

func (m *Maze) nearestReached(seen []bool, p Point) Point {
	best, bestDist := m.start, -1
	for i, ok := range seen {
		if !ok {
			continue
		}
		q := Point{X: i % m.width, Y: i / m.width}
		d := core.Abs(q.X-p.X) + core.Abs(q.Y-p.Y)
		if bestDist < 0 || d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

func oddFloor(v int) int {
	if v%2 == 0 {
		return v - 1
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
