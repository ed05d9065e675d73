package pacman

import (
	"math"
	"testing"
)

// corridor is a 7x5 maze: a horizontal corridor on row 1 open at both
// edges, a dead-end branch down at column 3 and a sealed house.
func corridor(t *testing.T) *Maze {
	t.Helper()
	m, err := ParseLayout([]string{
		"#######",
		"P......",
		"###.###",
		"#######",
		"#-#####",
	}, 20)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	return m
}

func TestWrap(t *testing.T) {
	m := corridor(t) // 140 x 100 units

	tests := []struct {
		x, y   float64
		wx, wy float64
	}{
		{10, 10, 10, 10},
		{-2, 30, 138, 30},
		{140, 30, 0, 30},
		{141.5, -5, 1.5, 95},
		{-140, 200, 0, 0},
	}

	for _, tc := range tests {
		wx, wy := m.Wrap(tc.x, tc.y)
		if math.Abs(wx-tc.wx) > 1e-9 || math.Abs(wy-tc.wy) > 1e-9 {
			t.Errorf("Wrap(%v,%v) = (%v,%v), expected (%v,%v)", tc.x, tc.y, wx, wy, tc.wx, tc.wy)
		}
	}
}

func TestCellAtAndCenter(t *testing.T) {
	m := corridor(t)

	if got := m.CellAt(30, 30); got != (Point{X: 1, Y: 1}) {
		t.Errorf("CellAt(30,30) = %v, expected {1 1}", got)
	}
	if got := m.CellAt(-1, 30); got != (Point{X: 6, Y: 1}) {
		t.Errorf("CellAt(-1,30) = %v, expected {6 1}", got)
	}

	x, y := m.Center(Point{X: 3, Y: 2})
	if x != 70 || y != 50 {
		t.Errorf("Center({3 2}) = (%v,%v), expected (70,50)", x, y)
	}
}

func TestCanMove(t *testing.T) {
	m := corridor(t)
	x, y := m.Center(Point{X: 1, Y: 1})

	tests := []struct {
		name string
		dir  Direction
		step float64
		want bool
	}{
		{"inside own cell", DirUp, 5, true},
		{"into wall above", DirUp, 20, false},
		{"along corridor", DirRight, 20, true},
		{"into wall below", DirDown, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.CanMove(x, y, tc.dir, tc.step); got != tc.want {
				t.Errorf("CanMove(%v, %v) = %v, expected %v", tc.dir, tc.step, got, tc.want)
			}
		})
	}

	// Stepping off the left edge lands in the open cell on the right edge
	ex, ey := m.Center(Point{X: 0, Y: 1})
	if !m.CanMove(ex, ey, DirLeft, 20) {
		t.Error("CanMove off an open edge should wrap and succeed")
	}
}

func TestNearCenter(t *testing.T) {
	m := corridor(t)

	if !m.NearCenter(31.5, 29, 2) {
		t.Error("NearCenter should accept a point within the step")
	}
	if m.NearCenter(33, 30, 2) {
		t.Error("NearCenter should reject a point beyond the step")
	}
}

func TestAdvanceStopsAtWall(t *testing.T) {
	m := corridor(t)
	x, y := m.Center(Point{X: 3, Y: 1})
	a := actor{X: x, Y: y, Dir: DirDown}

	// Down leads into the dead-end at (3,2); the actor stops on its centre
	for range 40 {
		m.advance(&a, DirNone, 2)
		if m.IsWall(m.CellAt(a.X, a.Y)) {
			t.Fatalf("Actor entered a wall at (%v,%v)", a.X, a.Y)
		}
	}

	cx, cy := m.Center(Point{X: 3, Y: 2})
	if a.X != cx || a.Y != cy {
		t.Errorf("Actor at (%v,%v), expected stopped at (%v,%v)", a.X, a.Y, cx, cy)
	}
	if m.advance(&a, DirNone, 2) {
		t.Error("advance() should report no movement against a wall")
	}
}

func TestAdvanceTurnsOnlyAtCenter(t *testing.T) {
	m := corridor(t)
	x, y := m.Center(Point{X: 1, Y: 1})
	a := actor{X: x, Y: y, Dir: DirRight}

	// Request down every tick; the turn happens at the (3,1) junction
	turnedAt := -1.0
	for range 30 {
		before := a.X
		m.advance(&a, DirDown, 2)
		if a.Dir == DirDown {
			turnedAt = before
			break
		}
	}

	if a.Dir != DirDown {
		t.Fatal("Actor never turned down")
	}
	if a.X != 70 {
		t.Errorf("Actor turned at x=%v, expected snapped to 70", a.X)
	}
	if math.Abs(turnedAt-70) > 2 {
		t.Errorf("Turn started %v units from the junction centre", math.Abs(turnedAt-70))
	}
}

func TestAdvanceReversesAnywhere(t *testing.T) {
	m := corridor(t)
	a := actor{X: 45, Y: 30, Dir: DirRight}

	if !m.advance(&a, DirLeft, 2) {
		t.Fatal("Reversal should move the actor")
	}
	if a.Dir != DirLeft || a.X != 43 {
		t.Errorf("After reversal: dir=%v x=%v, expected left at 43", a.Dir, a.X)
	}
}

func TestAdvanceWrapsThroughTunnel(t *testing.T) {
	m := corridor(t)
	x, y := m.Center(Point{X: 0, Y: 1})
	a := actor{X: x, Y: y, Dir: DirLeft}

	for range 10 {
		m.advance(&a, DirNone, 2)
	}

	if got := m.CellAt(a.X, a.Y); got != (Point{X: 6, Y: 1}) {
		t.Errorf("After the tunnel actor is in %v, expected {6 1}", got)
	}
	if a.X < 0 || a.X >= 140 {
		t.Errorf("Position %v not wrapped into [0,140)", a.X)
	}
}

func TestDistanceWraps(t *testing.T) {
	m := corridor(t)

	if d := m.Distance(5, 30, 135, 30); math.Abs(d-10) > 1e-9 {
		t.Errorf("Distance across the edge = %v, expected 10", d)
	}
	if d := m.Distance(30, 30, 60, 70); math.Abs(d-50) > 1e-9 {
		t.Errorf("Distance = %v, expected 50", d)
	}
}
