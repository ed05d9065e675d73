package pacman

import "testing"

func playerMaze(t *testing.T) *Maze {
	t.Helper()
	m, err := ParseLayout([]string{
		"#########",
		"#P.o....#",
		"###.#####",
		"###-#####",
		"#########",
	}, 20)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	return m
}

func TestNewPlayer(t *testing.T) {
	m := playerMaze(t)
	p := NewPlayer(m, 2, 0.1)

	x, y := p.Position()
	if x != 30 || y != 30 {
		t.Errorf("Position() = (%v,%v), expected (30,30)", x, y)
	}
	if p.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", p.Direction())
	}
}

func TestPlayerConsumesOncePerCell(t *testing.T) {
	m := playerMaze(t)
	p := NewPlayer(m, 2, 0.1)

	var dots, powers int
	for range 40 {
		switch p.Update(m) {
		case CellDot:
			dots++
		case CellPower:
			powers++
		}
	}

	// Cells (2,1) and (3,1) are entered; the player keeps running right
	if powers != 1 {
		t.Errorf("Power-dots consumed = %d, expected 1", powers)
	}
	if dots < 1 {
		t.Errorf("Dots consumed = %d, expected at least 1", dots)
	}
	if m.At(Point{X: 2, Y: 1}) != CellEmpty || m.At(Point{X: 3, Y: 1}) != CellEmpty {
		t.Error("Consumed cells should be empty")
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	m := playerMaze(t)
	p := NewPlayer(m, 2, 0.1)

	for range 200 {
		p.Update(m)
		if m.IsWall(m.CellAt(p.Position())) {
			t.Fatalf("Player entered a wall at %v", m.CellAt(p.Position()))
		}
	}

	if got := m.CellAt(p.Position()); got != (Point{X: 7, Y: 1}) {
		t.Errorf("Player stopped in %v, expected {7 1}", got)
	}
	x, _ := p.Position()
	if x != 150 {
		t.Errorf("Player x = %v, expected snapped to 150", x)
	}
}

func TestPlayerBufferedTurn(t *testing.T) {
	m := playerMaze(t)
	p := NewPlayer(m, 2, 0.1)

	// Down is requested immediately but only possible at column 3
	p.SetDirection(DirDown)
	for range 25 {
		p.Update(m)
	}

	if p.Direction() != DirDown {
		t.Fatalf("Direction() = %v, expected down after reaching the junction", p.Direction())
	}
	x, _ := p.Position()
	if x != 70 {
		t.Errorf("Player x = %v, expected 70 on the junction column", x)
	}
}

func TestPlayerSetDirectionIgnoresNone(t *testing.T) {
	m := playerMaze(t)
	p := NewPlayer(m, 2, 0.1)

	p.SetDirection(DirLeft)
	p.SetDirection(DirNone)
	if p.next != DirLeft {
		t.Errorf("next = %v, expected left to stay buffered", p.next)
	}
}

func TestPlayerMouthBounds(t *testing.T) {
	m := playerMaze(t)
	p := NewPlayer(m, 2, 0.1)

	sawOpen, sawShut := false, false
	for range 100 {
		p.Update(m)
		mouth := p.Mouth()
		if mouth < 0 || mouth > MaxMouth {
			t.Fatalf("Mouth() = %v, outside [0, %v]", mouth, MaxMouth)
		}
		if mouth == MaxMouth {
			sawOpen = true
		}
		if mouth == 0 {
			sawShut = true
		}
	}

	if !sawOpen || !sawShut {
		t.Errorf("Mouth should reach both bounds (open=%v shut=%v)", sawOpen, sawShut)
	}
}
