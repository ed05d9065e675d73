package pacman

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLayout(t *testing.T) {
	lines := []string{
		"#######",
		"#o...P#",
		"# #-# #",
		"#######",
	}
	m, err := ParseLayout(lines, 20)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}

	if m.Width() != 7 || m.Height() != 4 {
		t.Errorf("Size = %dx%d, expected 7x4", m.Width(), m.Height())
	}
	if m.Start() != (Point{X: 5, Y: 1}) {
		t.Errorf("Start() = %v, expected {5 1}", m.Start())
	}
	if m.DotsLeft() != 4 {
		t.Errorf("DotsLeft() = %d, expected 4", m.DotsLeft())
	}
	if m.At(Point{X: 1, Y: 1}) != CellPower {
		t.Error("Expected power-dot at (1,1)")
	}
	if !m.InHouse(Point{X: 3, Y: 2}) || m.IsWall(Point{X: 3, Y: 2}) {
		t.Error("Expected open ghost house cell at (3,2)")
	}
	if got := m.String(); got != strings.Join(lines, "\n") {
		t.Errorf("String() round trip failed:\n%s", got)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"ragged", []string{"####", "#-.", "####"}},
		{"unknown rune", []string{"####", "#-x#", "####"}},
		{"no house", []string{"####", "#P.#", "####"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout(tc.lines, 20)
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("ParseLayout() error = %v, expected ErrInvalidLayout", err)
			}
		})
	}
}

func TestParseLayoutWithoutStart(t *testing.T) {
	m, err := ParseLayout([]string{
		"#####",
		"#...#",
		"#.-.#",
		"#...#",
		"#####",
	}, 20)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	start := m.Start()
	if m.IsWall(start) || m.InHouse(start) {
		t.Errorf("Fallback start %v should be an open non-house cell", start)
	}
}

func TestMazeAtOutOfBounds(t *testing.T) {
	m := newMaze(7, 7, 20)
	for _, p := range []Point{{-1, 0}, {0, -1}, {7, 3}, {3, 7}} {
		if m.At(p) != CellWall {
			t.Errorf("At(%v) = %v, expected wall", p, m.At(p))
		}
	}
}

func TestConsumeIsIdempotent(t *testing.T) {
	m, err := ParseLayout([]string{
		"#####",
		"#P.o#",
		"#-###",
		"#####",
	}, 20)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}

	dot := Point{X: 2, Y: 1}
	if got := m.Consume(dot); got != CellDot {
		t.Errorf("First Consume() = %v, expected CellDot", got)
	}
	if got := m.Consume(dot); got != CellEmpty {
		t.Errorf("Second Consume() = %v, expected CellEmpty", got)
	}
	if got := m.Consume(Point{X: 3, Y: 1}); got != CellPower {
		t.Errorf("Consume(power) = %v, expected CellPower", got)
	}
	if got := m.Consume(Point{X: 0, Y: 0}); got != CellEmpty {
		t.Errorf("Consume(wall) = %v, expected CellEmpty", got)
	}
	if !m.IsWall(Point{X: 0, Y: 0}) {
		t.Error("Consume must not open walls")
	}
	if m.DotsLeft() != 0 {
		t.Errorf("DotsLeft() = %d, expected 0", m.DotsLeft())
	}
}

func TestClassicLayout(t *testing.T) {
	lines := ClassicLayout()
	if len(lines) != 31 {
		t.Fatalf("Classic layout has %d rows, expected 31", len(lines))
	}

	m, err := ParseLayout(lines, 20)
	if err != nil {
		t.Fatalf("ParseLayout(classic) failed: %v", err)
	}
	if m.Width() != 28 {
		t.Errorf("Width() = %d, expected 28", m.Width())
	}

	// The tunnel row is open at both edges
	if m.IsWall(Point{X: 0, Y: 14}) || m.IsWall(Point{X: 27, Y: 14}) {
		t.Error("Tunnel row 14 should be open at both edges")
	}
	assertNoOrphanDots(t, m)

	// Callers get a copy
	lines[0] = "changed"
	if ClassicLayout()[0] == "changed" {
		t.Error("ClassicLayout() should return a copy")
	}
}
