package pacman

import "testing"

func TestDirectionTables(t *testing.T) {
	tests := []struct {
		dir       Direction
		dx, dy    int
		opposite  Direction
		clockwise Direction
		name      string
	}{
		{DirUp, 0, -1, DirDown, DirRight, "up"},
		{DirRight, 1, 0, DirLeft, DirDown, "right"},
		{DirDown, 0, 1, DirUp, DirLeft, "down"},
		{DirLeft, -1, 0, DirRight, DirUp, "left"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d,%d), expected (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
			if got := tc.dir.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", got, tc.opposite)
			}
			if got := tc.dir.Clockwise(); got != tc.clockwise {
				t.Errorf("Clockwise() = %v, expected %v", got, tc.clockwise)
			}
			if got := tc.dir.String(); got != tc.name {
				t.Errorf("String() = %q, expected %q", got, tc.name)
			}
		})
	}
}

func TestDirectionNone(t *testing.T) {
	if dx, dy := DirNone.Delta(); dx != 0 || dy != 0 {
		t.Errorf("DirNone.Delta() = (%d,%d), expected (0,0)", dx, dy)
	}
	if DirNone.Opposite() != DirNone {
		t.Error("DirNone.Opposite() should be DirNone")
	}
	if Direction(42).String() != "unknown" {
		t.Error("Out-of-range direction should print as unknown")
	}
}
