package pacman

// Direction is one of the four cardinal movement directions.
// DirNone is the zero value and means "no request".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movable directions in a fixed order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

var (
	deltas = [...][2]int{
		DirNone:  {0, 0},
		DirUp:    {0, -1},
		DirDown:  {0, 1},
		DirLeft:  {-1, 0},
		DirRight: {1, 0},
	}
	opposites = [...]Direction{
		DirNone:  DirNone,
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	// right -> down -> left -> up -> right
	clockwise = [...]Direction{
		DirNone:  DirRight,
		DirUp:    DirRight,
		DirRight: DirDown,
		DirDown:  DirLeft,
		DirLeft:  DirUp,
	}
	names = [...]string{
		DirNone:  "none",
		DirUp:    "up",
		DirDown:  "down",
		DirLeft:  "left",
		DirRight: "right",
	}
)

func (d Direction) valid() bool {
	return d >= DirNone && d <= DirRight
}

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	if !d.valid() {
		return 0, 0
	}
	v := deltas[d]
	return v[0], v[1]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return DirNone
	}
	return opposites[d]
}

// Clockwise returns the next direction in the right, down, left, up cycle.
func (d Direction) Clockwise() Direction {
	if !d.valid() {
		return DirRight
	}
	return clockwise[d]
}

func (d Direction) String() string {
	if !d.valid() {
		return "unknown"
	}
	return names[d]
}
