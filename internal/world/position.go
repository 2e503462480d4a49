package world

// Position is a cell coordinate on the map, x to the right and y downwards.
type Position struct {
	X, Y int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Distance returns the Chebyshev distance between two positions.
func (p Position) Distance(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// Direction is a unit or zero step with each component in {-1, 0, 1}.
type Direction struct {
	DX, DY int
}

var (
	None  = Direction{0, 0}
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Cardinals lists the four walk directions in N, E, S, W order.
var Cardinals = [4]Direction{Up, Right, Down, Left}

// Toward returns the 8-directional step from one position toward another.
// A component is zero when both positions share that axis.
func Toward(from, to Position) Direction {
	return Direction{DX: sign(to.X - from.X), DY: sign(to.Y - from.Y)}
}

// IsVertical reports whether the direction moves only along the y axis.
func (d Direction) IsVertical() bool {
	return d.DX == 0 && d.DY != 0
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
