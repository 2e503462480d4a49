package world

// sightAspect squashes the vertical sight radius: terminal cells are about
// twice as tall as they are wide.
const sightAspect = 1.9

// Visibility describes what the player knows about a cell.
type Visibility int

const (
	Hidden Visibility = iota
	Remembered
	Visible
)

// InSight reports whether target lies inside the elliptical sight area of
// the given radius centred on origin.
func InSight(origin, target Position, radius int) bool {
	if radius <= 0 {
		return origin == target
	}
	r := float64(radius)
	ry := r / sightAspect
	dx := float64(target.X - origin.X)
	dy := float64(target.Y - origin.Y)
	return dx*dx/(r*r)+dy*dy/(ry*ry) <= 1
}

// Memory records every cell the player has seen.
type Memory struct {
	width, height int
	seen          []bool
}

// NewMemory creates an empty memory for a width×height map.
func NewMemory(width, height int) *Memory {
	return &Memory{width: width, height: height, seen: make([]bool, width*height)}
}

// Reveal marks every in-bounds cell in sight of origin as seen.
func (m *Memory) Reveal(origin Position, radius int) {
	for y := origin.Y - radius; y <= origin.Y+radius; y++ {
		for x := origin.X - radius; x <= origin.X+radius; x++ {
			p := Position{X: x, Y: y}
			if m.inBounds(p) && InSight(origin, p, radius) {
				m.seen[y*m.width+x] = true
			}
		}
	}
}

// Seen reports whether p has ever been revealed.
func (m *Memory) Seen(p Position) bool {
	return m.inBounds(p) && m.seen[p.Y*m.width+p.X]
}

func (m *Memory) inBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}
