package world

// Room represents a rectangular room carved at the end of a corridor.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Positions returns every cell covered by the room in row-major order.
func (r Room) Positions() []Position {
	out := make([]Position, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}
