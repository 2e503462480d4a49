package ui

import (
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Swing arcs indexed by the offset across the facing axis, -1..1.
var (
	swingUp    = [3]rune{'\\', '|', '/'}
	swingDown  = [3]rune{'/', '|', '\\'}
	swingLeft  = [3]rune{'\\', '─', '/'}
	swingRight = [3]rune{'/', '─', '\\'}
)

// swingCell returns the arc rune an entity at pos facing facing shows on
// cell p during the given animation frame. The three cells in front of the
// entity are lit one per frame as the countdown runs from 3 to 1.
func swingCell(pos world.Position, facing world.Direction, frames int, p world.Position) (rune, bool) {
	if frames <= 0 || facing == world.None {
		return 0, false
	}

	var offset int
	var arc [3]rune
	if facing.DX != 0 {
		if p.X != pos.X+facing.DX {
			return 0, false
		}
		offset = p.Y - pos.Y
		arc = swingLeft
		if facing.DX > 0 {
			arc = swingRight
		}
	} else {
		if p.Y != pos.Y+facing.DY {
			return 0, false
		}
		offset = p.X - pos.X
		arc = swingUp
		if facing.DY > 0 {
			arc = swingDown
		}
	}

	if offset < -1 || offset > 1 || offset+2 != frames {
		return 0, false
	}
	return arc[offset+1], true
}
