package world

import "errors"

var (
	// ErrOutOfBounds is returned when carving would write outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrOpenBorder is returned when a carved grid has a non-wall cell on its border.
	ErrOpenBorder = errors.New("dungeon border is not closed")
	// ErrTooSmall is returned when the requested dimensions cannot hold a dungeon.
	ErrTooSmall = errors.New("dungeon dimensions too small")
	// ErrGenerationExhausted is returned when every generation attempt failed.
	ErrGenerationExhausted = errors.New("dungeon generation exhausted")
)
