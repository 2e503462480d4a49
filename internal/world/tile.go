// Package world provides dungeon generation and map management.
package world

// Cell is the authoritative marker stored for one grid coordinate.
type Cell rune

const (
	// CellWall represents solid rock.
	CellWall Cell = '#'
	// CellFloor represents a walkable floor cell.
	CellFloor Cell = '.'
	// CellItem marks an item lying on the floor. Items block movement.
	CellItem Cell = '&'
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == CellFloor
}

// String returns the cell name used in collision messages.
func (c Cell) String() string {
	switch c {
	case CellWall:
		return "Wall"
	case CellFloor:
		return "Floor"
	case CellItem:
		return "Item"
	default:
		return "Unknown"
	}
}
