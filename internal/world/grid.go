package world

import "fmt"

// Grid is a width×height matrix of cells stored row-major.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(width, height int, fill Cell) *Grid {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// ParseGrid builds a grid from rows of cell runes ('#', '.', '&').
// All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	width := len([]rune(rows[0]))
	g := NewGrid(width, len(rows), CellWall)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("parse grid: row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			c := Cell(r)
			if c != CellWall && c != CellFloor && c != CellItem {
				return nil, fmt.Errorf("parse grid: unknown cell %q at (%d,%d)", r, x, y)
			}
			g.cells[y*width+x] = c
		}
	}
	return g, nil
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p. The second result is false when p is outside
// the grid; an absent cell is neither wall nor floor.
func (g *Grid) At(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y*g.Width+p.X], true
}

// Is reports whether the cell at p exists and equals c.
func (g *Grid) Is(p Position, c Cell) bool {
	v, ok := g.At(p)
	return ok && v == c
}

// Set writes c at p, failing with ErrOutOfBounds outside the grid.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", p.X, p.Y, g.Width, g.Height, ErrOutOfBounds)
	}
	g.cells[p.Y*g.Width+p.X] = c
	return nil
}

// BorderClosed reports whether every cell on the outer edge is a wall.
func (g *Grid) BorderClosed() bool {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x != 0 && y != 0 && x != g.Width-1 && y != g.Height-1 {
				continue
			}
			if g.cells[y*g.Width+x] != CellWall {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells equal c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
