package world

// Glyph is the rendered classification of a cell.
type Glyph int

const (
	// GlyphUnseen is a cell the player has never seen.
	GlyphUnseen Glyph = iota
	// GlyphOpenWall is solid rock with no floor nearby, drawn blank.
	GlyphOpenWall
	// GlyphVerticalWall is a wall with floor directly above or below it and
	// walls on both sides.
	GlyphVerticalWall
	// GlyphHorizontalWall is a wall with floor directly left or right of it
	// and walls above and below.
	GlyphHorizontalWall
	// GlyphCornerWall is any other wall touching both wall and floor.
	GlyphCornerWall
	GlyphFloor
	GlyphItem
)

// Rune returns the display character. A vertical wall faces floor along the
// y axis, so the wall run it belongs to is drawn horizontally, and the other
// way round for a horizontal wall.
func (g Glyph) Rune() rune {
	switch g {
	case GlyphVerticalWall:
		return '─'
	case GlyphHorizontalWall:
		return '│'
	case GlyphCornerWall:
		return '+'
	case GlyphFloor:
		return '.'
	case GlyphItem:
		return '&'
	default:
		return ' '
	}
}

// String returns the glyph name.
func (g Glyph) String() string {
	switch g {
	case GlyphUnseen:
		return "unseen"
	case GlyphOpenWall:
		return "open_wall"
	case GlyphVerticalWall:
		return "vertical_wall"
	case GlyphHorizontalWall:
		return "horizontal_wall"
	case GlyphCornerWall:
		return "corner_wall"
	case GlyphFloor:
		return "floor"
	case GlyphItem:
		return "item"
	default:
		return "unknown"
	}
}

// IsWall reports whether the glyph is one of the wall classifications.
func (g Glyph) IsWall() bool {
	return g >= GlyphOpenWall && g <= GlyphCornerWall
}

// GlyphGrid holds one glyph per cell. It is never modified after Classify.
type GlyphGrid struct {
	Width  int
	Height int
	glyphs []Glyph
}

// At returns the glyph at p, or GlyphUnseen outside the grid.
func (g *GlyphGrid) At(p Position) Glyph {
	if p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height {
		return GlyphUnseen
	}
	return g.glyphs[p.Y*g.Width+p.X]
}

// Equal reports whether both glyph grids are identical.
func (g *GlyphGrid) Equal(other *GlyphGrid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.glyphs {
		if g.glyphs[i] != other.glyphs[i] {
			return false
		}
	}
	return true
}

// Classify derives the glyph grid from cells. It is a pure function of the
// cell grid and never modifies it.
func Classify(cells *Grid) *GlyphGrid {
	out := &GlyphGrid{
		Width:  cells.Width,
		Height: cells.Height,
		glyphs: make([]Glyph, cells.Width*cells.Height),
	}
	for y := 0; y < cells.Height; y++ {
		for x := 0; x < cells.Width; x++ {
			p := Position{X: x, Y: y}
			var g Glyph
			switch c, _ := cells.At(p); c {
			case CellWall:
				g = classifyWall(cells, p)
			case CellFloor:
				g = GlyphFloor
			case CellItem:
				g = GlyphItem
			}
			out.glyphs[y*cells.Width+x] = g
		}
	}
	return out
}

// classifyWall applies the vertical, horizontal, corner rules in that order.
// Neighbours outside the grid match neither wall nor floor.
func classifyWall(cells *Grid, p Position) Glyph {
	up, down := p.Add(Up), p.Add(Down)
	left, right := p.Add(Left), p.Add(Right)

	switch {
	case (cells.Is(up, CellFloor) || cells.Is(down, CellFloor)) &&
		cells.Is(left, CellWall) && cells.Is(right, CellWall):
		return GlyphVerticalWall
	case (cells.Is(left, CellFloor) || cells.Is(right, CellFloor)) &&
		cells.Is(up, CellWall) && cells.Is(down, CellWall):
		return GlyphHorizontalWall
	case touches(cells, p, CellWall) && touches(cells, p, CellFloor):
		return GlyphCornerWall
	default:
		return GlyphOpenWall
	}
}

// touches reports whether any of the 8 neighbours of p equals c.
func touches(cells *Grid, p Position, c Cell) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cells.Is(Position{X: p.X + dx, Y: p.Y + dy}, c) {
				return true
			}
		}
	}
	return false
}
