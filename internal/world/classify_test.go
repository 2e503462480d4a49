package world

import (
	"context"
	"math/rand"
	"testing"
)

func mustParse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows...)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	return g
}

func TestClassifyRoom(t *testing.T) {
	cells := mustParse(t,
		"#######",
		"#######",
		"##...##",
		"##.&.##",
		"##...##",
		"#######",
		"#######",
	)
	glyphs := Classify(cells)

	tests := []struct {
		pos  Position
		want Glyph
	}{
		{Position{3, 1}, GlyphVerticalWall},   // above the room
		{Position{3, 5}, GlyphVerticalWall},   // below the room
		{Position{1, 3}, GlyphHorizontalWall}, // left of the room
		{Position{5, 3}, GlyphHorizontalWall}, // right of the room
		{Position{1, 1}, GlyphCornerWall},     // diagonal to a floor cell only
		{Position{5, 5}, GlyphCornerWall},
		{Position{0, 0}, GlyphOpenWall},
		{Position{6, 3}, GlyphOpenWall},
		{Position{2, 2}, GlyphFloor},
		{Position{3, 3}, GlyphItem},
	}
	for _, tt := range tests {
		if got := glyphs.At(tt.pos); got != tt.want {
			t.Errorf("Classify() at %+v = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestClassifyPriority(t *testing.T) {
	// (1,1) has floor above and left, walls right and below: the vertical
	// rule needs a wall on the left so it fails, the horizontal rule needs a
	// wall above so it fails too, leaving a corner.
	cells := mustParse(t,
		"#.#",
		".##",
		"###",
	)
	if got := Classify(cells).At(Position{1, 1}); got != GlyphCornerWall {
		t.Errorf("Classify() at (1,1) = %v, want corner", got)
	}

	// (1,1) has floor above and below with walls on both sides: vertical wins
	// even though it also touches floor diagonally.
	cells = mustParse(t,
		"...",
		"###",
		"...",
	)
	if got := Classify(cells).At(Position{1, 1}); got != GlyphVerticalWall {
		t.Errorf("Classify() at (1,1) = %v, want vertical", got)
	}
}

func TestClassifyOutOfBoundsNeighbours(t *testing.T) {
	// Edge walls have absent neighbours; absent never counts as wall.
	cells := mustParse(t,
		"#.#",
		"#.#",
	)
	glyphs := Classify(cells)
	// (0,0): right is floor but up is absent, so not horizontal; it touches
	// a wall below and floor, so corner.
	if got := glyphs.At(Position{0, 0}); got != GlyphCornerWall {
		t.Errorf("Classify() at (0,0) = %v, want corner", got)
	}
	if got := glyphs.At(Position{-1, 0}); got != GlyphUnseen {
		t.Errorf("At() outside grid = %v, want unseen", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	d := NewDungeon(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(42)))
	if err := d.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	before := d.Cells.Clone()

	first := Classify(d.Cells)
	second := Classify(d.Cells)
	if !first.Equal(second) {
		t.Error("Classify() is not deterministic")
	}
	if !first.Equal(d.Glyphs) {
		t.Error("Classify() differs from the glyphs computed by Generate()")
	}
	if !d.Cells.Equal(before) {
		t.Error("Classify() modified the cell grid")
	}
}

func TestClassifyWallProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for run := 0; run < 10; run++ {
		d := NewDungeon(DefaultWidth, DefaultHeight, rng)
		if err := d.Generate(context.Background()); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for y := 0; y < d.Height; y++ {
			for x := 0; x < d.Width; x++ {
				p := Position{X: x, Y: y}
				up, down := p.Add(Up), p.Add(Down)
				left, right := p.Add(Left), p.Add(Right)
				switch d.Glyph(p) {
				case GlyphVerticalWall:
					if !d.Cells.Is(left, CellWall) || !d.Cells.Is(right, CellWall) {
						t.Fatalf("vertical wall %+v lacks walls left and right", p)
					}
					if !d.Cells.Is(up, CellFloor) && !d.Cells.Is(down, CellFloor) {
						t.Fatalf("vertical wall %+v has no floor above or below", p)
					}
				case GlyphHorizontalWall:
					if !d.Cells.Is(up, CellWall) || !d.Cells.Is(down, CellWall) {
						t.Fatalf("horizontal wall %+v lacks walls above and below", p)
					}
					if !d.Cells.Is(left, CellFloor) && !d.Cells.Is(right, CellFloor) {
						t.Fatalf("horizontal wall %+v has no floor left or right", p)
					}
				}
			}
		}
	}
}

func TestGlyphRune(t *testing.T) {
	tests := []struct {
		glyph Glyph
		want  rune
	}{
		{GlyphUnseen, ' '},
		{GlyphOpenWall, ' '},
		{GlyphVerticalWall, '─'},
		{GlyphHorizontalWall, '│'},
		{GlyphCornerWall, '+'},
		{GlyphFloor, '.'},
		{GlyphItem, '&'},
	}
	for _, tt := range tests {
		if got := tt.glyph.Rune(); got != tt.want {
			t.Errorf("%v.Rune() = %q, want %q", tt.glyph, got, tt.want)
		}
	}
}
