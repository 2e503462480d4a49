package world

import (
	"errors"
	"testing"
)

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(4, 3, CellWall)
	for _, p := range []Position{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if c, ok := g.At(p); ok {
			t.Errorf("At(%+v) = %v, true; want absent", p, c)
		}
		if g.Is(p, CellWall) || g.Is(p, CellFloor) {
			t.Errorf("Is(%+v) matched an absent cell", p)
		}
	}
	if c, ok := g.At(Position{3, 2}); !ok || c != CellWall {
		t.Errorf("At(3,2) = %v, %v; want Wall, true", c, ok)
	}
}

func TestGridSet(t *testing.T) {
	g := NewGrid(4, 3, CellWall)
	if err := g.Set(Position{1, 1}, CellFloor); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !g.Is(Position{1, 1}, CellFloor) {
		t.Error("Set() did not write the cell")
	}
	if err := g.Set(Position{4, 1}, CellFloor); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Set() outside grid error = %v, want ErrOutOfBounds", err)
	}
}

func TestGridBorderClosed(t *testing.T) {
	g := mustParse(t,
		"####",
		"#..#",
		"####",
	)
	if !g.BorderClosed() {
		t.Error("BorderClosed() = false for a closed grid")
	}
	_ = g.Set(Position{3, 1}, CellFloor)
	if g.BorderClosed() {
		t.Error("BorderClosed() = true with floor on the right edge")
	}
	_ = g.Set(Position{3, 1}, CellItem)
	if g.BorderClosed() {
		t.Error("BorderClosed() = true with an item on the right edge")
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := ParseGrid(); err == nil {
		t.Error("ParseGrid() with no rows should fail")
	}
	if _, err := ParseGrid("###", "##"); err == nil {
		t.Error("ParseGrid() with ragged rows should fail")
	}
	if _, err := ParseGrid("#x#"); err == nil {
		t.Error("ParseGrid() with unknown cell should fail")
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(3, 3, CellWall)
	c := g.Clone()
	_ = c.Set(Position{1, 1}, CellFloor)
	if g.Equal(c) {
		t.Error("Clone() shares storage with the original")
	}
	if got := c.Count(CellFloor); got != 1 {
		t.Errorf("Count(Floor) = %d, want 1", got)
	}
}

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, -1}, 3},
		{Position{40, 20}, Position{28, 25}, 12},
		{Position{5, 5}, Position{4, 4}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("%+v.Distance(%+v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestToward(t *testing.T) {
	tests := []struct {
		from, to Position
		want     Direction
	}{
		{Position{5, 5}, Position{9, 5}, Right},
		{Position{5, 5}, Position{5, 1}, Up},
		{Position{5, 5}, Position{4, 6}, Direction{-1, 1}},
		{Position{5, 5}, Position{5, 5}, None},
	}
	for _, tt := range tests {
		if got := Toward(tt.from, tt.to); got != tt.want {
			t.Errorf("Toward(%+v, %+v) = %+v, want %+v", tt.from, tt.to, got, tt.want)
		}
	}
}
