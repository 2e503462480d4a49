package world

import "testing"

func TestInSight(t *testing.T) {
	origin := Position{40, 20}
	tests := []struct {
		target Position
		want   bool
	}{
		{Position{40, 20}, true},
		{Position{48, 20}, true},  // full horizontal radius
		{Position{49, 20}, false}, // just beyond
		{Position{40, 24}, true},  // 4 <= 8/1.9
		{Position{40, 25}, false}, // 5 > 8/1.9
		{Position{46, 24}, false},
	}
	for _, tt := range tests {
		if got := InSight(origin, tt.target, 8); got != tt.want {
			t.Errorf("InSight(%+v, %+v, 8) = %v, want %v", origin, tt.target, got, tt.want)
		}
	}
}

func TestMemoryReveal(t *testing.T) {
	m := NewMemory(20, 10)
	if m.Seen(Position{5, 5}) {
		t.Fatal("new memory has seen cells")
	}
	m.Reveal(Position{1, 1}, 4)
	if !m.Seen(Position{1, 1}) || !m.Seen(Position{5, 1}) {
		t.Error("Reveal() missed cells in sight")
	}
	if m.Seen(Position{10, 1}) {
		t.Error("Reveal() marked a cell out of sight")
	}
	if m.Seen(Position{-1, 1}) {
		t.Error("Seen() outside the map should be false")
	}
}
