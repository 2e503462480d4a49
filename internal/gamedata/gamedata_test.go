package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadEntities(t *testing.T) {
	file, err := LoadFS[EntitiesFile](dataFS, "entities.json")
	if err != nil {
		t.Fatalf("Failed to load entities: %v", err)
	}

	if file.Player.Name != "Hrothgar" {
		t.Errorf("Player.Name = %q, want %q", file.Player.Name, "Hrothgar")
	}
	if file.Player.GlyphRune() != '@' {
		t.Errorf("Player glyph = %c, want @", file.Player.GlyphRune())
	}
	if file.SpawnChance != 0.01 {
		t.Errorf("SpawnChance = %v, want 0.01", file.SpawnChance)
	}

	expectedIDs := map[string]bool{"goblin": false, "kobold": false}
	for _, e := range file.Enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 enemy kinds, got %d", registry.Count())
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	counts := map[string]int{}
	for i := 0; i < 400; i++ {
		a, b := registry.SpawnRandom(rng1), registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Fatalf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
		counts[a.ID]++
	}
	if counts["goblin"] <= counts["kobold"] {
		t.Errorf("goblin (weight 3) spawned %d times, kobold (weight 1) %d times", counts["goblin"], counts["kobold"])
	}
}

func TestLoadRegistryFSValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"no enemies", `{"player":{"name":"P"},"spawnChance":0.01,"enemies":[]}`},
		{"bad chance", `{"player":{"name":"P"},"spawnChance":2,"enemies":[{"id":"g","spawnWeight":1}]}`},
		{"zero weight", `{"player":{"name":"P"},"spawnChance":0.01,"enemies":[{"id":"g","spawnWeight":0}]}`},
		{"malformed", `{"player":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"entities.json": &fstest.MapFile{Data: []byte(tt.json)}}
			if _, err := LoadRegistryFS(fsys); err == nil {
				t.Error("LoadRegistryFS() should fail")
			}
		})
	}

	if _, err := LoadRegistryFS(fstest.MapFS{}); err == nil {
		t.Error("LoadRegistryFS() without entities.json should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"00FF00", tcell.NewRGBColor(0, 255, 0), true},
		{"#F80", tcell.NewRGBColor(255, 136, 0), true},
		{"#FFFFFF", tcell.NewRGBColor(255, 255, 255), true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFFF", tcell.ColorDefault, false},
		{"#GG0000", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
			continue
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
			continue
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEntityDefMethods(t *testing.T) {
	def := EntityDef{ID: "test", Name: "Test Enemy", Glyph: "T", Color: "#FF0000"}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("TCellColor() = %v", def.TCellColor())
	}

	empty := EntityDef{Color: "nope"}
	if empty.GlyphRune() != '?' {
		t.Errorf("empty glyph = %c, want ?", empty.GlyphRune())
	}
	if empty.TCellColor() != tcell.ColorWhite {
		t.Errorf("invalid color should fall back to white")
	}
}
