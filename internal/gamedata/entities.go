package gamedata

import (
	"github.com/gdamore/tcell/v2"
)

// EntityDef defines the look of the player or an enemy kind.
type EntityDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "G")
	Color       string `json:"color"`       // Hex color code (e.g., "#FF5555")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (enemies only)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EntityDef) GlyphRune() rune {
	for _, r := range e.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (e *EntityDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EntitiesFile represents the structure of entities.json.
type EntitiesFile struct {
	Player      EntityDef   `json:"player"`
	SpawnChance float64     `json:"spawnChance"` // Per floor cell enemy probability
	Enemies     []EntityDef `json:"enemies"`
}
