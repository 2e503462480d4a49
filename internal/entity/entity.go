// Package entity provides the player and the monsters that roam the dungeon.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	// StartingHP is every entity's initial health.
	StartingHP = 20
	// DefaultViewDistance is the player's sight radius in cells.
	DefaultViewDistance = 8
)

// Role distinguishes the player from enemies.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a creature on the map. Player-only fields are zero for enemies.
type Entity struct {
	ID     uuid.UUID
	Def    *gamedata.EntityDef // Look of the entity (name, glyph, colour)
	Name   string
	Symbol rune
	Role   Role

	Pos        world.Position
	Facing     world.Direction // Last faced orientation, also the swing direction
	HP         int
	AnimFrames int // Remaining swing animation frames, 0 when idle

	// Player only
	ViewDistance int
	XP           int
}

func newEntity(def *gamedata.EntityDef, role Role, pos world.Position) *Entity {
	e := &Entity{
		ID:     uuid.New(),
		Def:    def,
		Name:   "Unknown",
		Symbol: '?',
		Role:   role,
		Pos:    pos,
		Facing: world.Up,
		HP:     StartingHP,
	}
	if def != nil {
		e.Name = def.Name
		e.Symbol = def.GlyphRune()
	}
	return e
}

// NewPlayer creates the player at pos.
func NewPlayer(def *gamedata.EntityDef, pos world.Position) *Entity {
	e := newEntity(def, RolePlayer, pos)
	e.ViewDistance = DefaultViewDistance
	return e
}

// NewEnemy creates an enemy at pos.
func NewEnemy(def *gamedata.EntityDef, pos world.Position) *Entity {
	return newEntity(def, RoleEnemy, pos)
}

// Color returns the tcell colour for this entity.
func (e *Entity) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	if e.Role == RolePlayer {
		return tcell.ColorYellow
	}
	return tcell.ColorRed
}

// Turn faces the entity along one axis toward target. The x axis is checked
// first and the y axis second, so a vertical difference wins when both axes
// differ. Turning toward the entity's own cell keeps its facing.
func (e *Entity) Turn(target world.Position) {
	if target.X < e.Pos.X {
		e.Facing = world.Left
	}
	if target.X > e.Pos.X {
		e.Facing = world.Right
	}
	if target.Y < e.Pos.Y {
		e.Facing = world.Up
	}
	if target.Y > e.Pos.Y {
		e.Facing = world.Down
	}
}

// Move turns toward p, cancels any swing animation and steps onto p.
// Legality is checked by the caller.
func (e *Entity) Move(p world.Position) {
	e.Turn(p)
	e.AnimFrames = 0
	e.Pos = p
}

// Animating reports whether a swing animation is in progress.
func (e *Entity) Animating() bool {
	return e.AnimFrames > 0
}

// TickAnimation advances the swing animation by one frame and reports
// whether anything changed.
func (e *Entity) TickAnimation() bool {
	if e.AnimFrames <= 0 {
		return false
	}
	e.AnimFrames--
	return true
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the entity's name.
func (e *Entity) GetName() string { return e.Name }

// IsPlayer reports whether the entity is the player.
func (e *Entity) IsPlayer() bool { return e.Role == RolePlayer }

// IsAlive returns true if the entity has HP remaining.
func (e *Entity) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Entity) GetHP() int { return e.HP }

// Position returns the entity's current cell.
func (e *Entity) Position() world.Position { return e.Pos }

// Face sets the facing direction.
func (e *Entity) Face(d world.Direction) { e.Facing = d }

// StartSwing starts a swing animation of the given length.
func (e *Entity) StartSwing(frames int) { e.AnimFrames = frames }

// TakeHit subtracts amount from HP, clamping at zero, and reports whether the
// hit was lethal.
func (e *Entity) TakeHit(amount int) bool {
	if amount > 0 {
		e.HP = max(e.HP-amount, 0)
	}
	return e.HP <= 0
}

// GainXP adds experience. Only the player gains experience.
func (e *Entity) GainXP(amount int) {
	if e.Role != RolePlayer {
		return
	}
	e.XP += amount
}

// Ensure Entity implements combat.Combatant
var _ combat.Combatant = (*Entity)(nil)
