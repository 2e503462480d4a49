package game

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/eventlog"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// IsMoveValid reports whether an entity may step onto p. The same rules
// apply to the player and to enemies: p must be floor, free of living
// enemies and not the player's cell. Callers never pass the mover's own
// cell. Every rejection is logged.
func (s *Session) IsMoveValid(p world.Position) bool {
	if !s.dungeon.IsPassable(p) {
		name := "the void"
		if c, ok := s.dungeon.Cell(p); ok {
			name = c.String()
		}
		s.log.Add(eventlog.KindCollision, "Collided with %q", name)
		return false
	}

	if e := s.enemyAt(p); e != nil {
		s.log.Add(eventlog.KindCollision, "Collided with %q", e.Name)
		return false
	}

	if s.player.Pos == p {
		s.log.Add(eventlog.KindCollision, "Collided with %q", "Player")
		return false
	}

	return true
}

// enemyAt returns the living enemy standing on p, or nil.
func (s *Session) enemyAt(p world.Position) *entity.Entity {
	for _, e := range s.enemies {
		if e.IsAlive() && e.Pos == p {
			return e
		}
	}
	return nil
}

// enemyInReach returns the first living enemy within one cell of the player,
// diagonals included, or nil.
func (s *Session) enemyInReach() *entity.Entity {
	for _, e := range s.enemies {
		if e.IsAlive() && e.Pos.Distance(s.player.Pos) <= 1 {
			return e
		}
	}
	return nil
}
