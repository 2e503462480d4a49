package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/eventlog"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// DetectionRadius is the Chebyshev distance below which enemies chase the
// player.
const DetectionRadius = 10

var aiMoves = telemetry.Counter("game", "ai.moves", "Enemy moves made by the chase AI")

// TickAI gives every living enemy one chance to step toward the player and
// returns the number of enemies that moved.
func (s *Session) TickAI(ctx context.Context) int {
	tracer := telemetry.Tracer("ai")
	ctx, span := tracer.Start(ctx, "ai.tick")
	defer span.End()

	moved := 0
	for _, e := range s.enemies {
		if !e.IsAlive() {
			continue
		}
		target, ok := s.chaseStep(e)
		if !ok || !s.IsMoveValid(target) {
			continue
		}
		e.Move(target)
		s.log.Add(eventlog.KindMovement, "%s near player, moving to (%d, %d)", e.Name, target.X, target.Y)
		moved++
	}
	s.prune()

	aiMoves.Add(ctx, int64(moved))
	span.SetAttributes(
		attribute.Int("ai.enemies", len(s.enemies)),
		attribute.Int("ai.moved", moved),
	)
	return moved
}

// chaseStep proposes one axis-aligned step from e toward the player. It
// reports false when the player is out of detection range. When the player
// is off both axes a coin flip picks the horizontal or the vertical step.
func (s *Session) chaseStep(e *entity.Entity) (world.Position, bool) {
	if e.Pos.Distance(s.player.Pos) >= DetectionRadius {
		return world.Position{}, false
	}
	step := world.Toward(e.Pos, s.player.Pos)
	if step == world.None {
		return world.Position{}, false
	}
	if step.DX != 0 && step.DY != 0 {
		if s.rng.Intn(2) == 0 {
			step.DY = 0
		} else {
			step.DX = 0
		}
	}
	return e.Pos.Add(step), true
}
