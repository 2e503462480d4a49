package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/eventlog"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Session is the simulation context: the dungeon, the entities on it and the
// event log. Every operation goes through it and it must only be used from
// one goroutine at a time.
type Session struct {
	seed     int64
	dungeon  *world.Dungeon
	player   *entity.Entity
	enemies  []*entity.Entity
	log      *eventlog.Log
	memory   *world.Memory
	resolver *combat.Resolver
	rng      *rand.Rand
	logger   logr.Logger
}

// NewSession generates a dungeon and populates it: the player at the map
// centre and enemies scattered over the floor.
func NewSession(ctx context.Context, cfg Config, registry *gamedata.Registry, logger logr.Logger) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dungeon := world.NewDungeon(cfg.Width, cfg.Height, rng)
	dungeon.MaxAttempts = cfg.MaxGenerationAttempts
	dungeon.MaxItemsPerRoom = cfg.MaxItemsPerRoom
	dungeon.Logger = logger.WithName("world")
	if err := dungeon.Generate(ctx); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}

	start := dungeon.Center()
	player := entity.NewPlayer(&registry.Player, start)
	enemies := entity.SpawnEnemies(dungeon.Cells, registry, rng, registry.SpawnChance, start)

	s := newSession(dungeon, player, enemies, rng, logger)
	s.seed = seed
	s.log.Add(eventlog.KindSystem, "Welcome, %s. Arrows or WASD move, space attacks, q quits.", player.Name)

	logger.Info("session started", "seed", seed, "attempts", dungeon.Attempts,
		"enemies", len(enemies), "kinds", registry.Count(), "player", player.ID.String())
	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(dungeon.Rooms)),
		attribute.Int("dungeon.attempts", dungeon.Attempts),
		attribute.Int("game.enemies", len(enemies)),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)
	return s, nil
}

// newSession wires a session around an existing dungeon and entities.
func newSession(d *world.Dungeon, player *entity.Entity, enemies []*entity.Entity, rng *rand.Rand, logger logr.Logger) *Session {
	log := eventlog.New()
	s := &Session{
		dungeon:  d,
		player:   player,
		enemies:  enemies,
		log:      log,
		memory:   world.NewMemory(d.Width, d.Height),
		resolver: combat.NewResolver(rng, log),
		rng:      rng,
		logger:   logger,
	}
	s.memory.Reveal(player.Pos, player.ViewDistance)
	return s
}

// Seed returns the seed the session was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Dungeon returns the generated map. It is read-only after generation.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// Player returns the player entity.
func (s *Session) Player() *entity.Entity { return s.player }

// Enemies returns the living enemies. The slice must not be modified.
func (s *Session) Enemies() []*entity.Entity { return s.enemies }

// Log returns the event log.
func (s *Session) Log() *eventlog.Log { return s.log }

// State returns the current game state.
func (s *Session) State() State {
	if !s.player.IsAlive() {
		return StateDead
	}
	return StateExplore
}

// GameOver reports whether the player has died.
func (s *Session) GameOver() bool {
	return s.State() == StateDead
}

// Visibility reports whether p is in the player's sight, remembered from an
// earlier sighting, or unknown.
func (s *Session) Visibility(p world.Position) world.Visibility {
	switch {
	case world.InSight(s.player.Pos, p, s.player.ViewDistance):
		return world.Visible
	case s.memory.Seen(p):
		return world.Remembered
	default:
		return world.Hidden
	}
}

// TickAnimation advances every swing animation by one frame and reports
// whether a redraw is needed.
func (s *Session) TickAnimation() bool {
	changed := s.player.TickAnimation()
	for _, e := range s.enemies {
		if e.TickAnimation() {
			changed = true
		}
	}
	return changed
}

// prune removes dead enemies from the session.
func (s *Session) prune() {
	alive := make([]*entity.Entity, 0, len(s.enemies))
	for _, e := range s.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
			continue
		}
		s.logger.V(1).Info("enemy removed", "id", e.ID.String(), "name", e.Name)
	}
	s.enemies = alive
}

var _ ui.Scene = (*Session)(nil)
