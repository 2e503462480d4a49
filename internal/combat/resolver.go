// Package combat resolves melee swings between entities.
package combat

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/dungeoncrawl/internal/eventlog"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	// SwingFrames is the length of the swing animation.
	SwingFrames = 3
	// KillXP is awarded to the player for each kill.
	KillXP = 30

	hitRollSides  = 10
	missThreshold = 2 // Rolls at or below miss: 70% hit chance
	minDamage     = 5
	maxDamage     = 15 // Exclusive
)

var swings = telemetry.Counter("combat", "combat.swings", "Melee swings, labelled by outcome")

// Combatant is the capability set the resolver needs from an entity.
// Both the player and enemies implement it.
type Combatant interface {
	// Identity
	GetName() string
	IsPlayer() bool
	IsAlive() bool

	// State
	GetHP() int
	Position() world.Position

	// Mutations
	Face(d world.Direction)
	StartSwing(frames int)
	TakeHit(amount int) bool // Returns true when the hit was lethal
	GainXP(amount int)       // No-op for entities without experience
}

// Result contains the outcome of one swing.
type Result struct {
	Targeted bool // A target was within reach
	Hit      bool
	Damage   int
	Lethal   bool
}

// Resolver rolls hits and damage and applies them.
type Resolver struct {
	rng *rand.Rand
	log *eventlog.Log
}

// NewResolver creates a resolver that writes combat messages to log.
func NewResolver(rng *rand.Rand, log *eventlog.Log) *Resolver {
	return &Resolver{rng: rng, log: log}
}

// Swing starts the attacker's swing animation and, when target is not nil,
// faces it and rolls for a hit.
func (r *Resolver) Swing(ctx context.Context, attacker, target Combatant) Result {
	attacker.StartSwing(SwingFrames)
	if target == nil {
		swings.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "empty")))
		return Result{}
	}

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.swing")
	defer span.End()
	span.SetAttributes(
		attribute.String("attacker", attacker.GetName()),
		attribute.String("target", target.GetName()),
	)

	attacker.Face(world.Toward(attacker.Position(), target.Position()))

	result := Result{Targeted: true}
	if r.rng.Intn(hitRollSides) <= missThreshold {
		r.log.Add(eventlog.KindCombat, "Swinging at %s but missed", target.GetName())
		swings.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "miss")))
		span.SetAttributes(attribute.Bool("hit", false))
		return result
	}

	result.Hit = true
	result.Damage = minDamage + r.rng.Intn(maxDamage-minDamage)
	result.Lethal = target.TakeHit(result.Damage)
	r.log.Add(eventlog.KindCombat, "Swinging at %s, dealt %d damage, %s: %dHP",
		target.GetName(), result.Damage, target.GetName(), target.GetHP())

	if result.Lethal {
		r.logDeath(attacker, target)
		if attacker.IsPlayer() && !target.IsPlayer() {
			attacker.GainXP(KillXP)
		}
	}

	swings.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "hit")))
	span.SetAttributes(
		attribute.Bool("hit", true),
		attribute.Int("damage", result.Damage),
		attribute.Bool("lethal", result.Lethal),
	)
	return result
}

// logDeath records a lethal hit, worded for the player or an enemy.
func (r *Resolver) logDeath(attacker, victim Combatant) {
	switch {
	case victim.IsPlayer():
		r.log.Add(eventlog.KindDeath, "You died... %s got the better of you", attacker.GetName())
	case attacker.IsPlayer():
		r.log.Add(eventlog.KindDeath, "You killed the %s, you monster", victim.GetName())
	default:
		r.log.Add(eventlog.KindDeath, "The %s was killed by the %s", victim.GetName(), attacker.GetName())
	}
}
