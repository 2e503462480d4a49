package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Intent is a discrete player input.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentAttack
	IntentQuit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "move_up"
	case IntentMoveDown:
		return "move_down"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentAttack:
		return "attack"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction returns the step for a movement intent.
func (i Intent) Direction() (world.Direction, bool) {
	switch i {
	case IntentMoveUp:
		return world.Up, true
	case IntentMoveDown:
		return world.Down, true
	case IntentMoveLeft:
		return world.Left, true
	case IntentMoveRight:
		return world.Right, true
	default:
		return world.None, false
	}
}

// keyToIntent translates a key press.
func keyToIntent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyRight:
		return IntentMoveRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return IntentQuit
		case 'w', 'W':
			return IntentMoveUp
		case 's', 'S':
			return IntentMoveDown
		case 'a', 'A':
			return IntentMoveLeft
		case 'd', 'D':
			return IntentMoveRight
		case ' ':
			return IntentAttack
		}
	}
	return IntentNone
}

// HandleIntent fully resolves one input and reports whether the player asked
// to quit. Input other than quit is ignored while the player is mid-swing
// or dead.
func (s *Session) HandleIntent(ctx context.Context, intent Intent) (quit bool) {
	if intent == IntentQuit {
		return true
	}
	if s.player.Animating() || !s.player.IsAlive() {
		return false
	}

	if step, ok := intent.Direction(); ok {
		s.tryMove(step)
	} else if intent == IntentAttack {
		s.attack(ctx)
	}

	s.prune()
	return false
}

// tryMove steps the player if the target cell is free. The player turns
// toward the target either way.
func (s *Session) tryMove(step world.Direction) {
	target := s.player.Pos.Add(step)
	if s.IsMoveValid(target) {
		s.player.Move(target)
		s.memory.Reveal(s.player.Pos, s.player.ViewDistance)
	}
	s.player.Turn(target)
}

// attack swings at the first enemy in reach, or at the air.
func (s *Session) attack(ctx context.Context) {
	var target combat.Combatant
	if e := s.enemyInReach(); e != nil {
		target = e
	}
	s.resolver.Swing(ctx, s.player, target)
}
