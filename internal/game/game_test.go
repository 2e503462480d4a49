package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestHandleEvent(t *testing.T) {
	s := newTestSession(t, openRoom, world.Position{X: 3, Y: 3})
	g := &Game{session: s, logger: logr.Discard(), running: true}
	ctx := context.Background()

	g.handleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if s.Player().Pos != (world.Position{X: 4, Y: 3}) {
		t.Errorf("player at %v, want (4,3)", s.Player().Pos)
	}

	g.handleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if !g.running {
		t.Fatal("unbound key stopped the game")
	}

	g.handleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if g.running {
		t.Error("q did not stop the game")
	}
}

func TestCloseWithoutScreen(t *testing.T) {
	g := &Game{}
	g.Close()
}
