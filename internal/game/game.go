package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Game drives a session on a terminal screen. Run owns every mutation of the
// session: terminal events and both timers are funnelled into one loop.
type Game struct {
	id       uuid.UUID
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cfg      Config
	logger   logr.Logger
	running  bool
}

// New generates the session and then takes over the terminal.
func New(ctx context.Context, cfg Config, registry *gamedata.Registry, logger logr.Logger) (*Game, error) {
	id := uuid.New()
	logger = logger.WithValues("game", id.String())

	session, err := NewSession(ctx, cfg, registry, logger)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		id:       id,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		cfg:      cfg,
		logger:   logger,
		running:  true,
	}, nil
}

// Session returns the game's simulation state.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop until the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()
	defer g.Close()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(g.screen, events, done)

	aiTicker := time.NewTicker(g.cfg.AITick)
	defer aiTicker.Stop()
	animTicker := time.NewTicker(g.cfg.AnimFrame)
	defer animTicker.Stop()

	g.renderer.Render(g.session)
	for g.running {
		select {
		case <-ctx.Done():
			g.logger.Info("game cancelled", "reason", ctx.Err().Error())
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ctx, ev)

		case <-aiTicker.C:
			if g.session.GameOver() {
				continue
			}
			g.session.TickAI(ctx)

		case <-animTicker.C:
			if !g.session.TickAnimation() {
				continue
			}
		}
		g.renderer.Render(g.session)
	}

	g.logger.Info("game ended", "state", g.session.State().String(),
		"xp", g.session.Player().XP, "events", g.session.Log().Len())
	return nil
}

// pollEvents forwards terminal events until the screen is finalized or done
// is closed.
func pollEvents(screen *ui.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := keyToIntent(ev)
		if intent == IntentNone {
			return
		}
		g.logger.V(2).Info("input", "intent", intent.String())
		if g.session.HandleIntent(ctx, intent) {
			g.running = false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
