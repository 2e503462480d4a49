package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 40

	// DefaultMaxAttempts bounds the regenerate-on-failure loop.
	DefaultMaxAttempts = 10000

	// Walk parameters
	walkMoves     = 6
	verticalMin   = 5 // Vertical corridors are shorter: terminal cells are tall
	verticalMax   = 8
	horizontalMin = 9
	horizontalMax = 16
	roomWidthMin  = 5
	roomWidthMax  = 9
	roomHeightMin = 3
	roomHeightMax = 6

	// Smallest map that can hold one corridor plus room in every direction
	// from the centre.
	MinWidth  = 2*(horizontalMax+roomWidthMax) + 2
	MinHeight = 2*(verticalMax+roomHeightMax) + 2
)

var generationAttempts = telemetry.Counter("world", "dungeon.generation.attempts",
	"Dungeon carving attempts, labelled by result")

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Cells  *Grid      // Authoritative cell markers
	Glyphs *GlyphGrid // Classified walls, computed once per generation
	Rooms  []Room

	// Attempts is the number of carving attempts the last Generate needed.
	Attempts int
	// MaxAttempts caps the retry loop; zero means unbounded.
	MaxAttempts uint
	// MaxItemsPerRoom is the exclusive upper bound of items placed in each
	// room. Values below 2 disable item placement.
	MaxItemsPerRoom int

	Logger logr.Logger
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cells := NewGrid(width, height, CellWall)
	return &Dungeon{
		Width:           width,
		Height:          height,
		Cells:           cells,
		Glyphs:          Classify(cells),
		MaxAttempts:     DefaultMaxAttempts,
		MaxItemsPerRoom: DefaultMaxItemsPerRoom,
		Logger:          logr.Discard(),
		rng:             rng,
	}
}

// FromGrid wraps an existing grid in a dungeon and classifies it. The grid
// is used as is: no validation and no item placement.
func FromGrid(cells *Grid) *Dungeon {
	return &Dungeon{
		Width:  cells.Width,
		Height: cells.Height,
		Cells:  cells,
		Glyphs: Classify(cells),
		Logger: logr.Discard(),
	}
}

// Generate carves a new layout, retrying from scratch until the result has a
// closed border. The dungeon only changes when Generate succeeds.
func (d *Dungeon) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if d.Width < MinWidth || d.Height < MinHeight {
		err := fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, d.Width, d.Height, MinWidth, MinHeight)
		span.RecordError(err)
		span.SetStatus(codes.Error, "dimensions too small")
		return err
	}

	attempts := 0
	operation := func() (carved, error) {
		attempts++
		result, err := d.carve()
		generationAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", attemptResult(err))))
		return result, err
	}
	notify := func(err error, _ time.Duration) {
		d.Logger.V(1).Info("regenerating dungeon", "attempt", attempts, "reason", err.Error())
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(d.MaxAttempts),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)
	span.SetAttributes(attribute.Int("dungeon.attempts", attempts))
	if err != nil {
		if ctx.Err() == nil {
			err = fmt.Errorf("%w after %d attempts: %w", ErrGenerationExhausted, attempts, err)
		}
		d.Logger.Error(err, "dungeon generation failed", "attempts", attempts)
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return err
	}

	d.Cells = result.cells
	d.Rooms = result.rooms
	d.Attempts = attempts
	d.placeItems()
	d.Glyphs = Classify(d.Cells)

	d.Logger.V(1).Info("dungeon generated", "attempts", attempts, "rooms", len(d.Rooms))

	// Record telemetry
	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.items", d.Cells.Count(CellItem)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// Center returns the walk origin and player start position.
func (d *Dungeon) Center() Position {
	return Position{X: d.Width / 2, Y: d.Height / 2}
}

// IsPassable returns true if the given position can be walked on. Positions
// outside the map are never passable.
func (d *Dungeon) IsPassable(p Position) bool {
	c, ok := d.Cells.At(p)
	return ok && c.IsPassable()
}

// Cell returns the cell at p, or false outside the map.
func (d *Dungeon) Cell(p Position) (Cell, bool) {
	return d.Cells.At(p)
}

// Glyph returns the classified glyph at p.
func (d *Dungeon) Glyph(p Position) Glyph {
	return d.Glyphs.At(p)
}

// carved is the successful result of one carving attempt.
type carved struct {
	cells *Grid
	rooms []Room
}

// carve runs one full generation attempt on a fresh grid. A failed attempt
// returns ErrOutOfBounds or ErrOpenBorder and its grid is discarded.
func (d *Dungeon) carve() (carved, error) {
	c := &carver{
		grid: NewGrid(d.Width, d.Height, CellWall),
		rng:  d.rng,
	}
	center := d.Center()
	if err := c.grid.Set(center, CellFloor); err != nil {
		return carved{}, err
	}

	for _, start := range Cardinals {
		if err := c.walk(center, start); err != nil {
			return carved{}, err
		}
	}

	if !c.grid.BorderClosed() {
		return carved{}, ErrOpenBorder
	}
	return carved{cells: c.grid, rooms: c.rooms}, nil
}

// attemptResult names the outcome of a carving attempt for metrics.
func attemptResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrOpenBorder):
		return "open_border"
	default:
		return "error"
	}
}

// carver holds the canvas shared by the four walks of one attempt.
type carver struct {
	grid  *Grid
	rng   *rand.Rand
	rooms []Room
}

// walk alternates corridors and rooms starting at pos. The first corridor
// heads in the start direction, every later one turns onto the other axis.
func (c *carver) walk(pos Position, heading Direction) error {
	var err error
	for move := 0; move < walkMoves; move++ {
		if move > 0 {
			heading = c.turn(heading)
		}
		if pos, err = c.corridor(pos, heading); err != nil {
			return err
		}
		if err = c.room(pos); err != nil {
			return err
		}
	}
	return nil
}

// turn picks one of the two headings perpendicular to prev.
func (c *carver) turn(prev Direction) Direction {
	if prev.IsVertical() {
		if c.rng.Intn(2) == 0 {
			return Left
		}
		return Right
	}
	if c.rng.Intn(2) == 0 {
		return Up
	}
	return Down
}

// corridor carves a straight run of floor and returns its end.
func (c *carver) corridor(pos Position, heading Direction) (Position, error) {
	length := c.between(horizontalMin, horizontalMax)
	if heading.IsVertical() {
		length = c.between(verticalMin, verticalMax)
	}
	for i := 0; i < length; i++ {
		pos = pos.Add(heading)
		if err := c.grid.Set(pos, CellFloor); err != nil {
			return pos, err
		}
	}
	return pos, nil
}

// room carves a rectangle that contains pos.
func (c *carver) room(pos Position) error {
	width := c.between(roomWidthMin, roomWidthMax)
	height := c.between(roomHeightMin, roomHeightMax)
	room := Room{
		X:      pos.X - c.between(1, width-2),
		Y:      pos.Y - c.between(1, height-2),
		Width:  width,
		Height: height,
	}
	for _, p := range room.Positions() {
		if err := c.grid.Set(p, CellFloor); err != nil {
			return err
		}
	}
	c.rooms = append(c.rooms, room)
	return nil
}

// between returns a uniform integer in [lo, hi].
func (c *carver) between(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}
