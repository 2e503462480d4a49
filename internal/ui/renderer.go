package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/eventlog"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	// PanelHeight is the height of the console and player panels drawn
	// below the map.
	PanelHeight = 7
	// ConsoleLines is the number of log entries shown.
	ConsoleLines = 5
	// XPGoal is the experience shown as the player's target.
	XPGoal = 100
)

// Scene is the read-only view of a game the renderer draws.
type Scene interface {
	Dungeon() *world.Dungeon
	Player() *entity.Entity
	Enemies() []*entity.Entity
	Log() *eventlog.Log
	Visibility(p world.Position) world.Visibility
	GameOver() bool
}

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the entities and both panels.
func (r *Renderer) Render(scene Scene) {
	r.screen.Clear()

	dungeon := scene.Dungeon()
	r.drawMap(scene, dungeon)
	r.drawEntities(scene)
	r.drawConsole(scene.Log(), 0, dungeon.Height, dungeon.Width*7/10)
	r.drawPlayerPanel(scene, dungeon.Width*7/10, dungeon.Height, dungeon.Width-dungeon.Width*7/10)

	r.screen.Show()
}

// drawMap draws every cell according to what the player knows about it.
func (r *Renderer) drawMap(scene Scene, dungeon *world.Dungeon) {
	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			p := world.Position{X: x, Y: y}
			glyph := dungeon.Glyph(p)
			switch scene.Visibility(p) {
			case world.Visible:
				r.screen.SetContent(x, y, glyph.Rune(), glyphStyle(glyph))
			case world.Remembered:
				if glyph != world.GlyphFloor {
					r.screen.SetContent(x, y, glyph.Rune(), styleDim)
				}
			}
		}
	}
}

// drawEntities draws visible enemies, swing arcs and the player on top.
func (r *Renderer) drawEntities(scene Scene) {
	player := scene.Player()
	for _, e := range scene.Enemies() {
		if !e.IsAlive() || scene.Visibility(e.Pos) != world.Visible {
			continue
		}
		r.screen.SetContent(e.Pos.X, e.Pos.Y, e.Symbol, entityStyle(e))
		r.drawSwing(scene, e)
	}
	r.drawSwing(scene, player)

	style := entityStyle(player)
	if !player.IsAlive() {
		style = styleDead
	}
	r.screen.SetContent(player.Pos.X, player.Pos.Y, player.Symbol, style)
}

// drawSwing overlays the current frame of e's swing arc. A diagonal facing
// swings along the x axis.
func (r *Renderer) drawSwing(scene Scene, e *entity.Entity) {
	if !e.Animating() {
		return
	}
	for offset := -1; offset <= 1; offset++ {
		p := world.Position{X: e.Pos.X + offset, Y: e.Pos.Y + e.Facing.DY}
		if e.Facing.DX != 0 {
			p = world.Position{X: e.Pos.X + e.Facing.DX, Y: e.Pos.Y + offset}
		}
		if scene.Visibility(p) != world.Visible {
			continue
		}
		if ch, ok := swingCell(e.Pos, e.Facing, e.AnimFrames, p); ok {
			r.screen.SetContent(p.X, p.Y, ch, entityStyle(e))
		}
	}
}

// drawConsole draws the last log entries with their sequence numbers.
func (r *Renderer) drawConsole(log *eventlog.Log, x, y, width int) {
	r.screen.DrawBox(x, y, width, PanelHeight, "Console", styleBorder)
	for i, entry := range log.Tail(ConsoleLines) {
		row := y + 1 + i
		used := r.screen.DrawString(x+1, row, width-2, fmt.Sprintf("%d ", entry.Seq), styleDim)
		r.screen.DrawString(x+1+used, row, width-2-used, entry.Text, kindStyle(entry.Kind))
	}
}

// drawPlayerPanel draws the player's name, health and experience.
func (r *Renderer) drawPlayerPanel(scene Scene, x, y, width int) {
	player := scene.Player()
	inner := width - 2
	r.screen.DrawBox(x, y, width, PanelHeight, "Player", styleBorder)

	used := r.screen.DrawString(x+1, y+1, inner, "Name: ", styleText)
	r.screen.DrawString(x+1+used, y+1, inner-used, player.Name, entityStyle(player))
	r.screen.DrawString(x+1, y+2, inner, fmt.Sprintf("Hp: %d", player.HP), styleText)
	r.screen.DrawString(x+1, y+3, inner, fmt.Sprintf("Xp: %d / %d", player.XP, XPGoal), styleText)
	if scene.GameOver() {
		r.screen.DrawString(x+1, y+5, inner, "You are dead. Press q.", styleDead)
	}
}

// glyphStyle returns the style for a visible glyph.
func glyphStyle(g world.Glyph) tcell.Style {
	switch {
	case g == world.GlyphItem:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case g == world.GlyphFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case g.IsWall():
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return tcell.StyleDefault
	}
}

func entityStyle(e *entity.Entity) tcell.Style {
	style := tcell.StyleDefault.Foreground(e.Color())
	if e.IsPlayer() {
		style = style.Bold(true)
	}
	return style
}

func kindStyle(k eventlog.Kind) tcell.Style {
	switch k {
	case eventlog.KindCombat:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case eventlog.KindDeath:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case eventlog.KindCollision, eventlog.KindMovement:
		return styleDim
	default:
		return styleText
	}
}
