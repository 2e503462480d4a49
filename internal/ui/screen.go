// Package ui provides terminal rendering using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s and wraps it.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event. It returns nil
// once the screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// ContentAt returns the rune and style in the back buffer at x, y.
func (s *Screen) ContentAt(x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.screen.GetContent(x, y)
	return r, style
}

// DrawString writes text starting at x, y, clipped to maxWidth columns.
// It returns the number of columns used.
func (s *Screen) DrawString(x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	text = runewidth.Truncate(text, maxWidth, "…")
	col := 0
	for _, ch := range text {
		s.screen.SetContent(x+col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}

// DrawBox draws a rounded border around the rectangle with a title on the
// top edge.
func (s *Screen) DrawBox(x, y, width, height int, title string, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		s.SetContent(col, y, '─', style)
		s.SetContent(col, bottom, '─', style)
	}
	for row := y + 1; row < bottom; row++ {
		s.SetContent(x, row, '│', style)
		s.SetContent(right, row, '│', style)
	}
	s.SetContent(x, y, '╭', style)
	s.SetContent(right, y, '╮', style)
	s.SetContent(x, bottom, '╰', style)
	s.SetContent(right, bottom, '╯', style)
	if title != "" {
		s.DrawString(x+2, y, width-4, title, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
