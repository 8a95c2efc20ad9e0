package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawBorder draws a rounded border around the area with an optional centered
// title on the top edge.
func drawBorder(s tcell.Screen, area Rect, style tcell.Style, title string, titleStyle tcell.Style) {
	if area.W < 2 || area.H < 2 {
		return
	}

	right := area.X + area.W - 1
	bottom := area.Y + area.H - 1

	s.SetContent(area.X, area.Y, '╭', nil, style)
	s.SetContent(right, area.Y, '╮', nil, style)
	s.SetContent(area.X, bottom, '╰', nil, style)
	s.SetContent(right, bottom, '╯', nil, style)

	for x := area.X + 1; x < right; x++ {
		s.SetContent(x, area.Y, '─', nil, style)
		s.SetContent(x, bottom, '─', nil, style)
	}
	for y := area.Y + 1; y < bottom; y++ {
		s.SetContent(area.X, y, '│', nil, style)
		s.SetContent(right, y, '│', nil, style)
	}

	if title == "" {
		return
	}

	maxTitle := area.W - 4
	if maxTitle < 1 {
		return
	}
	title = runewidth.Truncate(title, maxTitle, "…")
	titleX := area.X + (area.W-runewidth.StringWidth(title))/2
	if titleX < area.X+1 {
		titleX = area.X + 1
	}
	drawText(s, titleX, area.Y, titleStyle, title)
}
