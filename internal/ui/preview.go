package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/notemark/notemark/internal/markdown"
)

// PreviewView renders the selected note's markdown into the right pane. The
// transform itself is pure; this view owns only the scroll position.
type PreviewView struct {
	scrollOffset int
	lineCount    int
}

func NewPreviewView() *PreviewView {
	return &PreviewView{}
}

// ScrollDown moves the viewport down by step lines.
func (v *PreviewView) ScrollDown(step int) {
	v.scrollOffset += step
	if v.scrollOffset > v.lineCount {
		v.scrollOffset = v.lineCount
	}
}

// ScrollUp moves the viewport up by step lines.
func (v *PreviewView) ScrollUp(step int) {
	v.scrollOffset -= step
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// ResetScroll returns the viewport to the top, used when the selected note
// changes.
func (v *PreviewView) ResetScroll() {
	v.scrollOffset = 0
}

// Draw renders the note content through the markdown transform and paints the
// styled lines, with a scrollbar on the right edge.
func (v *PreviewView) Draw(s tcell.Screen, area Rect, focused bool, title, content string) {
	if area.W < 4 || area.H < 4 {
		return
	}

	titleStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorTitle).Bold(true)
	drawBorder(s, area, tcell.StyleDefault.Background(ColorBg).Foreground(ColorBorder), title, titleStyle)

	inner := Rect{X: area.X + 1, Y: area.Y + 1, W: area.W - 2, H: area.H - 2}

	text := markdown.Render(content, inner.W)
	lines := wrapLines(text.Lines, inner.W)
	v.lineCount = len(lines)
	if v.scrollOffset > v.lineCount {
		v.scrollOffset = v.lineCount
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}

	for i := 0; i < inner.H; i++ {
		idx := v.scrollOffset + i
		if idx >= len(lines) {
			break
		}
		line := lines[idx]
		x := inner.X
		for _, span := range line.Spans {
			style := line.SpanStyle(span).Tcell(ColorFg).Background(ColorBg)
			for _, r := range span.Text {
				w := runewidth.RuneWidth(r)
				if x+w > inner.X+inner.W {
					break
				}
				s.SetContent(x, inner.Y+i, r, nil, style)
				x += w
			}
		}
	}

	v.drawScrollbar(s, area)
}

// drawScrollbar paints a vertical scrollbar over the right border, with arrow
// end caps and a proportional thumb.
func (v *PreviewView) drawScrollbar(s tcell.Screen, area Rect) {
	trackX := area.X + area.W - 1
	trackTop := area.Y + 1
	trackHeight := area.H - 2
	if trackHeight < 2 || v.lineCount <= area.H-2 {
		return
	}

	style := tcell.StyleDefault.Background(ColorBg).Foreground(ColorBorder)
	s.SetContent(trackX, trackTop, '↑', nil, style)
	s.SetContent(trackX, trackTop+trackHeight-1, '↓', nil, style)

	barHeight := trackHeight - 2
	if barHeight <= 0 {
		return
	}
	thumb := trackTop + 1 + (v.scrollOffset*(barHeight-1))/v.lineCount
	thumbStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorBright)
	s.SetContent(trackX, thumb, '█', nil, thumbStyle)
}

// wrapLines wraps every rendered line to the viewport width, splitting spans
// at cell boundaries so styles survive the wrap.
func wrapLines(lines []markdown.Line, width int) []markdown.Line {
	if width <= 0 {
		return lines
	}
	var out []markdown.Line
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line markdown.Line, width int) []markdown.Line {
	var wrapped []markdown.Line
	current := markdown.Line{Style: line.Style}
	col := 0

	flush := func() {
		wrapped = append(wrapped, current)
		current = markdown.Line{Style: line.Style}
		col = 0
	}

	for _, span := range line.Spans {
		var chunk []rune
		for _, r := range span.Text {
			w := runewidth.RuneWidth(r)
			if col+w > width {
				if len(chunk) > 0 {
					current.Spans = append(current.Spans, markdown.Span{Text: string(chunk), Style: span.Style})
					chunk = chunk[:0]
				}
				flush()
			}
			chunk = append(chunk, r)
			col += w
		}
		if len(chunk) > 0 {
			current.Spans = append(current.Spans, markdown.Span{Text: string(chunk), Style: span.Style})
		}
	}
	wrapped = append(wrapped, current)
	return wrapped
}
