package markdown

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style describes the appearance of a span of text. The zero value inherits
// everything from its surroundings: no foreground color and no modifiers.
type Style struct {
	FG            tcell.Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Patch overlays other's explicit attributes onto s. Attributes other leaves
// unset are inherited from s.
func (s Style) Patch(other Style) Style {
	if other.FG != tcell.ColorDefault {
		s.FG = other.FG
	}
	if other.Bold {
		s.Bold = true
	}
	if other.Italic {
		s.Italic = true
	}
	if other.Underline {
		s.Underline = true
	}
	if other.Strikethrough {
		s.Strikethrough = true
	}
	return s
}

// Tcell converts the style for painting. fallback supplies the foreground
// used when the style leaves it unset.
func (s Style) Tcell(fallback tcell.Color) tcell.Style {
	fg := s.FG
	if fg == tcell.ColorDefault {
		fg = fallback
	}
	return tcell.StyleDefault.
		Foreground(fg).
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline).
		StrikeThrough(s.Strikethrough)
}

// Span is a run of text with a single style. Spans are never mutated after
// creation.
type Span struct {
	Text  string
	Style Style
}

// Line is an ordered sequence of spans plus an optional line-level style
// patched under every span at paint time.
type Line struct {
	Spans []Span
	Style Style
}

// SpanStyle returns the effective style of a span on this line.
func (l Line) SpanStyle(s Span) Style {
	return l.Style.Patch(s.Style)
}

// String returns the line's text without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Text is the output of a transform: an ordered sequence of styled lines.
type Text struct {
	Lines []Line
}

// LineCount reports the number of lines, used for scrollbar sizing.
func (t Text) LineCount() int {
	return len(t.Lines)
}

// String returns the full text without styling, one line per row.
func (t Text) String() string {
	lines := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = l.String()
	}
	return strings.Join(lines, "\n")
}
