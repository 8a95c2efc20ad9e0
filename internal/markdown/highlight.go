package markdown

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// LineHighlighter colors a single line of code-block text.
type LineHighlighter interface {
	HighlightLine(line string) []Span
}

// The chroma theme is process-wide, built once, and never mutated after
// first use. The lexer registry chroma maintains has the same lifetime.
var (
	chromaTheme     *chroma.Style
	chromaThemeOnce sync.Once
)

func codeTheme() *chroma.Style {
	chromaThemeOnce.Do(func() {
		chromaTheme = styles.Get("catppuccin-macchiato")
		if chromaTheme == nil {
			chromaTheme = styles.Fallback
		}
	})
	return chromaTheme
}

type chromaHighlighter struct {
	lexer chroma.Lexer
	theme *chroma.Style
}

// NewChromaHighlighter binds a highlighter for the given language token,
// or returns nil when no lexer matches it.
func NewChromaHighlighter(lang string) LineHighlighter {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil
	}
	return &chromaHighlighter{lexer: chroma.Coalesce(lexer), theme: codeTheme()}
}

func (h *chromaHighlighter) HighlightLine(line string) []Span {
	it, err := h.lexer.Tokenise(nil, line+"\n")
	if err != nil {
		return []Span{{Text: line}}
	}
	var spans []Span
	for token := it(); token != chroma.EOF; token = it() {
		value := strings.TrimSuffix(token.Value, "\n")
		if value == "" {
			continue
		}
		spans = append(spans, Span{Text: value, Style: tokenStyle(h.theme, token.Type)})
	}
	return spans
}

func tokenStyle(theme *chroma.Style, t chroma.TokenType) Style {
	entry := theme.Get(t)
	var s Style
	if entry.Colour.IsSet() {
		s.FG = tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		)
	}
	if entry.Bold == chroma.Yes {
		s.Bold = true
	}
	if entry.Italic == chroma.Yes {
		s.Italic = true
	}
	if entry.Underline == chroma.Yes {
		s.Underline = true
	}
	return s
}
