package markdown

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/notemark/notemark/internal/theme"
)

func intp(n int) *int {
	v := n
	return &v
}

func start(tag Tag) Event { return Event{Kind: EventStart, Tag: tag} }
func end(tag Tag) Event   { return Event{Kind: EventEnd, Tag: tag} }
func textEv(s string) Event {
	return Event{Kind: EventText, Text: s}
}

// noHighlight refuses every language so tests stay independent of the
// chroma lexer registry.
func noHighlight(lang string) LineHighlighter { return nil }

func TestStyleComposition(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagParagraph}),
		start(Tag{Kind: TagStrong}),
		start(Tag{Kind: TagEmphasis}),
		textEv("x"),
		end(Tag{Kind: TagEmphasis}),
		textEv("y"),
		end(Tag{Kind: TagStrong}),
		end(Tag{Kind: TagParagraph}),
	}

	text := NewWriter(80, noHighlight).Run(events)
	if len(text.Lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(text.Lines))
	}
	spans := text.Lines[0].Spans
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}
	if !spans[0].Style.Bold || !spans[0].Style.Italic {
		t.Errorf("Inner span should be bold and italic, got %+v", spans[0].Style)
	}
	if !spans[1].Style.Bold {
		t.Errorf("Outer span should stay bold, got %+v", spans[1].Style)
	}
	if spans[1].Style.Italic {
		t.Errorf("Closing emphasis should remove italic, got %+v", spans[1].Style)
	}
}

func TestBlockquoteKinds(t *testing.T) {
	tests := []struct {
		name   string
		kind   QuoteKind
		prefix string
		color  tcell.Color
	}{
		{"plain", QuotePlain, "▌ ", theme.Green},
		{"note", QuoteNote, "▌✎ ", theme.Teal},
		{"tip", QuoteTip, "▌✎ ", theme.Teal},
		{"warning", QuoteWarning, "▌⚠ ", theme.Peach},
		{"caution", QuoteCaution, "▌✖ ", theme.Maroon},
		{"important", QuoteImportant, "▌🔥 ", theme.Peach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []Event{
				start(Tag{Kind: TagBlockQuote, Quote: tt.kind}),
				start(Tag{Kind: TagParagraph}),
				textEv("hi"),
				end(Tag{Kind: TagParagraph}),
				end(Tag{Kind: TagBlockQuote}),
			}
			text := NewWriter(80, noHighlight).Run(events)
			if len(text.Lines) != 1 {
				t.Fatalf("Expected 1 line, got %d", len(text.Lines))
			}
			line := text.Lines[0]
			if line.Spans[0].Text != tt.prefix {
				t.Errorf("Expected prefix %q, got %q", tt.prefix, line.Spans[0].Text)
			}
			if line.Style.FG != tt.color {
				t.Errorf("Expected line color %v, got %v", tt.color, line.Style.FG)
			}
			if got := line.String(); got != tt.prefix+" hi" {
				t.Errorf("Expected %q, got %q", tt.prefix+" hi", got)
			}
		})
	}
}

func TestOrderedListCounting(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagList, ListStart: intp(3)}),
	}
	for i := 0; i < 3; i++ {
		events = append(events,
			start(Tag{Kind: TagItem}),
			textEv("item"),
			end(Tag{Kind: TagItem}),
		)
	}
	events = append(events, end(Tag{Kind: TagList}))

	text := NewWriter(80, noHighlight).Run(events)
	expected := []string{"3. item", "4. item", "5. item"}
	if len(text.Lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(text.Lines))
	}
	for i, want := range expected {
		if got := text.Lines[i].String(); got != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, got)
		}
	}
	if fg := text.Lines[0].Spans[0].Style.FG; fg != theme.Sapphire {
		t.Errorf("Index marker should use the index style, got fg %v", fg)
	}
}

func TestNestedListMarkers(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagList}),
		start(Tag{Kind: TagItem}),
		textEv("outer"),
		start(Tag{Kind: TagList}),
		start(Tag{Kind: TagItem}),
		textEv("inner"),
		end(Tag{Kind: TagItem}),
		end(Tag{Kind: TagList}),
		end(Tag{Kind: TagItem}),
		end(Tag{Kind: TagList}),
	}

	text := NewWriter(80, noHighlight).Run(events)
	if len(text.Lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(text.Lines))
	}
	if got := text.Lines[0].String(); got != "■ outer" {
		t.Errorf("Depth 1: expected %q, got %q", "■ outer", got)
	}
	// Depth 2: indentation width 4*2-3 = 5, glyph preceded by 4 spaces.
	if got := text.Lines[1].String(); got != "    ‣  inner" {
		t.Errorf("Depth 2: expected %q, got %q", "    ‣  inner", got)
	}
}

func TestRuleWidth(t *testing.T) {
	text := NewWriter(10, noHighlight).Run([]Event{{Kind: EventRule}})
	if len(text.Lines) != 1 {
		t.Fatalf("Expected exactly 1 line, got %d", len(text.Lines))
	}
	if got := text.Lines[0].String(); got != strings.Repeat("─", 8) {
		t.Errorf("Expected 8 rule glyphs, got %q", got)
	}
}

func TestNarrowViewportDoesNotPanic(t *testing.T) {
	events := []Event{
		{Kind: EventRule},
		start(Tag{Kind: TagCodeBlock, Fenced: true, Language: "go"}),
		textEv("a\n"),
		end(Tag{Kind: TagCodeBlock, Fenced: true}),
	}
	for _, width := range []int{0, 1, 2, 5} {
		text := NewWriter(width, noHighlight).Run(events)
		if text.LineCount() == 0 {
			t.Errorf("Width %d: expected output lines", width)
		}
	}
}

func TestCodeBlockPlain(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagCodeBlock, Fenced: true, Language: "xyz123"}),
		textEv("a\n"),
		end(Tag{Kind: TagCodeBlock, Fenced: true}),
	}

	text := NewWriter(10, noHighlight).Run(events)
	if len(text.Lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(text.Lines))
	}
	if got := text.Lines[0].String(); got != "╒══ xyz123 " {
		t.Errorf("Top border: got %q", got)
	}
	if got := text.Lines[1].String(); got != "│ a" {
		t.Errorf("Body: expected %q, got %q", "│ a", got)
	}
	if got := text.Lines[2].String(); got != "└"+strings.Repeat("─", 7) {
		t.Errorf("Bottom border: got %q", got)
	}
	for i, line := range text.Lines {
		if line.Style.FG != theme.Flamingo {
			t.Errorf("Line %d should carry the code line style, got %v", i, line.Style.FG)
		}
	}
}

func TestCodeBlockBorderFiller(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagCodeBlock, Fenced: true, Language: "go"}),
		textEv("x\n"),
		end(Tag{Kind: TagCodeBlock, Fenced: true}),
	}
	text := NewWriter(20, noHighlight).Run(events)
	// 20 - 2 - 5 - len("go") = 11 filler characters.
	if got := text.Lines[0].String(); got != "╒══ go "+strings.Repeat("═", 11) {
		t.Errorf("Top border: got %q", got)
	}
}

type fakeHighlighter struct{}

func (fakeHighlighter) HighlightLine(line string) []Span {
	return []Span{{Text: line, Style: Style{FG: tcell.ColorRed}}}
}

func TestCodeBlockHighlighted(t *testing.T) {
	factory := func(lang string) LineHighlighter {
		if lang == "fake" {
			return fakeHighlighter{}
		}
		return nil
	}
	events := []Event{
		start(Tag{Kind: TagCodeBlock, Fenced: true, Language: "fake"}),
		textEv("one\ntwo\n"),
		end(Tag{Kind: TagCodeBlock, Fenced: true}),
	}

	text := NewWriter(40, factory).Run(events)
	if len(text.Lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(text.Lines))
	}
	for i, want := range []string{"│one", "│two"} {
		line := text.Lines[i+1]
		if got := line.String(); got != want {
			t.Errorf("Line %d: expected %q, got %q", i+1, want, got)
		}
		if line.Spans[1].Style.FG != tcell.ColorRed {
			t.Errorf("Line %d should carry highlighted spans", i+1)
		}
	}
}

func TestIndentedCodeBlockNeverBindsHighlighter(t *testing.T) {
	bound := false
	factory := func(lang string) LineHighlighter {
		bound = true
		return fakeHighlighter{}
	}
	events := []Event{
		start(Tag{Kind: TagCodeBlock}),
		textEv("plain\n"),
		end(Tag{Kind: TagCodeBlock}),
	}
	NewWriter(40, factory).Run(events)
	if bound {
		t.Error("Indented code block should not attempt highlighter binding")
	}
}

func TestInlineCodeOverridesActiveStyles(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagParagraph}),
		start(Tag{Kind: TagStrong}),
		Event{Kind: EventCode, Text: "x"},
		end(Tag{Kind: TagStrong}),
		end(Tag{Kind: TagParagraph}),
	}
	text := NewWriter(80, noHighlight).Run(events)
	span := text.Lines[0].Spans[0]
	if span.Style != styleCode {
		t.Errorf("Inline code must use its fixed style, got %+v", span.Style)
	}
}

func TestLinkDestinationAppended(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagParagraph}),
		start(Tag{Kind: TagLink, Link: LinkNormal, Dest: "https://example.com", Title: "ignored"}),
		textEv("text"),
		end(Tag{Kind: TagLink}),
		end(Tag{Kind: TagParagraph}),
	}
	text := NewWriter(80, noHighlight).Run(events)
	if got := text.Lines[0].String(); got != "text (https://example.com)" {
		t.Errorf("Expected destination appended, got %q", got)
	}
	spans := text.Lines[0].Spans
	url := spans[len(spans)-2]
	if url.Style.FG != theme.Blue || !url.Style.Underline {
		t.Errorf("Destination should use link style, got %+v", url.Style)
	}
}

func TestAutolinkStyledInline(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagParagraph}),
		start(Tag{Kind: TagLink, Link: LinkAuto, Dest: "https://example.com"}),
		textEv("https://example.com"),
		end(Tag{Kind: TagLink}),
		end(Tag{Kind: TagParagraph}),
	}
	text := NewWriter(80, noHighlight).Run(events)
	if got := text.Lines[0].String(); got != "https://example.com" {
		t.Errorf("Autolink should not append a destination, got %q", got)
	}
	span := text.Lines[0].Spans[0]
	if span.Style.FG != theme.Blue || !span.Style.Underline {
		t.Errorf("Autolink text should be underlined link-colored, got %+v", span.Style)
	}
}

func TestBreaksStartNewLines(t *testing.T) {
	for _, kind := range []EventKind{EventSoftBreak, EventHardBreak} {
		events := []Event{
			start(Tag{Kind: TagParagraph}),
			textEv("a"),
			{Kind: kind},
			textEv("b"),
			end(Tag{Kind: TagParagraph}),
		}
		text := NewWriter(80, noHighlight).Run(events)
		if len(text.Lines) != 2 {
			t.Fatalf("Break kind %d: expected 2 lines, got %d", kind, len(text.Lines))
		}
		if text.Lines[0].String() != "a" || text.Lines[1].String() != "b" {
			t.Errorf("Break kind %d: got %q", kind, text.String())
		}
	}
}

func TestUnmatchedPopsAreSafe(t *testing.T) {
	events := []Event{
		end(Tag{Kind: TagEmphasis}),
		end(Tag{Kind: TagBlockQuote}),
		end(Tag{Kind: TagList}),
		end(Tag{Kind: TagCodeBlock}),
		end(Tag{Kind: TagLink}),
		end(Tag{Kind: TagParagraph}),
	}
	// Must not panic; an empty or near-empty result is fine.
	NewWriter(80, noHighlight).Run(events)
}

func TestUnsupportedEventsProduceNoOutput(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagParagraph}),
		textEv("before"),
		end(Tag{Kind: TagParagraph}),
		start(Tag{Kind: TagTable}),
		end(Tag{Kind: TagTable}),
		start(Tag{Kind: TagImage}),
		end(Tag{Kind: TagImage}),
		{Kind: EventFootnoteReference},
		{Kind: EventTaskListMarker},
		{Kind: EventInlineMath, Text: "x^2"},
		{Kind: EventHTML, Text: "<div>"},
		start(Tag{Kind: TagParagraph}),
		textEv("after"),
		end(Tag{Kind: TagParagraph}),
	}
	text := NewWriter(80, noHighlight).Run(events)
	got := text.String()
	if !strings.Contains(got, "before") || !strings.Contains(got, "after") {
		t.Errorf("Surrounding content must still render, got %q", got)
	}
	if strings.Contains(got, "x^2") || strings.Contains(got, "<div>") {
		t.Errorf("Unsupported constructs must produce no output, got %q", got)
	}
}

func TestParagraphSeparation(t *testing.T) {
	events := []Event{
		start(Tag{Kind: TagParagraph}),
		textEv("one"),
		end(Tag{Kind: TagParagraph}),
		start(Tag{Kind: TagParagraph}),
		textEv("two"),
		end(Tag{Kind: TagParagraph}),
	}
	text := NewWriter(80, noHighlight).Run(events)
	want := []string{"one", "", "two"}
	if len(text.Lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(text.Lines), text.String())
	}
	for i, w := range want {
		if got := text.Lines[i].String(); got != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestHeadingMarkers(t *testing.T) {
	for level := 1; level <= 6; level++ {
		events := []Event{
			start(Tag{Kind: TagHeading, Level: level}),
			textEv("t"),
			end(Tag{Kind: TagHeading, Level: level}),
		}
		text := NewWriter(80, noHighlight).Run(events)
		want := strings.Repeat("▌", level) + " t"
		if got := text.Lines[0].String(); got != want {
			t.Errorf("Level %d: expected %q, got %q", level, want, got)
		}
		if text.Lines[0].Style != headingStyle(level) {
			t.Errorf("Level %d: wrong heading style", level)
		}
	}
}
