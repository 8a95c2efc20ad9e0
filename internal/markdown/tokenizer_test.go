package markdown

import (
	"strings"
	"testing"
)

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

// textPayload concatenates all text events. The parser may split a run into
// adjacent text nodes; consumers only see the joined spans.
func textPayload(events []Event) string {
	var sb strings.Builder
	for _, ev := range events {
		if ev.Kind == EventText {
			sb.WriteString(ev.Text)
		}
	}
	return sb.String()
}

func TestTokenizeParagraph(t *testing.T) {
	events := Tokenize([]byte("hello world"))
	got := kinds(events)
	if len(got) < 3 || got[0] != EventStart || got[len(got)-1] != EventEnd {
		t.Fatalf("Expected text framed by start/end, got %v", got)
	}
	for _, k := range got[1 : len(got)-1] {
		if k != EventText {
			t.Fatalf("Expected only text between start and end, got %v", got)
		}
	}
	if events[0].Tag.Kind != TagParagraph {
		t.Errorf("Expected paragraph tag, got %v", events[0].Tag.Kind)
	}
	if payload := textPayload(events); payload != "hello world" {
		t.Errorf("Expected text payload, got %q", payload)
	}
}

func TestTokenizeHeadingLevels(t *testing.T) {
	tests := []struct {
		input string
		level int
	}{
		{"# a", 1},
		{"## a", 2},
		{"### a", 3},
		{"###### a", 6},
	}
	for _, tt := range tests {
		events := Tokenize([]byte(tt.input))
		if len(events) == 0 || events[0].Tag.Kind != TagHeading {
			t.Fatalf("%q: expected heading start, got %+v", tt.input, events)
		}
		if events[0].Tag.Level != tt.level {
			t.Errorf("%q: expected level %d, got %d", tt.input, tt.level, events[0].Tag.Level)
		}
	}
}

func TestTokenizeEmphasisMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  TagKind
	}{
		{"star is strong", "*x*", TagStrong},
		{"double star is strong", "**x**", TagStrong},
		{"underscore is emphasis", "_x_", TagEmphasis},
		{"double underscore is strong", "__x__", TagStrong},
		{"star around code span is strong", "*`x`*", TagStrong},
		{"underscore around code span is emphasis", "_`x`_", TagEmphasis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Tokenize([]byte(tt.input))
			found := false
			for _, ev := range events {
				if ev.Kind == EventStart && (ev.Tag.Kind == TagEmphasis || ev.Tag.Kind == TagStrong) {
					found = true
					if ev.Tag.Kind != tt.kind {
						t.Errorf("Expected tag %v, got %v", tt.kind, ev.Tag.Kind)
					}
				}
			}
			if !found {
				t.Errorf("No emphasis/strong event in %+v", events)
			}
		})
	}
}

func TestTokenizeStrikethrough(t *testing.T) {
	events := Tokenize([]byte("~~gone~~"))
	found := false
	for _, ev := range events {
		if ev.Kind == EventStart && ev.Tag.Kind == TagStrikethrough {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected strikethrough start, got %+v", events)
	}
}

func TestTokenizeFencedCodeBlock(t *testing.T) {
	events := Tokenize([]byte("```go\nfmt.Println(1)\n```"))
	if events[0].Tag.Kind != TagCodeBlock || !events[0].Tag.Fenced {
		t.Fatalf("Expected fenced code block start, got %+v", events[0])
	}
	if events[0].Tag.Language != "go" {
		t.Errorf("Expected language token %q, got %q", "go", events[0].Tag.Language)
	}
	if events[1].Kind != EventText || events[1].Text != "fmt.Println(1)\n" {
		t.Errorf("Expected raw body, got %+v", events[1])
	}
	if last := events[len(events)-1]; last.Kind != EventEnd || last.Tag.Kind != TagCodeBlock {
		t.Errorf("Expected code block end, got %+v", last)
	}
}

func TestTokenizeMultiLineCodeBlock(t *testing.T) {
	events := Tokenize([]byte("```\nfirst\nsecond\n\nfourth\n```"))
	if events[1].Kind != EventText || events[1].Text != "first\nsecond\n\nfourth\n" {
		t.Errorf("Expected joined raw body, got %+v", events[1])
	}
}

func TestTokenizeIndentedCodeBlock(t *testing.T) {
	events := Tokenize([]byte("    indented line\n"))
	if events[0].Tag.Kind != TagCodeBlock || events[0].Tag.Fenced {
		t.Fatalf("Expected indented code block start, got %+v", events[0])
	}
	if events[1].Text != "indented line\n" {
		t.Errorf("Expected raw body, got %q", events[1].Text)
	}
}

func TestTokenizeOrderedListStart(t *testing.T) {
	events := Tokenize([]byte("3. a\n4. b"))
	if events[0].Tag.Kind != TagList {
		t.Fatalf("Expected list start, got %+v", events[0])
	}
	if events[0].Tag.ListStart == nil || *events[0].Tag.ListStart != 3 {
		t.Errorf("Expected ordered start 3, got %+v", events[0].Tag.ListStart)
	}
}

func TestTokenizeUnorderedList(t *testing.T) {
	events := Tokenize([]byte("- a\n- b"))
	if events[0].Tag.Kind != TagList || events[0].Tag.ListStart != nil {
		t.Fatalf("Expected unordered list start, got %+v", events[0])
	}
	items := 0
	for _, ev := range events {
		if ev.Kind == EventStart && ev.Tag.Kind == TagItem {
			items++
		}
	}
	if items != 2 {
		t.Errorf("Expected 2 items, got %d", items)
	}
}

func TestTokenizeBlockquoteAlerts(t *testing.T) {
	tests := []struct {
		input string
		kind  QuoteKind
		text  string
	}{
		{"> plain quote", QuotePlain, "plain quote"},
		{"> [!NOTE]\n> body", QuoteNote, "body"},
		{"> [!TIP]\n> body", QuoteTip, "body"},
		{"> [!WARNING]\n> body", QuoteWarning, "body"},
		{"> [!CAUTION]\n> body", QuoteCaution, "body"},
		{"> [!IMPORTANT]\n> body", QuoteImportant, "body"},
	}
	for _, tt := range tests {
		events := Tokenize([]byte(tt.input))
		if events[0].Tag.Kind != TagBlockQuote {
			t.Fatalf("%q: expected blockquote start, got %+v", tt.input, events[0])
		}
		if events[0].Tag.Quote != tt.kind {
			t.Errorf("%q: expected quote kind %v, got %v", tt.input, tt.kind, events[0].Tag.Quote)
		}
		if payload := textPayload(events); payload != tt.text {
			t.Errorf("%q: expected text %q, got %q (alert marker leak)", tt.input, tt.text, payload)
		}
	}
}

func TestTokenizeLink(t *testing.T) {
	events := Tokenize([]byte(`[text](https://example.com "a title")`))
	var link *Event
	for i, ev := range events {
		if ev.Kind == EventStart && ev.Tag.Kind == TagLink {
			link = &events[i]
		}
	}
	if link == nil {
		t.Fatalf("No link event in %+v", events)
	}
	if link.Tag.Link != LinkNormal || link.Tag.Dest != "https://example.com" {
		t.Errorf("Unexpected link tag %+v", link.Tag)
	}
	if link.Tag.Title != "a title" {
		t.Errorf("Title should be carried on the tag, got %q", link.Tag.Title)
	}
}

func TestTokenizeAutolink(t *testing.T) {
	events := Tokenize([]byte("<https://example.com>"))
	var seq []Event
	for _, ev := range events {
		if ev.Tag.Kind == TagLink || ev.Kind == EventText {
			seq = append(seq, ev)
		}
	}
	if len(seq) != 3 {
		t.Fatalf("Expected start/text/end, got %+v", seq)
	}
	if seq[0].Tag.Link != LinkAuto {
		t.Errorf("Expected autolink type, got %+v", seq[0].Tag)
	}
	if seq[1].Text != "https://example.com" {
		t.Errorf("Expected url label, got %q", seq[1].Text)
	}
}

func TestTokenizeCodeSpan(t *testing.T) {
	events := Tokenize([]byte("a `b` c"))
	found := false
	for _, ev := range events {
		if ev.Kind == EventCode {
			found = true
			if ev.Text != "b" {
				t.Errorf("Expected code payload %q, got %q", "b", ev.Text)
			}
		}
	}
	if !found {
		t.Errorf("No code event in %+v", events)
	}
}

func TestTokenizeThematicBreak(t *testing.T) {
	events := Tokenize([]byte("---"))
	if len(events) != 1 || events[0].Kind != EventRule {
		t.Fatalf("Expected a single rule event, got %+v", events)
	}
}

func TestTokenizeHardBreak(t *testing.T) {
	events := Tokenize([]byte("a\\\nb"))
	found := false
	for _, ev := range events {
		if ev.Kind == EventHardBreak {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected hard break event, got %+v", events)
	}
}

func TestTokenizeTableSkipsCells(t *testing.T) {
	events := Tokenize([]byte("| a | b |\n|---|---|\n| c | d |"))
	sawTable := false
	for _, ev := range events {
		if ev.Tag.Kind == TagTable {
			sawTable = true
		}
		if ev.Kind == EventText {
			t.Errorf("Table content should produce no text events, got %q", ev.Text)
		}
	}
	if !sawTable {
		t.Errorf("Expected table tag, got %+v", events)
	}
}

func TestTokenizeBalancedPairs(t *testing.T) {
	src := "# h\n\n> q\n\n- a\n  - b\n\n```go\nx\n```\n\n*s* _e_ [l](u)\n"
	events := Tokenize([]byte(src))
	depth := 0
	for _, ev := range events {
		switch ev.Kind {
		case EventStart:
			depth++
		case EventEnd:
			depth--
		}
		if depth < 0 {
			t.Fatalf("End without start at %+v", ev)
		}
	}
	if depth != 0 {
		t.Errorf("Unbalanced stream, depth %d at end", depth)
	}
}
