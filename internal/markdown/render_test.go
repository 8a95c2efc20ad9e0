package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderHeadingScenario(t *testing.T) {
	text := Render("# Title\n\nSome *bold* text.", 40)
	if len(text.Lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(text.Lines), text.String())
	}

	heading := text.Lines[0]
	if got := heading.String(); got != "▌ Title" {
		t.Errorf("Heading line: expected %q, got %q", "▌ Title", got)
	}
	if !heading.Style.Bold || !heading.Style.Underline {
		t.Errorf("H1 line should be bold and underlined, got %+v", heading.Style)
	}

	if got := text.Lines[1].String(); got != "" {
		t.Errorf("Line 2 should be blank, got %q", got)
	}

	body := text.Lines[2]
	if len(body.Spans) != 3 {
		t.Fatalf("Expected 3 spans, got %d: %q", len(body.Spans), body.String())
	}
	if body.Spans[0].Text != "Some " || body.Spans[2].Text != " text." {
		t.Errorf("Unexpected span split: %q / %q", body.Spans[0].Text, body.Spans[2].Text)
	}
	if body.Spans[0].Style.Bold {
		t.Error("Plain text should not be bold")
	}
	if body.Spans[1].Text != "bold" || !body.Spans[1].Style.Bold {
		t.Errorf("Starred text should render bold, got %q %+v", body.Spans[1].Text, body.Spans[1].Style)
	}
}

func TestRenderRuleScenario(t *testing.T) {
	text := Render("---", 10)
	if text.LineCount() != 1 {
		t.Fatalf("Expected exactly 1 line, got %d", text.LineCount())
	}
	if got := text.Lines[0].String(); got != strings.Repeat("─", 8) {
		t.Errorf("Expected 8 rule glyphs, got %q", got)
	}
}

func TestRenderUnknownLanguageScenario(t *testing.T) {
	text := Render("```xyz123\na\n```", 40)
	if len(text.Lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(text.Lines), text.String())
	}
	if !strings.Contains(text.Lines[0].String(), "xyz123") {
		t.Errorf("Top border should name the language, got %q", text.Lines[0].String())
	}
	if got := text.Lines[1].String(); got != "│ a" {
		t.Errorf("Body: expected %q, got %q", "│ a", got)
	}
	if !strings.HasPrefix(text.Lines[2].String(), "└") {
		t.Errorf("Bottom border missing, got %q", text.Lines[2].String())
	}
}

func TestRenderImageDegradesGracefully(t *testing.T) {
	text := Render("para one\n\n![alt](img.png)\n\npara two", 40)
	got := text.String()
	if !strings.Contains(got, "para one") || !strings.Contains(got, "para two") {
		t.Errorf("Paragraphs around an image must render, got %q", got)
	}
	if strings.Contains(got, "img.png") || strings.Contains(got, "alt") {
		t.Errorf("Image must be omitted, got %q", got)
	}
}

func TestRenderTableDegradesGracefully(t *testing.T) {
	src := "before\n\n| cell1 | cell2 |\n|---|---|\n| cell3 | cell4 |\n\nafter"
	text := Render(src, 40)
	got := text.String()
	if !strings.Contains(got, "before") || !strings.Contains(got, "after") {
		t.Errorf("Content around a table must render, got %q", got)
	}
	for _, cell := range []string{"cell1", "cell2", "cell3", "cell4"} {
		if strings.Contains(got, cell) {
			t.Errorf("Table cell %q leaked into output: %q", cell, got)
		}
	}
}

func TestRenderDeterminism(t *testing.T) {
	src := "# H\n\n- one\n- two\n\n> [!WARNING]\n> careful\n\n```go\nfmt.Println(1)\n```\n\n*a* _b_ ~~c~~ `d`\n"
	first := Render(src, 40)
	for i := 0; i < 3; i++ {
		if next := Render(src, 40); !reflect.DeepEqual(first, next) {
			t.Fatalf("Render is not deterministic on call %d", i+2)
		}
	}
}

func TestRenderNarrowWidth(t *testing.T) {
	src := "---\n\n```go\na\n```\n\n# H"
	for _, width := range []int{0, 1, 3} {
		text := Render(src, width)
		if text.LineCount() == 0 {
			t.Errorf("Width %d: expected some output", width)
		}
	}
}

func TestRenderOrderedListStart(t *testing.T) {
	text := Render("3. a\n4. b\n5. c", 40)
	want := []string{"3. a", "4. b", "5. c"}
	if len(text.Lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(text.Lines), text.String())
	}
	for i, w := range want {
		if got := text.Lines[i].String(); got != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestRenderAutolink(t *testing.T) {
	text := Render("<https://example.com>", 40)
	if got := text.String(); got != "https://example.com" {
		t.Errorf("Autolink renders inline, got %q", got)
	}
}

func TestRenderLink(t *testing.T) {
	text := Render("[here](https://example.com)", 40)
	if got := text.String(); got != "here (https://example.com)" {
		t.Errorf("Expected destination annotation, got %q", got)
	}
}
