package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// The parser is process-wide and immutable after construction.
var mdParser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Tokenize parses markdown source into the event stream consumed by Writer.
func Tokenize(source []byte) []Event {
	doc := mdParser.Parser().Parse(gmtext.NewReader(source))
	t := &tokenizer{source: source}
	_ = ast.Walk(doc, t.visit)
	return t.events
}

type tokenizer struct {
	source []byte
	events []Event

	// Alert markers like "[!NOTE]" consumed by blockquote detection; their
	// text nodes produce no events.
	skip map[ast.Node]bool
}

func (t *tokenizer) emit(ev Event) {
	t.events = append(t.events, ev)
}

func (t *tokenizer) pair(entering bool, tag Tag) {
	if entering {
		t.emit(Event{Kind: EventStart, Tag: tag})
	} else {
		t.emit(Event{Kind: EventEnd, Tag: tag})
	}
}

func (t *tokenizer) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Document, *ast.TextBlock:
		// TextBlock is tight list-item content; its text flows bare.

	case *ast.Paragraph:
		t.pair(entering, Tag{Kind: TagParagraph})

	case *ast.Heading:
		t.pair(entering, Tag{Kind: TagHeading, Level: n.Level})

	case *ast.Blockquote:
		if entering {
			t.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagBlockQuote, Quote: t.alertKind(n)}})
		} else {
			t.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagBlockQuote}})
		}

	case *ast.FencedCodeBlock:
		if entering {
			lang := string(n.Language(t.source))
			t.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagCodeBlock, Fenced: true, Language: lang}})
			t.emit(Event{Kind: EventText, Text: t.blockText(n)})
			return ast.WalkSkipChildren, nil
		}
		t.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagCodeBlock, Fenced: true}})

	case *ast.CodeBlock:
		if entering {
			t.emit(Event{Kind: EventStart, Tag: Tag{Kind: TagCodeBlock}})
			t.emit(Event{Kind: EventText, Text: t.blockText(n)})
			return ast.WalkSkipChildren, nil
		}
		t.emit(Event{Kind: EventEnd, Tag: Tag{Kind: TagCodeBlock}})

	case *ast.List:
		tag := Tag{Kind: TagList}
		if n.IsOrdered() {
			start := n.Start
			tag.ListStart = &start
		}
		t.pair(entering, tag)

	case *ast.ListItem:
		t.pair(entering, Tag{Kind: TagItem})

	case *ast.ThematicBreak:
		if entering {
			t.emit(Event{Kind: EventRule})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering && !t.skip[n] {
			if value := string(n.Segment.Value(t.source)); value != "" {
				t.emit(Event{Kind: EventText, Text: value})
			}
			if n.HardLineBreak() {
				t.emit(Event{Kind: EventHardBreak})
			} else if n.SoftLineBreak() {
				t.emit(Event{Kind: EventSoftBreak})
			}
		}

	case *ast.String:
		if entering && len(n.Value) > 0 {
			t.emit(Event{Kind: EventText, Text: string(n.Value)})
		}

	case *ast.CodeSpan:
		if entering {
			t.emit(Event{Kind: EventCode, Text: t.codeSpanText(n)})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		t.pair(entering, Tag{Kind: t.emphasisKind(n)})

	case *extast.Strikethrough:
		t.pair(entering, Tag{Kind: TagStrikethrough})

	case *ast.Link:
		t.pair(entering, Tag{
			Kind:  TagLink,
			Link:  LinkNormal,
			Dest:  string(n.Destination),
			Title: string(n.Title),
		})

	case *ast.AutoLink:
		if entering {
			tag := Tag{Kind: TagLink, Link: LinkAuto, Dest: string(n.URL(t.source))}
			t.emit(Event{Kind: EventStart, Tag: tag})
			t.emit(Event{Kind: EventText, Text: string(n.Label(t.source))})
			t.emit(Event{Kind: EventEnd, Tag: tag})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		t.pair(entering, Tag{Kind: TagImage})
		if entering {
			return ast.WalkSkipChildren, nil
		}

	case *ast.HTMLBlock:
		t.pair(entering, Tag{Kind: TagHTMLBlock})
		if entering {
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			t.emit(Event{Kind: EventInlineHTML})
		}
		return ast.WalkSkipChildren, nil

	case *extast.Table:
		t.pair(entering, Tag{Kind: TagTable})
		if entering {
			return ast.WalkSkipChildren, nil
		}

	case *extast.TaskCheckBox:
		if entering {
			t.emit(Event{Kind: EventTaskListMarker})
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// blockText joins the raw lines of a code block, trailing newlines included.
func (t *tokenizer) blockText(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(t.source))
	}
	return sb.String()
}

// emphasisKind distinguishes "*strong*" from "_emphasis_". Double markers
// are always strong; single markers depend on the delimiter character,
// which the AST does not retain, so it is read back from the source. When
// the first leaf is a code span its opening backticks sit between the
// delimiter and the text, so they are stepped over before the check.
func (t *tokenizer) emphasisKind(n *ast.Emphasis) TagKind {
	if n.Level >= 2 {
		return TagStrong
	}
	if seg, ok := firstTextSegment(n); ok {
		i := seg.Start - 1
		for i >= 0 && t.source[i] == '`' {
			i--
		}
		if i >= 0 && t.source[i] == '*' {
			return TagStrong
		}
	}
	return TagEmphasis
}

func firstTextSegment(n ast.Node) (gmtext.Segment, bool) {
	for c := n.FirstChild(); c != nil; c = c.FirstChild() {
		if tx, ok := c.(*ast.Text); ok {
			return tx.Segment, true
		}
	}
	return gmtext.Segment{}, false
}

func (t *tokenizer) codeSpanText(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(t.source))
		case *ast.String:
			sb.Write(c.Value)
		}
	}
	return sb.String()
}

var alertKinds = map[string]QuoteKind{
	"[!NOTE]":      QuoteNote,
	"[!TIP]":       QuoteTip,
	"[!WARNING]":   QuoteWarning,
	"[!CAUTION]":   QuoteCaution,
	"[!IMPORTANT]": QuoteImportant,
}

// alertKind inspects the first line of a blockquote for a GitHub alert
// marker. A recognized marker selects the quote kind and is not re-emitted
// as text. The bracket makes goldmark split the line across several text
// nodes, so the line is reassembled before matching.
func (t *tokenizer) alertKind(bq *ast.Blockquote) QuoteKind {
	para, ok := bq.FirstChild().(*ast.Paragraph)
	if !ok {
		return QuotePlain
	}
	var firstLine []*ast.Text
	var sb strings.Builder
	for c := para.FirstChild(); c != nil; c = c.NextSibling() {
		tx, ok := c.(*ast.Text)
		if !ok {
			return QuotePlain
		}
		firstLine = append(firstLine, tx)
		sb.Write(tx.Segment.Value(t.source))
		if tx.SoftLineBreak() || tx.HardLineBreak() {
			break
		}
	}
	kind, ok := alertKinds[strings.TrimSpace(sb.String())]
	if !ok {
		return QuotePlain
	}
	if t.skip == nil {
		t.skip = make(map[ast.Node]bool)
	}
	for _, tx := range firstLine {
		t.skip[tx] = true
	}
	return kind
}
