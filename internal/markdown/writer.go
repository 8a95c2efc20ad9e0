package markdown

import (
	"fmt"
	"log"
	"strings"

	"github.com/notemark/notemark/internal/theme"
)

// HighlighterFactory binds a LineHighlighter for a code-block language token.
// Returning nil means the language is not recognized.
type HighlighterFactory func(lang string) LineHighlighter

// Writer folds an event stream into styled, viewport-sized lines. It owns no
// state beyond a single transform: create one, call Run once, discard it.
type Writer struct {
	width int
	text  Text

	// Stack of inline styles; the top is the style for freshly emitted text.
	inlineStyles []Style

	// Stack of line prefixes, outer to inner, prepended to every emitted line.
	linePrefixes []Span

	// Stack of line-level styles.
	lineStyles []Style

	// Stack of list counters; nil entries are unordered lists.
	listIndices []*int

	// Destination of the enclosing non-autolink link, appended on close.
	link *string

	// Active code-block highlighter, if any.
	highlighter    LineHighlighter
	newHighlighter HighlighterFactory

	needsNewline bool

	warned map[string]bool
}

// NewWriter returns a writer for a viewport width columns wide. A nil
// factory uses the chroma-backed highlighter.
func NewWriter(width int, factory HighlighterFactory) *Writer {
	if factory == nil {
		factory = NewChromaHighlighter
	}
	return &Writer{
		width:          width,
		newHighlighter: factory,
		warned:         make(map[string]bool),
	}
}

// Run consumes the event stream once, in order, and returns the styled text.
func (w *Writer) Run(events []Event) Text {
	for _, ev := range events {
		w.handleEvent(ev)
	}
	return w.text
}

func (w *Writer) handleEvent(ev Event) {
	switch ev.Kind {
	case EventStart:
		w.startTag(ev.Tag)
	case EventEnd:
		w.endTag(ev.Tag)
	case EventText:
		w.writeText(ev.Text)
	case EventCode:
		w.codeSpan(ev.Text)
	case EventHTML, EventInlineHTML:
		w.warnUnsupported("html")
	case EventSoftBreak:
		w.softBreak()
	case EventHardBreak:
		w.hardBreak()
	case EventRule:
		w.rule()
	case EventFootnoteReference:
		w.warnUnsupported("footnote reference")
	case EventTaskListMarker:
		w.warnUnsupported("task list marker")
	case EventInlineMath, EventDisplayMath:
		w.warnUnsupported("math")
	}
}

func (w *Writer) startTag(tag Tag) {
	switch tag.Kind {
	case TagParagraph:
		w.startParagraph()
	case TagHeading:
		w.startHeading(tag.Level)
	case TagBlockQuote:
		w.startBlockquote(tag.Quote)
	case TagCodeBlock:
		w.startCodeBlock(tag)
	case TagList:
		w.startList(tag.ListStart)
	case TagItem:
		w.startItem()
	case TagEmphasis:
		w.pushInlineStyle(styleEmphasis)
	case TagStrong:
		w.pushInlineStyle(styleStrong)
	case TagStrikethrough:
		w.pushInlineStyle(styleStrikethrough)
	case TagLink:
		w.pushLink(tag)
	default:
		// Image, html block, tables, footnotes, definition lists: not
		// rendered, but never fatal. Surrounding content still renders.
		w.warnUnsupported(tag.Kind.String())
	}
}

func (w *Writer) endTag(tag Tag) {
	switch tag.Kind {
	case TagParagraph:
		w.needsNewline = true
	case TagHeading:
		w.needsNewline = true
	case TagBlockQuote:
		w.endBlockquote()
	case TagCodeBlock:
		w.endCodeBlock()
	case TagList:
		w.endList()
	case TagEmphasis, TagStrong, TagStrikethrough:
		w.popInlineStyle()
	case TagLink:
		w.popLink()
	}
}

// Insert an empty line between paragraphs if there is text already.
func (w *Writer) startParagraph() {
	if w.needsNewline {
		w.pushLine(Line{})
	}
	w.pushLine(Line{})
	w.needsNewline = false
}

func (w *Writer) startHeading(level int) {
	if w.needsNewline {
		w.pushLine(Line{})
	}
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	marker := strings.Repeat("▌", level) + " "
	w.pushLine(Line{Spans: []Span{{Text: marker}}, Style: headingStyle(level)})
	w.needsNewline = false
}

func (w *Writer) startBlockquote(kind QuoteKind) {
	if w.needsNewline {
		w.pushLine(Line{})
		w.needsNewline = false
	}
	prefix, style := quoteDecoration(kind)
	w.linePrefixes = append(w.linePrefixes, Span{Text: prefix})
	w.lineStyles = append(w.lineStyles, style)
}

func quoteDecoration(kind QuoteKind) (string, Style) {
	switch kind {
	case QuoteNote, QuoteTip:
		return "▌✎ ", Style{FG: theme.Teal}
	case QuoteWarning:
		return "▌⚠ ", Style{FG: theme.Peach}
	case QuoteCaution:
		return "▌✖ ", Style{FG: theme.Maroon}
	case QuoteImportant:
		return "▌🔥 ", Style{FG: theme.Peach}
	default:
		return "▌ ", Style{FG: theme.Green}
	}
}

func (w *Writer) endBlockquote() {
	w.popLinePrefix()
	w.popLineStyle()
	w.needsNewline = true
}

func (w *Writer) writeText(text string) {
	if w.highlighter != nil {
		for _, line := range splitLines(text) {
			l := Line{Spans: w.highlighter.HighlightLine(line)}
			if n := len(w.linePrefixes); n > 0 {
				l.Spans = append([]Span{w.linePrefixes[n-1]}, l.Spans...)
			}
			w.text.Lines = append(w.text.Lines, l)
		}
		w.needsNewline = false
		return
	}

	if text != "" {
		for i, seg := range splitLines(text) {
			if w.needsNewline {
				w.pushLine(Line{})
				w.needsNewline = false
			}
			if i > 0 {
				w.pushLine(Line{})
			}
			w.pushSpan(Span{Text: seg, Style: w.topInlineStyle()})
		}
	}
	w.needsNewline = false
}

// Inline code keeps its fixed style even inside emphasis or strong scopes.
func (w *Writer) codeSpan(code string) {
	w.pushSpan(Span{Text: code, Style: styleCode})
}

func (w *Writer) rule() {
	w.pushLine(Line{Spans: []Span{{Text: strings.Repeat("─", clampWidth(w.width-2))}}})
}

func (w *Writer) softBreak() {
	w.pushLine(Line{})
}

func (w *Writer) hardBreak() {
	w.pushLine(Line{})
}

func (w *Writer) startList(start *int) {
	if len(w.listIndices) == 0 && w.needsNewline {
		w.pushLine(Line{})
	}
	var index *int
	if start != nil {
		v := *start
		index = &v
	}
	w.listIndices = append(w.listIndices, index)
}

func (w *Writer) endList() {
	if n := len(w.listIndices); n > 0 {
		w.listIndices = w.listIndices[:n-1]
	}
	w.needsNewline = true
}

func (w *Writer) startItem() {
	depth := len(w.listIndices)
	if depth == 0 {
		// Item outside any list; the tokenizer never produces this.
		return
	}
	var bullet string
	switch depth {
	case 1:
		bullet = "■ "
	case 2:
		bullet = "‣  "
	default:
		bullet = "· "
	}

	w.pushLine(Line{})
	width := depth*4 - 3
	index := w.listIndices[depth-1]
	if index == nil {
		w.pushSpan(Span{Text: strings.Repeat(" ", width-1) + bullet})
	} else {
		w.pushSpan(Span{Text: fmt.Sprintf("%0*d. ", width, *index), Style: styleListIndex})
		*index++
	}
	w.needsNewline = false
}

func (w *Writer) startCodeBlock(tag Tag) {
	if len(w.text.Lines) > 0 {
		w.pushLine(Line{})
	}
	lang := ""
	if tag.Fenced {
		lang = tag.Language
	}

	w.lineStyles = append(w.lineStyles, styleCode)
	w.setHighlighter(lang)

	border := "╒══"
	if lang != "" {
		border += " " + lang + " "
	} else {
		border += "══"
	}
	border += strings.Repeat("═", clampWidth(w.width-2-5-len(lang)))
	w.pushLine(Line{Spans: []Span{{Text: border}}})

	w.linePrefixes = append(w.linePrefixes, Span{Text: "│"})
	w.needsNewline = true
}

func (w *Writer) endCodeBlock() {
	w.popLinePrefix()
	bottom := "└" + strings.Repeat("─", clampWidth(w.width-3))
	w.pushLine(Line{Spans: []Span{{Text: bottom}}})
	w.needsNewline = true
	w.popLineStyle()
	w.highlighter = nil
}

func (w *Writer) setHighlighter(lang string) {
	w.highlighter = nil
	if lang == "" {
		return
	}
	if h := w.newHighlighter(lang); h != nil {
		w.highlighter = h
		return
	}
	w.warnf("no syntax definition for language %q, rendering plain", lang)
}

func (w *Writer) pushInlineStyle(style Style) {
	w.inlineStyles = append(w.inlineStyles, w.topInlineStyle().Patch(style))
}

func (w *Writer) popInlineStyle() {
	if n := len(w.inlineStyles); n > 0 {
		w.inlineStyles = w.inlineStyles[:n-1]
	}
}

func (w *Writer) topInlineStyle() Style {
	if n := len(w.inlineStyles); n > 0 {
		return w.inlineStyles[n-1]
	}
	return Style{}
}

func (w *Writer) popLinePrefix() {
	if n := len(w.linePrefixes); n > 0 {
		w.linePrefixes = w.linePrefixes[:n-1]
	}
}

func (w *Writer) popLineStyle() {
	if n := len(w.lineStyles); n > 0 {
		w.lineStyles = w.lineStyles[:n-1]
	}
}

func (w *Writer) topLineStyle() Style {
	if n := len(w.lineStyles); n > 0 {
		return w.lineStyles[n-1]
	}
	return Style{}
}

// pushLine appends a line, patched with the active line style and prefixed
// with the currently open block decorations, outer to inner.
func (w *Writer) pushLine(line Line) {
	line.Style = line.Style.Patch(w.topLineStyle())
	if len(w.linePrefixes) > 0 {
		spans := make([]Span, 0, len(w.linePrefixes)+1+len(line.Spans))
		spans = append(spans, w.linePrefixes...)
		spans = append(spans, Span{Text: " "})
		spans = append(spans, line.Spans...)
		line.Spans = spans
	}
	w.text.Lines = append(w.text.Lines, line)
}

// pushSpan appends a span to the current line, starting one if needed.
func (w *Writer) pushSpan(span Span) {
	if len(w.text.Lines) == 0 {
		w.pushLine(Line{Spans: []Span{span}})
		return
	}
	last := &w.text.Lines[len(w.text.Lines)-1]
	last.Spans = append(last.Spans, span)
}

// pushLink stores a link destination to be appended when the link closes.
// Autolinks are styled inline instead.
func (w *Writer) pushLink(tag Tag) {
	if tag.Link == LinkAuto {
		w.link = nil
		w.pushInlineStyle(Style{FG: theme.Blue, Underline: true})
		return
	}
	dest := tag.Dest
	w.link = &dest
}

// popLink appends the pending destination to the current line, or pops the
// autolink style.
func (w *Writer) popLink() {
	if w.link == nil {
		w.popInlineStyle()
		return
	}
	dest := *w.link
	w.link = nil
	w.pushSpan(Span{Text: " ("})
	w.pushSpan(Span{Text: dest, Style: styleLink})
	w.pushSpan(Span{Text: ")"})
}

func (w *Writer) warnUnsupported(what string) {
	w.warnf("%s not supported, skipping", what)
}

func (w *Writer) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if w.warned[msg] {
		return
	}
	w.warned[msg] = true
	log.Printf("markdown: %s", msg)
}

func clampWidth(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
