package markdown

// EventKind discriminates the events a tokenizer can produce. The set is
// closed; Writer dispatches on it with a switch.
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventHTML
	EventInlineHTML
	EventSoftBreak
	EventHardBreak
	EventRule
	EventFootnoteReference
	EventTaskListMarker
	EventInlineMath
	EventDisplayMath
)

// TagKind discriminates block and inline scopes opened by EventStart and
// closed by EventEnd.
type TagKind int

const (
	TagParagraph TagKind = iota
	TagHeading
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
	TagHTMLBlock
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagFootnoteDefinition
	TagDefinitionList
	TagDefinitionListTitle
	TagDefinitionListDefinition
)

func (k TagKind) String() string {
	switch k {
	case TagParagraph:
		return "paragraph"
	case TagHeading:
		return "heading"
	case TagBlockQuote:
		return "blockquote"
	case TagCodeBlock:
		return "code block"
	case TagList:
		return "list"
	case TagItem:
		return "list item"
	case TagEmphasis:
		return "emphasis"
	case TagStrong:
		return "strong"
	case TagStrikethrough:
		return "strikethrough"
	case TagLink:
		return "link"
	case TagImage:
		return "image"
	case TagHTMLBlock:
		return "html block"
	case TagTable:
		return "table"
	case TagTableHead:
		return "table head"
	case TagTableRow:
		return "table row"
	case TagTableCell:
		return "table cell"
	case TagFootnoteDefinition:
		return "footnote definition"
	case TagDefinitionList:
		return "definition list"
	case TagDefinitionListTitle:
		return "definition list title"
	case TagDefinitionListDefinition:
		return "definition list definition"
	default:
		return "unknown tag"
	}
}

// QuoteKind selects a blockquote decoration.
type QuoteKind int

const (
	QuotePlain QuoteKind = iota
	QuoteNote
	QuoteTip
	QuoteWarning
	QuoteCaution
	QuoteImportant
)

// LinkType distinguishes bare autolinks from regular links.
type LinkType int

const (
	LinkNormal LinkType = iota
	LinkAuto
)

// Tag carries the payload of a start or end event. Only the fields relevant
// to Kind are set.
type Tag struct {
	Kind TagKind

	// TagHeading
	Level int

	// TagBlockQuote
	Quote QuoteKind

	// TagCodeBlock; Language is empty for indented blocks
	Fenced   bool
	Language string

	// TagList; nil means unordered
	ListStart *int

	// TagLink; Title is accepted but not rendered
	Link  LinkType
	Dest  string
	Title string
}

// Event is one element of the stream a tokenizer produces. Text holds the
// payload of text-carrying kinds.
type Event struct {
	Kind EventKind
	Tag  Tag
	Text string
}
