package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/notemark/notemark/internal/models"
)

// cardHeight is the number of rows each note occupies in the list.
const cardHeight = 3

// noteEntry pairs a note with its search match, for title highlighting.
type noteEntry struct {
	note  *models.Note
	match MatchResult
}

// NoteListView is the left pane: a scrollable list of note cards filtered by
// the current search query.
type NoteListView struct {
	notes        []*models.Note
	filtered     []noteEntry
	selectedIdx  int
	scrollOffset int
	search       *SearchState
}

func NewNoteListView() *NoteListView {
	return &NoteListView{
		search: NewSearchState(),
	}
}

// SetNotes replaces the backing note slice and re-applies the filter.
func (v *NoteListView) SetNotes(notes []*models.Note) {
	v.notes = notes
	v.UpdateSearch()
}

// Notes returns the unfiltered backing slice.
func (v *NoteListView) Notes() []*models.Note {
	return v.notes
}

// GetSearchState returns the list's search state.
func (v *NoteListView) GetSearchState() *SearchState {
	return v.search
}

// UpdateSearch re-filters the list against the current query, preserving the
// selected note when it survives the filter.
func (v *NoteListView) UpdateSearch() {
	var selected *models.Note
	if e := v.selectedEntry(); e != nil {
		selected = e.note
	}

	v.filtered = v.filtered[:0]
	for _, note := range v.notes {
		ok, _, match := v.search.MatchNoteWithPositions(note.Title, note.Content)
		if !ok {
			continue
		}
		v.filtered = append(v.filtered, noteEntry{note: note, match: match})
	}

	v.selectedIdx = 0
	for i, e := range v.filtered {
		if e.note == selected {
			v.selectedIdx = i
			break
		}
	}
	v.clampSelection()
}

// Selected returns the selected note, or nil when the list is empty.
func (v *NoteListView) Selected() *models.Note {
	if e := v.selectedEntry(); e != nil {
		return e.note
	}
	return nil
}

func (v *NoteListView) selectedEntry() *noteEntry {
	if v.selectedIdx >= 0 && v.selectedIdx < len(v.filtered) {
		return &v.filtered[v.selectedIdx]
	}
	return nil
}

// SelectNote moves the selection to the given note if it is visible.
func (v *NoteListView) SelectNote(note *models.Note) {
	for i, e := range v.filtered {
		if e.note == note {
			v.selectedIdx = i
			return
		}
	}
}

// SelectNext moves the selection down one card, wrapping at the end.
func (v *NoteListView) SelectNext() {
	if len(v.filtered) == 0 {
		return
	}
	v.selectedIdx = (v.selectedIdx + 1) % len(v.filtered)
}

// SelectPrevious moves the selection up one card, wrapping at the start.
func (v *NoteListView) SelectPrevious() {
	if len(v.filtered) == 0 {
		return
	}
	v.selectedIdx = (v.selectedIdx - 1 + len(v.filtered)) % len(v.filtered)
}

func (v *NoteListView) clampSelection() {
	if len(v.filtered) == 0 {
		v.selectedIdx = 0
		v.scrollOffset = 0
		return
	}
	if v.selectedIdx >= len(v.filtered) {
		v.selectedIdx = len(v.filtered) - 1
	}
	if v.selectedIdx < 0 {
		v.selectedIdx = 0
	}
}

// ensureVisible scrolls so the selected card is fully inside the viewport.
func (v *NoteListView) ensureVisible(visibleCards int) {
	if visibleCards <= 0 {
		return
	}
	if v.selectedIdx < v.scrollOffset {
		v.scrollOffset = v.selectedIdx
	}
	if v.selectedIdx >= v.scrollOffset+visibleCards {
		v.scrollOffset = v.selectedIdx - visibleCards + 1
	}
	maxOffset := len(v.filtered) - visibleCards
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.scrollOffset > maxOffset {
		v.scrollOffset = maxOffset
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// Draw renders the note list into its pane area.
func (v *NoteListView) Draw(s tcell.Screen, area Rect, focused bool) {
	if area.W < 4 || area.H < 4 {
		return
	}

	titleStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorTitle).Bold(true)
	drawBorder(s, area, borderStyle(focused), "Notes", titleStyle)

	inner := Rect{X: area.X + 1, Y: area.Y + 1, W: area.W - 2, H: area.H - 2}
	visibleCards := inner.H / cardHeight
	v.ensureVisible(visibleCards)

	normalStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	dimStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorDimmed)
	selectedStyle := tcell.StyleDefault.Background(ColorSelection).Foreground(ColorBright).Bold(true)
	selectedDimStyle := tcell.StyleDefault.Background(ColorSelection).Foreground(ColorDimmed)

	for i := 0; i < visibleCards; i++ {
		idx := v.scrollOffset + i
		if idx >= len(v.filtered) {
			break
		}
		entry := v.filtered[idx]
		y := inner.Y + i*cardHeight
		isSelected := idx == v.selectedIdx

		titleLineStyle := normalStyle
		metaStyle := dimStyle
		if isSelected {
			titleLineStyle = selectedStyle
			metaStyle = selectedDimStyle
			for row := 0; row < 2; row++ {
				for x := inner.X; x < inner.X+inner.W; x++ {
					s.SetContent(x, y+row, ' ', nil, selectedStyle)
				}
			}
		}

		title := runewidth.Truncate(entry.note.Title, inner.W, "…")
		if len(entry.match.Positions) > 0 {
			drawTextWithHighlight(s, inner.X, y, inner.W, titleLineStyle, title, entry.match.Positions)
		} else {
			drawText(s, inner.X, y, titleLineStyle, title)
		}

		updated := entry.note.UpdatedAt.Format("2006-01-02 15:04")
		drawText(s, inner.X, y+1, metaStyle, runewidth.Truncate(updated, inner.W, "…"))
	}

	if len(v.filtered) == 0 {
		msg := "no notes"
		if v.search.Query() != "" {
			msg = "no matches"
		}
		drawText(s, inner.X, inner.Y, dimStyle, runewidth.Truncate(msg, inner.W, "…"))
	}
}
