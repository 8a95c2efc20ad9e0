package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// EditorView is a plain text editor over a slice of rune lines. It edits the
// raw markdown; rendering happens in the preview pane.
type EditorView struct {
	lines     [][]rune
	cursorRow int
	cursorCol int
	scrollRow int
	scrollCol int
	modified  bool
}

func NewEditorView() *EditorView {
	return &EditorView{lines: [][]rune{{}}}
}

// SetContent replaces the buffer and moves the cursor to the top.
func (e *EditorView) SetContent(content string) {
	raw := strings.Split(content, "\n")
	e.lines = make([][]rune, len(raw))
	for i, line := range raw {
		e.lines[i] = []rune(line)
	}
	if len(e.lines) == 0 {
		e.lines = [][]rune{{}}
	}
	e.cursorRow = 0
	e.cursorCol = 0
	e.scrollRow = 0
	e.scrollCol = 0
	e.modified = false
}

// Content returns the buffer as a single string.
func (e *EditorView) Content() string {
	parts := make([]string, len(e.lines))
	for i, line := range e.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Modified reports whether the buffer changed since the last SetContent or
// ClearModified.
func (e *EditorView) Modified() bool {
	return e.modified
}

// ClearModified marks the buffer as saved.
func (e *EditorView) ClearModified() {
	e.modified = false
}

func (e *EditorView) currentLine() []rune {
	return e.lines[e.cursorRow]
}

func (e *EditorView) clampCol() {
	if e.cursorCol > len(e.currentLine()) {
		e.cursorCol = len(e.currentLine())
	}
	if e.cursorCol < 0 {
		e.cursorCol = 0
	}
}

// HandleKey applies an edit or cursor motion. Returns true when the event was
// consumed.
func (e *EditorView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		e.insertRune(ev.Rune())
		return true
	case tcell.KeyTab:
		for i := 0; i < 4; i++ {
			e.insertRune(' ')
		}
		return true
	case tcell.KeyEnter:
		e.splitLine()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.deleteBackward()
		return true
	case tcell.KeyDelete:
		e.deleteForward()
		return true
	case tcell.KeyLeft:
		if e.cursorCol > 0 {
			e.cursorCol--
		} else if e.cursorRow > 0 {
			e.cursorRow--
			e.cursorCol = len(e.currentLine())
		}
		return true
	case tcell.KeyRight:
		if e.cursorCol < len(e.currentLine()) {
			e.cursorCol++
		} else if e.cursorRow < len(e.lines)-1 {
			e.cursorRow++
			e.cursorCol = 0
		}
		return true
	case tcell.KeyUp:
		if e.cursorRow > 0 {
			e.cursorRow--
			e.clampCol()
		}
		return true
	case tcell.KeyDown:
		if e.cursorRow < len(e.lines)-1 {
			e.cursorRow++
			e.clampCol()
		}
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.cursorCol = 0
		return true
	case tcell.KeyEnd:
		e.cursorCol = len(e.currentLine())
		return true
	case tcell.KeyPgUp:
		e.cursorRow -= 10
		if e.cursorRow < 0 {
			e.cursorRow = 0
		}
		e.clampCol()
		return true
	case tcell.KeyPgDn:
		e.cursorRow += 10
		if e.cursorRow > len(e.lines)-1 {
			e.cursorRow = len(e.lines) - 1
		}
		e.clampCol()
		return true
	}
	return false
}

func (e *EditorView) insertRune(r rune) {
	line := e.currentLine()
	line = append(line[:e.cursorCol], append([]rune{r}, line[e.cursorCol:]...)...)
	e.lines[e.cursorRow] = line
	e.cursorCol++
	e.modified = true
}

func (e *EditorView) splitLine() {
	line := e.currentLine()
	rest := append([]rune{}, line[e.cursorCol:]...)
	e.lines[e.cursorRow] = line[:e.cursorCol]
	e.lines = append(e.lines[:e.cursorRow+1], append([][]rune{rest}, e.lines[e.cursorRow+1:]...)...)
	e.cursorRow++
	e.cursorCol = 0
	e.modified = true
}

func (e *EditorView) deleteBackward() {
	if e.cursorCol > 0 {
		line := e.currentLine()
		e.lines[e.cursorRow] = append(line[:e.cursorCol-1], line[e.cursorCol:]...)
		e.cursorCol--
		e.modified = true
		return
	}
	if e.cursorRow == 0 {
		return
	}
	// Join with the previous line.
	prev := e.lines[e.cursorRow-1]
	e.cursorCol = len(prev)
	e.lines[e.cursorRow-1] = append(prev, e.currentLine()...)
	e.lines = append(e.lines[:e.cursorRow], e.lines[e.cursorRow+1:]...)
	e.cursorRow--
	e.modified = true
}

func (e *EditorView) deleteForward() {
	line := e.currentLine()
	if e.cursorCol < len(line) {
		e.lines[e.cursorRow] = append(line[:e.cursorCol], line[e.cursorCol+1:]...)
		e.modified = true
		return
	}
	if e.cursorRow == len(e.lines)-1 {
		return
	}
	// Join with the next line.
	e.lines[e.cursorRow] = append(line, e.lines[e.cursorRow+1]...)
	e.lines = append(e.lines[:e.cursorRow+1], e.lines[e.cursorRow+2:]...)
	e.modified = true
}

// ensureVisible scrolls so the cursor stays inside the viewport.
func (e *EditorView) ensureVisible(width, height int) {
	if e.cursorRow < e.scrollRow {
		e.scrollRow = e.cursorRow
	}
	if height > 0 && e.cursorRow >= e.scrollRow+height {
		e.scrollRow = e.cursorRow - height + 1
	}
	if e.cursorCol < e.scrollCol {
		e.scrollCol = e.cursorCol
	}
	if width > 0 && e.cursorCol >= e.scrollCol+width {
		e.scrollCol = e.cursorCol - width + 1
	}
}

// Draw renders the editor pane with its border and title.
func (e *EditorView) Draw(s tcell.Screen, area Rect, focused bool) {
	if area.W < 4 || area.H < 4 {
		return
	}

	titleStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorTitle).Bold(true)
	drawBorder(s, area, borderStyle(focused), "Editor", titleStyle)

	inner := Rect{X: area.X + 1, Y: area.Y + 1, W: area.W - 2, H: area.H - 2}
	e.ensureVisible(inner.W, inner.H)

	textStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	for i := 0; i < inner.H; i++ {
		row := e.scrollRow + i
		if row >= len(e.lines) {
			break
		}
		line := e.lines[row]
		x := inner.X
		for col := e.scrollCol; col < len(line) && x < inner.X+inner.W; col++ {
			r := line[col]
			s.SetContent(x, inner.Y+i, r, nil, textStyle)
			x += runewidth.RuneWidth(r)
		}
	}

	if focused {
		cx := inner.X + e.cursorCol - e.scrollCol
		cy := inner.Y + e.cursorRow - e.scrollRow
		if cx >= inner.X && cx < inner.X+inner.W && cy >= inner.Y && cy < inner.Y+inner.H {
			s.ShowCursor(cx, cy)
		} else {
			s.HideCursor()
		}
	}
}
