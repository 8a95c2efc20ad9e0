package ui

import (
	"github.com/gdamore/tcell/v2"
)

type HelpDialog struct {
	visible      bool
	scrollOffset int
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{
		visible: false,
	}
}

func (h *HelpDialog) Show() {
	h.visible = true
	h.scrollOffset = 0 // Reset scroll when showing
}

func (h *HelpDialog) Hide() {
	h.visible = false
}

func (h *HelpDialog) IsVisible() bool {
	return h.visible
}

func (h *HelpDialog) Draw(s tcell.Screen) {
	if !h.visible {
		return
	}

	w, screenHeight := s.Size()

	helpLines := h.getHelpContent()

	// Size the dialog to its content
	maxLineWidth := 0
	for _, line := range helpLines {
		if len(line) > maxLineWidth {
			maxLineWidth = len(line)
		}
	}

	dialogWidth := maxLineWidth + 4
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}
	if dialogWidth < 40 {
		dialogWidth = 40
	}

	maxDialogHeight := screenHeight - 4
	dialogHeight := len(helpLines) + 4
	if dialogHeight > maxDialogHeight {
		dialogHeight = maxDialogHeight
	}
	if dialogHeight < 10 {
		dialogHeight = 10
	}

	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2
	if startX < 1 {
		startX = 1
	}
	if startY < 1 {
		startY = 1
	}

	area := Rect{X: startX, Y: startY, W: dialogWidth, H: dialogHeight}
	dialogStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			s.SetContent(x, y, ' ', nil, dialogStyle)
		}
	}

	borderSt := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorBorder)
	titleStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorTitle).Bold(true)
	drawBorder(s, area, borderSt, "Help - Keybindings", titleStyle)

	contentStartY := startY + 2
	visibleLines := dialogHeight - 4

	for i := 0; i < visibleLines && i+h.scrollOffset < len(helpLines); i++ {
		line := helpLines[i+h.scrollOffset]

		maxContentWidth := dialogWidth - 4
		if len(line) > maxContentWidth {
			if maxContentWidth > 3 {
				line = line[:maxContentWidth-3] + "..."
			} else {
				line = line[:maxContentWidth]
			}
		}

		drawText(s, startX+2, contentStartY+i, dialogStyle, line)
	}

	// Footer: scroll hint or close hint
	footerStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorDimmed)
	footer := "Press Esc or ? to close"
	if len(helpLines) > visibleLines {
		footer = "↑↓ scroll, Esc or ? to close"
	}
	footerX := startX + (dialogWidth-len(footer))/2
	if footerX < startX+2 {
		footerX = startX + 2
	}
	drawText(s, footerX, startY+dialogHeight-2, footerStyle, footer)
}

func (h *HelpDialog) HandleKey(ev *tcell.EventKey) bool {
	if !h.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		h.Hide()
		return true
	case tcell.KeyUp:
		h.scrollUp()
		return true
	case tcell.KeyDown:
		h.scrollDown()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case '?':
			h.Hide()
			return true
		case 'j':
			h.scrollDown()
			return true
		case 'k':
			h.scrollUp()
			return true
		case 'g':
			h.scrollOffset = 0
			return true
		case 'G':
			h.scrollToBottom()
			return true
		}
	}

	return true // Consume all other keys when visible
}

// getHelpContent returns the help text content
func (h *HelpDialog) getHelpContent() []string {
	return []string{
		"",
		"Notes:",
		"  Ctrl+N        Create a new note",
		"  Ctrl+S        Save the current note",
		"  Ctrl+D        Delete the current note",
		"  Ctrl+R        Rename the current note",
		"  Ctrl+Up/Down  Select previous/next note",
		"",
		"Views:",
		"  Ctrl+L        Focus the note list",
		"  Ctrl+E        Open the editor",
		"  Ctrl+P        Open the markdown preview",
		"",
		"Preview:",
		"  Ctrl+J / K    Scroll down/up",
		"",
		"Search (note list):",
		"  /             Start fuzzy search",
		"  Enter / Esc   Keep filter / leave search",
		"  Ctrl+T        Cycle match strictness",
		"",
		"Other:",
		"  ?             Show this help dialog",
		"  Ctrl+Q        Quit",
	}
}

// scrollUp scrolls the help content up by one line
func (h *HelpDialog) scrollUp() {
	if h.scrollOffset > 0 {
		h.scrollOffset--
	}
}

// scrollDown scrolls the help content down by one line
func (h *HelpDialog) scrollDown() {
	helpLines := h.getHelpContent()
	// Use a reasonable estimate for visible lines, will be overridden during draw
	visibleLines := 15
	maxScroll := len(helpLines) - visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if h.scrollOffset < maxScroll {
		h.scrollOffset++
	}
}

// scrollToBottom scrolls to the bottom of the help content
func (h *HelpDialog) scrollToBottom() {
	helpLines := h.getHelpContent()
	visibleLines := 15
	maxScroll := len(helpLines) - visibleLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	h.scrollOffset = maxScroll
}
