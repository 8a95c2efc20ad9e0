package ui

import (
	"github.com/gdamore/tcell/v2"
)

type ConfirmationDialog struct {
	visible bool
	title   string
	message string
	onYes   func()
	onNo    func()
}

func NewConfirmationDialog() *ConfirmationDialog {
	return &ConfirmationDialog{
		visible: false,
	}
}

func (c *ConfirmationDialog) Show(title, message string, onYes, onNo func()) {
	c.visible = true
	c.title = title
	c.message = message
	c.onYes = onYes
	c.onNo = onNo
}

func (c *ConfirmationDialog) Hide() {
	c.visible = false
	c.title = ""
	c.message = ""
	c.onYes = nil
	c.onNo = nil
}

func (c *ConfirmationDialog) IsVisible() bool {
	return c.visible
}

func (c *ConfirmationDialog) Draw(s tcell.Screen) {
	if !c.visible {
		return
	}

	w, screenHeight := s.Size()

	dialogWidth := 50
	dialogHeight := 7
	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2

	// Ensure dialog fits on screen
	if startX < 0 {
		startX = 0
		dialogWidth = w
	}
	if startY < 0 {
		startY = 0
		dialogHeight = screenHeight
	}
	if startX+dialogWidth > w {
		dialogWidth = w - startX
	}
	if startY+dialogHeight > screenHeight {
		dialogHeight = screenHeight - startY
	}

	area := Rect{X: startX, Y: startY, W: dialogWidth, H: dialogHeight}
	dialogStyle := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorFg)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			s.SetContent(x, y, ' ', nil, dialogStyle)
		}
	}

	borderSt := tcell.StyleDefault.Background(ColorBgHighlight).Foreground(ColorError)
	titleStyle := borderSt.Bold(true)
	drawBorder(s, area, borderSt, c.title, titleStyle)

	// Message
	messageLines := wrapText(c.message, dialogWidth-4)
	for i, line := range messageLines {
		if i+2 >= dialogHeight-2 {
			break
		}
		drawText(s, startX+2, startY+2+i, dialogStyle, line)
	}

	// Buttons
	buttonStyle := dialogStyle.Bold(true)
	buttonsY := startY + dialogHeight - 2
	yButtonX := startX + dialogWidth/2 - 6
	drawText(s, yButtonX, buttonsY, buttonStyle, "[Y]es")
	nButtonX := startX + dialogWidth/2 + 2
	drawText(s, nButtonX, buttonsY, buttonStyle, "[N]o")
}

func (c *ConfirmationDialog) HandleKey(ev *tcell.EventKey) bool {
	if !c.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if c.onNo != nil {
			c.onNo()
		}
		c.Hide()
		return true
	case tcell.KeyEnter:
		if c.onYes != nil {
			c.onYes()
		}
		c.Hide()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			if c.onYes != nil {
				c.onYes()
			}
			c.Hide()
			return true
		case 'n', 'N':
			if c.onNo != nil {
				c.onNo()
			}
			c.Hide()
			return true
		}
	}

	return true // Consume all other keys when visible
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	for len(text) > width {
		// Find the last space before width
		breakPoint := width
		for i := width - 1; i >= 0; i-- {
			if text[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, text[:breakPoint])
		text = text[breakPoint:]
		if len(text) > 0 && text[0] == ' ' {
			text = text[1:] // Remove leading space
		}
	}

	if len(text) > 0 {
		lines = append(lines, text)
	}

	return lines
}
