package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RenameDialog is a centered single-line input used for renaming and naming
// notes.
type RenameDialog struct {
	visible  bool
	title    string
	buffer   string
	onSubmit func(string)
}

func NewRenameDialog() *RenameDialog {
	return &RenameDialog{}
}

// Show opens the dialog pre-filled with initial text. onSubmit is called with
// the final text when the user presses Enter.
func (d *RenameDialog) Show(title, initial string, onSubmit func(string)) {
	d.visible = true
	d.title = title
	d.buffer = initial
	d.onSubmit = onSubmit
}

func (d *RenameDialog) Hide() {
	d.visible = false
	d.buffer = ""
	d.onSubmit = nil
}

func (d *RenameDialog) IsVisible() bool {
	return d.visible
}

func (d *RenameDialog) HandleKey(ev *tcell.EventKey) bool {
	if !d.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		d.Hide()
		return true
	case tcell.KeyEnter:
		submit := d.onSubmit
		text := d.buffer
		d.Hide()
		if submit != nil && text != "" {
			submit(text)
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(d.buffer) > 0 {
			runes := []rune(d.buffer)
			d.buffer = string(runes[:len(runes)-1])
		}
		return true
	case tcell.KeyRune:
		d.buffer += string(ev.Rune())
		return true
	}

	return true // Consume all other keys when visible
}

func (d *RenameDialog) Draw(s tcell.Screen) {
	if !d.visible {
		return
	}

	w, h := s.Size()
	dialogWidth := 50
	dialogHeight := 3
	if dialogWidth > w {
		dialogWidth = w
	}
	startX := (w - dialogWidth) / 2
	startY := (h - dialogHeight) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	area := Rect{X: startX, Y: startY, W: dialogWidth, H: dialogHeight}
	bgStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorYellow)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			s.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	titleStyle := bgStyle.Bold(true)
	drawBorder(s, area, bgStyle, d.title, titleStyle)

	input := "> " + d.buffer
	maxInput := dialogWidth - 4
	if maxInput > 0 && len(input) > maxInput {
		input = input[len(input)-maxInput:]
	}
	inputStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg).Bold(true)
	drawText(s, area.X+2, area.Y+1, inputStyle, input)
	s.ShowCursor(area.X+2+len(input), area.Y+1)
}
