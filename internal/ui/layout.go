package ui

// Rect is a rectangular screen region.
type Rect struct {
	X, Y, W, H int
}

// Areas holds the screen regions of the two main panes. The bottom row is
// reserved for the status bar.
type Areas struct {
	NoteList Rect
	Main     Rect
}

// createLayout splits the screen horizontally, 20% for the note list and the
// rest for the editor or preview pane.
func createLayout(width, height int) Areas {
	contentHeight := height - 1
	if contentHeight < 0 {
		contentHeight = 0
	}

	listWidth := width / 5
	if listWidth < 20 && width >= 20 {
		listWidth = 20
	}
	if listWidth > width {
		listWidth = width
	}

	return Areas{
		NoteList: Rect{X: 0, Y: 0, W: listWidth, H: contentHeight},
		Main:     Rect{X: listWidth, Y: 0, W: width - listWidth, H: contentHeight},
	}
}
