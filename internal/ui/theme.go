package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/notemark/notemark/internal/theme"
)

// UI color mappings, populated from the active theme
var (
	// Background colors
	ColorBg          tcell.Color
	ColorBgDark      tcell.Color
	ColorBgHighlight tcell.Color

	// Foreground colors
	ColorFg     tcell.Color
	ColorFgDark tcell.Color

	// Accent colors
	ColorAccent tcell.Color
	ColorGreen  tcell.Color
	ColorYellow tcell.Color
	ColorRed    tcell.Color
	ColorMaroon tcell.Color
	ColorTeal   tcell.Color

	// UI-specific color mappings
	ColorSelection tcell.Color // Selected item background
	ColorBorder    tcell.Color // Pane borders
	ColorTitle     tcell.Color // Pane titles
	ColorHighlight tcell.Color // Search highlights
	ColorError     tcell.Color // Error messages
	ColorDimmed    tcell.Color // Dimmed text
	ColorBright    tcell.Color // Bright text
)

func init() {
	applyTheme(theme.Dark())
}

// applyTheme rebinds the color mappings. Called once at startup from the
// settings, before the screen draws anything.
func applyTheme(t theme.AppTheme) {
	ColorBg = t.Base
	ColorBgDark = t.Mantle
	ColorBgHighlight = t.Surface
	ColorFg = t.Text
	ColorFgDark = t.Dim
	ColorAccent = t.Accent
	ColorGreen = t.Green
	ColorYellow = t.Yellow
	ColorRed = t.Red
	ColorMaroon = t.Maroon
	ColorTeal = t.Teal

	ColorSelection = ColorBgHighlight
	ColorBorder = ColorTeal
	ColorTitle = ColorMaroon
	ColorHighlight = ColorYellow
	ColorError = ColorRed
	ColorDimmed = ColorFgDark
	ColorBright = ColorFg
}

// borderStyle returns the frame style for a pane, brightened when the pane
// has focus.
func borderStyle(focused bool) tcell.Style {
	style := tcell.StyleDefault.Background(ColorBg).Foreground(ColorBorder)
	if focused {
		return style.Bold(true)
	}
	return style.Foreground(ColorFgDark)
}
