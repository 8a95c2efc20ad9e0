package markdown

import "github.com/notemark/notemark/internal/theme"

var (
	styleH1 = Style{FG: theme.Peach, Bold: true, Underline: true}
	styleH2 = Style{FG: theme.Yellow, Bold: true, Underline: true}
	styleH3 = Style{FG: theme.Green, Bold: true, Italic: true}
	styleH4 = Style{FG: theme.Teal, Italic: true}
	styleH5 = Style{FG: theme.Teal, Italic: true}
	styleH6 = Style{FG: theme.Teal, Italic: true}

	styleCode          = Style{FG: theme.Flamingo}
	styleLink          = Style{FG: theme.Blue, Underline: true}
	styleEmphasis      = Style{FG: theme.Subtext1, Italic: true}
	styleStrong        = Style{FG: theme.Lavender, Bold: true}
	styleStrikethrough = Style{FG: theme.Maroon, Strikethrough: true}
	styleListIndex     = Style{FG: theme.Sapphire}
)

func headingStyle(level int) Style {
	switch level {
	case 1:
		return styleH1
	case 2:
		return styleH2
	case 3:
		return styleH3
	case 4:
		return styleH4
	case 5:
		return styleH5
	default:
		return styleH6
	}
}
