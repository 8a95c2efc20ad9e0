package theme

import "github.com/gdamore/tcell/v2"

// Catppuccin Macchiato palette
var (
	Rosewater = tcell.NewRGBColor(244, 219, 214) // #f4dbd6
	Flamingo  = tcell.NewRGBColor(240, 198, 198) // #f0c6c6
	Pink      = tcell.NewRGBColor(245, 189, 230) // #f5bde6
	Mauve     = tcell.NewRGBColor(198, 160, 246) // #c6a0f6
	Red       = tcell.NewRGBColor(237, 135, 150) // #ed8796
	Maroon    = tcell.NewRGBColor(238, 153, 160) // #ee99a0
	Peach     = tcell.NewRGBColor(245, 169, 127) // #f5a97f
	Yellow    = tcell.NewRGBColor(238, 212, 159) // #eed49f
	Green     = tcell.NewRGBColor(166, 218, 149) // #a6da95
	Teal      = tcell.NewRGBColor(139, 213, 202) // #8bd5ca
	Sky       = tcell.NewRGBColor(145, 215, 227) // #91d7e3
	Sapphire  = tcell.NewRGBColor(125, 196, 228) // #7dc4e4
	Blue      = tcell.NewRGBColor(138, 173, 244) // #8aadf4
	Lavender  = tcell.NewRGBColor(183, 189, 248) // #b7bdf8
	Text      = tcell.NewRGBColor(202, 211, 245) // #cad3f5
	Subtext1  = tcell.NewRGBColor(184, 192, 224) // #b8c0e0
	Subtext0  = tcell.NewRGBColor(165, 173, 203) // #a5adcb
	Overlay2  = tcell.NewRGBColor(147, 154, 183) // #939ab7
	Overlay1  = tcell.NewRGBColor(128, 135, 162) // #8087a2
	Overlay0  = tcell.NewRGBColor(110, 115, 141) // #6e738d
	Surface2  = tcell.NewRGBColor(91, 96, 120)   // #5b6078
	Surface1  = tcell.NewRGBColor(73, 77, 100)   // #494d64
	Surface0  = tcell.NewRGBColor(54, 58, 79)    // #363a4f
	Base      = tcell.NewRGBColor(36, 39, 58)    // #24273a
	Mantle    = tcell.NewRGBColor(30, 32, 48)    // #1e2030
	Crust     = tcell.NewRGBColor(24, 25, 38)    // #181926
)

// AppTheme maps a palette onto the UI's color roles.
type AppTheme struct {
	Base    tcell.Color // default background
	Mantle  tcell.Color // darker background
	Surface tcell.Color // selection and dialog background
	Text    tcell.Color // default foreground
	Dim     tcell.Color // de-emphasized foreground
	Accent  tcell.Color
	Green   tcell.Color
	Yellow  tcell.Color
	Red     tcell.Color
	Maroon  tcell.Color
	Teal    tcell.Color
}

// Dark is the default theme, built on the Macchiato palette.
func Dark() AppTheme {
	return AppTheme{
		Base:    Base,
		Mantle:  Mantle,
		Surface: Surface0,
		Text:    Text,
		Dim:     Overlay0,
		Accent:  Blue,
		Green:   Green,
		Yellow:  Yellow,
		Red:     Red,
		Maroon:  Maroon,
		Teal:    Teal,
	}
}

// Light is a variant for light terminal backgrounds (Catppuccin Latte).
func Light() AppTheme {
	return AppTheme{
		Base:    tcell.NewRGBColor(239, 241, 245), // #eff1f5
		Mantle:  tcell.NewRGBColor(230, 233, 239), // #e6e9ef
		Surface: tcell.NewRGBColor(204, 208, 218), // #ccd0da
		Text:    tcell.NewRGBColor(76, 79, 105),   // #4c4f69
		Dim:     tcell.NewRGBColor(156, 160, 176), // #9ca0b0
		Accent:  tcell.NewRGBColor(30, 102, 245),  // #1e66f5
		Green:   tcell.NewRGBColor(64, 160, 43),   // #40a02b
		Yellow:  tcell.NewRGBColor(223, 142, 29),  // #df8e1d
		Red:     tcell.NewRGBColor(210, 15, 57),   // #d20f39
		Maroon:  tcell.NewRGBColor(230, 69, 83),   // #e64553
		Teal:    tcell.NewRGBColor(23, 146, 153),  // #179299
	}
}

// ByName returns the theme matching a settings value, defaulting to dark.
func ByName(name string) AppTheme {
	if name == "light" {
		return Light()
	}
	return Dark()
}
