package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value onto an ANSI palette entry.
type Color uint8

// Palette used by the invaders renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// styleColors cycles formation row styles through a fixed set of colors.
var styleColors = []Color{ColorBrightGreen, ColorCyan, ColorMagenta, ColorYellow}

// StyleColor returns the color used for a formation style index.
func StyleColor(style int) Color {
	if style < 0 {
		style = -style
	}
	return styleColors[style%len(styleColors)]
}
