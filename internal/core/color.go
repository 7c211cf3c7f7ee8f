package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// stoneColors follows the order of level colour names:
// red, green, blue, yellow, purple, cyan, orange.
var stoneColors = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
}

// StoneColor returns the screen color for a stone colour index.
// Blockers and unknown indices are drawn gray.
func StoneColor(i int) Color {
	if i < 0 || i >= len(stoneColors) {
		return ColorGray
	}
	return stoneColors[i]
}
