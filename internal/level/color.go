package level

import "strings"

// ColorNames lists the stone colours a level palette may use. A stone's
// colour is its index in this list.
var ColorNames = []string{"red", "green", "blue", "yellow", "purple", "cyan", "orange"}

// DefaultPaletteSize is the number of colours used when a level names none.
const DefaultPaletteSize = 5

// ParseColor converts a colour name or its short form to a colour index.
func ParseColor(s string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return 0, true
	case "green", "g":
		return 1, true
	case "blue", "b":
		return 2, true
	case "yellow", "y":
		return 3, true
	case "purple", "p":
		return 4, true
	case "cyan", "c":
		return 5, true
	case "orange", "o":
		return 6, true
	default:
		return 0, false
	}
}

// ColorName returns the name of a colour index.
func ColorName(c int) string {
	if c < 0 || c >= len(ColorNames) {
		return "unknown"
	}
	return ColorNames[c]
}

// DefaultPalette returns the first n colours.
func DefaultPalette(n int) []int {
	if n <= 0 || n > len(ColorNames) {
		n = DefaultPaletteSize
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
