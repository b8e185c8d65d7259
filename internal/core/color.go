package core

// Color is the foreground color of a screen cell.
type Color uint8

// The palette covers the piece colors plus the chrome around the board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightWhite

	numColors
)

// ansi holds the 256-color palette index of each Color.
var ansi = [numColors]int{
	ColorDefault:     -1,
	ColorRed:         1,
	ColorGreen:       2,
	ColorYellow:      3,
	ColorBlue:        4,
	ColorMagenta:     5,
	ColorCyan:        6,
	ColorWhite:       7,
	ColorOrange:      208,
	ColorGray:        245,
	ColorBrightWhite: 15,
}

// ANSI returns the 256-color palette index for c, or -1 for the terminal default.
func (c Color) ANSI() int {
	if c >= numColors {
		return -1
	}
	return ansi[c]
}

// Palette returns every color except ColorDefault.
func Palette() []Color {
	colors := make([]Color, 0, numColors-1)
	for c := ColorDefault + 1; c < numColors; c++ {
		colors = append(colors, c)
	}
	return colors
}
