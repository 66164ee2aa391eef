package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the board and the particle field.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	ColorDimCyan
)
