package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the brick game renderer. One color per tetromino plus
// the neutral tones for settled blocks, marked rows and frames.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorGray
	ColorBrightWhite
)
