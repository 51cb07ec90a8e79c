package core

// Color represents a foreground color for a screen cell.
// The terminal host maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the playfield renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
)

var rowColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta}

// RowColor returns the color for a brick row, cycling through the palette.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return rowColors[row%len(rowColors)]
}
