package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// HealthColor returns a red-to-yellow-to-green gradient color for a 0..100 value.
func HealthColor(value int) Color {
	switch {
	case value <= 25:
		return ColorRed
	case value <= 50:
		return ColorOrange
	case value <= 75:
		return ColorYellow
	default:
		return ColorGreen
	}
}
