package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Board palette. The front end maps each to a terminal color.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightRed
	ColorBrightWhite
	ColorGray
)
