package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the race renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)

// Semantic colors for race elements.
const (
	ColorWall    = ColorWhite
	ColorVehicle = ColorRed
	ColorNose    = ColorGreen
	ColorRay     = ColorGray
	ColorHit     = ColorOrange
	ColorHUD     = ColorCyan
)
