package core

import "fmt"

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
	ColorOrange
	ColorGray

	// ColorTransparent marks a fill that must not touch the target cells.
	ColorTransparent
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// ParsePlayerColor maps a configured player color name to a Color.
// Only the four player colors are accepted.
func ParsePlayerColor(name string) (Color, error) {
	switch name {
	case "blue":
		return ColorBlue, nil
	case "green":
		return ColorGreen, nil
	case "red":
		return ColorRed, nil
	case "yellow":
		return ColorYellow, nil
	}
	return ColorDefault, fmt.Errorf("core: unknown player color %q", name)
}
