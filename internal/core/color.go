package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque display attribute carried by bodies and screen cells.
// It holds a "#rrggbb" hex string; the empty string means the terminal default.
// Game logic never inspects it.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault   Color = ""
	ColorWhite     Color = "#ffffff"
	ColorRed       Color = "#ff0000"
	ColorYellow    Color = "#ffff00"
	ColorLightBlue Color = "#add8e6"
	ColorGray      Color = "#555555"
)

// RGBA converts the color to 8-bit channels. Unparseable colors map to white.
func (c Color) RGBA() (r, g, b, a uint8) {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return 0xff, 0xff, 0xff, 0xff
	}
	r8, g8, b8 := parsed.RGB255()
	return r8, g8, b8, 0xff
}

// Valid reports whether the color is the default or a parseable hex string.
func (c Color) Valid() bool {
	if c == ColorDefault {
		return true
	}
	_, err := colorful.Hex(string(c))
	return err == nil
}

// Rainbow returns n fully saturated colors, one per band, starting at red and
// sweeping the hue by sweep/n degrees per band.
func Rainbow(n int, sweep float64) []Color {
	if n <= 0 {
		return nil
	}
	colors := make([]Color, n)
	step := sweep / float64(n)
	for i := range n {
		hue := step * float64(i)
		colors[i] = Color(colorful.Hsl(hue, 1, 0.5).Clamped().Hex())
	}
	return colors
}
