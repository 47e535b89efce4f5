// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
)

// MapColors holds all the color definitions needed to render the static grid background.
type MapColors struct {
	BackgroundColor color.RGBA
	CellColor       color.RGBA
	CellStrokeColor color.RGBA
	AoeCellColor    color.RGBA
	TextColor       color.RGBA
	PausedColor     color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
