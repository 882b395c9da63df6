// Package tiles supplies per-segment ribbon surfaces: procedurally painted,
// animated tile textures and a flat-color fallback.
package tiles

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette returns count colors with evenly spaced hues, starting at
// hueOffset degrees.
func Palette(count int, hueOffset, saturation, value float64) []colorful.Color {
	if count <= 0 {
		return nil
	}
	colors := make([]colorful.Color, count)
	step := 360.0 / float64(count)
	for i := range colors {
		h := gomath.Mod(hueOffset+float64(i)*step, 360)
		if h < 0 {
			h += 360
		}
		colors[i] = colorful.Hsv(h, saturation, value).Clamped()
	}
	return colors
}

// vec4 converts a color to an opaque float RGBA tint.
func vec4(c colorful.Color) [4]float32 {
	c = c.Clamped()
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), 1}
}
