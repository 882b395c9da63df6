package tiles

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"
)

// Pattern parameters. Stripes is an integer so a tile wraps cleanly in U and
// the last frame leads back into the first.
const (
	stripes     = 3
	borderWidth = 0.08
	highlight   = 0.35
	shadow      = 0.45
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// Paint renders one animation frame of a tile: diagonal bands in base color
// drifting along U, framed by darker rails along both ribbon edges.
func Paint(base colorful.Color, size, frame, frames int) *image.RGBA {
	if size <= 0 {
		size = 1
	}
	if frames <= 0 {
		frames = 1
	}
	light := toRGBA(base.BlendLab(white, highlight))
	dark := toRGBA(base.BlendLab(black, shadow))
	fill := toRGBA(base)

	shift := float64(frame%frames) / float64(frames)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		v := (float64(y) + 0.5) / float64(size)
		for x := 0; x < size; x++ {
			u := (float64(x) + 0.5) / float64(size)
			switch {
			case v < borderWidth || v > 1-borderWidth:
				img.SetRGBA(x, y, dark)
			case fract((u+v*0.5/stripes-shift)*stripes) < 0.5:
				img.SetRGBA(x, y, light)
			default:
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// PaintFrames renders every frame of a tile.
func PaintFrames(base colorful.Color, size, frames int) []*image.RGBA {
	if frames <= 0 {
		frames = 1
	}
	out := make([]*image.RGBA, frames)
	for f := range out {
		out[f] = Paint(base, size, f, frames)
	}
	return out
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func fract(x float64) float64 {
	return x - gomath.Floor(x)
}
