package tiles

import (
	"fmt"
	"image"

	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

// Uploader turns a stack of equally sized frames into a layered texture and
// returns its handle. DeleteLayers frees handles it returned earlier.
type Uploader interface {
	UploadLayers(frames []*image.RGBA) (uint32, error)
	DeleteLayers(textures []uint32)
}

// Params configures a procedural tile set.
type Params struct {
	Count      int
	Frames     int
	FPS        float64
	Size       int
	HueOffset  float64
	Saturation float64
	Value      float64
}

// Animated assigns tile s % Count to segment s and advances every tile
// through its frames over time.
type Animated struct {
	textures []uint32
	frames   int
	fps      float64
	time     float64
}

// NewAnimated paints the tile set and uploads one layered texture per tile.
func NewAnimated(up Uploader, p Params) (*Animated, error) {
	if p.Count <= 0 {
		return nil, fmt.Errorf("tile count %d must be positive", p.Count)
	}
	if p.Frames <= 0 {
		p.Frames = 1
	}

	palette := Palette(p.Count, p.HueOffset, p.Saturation, p.Value)
	a := &Animated{
		textures: make([]uint32, 0, p.Count),
		frames:   p.Frames,
		fps:      p.FPS,
	}
	for i, base := range palette {
		tex, err := up.UploadLayers(PaintFrames(base, p.Size, p.Frames))
		if err != nil {
			if len(a.textures) > 0 {
				up.DeleteLayers(a.textures)
			}
			return nil, fmt.Errorf("uploading tile %d: %w", i, err)
		}
		a.textures = append(a.textures, tex)
	}
	return a, nil
}

// Textures returns the uploaded texture handles in tile order.
func (a *Animated) Textures() []uint32 { return a.textures }

// SetTime sets the animation clock in seconds.
func (a *Animated) SetTime(t float64) { a.time = t }

// Frame returns the layer currently shown.
func (a *Animated) Frame() int { return FrameAt(a.time, a.fps, a.frames) }

// Surface implements ribbon.TileProvider. A tile whose upload produced no
// handle is reported missing.
func (a *Animated) Surface(segment int) ribbon.Surface {
	if len(a.textures) == 0 || segment < 0 {
		return ribbon.Surface{}
	}
	tile := segment % len(a.textures)
	if a.textures[tile] == 0 {
		return ribbon.Surface{}
	}
	return ribbon.Surface{
		Texture: a.textures[tile],
		Tile:    tile,
		Layer:   a.Frame(),
		Color:   [4]float32{1, 1, 1, 1},
	}
}

// Solid colors segments from a palette without textures. It needs no GPU and
// serves headless tools and setups where texture upload failed.
type Solid struct {
	colors [][4]float32
}

// NewSolid builds a flat-color provider with the same hues NewAnimated uses.
func NewSolid(p Params) *Solid {
	s := &Solid{}
	for _, c := range Palette(p.Count, p.HueOffset, p.Saturation, p.Value) {
		s.colors = append(s.colors, vec4(c))
	}
	return s
}

// Surface implements ribbon.TileProvider.
func (s *Solid) Surface(segment int) ribbon.Surface {
	if len(s.colors) == 0 || segment < 0 {
		return ribbon.Surface{}
	}
	tile := segment % len(s.colors)
	return ribbon.Surface{Tile: tile, Color: s.colors[tile]}
}
