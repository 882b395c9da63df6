package ribbon

// Surface describes how a segment is drawn. The generator never interprets
// Texture; it is a handle owned by whoever supplied the surface.
type Surface struct {
	// Texture is a renderer texture handle. Zero means untextured.
	Texture uint32
	// Tile identifies which tile of the provider's set this is.
	Tile int
	// Layer is the frame within an animated tile.
	Layer int
	// Color tints the texture, or fills the segment when Texture is zero.
	Color [4]float32
	// DoubleSided disables back-face culling.
	DoubleSided bool
}

// IsZero reports whether s carries neither a texture nor a color.
func (s Surface) IsZero() bool {
	return s.Texture == 0 && s.Color == [4]float32{}
}

// PlaceholderSurface is used when a provider has nothing for a segment.
var PlaceholderSurface = Surface{
	Tile:  -1,
	Color: [4]float32{0.7, 0.7, 0.72, 1},
}

// TileProvider supplies a surface per segment index. Implementations must
// always return; a missing tile is reported as a zero Surface.
type TileProvider interface {
	Surface(segment int) Surface
}

// TileProviderFunc adapts a function to TileProvider.
type TileProviderFunc func(segment int) Surface

// Surface implements TileProvider.
func (f TileProviderFunc) Surface(segment int) Surface {
	return f(segment)
}

// surfaceFor asks p for a surface, substituting the placeholder, and forces
// double-sided rendering.
func surfaceFor(p TileProvider, segment int) Surface {
	s := PlaceholderSurface
	if p != nil {
		if got := p.Surface(segment); !got.IsZero() {
			s = got
		}
	}
	s.DoubleSided = true
	return s
}
