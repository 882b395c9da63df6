package ribbon

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/ribbon-studio/pkg/math"
	"github.com/Faultbox/ribbon-studio/pkg/stroke"
)

// Scene receives segments as they are created and destroyed.
type Scene interface {
	Add(seg *Segment)
	Remove(seg *Segment)
}

// NopScene discards segments. It is used when no scene is attached.
type NopScene struct{}

// Add implements Scene.
func (NopScene) Add(*Segment) {}

// Remove implements Scene.
func (NopScene) Remove(*Segment) {}

// Ribbon owns the segments of one drawn path and rebuilds them on demand.
// It is not safe for concurrent use; builds are meant to run once per frame
// on the render thread.
type Ribbon struct {
	id    string
	opts  Options
	tiles TileProvider
	scene Scene
	log   *zap.Logger

	points   []math.Vec3
	width    float32
	time     float64
	segments []*Segment
}

// New creates a ribbon. tiles and scene may be nil.
func New(opts Options, tiles TileProvider, scene Scene) *Ribbon {
	if scene == nil {
		scene = NopScene{}
	}
	return &Ribbon{
		id:    uuid.NewString(),
		opts:  opts,
		tiles: tiles,
		scene: scene,
		log:   zap.NewNop(),
	}
}

// ID returns the ribbon's session identifier.
func (r *Ribbon) ID() string { return r.id }

// SetLogger attaches a logger. A nil logger disables logging.
func (r *Ribbon) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l.With(zap.String("ribbon", r.id))
}

// Options returns the current build options.
func (r *Ribbon) Options() Options { return r.opts }

// SetOptions replaces the build options. They apply from the next build or
// Update.
func (r *Ribbon) SetOptions(opts Options) { r.opts = opts }

// SetTiles replaces the tile provider.
func (r *Ribbon) SetTiles(tiles TileProvider) { r.tiles = tiles }

// Points returns the points of the last successful build.
func (r *Ribbon) Points() []math.Vec3 { return r.points }

// Width returns the width of the last successful build.
func (r *Ribbon) Width() float32 { return r.width }

// Time returns the animation time of the last build.
func (r *Ribbon) Time() float64 { return r.time }

// Segments returns the current segments in path order.
func (r *Ribbon) Segments() []*Segment { return r.segments }

// BuildFromPoints replaces the ribbon with one generated along points.
//
// Fewer than two points is a no-op that returns nil and leaves the current
// segments in place.
func (r *Ribbon) BuildFromPoints(points []math.Vec3, width float32, time float64) []*Segment {
	segs := r.rebuild(slices.Clone(points), width, time)
	if segs == nil {
		r.log.Debug("ribbon build skipped",
			zap.Int("points", len(points)),
			zap.Float32("width", width),
		)
		return nil
	}
	r.log.Debug("ribbon built",
		zap.Int("points", len(points)),
		zap.Float32("width", width),
		zap.Int("segments", len(segs)),
		zap.Int("vertices_per_segment", segs[0].VertexCount()),
	)
	return segs
}

// BuildFromStroke prepares a raw screen-space stroke and builds from it.
func (r *Ribbon) BuildFromStroke(raw []math.Vec2, width float32, time float64, prep stroke.Options) []*Segment {
	return r.BuildFromPoints(stroke.Prepare(raw, prep), width, time)
}

// Update rebuilds from the last points and width at a new time. It does
// nothing before the first successful build.
func (r *Ribbon) Update(time float64) []*Segment {
	if r.points == nil {
		return nil
	}
	return r.rebuild(r.points, r.width, time)
}

// Dispose removes every segment from the scene, releases its geometry and
// forgets the stored input, so Update becomes a no-op.
func (r *Ribbon) Dispose() {
	r.release()
	r.points = nil
	r.width = 0
}

func (r *Ribbon) rebuild(points []math.Vec3, width float32, time float64) []*Segment {
	if len(points) < 2 || width <= 0 {
		return nil
	}

	r.release()
	segs := Generate(points, width, time, r.opts, r.tiles)
	r.points = points
	r.width = width
	r.time = time
	r.segments = segs
	for _, seg := range segs {
		seg.Visible = true
		r.scene.Add(seg)
	}
	return segs
}

func (r *Ribbon) release() {
	for _, seg := range r.segments {
		r.scene.Remove(seg)
		seg.Dispose()
	}
	r.segments = nil
}
