package ribbon

import (
	gomath "math"

	"github.com/Faultbox/ribbon-studio/pkg/curve"
	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// lengthTolerance is the relative slack on length/width that absorbs float32
// rounding, so an 8-unit path at width 1 yields 8 segments and not 9.
const lengthTolerance = 1e-5

// SegmentCount returns ceil(length(points)/width), at least 1.
func SegmentCount(points []math.Vec3, width float32) int {
	if width <= 0 {
		return 1
	}
	ratio := float64(curve.Length(points)) / float64(width)
	n := int(gomath.Ceil(ratio * (1 - lengthTolerance)))
	return max(n, 1)
}

// Generate builds the ribbon segments for points at the given width and
// animation time. It returns nil for fewer than two points or a non-positive
// width.
//
// Consecutive points must not coincide (see stroke.Prepare); tangents there
// have no direction and the geometry degenerates.
func Generate(points []math.Vec3, width float32, time float64, opts Options, tiles TileProvider) []*Segment {
	c := curve.NewPolyline(points)
	if c == nil || width <= 0 {
		return nil
	}
	return GenerateFromCurve(c, SegmentCount(points, width), width, time, opts, tiles)
}

// GenerateFromCurve builds count segments along an arbitrary curve.
func GenerateFromCurve(c curve.PathCurve, count int, width float32, time float64, opts Options, tiles TileProvider) []*Segment {
	if c == nil || count < 1 || width <= 0 {
		return nil
	}
	opts = opts.withDefaults()

	b := &segmentBuild{
		curve:  c,
		field:  ComputeNormalField(c, count*opts.PointsPerSegment+1, opts.NormalBlend),
		count:  count,
		width:  width,
		time:   time,
		opts:   opts,
		maxPts: opts.MaxPoints(),
	}

	segments := make([]*Segment, count)
	for s := 0; s < count; s++ {
		seg := b.build(s)
		seg.Surface = surfaceFor(tiles, s)
		segments[s] = seg
	}
	return segments
}
