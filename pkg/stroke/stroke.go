package stroke

import (
	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// DefaultMinSpacing is the smallest distance, in normalized units, kept
// between consecutive points before smoothing.
const DefaultMinSpacing = 1e-3

// Options controls Prepare.
type Options struct {
	TargetSpan float32
	Samples    int
	MinSpacing float32
}

// DefaultOptions returns the standard preparation settings.
func DefaultOptions() Options {
	return Options{
		TargetSpan: DefaultTargetSpan,
		Samples:    DefaultSamples,
		MinSpacing: DefaultMinSpacing,
	}
}

// Prepare turns a raw screen-space stroke into dense, evenly spaced points in
// the render frame. It returns nil when the stroke is too short or collapses
// to a single point; such gestures are expected and are not errors.
func Prepare(raw []math.Vec2, opts Options) []math.Vec3 {
	pts := Normalize(raw, opts.TargetSpan)
	if len(pts) < 2 {
		return nil
	}
	pts = Dedupe(pts, opts.MinSpacing)
	if len(pts) < 2 {
		return nil
	}
	return Smooth(pts, opts.Samples)
}
