// Package curve turns dense point sequences into continuously evaluable paths.
package curve

import (
	gomath "math"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// DefaultTangentDelta is the central-difference step, in parameter space,
// used by Tangent.
const DefaultTangentDelta = 0.001

// PathCurve is a parametric path defined for t in [0, 1].
type PathCurve interface {
	// Position returns the point at parameter t.
	Position(t float32) math.Vec3
	// Tangent returns the unit direction of travel at parameter t.
	Tangent(t float32) math.Vec3
}

// Polyline is a PathCurve that linearly interpolates between evenly
// parameterized points: point i sits at t = i/(N-1).
//
// The caller must not pass coincident consecutive points. Their tangent has no
// direction and Tangent returns the zero vector there.
type Polyline struct {
	points []math.Vec3
	delta  float32
}

// NewPolyline wraps points as a curve. It returns nil for fewer than two
// points. The slice is retained and must not be modified afterwards.
func NewPolyline(points []math.Vec3) *Polyline {
	return NewPolylineWithDelta(points, DefaultTangentDelta)
}

// NewPolylineWithDelta is like NewPolyline with a custom tangent step.
func NewPolylineWithDelta(points []math.Vec3, delta float32) *Polyline {
	if len(points) < 2 {
		return nil
	}
	if delta <= 0 {
		delta = DefaultTangentDelta
	}
	return &Polyline{points: points, delta: delta}
}

// Position returns the point at parameter t, clamped to [0, 1].
func (p *Polyline) Position(t float32) math.Vec3 {
	t = clamp01(t)
	last := len(p.points) - 1

	i := t * float32(last)
	lo := int(gomath.Floor(float64(i)))
	hi := int(gomath.Ceil(float64(i)))
	if hi > last {
		hi = last
	}
	if lo > last {
		lo = last
	}
	if lo == hi {
		return p.points[lo]
	}
	return p.points[lo].Lerp(p.points[hi], i-float32(lo))
}

// Tangent returns the normalized central difference around t. Both sample
// points are clamped into [0, 1], so the difference is one-sided at the ends.
func (p *Polyline) Tangent(t float32) math.Vec3 {
	a := p.Position(clamp01(t - p.delta))
	b := p.Position(clamp01(t + p.delta))
	return b.Sub(a).Normalize()
}

// Points returns the underlying points. Callers must treat them as read-only.
func (p *Polyline) Points() []math.Vec3 {
	return p.points
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.points)
}

// Length returns the sum of distances between consecutive points.
func Length(points []math.Vec3) float32 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += float64(points[i].Distance(points[i-1]))
	}
	return float32(total)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
