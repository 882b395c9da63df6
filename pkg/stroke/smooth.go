package stroke

import (
	gomath "math"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// DefaultSamples is the number of points Smooth produces.
const DefaultSamples = 120

// stepsPerSpan is how densely each spline span is evaluated before the
// arc-length resampling pass.
const stepsPerSpan = 16

// centripetal is the Catmull-Rom knot exponent. 0.5 never self-intersects or
// cusps within a span.
const centripetal = 0.5

// Smooth fits a centripetal Catmull-Rom spline through points and resamples
// it into exactly samples points evenly spaced by arc length. The first and
// last output points equal the first and last input points.
//
// Consecutive input points must be distinct; run Dedupe first. Returns nil for
// fewer than two points.
func Smooth(points []math.Vec3, samples int) []math.Vec3 {
	if len(points) < 2 {
		return nil
	}
	if samples < 2 {
		samples = DefaultSamples
	}
	return resample(densify(points), samples)
}

// densify evaluates every span of the spline. End tangents come from phantom
// points mirrored through the first and last points.
func densify(points []math.Vec3) []math.Vec3 {
	n := len(points)
	first := points[0].Scale(2).Sub(points[1])
	last := points[n-1].Scale(2).Sub(points[n-2])

	at := func(i int) math.Vec3 {
		switch {
		case i < 0:
			return first
		case i >= n:
			return last
		}
		return points[i]
	}

	dense := make([]math.Vec3, 0, (n-1)*stepsPerSpan+1)
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		for s := 0; s < stepsPerSpan; s++ {
			u := float32(s) / stepsPerSpan
			dense = append(dense, catmullRom(p0, p1, p2, p3, u))
		}
	}
	return append(dense, points[n-1])
}

// catmullRom evaluates the span p1→p2 at u in [0, 1] using the Barry-Goldman
// pyramid with centripetal knot spacing.
func catmullRom(p0, p1, p2, p3 math.Vec3, u float32) math.Vec3 {
	t0 := float32(0)
	t1 := t0 + knot(p0, p1)
	t2 := t1 + knot(p1, p2)
	t3 := t2 + knot(p2, p3)

	t := t1 + (t2-t1)*u

	a1 := blend(p0, p1, t0, t1, t)
	a2 := blend(p1, p2, t1, t2, t)
	a3 := blend(p2, p3, t2, t3, t)
	b1 := blend(a1, a2, t0, t2, t)
	b2 := blend(a2, a3, t1, t3, t)
	return blend(b1, b2, t1, t2, t)
}

func knot(a, b math.Vec3) float32 {
	return float32(gomath.Pow(float64(a.Distance(b)), centripetal))
}

// blend interpolates a (at ta) and b (at tb) at t. A zero-width interval
// collapses to a.
func blend(a, b math.Vec3, ta, tb, t float32) math.Vec3 {
	if tb == ta {
		return a
	}
	return a.Lerp(b, (t-ta)/(tb-ta))
}

// resample walks the polyline and emits samples points at equal arc-length
// intervals.
func resample(points []math.Vec3, samples int) []math.Vec3 {
	cum := make([]float32, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i].Distance(points[i-1])
	}
	total := cum[len(cum)-1]
	if total == 0 {
		return nil
	}

	out := make([]math.Vec3, samples)
	out[0] = points[0]
	out[samples-1] = points[len(points)-1]

	j := 1
	for k := 1; k < samples-1; k++ {
		target := total * float32(k) / float32(samples-1)
		for j < len(cum)-1 && cum[j] < target {
			j++
		}
		span := cum[j] - cum[j-1]
		if span == 0 {
			out[k] = points[j]
			continue
		}
		out[k] = points[j-1].Lerp(points[j], (target-cum[j-1])/span)
	}
	return out
}
