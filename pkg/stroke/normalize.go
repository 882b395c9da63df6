// Package stroke prepares raw pointer strokes for curve evaluation: it maps
// them into a fixed-size render frame and resamples them into dense, evenly
// spaced points.
package stroke

import (
	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// DefaultTargetSpan is the size, in world units, of the larger side of a
// normalized stroke's bounding box.
const DefaultTargetSpan = 8.0

// Bounds returns the axis-aligned bounding box of points.
func Bounds(points []math.Vec2) (lo, hi math.Vec2) {
	if len(points) == 0 {
		return math.Vec2{}, math.Vec2{}
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// Normalize centers points on the origin, scales them uniformly so the larger
// bounding-box side equals targetSpan, and flips Y from top-down screen space
// into the bottom-up render frame. Z is always 0.
//
// Returns nil for fewer than two points or when every point coincides.
func Normalize(points []math.Vec2, targetSpan float32) []math.Vec3 {
	if len(points) < 2 {
		return nil
	}
	if targetSpan <= 0 {
		targetSpan = DefaultTargetSpan
	}

	lo, hi := Bounds(points)
	extent := max(hi.X-lo.X, hi.Y-lo.Y)
	if extent == 0 {
		return nil
	}

	scale := targetSpan / extent
	cx := (lo.X + hi.X) / 2
	cy := (lo.Y + hi.Y) / 2

	out := make([]math.Vec3, len(points))
	for i, p := range points {
		out[i] = math.Vec3{
			X: (p.X - cx) * scale,
			Y: -(p.Y - cy) * scale,
		}
	}
	return out
}

// Dedupe drops points closer than minSpacing to the previously kept point.
// The final input point always survives, replacing the last kept point when
// the two are too close.
func Dedupe(points []math.Vec3, minSpacing float32) []math.Vec3 {
	if len(points) == 0 {
		return nil
	}
	out := make([]math.Vec3, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		if p.Distance(out[len(out)-1]) >= minSpacing {
			out = append(out, p)
		}
	}
	if last := points[len(points)-1]; out[len(out)-1] != last {
		if len(out) > 1 {
			out[len(out)-1] = last
		} else if last.Distance(out[0]) > 0 {
			out = append(out, last)
		}
	}
	return out
}
