// Package sketch records pointer drags into strokes of screen-space points.
package sketch

import (
	"github.com/google/uuid"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// Stroke is one completed press-drag-release gesture.
type Stroke struct {
	ID     string
	Points []math.Vec2
}

// Recorder accumulates the stroke being drawn. Points closer than MinSpacing
// pixels to the previous one are dropped, except the release point which
// always ends the stroke.
type Recorder struct {
	MinSpacing float32

	// OnStroke, if set, is called with every completed stroke that has at
	// least two points.
	OnStroke func(Stroke)

	current *Stroke
	last    *Stroke
}

// NewRecorder creates a recorder with the given minimum pixel spacing.
func NewRecorder(minSpacing float32) *Recorder {
	return &Recorder{MinSpacing: minSpacing}
}

// Drawing reports whether a stroke is in progress.
func (r *Recorder) Drawing() bool { return r.current != nil }

// Press starts a new stroke at p, abandoning any unfinished one.
func (r *Recorder) Press(p math.Vec2) {
	r.current = &Stroke{
		ID:     uuid.NewString(),
		Points: []math.Vec2{p},
	}
}

// Drag extends the current stroke. It is ignored when no stroke is active.
func (r *Recorder) Drag(p math.Vec2) {
	if r.current == nil {
		return
	}
	pts := r.current.Points
	if pts[len(pts)-1].Distance(p) < r.MinSpacing {
		return
	}
	r.current.Points = append(pts, p)
}

// Release ends the current stroke at p. It returns the stroke and true when
// the stroke has at least two distinct points.
func (r *Recorder) Release(p math.Vec2) (Stroke, bool) {
	if r.current == nil {
		return Stroke{}, false
	}
	s := *r.current
	r.current = nil

	if s.Points[len(s.Points)-1] != p {
		s.Points = append(s.Points, p)
	}
	if len(s.Points) < 2 {
		return Stroke{}, false
	}

	r.last = &s
	if r.OnStroke != nil {
		r.OnStroke(s)
	}
	return s, true
}

// Cancel drops the stroke in progress.
func (r *Recorder) Cancel() { r.current = nil }

// Current returns the points of the stroke in progress.
func (r *Recorder) Current() []math.Vec2 {
	if r.current == nil {
		return nil
	}
	return r.current.Points
}

// Last returns the most recently completed stroke.
func (r *Recorder) Last() (Stroke, bool) {
	if r.last == nil {
		return Stroke{}, false
	}
	return *r.last, true
}

// Clear forgets both the current and the last stroke.
func (r *Recorder) Clear() {
	r.current = nil
	r.last = nil
}
