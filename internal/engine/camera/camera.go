// Package camera provides the orbit camera the studio views ribbons with.
package camera

import (
	gomath "math"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// Default framing. Ribbons are normalized to about DefaultSpan units across
// in the XY plane and extend along Z, so the camera starts off-axis.
const (
	DefaultSpan  = 8.0
	DefaultPitch = 0.45
	DefaultYaw   = 0.6
	DefaultFOV   = gomath.Pi / 4
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians around +Y, 0 looks along -Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	FOV       float32
	Near, Far float32
}

// NewOrbitCamera creates a camera framing a ribbon of DefaultSpan.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:     1,
		MaxDistance:     200,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             DefaultFOV,
		Near:            0.05,
		Far:             500,
	}
	c.Reset()
	return c
}

// Reset restores the default framing around the origin.
func (c *OrbitCamera) Reset() {
	c.Center = math.Vec3{}
	c.Distance = fitDistance(DefaultSpan, c.FOV)
	c.Pitch = DefaultPitch
	c.Yaw = DefaultYaw
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	offset := math.Vec3{
		X: c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Distance * float32(gomath.Sin(pitch)),
		Z: c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.UnitY)
}

// ProjectionMatrix returns the perspective projection for a viewport with
// the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = min(max(c.Pitch, c.MinPitch), c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta. Positive deltas
// move closer.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// FitToBounds centers the camera on a bounding box and backs off far enough
// for the whole box to fit the field of view. Orientation is kept.
func (c *OrbitCamera) FitToBounds(lo, hi math.Vec3) {
	c.Center = lo.Add(hi).Scale(0.5)
	radius := hi.Sub(lo).Length() / 2
	c.Distance = min(max(fitDistance(2*radius, c.FOV), c.MinDistance), c.MaxDistance)
}

// fitDistance is the distance at which span fills the vertical field of
// view, with a small margin.
func fitDistance(span, fov float32) float32 {
	if fov <= 0 {
		fov = DefaultFOV
	}
	return 1.2 * (span / 2) / float32(gomath.Tan(float64(fov)/2))
}
