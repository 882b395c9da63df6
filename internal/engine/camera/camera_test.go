package camera

import (
	"testing"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestPositionDistance(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 1, Y: 2, Z: 3}
	if got := c.Position().Distance(c.Center); !near(got, c.Distance) {
		t.Errorf("eye is %g from center, want %g", got, c.Distance)
	}
}

func TestFrontView(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw, c.Distance = 0, 0, 10
	p := c.Position()
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, 10) {
		t.Errorf("front view eye = %+v, want (0,0,10)", p)
	}

	// The center lands at the origin of view space, straight ahead.
	v := c.ViewMatrix().TransformVec3(c.Center)
	if !near(v.X, 0) || !near(v.Y, 0) || !near(v.Z, -10) {
		t.Errorf("center in view space = %+v", v)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %g, want %g", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch = %g, want %g", c.Pitch, c.MinPitch)
	}

	yaw := c.Yaw
	c.HandleDrag(100, 0)
	if c.Yaw >= yaw {
		t.Error("dragging right should decrease yaw")
	}
}

func TestHandleZoom(t *testing.T) {
	c := NewOrbitCamera()
	d := c.Distance
	c.HandleZoom(1)
	if c.Distance >= d {
		t.Error("positive zoom should move closer")
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %g, want min %g", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %g, want max %g", c.Distance, c.MaxDistance)
	}
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.Vec3{X: -2, Y: 0, Z: -1}, math.Vec3{X: 6, Y: 4, Z: 1})

	if want := (math.Vec3{X: 2, Y: 2, Z: 0}); c.Center != want {
		t.Errorf("center = %+v, want %+v", c.Center, want)
	}

	small := *c
	small.FitToBounds(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	if small.Distance >= c.Distance {
		t.Error("smaller bounds should frame closer")
	}
	if c.Pitch != DefaultPitch || c.Yaw != DefaultYaw {
		t.Error("FitToBounds should keep orientation")
	}
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera()
	want := *c
	c.HandleDrag(50, 50)
	c.HandleZoom(2)
	c.Center = math.Vec3{X: 5}
	c.Reset()
	if *c != want {
		t.Errorf("Reset = %+v, want %+v", *c, want)
	}
}
