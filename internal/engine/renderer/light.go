package renderer

import (
	gomath "math"

	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// SunDirection converts longitude (around +Y) and latitude (elevation above
// the horizon), both in degrees, to the unit direction light travels in.
func SunDirection(longitude, latitude float64) math.Vec3 {
	lon := longitude * gomath.Pi / 180
	lat := latitude * gomath.Pi / 180

	towardSun := math.Vec3{
		X: float32(gomath.Cos(lat) * gomath.Sin(lon)),
		Y: float32(gomath.Sin(lat)),
		Z: float32(gomath.Cos(lat) * gomath.Cos(lon)),
	}
	return towardSun.Negate()
}
