package ribbon

import (
	"github.com/Faultbox/ribbon-studio/pkg/curve"
	"github.com/Faultbox/ribbon-studio/pkg/math"
)

// NormalField holds one unit normal per sample of the path, at parameters
// t = i/(len-1). It is computed once per build and only read afterwards.
type NormalField []math.Vec3

// At returns the normal for sample i, clamped to the field.
func (f NormalField) At(i int) math.Vec3 {
	if i < 0 {
		i = 0
	}
	if i >= len(f) {
		i = len(f) - 1
	}
	return f[i]
}

// ReferenceNormal returns a unit vector perpendicular to tangent, derived from
// the up axis, or from the right axis when tangent is nearly vertical.
//
// A zero tangent has no perpendicular; +Z is returned so the result is never
// the zero vector.
func ReferenceNormal(tangent math.Vec3) math.Vec3 {
	n := math.UnitY.Cross(tangent)
	if n.Length() < ParallelEpsilon {
		n = math.UnitX.Cross(tangent)
	}
	if n.Length() < ParallelEpsilon {
		return math.UnitZ
	}
	return n.Normalize()
}

// ComputeNormalField samples c at n evenly spaced parameters and propagates a
// rotation-minimizing normal along it.
//
// Each step projects the previous normal onto the plane perpendicular to the
// new tangent (tangent × prev × tangent), flips it if it points away from the
// previous normal, and blends it toward the previous normal by blend.
func ComputeNormalField(c curve.PathCurve, n int, blend float32) NormalField {
	if n < 2 {
		n = 2
	}
	field := make(NormalField, n)
	field[0] = ReferenceNormal(c.Tangent(0))

	last := float32(n - 1)
	for i := 1; i < n; i++ {
		tangent := c.Tangent(float32(i) / last)
		prev := field[i-1]

		normal := tangent.Cross(prev).Cross(tangent)
		if normal.Length() < ParallelEpsilon {
			normal = ReferenceNormal(tangent)
		}
		normal = normal.Normalize()
		if normal.Dot(prev) < 0 {
			normal = normal.Negate()
		}

		blended := normal.Lerp(prev, blend).Normalize()
		if blended == (math.Vec3{}) {
			blended = prev
		}
		field[i] = blended
	}
	return field
}
