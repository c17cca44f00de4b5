package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// V3Lerp blends a toward b by t component-wise
func V3Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// V3NormalizeSafe returns the unit vector, zero vector stays zero
// mgl64 Normalize divides by length and yields NaN for zero input
func V3NormalizeSafe(v mgl64.Vec3) mgl64.Vec3 {
	mag := v.Len()
	if mag == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1.0 / mag)
}

// V3Distance is the Euclidean distance between two points
func V3Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}
