package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// --- Scalar ---

// Lerp blends a toward b by t, unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}

// ClampSymmetric limits v to [-bound, bound]
func ClampSymmetric(v, bound float64) float64 {
	return mgl64.Clamp(v, -bound, bound)
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Heading returns the yaw facing a ground direction, 0 facing +Z
func Heading(x, z float64) float64 {
	return math.Atan2(x, z)
}

// --- 2D ---

// ClampMagnitude2 limits a 2D vector to maxMag while preserving direction
// Vectors with a non-finite length collapse to zero
func ClampMagnitude2(v mgl64.Vec2, maxMag float64) mgl64.Vec2 {
	mag := v.Len()
	if !Finite(mag) {
		return mgl64.Vec2{}
	}
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Mul(maxMag / mag)
}
