package input

import (
	"math"

	"github.com/lixenwraith/portfolio-walk/vmath"
)

// Intent is the per-tick movement request in avatar-relative axes
// Forward and Right are each in [-1,1] and the combined magnitude never exceeds 1
type Intent struct {
	Forward float64 `json:"forward"`
	Right   float64 `json:"right"`
}

// Magnitude returns the length of the intent vector
func (i Intent) Magnitude() float64 {
	return math.Hypot(i.Forward, i.Right)
}

// IsZero reports whether the intent requests no movement
func (i Intent) IsZero() bool {
	return i.Forward == 0 && i.Right == 0
}

// Clamp bounds each axis to [-1,1] and rescales the pair to unit magnitude when longer
// A non-finite axis reads as no request on that axis
func (i Intent) Clamp() Intent {
	if !vmath.Finite(i.Forward) {
		i.Forward = 0
	}
	if !vmath.Finite(i.Right) {
		i.Right = 0
	}
	c := Intent{
		Forward: vmath.Clamp(i.Forward, -1, 1),
		Right:   vmath.Clamp(i.Right, -1, 1),
	}
	if m := c.Magnitude(); m > 1 {
		c.Forward /= m
		c.Right /= m
	}
	return c
}
