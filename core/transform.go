package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the avatar's world state for one tick
// Written only by the character controller, handed to readers by value
type Transform struct {
	Position mgl64.Vec3 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Velocity mgl64.Vec3 `json:"velocity"`
}

// Ground returns the position projected on the floor plane as (x, z)
func (t Transform) Ground() mgl64.Vec2 {
	return mgl64.Vec2{t.Position.X(), t.Position.Z()}
}

// Speed is the ground-plane speed
func (t Transform) Speed() float64 {
	return mgl64.Vec2{t.Velocity.X(), t.Velocity.Z()}.Len()
}
