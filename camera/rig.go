// Package camera follows the avatar with a trailing, smoothed rig
package camera

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/vmath"
)

// Config tunes the rig
type Config struct {
	LookOffset   mgl64.Vec3
	FollowOffset mgl64.Vec3
	LookLerp     float64
	FollowLerp   float64
	Start        mgl64.Vec3
	StartTarget  mgl64.Vec3
	FieldOfView  float64
	Smoothing    core.Smoothing
}

// DefaultConfig returns the tuned rig parameters
func DefaultConfig() Config {
	return Config{
		LookOffset:   mgl64.Vec3{0, parameter.CameraLookHeight, 0},
		FollowOffset: mgl64.Vec3{0, parameter.CameraHeight, parameter.CameraTrail},
		LookLerp:     parameter.CameraLookLerp,
		FollowLerp:   parameter.CameraFollowLerp,
		Start:        mgl64.Vec3{parameter.CameraStartX, parameter.CameraStartY, parameter.CameraStartZ},
		StartTarget:  mgl64.Vec3{parameter.AvatarSpawnX, parameter.AvatarSpawnY, parameter.AvatarSpawnZ},
		FieldOfView:  parameter.CameraFieldOfView,
		Smoothing:    core.SmoothingPerTick,
	}
}

// Rig reads the avatar transform and never writes it
type Rig struct {
	cfg      Config
	position mgl64.Vec3
	target   mgl64.Vec3
}

// NewRig creates a rig at its starting pose
func NewRig(cfg Config) *Rig {
	return &Rig{
		cfg:      cfg,
		position: cfg.Start,
		target:   cfg.StartTarget,
	}
}

// Update eases target and position toward the avatar, nil transform is a no-op
func (r *Rig) Update(t *core.Transform, dt time.Duration) {
	if t == nil {
		return
	}
	lookAt := t.Position.Add(r.cfg.LookOffset)
	r.target = vmath.V3Lerp(r.target, lookAt, r.cfg.Smoothing.Factor(r.cfg.LookLerp, dt))

	follow := t.Position.Add(r.cfg.FollowOffset)
	r.position = vmath.V3Lerp(r.position, follow, r.cfg.Smoothing.Factor(r.cfg.FollowLerp, dt))
}

// Position returns the camera eye
func (r *Rig) Position() mgl64.Vec3 { return r.position }

// Target returns the smoothed look-at point
func (r *Rig) Target() mgl64.Vec3 { return r.target }

// FieldOfView returns the vertical field of view in degrees
func (r *Rig) FieldOfView() float64 { return r.cfg.FieldOfView }

// View returns the right-handed view matrix looking from Position to Target
// A degenerate pose, eye on target or looking straight along up, yields identity
func (r *Rig) View() mgl64.Mat4 {
	dir := r.target.Sub(r.position)
	if dir.Len() < 1e-9 || dir.Cross(mgl64.Vec3{0, 1, 0}).Len() < 1e-9 {
		return mgl64.Ident4()
	}
	return mgl64.LookAtV(r.position, r.target, mgl64.Vec3{0, 1, 0})
}
