// Package character moves the avatar from movement intent
package character

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/animation"
	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/vmath"
)

// Config tunes the controller
type Config struct {
	TopSpeed     float64
	Bound        float64
	VelocityLerp float64
	YawLerp      float64
	Spawn        mgl64.Vec3
	WalkClip     string
	IdleClip     string
	Fade         time.Duration
	Smoothing    core.Smoothing
}

// DefaultConfig returns the tuned avatar parameters
func DefaultConfig() Config {
	return Config{
		TopSpeed:     parameter.AvatarTopSpeed,
		Bound:        parameter.AvatarBound,
		VelocityLerp: parameter.AvatarVelocityLerp,
		YawLerp:      parameter.AvatarYawLerp,
		Spawn:        mgl64.Vec3{parameter.AvatarSpawnX, parameter.AvatarSpawnY, parameter.AvatarSpawnZ},
		WalkClip:     parameter.ClipWalk,
		IdleClip:     parameter.ClipIdle,
		Fade:         parameter.AnimationFade,
		Smoothing:    core.SmoothingPerTick,
	}
}

// Controller is the single writer of the avatar transform
type Controller struct {
	cfg       Config
	player    animation.Player
	transform core.Transform
	moving    bool
}

// NewController places the avatar at the spawn point and starts the idle clip
// A nil player disables animation
func NewController(cfg Config, player animation.Player) *Controller {
	c := &Controller{
		cfg:    cfg,
		player: player,
		transform: core.Transform{
			Position: cfg.Spawn,
		},
	}
	if c.player != nil {
		c.player.Reset(cfg.IdleClip)
		c.player.Play(cfg.IdleClip)
	}
	return c
}

// Tick integrates one frame of movement and returns the new transform by value
func (c *Controller) Tick(intent input.Intent, dt time.Duration) core.Transform {
	intent = intent.Clamp()
	t := &c.transform

	// Screen-forward is -Z
	dir := vmath.V3NormalizeSafe(mgl64.Vec3{intent.Right, 0, -intent.Forward})
	moving := dir.Len() > 0

	target := dir.Mul(c.cfg.TopSpeed)
	t.Velocity = vmath.V3Lerp(t.Velocity, target, c.cfg.Smoothing.Factor(c.cfg.VelocityLerp, dt))

	sec := dt.Seconds()
	t.Position[0] = vmath.ClampSymmetric(t.Position[0]+t.Velocity[0]*sec, c.cfg.Bound)
	t.Position[2] = vmath.ClampSymmetric(t.Position[2]+t.Velocity[2]*sec, c.cfg.Bound)

	if moving {
		heading := vmath.Heading(dir.X(), dir.Z())
		t.Yaw = vmath.Lerp(t.Yaw, heading, c.cfg.Smoothing.Factor(c.cfg.YawLerp, dt))
	}

	if moving != c.moving {
		c.moving = moving
		c.switchClip(moving)
	}

	return c.transform
}

func (c *Controller) switchClip(moving bool) {
	if c.player == nil {
		return
	}
	if moving {
		c.player.Reset(c.cfg.WalkClip)
		c.player.FadeIn(c.cfg.WalkClip, c.cfg.Fade)
		c.player.Play(c.cfg.WalkClip)
		c.player.FadeOut(c.cfg.IdleClip, c.cfg.Fade)
		return
	}
	c.player.FadeOut(c.cfg.WalkClip, c.cfg.Fade)
	c.player.Reset(c.cfg.IdleClip)
	c.player.FadeIn(c.cfg.IdleClip, c.cfg.Fade)
	c.player.Play(c.cfg.IdleClip)
}

// Transform returns a copy of the current transform
func (c *Controller) Transform() core.Transform {
	return c.transform
}

// Moving reports whether the last tick had nonzero intent
func (c *Controller) Moving() bool {
	return c.moving
}
