package overlay

import (
	"time"

	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/input"
)

// JoystickReveal shows the pad a short delay after mobile mode is entered
type JoystickReveal struct {
	timers   *engine.Timers
	joystick *input.Joystick
	delay    time.Duration
	pending  engine.TimerID
}

// NewJoystickReveal binds the reveal to a pad
func NewJoystickReveal(timers *engine.Timers, joystick *input.Joystick, delay time.Duration) *JoystickReveal {
	return &JoystickReveal{timers: timers, joystick: joystick, delay: delay}
}

// SetMobile arms the reveal on entering mobile and hides the pad on leaving
func (r *JoystickReveal) SetMobile(mobile bool) {
	r.Stop()
	if !mobile {
		r.joystick.Hide()
		return
	}
	if r.joystick.Revealed() {
		return
	}
	r.pending = r.timers.After(r.delay, func() {
		r.pending = 0
		r.joystick.Reveal()
	})
}

// Pending reports whether a reveal is scheduled
func (r *JoystickReveal) Pending() bool { return r.pending != 0 }

// Stop cancels a scheduled reveal
func (r *JoystickReveal) Stop() {
	if r.pending != 0 {
		r.timers.Cancel(r.pending)
		r.pending = 0
	}
}
