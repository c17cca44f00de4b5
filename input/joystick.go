package input

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/vmath"
)

// Touch is one contact point in client coordinates
type Touch struct {
	ID int64   `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Joystick is the on-screen pad for touch devices
// Only one contact is tracked at a time, the first one to land on a revealed pad
type Joystick struct {
	center    mgl64.Vec2
	size      float64
	maxRadius float64

	revealed bool
	tracking bool
	touchID  int64

	knob   mgl64.Vec2
	intent Intent
}

// NewJoystick creates a hidden pad of the given size in pixels
// The knob travel radius is a third of the pad size
func NewJoystick(size float64) *Joystick {
	if size <= 0 {
		size = parameter.JoystickSize
	}
	return &Joystick{
		size:      size,
		maxRadius: size / 3,
	}
}

// SetCenter places the pad centre in client coordinates
func (j *Joystick) SetCenter(x, y float64) {
	j.center = mgl64.Vec2{x, y}
}

// Center returns the pad centre
func (j *Joystick) Center() mgl64.Vec2 { return j.center }

// Size returns the pad diameter
func (j *Joystick) Size() float64 { return j.size }

// MaxRadius returns the knob travel limit
func (j *Joystick) MaxRadius() float64 { return j.maxRadius }

// Reveal makes the pad accept touches
func (j *Joystick) Reveal() { j.revealed = true }

// Hide removes the pad and releases any tracked contact
func (j *Joystick) Hide() {
	j.revealed = false
	j.Reset()
}

// Revealed reports whether the pad accepts touches
func (j *Joystick) Revealed() bool { return j.revealed }

// Active reports whether a contact is being tracked
func (j *Joystick) Active() bool { return j.tracking }

// TouchID returns the tracked contact identifier
func (j *Joystick) TouchID() (int64, bool) { return j.touchID, j.tracking }

// Knob returns the knob offset from the centre, within MaxRadius
func (j *Joystick) Knob() mgl64.Vec2 { return j.knob }

// Opacity returns the pad alpha for rendering
func (j *Joystick) Opacity() float64 {
	if j.tracking {
		return parameter.JoystickOpacityActive
	}
	return parameter.JoystickOpacityIdle
}

// Intent returns the current joystick request
func (j *Joystick) Intent() Intent { return j.intent }

// TouchStart begins tracking the first changed contact when idle
// Starts while a contact is tracked, or before reveal, are ignored
func (j *Joystick) TouchStart(changed []Touch) bool {
	if !j.revealed || j.tracking || len(changed) == 0 {
		return false
	}
	t := changed[0]
	j.tracking = true
	j.touchID = t.ID
	j.track(t)
	return true
}

// TouchMove updates the knob from the tracked contact, others are ignored
func (j *Joystick) TouchMove(changed []Touch) bool {
	t, ok := j.find(changed)
	if !ok {
		return false
	}
	j.track(t)
	return true
}

// TouchEnd releases the pad when the tracked contact lifts
func (j *Joystick) TouchEnd(changed []Touch) bool {
	if _, ok := j.find(changed); !ok {
		return false
	}
	j.Reset()
	return true
}

// TouchCancel behaves as TouchEnd
func (j *Joystick) TouchCancel(changed []Touch) bool {
	return j.TouchEnd(changed)
}

// Reset drops the tracked contact and zeroes knob and intent
func (j *Joystick) Reset() {
	j.tracking = false
	j.touchID = 0
	j.knob = mgl64.Vec2{}
	j.intent = Intent{}
}

func (j *Joystick) find(changed []Touch) (Touch, bool) {
	if !j.tracking {
		return Touch{}, false
	}
	for _, t := range changed {
		if t.ID == j.touchID {
			return t, true
		}
	}
	return Touch{}, false
}

func (j *Joystick) track(t Touch) {
	delta := mgl64.Vec2{t.X, t.Y}.Sub(j.center)
	j.knob = vmath.ClampMagnitude2(delta, j.maxRadius)
	if j.maxRadius <= 0 {
		j.intent = Intent{}
		return
	}
	// Screen y grows downward, dragging up walks forward
	j.intent = Intent{
		Forward: -j.knob.Y() / j.maxRadius,
		Right:   j.knob.X() / j.maxRadius,
	}.Clamp()
}
