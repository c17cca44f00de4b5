package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/animation"
	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/overlay"
	"github.com/lixenwraith/portfolio-walk/parameter"
)

// Frame is everything a renderer needs for one tick
type Frame struct {
	Seq       uint64                `json:"seq"`
	Elapsed   float64               `json:"elapsed"`
	Avatar    core.Transform        `json:"avatar"`
	Animation string                `json:"animation"`
	Clips     []animation.ClipState `json:"clips"`
	Camera    CameraFrame           `json:"camera"`
	Intent    input.Intent          `json:"intent"`
	Mode      string                `json:"mode"`
	Active    int                   `json:"active"`
	Exhibits  []ExhibitFrame        `json:"exhibits"`
	Panel     *overlay.PanelView    `json:"panel,omitempty"`
	Help      *overlay.HelpView     `json:"help,omitempty"`
	Loading   LoadingFrame          `json:"loading"`
	Joystick  *JoystickFrame        `json:"joystick,omitempty"`
}

// CameraFrame is the rig pose
type CameraFrame struct {
	Position    mgl64.Vec3 `json:"position"`
	Target      mgl64.Vec3 `json:"target"`
	FieldOfView float64    `json:"fov"`
	View        mgl64.Mat4 `json:"view"`
}

// ExhibitFrame carries render-only idle motion; proximity always uses the registry position
type ExhibitFrame struct {
	Index  int     `json:"index"`
	Height float64 `json:"height"`
	Yaw    float64 `json:"yaw"`
}

// LoadingFrame is the loading screen state
type LoadingFrame struct {
	Active   bool    `json:"active"`
	Progress float64 `json:"progress"`
}

// JoystickFrame is the pad state, present only in mobile mode once revealed
type JoystickFrame struct {
	Center  mgl64.Vec2 `json:"center"`
	Knob    mgl64.Vec2 `json:"knob"`
	Size    float64    `json:"size"`
	Active  bool       `json:"active"`
	Opacity float64    `json:"opacity"`
}

// ExhibitMotion returns the hover height and spin yaw of an exhibit at time t seconds
func ExhibitMotion(baseYaw, t float64) (height, yaw float64) {
	height = parameter.ExhibitHoverBase + math.Sin(t*parameter.ExhibitHoverRate)*parameter.ExhibitHoverAmplitude
	yaw = baseYaw + t*parameter.ExhibitSpinRate
	return height, yaw
}

// Frame snapshots the world after the last tick
func (g *Game) Frame() Frame {
	t := g.elapsed.Seconds()
	s := g.store.Snapshot()

	f := Frame{
		Seq:     g.pipeline.Frames(),
		Elapsed: t,
		Avatar:  g.transform,
		Clips:   g.mixer.States(),
		Camera: CameraFrame{
			Position:    g.camera.Position(),
			Target:      g.camera.Target(),
			FieldOfView: g.camera.FieldOfView(),
			View:        g.camera.View(),
		},
		Intent:   g.intent,
		Mode:     g.input.Mode().String(),
		Active:   g.proximity.Active(),
		Exhibits: make([]ExhibitFrame, g.registry.Len()),
		Loading: LoadingFrame{
			Active:   s.Loading,
			Progress: s.LoadingProgress,
		},
	}
	f.Animation, _ = g.mixer.Dominant()

	for i := range f.Exhibits {
		h, yaw := ExhibitMotion(g.registry.At(i).Rotation.Y(), t)
		f.Exhibits[i] = ExhibitFrame{Index: i, Height: h, Yaw: yaw}
	}

	if v, ok := g.panel.View(); ok {
		f.Panel = &v
	}
	if v, ok := g.help.View(); ok {
		f.Help = &v
	}

	js := g.input.Joystick()
	if g.input.Mode() == input.DeviceMobile && js.Revealed() {
		f.Joystick = &JoystickFrame{
			Center:  js.Center(),
			Knob:    js.Knob(),
			Size:    js.Size(),
			Active:  js.Active(),
			Opacity: js.Opacity(),
		}
	}
	return f
}
