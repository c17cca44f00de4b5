package character

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/parameter"
)

const frame = time.Second / 60

// recordingPlayer logs every call as "op:clip"
type recordingPlayer struct {
	calls []string
}

func (p *recordingPlayer) Play(clip string) { p.calls = append(p.calls, "play:"+clip) }
func (p *recordingPlayer) FadeIn(clip string, _ time.Duration) {
	p.calls = append(p.calls, "fadein:"+clip)
}
func (p *recordingPlayer) FadeOut(clip string, _ time.Duration) {
	p.calls = append(p.calls, "fadeout:"+clip)
}
func (p *recordingPlayer) Reset(clip string) { p.calls = append(p.calls, "reset:"+clip) }

func (p *recordingPlayer) take() []string {
	c := p.calls
	p.calls = nil
	return c
}

func TestSpawnPlaysIdle(t *testing.T) {
	p := &recordingPlayer{}
	c := NewController(DefaultConfig(), p)

	if got := c.Transform().Position; got != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("spawn = %v, want (0,1,0)", got)
	}
	want := []string{"reset:" + parameter.ClipIdle, "play:" + parameter.ClipIdle}
	if got := p.take(); !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestForwardMovesNegativeZ(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	var tr core.Transform
	for i := 0; i < 60; i++ {
		tr = c.Tick(input.Intent{Forward: 1}, frame)
	}
	if tr.Position.Z() >= 0 {
		t.Errorf("z = %v, want negative", tr.Position.Z())
	}
	if tr.Position.X() != 0 || tr.Position.Y() != 1 {
		t.Errorf("position drifted off axis: %v", tr.Position)
	}
	if math.Abs(tr.Speed()-parameter.AvatarTopSpeed) > 0.01 {
		t.Errorf("speed = %v, want about %v", tr.Speed(), parameter.AvatarTopSpeed)
	}
	// Facing -Z is yaw pi, approached from 0
	if tr.Yaw <= 0 || tr.Yaw > math.Pi {
		t.Errorf("yaw = %v, want in (0, pi]", tr.Yaw)
	}
}

func TestVelocityLerpPerTick(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	tr := c.Tick(input.Intent{Right: 1}, frame)
	if math.Abs(tr.Velocity.X()-0.5) > 1e-12 {
		t.Errorf("vx after one tick = %v, want 2.5*0.2", tr.Velocity.X())
	}
	// Per-tick mode ignores dt for the blend
	c2 := NewController(DefaultConfig(), nil)
	tr2 := c2.Tick(input.Intent{Right: 1}, 3*frame)
	if tr2.Velocity.X() != tr.Velocity.X() {
		t.Errorf("per-tick blend depends on dt: %v vs %v", tr2.Velocity.X(), tr.Velocity.X())
	}
}

func TestTimeConstantSmoothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = core.SmoothingTimeConstant

	one := NewController(cfg, nil)
	one.Tick(input.Intent{Right: 1}, 2*frame)

	two := NewController(cfg, nil)
	two.Tick(input.Intent{Right: 1}, frame)
	two.Tick(input.Intent{Right: 1}, frame)

	if d := math.Abs(one.Transform().Velocity.X() - two.Transform().Velocity.X()); d > 1e-9 {
		t.Errorf("velocity differs by %v across frame splits", d)
	}
}

func TestDiagonalNormalised(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	var tr core.Transform
	for i := 0; i < 200; i++ {
		tr = c.Tick(input.Intent{Forward: 1, Right: 1}, frame)
	}
	if s := tr.Speed(); math.Abs(s-parameter.AvatarTopSpeed) > 1e-6 {
		t.Errorf("diagonal speed = %v, want %v", s, parameter.AvatarTopSpeed)
	}
}

func TestPositionClamped(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	var tr core.Transform
	for i := 0; i < 2000; i++ {
		tr = c.Tick(input.Intent{Forward: -1, Right: -1}, frame)
		if math.Abs(tr.Position.X()) > 10 || math.Abs(tr.Position.Z()) > 10 {
			t.Fatalf("tick %d escaped bounds: %v", i, tr.Position)
		}
	}
	if tr.Position.X() != -10 || tr.Position.Z() != 10 {
		t.Errorf("final = %v, want (-10, 1, 10)", tr.Position)
	}
}

func TestAnimationEdgesOnly(t *testing.T) {
	p := &recordingPlayer{}
	c := NewController(DefaultConfig(), p)
	p.take()

	walk, idle := parameter.ClipWalk, parameter.ClipIdle

	c.Tick(input.Intent{Forward: 1}, frame)
	wantStart := []string{"reset:" + walk, "fadein:" + walk, "play:" + walk, "fadeout:" + idle}
	if got := p.take(); !slices.Equal(got, wantStart) {
		t.Errorf("start edge calls = %v, want %v", got, wantStart)
	}

	for i := 0; i < 10; i++ {
		c.Tick(input.Intent{Forward: 1, Right: 0.5}, frame)
	}
	if got := p.take(); len(got) != 0 {
		t.Errorf("steady movement triggered %v", got)
	}
	if !c.Moving() {
		t.Error("controller should be moving")
	}

	c.Tick(input.Intent{}, frame)
	wantStop := []string{"fadeout:" + walk, "reset:" + idle, "fadein:" + idle, "play:" + idle}
	if got := p.take(); !slices.Equal(got, wantStop) {
		t.Errorf("stop edge calls = %v, want %v", got, wantStop)
	}

	c.Tick(input.Intent{}, frame)
	if got := p.take(); len(got) != 0 {
		t.Errorf("steady idle triggered %v", got)
	}
}

func TestYawHeldWhenIdle(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	for i := 0; i < 5; i++ {
		c.Tick(input.Intent{Right: 1}, frame)
	}
	yaw := c.Transform().Yaw
	c.Tick(input.Intent{}, frame)
	if c.Transform().Yaw != yaw {
		t.Error("yaw must not change without intent")
	}
}
