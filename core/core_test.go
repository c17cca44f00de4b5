package core

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/portfolio-walk/parameter"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if _, err := ParseKind("hobbies"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := ParseKind(""); err == nil {
		t.Error("expected error for empty kind")
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("projects")); err != nil {
		t.Fatal(err)
	}
	if k != KindProjects {
		t.Errorf("got %v, want projects", k)
	}
	if err := k.UnmarshalText(nil); err != nil || k != KindNone {
		t.Errorf("empty text should decode to KindNone, got %v, %v", k, err)
	}
	if KindNone.Valid() {
		t.Error("KindNone must not be valid")
	}
}

func TestSmoothingPerTickIgnoresDelta(t *testing.T) {
	for _, dt := range []time.Duration{time.Millisecond, parameter.ReferenceFrame, 100 * time.Millisecond} {
		if got := SmoothingPerTick.Factor(0.2, dt); got != 0.2 {
			t.Errorf("dt=%v: factor %v, want 0.2", dt, got)
		}
	}
}

func TestSmoothingTimeConstant(t *testing.T) {
	if got := SmoothingTimeConstant.Factor(0.2, parameter.ReferenceFrame); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("reference frame factor %v, want 0.2", got)
	}

	// Two half-frames must converge exactly as far as one full frame
	half := SmoothingTimeConstant.Factor(0.2, parameter.ReferenceFrame/2)
	remaining := (1 - half) * (1 - half)
	if math.Abs(remaining-0.8) > 1e-6 {
		t.Errorf("two half frames leave %v, want 0.8", remaining)
	}

	if got := SmoothingTimeConstant.Factor(0.2, 0); got != 0 {
		t.Errorf("zero dt factor %v, want 0", got)
	}
}

func TestParseSmoothing(t *testing.T) {
	if s, err := ParseSmoothing(""); err != nil || s != SmoothingPerTick {
		t.Errorf("default: %v, %v", s, err)
	}
	if s, err := ParseSmoothing("time-constant"); err != nil || s != SmoothingTimeConstant {
		t.Errorf("time-constant: %v, %v", s, err)
	}
	if _, err := ParseSmoothing("fast"); err == nil {
		t.Error("expected error")
	}
}

func TestTransformGround(t *testing.T) {
	tr := Transform{}
	tr.Position[0], tr.Position[1], tr.Position[2] = 3, 1, -4
	g := tr.Ground()
	if g.X() != 3 || g.Y() != -4 {
		t.Errorf("ground = %v", g)
	}
	tr.Velocity[0], tr.Velocity[2] = 3, 4
	if tr.Speed() != 5 {
		t.Errorf("speed = %v, want 5", tr.Speed())
	}
}
