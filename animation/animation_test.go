package animation

import (
	"math"
	"testing"
	"time"
)

const (
	walk = "CharacterArmature|Walk"
	idle = "CharacterArmature|Idle"
)

func TestMixerCrossFade(t *testing.T) {
	m := NewMixer(walk, idle)
	m.Reset(idle)
	m.Play(idle)

	if name, ok := m.Dominant(); !ok || name != idle {
		t.Fatalf("dominant = %q, want idle", name)
	}

	m.Reset(walk)
	m.FadeIn(walk, 500*time.Millisecond)
	m.Play(walk)
	m.FadeOut(idle, 500*time.Millisecond)

	if m.Weight(walk) != 0 || m.Weight(idle) != 1 {
		t.Fatalf("fade start weights walk=%v idle=%v", m.Weight(walk), m.Weight(idle))
	}

	m.Update(0.25)
	if math.Abs(m.Weight(walk)-0.5) > 1e-9 || math.Abs(m.Weight(idle)-0.5) > 1e-9 {
		t.Errorf("midpoint weights walk=%v idle=%v", m.Weight(walk), m.Weight(idle))
	}

	m.Update(1)
	if m.Weight(walk) != 1 || m.Weight(idle) != 0 {
		t.Errorf("end weights walk=%v idle=%v", m.Weight(walk), m.Weight(idle))
	}
	if name, _ := m.Dominant(); name != walk {
		t.Errorf("dominant = %q, want walk", name)
	}
}

func TestMixerUnknownClipIsNoop(t *testing.T) {
	m := NewMixer(idle)
	m.Play("missing")
	m.FadeIn("missing", time.Second)
	m.FadeOut("missing", time.Second)
	m.Reset("missing")
	m.Update(1)

	if m.Weight("missing") != 0 || m.Playing("missing") {
		t.Error("unknown clip should have no state")
	}
	if len(m.States()) != 1 {
		t.Errorf("states = %v", m.States())
	}
}

func TestMixerResetRewinds(t *testing.T) {
	m := NewMixer(walk)
	m.Play(walk)
	m.Update(2)
	if m.States()[0].Time != 2 {
		t.Fatalf("time = %v, want 2", m.States()[0].Time)
	}
	m.Reset(walk)
	s := m.States()[0]
	if s.Time != 0 || s.Playing || s.Weight != 1 {
		t.Errorf("reset state = %+v", s)
	}
}
