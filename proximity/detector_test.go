package proximity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/parameter"
)

type fakeSink struct {
	visible bool
	shows   []string
	hides   int
}

func (s *fakeSink) ShowInfoPanel(title, _ string, _ []string, _ core.Kind, _ mgl64.Vec3) {
	s.visible = true
	s.shows = append(s.shows, title)
}

func (s *fakeSink) HideInfoPanel() {
	s.visible = false
	s.hides++
}

func (s *fakeSink) InfoPanelVisible() bool { return s.visible }

func at(x, y, z float64) *core.Transform {
	return &core.Transform{Position: mgl64.Vec3{x, y, z}}
}

func newDetector(exhibits ...exhibit.Exhibit) (*Detector, *fakeSink) {
	sink := &fakeSink{}
	return NewDetector(exhibit.NewRegistry(exhibits), sink, parameter.ProximityThreshold), sink
}

func TestShowWithinThreshold(t *testing.T) {
	d, sink := newDetector(exhibit.Exhibit{Position: mgl64.Vec3{0, 0, 0}, Kind: core.KindAbout, Title: "About"})

	tr := d.Update(at(1.5, 0, 0))
	if tr.Kind != TransitionEnter || d.Active() != 0 {
		t.Fatalf("transition = %+v, active = %d", tr, d.Active())
	}
	if len(sink.shows) != 1 || sink.shows[0] != "About" {
		t.Errorf("shows = %v", sink.shows)
	}

	for i := 0; i < 5; i++ {
		if tr := d.Update(at(1.4, 0, 0)); tr.Kind != TransitionNone {
			t.Errorf("steady update produced %v", tr.Kind)
		}
	}
	if len(sink.shows) != 1 {
		t.Errorf("show repeated: %v", sink.shows)
	}
}

func TestOutsideThresholdDoesNothing(t *testing.T) {
	d, sink := newDetector(exhibit.Exhibit{Position: mgl64.Vec3{0, 0, 0}})
	d.Update(at(5, 0, 0))
	d.Update(at(2, 0, 0)) // boundary is exclusive
	if len(sink.shows) != 0 || sink.hides != 0 || d.Active() != None {
		t.Errorf("unexpected writes: shows=%v hides=%d", sink.shows, sink.hides)
	}
}

func TestLeaveHidesOnce(t *testing.T) {
	d, sink := newDetector(exhibit.Exhibit{Position: mgl64.Vec3{0, 0, 0}})
	d.Update(at(1, 0, 0))

	tr := d.Update(at(5, 0, 0))
	if tr.Kind != TransitionLeave || !tr.Hidden {
		t.Errorf("transition = %+v", tr)
	}
	d.Update(at(6, 0, 0))
	d.Update(at(7, 0, 0))
	if sink.hides != 1 {
		t.Errorf("hides = %d, want 1", sink.hides)
	}
	if d.Active() != None {
		t.Error("active should reset")
	}
}

func TestLeaveAfterManualCloseSkipsHide(t *testing.T) {
	d, sink := newDetector(exhibit.Exhibit{Position: mgl64.Vec3{0, 0, 0}})
	d.Update(at(1, 0, 0))
	sink.visible = false // user closed the panel

	tr := d.Update(at(5, 0, 0))
	if tr.Kind != TransitionLeave || tr.Hidden || sink.hides != 0 {
		t.Errorf("transition = %+v, hides = %d", tr, sink.hides)
	}
	if d.Active() != None {
		t.Error("active should reset even without a hide")
	}

	// Re-entering shows again
	d.Update(at(1, 0, 0))
	if len(sink.shows) != 2 {
		t.Errorf("shows = %v, want 2 entries", sink.shows)
	}
}

func TestNearestWinsAndTiesKeepOrder(t *testing.T) {
	d, sink := newDetector(
		exhibit.Exhibit{Position: mgl64.Vec3{-1, 0, 0}, Title: "first"},
		exhibit.Exhibit{Position: mgl64.Vec3{1, 0, 0}, Title: "second"},
		exhibit.Exhibit{Position: mgl64.Vec3{0, 0, 0.5}, Title: "third"},
	)

	if got := d.Nearest(mgl64.Vec3{0, 0, -1}); got != 0 {
		t.Errorf("equidistant nearest = %d, want 0", got)
	}

	d.Update(at(0.9, 0, 0))
	d.Update(at(0, 0, 0.6))
	tr := d.Update(at(0, 0, 0.6))
	if tr.Kind != TransitionNone {
		t.Errorf("steady transition = %v", tr.Kind)
	}
	want := []string{"second", "third"}
	if len(sink.shows) != 2 || sink.shows[0] != want[0] || sink.shows[1] != want[1] {
		t.Errorf("shows = %v, want %v", sink.shows, want)
	}
	if sink.hides != 0 {
		t.Error("switching must not hide")
	}
}

func TestUsesFullDistance(t *testing.T) {
	d, _ := newDetector(exhibit.Exhibit{Position: mgl64.Vec3{0, 0, -8}})
	// Ground distance 1.5 but vertical offset 1.5 puts it at about 2.12
	if got := d.Nearest(mgl64.Vec3{0, 1.5, -6.5}); got != None {
		t.Errorf("nearest = %d, want none", got)
	}
}

func TestNilTransformIsNoop(t *testing.T) {
	d, sink := newDetector(exhibit.Exhibit{Position: mgl64.Vec3{0, 0, 0}})
	if tr := d.Update(nil); tr.Kind != TransitionNone {
		t.Errorf("transition = %v", tr.Kind)
	}
	if len(sink.shows) != 0 {
		t.Error("nil transform wrote to sink")
	}
}
