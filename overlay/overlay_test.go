package overlay

import (
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/store"
)

func TestClassifyDetail(t *testing.T) {
	tests := []struct {
		line string
		want Detail
	}{
		{"• Built a thing", Detail{DetailBullet, "Built a thing"}},
		{"•no space", Detail{DetailBullet, "no space"}},
		{"Frontend", Detail{DetailHeader, "Frontend"}},
		{"Email: me@example.com", Detail{DetailEntry, "Email: me@example.com"}},
		{"me@example.com", Detail{DetailEntry, "me@example.com"}},
		{"GPA: 3.5", Detail{DetailEntry, "GPA: 3.5"}},
	}
	for _, tt := range tests {
		if got := ClassifyDetail(tt.line); got != tt.want {
			t.Errorf("ClassifyDetail(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestPaletteFor(t *testing.T) {
	if got := PaletteFor(core.KindProjects).Background; got != "#059669" {
		t.Errorf("projects background = %s", got)
	}
	if got := PaletteFor(core.KindNone); got != neutralPalette {
		t.Errorf("none palette = %+v", got)
	}
	for _, k := range core.Kinds() {
		if PaletteFor(k) == neutralPalette {
			t.Errorf("kind %v has no palette", k)
		}
	}
}

func show(p *InfoPanel) {
	p.ShowInfoPanel("Projects", "desc", []string{"Highlights", "• one"}, core.KindProjects, mgl64.Vec3{0, 0, -8})
}

func TestInfoPanelTwoPhaseClose(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	p := NewInfoPanel(st, timers, 300*time.Millisecond)

	if p.BeginClose() {
		t.Fatal("closing a hidden panel must be refused")
	}

	show(p)
	v, ok := p.View()
	if !ok || v.Label != "PROJECTS" || v.Details[0].Kind != DetailHeader || v.Details[1].Kind != DetailBullet {
		t.Fatalf("view = %+v", v)
	}

	if !p.BeginClose() || !p.Closing() {
		t.Fatal("close should begin")
	}
	if p.BeginClose() {
		t.Error("second BeginClose must be refused")
	}
	if v, _ := p.View(); !v.Closing {
		t.Error("view should report closing")
	}

	timers.Advance(299 * time.Millisecond)
	if !st.InfoPanelVisible() {
		t.Fatal("hidden before fade completed")
	}
	timers.Advance(time.Millisecond)
	if st.InfoPanelVisible() || p.Closing() {
		t.Error("panel should be hidden after fade")
	}
	if _, ok := p.View(); ok {
		t.Error("hidden panel has no view")
	}
}

func TestInfoPanelShowCancelsClose(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	p := NewInfoPanel(st, timers, 300*time.Millisecond)

	show(p)
	p.BeginClose()
	timers.Advance(100 * time.Millisecond)
	show(p)
	timers.Advance(time.Second)

	if !st.InfoPanelVisible() {
		t.Error("stale close hid a newly shown panel")
	}
	if timers.Len() != 0 {
		t.Errorf("pending timers = %d", timers.Len())
	}
}

func TestInfoPanelImmediateHide(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	p := NewInfoPanel(st, timers, 300*time.Millisecond)

	show(p)
	p.BeginClose()
	p.HideInfoPanel()
	if st.InfoPanelVisible() || p.Closing() || timers.Len() != 0 {
		t.Error("immediate hide should cancel the fade")
	}
}

func TestHelpLifecycle(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	h := NewHelp(st, timers, 5*time.Second, 300*time.Millisecond)

	if _, ok := h.View(); ok {
		t.Fatal("help hidden while loading")
	}
	st.SetLoading(false)

	h.Start()
	v, ok := h.View()
	if !ok || v.Collapsed || len(v.Lines) != 4 {
		t.Fatalf("view = %+v, %v", v, ok)
	}

	st.SetMobile(true)
	if v, _ := h.View(); len(v.Lines) != 3 {
		t.Errorf("mobile lines = %v", v.Lines)
	}

	timers.Advance(5 * time.Second)
	if !h.Collapsed() {
		t.Fatal("help should auto-collapse")
	}
	h.Toggle()
	if h.Collapsed() {
		t.Error("toggle should expand")
	}

	if !h.Close() {
		t.Fatal("close refused")
	}
	if _, ok := h.View(); ok {
		t.Error("closed help still drawn")
	}
	if !st.Snapshot().ShowControls {
		t.Error("store flag cleared before fade")
	}
	timers.Advance(300 * time.Millisecond)
	if st.Snapshot().ShowControls {
		t.Error("store flag not cleared after fade")
	}
}

func TestHelpStopCancelsCollapse(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	h := NewHelp(st, timers, 5*time.Second, 300*time.Millisecond)
	h.Start()
	h.Stop()
	timers.Advance(10 * time.Second)
	if h.Collapsed() {
		t.Error("collapse fired after Stop")
	}
}

func TestLoadingCompletes(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	l := NewLoading(st, timers, rand.New(rand.NewSource(1)), LoadingConfig{
		Interval: 200 * time.Millisecond,
		StepMax:  10,
		Complete: 100,
		Settle:   500 * time.Millisecond,
	})

	var progress []float64
	st.Subscribe(func(s store.State, c store.Change) {
		if c.Has(store.ChangeLoadingProgress) {
			progress = append(progress, s.LoadingProgress)
		}
	})

	l.Start()
	for i := 0; i < 1000 && st.Loading(); i++ {
		timers.Advance(100 * time.Millisecond)
	}

	if st.Loading() || !l.Done() {
		t.Fatal("loading never finished")
	}
	if len(progress) == 0 || progress[len(progress)-1] != 100 {
		t.Fatalf("progress = %v", progress)
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] < progress[i-1] || progress[i]-progress[i-1] > 10 {
			t.Errorf("step %d: %v -> %v", i, progress[i-1], progress[i])
		}
	}
	if timers.Len() != 0 {
		t.Errorf("pending timers = %d", timers.Len())
	}
}

func TestLoadingSettleDelay(t *testing.T) {
	st := store.New()
	timers := engine.NewTimers()
	l := NewLoading(st, timers, rand.New(rand.NewSource(7)), LoadingConfig{
		Interval: 200 * time.Millisecond,
		StepMax:  1000, // first step overshoots and clamps
		Complete: 100,
		Settle:   500 * time.Millisecond,
	})
	l.Start()

	timers.Advance(200 * time.Millisecond)
	if l.Progress() != 100 {
		t.Fatalf("progress = %v", l.Progress())
	}
	timers.Advance(499 * time.Millisecond)
	if !st.Loading() {
		t.Fatal("loading cleared before settle delay")
	}
	timers.Advance(time.Millisecond)
	if st.Loading() {
		t.Error("loading not cleared after settle delay")
	}
}

func TestJoystickReveal(t *testing.T) {
	timers := engine.NewTimers()
	js := input.NewJoystick(120)
	r := NewJoystickReveal(timers, js, 500*time.Millisecond)

	r.SetMobile(true)
	timers.Advance(499 * time.Millisecond)
	if js.Revealed() {
		t.Fatal("revealed early")
	}
	timers.Advance(time.Millisecond)
	if !js.Revealed() {
		t.Fatal("not revealed after delay")
	}

	r.SetMobile(false)
	if js.Revealed() {
		t.Error("leaving mobile must hide the pad")
	}

	r.SetMobile(true)
	r.SetMobile(false)
	timers.Advance(time.Second)
	if js.Revealed() || r.Pending() {
		t.Error("cancelled reveal fired")
	}
}
