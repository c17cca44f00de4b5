package audio

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/store"
)

// drain reads a finite streamer to the end and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

// TestChimesGracefulDegradation verifies playback calls are safe without a speaker
func TestChimesGracefulDegradation(t *testing.T) {
	c := NewChimes(DefaultConfig(), zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("chime operations panicked without initialization: %v", r)
		}
	}()

	c.PlayEnter()
	c.PlayLeave()
	c.ToggleMute()
	c.Cleanup()

	if c.Played() != 0 {
		t.Errorf("played = %d without a speaker", c.Played())
	}
}

// TestChimesDisabledSkipsSpeaker verifies disabled config never opens a device
func TestChimesDisabledSkipsSpeaker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	c := NewChimes(cfg, zerolog.Nop())
	if err := c.Initialize(); err != nil {
		t.Fatalf("disabled init returned %v", err)
	}
	c.PlayEnter()
	if c.Played() != 0 {
		t.Error("disabled chimes played")
	}
}

func TestEnterStreamShape(t *testing.T) {
	cfg := DefaultConfig()
	c := NewChimes(cfg, zerolog.Nop())
	sr := beep.SampleRate(cfg.SampleRate)

	n, peak := drain(t, c.enterStream())
	if want := 2 * sr.N(cfg.NoteDuration); n != want {
		t.Errorf("enter samples = %d, want %d", n, want)
	}
	if peak <= 0 || peak > cfg.Volume+1e-9 {
		t.Errorf("peak = %v, want within (0, %v]", peak, cfg.Volume)
	}

	n, _ = drain(t, c.leaveStream())
	if want := sr.N(cfg.NoteDuration); n != want {
		t.Errorf("leave samples = %d, want %d", n, want)
	}
}

func TestEnvelopeEdgesAreQuiet(t *testing.T) {
	cfg := DefaultConfig()
	sr := beep.SampleRate(cfg.SampleRate)
	s := note(sr, 440, cfg)

	buf := make([][2]float64, sr.N(cfg.NoteDuration)+10)
	n, _ := s.Stream(buf)
	if n != sr.N(cfg.NoteDuration) {
		t.Fatalf("n = %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, attack should start silent", buf[0][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 1.0/float64(sr.N(cfg.Release))+1e-9 {
		t.Errorf("last sample = %v, release should end near silence", last)
	}
	if m, ok := s.Stream(buf); m != 0 || ok {
		t.Errorf("exhausted note streamed %d, %v", m, ok)
	}
}

func TestObserveIgnoresOtherChanges(t *testing.T) {
	c := NewChimes(DefaultConfig(), zerolog.Nop())
	st := store.New()
	st.Subscribe(c.Observe())

	// Uninitialised player counts nothing, but the observer must not panic on any change
	st.SetLoadingProgress(50)
	st.ShowInfoPanel("About", "", nil, core.KindAbout, mgl64.Vec3{})
	st.HideInfoPanel()
	if c.Played() != 0 {
		t.Errorf("played = %d", c.Played())
	}
}
