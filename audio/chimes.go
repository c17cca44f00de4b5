// Package audio plays short chimes when the info panel opens and closes
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/store"
)

// Config tunes the chimes
type Config struct {
	Enabled        bool
	SampleRate     int
	BufferDuration time.Duration
	Volume         float64
	EnterLow       float64
	EnterHigh      float64
	Leave          float64
	NoteDuration   time.Duration
	Attack         time.Duration
	Release        time.Duration
}

// DefaultConfig returns the tuned chime parameters
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		SampleRate:     parameter.AudioSampleRate,
		BufferDuration: parameter.AudioBufferDuration,
		Volume:         parameter.ChimeVolume,
		EnterLow:       parameter.ChimeEnterFreqLow,
		EnterHigh:      parameter.ChimeEnterFreqHigh,
		Leave:          parameter.ChimeLeaveFreq,
		NoteDuration:   parameter.ChimeNoteDuration,
		Attack:         parameter.ChimeAttack,
		Release:        parameter.ChimeRelease,
	}
}

// Chimes owns the speaker mixer
// Every method is safe before Initialize and after Cleanup; sounds are then dropped
type Chimes struct {
	mu          sync.Mutex
	cfg         Config
	sr          beep.SampleRate
	mixer       *beep.Mixer
	log         zerolog.Logger
	initialized bool
	muted       bool
	played      int
}

// NewChimes creates an uninitialised chime player
func NewChimes(cfg Config, log zerolog.Logger) *Chimes {
	return &Chimes{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize opens the speaker; failure leaves the player silent and is not fatal to callers
func (c *Chimes) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(c.sr, c.sr.N(c.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	c.log.Debug().Int("sample_rate", c.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup silences everything and stops accepting sounds
func (c *Chimes) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// SetMuted drops sounds while true
func (c *Chimes) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (c *Chimes) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Played returns how many chimes were queued to the speaker
func (c *Chimes) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// PlayEnter queues the rising two-note chime
func (c *Chimes) PlayEnter() {
	c.play(c.enterStream())
}

// PlayLeave queues the single low note
func (c *Chimes) PlayLeave() {
	c.play(c.leaveStream())
}

func (c *Chimes) enterStream() beep.Streamer {
	return newVolume(beep.Seq(
		note(c.sr, c.cfg.EnterLow, c.cfg),
		note(c.sr, c.cfg.EnterHigh, c.cfg),
	), c.cfg.Volume)
}

func (c *Chimes) leaveStream() beep.Streamer {
	return newVolume(note(c.sr, c.cfg.Leave, c.cfg), c.cfg.Volume)
}

func (c *Chimes) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
	c.played++
}

// Observe returns a store observer chiming on panel show and hide
func (c *Chimes) Observe() store.Observer {
	return func(s store.State, changed store.Change) {
		if !changed.Has(store.ChangeInfoPanel) {
			return
		}
		if s.InfoPanel.Visible {
			c.PlayEnter()
			return
		}
		c.PlayLeave()
	}
}
