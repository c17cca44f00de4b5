package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/camera"
	"github.com/lixenwraith/portfolio-walk/character"
	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/overlay"
	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/status"
)

// Options configures one world
type Options struct {
	Character character.Config
	Camera    camera.Config

	ProximityThreshold float64

	Keys         input.KeyTable
	JoystickSize float64

	InfoPanelFade    time.Duration
	HelpAutoCollapse time.Duration
	HelpFade         time.Duration
	JoystickReveal   time.Duration
	Loading          overlay.LoadingConfig

	// Rand drives the loading simulation, nil seeds from the clock
	Rand *rand.Rand

	Logger zerolog.Logger

	// Status receives world counters, nil allocates a private registry
	Status *status.Registry
}

// DefaultOptions returns the tuned parameters with logging disabled
func DefaultOptions() Options {
	return Options{
		Character:          character.DefaultConfig(),
		Camera:             camera.DefaultConfig(),
		ProximityThreshold: parameter.ProximityThreshold,
		Keys:               input.DefaultKeyTable(),
		JoystickSize:       parameter.JoystickSize,
		InfoPanelFade:      parameter.InfoPanelFadeOut,
		HelpAutoCollapse:   parameter.HelpAutoCollapse,
		HelpFade:           parameter.HelpFadeOut,
		JoystickReveal:     parameter.JoystickRevealDelay,
		Loading: overlay.LoadingConfig{
			Interval: parameter.LoadingTickInterval,
			StepMax:  parameter.LoadingStepMax,
			Complete: parameter.LoadingComplete,
			Settle:   parameter.LoadingSettleDelay,
		},
		Logger: zerolog.Nop(),
	}
}

// WithSmoothing applies one smoothing policy to every follower
func (o Options) WithSmoothing(s core.Smoothing) Options {
	o.Character.Smoothing = s
	o.Camera.Smoothing = s
	return o
}
