package core

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/portfolio-walk/parameter"
)

// Smoothing selects how per-tick blend factors react to frame time
type Smoothing uint8

const (
	// SmoothingPerTick applies the factor once per tick regardless of dt
	// Matches the tuned feel at 60 Hz, converges faster on high refresh displays
	SmoothingPerTick Smoothing = iota

	// SmoothingTimeConstant rescales the factor to dt so convergence is frame-rate independent
	// Identical to SmoothingPerTick when dt equals parameter.ReferenceFrame
	SmoothingTimeConstant
)

func (s Smoothing) String() string {
	switch s {
	case SmoothingTimeConstant:
		return "time-constant"
	default:
		return "per-tick"
	}
}

// ParseSmoothing reads a config value
func ParseSmoothing(s string) (Smoothing, error) {
	switch s {
	case "", "per-tick":
		return SmoothingPerTick, nil
	case "time-constant":
		return SmoothingTimeConstant, nil
	}
	return SmoothingPerTick, fmt.Errorf("unknown smoothing mode %q", s)
}

// Factor returns the blend to apply this tick for a factor tuned per reference frame
// Time-constant form: 1 - (1-f)^(dt/ref)
func (s Smoothing) Factor(f float64, dt time.Duration) float64 {
	if s != SmoothingTimeConstant {
		return f
	}
	if dt <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	frames := float64(dt) / float64(parameter.ReferenceFrame)
	return 1 - math.Pow(1-f, frames)
}
