// Package engine runs the per-frame system pipeline and its timers
package engine

import "time"

// TimeProvider supplies wall-clock readings to frame loops
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts wall-clock readings into clamped frame deltas
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts measuring from the provider's current time
// A non-positive maxDelta disables clamping
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Step returns the time since the previous step, capped at maxDelta
func (c *FrameClock) Step() time.Duration {
	now := c.provider.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
