// Package animation drives skeletal clip playback for the avatar
package animation

import (
	"slices"
	"time"
)

// Player is the clip playback surface the character controller talks to
// Implementations must treat unknown clip names as no-ops
type Player interface {
	Play(clip string)
	FadeIn(clip string, d time.Duration)
	FadeOut(clip string, d time.Duration)
	Reset(clip string)
}

// ClipState is the observable state of one clip
type ClipState struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Time    float64 `json:"time"`
	Playing bool    `json:"playing"`
}

type clip struct {
	weight  float64
	target  float64
	rate    float64 // weight units per second, 0 when not fading
	time    float64
	playing bool
}

// Mixer cross-fades a fixed set of clips
// Weights move linearly toward their target at the rate set by the last fade
type Mixer struct {
	order []string
	clips map[string]*clip
}

// NewMixer creates a mixer owning the named clips, all stopped at weight 1
func NewMixer(names ...string) *Mixer {
	m := &Mixer{clips: make(map[string]*clip, len(names))}
	for _, n := range names {
		if _, dup := m.clips[n]; dup {
			continue
		}
		m.order = append(m.order, n)
		m.clips[n] = &clip{weight: 1, target: 1}
	}
	return m
}

// Play starts advancing the clip
func (m *Mixer) Play(name string) {
	if c, ok := m.clips[name]; ok {
		c.playing = true
	}
}

// Reset rewinds the clip, stops it, and restores full weight with no fade in progress
func (m *Mixer) Reset(name string) {
	c, ok := m.clips[name]
	if !ok {
		return
	}
	*c = clip{weight: 1, target: 1}
}

// FadeIn ramps the clip from 0 to full weight over d
func (m *Mixer) FadeIn(name string, d time.Duration) {
	c, ok := m.clips[name]
	if !ok {
		return
	}
	c.weight = 0
	m.fadeTo(c, 1, d)
}

// FadeOut ramps the clip from its current weight to 0 over d
func (m *Mixer) FadeOut(name string, d time.Duration) {
	c, ok := m.clips[name]
	if !ok {
		return
	}
	m.fadeTo(c, 0, d)
}

func (m *Mixer) fadeTo(c *clip, target float64, d time.Duration) {
	c.target = target
	span := target - c.weight
	if span < 0 {
		span = -span
	}
	if d <= 0 || span == 0 {
		c.weight = target
		c.rate = 0
		return
	}
	c.rate = span / d.Seconds()
}

// Update advances playing clips and in-flight fades by dt seconds
func (m *Mixer) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for _, n := range m.order {
		c := m.clips[n]
		if c.playing {
			c.time += dt
		}
		if c.rate == 0 {
			continue
		}
		step := c.rate * dt
		switch {
		case c.weight < c.target:
			c.weight = min(c.weight+step, c.target)
		case c.weight > c.target:
			c.weight = max(c.weight-step, c.target)
		}
		if c.weight == c.target {
			c.rate = 0
		}
	}
}

// Weight returns a clip's blend weight, 0 for unknown clips
func (m *Mixer) Weight(name string) float64 {
	if c, ok := m.clips[name]; ok {
		return c.weight
	}
	return 0
}

// Playing reports whether a clip is advancing
func (m *Mixer) Playing(name string) bool {
	c, ok := m.clips[name]
	return ok && c.playing
}

// Dominant returns the playing clip with the greatest weight, ties resolved by registration order
func (m *Mixer) Dominant() (string, bool) {
	best, found := "", false
	bestWeight := -1.0
	for _, n := range m.order {
		c := m.clips[n]
		if !c.playing || c.weight <= bestWeight {
			continue
		}
		best, bestWeight, found = n, c.weight, true
	}
	return best, found
}

// States returns every clip in registration order
func (m *Mixer) States() []ClipState {
	out := make([]ClipState, 0, len(m.order))
	for _, n := range m.order {
		c := m.clips[n]
		out = append(out, ClipState{Name: n, Weight: c.weight, Time: c.time, Playing: c.playing})
	}
	return slices.Clip(out)
}
