package input

import (
	"slices"
	"time"
)

// Releaser synthesises key-up edges for terminals that report presses only
// A key counts as held until no repeat arrives within its hold window
// The first window is longer to bridge the OS auto-repeat delay
type Releaser struct {
	initial time.Duration
	repeat  time.Duration
	now     time.Duration
	held    map[string]heldKey
}

type heldKey struct {
	deadline time.Duration
	repeated bool
}

// NewReleaser creates a releaser with the given hold windows
func NewReleaser(initial, repeat time.Duration) *Releaser {
	return &Releaser{
		initial: initial,
		repeat:  repeat,
		held:    make(map[string]heldKey),
	}
}

// Press records a press and reports whether it is a new down edge
func (r *Releaser) Press(key string) bool {
	h, ok := r.held[key]
	if !ok {
		r.held[key] = heldKey{deadline: r.now + r.initial}
		return true
	}
	h.deadline = r.now + r.repeat
	h.repeated = true
	r.held[key] = h
	return false
}

// Held reports whether a key is currently considered down
func (r *Releaser) Held(key string) bool {
	_, ok := r.held[key]
	return ok
}

// Advance moves the releaser clock and returns keys whose window expired, sorted
func (r *Releaser) Advance(dt time.Duration) []string {
	r.now += dt
	var released []string
	for key, h := range r.held {
		if r.now >= h.deadline {
			released = append(released, key)
		}
	}
	for _, key := range released {
		delete(r.held, key)
	}
	slices.Sort(released)
	return released
}

// ReleaseAll drops every held key and returns them sorted
func (r *Releaser) ReleaseAll() []string {
	released := make([]string, 0, len(r.held))
	for key := range r.held {
		released = append(released, key)
	}
	clear(r.held)
	slices.Sort(released)
	return released
}
