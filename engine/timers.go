package engine

import (
	"time"

	"github.com/lixenwraith/portfolio-walk/parameter"
)

// TimerID identifies a scheduled callback, zero is never issued
type TimerID uint64

type timer struct {
	id     TimerID
	due    time.Duration
	period time.Duration
	fn     func()
}

// Timers is a deterministic callback queue driven by frame time
// Callbacks run inside Advance on the caller's goroutine and may schedule or cancel timers
type Timers struct {
	now     time.Duration
	nextID  TimerID
	pending []*timer
}

// NewTimers creates an empty queue at time zero
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the accumulated queue time
func (t *Timers) Now() time.Duration { return t.now }

// Len returns the number of pending timers
func (t *Timers) Len() int { return len(t.pending) }

// After runs fn once when d has elapsed
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	return t.schedule(d, 0, fn)
}

// Every runs fn each time period elapses until cancelled
// Non-positive periods are scheduled as one-shot
func (t *Timers) Every(period time.Duration, fn func()) TimerID {
	if period <= 0 {
		return t.schedule(0, 0, fn)
	}
	return t.schedule(period, period, fn)
}

func (t *Timers) schedule(d, period time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	t.nextID++
	t.pending = append(t.pending, &timer{
		id:     t.nextID,
		due:    t.now + d,
		period: period,
		fn:     fn,
	})
	return t.nextID
}

// Pending reports whether id is still scheduled
func (t *Timers) Pending(id TimerID) bool {
	return t.index(id) >= 0
}

// Cancel removes id and reports whether it was pending
func (t *Timers) Cancel(id TimerID) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	t.pending = append(t.pending[:i], t.pending[i+1:]...)
	return true
}

// CancelAll drops every pending timer
func (t *Timers) CancelAll() {
	clear(t.pending)
	t.pending = t.pending[:0]
}

// Advance moves time forward and fires due timers in due order, ties in scheduling order
// Now reads the firing timer's due time inside a callback so chained delays do not drift
func (t *Timers) Advance(dt time.Duration) {
	target := t.now
	if dt > 0 {
		target += dt
	}
	for {
		i := t.earliestDue(target)
		if i < 0 {
			break
		}
		tm := t.pending[i]
		if tm.due > t.now {
			t.now = tm.due
		}
		if tm.period > 0 {
			tm.due += tm.period
		} else {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
		}
		tm.fn()
	}
	t.now = target
}

// earliestDue returns the index of the next timer due at or before limit, or -1
func (t *Timers) earliestDue(limit time.Duration) int {
	best := -1
	for i, tm := range t.pending {
		if tm.due > limit {
			continue
		}
		if best < 0 || tm.due < t.pending[best].due ||
			(tm.due == t.pending[best].due && tm.id < t.pending[best].id) {
			best = i
		}
	}
	return best
}

func (t *Timers) index(id TimerID) int {
	for i, tm := range t.pending {
		if tm.id == id {
			return i
		}
	}
	return -1
}

// Name implements System
func (t *Timers) Name() string { return "timers" }

// Priority implements System
func (t *Timers) Priority() int { return parameter.PriorityTimekeeper }

// Update implements System
func (t *Timers) Update(dt time.Duration) { t.Advance(dt) }
