package overlay

import (
	"time"

	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/store"
)

var (
	desktopHelp = []string{
		"• WASD or Arrow Keys to move",
		"• Mouse to look around",
		"• Walk near objects to view information",
		"• ESC to close information panels",
	}
	mobileHelp = []string{
		"• Use the virtual joystick to move",
		"• Tap on objects to view information",
		"• Pinch to zoom in/out",
	}
)

// HelpLines returns the controls text for a device mode
func HelpLines(mobile bool) []string {
	if mobile {
		return mobileHelp
	}
	return desktopHelp
}

// HelpView is the renderable help overlay
type HelpView struct {
	Collapsed bool     `json:"collapsed"`
	Lines     []string `json:"lines,omitempty"`
}

// Help is the controls overlay
// It collapses on its own a while after it first appears, and a close fades before clearing the store flag
type Help struct {
	store        *store.Store
	timers       *engine.Timers
	autoCollapse time.Duration
	fade         time.Duration

	started   bool
	closed    bool
	collapsed bool
	collapse  engine.TimerID
	closing   engine.TimerID
}

// NewHelp creates the overlay in its expanded state
func NewHelp(st *store.Store, timers *engine.Timers, autoCollapse, fade time.Duration) *Help {
	return &Help{store: st, timers: timers, autoCollapse: autoCollapse, fade: fade}
}

// Start arms the auto-collapse, subsequent calls are ignored
func (h *Help) Start() {
	if h.started {
		return
	}
	h.started = true
	h.collapse = h.timers.After(h.autoCollapse, func() {
		h.collapse = 0
		h.collapsed = true
	})
}

// Toggle flips between collapsed and expanded
func (h *Help) Toggle() {
	if h.closed {
		return
	}
	h.collapsed = !h.collapsed
}

// Close hides the overlay now and clears the store flag after the fade
func (h *Help) Close() bool {
	if h.closed {
		return false
	}
	h.closed = true
	h.closing = h.timers.After(h.fade, func() {
		h.closing = 0
		h.store.SetShowControls(false)
	})
	return true
}

// Collapsed reports the collapsed state
func (h *Help) Collapsed() bool { return h.collapsed }

// Stop cancels pending timers
func (h *Help) Stop() {
	if h.collapse != 0 {
		h.timers.Cancel(h.collapse)
		h.collapse = 0
	}
	if h.closing != 0 {
		h.timers.Cancel(h.closing)
		h.closing = 0
	}
}

// View returns the overlay when it should be drawn: store flag set, loading done, not closed
func (h *Help) View() (HelpView, bool) {
	s := h.store.Snapshot()
	if h.closed || !s.ShowControls || s.Loading {
		return HelpView{}, false
	}
	if h.collapsed {
		return HelpView{Collapsed: true}, true
	}
	return HelpView{Lines: HelpLines(s.Mobile)}, true
}
