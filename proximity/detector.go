// Package proximity decides which exhibit, if any, the avatar is standing at
package proximity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/vmath"
)

// None marks the absence of an active exhibit
const None = -1

// Sink receives panel writes
type Sink interface {
	ShowInfoPanel(title, description string, details []string, kind core.Kind, position mgl64.Vec3)
	HideInfoPanel()
	InfoPanelVisible() bool
}

// TransitionKind classifies what an update did
type TransitionKind uint8

const (
	TransitionNone TransitionKind = iota
	TransitionEnter
	TransitionSwitch
	TransitionLeave
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionEnter:
		return "enter"
	case TransitionSwitch:
		return "switch"
	case TransitionLeave:
		return "leave"
	default:
		return "none"
	}
}

// Transition reports an identity change of the active exhibit
// Hidden is set when a leave actually hid the panel
type Transition struct {
	Kind   TransitionKind
	From   int
	To     int
	Hidden bool
}

// Detector tracks the active exhibit and writes the panel on identity changes only
type Detector struct {
	registry  *exhibit.Registry
	sink      Sink
	threshold float64
	active    int
}

// NewDetector creates a detector with no active exhibit
func NewDetector(registry *exhibit.Registry, sink Sink, threshold float64) *Detector {
	return &Detector{
		registry:  registry,
		sink:      sink,
		threshold: threshold,
		active:    None,
	}
}

// Active returns the active exhibit index or None
func (d *Detector) Active() int {
	return d.active
}

// Nearest returns the closest exhibit strictly inside the threshold
// Ties keep the earlier registry entry
func (d *Detector) Nearest(position mgl64.Vec3) int {
	best := None
	bestDist := d.threshold
	for i := 0; i < d.registry.Len(); i++ {
		dist := vmath.V3Distance(position, d.registry.Position(i))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// Update evaluates the avatar position, nil transform is a no-op
func (d *Detector) Update(t *core.Transform) Transition {
	if t == nil {
		return Transition{From: d.active, To: d.active}
	}

	next := d.Nearest(t.Position)
	prev := d.active
	if next == prev {
		return Transition{From: prev, To: next}
	}

	if next != None {
		e := d.registry.At(next)
		d.sink.ShowInfoPanel(e.Title, e.Description, e.Details, e.Kind, e.Position)
		d.active = next
		kind := TransitionEnter
		if prev != None {
			kind = TransitionSwitch
		}
		return Transition{Kind: kind, From: prev, To: next}
	}

	hidden := false
	if d.sink.InfoPanelVisible() {
		d.sink.HideInfoPanel()
		hidden = true
	}
	d.active = None
	return Transition{Kind: TransitionLeave, From: prev, To: None, Hidden: hidden}
}
