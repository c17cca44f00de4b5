package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/game"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/vmath"
)

// Client message types
const (
	TypeKey        = "key"
	TypeTouch      = "touch"
	TypeViewport   = "viewport"
	TypeJoystick   = "joystick"
	TypeClosePanel = "close_panel"
	TypeHelp       = "help"
)

// Server message types
const (
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
)

// Touch phases
const (
	PhaseStart  = "start"
	PhaseMove   = "move"
	PhaseEnd    = "end"
	PhaseCancel = "cancel"
)

// Help actions
const (
	HelpToggle = "toggle"
	HelpClose  = "close"
)

// MaxCoordinate bounds client pixel coordinates so differences stay finite
const MaxCoordinate = 1e6

var (
	ErrUnknownType = errors.New("unknown message type")
	ErrMalformed   = errors.New("malformed message")
)

// ClientMessage is the union of every client to server message
type ClientMessage struct {
	Type string `json:"type"`

	// key
	Key  string `json:"key,omitempty"`
	Down bool   `json:"down,omitempty"`

	// touch
	Phase   string        `json:"phase,omitempty"`
	Touches []input.Touch `json:"touches,omitempty"`

	// viewport
	Width float64 `json:"width,omitempty"`

	// joystick centre
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// help
	Action string `json:"action,omitempty"`
}

// DecodeClient parses and validates one client message
func DecodeClient(raw []byte) (ClientMessage, error) {
	var m ClientMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch m.Type {
	case TypeKey:
		if m.Key == "" {
			return m, fmt.Errorf("%w: key without identifier", ErrMalformed)
		}
	case TypeTouch:
		switch m.Phase {
		case PhaseStart, PhaseMove, PhaseEnd, PhaseCancel:
		default:
			return m, fmt.Errorf("%w: touch phase %q", ErrMalformed, m.Phase)
		}
		for _, t := range m.Touches {
			if !inRange(t.X) || !inRange(t.Y) {
				return m, fmt.Errorf("%w: touch %d out of range", ErrMalformed, t.ID)
			}
		}
	case TypeViewport:
		if !(m.Width > 0) || !inRange(m.Width) {
			return m, fmt.Errorf("%w: width %v", ErrMalformed, m.Width)
		}
	case TypeJoystick:
		if !inRange(m.X) || !inRange(m.Y) {
			return m, fmt.Errorf("%w: joystick centre out of range", ErrMalformed)
		}
	case TypeHelp:
		if m.Action != HelpToggle && m.Action != HelpClose {
			return m, fmt.Errorf("%w: help action %q", ErrMalformed, m.Action)
		}
	case TypeClosePanel:
	default:
		return m, fmt.Errorf("%w: %q", ErrUnknownType, m.Type)
	}
	return m, nil
}

func inRange(v float64) bool {
	return vmath.Finite(v) && math.Abs(v) <= MaxCoordinate
}

// Apply feeds a decoded message into a world
func Apply(g *game.Game, m ClientMessage) {
	switch m.Type {
	case TypeKey:
		if m.Down {
			g.KeyDown(m.Key)
		} else {
			g.KeyUp(m.Key)
		}
	case TypeTouch:
		switch m.Phase {
		case PhaseStart:
			g.TouchStart(m.Touches)
		case PhaseMove:
			g.TouchMove(m.Touches)
		case PhaseEnd:
			g.TouchEnd(m.Touches)
		case PhaseCancel:
			g.TouchCancel(m.Touches)
		}
	case TypeViewport:
		g.SetViewportWidth(m.Width)
	case TypeJoystick:
		g.SetJoystickCenter(m.X, m.Y)
	case TypeClosePanel:
		g.ClosePanel()
	case TypeHelp:
		if m.Action == HelpClose {
			g.CloseHelp()
		} else {
			g.ToggleHelp()
		}
	}
}

// Welcome is the first server message of a session
type Welcome struct {
	Type      string            `json:"type"`
	Session   uint64            `json:"session"`
	Threshold float64           `json:"threshold"`
	Bound     float64           `json:"bound"`
	Exhibits  []exhibit.Exhibit `json:"exhibits"`
}

// FrameMessage wraps a world snapshot
type FrameMessage struct {
	Type string `json:"type"`
	game.Frame
}
