// Package overlay holds the presenters drawn over the scene: info panel, help and loading screen
package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/store"
)

// DetailKind is the visual treatment of one detail line
type DetailKind uint8

const (
	DetailEntry DetailKind = iota
	DetailBullet
	DetailHeader
)

func (k DetailKind) String() string {
	switch k {
	case DetailBullet:
		return "bullet"
	case DetailHeader:
		return "header"
	default:
		return "entry"
	}
}

// MarshalText encodes the kind by name
func (k DetailKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *DetailKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "entry":
		*k = DetailEntry
	case "bullet":
		*k = DetailBullet
	case "header":
		*k = DetailHeader
	default:
		return fmt.Errorf("unknown detail kind %q", b)
	}
	return nil
}

const bulletMark = "•"

// Detail is a classified detail line
type Detail struct {
	Kind DetailKind `json:"kind"`
	Text string     `json:"text"`
}

// ClassifyDetail applies the panel's line rules:
// a leading bullet mark is a bullet, a line without ':' or '@' is a header, anything else is an entry
func ClassifyDetail(line string) Detail {
	if strings.HasPrefix(line, bulletMark) {
		return Detail{Kind: DetailBullet, Text: strings.TrimSpace(strings.Replace(line, bulletMark, "", 1))}
	}
	if !strings.Contains(line, ":") && !strings.Contains(line, "@") {
		return Detail{Kind: DetailHeader, Text: line}
	}
	return Detail{Kind: DetailEntry, Text: line}
}

// PanelView is the renderable form of a visible panel
type PanelView struct {
	Kind        core.Kind `json:"type"`
	Label       string    `json:"label"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Details     []Detail  `json:"details"`
	Palette     Palette   `json:"palette"`
	Closing     bool      `json:"closing"`
}

// InfoPanel fronts the store's panel fields with a cancelable two-phase close
// It is the proximity detector's sink
type InfoPanel struct {
	store   *store.Store
	timers  *engine.Timers
	fade    time.Duration
	closing engine.TimerID
}

// NewInfoPanel creates a presenter writing to st and scheduling on timers
func NewInfoPanel(st *store.Store, timers *engine.Timers, fade time.Duration) *InfoPanel {
	return &InfoPanel{store: st, timers: timers, fade: fade}
}

// ShowInfoPanel writes the panel and aborts a close in progress
func (p *InfoPanel) ShowInfoPanel(title, description string, details []string, kind core.Kind, position mgl64.Vec3) {
	p.cancelClose()
	p.store.ShowInfoPanel(title, description, details, kind, position)
}

// HideInfoPanel hides immediately
func (p *InfoPanel) HideInfoPanel() {
	p.cancelClose()
	p.store.HideInfoPanel()
}

// InfoPanelVisible reports the store's visibility
func (p *InfoPanel) InfoPanelVisible() bool {
	return p.store.InfoPanelVisible()
}

// BeginClose starts the fade-out and hides once it completes
// Returns false when the panel is hidden or already closing
func (p *InfoPanel) BeginClose() bool {
	if p.closing != 0 || !p.store.InfoPanelVisible() {
		return false
	}
	p.closing = p.timers.After(p.fade, func() {
		p.closing = 0
		p.store.HideInfoPanel()
	})
	return true
}

// Closing reports whether a fade-out is in progress
func (p *InfoPanel) Closing() bool {
	return p.closing != 0
}

func (p *InfoPanel) cancelClose() {
	if p.closing != 0 {
		p.timers.Cancel(p.closing)
		p.closing = 0
	}
}

// View returns the renderable panel, false when hidden
func (p *InfoPanel) View() (PanelView, bool) {
	s := p.store.InfoPanel()
	if !s.Visible {
		return PanelView{}, false
	}
	details := make([]Detail, len(s.Details))
	for i, d := range s.Details {
		details[i] = ClassifyDetail(d)
	}
	label := ""
	if s.Kind != core.KindNone {
		label = strings.ToUpper(s.Kind.String())
	}
	return PanelView{
		Kind:        s.Kind,
		Label:       label,
		Title:       s.Title,
		Description: s.Description,
		Details:     details,
		Palette:     PaletteFor(s.Kind),
		Closing:     p.Closing(),
	}, true
}
