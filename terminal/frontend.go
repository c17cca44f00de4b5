package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/game"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/render"
)

// Device overrides accepted by Config.Device
const (
	DeviceAuto    = ""
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
)

// Config tunes the terminal frontend
type Config struct {
	FrameInterval time.Duration
	MaxFrameDelta time.Duration

	// CellWidthPx converts columns to logical pixels, rows are twice as tall
	CellWidthPx float64

	KeyHoldInitial time.Duration
	KeyHoldRepeat  time.Duration

	// Device forces a device mode, DeviceAuto classifies by terminal width
	Device string

	// Time feeds the frame clock, nil uses the monotonic clock
	Time engine.TimeProvider
}

// DefaultConfig returns the tuned frontend settings
func DefaultConfig() Config {
	return Config{
		FrameInterval:  parameter.FrameUpdateInterval,
		MaxFrameDelta:  parameter.MaxFrameDelta,
		CellWidthPx:    parameter.TerminalCellWidthPx,
		KeyHoldInitial: parameter.TerminalKeyHoldInitial,
		KeyHoldRepeat:  parameter.TerminalKeyHoldRepeat,
	}
}

// Muter toggles audio output
type Muter interface {
	ToggleMute() bool
}

// Frontend drives one world from terminal events and draws it every frame
type Frontend struct {
	cfg      Config
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	releaser *input.Releaser
	clock    *engine.FrameClock
	muter    Muter
	log      zerolog.Logger

	dragging bool
}

// NewFrontend binds a world and its renderer to a screen
func NewFrontend(screen tcell.Screen, g *game.Game, r *render.Renderer, cfg Config, log zerolog.Logger) *Frontend {
	provider := cfg.Time
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	return &Frontend{
		cfg:      cfg,
		screen:   screen,
		game:     g,
		renderer: r,
		releaser: input.NewReleaser(cfg.KeyHoldInitial, cfg.KeyHoldRepeat),
		clock:    engine.NewFrameClock(provider, cfg.MaxFrameDelta),
		log:      log,
	}
}

// SetMuter attaches the audio toggle bound to 'm'
func (f *Frontend) SetMuter(m Muter) {
	f.muter = m
}

// Run polls events and ticks the world until quit or ctx is done
func (f *Frontend) Run(ctx context.Context) error {
	svc := NewService(f.screen, parameter.EventChannelSize)
	svc.Start()
	defer svc.Stop()

	f.Resize()
	f.game.Start()
	f.clock.Step()

	ticker := time.NewTicker(f.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-svc.Events():
			if f.HandleEvent(ev) {
				f.log.Info().Uint64("frames", f.game.Frames()).Msg("quit requested")
				return nil
			}
		case <-ticker.C:
			f.Step(f.clock.Step())
		}
	}
}

// Step releases expired keys, advances the world and draws it
func (f *Frontend) Step(dt time.Duration) {
	for _, key := range f.releaser.Advance(dt) {
		f.game.KeyUp(key)
	}
	f.game.Tick(dt)
	f.renderer.Draw(f.game.Frame())
}

// HandleEvent applies one screen event and reports whether the user asked to quit
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.screen.Sync()
		f.Resize()
	}
	return false
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		f.game.KeyDown(game.KeyEscape)
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'x':
			f.game.ClosePanel()
			return false
		case 'h':
			f.game.ToggleHelp()
			return false
		case 'H':
			f.game.CloseHelp()
			return false
		case 'm':
			if f.muter != nil {
				muted := f.muter.ToggleMute()
				f.log.Debug().Bool("muted", muted).Msg("audio toggled")
			}
			return false
		}
	}

	name, ok := KeyName(ev)
	if !ok {
		return false
	}
	if f.releaser.Press(name) {
		f.game.KeyDown(name)
	}
	return false
}

// KeyName maps a terminal key to the browser key identifier
func KeyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyRune:
		return string(ev.Rune()), true
	}
	return "", false
}

// Mouse button 1 stands in for a single touch contact
func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := f.cellToPixel(col, row)
	touches := []input.Touch{{ID: 0, X: x, Y: y}}

	if ev.Buttons()&tcell.Button1 != 0 {
		if !f.dragging {
			f.dragging = true
			f.game.TouchStart(touches)
			return
		}
		f.game.TouchMove(touches)
		return
	}
	if f.dragging {
		f.dragging = false
		f.game.TouchEnd(touches)
	}
}

// Resize reclassifies the device from the terminal width and re-anchors the pad
func (f *Frontend) Resize() {
	w, h := f.screen.Size()
	width := float64(w) * f.cfg.CellWidthPx
	switch f.cfg.Device {
	case DeviceDesktop:
		width = parameter.MobileViewportThreshold
	case DeviceMobile:
		width = parameter.MobileViewportThreshold - 1
	}
	f.game.SetViewportWidth(width)

	col, row := render.JoystickAnchor(h)
	f.game.SetJoystickCenter(f.cellToPixel(col, row))
}

// Dragging reports whether a mouse contact is being tracked
func (f *Frontend) Dragging() bool {
	return f.dragging
}

func (f *Frontend) cellToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * f.cfg.CellWidthPx, (float64(row) + 0.5) * 2 * f.cfg.CellWidthPx
}
