// Package game assembles one walkable world and drives it frame by frame
package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/animation"
	"github.com/lixenwraith/portfolio-walk/camera"
	"github.com/lixenwraith/portfolio-walk/character"
	"github.com/lixenwraith/portfolio-walk/core"
	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/input"
	"github.com/lixenwraith/portfolio-walk/overlay"
	"github.com/lixenwraith/portfolio-walk/parameter"
	"github.com/lixenwraith/portfolio-walk/proximity"
	"github.com/lixenwraith/portfolio-walk/status"
	"github.com/lixenwraith/portfolio-walk/store"
)

// KeyEscape closes the info panel without the fade
const KeyEscape = "Escape"

// Game owns every component of one world
// All methods must be called from a single goroutine; only Store and Status are safe to read elsewhere
type Game struct {
	log      zerolog.Logger
	registry *exhibit.Registry
	store    *store.Store
	status   *status.Registry
	metrics  metrics

	timers   *engine.Timers
	pipeline *engine.Pipeline

	input     *input.Aggregator
	mixer     *animation.Mixer
	character *character.Controller
	camera    *camera.Rig
	proximity *proximity.Detector

	panel   *overlay.InfoPanel
	help    *overlay.Help
	loading *overlay.Loading
	reveal  *overlay.JoystickReveal

	intent    input.Intent
	transform core.Transform
	elapsed   time.Duration

	detach []func()
	started     bool
	closed      bool
}

// New wires a world around registry
func New(registry *exhibit.Registry, opts Options) *Game {
	if registry == nil {
		registry = exhibit.NewRegistry(nil)
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		log:      opts.Logger,
		registry: registry,
		store:    store.New(),
		status:   reg,
		metrics:  newMetrics(reg),
		timers:   engine.NewTimers(),
		pipeline: engine.NewPipeline(),
	}

	g.input = input.NewAggregator(input.NewKeyboard(opts.Keys), input.NewJoystick(opts.JoystickSize))
	g.mixer = animation.NewMixer(opts.Character.WalkClip, opts.Character.IdleClip)
	g.character = character.NewController(opts.Character, g.mixer)
	g.transform = g.character.Transform()
	g.camera = camera.NewRig(opts.Camera)

	g.panel = overlay.NewInfoPanel(g.store, g.timers, opts.InfoPanelFade)
	g.help = overlay.NewHelp(g.store, g.timers, opts.HelpAutoCollapse, opts.HelpFade)
	g.loading = overlay.NewLoading(g.store, g.timers, opts.Rand, opts.Loading)
	g.reveal = overlay.NewJoystickReveal(g.timers, g.input.Joystick(), opts.JoystickReveal)
	g.proximity = proximity.NewDetector(registry, g.panel, opts.ProximityThreshold)

	g.pipeline.Add(
		engine.NewSystemFunc("input", parameter.PriorityInput, g.updateInput),
		engine.NewSystemFunc("character", parameter.PriorityCharacter, g.updateCharacter),
		engine.NewSystemFunc("animation", parameter.PriorityAnimation, g.updateAnimation),
		engine.NewSystemFunc("camera", parameter.PriorityCamera, g.updateCamera),
		engine.NewSystemFunc("proximity", parameter.PriorityProximity, g.updateProximity),
		g.timers,
		engine.NewSystemFunc("diagnostics", parameter.PriorityDiagnostics, g.updateDiagnostics),
	)

	g.detach = append(g.detach, g.store.Subscribe(g.onStoreChange))
	return g
}

// Start begins the loading simulation
func (g *Game) Start() {
	if g.started || g.closed {
		return
	}
	g.started = true
	g.loading.Start()
	g.log.Debug().Int("exhibits", g.registry.Len()).Msg("world started")
}

// Tick advances the world by dt; negative deltas count as zero
func (g *Game) Tick(dt time.Duration) {
	if g.closed {
		return
	}
	if dt < 0 {
		dt = 0
	}
	g.elapsed += dt
	g.pipeline.Update(dt)
}

// Close cancels every timer and detaches observers, the world no longer advances
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.loading.Stop()
	g.help.Stop()
	g.reveal.Stop()
	g.timers.CancelAll()
	for _, fn := range g.detach {
		fn()
	}
	g.detach = nil
	g.log.Debug().Uint64("frames", g.pipeline.Frames()).Msg("world closed")
}

func (g *Game) updateInput(time.Duration) {
	g.intent = g.input.Intent()
}

func (g *Game) updateCharacter(dt time.Duration) {
	g.transform = g.character.Tick(g.intent, dt)
}

func (g *Game) updateAnimation(dt time.Duration) {
	g.mixer.Update(dt.Seconds())
}

func (g *Game) updateCamera(dt time.Duration) {
	t := g.transform
	g.camera.Update(&t, dt)
}

func (g *Game) updateProximity(time.Duration) {
	t := g.transform
	tr := g.proximity.Update(&t)
	switch tr.Kind {
	case proximity.TransitionEnter, proximity.TransitionSwitch:
		e := g.registry.At(tr.To)
		g.metrics.shows.Add(1)
		g.metrics.active.Store(e.Title)
		g.log.Debug().Str("exhibit", e.Title).Stringer("kind", e.Kind).Stringer("transition", tr.Kind).Msg("exhibit entered")
	case proximity.TransitionLeave:
		if tr.Hidden {
			g.metrics.hides.Add(1)
		}
		g.metrics.active.Store("")
		g.log.Debug().Int("from", tr.From).Bool("hidden", tr.Hidden).Msg("exhibit left")
	}
}

func (g *Game) updateDiagnostics(time.Duration) {
	g.metrics.frames.Add(1)
	g.metrics.elapsed.Store(g.elapsed.Seconds())
	speed := g.transform.Speed()
	g.metrics.speed.Store(speed)
	g.metrics.peak.StoreMax(speed)
}

func (g *Game) onStoreChange(s store.State, c store.Change) {
	if c.Has(store.ChangeLoadingProgress) {
		g.metrics.progress.Store(s.LoadingProgress)
	}
	if c.Has(store.ChangeLoading) && !s.Loading {
		g.help.Start()
		g.log.Debug().Msg("loading complete")
	}
	if c.Has(store.ChangeMobile) {
		g.metrics.mobile.Store(s.Mobile)
	}
}

// --- Input ---

// KeyDown applies a key press by browser key identifier
func (g *Game) KeyDown(key string) {
	if key == KeyEscape {
		if g.panel.InfoPanelVisible() {
			g.panel.HideInfoPanel()
		}
		return
	}
	g.input.Keyboard().KeyDown(key)
}

// KeyUp applies a key release
func (g *Game) KeyUp(key string) {
	g.input.Keyboard().KeyUp(key)
}

// TouchStart forwards changed contacts to the joystick
func (g *Game) TouchStart(touches []input.Touch) { g.input.Joystick().TouchStart(touches) }

// TouchMove forwards changed contacts to the joystick
func (g *Game) TouchMove(touches []input.Touch) { g.input.Joystick().TouchMove(touches) }

// TouchEnd forwards lifted contacts to the joystick
func (g *Game) TouchEnd(touches []input.Touch) { g.input.Joystick().TouchEnd(touches) }

// TouchCancel forwards cancelled contacts to the joystick
func (g *Game) TouchCancel(touches []input.Touch) { g.input.Joystick().TouchCancel(touches) }

// SetJoystickCenter places the pad in client coordinates
func (g *Game) SetJoystickCenter(x, y float64) {
	g.input.Joystick().SetCenter(x, y)
}

// SetViewportWidth reclassifies the device; called at start and on every resize
func (g *Game) SetViewportWidth(width float64) {
	mode := input.DeviceModeForWidth(width)
	g.store.SetMobile(mode == input.DeviceMobile)
	if !g.input.SetDeviceMode(mode) {
		return
	}
	g.reveal.SetMobile(mode == input.DeviceMobile)
	g.log.Debug().Float64("width", width).Stringer("mode", mode).Msg("device mode switched")
}

// ClosePanel starts the panel fade-out
func (g *Game) ClosePanel() bool {
	return g.panel.BeginClose()
}

// ToggleHelp collapses or expands the help overlay
func (g *Game) ToggleHelp() { g.help.Toggle() }

// CloseHelp dismisses the help overlay
func (g *Game) CloseHelp() bool { return g.help.Close() }

// Observe subscribes fn to the store until the world closes
func (g *Game) Observe(fn store.Observer) {
	if g.closed {
		return
	}
	g.detach = append(g.detach, g.store.Subscribe(fn))
}

// --- Accessors ---

// Store returns the shared UI state
func (g *Game) Store() *store.Store { return g.store }

// Status returns the metrics registry
func (g *Game) Status() *status.Registry { return g.status }

// Registry returns the exhibits
func (g *Game) Registry() *exhibit.Registry { return g.registry }

// Transform returns the avatar transform after the last tick
func (g *Game) Transform() core.Transform { return g.transform }

// Intent returns the intent sampled in the last tick
func (g *Game) Intent() input.Intent { return g.intent }

// Mode returns the device mode
func (g *Game) Mode() input.DeviceMode { return g.input.Mode() }

// Joystick exposes the pad for rendering
func (g *Game) Joystick() *input.Joystick { return g.input.Joystick() }

// Camera exposes the rig for rendering
func (g *Game) Camera() *camera.Rig { return g.camera }

// ActiveExhibit returns the proximity detector's active index or proximity.None
func (g *Game) ActiveExhibit() int { return g.proximity.Active() }

// Panel returns the info panel view, false when hidden
func (g *Game) Panel() (overlay.PanelView, bool) { return g.panel.View() }

// Help returns the help overlay view, false when hidden
func (g *Game) Help() (overlay.HelpView, bool) { return g.help.View() }

// Elapsed returns accumulated world time
func (g *Game) Elapsed() time.Duration { return g.elapsed }

// Frames returns the number of ticks run
func (g *Game) Frames() uint64 { return g.pipeline.Frames() }

// Closed reports whether Close was called
func (g *Game) Closed() bool { return g.closed }
