package overlay

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/store"
)

// LoadingConfig tunes the simulated asset load
type LoadingConfig struct {
	Interval time.Duration
	StepMax  float64
	Complete float64
	Settle   time.Duration
}

// Loading advances a fake progress bar by random steps, then clears the loading flag after a settle delay
type Loading struct {
	store  *store.Store
	timers *engine.Timers
	rng    *rand.Rand
	cfg    LoadingConfig

	progress float64
	ticker   engine.TimerID
	settle   engine.TimerID
	done     bool
}

// NewLoading creates the simulation, nil rng uses a time-seeded source
func NewLoading(st *store.Store, timers *engine.Timers, rng *rand.Rand, cfg LoadingConfig) *Loading {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Loading{store: st, timers: timers, rng: rng, cfg: cfg}
}

// Start begins stepping
func (l *Loading) Start() {
	if l.ticker != 0 || l.done {
		return
	}
	l.ticker = l.timers.Every(l.cfg.Interval, l.step)
}

func (l *Loading) step() {
	if l.progress >= l.cfg.Complete {
		l.stopTicker()
		return
	}
	l.progress += l.rng.Float64() * l.cfg.StepMax
	if l.progress > l.cfg.Complete {
		l.progress = l.cfg.Complete
		l.stopTicker()
	}
	l.store.SetLoadingProgress(l.progress)

	if l.progress >= l.cfg.Complete && l.settle == 0 {
		l.settle = l.timers.After(l.cfg.Settle, func() {
			l.settle = 0
			l.done = true
			l.store.SetLoading(false)
		})
	}
}

func (l *Loading) stopTicker() {
	if l.ticker != 0 {
		l.timers.Cancel(l.ticker)
		l.ticker = 0
	}
}

// Progress returns the current percentage
func (l *Loading) Progress() float64 { return l.progress }

// Done reports whether the loading flag has been cleared
func (l *Loading) Done() bool { return l.done }

// Stop cancels pending timers
func (l *Loading) Stop() {
	l.stopTicker()
	if l.settle != 0 {
		l.timers.Cancel(l.settle)
		l.settle = 0
	}
}
