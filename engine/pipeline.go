package engine

import (
	"slices"
	"time"
)

// System is one stage of the per-frame update
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt time.Duration)
}

// SystemFunc adapts a function into a System
type SystemFunc struct {
	name     string
	priority int
	fn       func(dt time.Duration)
}

// NewSystemFunc wraps fn as a named system
func NewSystemFunc(name string, priority int, fn func(dt time.Duration)) *SystemFunc {
	return &SystemFunc{name: name, priority: priority, fn: fn}
}

func (s *SystemFunc) Name() string            { return s.name }
func (s *SystemFunc) Priority() int           { return s.priority }
func (s *SystemFunc) Update(dt time.Duration) { s.fn(dt) }

// Pipeline runs systems in priority order on the caller's goroutine
// Equal priorities keep registration order
type Pipeline struct {
	systems []System
	frames  uint64
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add registers a system and re-sorts
func (p *Pipeline) Add(systems ...System) {
	p.systems = append(p.systems, systems...)
	slices.SortStableFunc(p.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (p *Pipeline) Systems() []System {
	return slices.Clone(p.systems)
}

// Frames returns how many updates have run
func (p *Pipeline) Frames() uint64 {
	return p.frames
}

// Update runs every system once with dt
func (p *Pipeline) Update(dt time.Duration) {
	for _, s := range p.systems {
		s.Update(dt)
	}
	p.frames++
}
