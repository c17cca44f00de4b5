// Package status holds lock-free runtime counters read by frontends and logs
package status

import "sync/atomic"

// Registry is the central metrics facade
// Writers cache pointers once; the frame loop stores into the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot is a point-in-time copy of every metric
type Snapshot struct {
	Bools   map[string]bool    `json:"bools,omitempty"`
	Ints    map[string]int64   `json:"ints,omitempty"`
	Floats  map[string]float64 `json:"floats,omitempty"`
	Strings map[string]string  `json:"strings,omitempty"`
}

// Snapshot reads every metric; values of different keys are not mutually consistent
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Bools:   make(map[string]bool, r.Bools.Count()),
		Ints:    make(map[string]int64, r.Ints.Count()),
		Floats:  make(map[string]float64, r.Floats.Count()),
		Strings: make(map[string]string, r.Strings.Count()),
	}
	r.Bools.Range(func(k string, p *atomic.Bool) { s.Bools[k] = p.Load() })
	r.Ints.Range(func(k string, p *atomic.Int64) { s.Ints[k] = p.Load() })
	r.Floats.Range(func(k string, p *AtomicFloat) { s.Floats[k] = p.Load() })
	r.Strings.Range(func(k string, p *AtomicString) { s.Strings[k] = p.Load() })
	return s
}
