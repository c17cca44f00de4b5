// Package exhibit holds the read-only registry of points of interest placed in the scene
package exhibit

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
)

// Exhibit is one fixed point of interest tied to a portfolio category
type Exhibit struct {
	Position    mgl64.Vec3 `json:"position"`
	Rotation    mgl64.Vec3 `json:"rotation"`
	Scale       mgl64.Vec3 `json:"scale"`
	Kind        core.Kind  `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Details     []string   `json:"details"`
	Color       string     `json:"color"`
}

func (e Exhibit) clone() Exhibit {
	e.Details = slices.Clone(e.Details)
	if e.Details == nil {
		e.Details = []string{}
	}
	return e
}

// Registry is an ordered, immutable list of exhibits
// Order is significant: earlier entries win proximity ties
type Registry struct {
	exhibits []Exhibit
}

// NewRegistry copies the given exhibits into a registry
func NewRegistry(exhibits []Exhibit) *Registry {
	r := &Registry{exhibits: make([]Exhibit, len(exhibits))}
	for i, e := range exhibits {
		r.exhibits[i] = e.clone()
	}
	return r
}

// Len returns the number of exhibits, nil registry is empty
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.exhibits)
}

// At returns a copy of the exhibit at index i
func (r *Registry) At(i int) Exhibit {
	return r.exhibits[i].clone()
}

// Position returns the world position at index i without copying details
func (r *Registry) Position(i int) mgl64.Vec3 {
	return r.exhibits[i].Position
}

// All returns a copy of every exhibit in registry order
func (r *Registry) All() []Exhibit {
	out := make([]Exhibit, r.Len())
	for i := range out {
		out[i] = r.exhibits[i].clone()
	}
	return out
}

// IndexOf returns the first exhibit of the given kind, -1 if absent
func (r *Registry) IndexOf(kind core.Kind) int {
	for i := 0; i < r.Len(); i++ {
		if r.exhibits[i].Kind == kind {
			return i
		}
	}
	return -1
}
