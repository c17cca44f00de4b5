// Package store is the process-wide UI state shared between the world and its overlays
package store

import (
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/portfolio-walk/core"
)

// InfoPanelState describes the exhibit overlay
// When Visible is false the remaining fields are stale and must not be rendered
type InfoPanelState struct {
	Visible     bool       `json:"visible"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Details     []string   `json:"details"`
	Kind        core.Kind  `json:"type"`
	Position    mgl64.Vec3 `json:"position"`
}

// State is a full snapshot of the store
type State struct {
	InfoPanel       InfoPanelState `json:"infoPanel"`
	Loading         bool           `json:"loading"`
	LoadingProgress float64        `json:"loadingProgress"`
	Mobile          bool           `json:"mobile"`
	ShowControls    bool           `json:"showControls"`
}

// Change is a bitmask of top-level fields touched by a write
type Change uint8

const (
	ChangeInfoPanel Change = 1 << iota
	ChangeLoading
	ChangeLoadingProgress
	ChangeMobile
	ChangeShowControls
)

// Has reports whether any bit of c2 is set in c
func (c Change) Has(c2 Change) bool {
	return c&c2 != 0
}

// Observer receives the post-write snapshot and the fields that changed
type Observer func(s State, changed Change)

type subscription struct {
	id uint64
	fn Observer
}

// Store is a single-writer, many-reader state container
// Writes happen on the simulation goroutine; readers on other goroutines use Snapshot
type Store struct {
	mu        sync.RWMutex
	state     State
	observers []subscription
	nextID    uint64
}

// New creates a store with the startup state:
// panel hidden and empty, loading at 0%, desktop mode, help visible
func New() *Store {
	return &Store{
		state: State{
			InfoPanel: InfoPanelState{
				Details: []string{},
			},
			Loading:         true,
			LoadingProgress: 0,
			Mobile:          false,
			ShowControls:    true,
		},
	}
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// InfoPanel returns a copy of the panel state
func (s *Store) InfoPanel() InfoPanelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.state.InfoPanel
	p.Details = slices.Clone(p.Details)
	return p
}

// InfoPanelVisible reports panel visibility without copying
func (s *Store) InfoPanelVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.InfoPanel.Visible
}

// Mobile reports the device-mode flag
func (s *Store) Mobile() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Mobile
}

// Loading reports the loading flag
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loading
}

// ShowInfoPanel writes all panel fields as one unit and makes it visible
func (s *Store) ShowInfoPanel(title, description string, details []string, kind core.Kind, position mgl64.Vec3) {
	d := slices.Clone(details)
	if d == nil {
		d = []string{}
	}
	s.write(ChangeInfoPanel, func(st *State) bool {
		st.InfoPanel = InfoPanelState{
			Visible:     true,
			Title:       title,
			Description: description,
			Details:     d,
			Kind:        kind,
			Position:    position,
		}
		return true
	})
}

// HideInfoPanel clears visibility only, other fields remain as stale content
func (s *Store) HideInfoPanel() {
	s.write(ChangeInfoPanel, func(st *State) bool {
		if !st.InfoPanel.Visible {
			return false
		}
		st.InfoPanel.Visible = false
		return true
	})
}

// SetLoading sets the loading flag
func (s *Store) SetLoading(loading bool) {
	s.write(ChangeLoading, func(st *State) bool {
		if st.Loading == loading {
			return false
		}
		st.Loading = loading
		return true
	})
}

// SetLoadingProgress sets loading progress in percent
func (s *Store) SetLoadingProgress(progress float64) {
	s.write(ChangeLoadingProgress, func(st *State) bool {
		if st.LoadingProgress == progress {
			return false
		}
		st.LoadingProgress = progress
		return true
	})
}

// SetMobile sets the device-mode flag
func (s *Store) SetMobile(mobile bool) {
	s.write(ChangeMobile, func(st *State) bool {
		if st.Mobile == mobile {
			return false
		}
		st.Mobile = mobile
		return true
	})
}

// SetShowControls sets the help-overlay flag
func (s *Store) SetShowControls(show bool) {
	s.write(ChangeShowControls, func(st *State) bool {
		if st.ShowControls == show {
			return false
		}
		st.ShowControls = show
		return true
	})
}

// Subscribe registers an observer called after every effective write
// Observers run on the writer's goroutine in subscription order
// The returned function removes the observer and is safe to call more than once
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// write applies mutate under lock and notifies observers outside it when mutate reports a change
func (s *Store) write(change Change, mutate func(st *State) bool) {
	s.mu.Lock()
	if !mutate(&s.state) {
		s.mu.Unlock()
		return
	}
	snapshot := s.copyLocked()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, sub := range observers {
		sub.fn(snapshot, change)
	}
}

func (s *Store) copyLocked() State {
	st := s.state
	st.InfoPanel.Details = slices.Clone(st.InfoPanel.Details)
	return st
}
