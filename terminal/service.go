// Package terminal hosts a world in a tcell screen
package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Open creates and initialises the process terminal screen
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// Restore finalises the screen after a crash so the shell stays usable
func Restore(screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPANIC: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
}

// Service forwards screen events to a buffered channel from its own goroutine
type Service struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
}

// NewService creates a poll service with the given channel capacity
func NewService(screen tcell.Screen, capacity int) *Service {
	return &Service{
		screen:  screen,
		eventCh: make(chan tcell.Event, capacity),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the poll goroutine, repeated calls are no-ops
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.pollLoop()
}

func (s *Service) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			Restore(s.screen, r)
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalised
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends the poll goroutine and waits for it; the screen stays open
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	// Unblock PollEvent
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-s.doneCh
}

// Events returns the input event channel
func (s *Service) Events() <-chan tcell.Event {
	return s.eventCh
}
