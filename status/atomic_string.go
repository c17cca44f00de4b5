package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored strings in bytes, exhibit titles fit comfortably
const MaxStringLen = 64

// AtomicString provides atomic string access with a bounded length
// Zero value is ready to use (represents empty string)
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating on a rune boundary at MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
