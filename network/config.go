// Package network serves isolated worlds to browser clients over websockets
package network

import (
	"time"

	"github.com/lixenwraith/portfolio-walk/parameter"
)

// Config holds websocket server configuration
type Config struct {
	// Address to bind
	Address string

	// Path of the websocket endpoint; status is served next to it
	Path       string
	StatusPath string

	// Connection limits, zero means unlimited
	MaxSessions int

	// Timing
	FrameInterval    time.Duration
	MaxFrameDelta    time.Duration
	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	InboxSize       int

	// MaxMessageSize caps one client frame
	MaxMessageSize int64

	// AllowedOrigins restricts browser origins, empty accepts any
	AllowedOrigins []string
}

// DefaultConfig returns local development defaults
func DefaultConfig() *Config {
	return &Config{
		Address:          ":8080",
		Path:             "/ws",
		StatusPath:       "/status",
		MaxSessions:      64,
		FrameInterval:    parameter.FrameUpdateInterval,
		MaxFrameDelta:    parameter.MaxFrameDelta,
		HandshakeTimeout: 5 * time.Second,
		ReadTimeout:      60 * time.Second,
		WriteTimeout:     5 * time.Second,
		ReadBufferSize:   4 * 1024,
		WriteBufferSize:  64 * 1024,
		InboxSize:        parameter.EventChannelSize,
		MaxMessageSize:   16 * 1024,
	}
}
