package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation/render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReferenceFrame is the frame duration the per-tick smoothing factors were tuned at
	// Time-constant smoothing rescales factors relative to it
	ReferenceFrame = time.Second / 60

	// MaxFrameDelta caps a single tick after stalls (window drag, debugger)
	MaxFrameDelta = 100 * time.Millisecond
)

// Input event buffering
const (
	// EventChannelSize is the capacity of frontend event channels
	EventChannelSize = 256
)
