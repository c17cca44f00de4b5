package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Proximity chimes
const (
	ChimeEnterFreqLow  = 660.0
	ChimeEnterFreqHigh = 880.0
	ChimeLeaveFreq     = 440.0
	ChimeNoteDuration  = 70 * time.Millisecond
	ChimeVolume        = 0.2
	ChimeAttack        = 5 * time.Millisecond
	ChimeRelease       = 40 * time.Millisecond
)
