package parameter

import "time"

// Overlay Timers
const (
	// InfoPanelFadeOut is the visual close before the store is cleared
	InfoPanelFadeOut = 300 * time.Millisecond

	// HelpAutoCollapse folds the controls help after first display
	HelpAutoCollapse = 5 * time.Second

	// HelpFadeOut delays clearing the help flag after close
	HelpFadeOut = 300 * time.Millisecond

	// JoystickRevealDelay is the wait before the joystick accepts touches
	JoystickRevealDelay = 500 * time.Millisecond
)

// Loading Simulation
const (
	LoadingTickInterval = 200 * time.Millisecond
	LoadingStepMax      = 10.0
	LoadingComplete     = 100.0
	LoadingSettleDelay  = 500 * time.Millisecond
)

// Device Mode
const (
	// MobileViewportThreshold is the width in logical pixels below which touch input is authoritative
	MobileViewportThreshold = 768
)

// Virtual Joystick geometry in logical pixels
const (
	JoystickSize      = 120.0
	JoystickMaxRadius = JoystickSize / 3

	// JoystickMargin places the pad center from the bottom-left corner
	JoystickMargin = 32.0

	JoystickOpacityActive = 0.8
	JoystickOpacityIdle   = 0.5
)

// Terminal Layout
const (
	// TerminalCellWidthPx converts terminal columns to logical pixels for device mode
	TerminalCellWidthPx = 8

	// TerminalColumnsPerUnit and TerminalRowsPerUnit scale world units onto the grid
	// Cells are roughly twice as tall as wide
	TerminalColumnsPerUnit = 3.0
	TerminalRowsPerUnit    = 1.5

	// TerminalKeyHoldInitial covers the terminal's auto-repeat delay after the first press
	TerminalKeyHoldInitial = 550 * time.Millisecond

	// TerminalKeyHoldRepeat is the release window once auto-repeat is flowing
	TerminalKeyHoldRepeat = 120 * time.Millisecond

	InfoPanelWidth = 56
	HelpPanelWidth = 36
)
