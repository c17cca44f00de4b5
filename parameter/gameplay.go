package parameter

// Proximity
const (
	// ProximityThreshold is the distance below which an exhibit is entered (strict)
	ProximityThreshold = 2.0
)

// Exhibit idle motion, render-only
const (
	// ExhibitHoverBase and ExhibitHoverAmplitude describe the bobbing height
	ExhibitHoverBase      = 0.5
	ExhibitHoverAmplitude = 0.1

	// ExhibitHoverRate is the bob phase speed in radians per second
	ExhibitHoverRate = 1.0

	// ExhibitSpinRate is the slow spin in radians per second
	ExhibitSpinRate = 0.2
)

// Exhibit defaults for optional registry fields
const (
	ExhibitDefaultColor = "#ffffff"
)
