package input

import "github.com/lixenwraith/portfolio-walk/parameter"

// DeviceMode selects the authoritative input source
type DeviceMode uint8

const (
	DeviceDesktop DeviceMode = iota
	DeviceMobile
)

func (m DeviceMode) String() string {
	if m == DeviceMobile {
		return "mobile"
	}
	return "desktop"
}

// DeviceModeForWidth classifies a viewport by its width in logical pixels
func DeviceModeForWidth(width float64) DeviceMode {
	if width < parameter.MobileViewportThreshold {
		return DeviceMobile
	}
	return DeviceDesktop
}
