package input

// Aggregator merges keyboard and joystick into one intent per tick
// Exactly one source is authoritative, chosen by device mode
type Aggregator struct {
	keyboard *Keyboard
	joystick *Joystick
	mode     DeviceMode
}

// NewAggregator creates an aggregator in desktop mode
func NewAggregator(keyboard *Keyboard, joystick *Joystick) *Aggregator {
	if keyboard == nil {
		keyboard = NewKeyboard(nil)
	}
	if joystick == nil {
		joystick = NewJoystick(0)
	}
	return &Aggregator{
		keyboard: keyboard,
		joystick: joystick,
		mode:     DeviceDesktop,
	}
}

// Keyboard returns the keyboard source
func (a *Aggregator) Keyboard() *Keyboard { return a.keyboard }

// Joystick returns the joystick source
func (a *Aggregator) Joystick() *Joystick { return a.joystick }

// Mode returns the current device mode
func (a *Aggregator) Mode() DeviceMode { return a.mode }

// SetDeviceMode switches the authoritative source and reports whether the mode changed
// The source losing authority is reset so no stale press leaks back later
func (a *Aggregator) SetDeviceMode(mode DeviceMode) bool {
	if mode == a.mode {
		return false
	}
	switch a.mode {
	case DeviceDesktop:
		a.keyboard.Reset()
	case DeviceMobile:
		a.joystick.Hide()
	}
	a.mode = mode
	return true
}

// Intent samples the authoritative source
func (a *Aggregator) Intent() Intent {
	if a.mode == DeviceMobile {
		return a.joystick.Intent()
	}
	return a.keyboard.Intent()
}
