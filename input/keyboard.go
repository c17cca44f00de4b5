package input

// Keyboard tracks press state per direction
// Two keys bound to the same direction share one flag, releasing either clears it
type Keyboard struct {
	table   KeyTable
	pressed [directionCount]bool
}

// NewKeyboard creates a keyboard source, nil table selects DefaultKeyTable
func NewKeyboard(table KeyTable) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{table: table}
}

// KeyDown marks the key's direction pressed and reports whether the key is bound
func (k *Keyboard) KeyDown(key string) bool {
	d, ok := k.table.Lookup(key)
	if !ok {
		return false
	}
	k.pressed[d] = true
	return true
}

// KeyUp clears the key's direction and reports whether the key is bound
func (k *Keyboard) KeyUp(key string) bool {
	d, ok := k.table.Lookup(key)
	if !ok {
		return false
	}
	k.pressed[d] = false
	return true
}

// Pressed reports the state of a direction
func (k *Keyboard) Pressed(d Direction) bool {
	if d >= directionCount {
		return false
	}
	return k.pressed[d]
}

// Reset releases every direction
func (k *Keyboard) Reset() {
	k.pressed = [directionCount]bool{}
}

// Intent combines pressed directions, opposing keys cancel out
func (k *Keyboard) Intent() Intent {
	var i Intent
	if k.pressed[DirectionForward] {
		i.Forward++
	}
	if k.pressed[DirectionBack] {
		i.Forward--
	}
	if k.pressed[DirectionRight] {
		i.Right++
	}
	if k.pressed[DirectionLeft] {
		i.Right--
	}
	return i.Clamp()
}
