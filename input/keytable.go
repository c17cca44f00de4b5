package input

import "fmt"

// Direction is one of the four movement keys
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBack
	DirectionLeft
	DirectionRight
	directionCount
)

var directionNames = [directionCount]string{"none", "forward", "back", "left", "right"}

func (d Direction) String() string {
	if d >= directionCount {
		return "invalid"
	}
	return directionNames[d]
}

// KeyTable maps key identifiers to directions
// Identifiers follow browser KeyboardEvent.key values and are case-sensitive
type KeyTable map[string]Direction

// DefaultKeyTable returns WASD plus arrow bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		"w":          DirectionForward,
		"ArrowUp":    DirectionForward,
		"s":          DirectionBack,
		"ArrowDown":  DirectionBack,
		"a":          DirectionLeft,
		"ArrowLeft":  DirectionLeft,
		"d":          DirectionRight,
		"ArrowRight": DirectionRight,
	}
}

// Lookup resolves a key identifier, unknown keys map to DirectionNone
func (t KeyTable) Lookup(key string) (Direction, bool) {
	d, ok := t[key]
	if !ok || d == DirectionNone || d >= directionCount {
		return DirectionNone, false
	}
	return d, true
}

// ParseDirection reads a direction name as written in config files
func ParseDirection(s string) (Direction, error) {
	for d := DirectionForward; d < directionCount; d++ {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}
