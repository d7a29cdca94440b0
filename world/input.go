package world

import "github.com/plus3/tileview/vec"

// Key is a logical movement key.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// KeySet is the set of movement keys held during a frame.
type KeySet uint8

// Keys builds a KeySet from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns s with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// InputSource reports the movement keys held right now.
type InputSource interface {
	Pressed() KeySet
}

// MapInput turns held keys into a unit direction, or the zero vector when the
// keys cancel out or none are held. Up is +y.
func MapInput(keys KeySet) vec.Vec2 {
	var dir vec.Vec2
	if keys.Has(KeyUp) {
		dir.Y += 1
	}
	if keys.Has(KeyDown) {
		dir.Y -= 1
	}
	if keys.Has(KeyLeft) {
		dir.X -= 1
	}
	if keys.Has(KeyRight) {
		dir.X += 1
	}
	return dir.NormalizeOrZero()
}

// InputSystem maps the frame's held keys into its movement direction.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *FrameContext) error {
	frame.Direction = MapInput(frame.Keys)
	return nil
}
