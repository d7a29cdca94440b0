package world

import "github.com/plus3/tileview/vec"

// Transform places an entity in world space.
type Transform struct {
	Translation vec.Vec3
}

// Animation frame indices into the character sheet.
const (
	AnimationIdle     = 0
	AnimationMovingUp = 1
)

// Player is the controllable character.
type Player struct {
	Transform
	AnimationIndex int
}

// Camera frames the view. Only its x and y matter when rendering.
type Camera struct {
	Transform
}
