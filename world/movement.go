package world

import (
	"image/color"

	"github.com/plus3/tileview/vec"
)

var playerMarkerColor = color.RGBA{R: 255, A: 255}

// MovePlayer advances p along dir at speed for dt seconds and picks the pose
// for this frame: moving up if dir points up at all, idle otherwise.
func MovePlayer(p *Player, dir vec.Vec2, speed, dt float32) {
	if dir.Y > 0 {
		p.AnimationIndex = AnimationMovingUp
	} else {
		p.AnimationIndex = AnimationIdle
	}

	step := dir.Scale(speed * dt)
	p.Translation.X += step.X
	p.Translation.Y += step.Y
}

// UpdatePlayer moves the world's player. It fails with ErrNoPlayerEntity
// unless the world has exactly one player.
func UpdatePlayer(w *World, dir vec.Vec2, speed, dt float32) (*Player, error) {
	p, err := w.Player()
	if err != nil {
		return nil, err
	}
	MovePlayer(p, dir, speed, dt)
	return p, nil
}

// PlayerMovementSystem moves the player along the frame's direction and drops
// a marker at its new position.
type PlayerMovementSystem struct {
	Speed float32
}

func (s *PlayerMovementSystem) Execute(frame *FrameContext) error {
	p, err := UpdatePlayer(frame.World, frame.Direction, s.Speed, frame.DeltaTime)
	if err != nil {
		return err
	}
	frame.Gizmos.Circle(p.Translation.XY(), 2, playerMarkerColor)
	return nil
}
