package world

import "github.com/plus3/tileview/vec"

// FollowCamera moves c toward target by a fraction rate*dt of the remaining
// distance, clamped to [0,1] so the camera never overshoots.
func FollowCamera(c *Camera, target vec.Vec3, rate, dt float32) {
	t := vec.Clamp01(rate * dt)
	c.Translation = c.Translation.Lerp(target, t)
}

// UpdateCamera moves the world's camera toward its player. It fails with
// ErrNoCameraEntity or ErrNoPlayerEntity unless both are present exactly once.
func UpdateCamera(w *World, rate, dt float32) (*Camera, error) {
	c, err := w.Camera()
	if err != nil {
		return nil, err
	}
	p, err := w.Player()
	if err != nil {
		return nil, err
	}
	FollowCamera(c, p.Translation, rate, dt)
	return c, nil
}

// CameraFollowSystem keeps the camera trailing the player.
type CameraFollowSystem struct {
	SmoothingRate float32
}

func (s *CameraFollowSystem) Execute(frame *FrameContext) error {
	_, err := UpdateCamera(frame.World, s.SmoothingRate, frame.DeltaTime)
	return err
}
