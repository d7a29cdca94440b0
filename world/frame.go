package world

import "github.com/plus3/tileview/vec"

// FrameContext carries everything a system may use during one frame. It is
// created fresh for each frame and discarded afterwards.
type FrameContext struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float32
	// Keys are the movement keys held this frame.
	Keys KeySet
	// Direction is filled by InputSystem for the systems after it.
	Direction vec.Vec2

	World  *World
	Gizmos *Gizmos

	deferred []func()
}

func newFrameContext(dt float32, keys KeySet, w *World, gizmos *Gizmos) *FrameContext {
	if !(dt > 0) {
		dt = 0
	}
	return &FrameContext{
		DeltaTime: dt,
		Keys:      keys,
		World:     w,
		Gizmos:    gizmos,
	}
}

// Defer queues fn to run after every system of the frame has executed.
func (f *FrameContext) Defer(fn func()) {
	f.deferred = append(f.deferred, fn)
}

func (f *FrameContext) flush() {
	for _, fn := range f.deferred {
		fn()
	}
	f.deferred = f.deferred[:0]
}
