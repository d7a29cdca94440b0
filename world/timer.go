package world

import "time"

// FrameTimer measures wall-clock time between frames.
type FrameTimer struct {
	now           func() time.Time
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return newFrameTimerWithClock(time.Now)
}

func newFrameTimerWithClock(now func() time.Time) *FrameTimer {
	return &FrameTimer{
		now:           now,
		lastFrameTime: now(),
	}
}

// DeltaTime returns the seconds elapsed since the previous call (or since the
// timer was created) and never returns a negative value.
func (ft *FrameTimer) DeltaTime() float32 {
	now := ft.now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	if delta < 0 {
		return 0
	}
	return delta
}
