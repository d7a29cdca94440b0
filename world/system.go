package world

// System is one step of the per-frame update. Systems run in registration
// order; a returned error halts the frame.
type System interface {
	Execute(frame *FrameContext) error
}
