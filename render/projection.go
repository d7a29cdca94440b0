package render

import "github.com/plus3/tileview/vec"

// Projection maps world space (y up, origin at the camera) to screen space
// (y down, origin at the top-left corner).
type Projection struct {
	Camera vec.Vec2
	Width  int
	Height int
}

// WorldToScreen returns the screen pixel of the world point p.
func (p Projection) WorldToScreen(w vec.Vec2) (float32, float32) {
	x := w.X - p.Camera.X + float32(p.Width)/2
	y := float32(p.Height)/2 - (w.Y - p.Camera.Y)
	return x, y
}

// ScreenToWorld is the inverse of WorldToScreen.
func (p Projection) ScreenToWorld(x, y float32) vec.Vec2 {
	return vec.Vec2{
		X: x - float32(p.Width)/2 + p.Camera.X,
		Y: float32(p.Height)/2 - y + p.Camera.Y,
	}
}

// Bounds returns the world-space rectangle covered by the screen, grown by
// margin on every side.
func (p Projection) Bounds(margin float32) (lo, hi vec.Vec2) {
	halfW := float32(p.Width)/2 + margin
	halfH := float32(p.Height)/2 + margin
	lo = vec.Vec2{X: p.Camera.X - halfW, Y: p.Camera.Y - halfH}
	hi = vec.Vec2{X: p.Camera.X + halfW, Y: p.Camera.Y + halfH}
	return lo, hi
}
