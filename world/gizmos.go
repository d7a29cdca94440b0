package world

import (
	"image/color"

	"github.com/plus3/tileview/vec"
)

// CircleGizmo is a diagnostic circle in world space.
type CircleGizmo struct {
	Center vec.Vec2
	Radius float32
	Color  color.RGBA
}

// Gizmos collects diagnostic shapes produced during a frame. A nil *Gizmos
// discards everything, so systems can draw unconditionally.
type Gizmos struct {
	circles []CircleGizmo
}

func NewGizmos() *Gizmos {
	return &Gizmos{}
}

// Circle queues a circle outline.
func (g *Gizmos) Circle(center vec.Vec2, radius float32, c color.RGBA) {
	if g == nil {
		return
	}
	g.circles = append(g.circles, CircleGizmo{Center: center, Radius: radius, Color: c})
}

// Circles returns the queued circles.
func (g *Gizmos) Circles() []CircleGizmo {
	if g == nil {
		return nil
	}
	return g.circles
}

// Clear drops all queued shapes, keeping capacity.
func (g *Gizmos) Clear() {
	if g == nil {
		return
	}
	g.circles = g.circles[:0]
}
