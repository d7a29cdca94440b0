// Package debugui provides the Dear ImGui diagnostics overlay of the viewer.
// The overlay is optional: the world runs identically without it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileview/world"
)

// ImguiItem holds a Dear ImGui render function queued every frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. The frame driver consults it before forwarding movement keys.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every registered item's render function to the end of the
// frame and refreshes the input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add registers a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *world.FrameContext) error {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Defer(item.Render)
	}
	return nil
}

// Install registers the stock diagnostics windows on overlay and returns the
// performance window so the caller can feed it frame times.
func Install(overlay *ImguiSystem, scheduler *world.Scheduler, historyFrames int) *PerformanceStats {
	perf := NewPerformanceStats(historyFrames)
	overlay.Add(func() { perf.Render(scheduler) })

	inspector := &WorldInspector{}
	overlay.Add(func() { inspector.Render(scheduler.World()) })
	return perf
}
