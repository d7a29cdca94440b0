package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileview/world"
)

// WorldInspector shows the player, the camera and the ground under the player.
type WorldInspector struct{}

func (wi *WorldInspector) Render(w *world.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 240), imgui.CondOnce)

	if !imgui.BeginV("World", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range InspectLines(w) {
		imgui.Text(line)
	}

	if w.Grid != nil && imgui.TreeNodeStr("Texture Histogram") {
		for idx, count := range w.Grid.Histogram() {
			imgui.BulletText(fmt.Sprintf("#%d: %d", idx, count))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// InspectLines renders the inspector's text without touching ImGui.
func InspectLines(w *world.World) []string {
	var lines []string

	player, err := w.Player()
	if err != nil {
		lines = append(lines, err.Error())
	} else {
		pos := player.Translation
		lines = append(lines,
			fmt.Sprintf("Player: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z),
			fmt.Sprintf("Animation Frame: %d", player.AnimationIndex),
		)
		if w.Grid != nil {
			if tile, ok := w.Grid.TileAt(pos.XY()); ok {
				lines = append(lines, fmt.Sprintf("Tile: (%d, %d) texture %d", tile.Pos.X, tile.Pos.Y, tile.TextureIndex))
			} else {
				lines = append(lines, "Tile: off grid")
			}
		}
	}

	camera, err := w.Camera()
	if err != nil {
		lines = append(lines, err.Error())
	} else {
		pos := camera.Translation
		lines = append(lines, fmt.Sprintf("Camera: (%.1f, %.1f)", pos.X, pos.Y))
		if player != nil {
			lines = append(lines, fmt.Sprintf("Camera Lag: %.2f", pos.XY().Sub(player.Translation.XY()).Length()))
		}
	}

	if w.Grid != nil {
		lines = append(lines, fmt.Sprintf("Grid: %dx%d", w.Grid.Size.X, w.Grid.Size.Y))
	}
	return lines
}
