package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileview/render"
	"github.com/plus3/tileview/world"
	"github.com/plus3/tileview/world/debugui"
	debugui_ebiten "github.com/plus3/tileview/world/debugui/ebiten"
)

// Game implements ebiten.Game and drives one world frame per rendered frame.
type Game struct {
	World     *world.World
	Scheduler *world.Scheduler
	Renderer  *render.Renderer
	Gizmos    *world.Gizmos
	Timer     *world.FrameTimer
	Input     world.InputSource

	// Either the ImGui overlay or the HUD is set.
	Imgui   *debugui_ebiten.ImguiBackend
	Overlay *debugui.ImguiSystem
	Perf    *debugui.PerformanceStats
	HUD     *render.HUD
	System  *debugui.SystemSampler

	lastDelta float32
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := g.Timer.DeltaTime()
	g.lastDelta = dt
	if g.Perf != nil {
		g.Perf.Record(dt)
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
		defer g.Imgui.EndFrame()
	}

	return g.Scheduler.Once(dt, g.Input.Pressed())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.World, g.Gizmos)

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
		return
	}
	if g.HUD != nil {
		lines := render.PerfLines(
			ebiten.ActualFPS(),
			float64(g.lastDelta)*1000,
			g.World.Stats().EntityCount,
			g.Renderer.DrawnTiles,
		)
		if g.System != nil {
			lines = append(lines, g.System.Sample().Lines()...)
		}
		g.HUD.Draw(screen, lines)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
