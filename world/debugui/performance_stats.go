package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tileview/world"
)

// PerformanceStats is the frame time / entity count window.
type PerformanceStats struct {
	History *FrameHistory
	System  *SystemSampler
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		History: NewFrameHistory(historyFrames),
		System:  NewSystemSampler(time.Second),
	}
}

// Record feeds one frame's delta time, in seconds, into the graph.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.History.Record(deltaTime)
}

func (ps *PerformanceStats) Render(scheduler *world.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	summary := ps.History.Summary()
	stats := scheduler.World().Stats()

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", summary.AvgFrameTime, summary.AvgFPS))
	imgui.Text(fmt.Sprintf("Min/Max: %.2f / %.2f ms", summary.MinFrameTime, summary.MaxFrameTime))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Tiles: %d", stats.TileCount))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.History.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		sched := scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d", sched.FrameCount))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Min (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableHeadersRow()

			for _, sys := range sched.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.AvgDuration.Microseconds())/1000))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MinDuration.Microseconds())/1000))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.3f", float64(sys.MaxDuration.Microseconds())/1000))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System") {
		for _, line := range ps.System.Sample().Lines() {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}
