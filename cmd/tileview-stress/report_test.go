package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/tileview/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:    time.Second,
		Width:       256,
		Height:      256,
		Seed:        42,
		TotalFrames: 10,
		UpdateTime: world.FrameStats{
			Min: time.Millisecond,
			Max: 5 * time.Millisecond,
			Avg: 3 * time.Millisecond,
		},
		Systems: []world.SystemStats{
			{Name: "InputSystem", ExecutionCount: 10},
		},
		FinalPlayer: "(1.0, 2.0)",
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Grid:** 256x256")
	assert.Contains(t, out, "**Seed:** 42")
	assert.Contains(t, out, "**Frame Interval:** uncapped")
	assert.Contains(t, out, "- InputSystem: avg 0s, max 0s over 10 runs")
	assert.Contains(t, out, "**Final Player:** (1.0, 2.0)")
	assert.Contains(t, out, "**Avg:** 3ms")
	assert.Contains(t, out, "**Min:** 1ms")
	assert.Contains(t, out, "**Max:** 5ms")

	r.Interval = 16 * time.Millisecond
	buf.Reset()
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Frame Interval:** 16ms")
}

func TestPacedRunRecordsFrameTime(t *testing.T) {
	w, err := world.New(smallConfig(), rand.New(rand.NewPCG(3, 3)))
	require.NoError(t, err)
	scheduler := world.NewScheduler(w)
	world.RegisterDefaultSystems(scheduler, smallConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.NoError(t, scheduler.Run(ctx, time.Millisecond, newRandomWalk(rand.New(rand.NewPCG(3, 3)), 5)))

	stats := scheduler.GetStats()
	require.Positive(t, stats.FrameCount)
	assert.Positive(t, stats.Frame.Max)
	assert.LessOrEqual(t, stats.Frame.Min, stats.Frame.Max)
}

func smallConfig() world.Config {
	cfg := world.DefaultConfig()
	cfg.MapSize.X = 16
	cfg.MapSize.Y = 16
	return cfg
}
