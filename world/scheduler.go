package world

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	FrameCount      int64
	TotalExecutions int64
	Frame           FrameStats
	Systems         []SystemStats
}

// FrameStats summarizes the wall time of completed frames, deferred work
// included.
type FrameStats struct {
	Min  time.Duration
	Max  time.Duration
	Avg  time.Duration
	Last time.Duration
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives the world one frame at a time, running its systems in the
// order they were registered.
type Scheduler struct {
	world       *World
	gizmos      *Gizmos
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	frameMin    time.Duration
	frameMax    time.Duration
	frameTotal  time.Duration
	frameLast   time.Duration
}

// NewScheduler creates a scheduler that owns the frame loop of w.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{
		world:   w,
		systems: make([]System, 0),
	}
}

// SetGizmos routes diagnostic shapes into g. Without it they are dropped.
func (s *Scheduler) SetGizmos(g *Gizmos) {
	s.gizmos = g
}

// World returns the world this scheduler drives.
func (s *Scheduler) World() *World {
	return s.world
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	if system == nil {
		panic("world: cannot register a nil system")
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs a single frame with the given delta time and held keys. The
// first failing system aborts the frame and its error is returned; deferred
// work queued during that frame is dropped.
func (s *Scheduler) Once(dt float32, keys KeySet) error {
	frameStart := time.Now()
	s.gizmos.Clear()
	frame := newFrameContext(dt, keys, s.world, s.gizmos)

	for i, system := range s.systems {
		start := time.Now()
		err := system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			return fmt.Errorf("%s: %w", stats.name, err)
		}
	}

	frame.flush()
	s.recordFrame(time.Since(frameStart))
	return nil
}

func (s *Scheduler) recordFrame(d time.Duration) {
	if s.frames == 0 || d < s.frameMin {
		s.frameMin = d
	}
	if d > s.frameMax {
		s.frameMax = d
	}
	s.frames++
	s.frameTotal += d
	s.frameLast = d
}

// Run executes frames at the given interval, polling input before each one,
// until the context is cancelled or a frame fails.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, input InputSource) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := float32(now.Sub(lastTime).Seconds())
			lastTime = now

			var keys KeySet
			if input != nil {
				keys = input.Pressed()
			}
			if err := s.Once(dt, keys); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}
	if s.frames > 0 {
		stats.Frame = FrameStats{
			Min:  s.frameMin,
			Max:  s.frameMax,
			Avg:  s.frameTotal / time.Duration(s.frames),
			Last: s.frameLast,
		}
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// RegisterDefaultSystems registers the stock frame: input, then movement, then
// the camera.
func RegisterDefaultSystems(s *Scheduler, cfg Config) {
	s.Register(&InputSystem{})
	s.Register(&PlayerMovementSystem{Speed: cfg.PlayerSpeed})
	s.Register(&CameraFollowSystem{SmoothingRate: cfg.SmoothingRate})
}
