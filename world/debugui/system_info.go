package debugui

import (
	"fmt"
	"runtime"
	"time"
)

// SystemInfo is a snapshot of process and host figures.
type SystemInfo struct {
	HeapAlloc    uint64
	Sys          uint64
	NumGC        uint32
	NumCPU       int
	NumGoroutine int
	GOOS         string
	GOARCH       string
}

// ReadSystemInfo samples the Go runtime. It stops the world briefly.
func ReadSystemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemInfo{
		HeapAlloc:    mem.HeapAlloc,
		Sys:          mem.Sys,
		NumGC:        mem.NumGC,
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
	}
}

// Lines formats info for the overlay and the HUD.
func (info SystemInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Heap: %.2f MiB  Sys: %.2f MiB", mib(info.HeapAlloc), mib(info.Sys)),
		fmt.Sprintf("GC Cycles: %d  Goroutines: %d", info.NumGC, info.NumGoroutine),
		fmt.Sprintf("Host: %s/%s, %d CPUs", info.GOOS, info.GOARCH, info.NumCPU),
	}
}

func mib(v uint64) float64 {
	return float64(v) / 1024 / 1024
}

// SystemSampler rereads SystemInfo at most once per Interval so the per-frame
// callers do not stop the world every frame.
type SystemSampler struct {
	Interval time.Duration

	now  func() time.Time
	read func() SystemInfo
	last time.Time
	info SystemInfo
	ok   bool
}

func NewSystemSampler(interval time.Duration) *SystemSampler {
	return &SystemSampler{
		Interval: interval,
		now:      time.Now,
		read:     ReadSystemInfo,
	}
}

// Sample returns the latest snapshot, refreshing it when it is stale.
func (s *SystemSampler) Sample() SystemInfo {
	now := s.now()
	if !s.ok || now.Sub(s.last) >= s.Interval || now.Before(s.last) {
		s.info = s.read()
		s.last = now
		s.ok = true
	}
	return s.info
}
