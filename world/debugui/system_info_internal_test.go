package debugui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemInfoLines(t *testing.T) {
	info := SystemInfo{
		HeapAlloc:    3 * 1024 * 1024,
		Sys:          12 * 1024 * 1024,
		NumGC:        7,
		NumCPU:       8,
		NumGoroutine: 5,
		GOOS:         "linux",
		GOARCH:       "amd64",
	}

	assert.Equal(t, []string{
		"Heap: 3.00 MiB  Sys: 12.00 MiB",
		"GC Cycles: 7  Goroutines: 5",
		"Host: linux/amd64, 8 CPUs",
	}, info.Lines())
}

func TestReadSystemInfo(t *testing.T) {
	info := ReadSystemInfo()
	assert.Positive(t, info.Sys)
	assert.Positive(t, info.NumCPU)
	assert.Positive(t, info.NumGoroutine)
	assert.NotEmpty(t, info.GOOS)
	assert.NotEmpty(t, info.GOARCH)
}

func TestSystemSampler(t *testing.T) {
	current := time.Unix(1000, 0)
	reads := 0

	s := NewSystemSampler(time.Second)
	s.now = func() time.Time { return current }
	s.read = func() SystemInfo {
		reads++
		return SystemInfo{NumGC: uint32(reads)}
	}

	assert.Equal(t, uint32(1), s.Sample().NumGC)

	current = current.Add(500 * time.Millisecond)
	assert.Equal(t, uint32(1), s.Sample().NumGC)

	current = current.Add(500 * time.Millisecond)
	assert.Equal(t, uint32(2), s.Sample().NumGC)

	current = current.Add(-time.Minute)
	assert.Equal(t, uint32(3), s.Sample().NumGC)
	assert.Equal(t, 3, reads)
}
