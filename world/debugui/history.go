package debugui

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

// FrameSummary condenses a FrameHistory.
type FrameSummary struct {
	AvgFrameTime float32
	MinFrameTime float32
	MaxFrameTime float32
	AvgFPS       float32
	Samples      int
}

func NewFrameHistory(size int) *FrameHistory {
	if size < 1 {
		size = 1
	}
	return &FrameHistory{samples: make([]float32, size)}
}

// Record stores a frame's delta time, given in seconds.
func (h *FrameHistory) Record(deltaTime float32) {
	h.samples[h.next] = deltaTime * 1000.0
	h.next = (h.next + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Samples returns the backing ring, oldest entries possibly overwritten.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// Summary averages only the recorded samples.
func (h *FrameHistory) Summary() FrameSummary {
	if h.filled == 0 {
		return FrameSummary{}
	}

	s := FrameSummary{
		MinFrameTime: h.samples[0],
		MaxFrameTime: h.samples[0],
		Samples:      h.filled,
	}

	var sum float32
	for _, ft := range h.samples[:h.filled] {
		sum += ft
		if ft < s.MinFrameTime {
			s.MinFrameTime = ft
		}
		if ft > s.MaxFrameTime {
			s.MaxFrameTime = ft
		}
	}
	s.AvgFrameTime = sum / float32(h.filled)
	if s.AvgFrameTime > 0 {
		s.AvgFPS = 1000.0 / s.AvgFrameTime
	}
	return s
}
