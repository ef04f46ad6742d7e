package faros

// PerformanceLevel is the quality bucket suggested by recent frame rates.
type PerformanceLevel uint8

const (
	PerformanceLow PerformanceLevel = iota
	PerformanceMedium
	PerformanceHigh
)

func (l PerformanceLevel) String() string {
	switch l {
	case PerformanceHigh:
		return "high"
	case PerformanceMedium:
		return "medium"
	default:
		return "low"
	}
}

const fpsHistorySize = 60

// PerformanceMonitor keeps a rolling window of frame-rate samples.
type PerformanceMonitor struct {
	samples [fpsHistorySize]float64
	next    int
	count   int
}

// Record adds one frame-rate sample, evicting the oldest once the window is full.
func (m *PerformanceMonitor) Record(fps float64) {
	m.samples[m.next] = fps
	m.next = (m.next + 1) % fpsHistorySize
	if m.count < fpsHistorySize {
		m.count++
	}
}

// RecordFrame records the rate implied by a frame of dt seconds.
func (m *PerformanceMonitor) RecordFrame(dt float64) {
	if dt <= 0 {
		return
	}
	m.Record(1 / dt)
}

// Average returns the mean of the recorded samples, or 60 with no samples.
func (m *PerformanceMonitor) Average() float64 {
	if m.count == 0 {
		return 60
	}
	var sum float64
	for i := 0; i < m.count; i++ {
		sum += m.samples[i]
	}
	return sum / float64(m.count)
}

// Full reports whether the window holds a complete history.
func (m *PerformanceMonitor) Full() bool {
	return m.count == fpsHistorySize
}

// Level maps the average rate to a quality level.
func (m *PerformanceMonitor) Level() PerformanceLevel {
	avg := m.Average()
	switch {
	case avg >= 55:
		return PerformanceHigh
	case avg >= 35:
		return PerformanceMedium
	default:
		return PerformanceLow
	}
}

// ShouldReduceQuality reports a sustained average below 25 fps.
func (m *PerformanceMonitor) ShouldReduceQuality() bool {
	return m.count > 0 && m.Average() < 25
}

// ShouldIncreaseQuality reports a full window averaging above 55 fps.
func (m *PerformanceMonitor) ShouldIncreaseQuality() bool {
	return m.Full() && m.Average() > 55
}

// Reset drops every sample.
func (m *PerformanceMonitor) Reset() {
	*m = PerformanceMonitor{}
}
