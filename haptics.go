package faros

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// VibrationPattern alternates vibrate and pause durations, starting with a vibration.
type VibrationPattern []time.Duration

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Named patterns.
var (
	PatternTap          = VibrationPattern{ms(10)}
	PatternClick        = VibrationPattern{ms(20)}
	PatternSuccess      = VibrationPattern{ms(100), ms(50), ms(100)}
	PatternError        = VibrationPattern{ms(200), ms(100), ms(200), ms(100), ms(200)}
	PatternNotification = VibrationPattern{ms(150), ms(75), ms(150)}
	PatternHeartbeat    = VibrationPattern{ms(100), ms(30), ms(100), ms(30), ms(100), ms(200), ms(200), ms(30), ms(200), ms(30), ms(200), ms(200), ms(100), ms(30), ms(100), ms(30), ms(100)}
)

// Haptics plays vibration patterns on devices that support them. On other
// devices every call is a no-op.
type Haptics struct {
	enabled   bool
	sched     *Scheduler
	vibrate   func(time.Duration)
	pending   []*Timer
	Magnitude float64
}

// NewHaptics enables vibration only for mobile profiles reporting support.
func NewHaptics(p DeviceProfile, sched *Scheduler) *Haptics {
	h := &Haptics{
		enabled:   p.HasVibration && p.IsMobile,
		sched:     sched,
		Magnitude: 0.7,
	}
	h.vibrate = func(d time.Duration) {
		ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: h.Magnitude})
	}
	return h
}

// Enabled reports whether patterns will actually vibrate.
func (h *Haptics) Enabled() bool {
	return h != nil && h.enabled
}

// Play starts pattern, cancelling any pattern still in progress.
func (h *Haptics) Play(pattern VibrationPattern) {
	if !h.Enabled() || len(pattern) == 0 {
		return
	}
	h.Stop()
	var offset time.Duration
	for i, d := range pattern {
		if i%2 == 0 {
			pulse := d
			if offset == 0 {
				h.vibrate(pulse)
			} else {
				h.pending = append(h.pending, h.sched.After(offset, func() { h.vibrate(pulse) }))
			}
		}
		offset += d
	}
}

// Stop cancels the remaining pulses of the current pattern.
func (h *Haptics) Stop() {
	if h == nil {
		return
	}
	for _, t := range h.pending {
		t.Cancel()
	}
	h.pending = h.pending[:0]
}
