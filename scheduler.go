package faros

import (
	"sort"
	"time"
)

// Timer is a single-shot callback registered with a Scheduler.
type Timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	sched *Scheduler
	state timerState
}

type timerState uint8

const (
	timerPending timerState = iota
	timerFired
	timerCancelled
)

// Cancel prevents the timer from firing. Cancelling a fired or already
// cancelled timer, or a nil timer, is a no-op. It reports whether the call
// stopped a pending timer.
func (t *Timer) Cancel() bool {
	if t == nil || t.state != timerPending {
		return false
	}
	t.state = timerCancelled
	t.sched.remove(t)
	return true
}

// Pending reports whether the timer has neither fired nor been cancelled.
func (t *Timer) Pending() bool {
	return t != nil && t.state == timerPending
}

// Scheduler runs single-shot callbacks against frame time. It never starts
// goroutines: callbacks run inside Advance on the caller's stack, so they may
// touch frame state freely.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated frame time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d of frame time has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn, sched: s}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires every timer that came due,
// earliest first. Timers scheduled by a callback that are already due fire in
// the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	for {
		t := s.nextDue()
		if t == nil {
			return
		}
		s.remove(t)
		t.state = timerFired
		if t.fn != nil {
			t.fn()
		}
	}
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.state = timerCancelled
	}
	s.timers = s.timers[:0]
}

func (s *Scheduler) nextDue() *Timer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		a, b := s.timers[i], s.timers[j]
		if a.due != b.due {
			return a.due < b.due
		}
		return a.seq < b.seq
	})
	if s.timers[0].due > s.now {
		return nil
	}
	return s.timers[0]
}

func (s *Scheduler) remove(t *Timer) {
	for i, o := range s.timers {
		if o == t {
			copy(s.timers[i:], s.timers[i+1:])
			s.timers[len(s.timers)-1] = nil
			s.timers = s.timers[:len(s.timers)-1]
			return
		}
	}
}
