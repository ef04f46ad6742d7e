package faros

import (
	"math"
	"time"
)

// Gesture thresholds.
const (
	TapMaxDistance    = 10.0
	TapMaxDuration    = 300 * time.Millisecond
	SwipeMinDistance  = 30.0
	DoubleTapMaxDelay = 400 * time.Millisecond
)

// Swipe describes a classified swipe.
type Swipe struct {
	Direction  Direction
	Distance   float64
	Start, End Vec2
	DeltaX     float64
	DeltaY     float64
	Duration   time.Duration
	PointerID  int
}

// GestureHandler receives classified input. Scenes implement the hooks they
// care about and embed NopGestures for the rest.
type GestureHandler interface {
	OnSingleTap(x, y float64)
	OnDoubleTap(x, y float64)
	OnSwipe(sw Swipe)
	OnPinch(scale float64)
	OnKeyPress(ev KeyEvent)
	OnKeyRelease(ev KeyEvent)
}

// NopGestures implements GestureHandler with diagnostic no-ops.
type NopGestures struct{}

func (NopGestures) OnSingleTap(x, y float64) { logger().Debug("single tap", "x", x, "y", y) }
func (NopGestures) OnDoubleTap(x, y float64) { logger().Debug("double tap", "x", x, "y", y) }
func (NopGestures) OnSwipe(sw Swipe) {
	logger().Debug("swipe", "direction", sw.Direction.String(), "distance", sw.Distance)
}
func (NopGestures) OnPinch(scale float64) { logger().Debug("pinch", "scale", scale) }
func (NopGestures) OnKeyPress(ev KeyEvent) {
	logger().Debug("key press", "key", ev.Name, "code", ev.Code)
}
func (NopGestures) OnKeyRelease(ev KeyEvent) {
	logger().Debug("key release", "key", ev.Name, "code", ev.Code)
}

var _ GestureHandler = NopGestures{}

// gestureKind is the result of classifying a released contact.
type gestureKind uint8

const (
	gestureNone gestureKind = iota
	gestureTap
	gestureSwipe
)

// classifyRelease decides what a contact that travelled from start to end
// over duration was.
func classifyRelease(start, end Vec2, duration time.Duration) gestureKind {
	dist := end.Dist(start)
	if duration < TapMaxDuration && dist < TapMaxDistance {
		return gestureTap
	}
	if dist >= SwipeMinDistance {
		return gestureSwipe
	}
	return gestureNone
}

// swipeDirection picks the dominant axis. Equal displacement counts as horizontal.
func swipeDirection(dx, dy float64) Direction {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// PinchRecord is the state of a two-contact pinch.
type PinchRecord struct {
	StartDistance   float64
	CurrentDistance float64
	Scale           float64
}

type tapRecord struct {
	time time.Duration
	pos  Vec2
	set  bool
}

// isDoubleTap reports whether a tap at pos and now follows prev closely
// enough in time and space.
func (prev tapRecord) isDoubleTap(now time.Duration, pos Vec2) bool {
	return prev.set &&
		now-prev.time < DoubleTapMaxDelay &&
		pos.Dist(prev.pos) < TapMaxDistance
}
