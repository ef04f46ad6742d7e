package faros

// EventType identifies a recognized gesture.
type EventType uint8

const (
	EventSingleTap EventType = iota
	EventDoubleTap
	EventSwipe
	EventPinch
	EventKeyPress
	EventKeyRelease
	EventSceneChange
	EventMarkerRevealed
)

func (e EventType) String() string {
	switch e {
	case EventSingleTap:
		return "tap"
	case EventDoubleTap:
		return "doubletap"
	case EventSwipe:
		return "swipe"
	case EventPinch:
		return "pinch"
	case EventKeyPress:
		return "keypress"
	case EventKeyRelease:
		return "keyrelease"
	case EventSceneChange:
		return "scene"
	case EventMarkerRevealed:
		return "reveal"
	default:
		return "unknown"
	}
}

// EventSink is the interface for optional ECS integration.
// When set on an App, recognized gestures and game events are forwarded.
type EventSink interface {
	EmitEvent(event Event)
}

// Event carries gesture and game event data for the ECS bridge.
type Event struct {
	Type EventType
	// Scene is the current scene when the event was raised.
	Scene string
	X, Y  float64
	// Swipe fields (valid for EventSwipe)
	Swipe Swipe
	// Scale is the pinch scale (valid for EventPinch).
	Scale float64
	// Key is set for EventKeyPress and EventKeyRelease.
	Key KeyEvent
	// Name is the target scene (EventSceneChange) or marker (EventMarkerRevealed).
	Name string
}

// SetEventSink sets the optional ECS bridge. A nil sink disables it.
func (a *App) SetEventSink(sink EventSink) {
	a.sink = sink
}

func (a *App) emit(ev Event) {
	if a.sink == nil {
		return
	}
	if cur := a.scenes.Current(); cur != nil {
		ev.Scene = cur.Name()
	}
	a.sink.EmitEvent(ev)
}
