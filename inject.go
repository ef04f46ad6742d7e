package faros

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKeyDown
	syntheticKeyUp
)

// syntheticEvent is a single injected input event. Pointer events use screen
// coordinates and replace the real mouse for the frame they are consumed in.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
	button  MouseButton
	key     ebiten.Key
}

// InjectPress queues a left-button press at (x, y). The event is consumed on
// the next Poll.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectMove queues a held-button move to (x, y). Use this between
// InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.InjectPress(x, y)
}

// InjectRelease queues a release at (x, y).
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		kind: syntheticPointer, x: x, y: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Input) InjectTap(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectSwipe queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). Minimum frames is 2.
func (in *Input) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// InjectKey queues a press and release of k. Consumes two frames.
func (in *Input) InjectKey(k ebiten.Key) {
	in.injectQueue = append(in.injectQueue,
		syntheticEvent{kind: syntheticKeyDown, key: k},
		syntheticEvent{kind: syntheticKeyUp, key: k},
	)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if a pointer event was consumed (real mouse input should be
// skipped this frame).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case syntheticKeyDown:
		in.KeyDown(evt.key)
		return false
	case syntheticKeyUp:
		in.KeyUp(evt.key)
		return false
	}
	in.processPointer(mousePointerID, evt.x, evt.y, evt.pressed, evt.button)
	return true
}
