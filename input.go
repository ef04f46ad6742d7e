package faros

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	maxPointers    = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointerID = 0
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Touch is one active contact.
type Touch struct {
	ID             int
	X, Y           float64
	StartX, StartY float64
	StartTime      time.Duration
	pinched        bool
}

// MouseState is the last known mouse position and button state.
type MouseState struct {
	X, Y    float64
	Pressed bool
	Button  MouseButton

	start     Vec2
	startTime time.Duration
}

// --- Per-pointer polling state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// Input normalizes mouse, touch and keyboard events into one state and
// classifies contacts into taps, double taps, swipes and pinches. Events
// arrive either from Poll, which reads Ebitengine once per frame, or from
// the Touch*/Mouse*/Key* methods directly.
type Input struct {
	now      time.Duration
	touches  []Touch
	mouse    MouseState
	keys     *KeySet
	pinch    *PinchRecord
	lastTap  tapRecord
	handler  GestureHandler
	joystick *Joystick
	haptics  *Haptics

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	keyBuf       []ebiten.Key
	injectQueue  []syntheticEvent
}

// NewInput creates an Input that reports gestures to handler. A nil handler
// gets NopGestures.
func NewInput(handler GestureHandler) *Input {
	in := &Input{keys: NewKeySet()}
	in.SetHandler(handler)
	return in
}

// SetHandler replaces the gesture hooks.
func (in *Input) SetHandler(h GestureHandler) {
	if h == nil {
		h = NopGestures{}
	}
	in.handler = h
}

// SetJoystick attaches a virtual joystick. Contacts that begin inside its
// region drive it and are not classified as gestures.
func (in *Input) SetJoystick(j *Joystick) {
	in.joystick = j
}

// Joystick returns the attached joystick, possibly nil.
func (in *Input) Joystick() *Joystick {
	return in.joystick
}

// SetHaptics enables tap feedback on touch start.
func (in *Input) SetHaptics(h *Haptics) {
	in.haptics = h
}

// Advance moves the input clock forward. Gesture durations are measured
// against this clock.
func (in *Input) Advance(dt time.Duration) {
	if dt > 0 {
		in.now += dt
	}
}

// Now returns the input clock.
func (in *Input) Now() time.Duration {
	return in.now
}

// --- Touch ---

// TouchStart registers a new contact.
func (in *Input) TouchStart(id int, x, y float64) {
	if in.joystick != nil && !in.joystick.Active() && in.joystick.Hit(x, y) {
		in.joystick.Begin(id, x, y)
		return
	}
	in.touches = append(in.touches, Touch{
		ID: id, X: x, Y: y, StartX: x, StartY: y, StartTime: in.now,
	})
	if len(in.touches) == 1 {
		in.haptics.Play(PatternTap)
	}
	if len(in.touches) >= 2 {
		in.beginPinch()
	}
}

// TouchMove updates a contact's position.
func (in *Input) TouchMove(id int, x, y float64) {
	if in.joystick.Pointer() == id {
		in.joystick.Drag(x, y)
		return
	}
	t := in.findTouch(id)
	if t == nil {
		return
	}
	t.X, t.Y = x, y
	in.updatePinch()
}

// TouchEnd removes a contact and classifies it as a tap or swipe.
func (in *Input) TouchEnd(id int, x, y float64) {
	if in.joystick.Pointer() == id {
		in.joystick.End()
		return
	}
	idx := -1
	for i := range in.touches {
		if in.touches[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	t := in.touches[idx]
	t.X, t.Y = x, y
	copy(in.touches[idx:], in.touches[idx+1:])
	in.touches = in.touches[:len(in.touches)-1]

	if len(in.touches) < 2 {
		in.pinch = nil
	}
	// Contacts that took part in a pinch are not taps or swipes.
	if t.pinched {
		return
	}
	in.classify(id, Vec2{t.StartX, t.StartY}, Vec2{x, y}, in.now-t.StartTime)
}

// Touches returns a copy of the active contacts.
func (in *Input) Touches() []Touch {
	out := make([]Touch, len(in.touches))
	copy(out, in.touches)
	return out
}

// TouchCount returns the number of active contacts.
func (in *Input) TouchCount() int {
	return len(in.touches)
}

func (in *Input) findTouch(id int) *Touch {
	for i := range in.touches {
		if in.touches[i].ID == id {
			return &in.touches[i]
		}
	}
	return nil
}

// --- Pinch ---

func (in *Input) pinchDistance() float64 {
	a, b := in.touches[0], in.touches[1]
	return Vec2{a.X, a.Y}.Dist(Vec2{b.X, b.Y})
}

func (in *Input) beginPinch() {
	for i := range in.touches {
		in.touches[i].pinched = true
	}
	if in.pinch != nil {
		return
	}
	d := in.pinchDistance()
	in.pinch = &PinchRecord{StartDistance: d, CurrentDistance: d, Scale: 1}
}

func (in *Input) updatePinch() {
	if in.pinch == nil || len(in.touches) < 2 {
		return
	}
	d := in.pinchDistance()
	in.pinch.CurrentDistance = d
	if in.pinch.StartDistance > 0 {
		in.pinch.Scale = d / in.pinch.StartDistance
	}
	in.handler.OnPinch(in.pinch.Scale)
}

// Pinch returns the active pinch, if any.
func (in *Input) Pinch() (PinchRecord, bool) {
	if in.pinch == nil {
		return PinchRecord{}, false
	}
	return *in.pinch, true
}

// --- Mouse ---

// MouseDown records a button press at (x, y).
func (in *Input) MouseDown(x, y float64, button MouseButton) {
	in.mouse = MouseState{
		X: x, Y: y, Pressed: true, Button: button,
		start: Vec2{x, y}, startTime: in.now,
	}
	if in.joystick != nil && !in.joystick.Active() && in.joystick.Hit(x, y) {
		in.joystick.Begin(mousePointerID, x, y)
	}
}

// MouseMove records the cursor position.
func (in *Input) MouseMove(x, y float64) {
	in.mouse.X, in.mouse.Y = x, y
	if in.joystick.Pointer() == mousePointerID {
		in.joystick.Drag(x, y)
	}
}

// MouseUp records a button release and classifies the press like a touch.
func (in *Input) MouseUp(x, y float64, button MouseButton) {
	wasPressed := in.mouse.Pressed
	start, startTime := in.mouse.start, in.mouse.startTime
	in.mouse = MouseState{X: x, Y: y}
	if in.joystick.Pointer() == mousePointerID {
		in.joystick.End()
		return
	}
	if !wasPressed {
		return
	}
	in.classify(mousePointerID, start, Vec2{x, y}, in.now-startTime)
}

// Mouse returns the mouse state.
func (in *Input) Mouse() MouseState {
	return in.mouse
}

// --- Keyboard ---

// KeyDown marks k as held and fires OnKeyPress.
func (in *Input) KeyDown(k ebiten.Key) {
	ev := NewKeyEvent(k)
	in.keys.Press(ev)
	in.handler.OnKeyPress(ev)
}

// KeyUp marks k as released and fires OnKeyRelease.
func (in *Input) KeyUp(k ebiten.Key) {
	ev := NewKeyEvent(k)
	in.keys.Release(ev)
	in.handler.OnKeyRelease(ev)
}

// Keys returns the held-key set.
func (in *Input) Keys() *KeySet {
	return in.keys
}

// KeyPressed reports whether the named key is held.
func (in *Input) KeyPressed(name string) bool {
	return in.keys.Pressed(name)
}

// JoystickVector reads the joystick, or zero when none is attached.
func (in *Input) JoystickVector() JoyVector {
	return in.joystick.Vector()
}

// Clear drops every contact, held key and joystick capture without firing
// hooks. Used when the window loses focus.
func (in *Input) Clear() {
	in.touches = in.touches[:0]
	in.pinch = nil
	in.mouse = MouseState{X: in.mouse.X, Y: in.mouse.Y}
	in.keys.Clear()
	if in.joystick != nil {
		in.joystick.End()
	}
	in.pointers = [maxPointers]pointerState{}
	in.touchUsed = [maxPointers]bool{}
}

// --- Classification ---

func (in *Input) classify(id int, start, end Vec2, d time.Duration) {
	switch classifyRelease(start, end, d) {
	case gestureTap:
		in.tap(end.X, end.Y)
	case gestureSwipe:
		dx, dy := end.X-start.X, end.Y-start.Y
		in.handler.OnSwipe(Swipe{
			Direction: swipeDirection(dx, dy),
			Distance:  end.Dist(start),
			Start:     start,
			End:       end,
			DeltaX:    dx,
			DeltaY:    dy,
			Duration:  d,
			PointerID: id,
		})
	}
}

// tap fires exactly one of OnDoubleTap or OnSingleTap.
func (in *Input) tap(x, y float64) {
	pos := Vec2{x, y}
	if in.lastTap.isDoubleTap(in.now, pos) {
		in.handler.OnDoubleTap(x, y)
	} else {
		in.handler.OnSingleTap(x, y)
	}
	in.lastTap = tapRecord{time: in.now, pos: pos, set: true}
}

// --- Ebitengine polling ---

// Poll advances the input clock by dt and reads this frame's mouse, touch
// and keyboard state from Ebitengine. A queued synthetic pointer event
// replaces the real mouse for the frame it is consumed in.
func (in *Input) Poll(dt time.Duration) {
	if !in.Step(dt) {
		in.pollMouse()
	}
	in.pollTouches()
	in.pollKeys()
}

// Step advances the input clock by dt and consumes one queued synthetic
// event without reading Ebitengine. It reports whether that event was a
// pointer event.
func (in *Input) Step(dt time.Duration) bool {
	in.Advance(dt)
	return in.processInjectedInput()
}

// pollMouse handles mouse input (pointer 0).
func (in *Input) pollMouse() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	in.processPointer(mousePointerID, float64(mx), float64(my), pressed, button)
}

// pollTouches handles touch input (pointers 1-9).
func (in *Input) pollTouches() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			ps := &in.pointers[i]
			if ps.down {
				in.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns per-frame pointer samples into start/move/end events.
func (in *Input) processPointer(id int, x, y float64, pressed bool, button MouseButton) {
	ps := &in.pointers[id]
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = x, y
		if id == mousePointerID {
			in.MouseDown(x, y, button)
		} else {
			in.TouchStart(id, x, y)
		}
	case !pressed && ps.down:
		ps.down = false
		if id == mousePointerID {
			in.MouseUp(x, y, ps.button)
		} else {
			in.TouchEnd(id, x, y)
		}
		ps.lastX, ps.lastY = x, y
	case x != ps.lastX || y != ps.lastY:
		ps.lastX, ps.lastY = x, y
		if id == mousePointerID {
			in.MouseMove(x, y)
		} else if ps.down {
			in.TouchMove(id, x, y)
		}
	}
}

func (in *Input) pollKeys() {
	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.KeyDown(k)
	}
	in.keyBuf = inpututil.AppendJustReleasedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.KeyUp(k)
	}
}
