package faros

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// gestureRecorder records every hook call.
type gestureRecorder struct {
	singles  []Vec2
	doubles  []Vec2
	swipes   []Swipe
	pinches  []float64
	presses  []string
	releases []string
}

func (r *gestureRecorder) OnSingleTap(x, y float64) { r.singles = append(r.singles, Vec2{x, y}) }
func (r *gestureRecorder) OnDoubleTap(x, y float64) { r.doubles = append(r.doubles, Vec2{x, y}) }
func (r *gestureRecorder) OnSwipe(sw Swipe)         { r.swipes = append(r.swipes, sw) }
func (r *gestureRecorder) OnPinch(scale float64)    { r.pinches = append(r.pinches, scale) }
func (r *gestureRecorder) OnKeyPress(ev KeyEvent)   { r.presses = append(r.presses, ev.Name) }
func (r *gestureRecorder) OnKeyRelease(ev KeyEvent) { r.releases = append(r.releases, ev.Name) }

func (r *gestureRecorder) gestures() int {
	return len(r.singles) + len(r.doubles) + len(r.swipes)
}

func newRecordedInput() (*Input, *gestureRecorder) {
	rec := &gestureRecorder{}
	return NewInput(rec), rec
}

func touch(in *Input, id int, from, to Vec2, d time.Duration) {
	in.TouchStart(id, from.X, from.Y)
	in.Advance(d)
	in.TouchMove(id, to.X, to.Y)
	in.TouchEnd(id, to.X, to.Y)
}

func TestClassifyRelease(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		d    time.Duration
		want gestureKind
	}{
		{"quick tap", 0, 100 * time.Millisecond, gestureTap},
		{"tap with jitter", 9.9, 299 * time.Millisecond, gestureTap},
		{"long press", 0, 300 * time.Millisecond, gestureNone},
		{"short drag", 20, 100 * time.Millisecond, gestureNone},
		{"swipe threshold", 30, 100 * time.Millisecond, gestureSwipe},
		{"slow swipe", 200, 2 * time.Second, gestureSwipe},
	}
	for _, tt := range tests {
		got := classifyRelease(Vec2{}, Vec2{tt.dist, 0}, tt.d)
		if got != tt.want {
			t.Errorf("%s: classifyRelease = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{50, 10, DirRight},
		{-50, 10, DirLeft},
		{10, 50, DirDown},
		{10, -50, DirUp},
		{40, -40, DirRight},
		{-40, 40, DirLeft},
	}
	for _, tt := range tests {
		if got := swipeDirection(tt.dx, tt.dy); got != tt.want {
			t.Errorf("swipeDirection(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestInputSingleTap(t *testing.T) {
	in, rec := newRecordedInput()
	touch(in, 1, Vec2{100, 100}, Vec2{103, 102}, 100*time.Millisecond)
	if len(rec.singles) != 1 || rec.singles[0] != (Vec2{103, 102}) {
		t.Errorf("singles = %v, want [(103,102)]", rec.singles)
	}
	if rec.gestures() != 1 {
		t.Errorf("gestures = %d, want 1", rec.gestures())
	}
	if in.TouchCount() != 0 {
		t.Errorf("TouchCount = %d after release", in.TouchCount())
	}
}

func TestInputDoubleTap(t *testing.T) {
	in, rec := newRecordedInput()
	touch(in, 1, Vec2{100, 100}, Vec2{100, 100}, 50*time.Millisecond)
	in.Advance(200 * time.Millisecond)
	touch(in, 1, Vec2{104, 100}, Vec2{104, 100}, 50*time.Millisecond)

	if len(rec.singles) != 1 || len(rec.doubles) != 1 {
		t.Errorf("singles %d doubles %d, want 1 and 1", len(rec.singles), len(rec.doubles))
	}
}

func TestInputDoubleTapTooSlowOrFar(t *testing.T) {
	in, rec := newRecordedInput()
	touch(in, 1, Vec2{100, 100}, Vec2{100, 100}, 50*time.Millisecond)
	in.Advance(400 * time.Millisecond)
	touch(in, 1, Vec2{100, 100}, Vec2{100, 100}, 50*time.Millisecond)
	in.Advance(100 * time.Millisecond)
	touch(in, 1, Vec2{150, 100}, Vec2{150, 100}, 50*time.Millisecond)

	if len(rec.singles) != 3 || len(rec.doubles) != 0 {
		t.Errorf("singles %d doubles %d, want 3 and 0", len(rec.singles), len(rec.doubles))
	}
}

func TestInputSwipe(t *testing.T) {
	in, rec := newRecordedInput()
	touch(in, 2, Vec2{100, 100}, Vec2{100, 20}, 150*time.Millisecond)
	if len(rec.swipes) != 1 {
		t.Fatalf("swipes = %d, want 1", len(rec.swipes))
	}
	sw := rec.swipes[0]
	if sw.Direction != DirUp || sw.Distance != 80 || sw.DeltaY != -80 || sw.PointerID != 2 {
		t.Errorf("swipe = %+v", sw)
	}
	if sw.Duration != 150*time.Millisecond {
		t.Errorf("Duration = %v, want 150ms", sw.Duration)
	}
}

func TestInputNoGesture(t *testing.T) {
	in, rec := newRecordedInput()
	touch(in, 1, Vec2{100, 100}, Vec2{100, 100}, 500*time.Millisecond)
	touch(in, 1, Vec2{100, 100}, Vec2{115, 100}, 50*time.Millisecond)
	if rec.gestures() != 0 {
		t.Errorf("gestures = %d, want 0", rec.gestures())
	}
}

func TestInputPinch(t *testing.T) {
	in, rec := newRecordedInput()
	in.TouchStart(1, 100, 100)
	in.TouchStart(2, 200, 100)
	p, ok := in.Pinch()
	if !ok || p.StartDistance != 100 || p.Scale != 1 {
		t.Fatalf("Pinch = %+v, %v", p, ok)
	}
	in.TouchMove(2, 300, 100)
	if len(rec.pinches) != 1 || rec.pinches[0] != 2 {
		t.Errorf("pinches = %v, want [2]", rec.pinches)
	}
	in.Advance(50 * time.Millisecond)
	in.TouchEnd(2, 300, 100)
	if _, ok := in.Pinch(); ok {
		t.Error("pinch should end below two contacts")
	}
	in.TouchEnd(1, 100, 100)
	if rec.gestures() != 0 {
		t.Errorf("pinched contacts produced %d gestures", rec.gestures())
	}
}

func TestInputJoystickCapturesContact(t *testing.T) {
	in, rec := newRecordedInput()
	j := NewJoystick(50, 50, 40)
	in.SetJoystick(j)

	in.TouchStart(3, 60, 50)
	if !j.Active() || j.Pointer() != 3 || in.TouchCount() != 0 {
		t.Fatalf("joystick active %v pointer %d touches %d", j.Active(), j.Pointer(), in.TouchCount())
	}
	in.TouchMove(3, 50, 20)
	if v := in.JoystickVector(); v.Y != -1 || v.Magnitude != 1 {
		t.Errorf("JoystickVector = %+v, want straight up", v)
	}
	in.TouchEnd(3, 50, 20)
	if j.Active() || rec.gestures() != 0 {
		t.Errorf("after release: active %v gestures %d", j.Active(), rec.gestures())
	}

	// A second contact outside the region stays a normal touch.
	in.TouchStart(4, 300, 300)
	if in.TouchCount() != 1 || j.Active() {
		t.Error("contact outside the joystick was captured")
	}
}

func TestInputMouseClassifiedOnRelease(t *testing.T) {
	in, rec := newRecordedInput()
	in.MouseDown(10, 10, MouseButtonLeft)
	if !in.Mouse().Pressed || rec.gestures() != 0 {
		t.Fatal("press alone should not classify")
	}
	in.Advance(50 * time.Millisecond)
	in.MouseUp(10, 10, MouseButtonLeft)
	if len(rec.singles) != 1 {
		t.Errorf("singles = %d, want 1", len(rec.singles))
	}
	if in.Mouse().Pressed {
		t.Error("mouse still pressed")
	}

	in.MouseUp(10, 10, MouseButtonLeft)
	if rec.gestures() != 1 {
		t.Error("release without press classified")
	}
}

func TestInputMouseDrivesJoystick(t *testing.T) {
	in, _ := newRecordedInput()
	j := NewJoystick(50, 50, 40)
	in.SetJoystick(j)
	in.MouseDown(50, 50, MouseButtonLeft)
	in.MouseMove(80, 50)
	if j.Pointer() != mousePointerID || in.JoystickVector().X != 1 {
		t.Errorf("joystick pointer %d vector %+v", j.Pointer(), in.JoystickVector())
	}
	in.MouseUp(80, 50, MouseButtonLeft)
	if j.Active() {
		t.Error("joystick still active after mouse up")
	}
}

func TestInputKeys(t *testing.T) {
	in, rec := newRecordedInput()
	in.KeyDown(ebiten.KeyW)
	if !in.KeyPressed("w") || len(rec.presses) != 1 || rec.presses[0] != "w" {
		t.Errorf("presses = %v held %v", rec.presses, in.KeyPressed("w"))
	}
	in.KeyUp(ebiten.KeyW)
	if in.KeyPressed("w") || len(rec.releases) != 1 {
		t.Errorf("releases = %v held %v", rec.releases, in.KeyPressed("w"))
	}
}

func TestInputClearFiresNoHooks(t *testing.T) {
	in, rec := newRecordedInput()
	j := NewJoystick(500, 500, 40)
	in.SetJoystick(j)
	in.TouchStart(1, 10, 10)
	in.TouchStart(2, 500, 500)
	in.KeyDown(ebiten.KeyA)
	in.Clear()
	if in.TouchCount() != 0 || in.Keys().Len() != 0 || j.Active() {
		t.Error("Clear left state behind")
	}
	if rec.gestures() != 0 || len(rec.releases) != 0 {
		t.Error("Clear fired hooks")
	}
}

func TestInputNilHandler(t *testing.T) {
	in := NewInput(nil)
	touch(in, 1, Vec2{}, Vec2{}, 10*time.Millisecond)
	in.KeyDown(ebiten.KeySpace)
}

func TestInputAdvanceIgnoresNegative(t *testing.T) {
	in := NewInput(nil)
	in.Advance(time.Second)
	in.Advance(-time.Second)
	if in.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", in.Now())
	}
}
