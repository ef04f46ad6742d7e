package faros

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// eventLog is an EventSink that keeps every event.
type eventLog struct {
	events []Event
}

func (l *eventLog) EmitEvent(ev Event) { l.events = append(l.events, ev) }

func (l *eventLog) ofType(typ EventType) []Event {
	var out []Event
	for _, ev := range l.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0
	if _, err := NewApp(cfg, desktopSignals()); err == nil {
		t.Error("NewApp accepted a zero width")
	}
}

func TestNewAppDesktop(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	if w, h := a.Size(); w != 1024 || h != 768 {
		t.Errorf("Size = %v×%v, want 1024×768", w, h)
	}
	if a.Scaler().Breakpoint() != BreakpointLG {
		t.Errorf("Breakpoint = %v, want lg", a.Scaler().Breakpoint())
	}
	if a.Scenes().Current().Name() != MainSceneName {
		t.Errorf("current scene = %q", a.Scenes().Current().Name())
	}
	if a.Haptics().Enabled() {
		t.Error("haptics enabled on desktop")
	}
	if a.Loading() != nil {
		t.Error("loading screen built with no delay")
	}
	if got := a.Main().Particles().Max(); got != 300 {
		t.Errorf("particle budget = %d, want 300", got)
	}
}

func TestNewAppPhone(t *testing.T) {
	a := newTestApp(testConfig(), phoneSignals())
	if w, h := a.Size(); w != 800 || h != 600 {
		t.Errorf("Size = %v×%v, want the 800×600 cap", w, h)
	}
	if !a.Haptics().Enabled() {
		t.Error("haptics disabled on a vibrating phone")
	}
	if got := a.Main().Particles().Max(); got != 50 {
		t.Errorf("particle budget = %d, want 50", got)
	}
}

func TestAppPauseFreezesTime(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.Input().InjectKey(ebiten.KeySpace)
	a.Step(frame)
	if !a.Paused() {
		t.Fatal("space did not pause")
	}
	stepFor(a, 10*frame)
	if now := a.Scheduler().Now(); now != 0 {
		t.Errorf("scheduler advanced to %v while paused", now)
	}

	a.Reset()
	if a.Paused() {
		t.Error("Reset should resume")
	}
}

func TestAppPausedIgnoresGestures(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.Pause()
	a.OnSingleTap(74, 74)
	a.OnKeyPress(NewKeyEvent(ebiten.KeyM))
	if a.Main().Message() != "" {
		t.Error("tap reached the scene while paused")
	}
	if a.Scenes().Transitioning() {
		t.Error("menu opened while paused")
	}
}

func TestAppSpaceResumesWhilePaused(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.Pause()
	a.Input().InjectKey(ebiten.KeySpace)
	a.Step(frame)
	if a.Paused() {
		t.Error("space did not resume")
	}
}

func TestAppFocus(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.SetFocused(false)
	if !a.Paused() {
		t.Fatal("losing focus did not pause")
	}
	a.SetFocused(true)
	if a.Paused() {
		t.Error("regaining focus did not resume")
	}

	a.Pause()
	a.SetFocused(false)
	a.SetFocused(true)
	if !a.Paused() {
		t.Error("focus resumed a manual pause")
	}
}

func TestAppShortcuts(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	fullscreen := 0
	a.toggleFullscreen = func() { fullscreen++ }

	a.OnKeyPress(NewKeyEvent(ebiten.KeyF))
	if fullscreen != 1 {
		t.Errorf("fullscreen toggles = %d, want 1", fullscreen)
	}
	a.OnKeyPress(NewKeyEvent(ebiten.KeyI))
	if !a.Info().Visible {
		t.Error("i did not show the info panel")
	}
	a.OnKeyPress(NewKeyEvent(ebiten.KeyP))
	if a.PendingScreenshots() != 1 {
		t.Errorf("pending screenshots = %d, want 1", a.PendingScreenshots())
	}
	a.OnKeyPress(NewKeyEvent(ebiten.KeyD))
	if !a.DebugCollisions() {
		t.Error("d did not enable collision debug")
	}

	a.Main().OnSwipe(Swipe{Direction: DirLeft})
	a.OnKeyPress(NewKeyEvent(ebiten.KeyR))
	if a.Main().Avatar().X != 512 {
		t.Errorf("r did not reset, avatar X = %v", a.Main().Avatar().X)
	}
}

func TestAppCopyMessage(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	var copied []string
	a.copyText = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	if a.CopyMessage() {
		t.Error("copied with no message on screen")
	}
	a.Main().OnSingleTap(74, 74)
	a.OnKeyPress(NewKeyEvent(ebiten.KeyC))
	want := markerNamed(a.Main(), "Abuelo").Message
	if len(copied) != 1 || copied[0] != want {
		t.Errorf("copied = %q, want %q", copied, want)
	}

	a.copyText = func(string) error { return errors.New("no clipboard") }
	if a.CopyMessage() {
		t.Error("CopyMessage reported success on error")
	}
}

func TestAppToggleMenu(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	sink := &eventLog{}
	a.SetEventSink(sink)

	a.OnKeyPress(NewKeyEvent(ebiten.KeyM))
	if !a.Scenes().Transitioning() {
		t.Fatal("m did not start a transition")
	}
	if a.ToggleMenu() {
		t.Error("second change accepted during the transition")
	}
	stepFor(a, 600*time.Millisecond)
	if a.Scenes().Current().Name() != MenuSceneName {
		t.Fatalf("current = %q, want menu", a.Scenes().Current().Name())
	}
	if !a.ToggleMenu() {
		t.Fatal("toggle back refused")
	}
	stepFor(a, 600*time.Millisecond)
	if a.Scenes().Current().Name() != MainSceneName {
		t.Errorf("current = %q, want main", a.Scenes().Current().Name())
	}

	changes := sink.ofType(EventSceneChange)
	if len(changes) != 2 || changes[0].Name != MenuSceneName || changes[1].Name != MainSceneName {
		t.Errorf("scene change events = %+v", changes)
	}
}

func TestAppEvents(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	sink := &eventLog{}
	a.SetEventSink(sink)

	a.Input().InjectTap(74, 74)
	stepFor(a, 2*frame)

	taps := sink.ofType(EventSingleTap)
	if len(taps) != 1 || taps[0].X != 74 || taps[0].Scene != MainSceneName {
		t.Fatalf("tap events = %+v", taps)
	}
	reveals := sink.ofType(EventMarkerRevealed)
	if len(reveals) != 1 || reveals[0].Name != "Abuelo" {
		t.Errorf("reveal events = %+v", reveals)
	}

	a.OnSwipe(Swipe{Direction: DirRight, End: Vec2{300, 200}})
	swipes := sink.ofType(EventSwipe)
	if len(swipes) != 1 || swipes[0].X != 300 || swipes[0].Swipe.Direction != DirRight {
		t.Errorf("swipe events = %+v", swipes)
	}
	a.OnPinch(1.5)
	if p := sink.ofType(EventPinch); len(p) != 1 || p[0].Scale != 1.5 {
		t.Errorf("pinch events = %+v", p)
	}

	a.SetEventSink(nil)
	a.OnDoubleTap(1, 1)
	if len(sink.ofType(EventDoubleTap)) != 0 {
		t.Error("event emitted after the sink was removed")
	}
}

func TestAppAdaptsParticleBudget(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	ps := a.Main().Particles()
	for i := 0; i < fpsHistorySize; i++ {
		a.Performance().Record(10)
	}
	a.Step(frame)
	if ps.Max() != 225 {
		t.Fatalf("budget after slow frames = %d, want 225", ps.Max())
	}
	stepFor(a, fpsHistorySize*frame)
	if ps.Max() != 300 {
		t.Errorf("budget after recovery = %d, want 300", ps.Max())
	}
}

func TestAppLoadingScreen(t *testing.T) {
	cfg := testConfig()
	cfg.LoadingDelayMS = 1000
	a := newTestApp(cfg, desktopSignals())
	if a.Loading() == nil || !a.Loading().Visible() {
		t.Fatal("loading screen missing")
	}
	s := newRecordSurface(1024, 768)
	a.DrawTo(s)
	if !s.hasText("Cargando...") {
		t.Error("loading screen not drawn")
	}
	stepFor(a, 1600*time.Millisecond)
	if a.Loading().Visible() {
		t.Error("loading screen still visible")
	}
}

func TestAppDrawPaused(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.Pause()
	s := newRecordSurface(1024, 768)
	a.DrawTo(s)
	if !s.hasText("PAUSA") {
		t.Error("pause overlay missing")
	}
}

func TestAppViewportChangesScaler(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.Viewport().Resize(500, 700)
	a.Step(frame)
	if a.Scaler().Breakpoint() != BreakpointLG {
		t.Error("scaler changed before the resize settled")
	}
	stepFor(a, ResizeDebounce)
	if a.Scaler().Breakpoint() != BreakpointSM {
		t.Errorf("Breakpoint = %v, want sm", a.Scaler().Breakpoint())
	}
}

func TestAppClose(t *testing.T) {
	cfg := testConfig()
	cfg.LoadingDelayMS = 1000
	a := newTestApp(cfg, desktopSignals())
	a.Viewport().Resize(500, 700)
	a.ToggleMenu()
	a.Close()
	if n := a.Scheduler().Len(); n != 0 {
		t.Errorf("pending timers after Close = %d", n)
	}
}
