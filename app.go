package faros

import (
	"math/rand/v2"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// quality adaptation steps the particle budget by this factor.
const qualityStep = 0.75

// App is the application context: everything the scenes share, built once
// at startup and passed explicitly. It implements ebiten.Game.
type App struct {
	cfg     Config
	profile DeviceProfile

	sched   *Scheduler
	scaler  *Scaler
	watcher *ViewportWatcher
	input   *Input
	haptics *Haptics
	scenes  *SceneManager
	assets  *AssetStore
	font    *Font
	surface *ScreenSurface
	perf    *PerformanceMonitor
	info    *InfoPanel
	loading *LoadingScreen
	runner  *TestRunner
	rng     *rand.Rand

	main *LighthouseScene
	menu *MenuScene

	paused          bool
	autoPaused      bool
	debugCollisions bool
	budget          int

	screenshots []string
	sink        EventSink

	// Hooks into the host, replaceable in tests.
	copyText         func(string) error
	toggleFullscreen func()
}

// NewApp builds the application for cfg on a device described by sig.
func NewApp(cfg Config, sig Signals) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	font, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		SetDebug(true)
	}

	a := &App{
		cfg:     cfg,
		profile: ResolveProfile(cfg.Device.Apply(sig)),
		sched:   NewScheduler(),
		font:    font,
		assets:  NewAssetStore(cfg.AssetDir),
		perf:    &PerformanceMonitor{},
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),

		copyText: clipboard.WriteAll,
		toggleFullscreen: func() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		},
	}
	logger().Info("device profile", "profile", a.profile.String())

	vp := OptimalCanvasSize(Viewport{float64(cfg.Width), float64(cfg.Height)}, a.profile)
	a.scaler = NewScaler(vp.Width)
	a.watcher = NewViewportWatcher(a.sched, vp)
	a.watcher.OnChange(a.applyViewport)

	a.haptics = NewHaptics(a.profile, a.sched)
	a.input = NewInput(a)
	a.input.SetHaptics(a.haptics)

	a.scenes = NewSceneManager(a.sched)
	a.scenes.SetTransitionDuration(cfg.TransitionDuration())

	a.budget = a.profile.RecommendedParticles
	a.main = NewLighthouseScene(a, cfg.Features, cfg.Markers)
	a.menu = NewMenuScene(a)
	a.scenes.Register(a.main.Scene())
	a.scenes.Register(a.menu.Scene())

	a.info = NewInfoPanel(a.profile, a.Size)
	if d := cfg.LoadingDelay(); d > 0 {
		a.loading = NewLoadingScreen(a.sched, cfg.Title, d)
	}
	return a, nil
}

// Config returns the configuration the app was built with.
func (a *App) Config() Config { return a.cfg }

// Profile returns the resolved device profile.
func (a *App) Profile() DeviceProfile { return a.profile }

// Scheduler returns the frame scheduler.
func (a *App) Scheduler() *Scheduler { return a.sched }

// Scaler returns the responsive scale resolver for the current width.
func (a *App) Scaler() *Scaler { return a.scaler }

// Viewport returns the viewport watcher.
func (a *App) Viewport() *ViewportWatcher { return a.watcher }

// Input returns the input recognizer.
func (a *App) Input() *Input { return a.input }

// Haptics returns the vibration player.
func (a *App) Haptics() *Haptics { return a.haptics }

// Scenes returns the scene manager.
func (a *App) Scenes() *SceneManager { return a.scenes }

// Assets returns the image store.
func (a *App) Assets() *AssetStore { return a.assets }

// Performance returns the frame-rate monitor.
func (a *App) Performance() *PerformanceMonitor { return a.perf }

// Info returns the device debug overlay.
func (a *App) Info() *InfoPanel { return a.info }

// Loading returns the loading screen, or nil when disabled.
func (a *App) Loading() *LoadingScreen { return a.loading }

// Main returns the lighthouse scene behavior.
func (a *App) Main() *LighthouseScene { return a.main }

// Menu returns the menu scene behavior.
func (a *App) Menu() *MenuScene { return a.menu }

// Rand returns the app's random source.
func (a *App) Rand() *rand.Rand { return a.rng }

// Size returns the settled canvas size.
func (a *App) Size() (float64, float64) {
	v := a.watcher.Viewport()
	return v.Width, v.Height
}

// DebugCollisions reports whether collision boxes are drawn.
func (a *App) DebugCollisions() bool { return a.debugCollisions }

// SetTestRunner attaches a scripted input sequence, stepped once per frame.
func (a *App) SetTestRunner(r *TestRunner) { a.runner = r }

// TestRunner returns the attached runner, or nil.
func (a *App) TestRunner() *TestRunner { return a.runner }

// --- Pause / resume / reset ---

// Paused reports whether the frame update is frozen.
func (a *App) Paused() bool { return a.paused }

// Pause freezes scene updates, timers and the input clock.
func (a *App) Pause() {
	if a.paused {
		return
	}
	a.paused = true
	logger().Info("paused")
}

// Resume undoes Pause.
func (a *App) Resume() {
	if !a.paused {
		return
	}
	a.paused = false
	a.autoPaused = false
	a.perf.Reset()
	logger().Info("resumed")
}

// TogglePause flips between paused and running.
func (a *App) TogglePause() {
	if a.paused {
		a.Resume()
	} else {
		a.Pause()
	}
}

// Reset returns the current scene to its initial state and resumes.
func (a *App) Reset() {
	a.scenes.Reset()
	a.input.Clear()
	a.perf.Reset()
	a.Resume()
	logger().Info("reset", "scene", a.scenes.Current().Name())
}

// SetFocused pauses when the window loses focus and resumes when it comes
// back, unless the player paused by hand.
func (a *App) SetFocused(focused bool) {
	switch {
	case !focused && !a.paused:
		a.Pause()
		a.autoPaused = true
	case focused && a.autoPaused:
		a.Resume()
	}
}

// --- Frame loop ---

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.SetFocused(ebiten.IsFocused())
	dt := time.Second / time.Duration(max(ebiten.TPS(), 1))
	a.tick(dt, true)
	return nil
}

// Step runs one frame of dt without reading devices. Headless runs and
// tests drive the app through it and the Inject* methods of Input.
func (a *App) Step(dt time.Duration) {
	a.tick(dt, false)
}

func (a *App) tick(dt time.Duration, poll bool) {
	if a.paused {
		// Keys still arrive so the pause shortcut can resume.
		if poll {
			a.input.Poll(0)
		} else {
			a.input.Step(0)
		}
		return
	}
	if a.runner != nil {
		a.runner.step(a)
	}
	if poll {
		a.input.Poll(dt)
	} else {
		a.input.Step(dt)
	}
	if a.paused {
		return
	}

	a.sched.Advance(dt)
	sec := dt.Seconds()
	a.perf.RecordFrame(sec)
	a.scenes.Update(sec)
	a.info.Update(sec)
	if a.loading != nil {
		a.loading.Update(sec)
	}
	a.adaptQuality()
}

// adaptQuality trims the particle budget when frames drop and restores it
// once they recover.
func (a *App) adaptQuality() {
	rec := a.profile.RecommendedParticles
	switch {
	case a.perf.ShouldReduceQuality() && a.budget > rec/4:
		a.budget = max(int(float64(a.budget)*qualityStep), rec/4)
	case a.perf.ShouldIncreaseQuality() && a.budget < rec:
		a.budget = min(int(float64(a.budget)/qualityStep)+1, rec)
	default:
		return
	}
	logger().Debug("particle budget", "budget", a.budget, "fps", a.perf.Average())
	a.main.SetParticleBudget(a.budget)
	a.perf.Reset()
}

// applyViewport runs once a resize has settled.
func (a *App) applyViewport(ch ViewportChange) {
	a.scaler.SetWidth(ch.Viewport.Width)
	logger().Info("viewport",
		"width", ch.Viewport.Width, "height", ch.Viewport.Height,
		"breakpoint", ch.Breakpoint.String(), "orientation", ch.Orientation.String())
	a.scenes.Resize(ch.Viewport.Width, ch.Viewport.Height)
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if a.surface == nil {
		a.surface = NewScreenSurface(a.font, a.profile.PixelRatio)
	}
	a.surface.Begin(screen)
	a.DrawTo(a.surface)
	a.flushScreenshots(screen)
}

// DrawTo draws a frame onto any surface.
func (a *App) DrawTo(s Surface) {
	a.scenes.Draw(s)
	a.info.Draw(s)
	if a.paused {
		w, h := s.Size()
		s.FillRect(Rect{Width: w, Height: h}, Color{0, 0, 0, 0.4})
		size := a.scaler.FontSize(SizeXL)
		s.Text("PAUSA", w/2, h/2-size/2, size, TextAlignCenter, ColorWhite)
	}
	if a.loading != nil {
		a.loading.Draw(s)
	}
}

// Layout implements ebiten.Game. The reported size is fed to the viewport
// watcher; the canvas keeps its settled size until the resize debounces.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := OptimalCanvasSize(Viewport{float64(outsideWidth), float64(outsideHeight)}, a.profile)
	a.watcher.Resize(vp.Width, vp.Height)
	w, h := a.Size()
	return int(w), int(h)
}

// Close stops every pending timer.
func (a *App) Close() {
	a.scenes.Close()
	a.watcher.Stop()
	a.haptics.Stop()
	if a.loading != nil {
		a.loading.Cancel()
	}
	a.sched.CancelAll()
}

// --- Shortcuts ---

// CopyMessage puts the message on screen on the clipboard. It reports
// whether anything was copied.
func (a *App) CopyMessage() bool {
	msg := a.main.Message()
	if msg == "" {
		return false
	}
	if err := a.copyText(msg); err != nil {
		logger().Warn("clipboard", "err", err)
		return false
	}
	logger().Info("message copied", "text", msg)
	return true
}

// ToggleMenu switches between the main scene and the menu.
func (a *App) ToggleMenu() bool {
	target := MenuSceneName
	if cur := a.scenes.Current(); cur != nil && cur.Name() == MenuSceneName {
		target = MainSceneName
	}
	return a.ChangeScene(target, nil)
}

// ChangeScene starts a transition to the named scene and reports it to the
// event sink. It returns false when the manager refuses the change.
func (a *App) ChangeScene(name string, data any) bool {
	if !a.scenes.ChangeScene(name, data) {
		return false
	}
	a.emit(Event{Type: EventSceneChange, Name: name})
	return true
}

// shortcut handles a global key. It reports whether the key was consumed.
func (a *App) shortcut(ev KeyEvent) bool {
	switch ev.Name {
	case "space":
		a.TogglePause()
		return true
	case "f":
		a.toggleFullscreen()
	case "r":
		a.Reset()
		return true
	case "d":
		a.debugCollisions = !a.debugCollisions
		logger().Info("collision debug", "on", a.debugCollisions)
	case "m":
		if !a.paused {
			a.ToggleMenu()
		}
	case "i":
		a.info.Toggle()
	case "c":
		a.CopyMessage()
	case "p":
		a.Screenshot("manual")
	}
	// The remaining shortcuts still reach the scene, so "d" keeps moving
	// the avatar right.
	return false
}

// --- GestureHandler: global shortcuts, then the current scene ---

func (a *App) OnKeyPress(ev KeyEvent) {
	a.emit(Event{Type: EventKeyPress, Key: ev})
	if a.shortcut(ev) || a.paused {
		return
	}
	a.scenes.OnKeyPress(ev)
}

func (a *App) OnKeyRelease(ev KeyEvent) {
	a.emit(Event{Type: EventKeyRelease, Key: ev})
	if a.paused {
		return
	}
	a.scenes.OnKeyRelease(ev)
}

func (a *App) OnSingleTap(x, y float64) {
	if a.paused {
		return
	}
	a.emit(Event{Type: EventSingleTap, X: x, Y: y})
	a.scenes.OnSingleTap(x, y)
}

func (a *App) OnDoubleTap(x, y float64) {
	if a.paused {
		return
	}
	a.emit(Event{Type: EventDoubleTap, X: x, Y: y})
	a.scenes.OnDoubleTap(x, y)
}

func (a *App) OnSwipe(sw Swipe) {
	if a.paused {
		return
	}
	a.emit(Event{Type: EventSwipe, X: sw.End.X, Y: sw.End.Y, Swipe: sw})
	a.scenes.OnSwipe(sw)
}

func (a *App) OnPinch(scale float64) {
	if a.paused {
		return
	}
	a.emit(Event{Type: EventPinch, Scale: scale})
	a.scenes.OnPinch(scale)
}

var (
	_ ebiten.Game    = (*App)(nil)
	_ GestureHandler = (*App)(nil)
)
