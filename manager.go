package faros

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTransitionDuration is the length of a scene cross-fade.
const DefaultTransitionDuration = 500 * time.Millisecond

// transitionPeakAlpha is the overlay opacity at the midpoint of a transition.
const transitionPeakAlpha = 150.0 / 255.0

// SceneManager owns the registered scenes, exactly one of which is current
// outside a transition. Changes are cross-faded: the outgoing scene exits at
// once, the incoming scene is entered at the midpoint, and no other change
// is accepted until the transition completes.
type SceneManager struct {
	sched    *Scheduler
	scenes   map[string]*Scene
	order    []string
	current  *Scene
	duration time.Duration

	transitioning bool
	progress      float64
	tween         *gween.Tween
	target        *Scene
	targetData    any
	midpoint      *Timer
	finish        *Timer
}

// NewSceneManager creates a manager whose transition timers run on sched.
func NewSceneManager(sched *Scheduler) *SceneManager {
	return &SceneManager{
		sched:    sched,
		scenes:   make(map[string]*Scene),
		duration: DefaultTransitionDuration,
	}
}

// SetTransitionDuration changes the cross-fade length for later transitions.
func (m *SceneManager) SetTransitionDuration(d time.Duration) {
	if d > 0 {
		m.duration = d
	}
}

// Register adds a scene under its name, replacing any scene with the same
// name. The first scene registered is entered immediately.
func (m *SceneManager) Register(s *Scene) {
	if _, exists := m.scenes[s.name]; !exists {
		m.order = append(m.order, s.name)
	}
	m.scenes[s.name] = s
	s.manager = m
	if m.current == nil && !m.transitioning {
		m.current = s
		s.enter(nil)
	}
}

// Scene returns the scene registered under name.
func (m *SceneManager) Scene(name string) (*Scene, bool) {
	s, ok := m.scenes[name]
	return s, ok
}

// Names returns the registered scene names in registration order.
func (m *SceneManager) Names() []string {
	return append([]string(nil), m.order...)
}

// Current returns the current scene, or nil before any registration.
func (m *SceneManager) Current() *Scene {
	return m.current
}

// Transitioning reports whether a cross-fade is in flight.
func (m *SceneManager) Transitioning() bool {
	return m.transitioning
}

// Progress returns the transition progress in [0, 1].
func (m *SceneManager) Progress() float64 {
	return m.progress
}

// ChangeScene starts a transition to the named scene. It returns false, with
// no state change, if name is not registered or a transition is already in
// flight.
func (m *SceneManager) ChangeScene(name string, data any) bool {
	if m.transitioning {
		logger().Debug("scene change ignored, transition in flight", "scene", name)
		return false
	}
	next, ok := m.scenes[name]
	if !ok {
		logger().Error("scene not found", "scene", name)
		return false
	}

	m.transitioning = true
	m.progress = 0
	m.target = next
	m.targetData = data
	m.tween = gween.New(0, 1, float32(m.duration.Seconds()), ease.Linear)

	if m.current != nil {
		m.current.exit()
	}

	m.midpoint = m.sched.After(m.duration/2, m.swap)
	m.finish = m.sched.After(m.duration, m.complete)
	return true
}

// swap makes the target current and enters it.
func (m *SceneManager) swap() {
	m.midpoint = nil
	if m.target == nil {
		return
	}
	m.current = m.target
	data := m.targetData
	m.target, m.targetData = nil, nil
	m.current.enter(data)
}

func (m *SceneManager) complete() {
	m.finish = nil
	m.transitioning = false
	m.progress = 1
	m.tween = nil
}

// Update advances the transition overlay and, outside a transition, the
// current scene. dt is in seconds.
func (m *SceneManager) Update(dt float64) {
	if m.transitioning {
		if m.tween != nil {
			p, _ := m.tween.Update(float32(dt))
			m.progress = math.Min(float64(p), 1)
		}
		return
	}
	if m.current != nil {
		m.current.Update(dt)
	}
}

// OverlayAlpha is the opacity of the transition overlay.
func (m *SceneManager) OverlayAlpha() float64 {
	if !m.transitioning {
		return 0
	}
	return transitionPeakAlpha * math.Sin(m.progress*math.Pi)
}

// Draw draws the current scene and, during a transition, the fading overlay.
func (m *SceneManager) Draw(s Surface) {
	if m.current != nil {
		m.current.Draw(s)
	}
	if a := m.OverlayAlpha(); a > 0 {
		w, h := s.Size()
		s.FillRect(Rect{Width: w, Height: h}, ColorBlack.WithAlpha(a))
	}
}

// Resize forwards a viewport change to every registered scene.
func (m *SceneManager) Resize(w, h float64) {
	for _, name := range m.order {
		m.scenes[name].Resize(w, h)
	}
}

// Reset resets the current scene. A transition in flight is completed first,
// so the target is entered exactly once before it is reset.
func (m *SceneManager) Reset() {
	if m.transitioning {
		if m.midpoint.Cancel() {
			m.swap()
		}
		m.finish.Cancel()
		m.complete()
	}
	if m.current != nil {
		m.current.Reset()
	}
}

// Close cancels any pending transition callbacks. The target of an
// unfinished transition is never entered.
func (m *SceneManager) Close() {
	m.midpoint.Cancel()
	m.finish.Cancel()
	m.midpoint, m.finish = nil, nil
	m.target, m.targetData = nil, nil
	m.transitioning = false
	m.tween = nil
}

// --- Gesture routing ---

func (m *SceneManager) gestures() GestureHandler {
	if m.transitioning || m.current == nil || !m.current.active {
		return nil
	}
	if h, ok := m.current.behavior.(GestureHandler); ok {
		return h
	}
	return nil
}

// OnSingleTap forwards to the current scene.
func (m *SceneManager) OnSingleTap(x, y float64) {
	if h := m.gestures(); h != nil {
		h.OnSingleTap(x, y)
	}
}

// OnDoubleTap forwards to the current scene.
func (m *SceneManager) OnDoubleTap(x, y float64) {
	if h := m.gestures(); h != nil {
		h.OnDoubleTap(x, y)
	}
}

// OnSwipe forwards to the current scene.
func (m *SceneManager) OnSwipe(sw Swipe) {
	if h := m.gestures(); h != nil {
		h.OnSwipe(sw)
	}
}

// OnPinch forwards to the current scene.
func (m *SceneManager) OnPinch(scale float64) {
	if h := m.gestures(); h != nil {
		h.OnPinch(scale)
	}
}

// OnKeyPress forwards to the current scene.
func (m *SceneManager) OnKeyPress(ev KeyEvent) {
	if h := m.gestures(); h != nil {
		h.OnKeyPress(ev)
	}
}

// OnKeyRelease forwards to the current scene.
func (m *SceneManager) OnKeyRelease(ev KeyEvent) {
	if h := m.gestures(); h != nil {
		h.OnKeyRelease(ev)
	}
}

var _ GestureHandler = (*SceneManager)(nil)
