package faros

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Fog veils the scene in white while the player is touching or clicking,
// as if the interaction cleared the air.
type Fog struct {
	Interacting bool
	Alpha       float64
}

// NewFog creates a fog overlay with the usual veil strength.
func NewFog() *Fog {
	return &Fog{Alpha: 100.0 / 255}
}

// Draw fills the screen while interacting.
func (f *Fog) Draw(s Surface) {
	if !f.Interacting {
		return
	}
	w, h := s.Size()
	s.FillRect(Rect{Width: w, Height: h}, ColorWhite.WithAlpha(f.Alpha))
}

// Reset clears the interaction flag.
func (f *Fog) Reset() { f.Interacting = false }

// Loading screen timing.
const (
	DefaultLoadingDelay = time.Second
	DefaultLoadingFade  = 500 * time.Millisecond
)

var loadingBackground = RGB8(20, 25, 40)

// LoadingScreen covers the screen at startup, then fades out once its
// delay has passed.
type LoadingScreen struct {
	Title    string
	Subtitle string
	Fade     time.Duration

	alpha float64
	timer *Timer
	fade  *TweenGroup
	done  bool
}

// NewLoadingScreen shows the screen now and starts fading it after delay.
func NewLoadingScreen(sched *Scheduler, title string, delay time.Duration) *LoadingScreen {
	l := &LoadingScreen{
		Title:    title,
		Subtitle: "Cargando...",
		Fade:     DefaultLoadingFade,
		alpha:    1,
	}
	l.timer = sched.After(delay, l.dismiss)
	return l
}

func (l *LoadingScreen) dismiss() {
	l.timer = nil
	l.fade = TweenValue(&l.alpha, 0, float32(l.Fade.Seconds()), ease.Linear)
	l.fade.OnComplete = func() {
		l.done = true
		logger().Debug("loading screen hidden")
	}
}

// Visible reports whether any part of the screen still shows.
func (l *LoadingScreen) Visible() bool { return !l.done }

// Alpha is the current opacity.
func (l *LoadingScreen) Alpha() float64 { return l.alpha }

// Update advances the fade. dt is in seconds.
func (l *LoadingScreen) Update(dt float64) {
	if l.fade != nil && !l.fade.Done {
		l.fade.Update(float32(dt))
	}
}

// Cancel hides the screen at once and drops its pending timer.
func (l *LoadingScreen) Cancel() {
	l.timer.Cancel()
	l.timer = nil
	l.fade = nil
	l.alpha = 0
	l.done = true
}

// Draw covers the screen with the title while visible.
func (l *LoadingScreen) Draw(s Surface) {
	if l.done || l.alpha <= 0 {
		return
	}
	w, h := s.Size()
	s.FillRect(Rect{Width: w, Height: h}, loadingBackground.WithAlpha(l.alpha))
	s.Text(l.Title, w/2, h/2-32, 32, TextAlignCenter, ColorWhite.WithAlpha(l.alpha))
	s.Text(l.Subtitle, w/2, h/2+12, 16, TextAlignCenter, Color{0.8, 0.8, 0.8, l.alpha})
}

var (
	_ Entity   = (*Fog)(nil)
	_ Entity   = (*LoadingScreen)(nil)
	_ Updater  = (*LoadingScreen)(nil)
	_ Resetter = (*Fog)(nil)
)
