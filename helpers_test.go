package faros

import (
	"math"
	"time"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// drawOp is one call recorded by recordSurface.
type drawOp struct {
	kind  string
	rect  Rect
	text  string
	color Color
}

// recordSurface is a Surface that records what was drawn. Text is measured
// as half the size per rune.
type recordSurface struct {
	w, h       float64
	ops        []drawOp
	transforms []Transform
	maxDepth   int
}

func newRecordSurface(w, h float64) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (s *recordSurface) add(kind string, r Rect, c Color) {
	s.ops = append(s.ops, drawOp{kind: kind, rect: r, color: c})
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordSurface) DeviceScale() float64      { return 1 }

func (s *recordSurface) Fill(c Color) { s.add("fill", Rect{Width: s.w, Height: s.h}, c) }

func (s *recordSurface) FillRect(r Rect, c Color)                     { s.add("rect", r, c) }
func (s *recordSurface) FillRoundRect(r Rect, radius float64, c Color) { s.add("roundrect", r, c) }
func (s *recordSurface) StrokeRect(r Rect, width float64, c Color)    { s.add("stroke", r, c) }

func (s *recordSurface) FillEllipse(cx, cy, rx, ry float64, c Color) {
	s.add("ellipse", Rect{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}, c)
}

func (s *recordSurface) StrokeEllipse(cx, cy, rx, ry, width float64, c Color) {
	s.add("strokeellipse", Rect{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}, c)
}

func (s *recordSurface) FillPolygon(pts []Vec2, c Color)            { s.add("polygon", Rect{}, c) }
func (s *recordSurface) StrokeLine(a, b Vec2, width float64, c Color) { s.add("line", Rect{}, c) }

func (s *recordSurface) Text(str string, x, y, size float64, align TextAlign, c Color) {
	s.ops = append(s.ops, drawOp{kind: "text", rect: Rect{X: x, Y: y, Height: size}, text: str, color: c})
}

func (s *recordSurface) MeasureText(str string, size float64) (float64, float64) {
	return float64(len([]rune(str))) * size / 2, size
}

func (s *recordSurface) DrawImage(a *Asset, r Rect, alpha float64) { s.add("image", r, ColorWhite) }

func (s *recordSurface) PushTransform(t Transform) {
	s.transforms = append(s.transforms, t)
	s.maxDepth = max(s.maxDepth, len(s.transforms))
}

func (s *recordSurface) PopTransform() {
	s.transforms = s.transforms[:len(s.transforms)-1]
}

// count returns how many ops of kind were recorded.
func (s *recordSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

// texts returns every string drawn, in order.
func (s *recordSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

func (s *recordSurface) hasText(str string) bool {
	for _, t := range s.texts() {
		if t == str {
			return true
		}
	}
	return false
}

// frame is one 60 Hz frame.
const frame = time.Second / 60

// desktopSignals describes a mid-size desktop with plenty of resources.
func desktopSignals() Signals {
	return Signals{
		UserAgent:    "Mozilla/5.0 (X11; Linux x86_64)",
		Platform:     "Linux x86_64",
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		PixelRatio:   1,
		Cores:        8,
		MemoryGB:     16,
	}
}

// phoneSignals describes a mid-tier Android phone with vibration.
func phoneSignals() Signals {
	return Signals{
		UserAgent:    "Mozilla/5.0 (Linux; Android 13; Pixel 6) Mobile Safari/537.36",
		Platform:     "Linux armv8l",
		ScreenWidth:  412,
		ScreenHeight: 915,
		PixelRatio:   2.625,
		TouchPoints:  5,
		HasVibration: true,
		Cores:        8,
		MemoryGB:     8,
	}
}

// testConfig is the full experience without disk access or a loading screen.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AssetDir = ""
	cfg.LoadingDelayMS = 0
	return cfg
}

// newTestApp builds an App for tests with deterministic randomness and no
// host side effects.
func newTestApp(cfg Config, sig Signals) *App {
	a, err := NewApp(cfg, sig)
	if err != nil {
		panic(err)
	}
	a.copyText = func(string) error { return nil }
	a.toggleFullscreen = func() {}
	a.haptics.vibrate = func(time.Duration) {}
	return a
}

// stepFor runs the app for d in whole frames.
func stepFor(a *App, d time.Duration) {
	for t := time.Duration(0); t < d; t += frame {
		a.Step(frame)
	}
}
