package faros

import (
	"math"
	"time"
)

// ResizeDebounce is how long the viewport must stay still before a resize
// is reported.
const ResizeDebounce = 100 * time.Millisecond

// Orientation of the viewport.
type Orientation uint8

const (
	Landscape Orientation = iota
	Portrait
)

func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// Viewport is the logical drawing area in pixels.
type Viewport struct {
	Width, Height float64
}

// AspectRatio returns width/height, or 0 for an empty viewport.
func (v Viewport) AspectRatio() float64 {
	if v.Height == 0 {
		return 0
	}
	return v.Width / v.Height
}

// Orientation is Portrait when the viewport is taller than wide.
func (v Viewport) Orientation() Orientation {
	if v.Height > v.Width {
		return Portrait
	}
	return Landscape
}

// VW returns pct percent of the width.
func (v Viewport) VW(pct float64) float64 { return pct * v.Width / 100 }

// VH returns pct percent of the height.
func (v Viewport) VH(pct float64) float64 { return pct * v.Height / 100 }

// VMin returns pct percent of the smaller side.
func (v Viewport) VMin(pct float64) float64 { return pct * math.Min(v.Width, v.Height) / 100 }

// VMax returns pct percent of the larger side.
func (v Viewport) VMax(pct float64) float64 { return pct * math.Max(v.Width, v.Height) / 100 }

// Rem converts rem units with a 16px root size.
func Rem(value float64) float64 { return value * 16 }

// Fluid interpolates linearly between minValue and maxValue as the width
// moves from minVP to maxVP, clamping outside that range.
func (v Viewport) Fluid(minValue, maxValue, minVP, maxVP float64) float64 {
	if v.Width <= minVP {
		return minValue
	}
	if v.Width >= maxVP {
		return maxValue
	}
	ratio := (v.Width - minVP) / (maxVP - minVP)
	return minValue + (maxValue-minValue)*ratio
}

// CenteredPosition returns the top-left corner that centers a w×h box.
func (v Viewport) CenteredPosition(w, h float64) Vec2 {
	return Vec2{(v.Width - w) / 2, (v.Height - h) / 2}
}

// Fit is the result of MaintainAspectRatio.
type Fit struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// MaintainAspectRatio fits a targetW×targetH box into the container
// without distortion.
func MaintainAspectRatio(targetW, targetH, containerW, containerH float64) Fit {
	targetRatio := targetW / targetH
	containerRatio := containerW / containerH
	var w, h float64
	if containerRatio > targetRatio {
		h = containerH
		w = h * targetRatio
	} else {
		w = containerW
		h = w / targetRatio
	}
	return Fit{
		Width:   math.Round(w),
		Height:  math.Round(h),
		OffsetX: (containerW - w) / 2,
		OffsetY: (containerH - h) / 2,
	}
}

// OptimalCanvasSize caps the canvas for phones and low-end devices at 800×600.
func OptimalCanvasSize(v Viewport, p DeviceProfile) Viewport {
	if p.IsMobile || p.Tier == TierLow {
		v.Width = math.Min(v.Width, 800)
		v.Height = math.Min(v.Height, 600)
	}
	return v
}

// ViewportChange describes a debounced resize.
type ViewportChange struct {
	Viewport           Viewport
	Breakpoint         Breakpoint
	Orientation        Orientation
	Previous           Viewport
	PreviousBreakpoint Breakpoint
	OrientationChanged bool
}

type viewportHandler struct {
	id uint32
	fn func(ViewportChange)
}

// ViewportWatcher coalesces bursts of resize notifications and reports the
// settled size once the viewport has been still for ResizeDebounce.
type ViewportWatcher struct {
	sched    *Scheduler
	current  Viewport
	pending  Viewport
	timer    *Timer
	handlers []viewportHandler
	nextID   uint32
}

// NewViewportWatcher starts watching from the initial viewport.
func NewViewportWatcher(sched *Scheduler, initial Viewport) *ViewportWatcher {
	return &ViewportWatcher{sched: sched, current: initial, pending: initial}
}

// Viewport returns the last settled viewport.
func (w *ViewportWatcher) Viewport() Viewport { return w.current }

// Breakpoint returns the breakpoint of the last settled viewport.
func (w *ViewportWatcher) Breakpoint() Breakpoint { return BreakpointFor(w.current.Width) }

// OnChange registers fn for settled changes. The returned func unregisters it.
func (w *ViewportWatcher) OnChange(fn func(ViewportChange)) (remove func()) {
	w.nextID++
	id := w.nextID
	w.handlers = append(w.handlers, viewportHandler{id: id, fn: fn})
	return func() {
		for i := range w.handlers {
			if w.handlers[i].id == id {
				w.handlers = append(w.handlers[:i], w.handlers[i+1:]...)
				return
			}
		}
	}
}

// Resize reports the raw viewport size. It may be called every frame; only
// a size that differs from the last reported one restarts the debounce.
func (w *ViewportWatcher) Resize(width, height float64) {
	next := Viewport{width, height}
	if next == w.pending {
		return
	}
	w.pending = next
	w.timer.Cancel()
	w.timer = w.sched.After(ResizeDebounce, w.settle)
}

// Stop drops any pending notification.
func (w *ViewportWatcher) Stop() {
	w.timer.Cancel()
	w.timer = nil
}

func (w *ViewportWatcher) settle() {
	w.timer = nil
	prev := w.current
	next := w.pending
	prevBP := BreakpointFor(prev.Width)
	nextBP := BreakpointFor(next.Width)
	if prev == next && prevBP == nextBP {
		return
	}
	w.current = next
	ch := ViewportChange{
		Viewport:           next,
		Breakpoint:         nextBP,
		Orientation:        next.Orientation(),
		Previous:           prev,
		PreviousBreakpoint: prevBP,
		OrientationChanged: prev.Orientation() != next.Orientation(),
	}
	logger().Debug("viewport changed",
		"width", next.Width, "height", next.Height, "breakpoint", nextBP.String())
	for _, h := range w.handlers {
		h.fn(ch)
	}
}
