package faros

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into a scene: the world point it centers on and
// its zoom. A scene with a camera draws its entities through it.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// MinZoom and MaxZoom bound ZoomTo and SetZoom.
	MinZoom, MaxZoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	follow     func() Vec2
	followLerp float64

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a camera for viewport centered on the viewport's middle,
// so at zoom 1 world and screen coordinates coincide.
func NewCamera(viewport Rect) *Camera {
	c := viewport.Center()
	return &Camera{
		X: c.X, Y: c.Y,
		Zoom:     1,
		MinZoom:  0.5,
		MaxZoom:  3,
		Viewport: viewport,
	}
}

// Follow makes the camera track target with the given lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(target func() Vec2, lerp float64) {
	c.follow = target
	c.followLerp = lerp
}

// Unfollow stops tracking.
func (c *Camera) Unfollow() {
	c.follow = nil
}

// Following reports whether the camera tracks a target.
func (c *Camera) Following() bool { return c.follow != nil }

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the zoom to z, clamped to [MinZoom, MaxZoom].
func (c *Camera) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	z = clamp(z, c.MinZoom, c.MaxZoom)
	c.zoomTween = gween.New(float32(c.Zoom), float32(z), duration, easeFn)
}

// SetZoom sets the zoom immediately, cancelling any zoom animation.
func (c *Camera) SetZoom(z float64) {
	c.zoomTween = nil
	c.Zoom = clamp(z, c.MinZoom, c.MaxZoom)
}

// Animating reports whether a scroll or zoom tween is running.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// SetViewport resizes the viewport, keeping the centered world point.
func (c *Camera) SetViewport(v Rect) {
	c.Viewport = v
}

// Update advances follow, scroll, zoom and bounds clamping.
func (c *Camera) Update(dt float32) {
	if c.follow != nil {
		t := c.follow()
		c.X += (t.X - c.X) * c.followLerp
		c.Y += (t.Y - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.Zoom = float64(val)
		if done {
			c.zoomTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// Transform returns the world-to-screen transform.
func (c *Camera) Transform() Transform {
	center := c.Viewport.Center()
	return Transform{
		OffsetX: center.X - c.X*c.Zoom,
		OffsetY: center.Y - c.Y*c.Zoom,
		Scale:   c.Zoom,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	p := c.Transform().Apply(Vec2{wx, wy})
	return p.X, p.Y
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	p := c.Transform().Inverse(Vec2{sx, sy})
	return p.X, p.Y
}

// VisibleBounds returns the camera's visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	w := c.Viewport.Width / c.Zoom
	h := c.Viewport.Height / c.Zoom
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}
