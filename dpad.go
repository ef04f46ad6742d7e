package faros

import "math"

// D-pad layout, in pixels from its anchor (the left button's column and the
// up button's row).
const (
	dpadButton  = 30.0
	dpadSpacing = 40.0
	dpadInset   = 120.0
)

// DPad is a four-button on-screen direction pad. Buttons stay held while a
// pointer that pressed them is down, and held directions repeat every
// frame.
type DPad struct {
	Anchor Vec2
	held   [5]bool // indexed by Direction
}

// NewDPad places the pad in the bottom-right corner of a w×h screen.
func NewDPad(w, h float64) *DPad {
	d := &DPad{}
	d.SetArea(w, h)
	return d
}

// SetArea re-anchors the pad for a w×h screen.
func (d *DPad) SetArea(w, h float64) {
	d.Anchor = Vec2{w - dpadInset, h - dpadInset}
}

// ButtonCenter returns the center of the button for dir.
func (d *DPad) ButtonCenter(dir Direction) Vec2 {
	a := d.Anchor
	switch dir {
	case DirUp:
		return Vec2{a.X + dpadSpacing, a.Y}
	case DirLeft:
		return Vec2{a.X, a.Y + dpadSpacing}
	case DirRight:
		return Vec2{a.X + 2*dpadSpacing, a.Y + dpadSpacing}
	case DirDown:
		return Vec2{a.X + dpadSpacing, a.Y + 2*dpadSpacing}
	}
	return a
}

// Hit returns the direction whose button contains (x, y), or DirNone.
// Button edges are outside.
func (d *DPad) Hit(x, y float64) Direction {
	for _, dir := range [...]Direction{DirUp, DirLeft, DirRight, DirDown} {
		c := d.ButtonCenter(dir)
		if math.Abs(x-c.X) < dpadButton/2 && math.Abs(y-c.Y) < dpadButton/2 {
			return dir
		}
	}
	return DirNone
}

// Press holds the button under (x, y) and returns its direction.
func (d *DPad) Press(x, y float64) Direction {
	dir := d.Hit(x, y)
	if dir != DirNone {
		d.held[dir] = true
	}
	return dir
}

// Set holds or releases dir directly, e.g. from the keyboard.
func (d *DPad) Set(dir Direction, on bool) {
	if dir != DirNone {
		d.held[dir] = on
	}
}

// Held reports whether dir is held.
func (d *DPad) Held(dir Direction) bool {
	return d.held[dir]
}

// ReleaseAll releases every button.
func (d *DPad) ReleaseAll() {
	d.held = [5]bool{}
}

// Reset releases every button.
func (d *DPad) Reset() { d.ReleaseAll() }

// Apply moves the avatar one step for every held direction, in the order
// up, down, left, right.
func (d *DPad) Apply(a *Avatar) {
	for _, dir := range [...]Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.held[dir] {
			a.Move(dir)
		}
	}
}

var (
	dpadIdle   = RGB8(100, 150, 255)
	dpadActive = RGB8(150, 200, 255)
)

// Draw draws the pad background and the four arrow buttons.
func (d *DPad) Draw(s Surface) {
	bg := Rect{X: d.Anchor.X - 10, Y: d.Anchor.Y - 10, Width: 100, Height: 100}
	s.FillRoundRect(bg, 10, Color{0, 0, 0, 100.0 / 255})
	s.StrokeRect(bg, 2, ColorWhite)

	for _, dir := range [...]Direction{DirUp, DirLeft, DirRight, DirDown} {
		c := d.ButtonCenter(dir)
		col := dpadIdle
		if d.held[dir] {
			col = dpadActive
		}
		r := RectCentered(c.X, c.Y, dpadButton, dpadButton)
		s.FillRoundRect(r, 5, col)
		s.StrokeRect(r, 2, ColorWhite)
		s.FillPolygon(arrow(c, dir), ColorWhite)
	}
}

// arrow returns a small triangle at c pointing in dir.
func arrow(c Vec2, dir Direction) []Vec2 {
	tip := dir.Delta()
	side := Vec2{-tip.Y, tip.X}
	return []Vec2{
		c.Add(tip.Scale(8)),
		c.Sub(tip.Scale(5)).Add(side.Scale(5)),
		c.Sub(tip.Scale(5)).Sub(side.Scale(5)),
	}
}

var (
	_ Entity   = (*DPad)(nil)
	_ Resetter = (*DPad)(nil)
)
