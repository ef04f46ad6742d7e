package faros

import "math"

// DefaultJoystickMaxDistance is the knob travel in pixels.
const DefaultJoystickMaxDistance = 30.0

// JoyVector is a normalized joystick reading. X and Y lie in [-1, 1] and
// Magnitude in [0, 1].
type JoyVector struct {
	X, Y, Magnitude float64
}

// Joystick is an on-screen analog stick. A contact that begins inside its
// region drives the knob until released.
type Joystick struct {
	Center      Vec2
	Radius      float64 // hit region
	MaxDistance float64 // knob travel

	offset  Vec2
	active  bool
	pointer int
}

// NewJoystick creates a joystick centered at (cx, cy).
func NewJoystick(cx, cy, radius float64) *Joystick {
	return &Joystick{
		Center:      Vec2{cx, cy},
		Radius:      radius,
		MaxDistance: DefaultJoystickMaxDistance,
		pointer:     -1,
	}
}

// Hit reports whether (x, y) lies inside the joystick region.
func (j *Joystick) Hit(x, y float64) bool {
	if j == nil {
		return false
	}
	return Vec2{x, y}.Dist(j.Center) <= j.Radius
}

// Active reports whether a contact is driving the knob.
func (j *Joystick) Active() bool {
	return j != nil && j.active
}

// Pointer returns the id of the contact driving the knob, or -1.
func (j *Joystick) Pointer() int {
	if !j.Active() {
		return -1
	}
	return j.pointer
}

// Begin captures pointer and moves the knob toward (x, y).
func (j *Joystick) Begin(pointer int, x, y float64) {
	j.active = true
	j.pointer = pointer
	j.Drag(x, y)
}

// Drag moves the knob toward (x, y). Offsets beyond MaxDistance keep their
// angle and are clamped to MaxDistance.
func (j *Joystick) Drag(x, y float64) {
	if !j.active {
		return
	}
	dx := x - j.Center.X
	dy := y - j.Center.Y
	if math.Hypot(dx, dy) <= j.MaxDistance {
		j.offset = Vec2{dx, dy}
		return
	}
	angle := math.Atan2(dy, dx)
	j.offset = Vec2{math.Cos(angle) * j.MaxDistance, math.Sin(angle) * j.MaxDistance}
}

// End releases the knob. The offset snaps back to zero.
func (j *Joystick) End() {
	j.active = false
	j.pointer = -1
	j.offset = Vec2{}
}

// Offset returns the knob displacement in pixels.
func (j *Joystick) Offset() Vec2 {
	if j == nil {
		return Vec2{}
	}
	return j.offset
}

// Vector returns the normalized reading. A nil or inactive joystick reads zero.
func (j *Joystick) Vector() JoyVector {
	if !j.Active() || j.MaxDistance <= 0 {
		return JoyVector{}
	}
	return JoyVector{
		X:         j.offset.X / j.MaxDistance,
		Y:         j.offset.Y / j.MaxDistance,
		Magnitude: math.Min(j.offset.Len()/j.MaxDistance, 1),
	}
}

// Draw renders the base ring and the knob.
func (j *Joystick) Draw(s Surface) {
	if j == nil {
		return
	}
	s.FillEllipse(j.Center.X, j.Center.Y, j.Radius, j.Radius, Color{1, 1, 1, 0.15})
	s.StrokeEllipse(j.Center.X, j.Center.Y, j.Radius, j.Radius, 2, Color{1, 1, 1, 0.4})
	knob := j.Center.Add(j.offset)
	r := j.Radius * 0.4
	a := 0.5
	if j.active {
		a = 0.8
	}
	s.FillEllipse(knob.X, knob.Y, r, r, Color{1, 1, 1, a})
}
