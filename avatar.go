package faros

import "time"

// Avatar defaults.
const (
	DefaultAvatarSpeed       = 3.0
	DefaultAvatarMargin      = 10.0
	DefaultCollisionCooldown = time.Second

	// boatGap separates the boat from the portrait below it.
	boatGap = 5.0
	// boatHeadroom keeps the boat on screen when moving up.
	boatHeadroom = 15.0
)

// Avatar is the movable character. Its position is the center of its
// portrait; when a boat is shown it floats above the portrait and counts
// towards the avatar's collision box.
type Avatar struct {
	X, Y     float64
	Size     float64
	BoatSize float64
	ShowBoat bool

	Speed    float64
	Margin   float64
	Cooldown time.Duration

	Label    string
	Portrait *Asset
	Boat     *Asset

	// OnBlocked is called when a move is rejected by a marker, at most once
	// per Cooldown.
	OnBlocked func(m *Marker)

	obstacles []*Marker
	w, h      float64

	elapsed     time.Duration
	lastBlocked time.Duration
	blockedOnce bool
	startX      float64
	startY      float64
}

// NewAvatar creates an avatar centered at (x, y) inside a w×h area.
func NewAvatar(x, y, size, w, h float64) *Avatar {
	return &Avatar{
		X: x, Y: y,
		Size:     size,
		Speed:    DefaultAvatarSpeed,
		Margin:   DefaultAvatarMargin,
		Cooldown: DefaultCollisionCooldown,
		Label:    "SOFÍA",
		w:        w,
		h:        h,
		startX:   x,
		startY:   y,
	}
}

// Place moves the avatar to (x, y) and makes that its reset position.
func (a *Avatar) Place(x, y float64) {
	a.X, a.Y = x, y
	a.startX, a.startY = x, y
}

// SetObstacles replaces the markers that block movement.
func (a *Avatar) SetObstacles(markers []*Marker) {
	a.obstacles = markers
}

// SetArea changes the area the avatar is clamped to and re-clamps it.
func (a *Avatar) SetArea(w, h float64) {
	a.w, a.h = w, h
	a.X = clamp(a.X, a.minX(), a.maxX())
	a.Y = clamp(a.Y, a.minY(), a.maxY())
}

func (a *Avatar) minX() float64 { return a.Size / 2 }
func (a *Avatar) maxX() float64 { return a.w - a.Size/2 }
func (a *Avatar) maxY() float64 { return a.h - a.Size/2 }

func (a *Avatar) minY() float64 {
	if a.ShowBoat {
		return a.Size/2 + a.BoatSize + boatHeadroom
	}
	return a.Size / 2
}

// boxAt returns the collision box for the avatar centered at (x, y).
func (a *Avatar) boxAt(x, y float64) Rect {
	r := RectCentered(x, y, a.Size, a.Size)
	if a.ShowBoat {
		extra := a.BoatSize + boatGap
		r.Y -= extra
		r.Height += extra
	}
	return r
}

// Bounds returns the current collision box, without the safety margin.
func (a *Avatar) Bounds() Rect {
	return a.boxAt(a.X, a.Y)
}

// Blocker returns the first marker that a move to (x, y) would run into.
// Both the avatar box and the marker boxes are inflated by Margin.
func (a *Avatar) Blocker(x, y float64) *Marker {
	box := a.boxAt(x, y).Inflate(a.Margin)
	for _, m := range a.obstacles {
		for _, hb := range m.HitBoxes() {
			if box.Overlaps(hb.Inflate(a.Margin)) {
				return m
			}
		}
	}
	return nil
}

// CanMoveTo reports whether (x, y) is free of markers.
func (a *Avatar) CanMoveTo(x, y float64) bool {
	return a.Blocker(x, y) == nil
}

// Move steps the avatar one Speed in dir. A step into a marker is rejected
// and reported through OnBlocked; otherwise the new position is clamped to
// the area. It reports whether the avatar moved.
func (a *Avatar) Move(dir Direction) bool {
	d := dir.Delta()
	if d == (Vec2{}) {
		return false
	}
	return a.MoveBy(d.X*a.Speed, d.Y*a.Speed)
}

// MoveBy attempts a move by (dx, dy) pixels with the same gating as Move.
func (a *Avatar) MoveBy(dx, dy float64) bool {
	nx, ny := a.X+dx, a.Y+dy
	if m := a.Blocker(nx, ny); m != nil {
		a.blocked(m)
		return false
	}
	px, py := a.X, a.Y
	a.X = clamp(nx, a.minX(), a.maxX())
	a.Y = clamp(ny, a.minY(), a.maxY())
	return a.X != px || a.Y != py
}

func (a *Avatar) blocked(m *Marker) {
	if a.blockedOnce && a.elapsed-a.lastBlocked <= a.Cooldown {
		return
	}
	a.blockedOnce = true
	a.lastBlocked = a.elapsed
	logger().Debug("avatar blocked", "marker", m.Name)
	if a.OnBlocked != nil {
		a.OnBlocked(m)
	}
}

// Update advances the collision cooldown clock. dt is in seconds.
func (a *Avatar) Update(dt float64) {
	a.elapsed += time.Duration(dt * float64(time.Second))
}

// Reset returns the avatar to where it was created and clears the cooldown.
func (a *Avatar) Reset() {
	a.X, a.Y = a.startX, a.startY
	a.blockedOnce = false
	a.lastBlocked = 0
}

// Draw draws the portrait (or its placeholder), the boat and a frame.
func (a *Avatar) Draw(s Surface) {
	img := RectCentered(a.X, a.Y, a.Size, a.Size)

	if a.Portrait.Ready() {
		s.DrawImage(a.Portrait, img, 1)
	} else {
		s.FillRoundRect(img, 10, Color{1, 0.78, 1, 0.4})
		s.FillEllipse(a.X, a.Y, a.Size*0.3, a.Size*0.3, Color{1, 1, 1, 0.78})
		s.Text(a.Label, a.X, a.Y-6, 12, TextAlignCenter, Color{0.59, 0.59, 0.59, 1})
	}

	if a.ShowBoat {
		a.drawBoat(s, img)
	}

	s.StrokeRect(img, 3, Color{1, 0.78, 1, 1})
}

func (a *Avatar) drawBoat(s Surface, img Rect) {
	size := a.BoatSize
	x := a.X - size/2
	y := img.Y - size - boatGap
	if a.Boat.Ready() {
		s.DrawImage(a.Boat, Rect{X: x, Y: y, Width: size, Height: size * 0.8}, 1)
		return
	}
	mid := x + size/2
	// hull
	hull := []Vec2{
		{mid - size*0.4, y + size*0.7},
		{mid + size*0.4, y + size*0.7},
		{mid + size*0.28, y + size*0.82},
		{mid - size*0.28, y + size*0.82},
	}
	s.FillPolygon(hull, ColorWhite)
	s.StrokeLine(Vec2{mid, y + size*0.2}, Vec2{mid, y + size*0.7}, 2, ColorBlack)
	s.FillPolygon([]Vec2{
		{mid, y + size*0.2},
		{x + size*0.8, y + size*0.4},
		{mid, y + size*0.6},
	}, ColorWhite)
	s.FillRect(Rect{X: mid, Y: y + size*0.2, Width: size * 0.15, Height: size * 0.1}, Color{1, 0, 0, 1})
}

var (
	_ Entity   = (*Avatar)(nil)
	_ Updater  = (*Avatar)(nil)
	_ Resetter = (*Avatar)(nil)
)
