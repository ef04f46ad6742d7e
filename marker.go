package faros

import "time"

// DefaultMessageDuration is how long a revealed marker message stays up.
const DefaultMessageDuration = 3 * time.Second

// Marker is a lighthouse: a fixed tower with a name, a color and a message
// it reveals when touched, hovered or bumped into. With a portrait it also
// shows the person it stands for beneath the tower.
type Marker struct {
	Name    string
	Message string
	Color   Color
	X, Y    float64

	TowerWidth   float64
	TowerHeight  float64
	PortraitSize float64
	ShowPortrait bool

	Tower    *Asset
	Portrait *Asset

	MessageDuration time.Duration
	FontSize        float64
	LabelColor      Color

	remaining time.Duration
	hovered   bool
	w, h      float64
}

// NewMarker creates a marker with a tower of tw×th at (x, y).
func NewMarker(name, message string, c Color, x, y, tw, th float64) *Marker {
	return &Marker{
		Name:            name,
		Message:         message,
		Color:           c,
		X:               x,
		Y:               y,
		TowerWidth:      tw,
		TowerHeight:     th,
		MessageDuration: DefaultMessageDuration,
		FontSize:        12,
		LabelColor:      ColorWhite,
	}
}

// SetArea records the screen size used to keep the portrait and message
// bubble on screen.
func (m *Marker) SetArea(w, h float64) {
	m.w, m.h = w, h
}

// TowerBox is the tower's interactive area.
func (m *Marker) TowerBox() Rect {
	return Rect{X: m.X - 5, Y: m.Y - 10, Width: m.TowerWidth, Height: m.TowerHeight}
}

// PortraitBox is the portrait's area below the tower, kept on screen.
func (m *Marker) PortraitBox() Rect {
	r := Rect{
		X:      m.X + 15 - m.PortraitSize/2,
		Y:      m.Y + m.TowerHeight - 5,
		Width:  m.PortraitSize,
		Height: m.PortraitSize,
	}
	if m.w > 0 {
		r.X = clamp(r.X, 5, m.w-r.Width-5)
	}
	if m.h > 0 {
		r.Y = min(r.Y, m.h-r.Height-30)
	}
	return r
}

// HitBoxes returns every box that reacts to pointers and blocks the avatar.
func (m *Marker) HitBoxes() []Rect {
	if m.ShowPortrait && m.PortraitSize > 0 {
		return []Rect{m.TowerBox(), m.PortraitBox()}
	}
	return []Rect{m.TowerBox()}
}

// Bounds returns the smallest rectangle covering every hit box.
func (m *Marker) Bounds() Rect {
	boxes := m.HitBoxes()
	r := boxes[0]
	for _, b := range boxes[1:] {
		x0 := min(r.X, b.X)
		y0 := min(r.Y, b.Y)
		x1 := max(r.X+r.Width, b.X+b.Width)
		y1 := max(r.Y+r.Height, b.Y+b.Height)
		r = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	}
	return r
}

// Contains reports whether (x, y) hits the tower or the portrait.
func (m *Marker) Contains(x, y float64) bool {
	for _, b := range m.HitBoxes() {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Reveal shows the message for MessageDuration, restarting the countdown if
// it is already showing.
func (m *Marker) Reveal() {
	m.remaining = m.MessageDuration
}

// Hide hides the message immediately.
func (m *Marker) Hide() {
	m.remaining = 0
}

// Revealed reports whether the message is showing.
func (m *Marker) Revealed() bool {
	return m.remaining > 0
}

// SetHovered marks the marker as under a pointer. Hovering keeps the
// message revealed.
func (m *Marker) SetHovered(on bool) {
	m.hovered = on
	if on {
		m.Reveal()
	}
}

// Hovered reports whether a pointer is over the marker.
func (m *Marker) Hovered() bool { return m.hovered }

// Update counts the message display down. dt is in seconds.
func (m *Marker) Update(dt float64) {
	if m.remaining <= 0 {
		return
	}
	m.remaining -= time.Duration(dt * float64(time.Second))
	if m.remaining < 0 {
		m.remaining = 0
	}
}

// Reset hides the message and clears the hover state.
func (m *Marker) Reset() {
	m.remaining = 0
	m.hovered = false
}

// Draw draws the tower, its portrait and, while revealed, the message.
func (m *Marker) Draw(s Surface) {
	tower := m.TowerBox()
	if m.Tower.Ready() {
		s.DrawImage(m.Tower, tower, 1)
	} else {
		s.FillRect(Rect{X: m.X, Y: m.Y, Width: 30, Height: 60}, m.Color)
	}

	labelY := m.Y + m.TowerHeight + 10
	if m.ShowPortrait && m.PortraitSize > 0 {
		p := m.PortraitBox()
		if m.Portrait.Ready() {
			s.DrawImage(m.Portrait, p, 1)
		} else {
			m.drawPlaceholder(s, p)
		}
		s.StrokeRect(p, 2, m.Color)
		labelY = p.Y + p.Height + 5
	}
	s.Text(m.Name, m.X+15, labelY, m.FontSize, TextAlignCenter, m.LabelColor)

	if m.Revealed() {
		m.drawMessage(s)
	}
}

func (m *Marker) drawPlaceholder(s Surface, r Rect) {
	s.FillRect(r, Color{0.78, 0.78, 0.78, 1})
	gray := Color{0.59, 0.59, 0.59, 1}
	cx := r.X + r.Width/2
	head := r.Width * 0.15
	s.FillEllipse(cx, r.Y+r.Height*0.3, head, head, gray)
	bw, bh := r.Width*0.4, r.Height*0.4
	s.FillRoundRect(Rect{X: cx - bw/2, Y: r.Y + r.Height*0.45, Width: bw, Height: bh}, 10, gray)
	if m.Name != "" {
		initial := []rune(m.Name)[:1]
		s.Text(string(initial), cx, r.Y+r.Height-16, 8, TextAlignCenter, Color{0.39, 0.39, 0.39, 1})
	}
}

// messageRect places the bubble above the tower, or below the label when
// there is no room above.
func (m *Marker) messageRect(s Surface) Rect {
	tw, _ := s.MeasureText(m.Message, m.FontSize)
	w := tw + 20
	x := m.X + 15 - w/2
	if m.w > 0 {
		x = clamp(x, 10, m.w-w-10)
	}
	y := m.Y - 30
	if y < 10 {
		b := m.Bounds()
		y = b.Y + b.Height + 25
	}
	return Rect{X: x, Y: y, Width: w, Height: 20}
}

func (m *Marker) drawMessage(s Surface) {
	r := m.messageRect(s)
	s.FillRoundRect(r, 5, Color{1, 1, 1, 0.94})
	s.StrokeRect(r, 1, ColorBlack)
	s.Text(m.Message, r.X+r.Width/2, r.Y+3, m.FontSize, TextAlignCenter, ColorBlack)
}

var (
	_ Entity   = (*Marker)(nil)
	_ Updater  = (*Marker)(nil)
	_ Resetter = (*Marker)(nil)
)
