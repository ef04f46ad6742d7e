package faros

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Dialogue layout.
const (
	dialogueWidthRatio = 0.6
	dialoguePadding    = 20.0
	dialogueLineHeight = 20.0
	dialogueRadius     = 15.0
	dialogueFade       = 500 * time.Millisecond
	dialoguePopIn      = 0.25 // seconds
)

var (
	dialogueFill    = Color{1, 1, 240.0 / 255, 250.0 / 255}
	dialogueBorder  = RGB8(100, 100, 100)
	dialogueSpeaker = RGB8(150, 100, 50)
	dialogueText    = RGB8(50, 50, 50)
)

// Dialogue is a speech bubble pointing at a spot on screen. It shows one
// message at a time for a fixed duration and fades out over the last half
// second.
type Dialogue struct {
	Duration    time.Duration
	TextSize    float64
	SpeakerSize float64

	speaker string
	text    string
	anchor  Vec2
	left    time.Duration

	scale float64
	pop   *TweenGroup

	w, h float64
}

// NewDialogue creates a hidden dialogue for a w×h screen.
func NewDialogue(w, h float64) *Dialogue {
	return &Dialogue{
		Duration:    DefaultMessageDuration,
		TextSize:    14,
		SpeakerSize: 12,
		scale:       1,
		w:           w,
		h:           h,
	}
}

// SetArea changes the screen size the bubble is kept inside.
func (d *Dialogue) SetArea(w, h float64) {
	d.w, d.h = w, h
}

// Show replaces the current message. The bubble points at anchor.
func (d *Dialogue) Show(speaker, text string, anchor Vec2) {
	d.speaker = speaker
	d.text = text
	d.anchor = anchor
	d.left = d.Duration
	d.scale = 0.6
	d.pop = TweenValue(&d.scale, 1, dialoguePopIn, ease.OutBack)
}

// ShowMarker shows a marker's message next to its tower.
func (d *Dialogue) ShowMarker(m *Marker) {
	d.Show(m.Name, m.Message, Vec2{m.X + 15, m.Y - 20})
}

// Hide removes the bubble.
func (d *Dialogue) Hide() {
	d.left = 0
	d.pop = nil
	d.scale = 1
}

// Visible reports whether a message is showing.
func (d *Dialogue) Visible() bool { return d.left > 0 }

// Speaker returns the name of whoever is speaking, or "".
func (d *Dialogue) Speaker() string {
	if !d.Visible() {
		return ""
	}
	return d.speaker
}

// Text returns the message being shown, or "".
func (d *Dialogue) Text() string {
	if !d.Visible() {
		return ""
	}
	return d.text
}

// Alpha is the bubble opacity: 1 until the last 500 ms, then linear to 0.
func (d *Dialogue) Alpha() float64 {
	if d.left <= 0 {
		return 0
	}
	if d.left >= dialogueFade {
		return 1
	}
	return float64(d.left) / float64(dialogueFade)
}

// Update counts down the display time and runs the pop-in. dt is in seconds.
func (d *Dialogue) Update(dt float64) {
	if d.left <= 0 {
		return
	}
	if d.pop != nil {
		d.pop.Update(float32(dt))
		if d.pop.Done {
			d.pop = nil
		}
	}
	d.left -= time.Duration(dt * float64(time.Second))
	if d.left <= 0 {
		d.Hide()
	}
}

// Reset hides the bubble.
func (d *Dialogue) Reset() { d.Hide() }

// Lines wraps the message to fit the bubble.
func (d *Dialogue) Lines(m Measurer) []string {
	return WrapText(m, d.text, d.TextSize, d.w*dialogueWidthRatio-2*dialoguePadding)
}

// Layout returns the bubble rectangle for n lines of text, kept 20 px
// inside the screen.
func (d *Dialogue) Layout(n int) Rect {
	bw := d.w * dialogueWidthRatio
	bh := float64(n)*dialogueLineHeight + 2*dialoguePadding
	x := clamp(d.anchor.X-bw/2, 20, d.w-bw-20)
	y := clamp(d.anchor.Y-bh-30, 20, d.h-bh-20)
	return Rect{X: x, Y: y, Width: bw, Height: bh}
}

// Draw draws the bubble with its shadow, tail, speaker and wrapped text.
func (d *Dialogue) Draw(s Surface) {
	if !d.Visible() {
		return
	}
	lines := d.Lines(s)
	r := d.Layout(len(lines))
	alpha := d.Alpha()

	// Pop-in scales around the bubble center.
	c := r.Center()
	s.PushTransform(Transform{OffsetX: c.X - c.X*d.scale, OffsetY: c.Y - c.Y*d.scale, Scale: d.scale})
	defer s.PopTransform()

	fade := func(col Color) Color { return col.WithAlpha(col.A * alpha) }

	shadow := r
	shadow.X += 3
	shadow.Y += 3
	s.FillRoundRect(shadow, dialogueRadius, fade(Color{0, 0, 0, 100.0 / 255}))
	s.FillRoundRect(r, dialogueRadius, fade(dialogueFill))

	tx := clamp(d.anchor.X, r.X+30, r.X+r.Width-30)
	ty := r.Y + r.Height
	tail := []Vec2{{tx - 10, ty}, {tx + 10, ty}, {tx, ty + 15}}
	s.FillPolygon(tail, fade(dialogueFill))
	s.StrokeLine(tail[0], tail[2], 2, fade(dialogueBorder))
	s.StrokeLine(tail[1], tail[2], 2, fade(dialogueBorder))

	s.Text(d.speaker+":", r.X+dialoguePadding, r.Y+dialoguePadding/2-d.SpeakerSize/2, d.SpeakerSize, TextAlignLeft, fade(dialogueSpeaker))
	for i, line := range lines {
		y := r.Y + dialoguePadding + (float64(i)+0.5)*dialogueLineHeight
		s.Text(line, r.X+dialoguePadding, y, d.TextSize, TextAlignLeft, fade(dialogueText))
	}
}

var (
	_ Entity   = (*Dialogue)(nil)
	_ Updater  = (*Dialogue)(nil)
	_ Resetter = (*Dialogue)(nil)
)
