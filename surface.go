package faros

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Transform maps scene coordinates to screen coordinates:
// screen = scene*Scale + Offset.
type Transform struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// Identity is the transform that changes nothing.
var Identity = Transform{Scale: 1}

// Apply maps a point.
func (t Transform) Apply(p Vec2) Vec2 {
	return Vec2{p.X*t.Scale + t.OffsetX, p.Y*t.Scale + t.OffsetY}
}

// Then composes t followed by u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		OffsetX: t.OffsetX*u.Scale + u.OffsetX,
		OffsetY: t.OffsetY*u.Scale + u.OffsetY,
		Scale:   t.Scale * u.Scale,
	}
}

// Inverse maps screen coordinates back to scene coordinates.
func (t Transform) Inverse(p Vec2) Vec2 {
	if t.Scale == 0 {
		return p
	}
	return Vec2{(p.X - t.OffsetX) / t.Scale, (p.Y - t.OffsetY) / t.Scale}
}

// Surface is the immediate-mode drawing contract entities draw against.
type Surface interface {
	Size() (w, h float64)
	DeviceScale() float64

	Fill(c Color)
	FillRect(r Rect, c Color)
	FillRoundRect(r Rect, radius float64, c Color)
	StrokeRect(r Rect, width float64, c Color)
	FillEllipse(cx, cy, rx, ry float64, c Color)
	StrokeEllipse(cx, cy, rx, ry, width float64, c Color)
	FillPolygon(pts []Vec2, c Color)
	StrokeLine(a, b Vec2, width float64, c Color)

	Text(s string, x, y, size float64, align TextAlign, c Color)
	MeasureText(s string, size float64) (w, h float64)
	DrawImage(a *Asset, r Rect, alpha float64)

	PushTransform(t Transform)
	PopTransform()
}

const ellipseSegments = 32

// ellipsePoints approximates an ellipse with a convex polygon.
func ellipsePoints(cx, cy, rx, ry float64, buf []Vec2) []Vec2 {
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		buf = append(buf, Vec2{cx + rx*math.Cos(a), cy + ry*math.Sin(a)})
	}
	return buf
}

// roundRectPoints outlines a rectangle with quarter-circle corners.
func roundRectPoints(r Rect, radius float64, buf []Vec2) []Vec2 {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0 {
		return append(buf,
			Vec2{r.X, r.Y}, Vec2{r.X + r.Width, r.Y},
			Vec2{r.X + r.Width, r.Y + r.Height}, Vec2{r.X, r.Y + r.Height})
	}
	const steps = 6
	corners := [4]struct{ cx, cy, start float64 }{
		{r.X + r.Width - radius, r.Y + radius, -math.Pi / 2},
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, math.Pi / 2},
		{r.X + radius, r.Y + radius, math.Pi},
	}
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + (math.Pi/2)*float64(i)/steps
			buf = append(buf, Vec2{c.cx + radius*math.Cos(a), c.cy + radius*math.Sin(a)})
		}
	}
	return buf
}

// ScreenSurface draws onto an *ebiten.Image.
type ScreenSurface struct {
	dst   *ebiten.Image
	font  *Font
	white *ebiten.Image
	scale float64
	stack []Transform
	cur   Transform
	pts   []Vec2
	verts []ebiten.Vertex
	inds  []uint16
}

// NewScreenSurface creates a surface for font text. deviceScale is the
// monitor's pixel ratio.
func NewScreenSurface(font *Font, deviceScale float64) *ScreenSurface {
	white := ebiten.NewImage(3, 3)
	white.Fill(ColorWhite.toRGBA())
	if deviceScale <= 0 {
		deviceScale = 1
	}
	return &ScreenSurface{font: font, white: white, scale: deviceScale, cur: Identity}
}

// Begin targets dst for the coming frame and resets the transform stack.
func (s *ScreenSurface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.stack = s.stack[:0]
	s.cur = Identity
}

// Target returns the image being drawn to.
func (s *ScreenSurface) Target() *ebiten.Image { return s.dst }

func (s *ScreenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *ScreenSurface) DeviceScale() float64 { return s.scale }

func (s *ScreenSurface) Fill(c Color) {
	s.dst.Fill(c.toRGBA())
}

func (s *ScreenSurface) rect(r Rect) (float32, float32, float32, float32) {
	p := s.cur.Apply(Vec2{r.X, r.Y})
	return float32(p.X), float32(p.Y), float32(r.Width * s.cur.Scale), float32(r.Height * s.cur.Scale)
}

func (s *ScreenSurface) FillRect(r Rect, c Color) {
	x, y, w, h := s.rect(r)
	vector.DrawFilledRect(s.dst, x, y, w, h, c.toRGBA(), true)
}

func (s *ScreenSurface) FillRoundRect(r Rect, radius float64, c Color) {
	s.pts = roundRectPoints(r, radius, s.pts[:0])
	s.fillConvex(s.pts, c)
}

func (s *ScreenSurface) StrokeRect(r Rect, width float64, c Color) {
	x, y, w, h := s.rect(r)
	vector.StrokeRect(s.dst, x, y, w, h, float32(width), c.toRGBA(), true)
}

func (s *ScreenSurface) FillEllipse(cx, cy, rx, ry float64, c Color) {
	if rx == ry {
		p := s.cur.Apply(Vec2{cx, cy})
		vector.DrawFilledCircle(s.dst, float32(p.X), float32(p.Y), float32(rx*s.cur.Scale), c.toRGBA(), true)
		return
	}
	s.pts = ellipsePoints(cx, cy, rx, ry, s.pts[:0])
	s.fillConvex(s.pts, c)
}

func (s *ScreenSurface) StrokeEllipse(cx, cy, rx, ry, width float64, c Color) {
	if rx == ry {
		p := s.cur.Apply(Vec2{cx, cy})
		vector.StrokeCircle(s.dst, float32(p.X), float32(p.Y), float32(rx*s.cur.Scale), float32(width), c.toRGBA(), true)
		return
	}
	s.pts = ellipsePoints(cx, cy, rx, ry, s.pts[:0])
	for i := range s.pts {
		s.StrokeLine(s.pts[i], s.pts[(i+1)%len(s.pts)], width, c)
	}
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *ScreenSurface) FillPolygon(pts []Vec2, c Color) {
	s.fillConvex(pts, c)
}

func (s *ScreenSurface) fillConvex(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	a := float32(clamp01(c.A))
	r := float32(clamp01(c.R)) * a
	g := float32(clamp01(c.G)) * a
	b := float32(clamp01(c.B)) * a

	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range pts {
		q := s.cur.Apply(p)
		s.verts = append(s.verts, ebiten.Vertex{
			DstX: float32(q.X), DstY: float32(q.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		s.inds = append(s.inds, 0, uint16(i), uint16(i+1))
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	s.dst.DrawTriangles(s.verts, s.inds, s.white, &op)
}

func (s *ScreenSurface) StrokeLine(a, b Vec2, width float64, c Color) {
	p := s.cur.Apply(a)
	q := s.cur.Apply(b)
	vector.StrokeLine(s.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), float32(width), c.toRGBA(), true)
}

// Text draws s with its top edge at y. x is the left edge, center or right
// edge depending on align.
func (s *ScreenSurface) Text(str string, x, y, size float64, align TextAlign, c Color) {
	if s.font == nil || str == "" {
		return
	}
	size *= s.cur.Scale
	p := s.cur.Apply(Vec2{x, y})
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = s.font.LineHeight(size)
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(s.dst, str, s.font.Face(size), op)
}

func (s *ScreenSurface) MeasureText(str string, size float64) (float64, float64) {
	if s.font == nil {
		return float64(len(str)) * size * 0.5, size
	}
	return s.font.Measure(str, size)
}

// DrawImage stretches a ready asset over r. Assets that are not ready draw
// nothing; callers fall back to placeholder shapes.
func (s *ScreenSurface) DrawImage(a *Asset, r Rect, alpha float64) {
	if !a.Ready() {
		return
	}
	b := a.img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	x, y, w, h := s.rect(r)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(a.img, op)
}

func (s *ScreenSurface) PushTransform(t Transform) {
	s.stack = append(s.stack, s.cur)
	s.cur = t.Then(s.cur)
}

func (s *ScreenSurface) PopTransform() {
	if len(s.stack) == 0 {
		s.cur = Identity
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

var _ Surface = (*ScreenSurface)(nil)
