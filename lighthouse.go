package faros

import (
	"math"

	"github.com/tanema/gween/ease"
)

// MainSceneName is the name the lighthouse scene registers under.
const MainSceneName = "main"

// joystickDeadZone ignores small stick readings.
const joystickDeadZone = 0.1

const cameraFollowLerp = 0.1

// movementKeys maps key names to the direction they move the avatar.
var movementKeys = map[Direction][]string{
	DirUp:    {"w", "arrowup"},
	DirDown:  {"s", "arrowdown"},
	DirLeft:  {"a", "arrowleft"},
	DirRight: {"d", "arrowright"},
}

// backdrop clears the screen and, when animated, paints a slowly cycling
// gradient.
type backdrop struct {
	base     Color
	animated bool
	t        float64
}

func (b *backdrop) Update(dt float64) { b.t += dt }
func (b *backdrop) Reset()            { b.t = 0 }

func (b *backdrop) Draw(s Surface) {
	s.Fill(b.base)
	if !b.animated {
		return
	}
	w, h := s.Size()
	const step = 4.0
	for y := 0.0; y <= h; y += step {
		hue := math.Mod(b.t*10+y*0.1, 360)
		c := hsv(hue, 0.3, 0.2).WithAlpha(1 - y/h)
		s.FillRect(Rect{Y: y, Width: w, Height: step}, c)
	}
}

// hsv converts hue in degrees and saturation/value in [0, 1] to a Color.
func hsv(h, sat, v float64) Color {
	c := v * sat
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g = c, x
	case h < 120:
		r, g = x, c
	case h < 180:
		g, b = c, x
	case h < 240:
		g, b = x, c
	case h < 300:
		r, b = x, c
	default:
		r, b = c, x
	}
	return Color{r + m, g + m, b + m, 1}
}

// titleCard is the scene title and hint, drawn over the world.
type titleCard struct {
	scaler *Scaler
	w, h   float64
}

func (t *titleCard) Draw(s Surface) {
	white := Color{1, 1, 1, 200.0 / 255}
	title := t.scaler.FontSize(SizeLG)
	hint := t.scaler.FontSize(SizeSM)
	s.Text("Faros de Sofía", t.w/2, t.h/4-title/2, title, TextAlignCenter, white)
	s.Text("Tap para interactuar", t.w/2, t.h/4+title/2+t.scaler.Spacing(SizeSM), hint, TextAlignCenter, white)
}

// LighthouseScene is the main scene: the avatar among the lighthouses.
// Which parts are built is decided by its Features, so the same scene
// covers everything from the bare towers to the full interactive version.
type LighthouseScene struct {
	NopGestures

	app      *App
	features Features
	specs    []MarkerSpec
	scene    *Scene

	back      *backdrop
	fog       *Fog
	particles *ParticleSystem
	markers   []*Marker
	avatar    *Avatar
	dialogue  *Dialogue
	dpad      *DPad
	joystick  *Joystick
	camera    *Camera
	title     *titleCard

	w, h      float64
	pinching  bool
	pinchBase float64
}

// NewLighthouseScene builds the main scene for app.
func NewLighthouseScene(app *App, f Features, specs []MarkerSpec) *LighthouseScene {
	l := &LighthouseScene{app: app, features: f, specs: specs}
	l.scene = NewScene(MainSceneName, l)
	w, h := app.Size()
	cfg := app.Config()
	assets := app.Assets()

	l.back = &backdrop{base: RGB8(220, 220, 220)}
	if f.Particles {
		l.back = &backdrop{base: RGB8(20, 25, 40), animated: true}
	}
	l.scene.Add(l.back)

	if f.Fog {
		l.fog = NewFog()
		l.scene.Add(l.fog)
	}

	if f.Particles {
		l.particles = NewParticleSystem(app.Profile().RecommendedParticles, w, h, app.Rand())
		l.particles.Fill(l.particles.Max() / 2)
		l.scene.Add(l.particles)
	}

	for _, spec := range specs {
		c, err := ParseHexColor(spec.Color)
		if err != nil {
			logger().Warn("marker color", "marker", spec.Name, "err", err)
			c = ColorWhite
		}
		m := NewMarker(spec.Name, spec.Message, c, 0, 0, 0, 0)
		m.MessageDuration = cfg.MessageDuration()
		m.ShowPortrait = f.Portraits
		m.Tower = assets.Get(spec.Tower)
		if f.Portraits {
			m.Portrait = assets.Get(spec.Portrait)
		}
		if !f.Particles {
			m.LabelColor = ColorBlack
		}
		l.markers = append(l.markers, m)
		l.scene.Add(m)
	}

	l.avatar = NewAvatar(w/2, h/2, 0, w, h)
	l.avatar.ShowBoat = f.Boat
	l.avatar.Cooldown = cfg.CollisionCooldown()
	if f.Portraits {
		l.avatar.Portrait = assets.Get(cfg.AvatarImage)
	}
	if f.Boat {
		l.avatar.Boat = assets.Get(cfg.BoatImage)
	}
	l.avatar.SetObstacles(l.markers)
	l.avatar.OnBlocked = l.reveal
	l.scene.Add(l.avatar)

	if f.Title {
		l.title = &titleCard{scaler: app.Scaler()}
		l.scene.AddHUD(l.title)
	}

	if f.Dialogue {
		l.dialogue = NewDialogue(w, h)
		l.dialogue.Duration = cfg.MessageDuration()
		l.scene.AddHUD(l.dialogue)
	}
	if f.DPad {
		l.dpad = NewDPad(w, h)
		l.scene.AddHUD(l.dpad)
	}
	if f.Joystick {
		l.joystick = NewJoystick(0, 0, 0)
		l.scene.AddHUD(l.joystick)
	}
	if f.Zoom {
		l.camera = NewCamera(Rect{Width: w, Height: h})
		l.camera.MinZoom = 1
		l.scene.AddCamera(l.camera)
	}

	l.layout(w, h)
	return l
}

// Scene returns the scene the behavior drives.
func (l *LighthouseScene) Scene() *Scene { return l.scene }

// Avatar returns the movable character.
func (l *LighthouseScene) Avatar() *Avatar { return l.avatar }

// Markers returns the lighthouses in configuration order.
func (l *LighthouseScene) Markers() []*Marker { return l.markers }

// Particles returns the particle system, or nil without particles.
func (l *LighthouseScene) Particles() *ParticleSystem { return l.particles }

// Dialogue returns the speech bubble, or nil without dialogue.
func (l *LighthouseScene) Dialogue() *Dialogue { return l.dialogue }

// DPad returns the on-screen pad, or nil without one.
func (l *LighthouseScene) DPad() *DPad { return l.dpad }

// Joystick returns the on-screen stick, or nil without one.
func (l *LighthouseScene) Joystick() *Joystick { return l.joystick }

// Message returns the message currently on screen, preferring the dialogue
// bubble over marker captions.
func (l *LighthouseScene) Message() string {
	if l.dialogue != nil && l.dialogue.Visible() {
		return l.dialogue.Text()
	}
	for _, m := range l.markers {
		if m.Revealed() {
			return m.Message
		}
	}
	return ""
}

// SetParticleBudget changes how many particles may live at once.
func (l *LighthouseScene) SetParticleBudget(n int) {
	if l.particles != nil {
		l.particles.SetMax(n)
	}
}

// layout sizes and places everything for a w×h screen.
func (l *LighthouseScene) layout(w, h float64) {
	l.w, l.h = w, h
	sc := l.app.Scaler()
	spacing := sc.Spacing(SizeXL)
	portrait := sc.Scale(60)

	for i, m := range l.markers {
		m.TowerWidth = sc.Scale(40)
		m.TowerHeight = sc.Scale(80)
		m.PortraitSize = portrait
		m.FontSize = sc.FontSize(SizeXS)
		m.SetArea(w, h)
		switch l.specs[i].Anchor {
		case AnchorTopLeft:
			m.X, m.Y = spacing*2, spacing*2
		case AnchorTopRight:
			m.X, m.Y = w-spacing*3-30, spacing*2
		case AnchorBottomCenter:
			m.X, m.Y = w/2-15, h-spacing*6-portrait
		}
	}

	l.avatar.Size = sc.Scale(80)
	l.avatar.BoatSize = sc.Scale(80)
	l.avatar.SetArea(w, h)
	l.avatar.Place(w/2, h/2)

	if l.title != nil {
		l.title.w, l.title.h = w, h
	}

	if l.particles != nil {
		l.particles.Resize(w, h)
	}
	if l.dialogue != nil {
		l.dialogue.SetArea(w, h)
		l.dialogue.TextSize = sc.FontSize(SizeSM)
		l.dialogue.SpeakerSize = sc.FontSize(SizeXS)
	}
	if l.dpad != nil {
		l.dpad.SetArea(w, h)
	}
	if l.joystick != nil {
		r := sc.Scale(60)
		l.joystick.Center = Vec2{r + 20, h - r - 20}
		l.joystick.Radius = r
	}
	if l.camera != nil {
		l.camera.SetBounds(Rect{Width: w, Height: h})
	}
}

// reveal shows a marker's message, in the bubble when there is one.
func (l *LighthouseScene) reveal(m *Marker) {
	m.Reveal()
	if l.dialogue != nil {
		l.dialogue.ShowMarker(m)
	}
	l.app.Haptics().Play(PatternNotification)
	l.app.emit(Event{Type: EventMarkerRevealed, X: m.X, Y: m.Y, Name: m.Name})
}

// --- SceneBehavior ---

func (l *LighthouseScene) OnEnter(data any) {
	logger().Info("entering scene", "scene", MainSceneName)
	if l.joystick != nil {
		l.app.Input().SetJoystick(l.joystick)
	}
}

func (l *LighthouseScene) OnExit() {
	logger().Info("leaving scene", "scene", MainSceneName)
	if l.joystick != nil && l.app.Input().Joystick() == l.joystick {
		l.joystick.End()
		l.app.Input().SetJoystick(nil)
	}
	if l.dpad != nil {
		l.dpad.ReleaseAll()
	}
}

func (l *LighthouseScene) OnUpdate(dt float64) {
	in := l.app.Input()
	touches := in.Touches()
	mouse := in.Mouse()
	mobile := l.app.Profile().IsMobile

	if l.fog != nil {
		l.fog.Interacting = len(touches) > 0 || mouse.Pressed
	}
	if len(touches) < 2 {
		l.pinching = false
	}

	// Pointers in screen space; touches on phones, the mouse elsewhere.
	var pointers []Vec2
	for _, t := range touches {
		if l.joystick == nil || l.joystick.Pointer() != t.ID {
			pointers = append(pointers, Vec2{t.X, t.Y})
		}
	}
	if !mobile && (l.joystick == nil || l.joystick.Pointer() != mousePointerID) {
		pointers = append(pointers, Vec2{mouse.X, mouse.Y})
	}

	if l.features.HoverMessages {
		for _, m := range l.markers {
			hit := false
			for _, p := range pointers {
				wx, wy := l.scene.ScreenToWorld(p.X, p.Y)
				if m.Contains(wx, wy) {
					hit = true
					break
				}
			}
			if hit && !m.Hovered() && mobile {
				l.app.Haptics().Play(PatternNotification)
			}
			m.SetHovered(hit)
		}
	}

	if l.dpad != nil {
		l.dpad.ReleaseAll()
		for _, t := range touches {
			l.dpad.Press(t.X, t.Y)
		}
		if mouse.Pressed {
			l.dpad.Press(mouse.X, mouse.Y)
		}
	}
	for _, dir := range [...]Direction{DirUp, DirDown, DirLeft, DirRight} {
		if in.Keys().AnyPressed(movementKeys[dir]...) || (l.dpad != nil && l.dpad.Held(dir)) {
			l.avatar.Move(dir)
		}
	}

	if v := in.JoystickVector(); v.Magnitude > joystickDeadZone {
		l.avatar.MoveBy(v.X*l.avatar.Speed, v.Y*l.avatar.Speed)
		if l.particles != nil {
			n := int(math.Ceil(v.Magnitude * 3))
			l.particles.Burst(l.avatar.X, l.avatar.Y, Vec2{v.X * 5, v.Y * 5}, n)
		}
	}
}

func (l *LighthouseScene) OnDraw(s Surface) {
	if l.app.DebugCollisions() {
		drawCollisionDebug(s, l.avatar, l.markers)
	}
}

func (l *LighthouseScene) OnReset() {
	if l.particles != nil {
		l.particles.Fill(l.particles.Max() / 2)
	}
	if l.camera != nil {
		l.camera.Unfollow()
		l.camera.SetZoom(1)
		c := Rect{Width: l.w, Height: l.h}.Center()
		l.camera.X, l.camera.Y = c.X, c.Y
	}
	l.pinching = false
}

func (l *LighthouseScene) OnResize(w, h float64) {
	l.layout(w, h)
}

// --- GestureHandler ---

// OnSingleTap reveals the marker under the tap, or scatters a few particles.
func (l *LighthouseScene) OnSingleTap(x, y float64) {
	if l.dpad != nil && l.dpad.Hit(x, y) != DirNone {
		return
	}
	wx, wy := l.scene.ScreenToWorld(x, y)
	for _, m := range l.markers {
		if m.Contains(wx, wy) {
			l.reveal(m)
			return
		}
	}
	if l.particles != nil {
		l.particles.Burst(wx, wy, Vec2{}, 5)
	}
}

// OnDoubleTap zooms back out to the whole scene.
func (l *LighthouseScene) OnDoubleTap(x, y float64) {
	if l.camera == nil {
		l.OnSingleTap(x, y)
		return
	}
	c := Rect{Width: l.w, Height: l.h}.Center()
	l.camera.Unfollow()
	l.camera.ZoomTo(1, 0.3, ease.OutQuad)
	l.camera.ScrollTo(c.X, c.Y, 0.3, ease.OutQuad)
}

// OnSwipe slides the avatar up to ten steps in the swipe direction.
func (l *LighthouseScene) OnSwipe(sw Swipe) {
	for i := 0; i < 10; i++ {
		if !l.avatar.Move(sw.Direction) {
			return
		}
	}
}

// OnPinch zooms the camera relative to the zoom at the start of the pinch.
// While zoomed in the camera follows the avatar.
func (l *LighthouseScene) OnPinch(scale float64) {
	if l.camera == nil {
		return
	}
	if !l.pinching {
		l.pinching = true
		l.pinchBase = l.camera.Zoom
	}
	l.camera.SetZoom(l.pinchBase * scale)
	if l.camera.Zoom > 1 {
		l.camera.Follow(l.avatarPos, cameraFollowLerp)
	} else {
		l.camera.Unfollow()
	}
}

func (l *LighthouseScene) avatarPos() Vec2 {
	return Vec2{l.avatar.X, l.avatar.Y}
}

var (
	_ SceneBehavior  = (*LighthouseScene)(nil)
	_ GestureHandler = (*LighthouseScene)(nil)
)
