package faros

// MenuSceneName is the name the menu registers under.
const MenuSceneName = "menu"

const menuButtonWidth = 200

type menuButton struct {
	label  string
	action func()
}

// MenuScene is a vertical list of buttons. Arrow keys (or W/S) move the
// selection, Enter activates it, and a tap selects and activates a button.
type MenuScene struct {
	NopGestures

	app      *App
	scene    *Scene
	buttons  []menuButton
	selected int
}

// NewMenuScene builds the menu. "Jugar" goes back to the main scene.
func NewMenuScene(app *App) *MenuScene {
	m := &MenuScene{app: app}
	m.scene = NewScene(MenuSceneName, m)
	m.buttons = []menuButton{
		{"Jugar", func() { app.ChangeScene(MainSceneName, nil) }},
		{"Opciones", func() { logger().Info("menu", "button", "Opciones") }},
		{"Acerca de", func() { logger().Info("menu", "button", "Acerca de") }},
	}
	return m
}

// Scene returns the scene the menu drives.
func (m *MenuScene) Scene() *Scene { return m.scene }

// Selected returns the index of the highlighted button.
func (m *MenuScene) Selected() int { return m.selected }

// Labels returns the button labels in order.
func (m *MenuScene) Labels() []string {
	out := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		out[i] = b.label
	}
	return out
}

// Activate runs the selected button's action.
func (m *MenuScene) Activate() {
	b := m.buttons[m.selected]
	logger().Debug("menu activate", "button", b.label)
	b.action()
}

func (m *MenuScene) buttonHeight() float64 {
	sc := m.app.Scaler()
	return sc.FontSize(SizeLG) + sc.Spacing(SizeMD)
}

// ButtonRect returns the clickable area of button i.
func (m *MenuScene) ButtonRect(i int) Rect {
	w, h := m.app.Size()
	bh := m.buttonHeight()
	top := Viewport{Width: w, Height: h}.CenteredPosition(menuButtonWidth, float64(len(m.buttons))*bh)
	y := top.Y + float64(i)*bh
	return Rect{X: top.X, Y: y - bh/2, Width: menuButtonWidth, Height: bh}
}

// --- SceneBehavior ---

func (m *MenuScene) OnEnter(data any) {
	logger().Info("entering scene", "scene", MenuSceneName)
}

func (m *MenuScene) OnExit() {
	logger().Info("leaving scene", "scene", MenuSceneName)
}

func (m *MenuScene) OnUpdate(float64) {}

func (m *MenuScene) OnDraw(s Surface) {
	w, h := m.app.Size()
	sc := m.app.Scaler()
	s.Fill(RGB8(10, 15, 25))

	title := sc.FontSize(SizeXXL)
	s.Text("MENÚ", w/2, h/4-title/2, title, TextAlignCenter, ColorWhite)

	size := sc.FontSize(SizeLG)
	for i, b := range m.buttons {
		r := m.ButtonRect(i)
		col := ColorWhite
		if i == m.selected {
			s.FillRect(r, RGB8(255, 255, 100))
			col = ColorBlack
		}
		s.Text(b.label, w/2, r.Y+(r.Height-size)/2, size, TextAlignCenter, col)
	}
}

func (m *MenuScene) OnReset() {
	m.selected = 0
}

func (m *MenuScene) OnResize(float64, float64) {}

// --- GestureHandler ---

func (m *MenuScene) OnKeyPress(ev KeyEvent) {
	switch ev.Name {
	case "arrowup", "w":
		m.selected = max(0, m.selected-1)
	case "arrowdown", "s":
		m.selected = min(len(m.buttons)-1, m.selected+1)
	case "enter", "numpadenter":
		m.Activate()
	}
}

func (m *MenuScene) OnSingleTap(x, y float64) {
	for i := range m.buttons {
		if m.ButtonRect(i).Contains(x, y) {
			m.selected = i
			m.Activate()
			return
		}
	}
}

var (
	_ SceneBehavior  = (*MenuScene)(nil)
	_ GestureHandler = (*MenuScene)(nil)
)
