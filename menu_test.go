package faros

import (
	"reflect"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func openMenu(t *testing.T) (*App, *MenuScene) {
	t.Helper()
	a := newTestApp(testConfig(), desktopSignals())
	if !a.ToggleMenu() {
		t.Fatal("menu refused")
	}
	stepFor(a, 600*time.Millisecond)
	if a.Scenes().Current().Name() != MenuSceneName {
		t.Fatalf("current = %q", a.Scenes().Current().Name())
	}
	return a, a.Menu()
}

func TestMenuLabels(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	want := []string{"Jugar", "Opciones", "Acerca de"}
	if got := a.Menu().Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels = %q, want %q", got, want)
	}
}

func TestMenuButtonRects(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	m := a.Menu()
	want := Rect{X: 412, Y: 296, Width: 200, Height: 44}
	if got := m.ButtonRect(0); got != want {
		t.Errorf("ButtonRect(0) = %+v, want %+v", got, want)
	}
	if got := m.ButtonRect(2).Y; got != 384 {
		t.Errorf("ButtonRect(2).Y = %v, want 384", got)
	}
}

func TestMenuKeyboard(t *testing.T) {
	_, m := openMenu(t)
	keys := []struct {
		key  ebiten.Key
		want int
	}{
		{ebiten.KeyArrowDown, 1},
		{ebiten.KeyS, 2},
		{ebiten.KeyArrowDown, 2},
		{ebiten.KeyArrowUp, 1},
		{ebiten.KeyW, 0},
		{ebiten.KeyW, 0},
	}
	for i, k := range keys {
		m.OnKeyPress(NewKeyEvent(k.key))
		if m.Selected() != k.want {
			t.Errorf("step %d: Selected = %d, want %d", i, m.Selected(), k.want)
		}
	}
}

func TestMenuEnterPlays(t *testing.T) {
	a, _ := openMenu(t)
	sink := &eventLog{}
	a.SetEventSink(sink)
	a.Input().InjectKey(ebiten.KeyEnter)
	stepFor(a, 600*time.Millisecond)
	if a.Scenes().Current().Name() != MainSceneName {
		t.Errorf("current = %q, want main", a.Scenes().Current().Name())
	}
	changes := sink.ofType(EventSceneChange)
	if len(changes) != 1 || changes[0].Name != MainSceneName || changes[0].Scene != MenuSceneName {
		t.Errorf("scene change events = %+v", changes)
	}
}

func TestMenuTapSelects(t *testing.T) {
	a, m := openMenu(t)
	c := m.ButtonRect(1).Center()
	a.Input().InjectTap(c.X, c.Y)
	stepFor(a, 2*frame)
	if m.Selected() != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected())
	}
	if a.Scenes().Current().Name() != MenuSceneName {
		t.Error("Opciones left the menu")
	}

	a.Reset()
	if m.Selected() != 0 {
		t.Error("Reset kept the selection")
	}
}

func TestMenuDraw(t *testing.T) {
	a, m := openMenu(t)
	m.OnKeyPress(NewKeyEvent(ebiten.KeyArrowDown))
	s := newRecordSurface(1024, 768)
	a.DrawTo(s)
	if !s.hasText("MENÚ") || !s.hasText("Acerca de") {
		t.Errorf("texts = %q", s.texts())
	}
	var highlights []Rect
	for _, op := range s.ops {
		if op.kind == "rect" {
			highlights = append(highlights, op.rect)
		}
	}
	if len(highlights) != 1 || highlights[0] != m.ButtonRect(1) {
		t.Errorf("highlights = %+v", highlights)
	}
}
