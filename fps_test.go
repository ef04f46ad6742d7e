package faros

import (
	"reflect"
	"testing"
)

func newStubPanel(p DeviceProfile) (*InfoPanel, *int) {
	reads := 0
	panel := NewInfoPanel(p, func() (float64, float64) { return 1024, 768 })
	panel.fps = func() float64 { reads++; return 59.5 }
	panel.tps = func() float64 { return 60 }
	return panel, &reads
}

func TestInfoPanelLines(t *testing.T) {
	p, _ := newStubPanel(ResolveProfile(desktopSignals()))
	p.Toggle()
	want := []string{
		"FPS: 59.5",
		"TPS: 60.0",
		"Dispositivo: Escritorio (high)",
		"Resolución: 1024 x 768",
		"Pixel Density: 1.0",
		"Táctil: No",
	}
	if got := p.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %q, want %q", got, want)
	}

	phone, _ := newStubPanel(ResolveProfile(phoneSignals()))
	phone.Toggle()
	lines := phone.Lines()
	if lines[2] != "Dispositivo: Móvil (low)" || lines[5] != "Táctil: Sí" {
		t.Errorf("phone lines = %q", lines)
	}
}

func TestInfoPanelRefreshCadence(t *testing.T) {
	p, reads := newStubPanel(ResolveProfile(desktopSignals()))
	p.Update(1)
	if *reads != 0 {
		t.Fatal("hidden panel refreshed")
	}
	p.Toggle()
	if *reads != 1 {
		t.Fatalf("reads after Toggle = %d, want 1", *reads)
	}
	p.Update(0.4)
	if *reads != 1 {
		t.Error("refreshed before half a second")
	}
	p.Update(0.1)
	if *reads != 2 {
		t.Errorf("reads = %d, want 2", *reads)
	}
}

func TestInfoPanelDraw(t *testing.T) {
	p, _ := newStubPanel(ResolveProfile(desktopSignals()))
	s := newRecordSurface(800, 600)
	p.Draw(s)
	if len(s.ops) != 0 {
		t.Fatal("hidden panel drew")
	}
	p.Toggle()
	p.Draw(s)
	if s.count("rect") != 1 || s.count("text") != 6 {
		t.Errorf("ops: rect %d text %d", s.count("rect"), s.count("text"))
	}
}
