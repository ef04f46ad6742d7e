package faros

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// infoRefresh is how often the panel re-reads its counters, in seconds.
const infoRefresh = 0.5

// InfoPanel is the device debug overlay: frame rates, device class,
// resolution, pixel density and touch support. Its text is refreshed
// every half second.
type InfoPanel struct {
	Visible bool

	profile DeviceProfile
	fps     func() float64
	tps     func() float64
	size    func() (float64, float64)

	since float64
	lines []string
}

// NewInfoPanel creates a hidden panel for profile. size reports the current
// canvas size.
func NewInfoPanel(profile DeviceProfile, size func() (float64, float64)) *InfoPanel {
	p := &InfoPanel{
		profile: profile,
		fps:     ebiten.ActualFPS,
		tps:     ebiten.ActualTPS,
		size:    size,
	}
	p.refresh()
	return p
}

// Toggle shows or hides the panel.
func (p *InfoPanel) Toggle() {
	p.Visible = !p.Visible
	if p.Visible {
		p.refresh()
	}
}

// Lines returns the text currently shown.
func (p *InfoPanel) Lines() []string { return p.lines }

// Update re-reads the counters every half second. dt is in seconds.
func (p *InfoPanel) Update(dt float64) {
	if !p.Visible {
		return
	}
	p.since += dt
	if p.since < infoRefresh {
		return
	}
	p.since = 0
	p.refresh()
}

func (p *InfoPanel) refresh() {
	w, h := p.size()
	device := "Escritorio"
	if p.profile.IsMobile {
		device = "Móvil"
	}
	touch := "No"
	if p.profile.HasTouch {
		touch = "Sí"
	}
	p.lines = append(p.lines[:0],
		fmt.Sprintf("FPS: %.1f", p.fps()),
		fmt.Sprintf("TPS: %.1f", p.tps()),
		fmt.Sprintf("Dispositivo: %s (%s)", device, p.profile.Tier),
		fmt.Sprintf("Resolución: %.0f x %.0f", w, h),
		fmt.Sprintf("Pixel Density: %.1f", p.profile.PixelRatio),
		fmt.Sprintf("Táctil: %s", touch),
	)
}

// Draw prints the lines in the top-left corner on a translucent backing.
func (p *InfoPanel) Draw(s Surface) {
	if !p.Visible {
		return
	}
	const size, lineH = 12.0, 15.0
	s.FillRect(Rect{X: 5, Y: 5, Width: 200, Height: float64(len(p.lines))*lineH + 10}, Color{0, 0, 0, 0.5})
	yellow := Color{1, 1, 0, 1}
	for i, line := range p.lines {
		s.Text(line, 10, 10+float64(i)*lineH, size, TextAlignLeft, yellow)
	}
}

var (
	_ Entity  = (*InfoPanel)(nil)
	_ Updater = (*InfoPanel)(nil)
)
