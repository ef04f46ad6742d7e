package faros

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 face source. Faces are created per size on
// demand and cached.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont parses raw TTF/OTF data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("faros: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// DefaultFont loads the embedded Go Regular font.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF)
}

// Face returns the face for size.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// LineHeight returns the distance between baselines at size.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the width and height of s rendered at size.
func (f *Font) Measure(s string, size float64) (w, h float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}

// Measurer reports rendered text width. Surface satisfies it.
type Measurer interface {
	MeasureText(s string, size float64) (w, h float64)
}

// WrapText breaks s into lines no wider than maxWidth at size. Words longer
// than maxWidth get a line of their own.
func WrapText(m Measurer, s string, size, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if cw, _ := m.MeasureText(candidate, size); cw > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
