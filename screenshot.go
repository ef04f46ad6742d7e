package faros

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The resulting PNG is written to the configured
// ScreenshotDir with a timestamped filename. Safe to call from Update or Draw.
func (a *App) Screenshot(label string) {
	a.screenshots = append(a.screenshots, label)
}

// PendingScreenshots returns the number of queued screenshots.
func (a *App) PendingScreenshots() int { return len(a.screenshots) }

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Draw.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshots) == 0 {
		return
	}
	defer func() { a.screenshots = a.screenshots[:0] }()

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := unpremultiply(pixels, w, h)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.screenshots {
		path, err := saveScreenshot(a.cfg.ScreenshotDir, stamp, label, img)
		if err != nil {
			logger().Error("screenshot", "err", err)
			continue
		}
		logger().Info("screenshot saved", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// saveScreenshot writes img to dir as <stamp>_<label>.png and returns the
// path.
func saveScreenshot(dir, stamp, label string, img *image.NRGBA) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	return path, writePNG(path, img)
}

// writePNG encodes img to path. Screenshots favour encoding speed over size.
func writePNG(path string, img *image.NRGBA) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return w.Flush()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', turns everything
// else into '_', and names blank labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
