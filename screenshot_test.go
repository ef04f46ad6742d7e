package faros

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"menu", "menu"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"step 1/2", "step_1_2"},
		{"v1.0-final", "v1.0-final"},
		{"faro ñ", "faro__"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	path, err := saveScreenshot(dir, "20260101_120000", "a b", img)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "20260101_120000_a_b.png" {
		t.Errorf("path = %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("decoded %dx%d", cfg.Width, cfg.Height)
	}
}

func TestScreenshotQueue(t *testing.T) {
	a := newTestApp(testConfig(), desktopSignals())
	a.Screenshot("uno")
	a.Screenshot("dos")
	if a.PendingScreenshots() != 2 {
		t.Errorf("pending = %d, want 2", a.PendingScreenshots())
	}
}
