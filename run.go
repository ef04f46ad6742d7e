package faros

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run builds the app for cfg on the current device, opens a window and runs
// the game loop until the window closes.
func Run(cfg Config) error {
	app, err := NewApp(cfg, CurrentSignals())
	if err != nil {
		return err
	}
	defer app.Close()

	if cfg.TestScript != "" {
		runner, err := LoadTestScriptFile(cfg.TestScript)
		if err != nil {
			return err
		}
		app.SetTestRunner(runner)
	}

	tps := cfg.TPS
	if tps == 0 {
		tps = app.Profile().RecommendedFPS
	}
	w, h := app.Size()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
