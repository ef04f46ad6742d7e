package faros

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(newDefaultLogger(slog.LevelInfo))
}

func newDefaultLogger(level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("pkg", "faros")
}

// SetLogger replaces the package logger. A nil logger restores the default
// stderr text logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDefaultLogger(slog.LevelInfo)
	}
	pkgLogger.Store(l)
}

// SetDebug switches the default stderr logger between info and debug level.
// It replaces any logger installed with SetLogger.
func SetDebug(on bool) {
	level := slog.LevelInfo
	if on {
		level = slog.LevelDebug
	}
	pkgLogger.Store(newDefaultLogger(level))
}

func logger() *slog.Logger {
	return pkgLogger.Load()
}

// drawCollisionDebug outlines every collision box the lighthouse scene knows
// about: marker bounds in red, their inflated gate in orange, the avatar in green.
func drawCollisionDebug(s Surface, avatar *Avatar, markers []*Marker) {
	red := Color{1, 0, 0, 0.8}
	orange := Color{1, 0.6, 0, 0.6}
	green := Color{0, 1, 0, 0.8}
	for _, m := range markers {
		for _, b := range m.HitBoxes() {
			s.StrokeRect(b, 1, red)
			if avatar != nil {
				s.StrokeRect(b.Inflate(avatar.Margin), 1, orange)
			}
		}
	}
	if avatar != nil {
		s.StrokeRect(avatar.Bounds(), 1, green)
		s.StrokeRect(avatar.Bounds().Inflate(avatar.Margin), 1, orange)
	}
}
