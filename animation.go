package faros

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenValue and call Update(dt) each frame; values are written straight
// into the target fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	dur    float32
	Done   bool

	// OnComplete, if set, runs once on the frame the group finishes.
	OnComplete func()
}

// Update advances all tweens by dt seconds and writes their values.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnComplete != nil {
		fn := g.OnComplete
		g.OnComplete = nil
		fn()
	}
}

// Finish jumps every field to its end value and completes the group.
func (g *TweenGroup) Finish() {
	if g == nil || g.Done {
		return
	}
	g.Update(g.dur)
}

// TweenValue animates *field from its current value to `to`.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, dur: duration}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}
