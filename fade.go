package stamp

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Opacity of a widget while it is being dragged or resized.
const (
	activeOpacity = 0.8
	restOpacity   = 1.0
	fadeDuration  = 0.08 // seconds
)

// fade animates a widget's opacity toward a target. There is no global
// animation manager; the host calls update once per frame.
type fade struct {
	tween  *gween.Tween
	value  float64
	target float64
}

func newFade() fade {
	return fade{value: restOpacity, target: restOpacity}
}

// retarget starts a tween from the current value when the target changes.
func (f *fade) retarget(to float64) {
	if to == f.target {
		return
	}
	f.target = to
	f.tween = gween.New(float32(f.value), float32(to), fadeDuration, ease.OutQuad)
}

// update advances the tween by dt seconds.
func (f *fade) update(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.value = float64(v)
	if done {
		f.tween = nil
		f.value = f.target
	}
}
