package anim

import "lumen/hal"

// colorTransition redraws the centered counter every tick while linearly
// interpolating between a start and a target color.
type colorTransition struct {
	base
	canvas       *Canvas
	rnd          Rand
	transitionMS int64
	startColor   uint16
	targetColor  uint16
}

func newColorTransition(canvas *Canvas, clock hal.Clock, rnd Rand, durationMS, transitionMS int64) *colorTransition {
	t := &colorTransition{
		base:         newBase(clock, durationMS),
		canvas:       canvas,
		rnd:          rnd,
		transitionMS: transitionMS,
		startColor:   randomColor(rnd),
		targetColor:  randomColor(rnd),
	}
	return t
}

// Reset chains the palette: the old target becomes the new start.
func (t *colorTransition) Reset() {
	t.base.Reset()
	t.startColor = t.targetColor
	t.targetColor = randomColor(t.rnd)
}

func (t *colorTransition) Draw(counter uint32) bool {
	t.firstDraw = false

	x, y := centerCounter(t.canvas)
	t.canvas.DrawCounter(x, y, counter, t.currentColor())
	return true
}

func (t *colorTransition) currentColor() uint16 {
	effective := t.duration
	if t.transitionMS > 0 && t.transitionMS < t.duration {
		effective = t.transitionMS
	}
	if effective <= 0 {
		return t.targetColor
	}

	elapsed := t.elapsed()
	if elapsed > effective {
		elapsed = effective
	}
	return lerp565(t.startColor, t.targetColor, float32(elapsed)/float32(effective))
}
