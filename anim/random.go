package anim

import "lumen/hal"

// randomPosition draws the counter at a position picked lazily on the
// first draw after each reset, bounded so the glyph block stays on-panel.
type randomPosition struct {
	base
	canvas *Canvas
	rnd    Rand
	color  uint16
	posX   int
	posY   int
}

func newRandomPosition(canvas *Canvas, clock hal.Clock, rnd Rand, durationMS int64) *randomPosition {
	r := &randomPosition{
		base:   newBase(clock, durationMS),
		canvas: canvas,
		rnd:    rnd,
		color:  randomColor(rnd),
	}
	return r
}

func (r *randomPosition) Reset() {
	r.base.Reset()
	r.color = randomColor(r.rnd)
	// The new position is picked on the next draw.
}

func (r *randomPosition) Draw(counter uint32) bool {
	if !r.firstDraw {
		return false
	}
	r.firstDraw = false

	r.posX = boundedRandom(r.rnd, r.canvas.Width()-CounterWidth)
	r.posY = boundedRandom(r.rnd, r.canvas.Height()-CounterHeight)
	r.canvas.DrawCounter(r.posX, r.posY, counter, r.color)
	return true
}

// boundedRandom picks from [0, max]; a non-positive max pins to 0.
func boundedRandom(rnd Rand, max int) int {
	if max <= 0 {
		return 0
	}
	return rnd.Intn(max + 1)
}
