package anim

import "lumen/hal"

// simpleCounter draws the counter once, centered, and then stays static
// for the rest of its cycle.
type simpleCounter struct {
	base
	canvas *Canvas
	rnd    Rand
	color  uint16
}

func newSimpleCounter(canvas *Canvas, clock hal.Clock, rnd Rand, durationMS int64) *simpleCounter {
	s := &simpleCounter{
		base:   newBase(clock, durationMS),
		canvas: canvas,
		rnd:    rnd,
		color:  randomColor(rnd),
	}
	return s
}

func (s *simpleCounter) Reset() {
	s.base.Reset()
	s.color = randomColor(s.rnd)
}

func (s *simpleCounter) Draw(counter uint32) bool {
	if !s.firstDraw {
		return false
	}
	s.firstDraw = false

	x, y := centerCounter(s.canvas)
	s.canvas.DrawCounter(x, y, counter, s.color)
	return true
}
