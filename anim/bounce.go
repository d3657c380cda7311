package anim

import "lumen/hal"

// bouncingCounter integrates the counter position by a per-axis velocity
// each tick, bouncing off the panel edges and changing color on every
// bounce.
type bouncingCounter struct {
	base
	canvas *Canvas
	rnd    Rand
	color  uint16
	posX   int
	posY   int
	dirX   int
	dirY   int
	speedX int
	speedY int
}

func newBouncingCounter(canvas *Canvas, clock hal.Clock, rnd Rand, durationMS int64) *bouncingCounter {
	b := &bouncingCounter{
		base:   newBase(clock, durationMS),
		canvas: canvas,
		rnd:    rnd,
	}
	b.rearm()
	return b
}

func (b *bouncingCounter) Reset() {
	b.base.Reset()
	b.rearm()
}

func (b *bouncingCounter) rearm() {
	b.color = randomColor(b.rnd)
	b.posX = boundedRandom(b.rnd, b.canvas.Width()-CounterWidth)
	b.posY = boundedRandom(b.rnd, b.canvas.Height()-CounterHeight)

	b.dirX = randomSign(b.rnd)
	b.dirY = randomSign(b.rnd)
	b.speedX = 1 + b.rnd.Intn(2)
	b.speedY = 1 + b.rnd.Intn(2)
}

func (b *bouncingCounter) Draw(counter uint32) bool {
	b.firstDraw = false
	b.canvas.Clear()

	maxX := b.canvas.Width() - CounterWidth
	maxY := b.canvas.Height() - CounterHeight

	b.posX += b.dirX * b.speedX
	b.posY += b.dirY * b.speedY

	// On a crossing: clamp to the boundary, flip that axis, recolor.
	if b.posX <= 0 {
		b.posX = 0
		b.dirX = 1
		b.color = randomColor(b.rnd)
	} else if b.posX >= maxX {
		b.posX = maxX
		b.dirX = -1
		b.color = randomColor(b.rnd)
	}

	if b.posY <= 0 {
		b.posY = 0
		b.dirY = 1
		b.color = randomColor(b.rnd)
	} else if b.posY >= maxY {
		b.posY = maxY
		b.dirY = -1
		b.color = randomColor(b.rnd)
	}

	b.canvas.DrawCounter(b.posX, b.posY, counter, b.color)
	return true
}

func randomSign(rnd Rand) int {
	if rnd.Intn(2) == 0 {
		return -1
	}
	return 1
}
