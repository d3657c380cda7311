// Package anim implements the counter animation engine: a fixed registry
// of drawing styles cycled by the scheduler, each style a timed and
// resettable routine over the panel framebuffer.
package anim

import "lumen/hal"

// Style identifies one of the fixed animation styles.
type Style uint8

const (
	StyleSimpleCounter Style = iota
	StyleRandomPosition
	StyleColorTransition
	StyleBouncingCounter

	StyleCount
)

func (s Style) String() string {
	switch s {
	case StyleSimpleCounter:
		return "simple-counter"
	case StyleRandomPosition:
		return "random-position"
	case StyleColorTransition:
		return "color-transition"
	case StyleBouncingCounter:
		return "bouncing-counter"
	default:
		return "invalid"
	}
}

// Rand supplies the randomness for colors, positions and velocities.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// Animation is one drawing style. Draw reports whether the panel needs a
// refresh after the call.
type Animation interface {
	Draw(counter uint32) bool
	Reset()
	IsComplete() bool
	SetDuration(ms int64)
}

// base carries the timing state every style shares.
type base struct {
	clock     hal.Clock
	startTime int64
	duration  int64
	firstDraw bool
	done      bool
}

func newBase(clock hal.Clock, durationMS int64) base {
	return base{clock: clock, startTime: clock.Millis(), duration: durationMS, firstDraw: true}
}

// IsComplete latches: once the duration has elapsed it stays true until Reset.
func (b *base) IsComplete() bool {
	if b.done {
		return true
	}
	if b.clock.Millis()-b.startTime >= b.duration {
		b.done = true
	}
	return b.done
}

func (b *base) Reset() {
	b.startTime = b.clock.Millis()
	b.firstDraw = true
	b.done = false
}

func (b *base) SetDuration(ms int64) {
	b.duration = ms
}

func (b *base) elapsed() int64 {
	return b.clock.Millis() - b.startTime
}

// Options fixes the per-style configuration at engine initialization.
type Options struct {
	Enabled           [StyleCount]bool
	DurationMS        [StyleCount]int64
	ColorTransitionMS int64
}

// DefaultOptions mirrors the shipped panel configuration.
func DefaultOptions() Options {
	return Options{
		Enabled: [StyleCount]bool{
			StyleSimpleCounter:   false,
			StyleRandomPosition:  true,
			StyleColorTransition: true,
			StyleBouncingCounter: true,
		},
		DurationMS: [StyleCount]int64{
			StyleSimpleCounter:   10_000,
			StyleRandomPosition:  10_000,
			StyleColorTransition: 15_000,
			StyleBouncingCounter: 60_000,
		},
		ColorTransitionMS: 15_000,
	}
}
