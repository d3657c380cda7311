package anim

import (
	"fmt"

	"lumen/hal"
)

// Engine owns one animation instance per enabled style and cycles among
// them as each completes its configured duration.
type Engine struct {
	canvas *Canvas
	clock  hal.Clock
	rnd    Rand
	log    hal.Logger

	variants [StyleCount]Animation
	enabled  [StyleCount]bool
	current  Style
	active   bool
}

// NewEngine instantiates the enabled styles and arms the first one.
// With no styles enabled the engine stays inert and only logs.
func NewEngine(canvas *Canvas, clock hal.Clock, rnd Rand, log hal.Logger, opts Options) *Engine {
	e := &Engine{
		canvas:  canvas,
		clock:   clock,
		rnd:     rnd,
		log:     log,
		enabled: opts.Enabled,
	}

	if opts.Enabled[StyleSimpleCounter] {
		e.variants[StyleSimpleCounter] = newSimpleCounter(canvas, clock, rnd, opts.DurationMS[StyleSimpleCounter])
	}
	if opts.Enabled[StyleRandomPosition] {
		e.variants[StyleRandomPosition] = newRandomPosition(canvas, clock, rnd, opts.DurationMS[StyleRandomPosition])
	}
	if opts.Enabled[StyleColorTransition] {
		e.variants[StyleColorTransition] = newColorTransition(canvas, clock, rnd, opts.DurationMS[StyleColorTransition], opts.ColorTransitionMS)
	}
	if opts.Enabled[StyleBouncingCounter] {
		e.variants[StyleBouncingCounter] = newBouncingCounter(canvas, clock, rnd, opts.DurationMS[StyleBouncingCounter])
	}

	for s := Style(0); s < StyleCount; s++ {
		if e.enabled[s] && e.variants[s] != nil {
			e.current = s
			e.active = true
			break
		}
	}

	if !e.active {
		log.WriteLineString("anim: no styles enabled")
	} else {
		log.WriteLineString("anim: starting with " + e.current.String())
	}
	return e
}

// Update advances the active style and reports whether the panel needs a
// refresh. A completed style hands over to the next enabled one.
func (e *Engine) Update(counter uint32) bool {
	if !e.active {
		return false
	}

	v := e.variants[e.current]
	if v == nil {
		e.log.WriteLineString("anim: style " + e.current.String() + " not initialized")
		return false
	}

	if v.IsComplete() {
		e.next()
		return true
	}
	return v.Draw(counter)
}

// SetStyle switches to the given style. Out-of-range, disabled or
// uninitialized styles are rejected with a log line and no state change.
func (e *Engine) SetStyle(s Style) {
	if s >= StyleCount {
		e.log.WriteLineString(fmt.Sprintf("anim: invalid style %d", s))
		return
	}
	if !e.enabled[s] {
		e.log.WriteLineString("anim: style " + s.String() + " is disabled")
		return
	}
	if e.variants[s] == nil {
		e.log.WriteLineString("anim: style " + s.String() + " not initialized")
		return
	}

	e.current = s
	e.canvas.Clear()
	e.variants[s].Reset()
	e.log.WriteLineString("anim: switched to " + s.String())
}

// SetDuration updates a style's duration without resetting its elapsed time.
// Rejection rules match SetStyle.
func (e *Engine) SetDuration(s Style, ms int64) {
	if s >= StyleCount {
		e.log.WriteLineString(fmt.Sprintf("anim: invalid style %d", s))
		return
	}
	if !e.enabled[s] {
		e.log.WriteLineString("anim: style " + s.String() + " is disabled")
		return
	}
	if e.variants[s] == nil {
		e.log.WriteLineString("anim: style " + s.String() + " not initialized")
		return
	}

	e.variants[s].SetDuration(ms)
	e.log.WriteLineString(fmt.Sprintf("anim: %s duration set to %d ms", s, ms))
}

// Current returns the active style. Meaningful only when Active.
func (e *Engine) Current() Style { return e.current }

// Active reports whether any style is enabled.
func (e *Engine) Active() bool { return e.active }

func (e *Engine) next() {
	n := e.nextEnabled(e.current)
	if n == e.current {
		e.canvas.Clear()
		e.variants[e.current].Reset()
		e.log.WriteLineString("anim: no other enabled styles, resetting " + e.current.String())
		return
	}
	e.SetStyle(n)
}

// nextEnabled walks the style ring once, skipping disabled and
// uninitialized entries. It falls back to the start style.
func (e *Engine) nextEnabled(from Style) Style {
	s := from
	for i := 0; i < int(StyleCount); i++ {
		s = (s + 1) % StyleCount
		if e.enabled[s] && e.variants[s] != nil {
			return s
		}
	}
	return from
}
