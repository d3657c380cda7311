package sched

import (
	"fmt"

	"lumen/anim"
	"lumen/fetch"
	"lumen/hal"
	"lumen/wifi"
)

// Default loop timing.
const (
	DefaultTickBudgetMS    = 100
	DefaultFetchIntervalMS = 10_000
)

// Status indicator colors (bottom-left pixels).
var (
	colorOK   = hal.RGB565(0, 255, 0)
	colorFail = hal.RGB565(255, 0, 0)
)

// Servicer is a component given one cooperative slice per tick.
type Servicer interface {
	Service()
}

// Loop is the scheduler: one thread of control, fixed step order, fixed
// tick budget. All shared-state mutation happens inside Tick.
type Loop struct {
	Log     hal.Logger
	Clock   hal.Clock
	Updater hal.Updater
	Wifi    *wifi.Manager
	Fetch   *fetch.Machine
	Engine  *anim.Engine
	Canvas  *anim.Canvas
	Console Servicer
	State   *State

	TickBudgetMS    int64
	FetchIntervalMS int64

	lastFetch  int64
	lastStatus [2]uint16
	statusSet  bool
}

// Tick runs one iteration of the control loop and returns its duration in
// milliseconds.
func (l *Loop) Tick() int64 {
	start := l.Clock.Millis()

	l.Updater.Poll()

	if l.Console != nil {
		l.Console.Service()
	}

	if l.Wifi.PortalActive() {
		// The portal is serviced exclusively; network maintenance and
		// fetching stay paused until it resolves.
		l.Wifi.ServicePortal()
	} else {
		l.Wifi.Maintain()

		if l.fetchDue(start) && l.Fetch.State() == fetch.Idle {
			l.lastFetch = start
			l.Fetch.Start(l.Wifi.Connected())
		}

		l.Fetch.Poll()
		if l.Fetch.State() == fetch.Complete {
			if value, ok := l.Fetch.Process(); ok {
				l.State.Counter = value
			}
		}
		l.State.LastFetchOK = l.Fetch.LastOK()
	}

	refresh := l.Engine.Update(l.State.Counter)
	if l.drawStatus() {
		refresh = true
	}
	if refresh {
		if err := l.Canvas.Present(); err != nil {
			l.Log.WriteLineString("sched: present: " + err.Error())
		}
	}

	return l.Clock.Millis() - start
}

// Step runs a tick when the budget has elapsed since the previous one.
// The host runners call it at their own cadence.
func (l *Loop) Step() {
	budget := l.budget()
	elapsed := l.Tick()
	if elapsed > budget {
		l.overrun(elapsed, budget)
	}
}

// Run loops forever, sleeping out the remainder of each tick budget.
func (l *Loop) Run() {
	for {
		budget := l.budget()
		elapsed := l.Tick()
		if elapsed > budget {
			l.overrun(elapsed, budget)
			continue
		}
		l.Clock.SleepMillis(budget - elapsed)
	}
}

func (l *Loop) budget() int64 {
	if l.TickBudgetMS > 0 {
		return l.TickBudgetMS
	}
	return DefaultTickBudgetMS
}

func (l *Loop) fetchDue(now int64) bool {
	interval := l.FetchIntervalMS
	if interval <= 0 {
		interval = DefaultFetchIntervalMS
	}
	return now-l.lastFetch >= interval
}

func (l *Loop) overrun(elapsed, budget int64) {
	l.Log.WriteLineString(fmt.Sprintf("sched: tick overran budget (%d ms > %d ms)", elapsed, budget))
}

// drawStatus writes the two indicator pixels and reports whether they
// changed since the last tick.
func (l *Loop) drawStatus() bool {
	l.State.Connected = l.Wifi.Connected()

	wifiPix := colorFail
	if l.State.Connected {
		wifiPix = colorOK
	}
	fetchPix := colorFail
	if l.State.LastFetchOK {
		fetchPix = colorOK
	}

	y := l.Canvas.Height() - 1
	l.Canvas.SetPixel(0, y, wifiPix)
	l.Canvas.SetPixel(1, y, fetchPix)

	changed := !l.statusSet || l.lastStatus != [2]uint16{wifiPix, fetchPix}
	l.lastStatus = [2]uint16{wifiPix, fetchPix}
	l.statusSet = true
	return changed
}
