// Package app wires the HAL, configuration and components into the
// scheduler loop.
package app

import (
	"math/rand"
	"time"

	"lumen/anim"
	"lumen/config"
	"lumen/console"
	"lumen/fetch"
	"lumen/hal"
	"lumen/sched"
	"lumen/wifi"
)

type Options struct {
	ConfigPath string
}

// New builds the system with default options and returns the host step
// function.
func New(h hal.HAL) func() error {
	return NewWithOptions(h, Options{})
}

// NewWithOptions builds the system and returns a function stepping one
// scheduler slice, for the host runners.
func NewWithOptions(h hal.HAL, opts Options) func() error {
	loop := newLoop(h, loadConfig(h, opts))
	loop.Wifi.Connect()
	return func() error {
		loop.Step()
		return nil
	}
}

// Run builds the system and blocks forever (firmware entrypoint).
func Run(h hal.HAL) {
	loop := newLoop(h, config.Default())
	loop.Wifi.Connect()
	loop.Run()
}

func loadConfig(h hal.HAL, opts Options) config.Config {
	if opts.ConfigPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		h.Logger().WriteLineString("app: " + err.Error() + ", using defaults")
	}
	return cfg
}

func newLoop(h hal.HAL, cfg config.Config) *sched.Loop {
	log := h.Logger()
	clock := h.Clock()

	canvas := anim.NewCanvas(h.Display().Framebuffer())
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := anim.NewEngine(canvas, clock, rnd, log, animOptions(cfg.Animations))

	portal := wifi.NewPortal(h.Link(), clock, log, h.PortalNet(), wifi.PortalConfig{
		SSID:      cfg.Wifi.Portal.SSID,
		Secret:    cfg.Wifi.Portal.Password,
		IP:        cfg.Wifi.Portal.IP,
		TimeoutMS: cfg.Wifi.Portal.TimeoutMS,
	})
	manager := wifi.NewManager(h.Link(), h.Store(), clock, log, portal)
	machine := fetch.NewMachine(h.Remote(), clock, log, cfg.Fetch.URL)

	state := &sched.State{}
	return &sched.Loop{
		Log:             log,
		Clock:           clock,
		Updater:         h.Updater(),
		Wifi:            manager,
		Fetch:           machine,
		Engine:          engine,
		Canvas:          canvas,
		Console:         console.New(h.Serial(), log, engine, state, manager),
		State:           state,
		TickBudgetMS:    cfg.Sched.TickBudgetMS,
		FetchIntervalMS: cfg.Fetch.IntervalMS,
	}
}

func animOptions(c config.AnimationsConfig) anim.Options {
	return anim.Options{
		Enabled: [anim.StyleCount]bool{
			anim.StyleSimpleCounter:   c.SimpleCounter.Enabled,
			anim.StyleRandomPosition:  c.RandomPosition.Enabled,
			anim.StyleColorTransition: c.ColorTransition.Enabled,
			anim.StyleBouncingCounter: c.BouncingCounter.Enabled,
		},
		DurationMS: [anim.StyleCount]int64{
			anim.StyleSimpleCounter:   c.SimpleCounter.DurationMS,
			anim.StyleRandomPosition:  c.RandomPosition.DurationMS,
			anim.StyleColorTransition: c.ColorTransition.DurationMS,
			anim.StyleBouncingCounter: c.BouncingCounter.DurationMS,
		},
		ColorTransitionMS: c.ColorTransitionMS,
	}
}
