// Package console implements the serial command console used to inspect
// and steer the panel at runtime.
package console

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/google/shlex"

	"lumen/anim"
	"lumen/hal"
	"lumen/sched"
	"lumen/wifi"
)

// Console reads commands from the serial line on a goroutine and executes
// them inside the scheduler tick via Service.
type Console struct {
	serial hal.Serial
	log    hal.Logger
	engine *anim.Engine
	state  *sched.State
	wifi   *wifi.Manager

	lines chan string
}

func New(serial hal.Serial, log hal.Logger, engine *anim.Engine, state *sched.State, w *wifi.Manager) *Console {
	c := &Console{
		serial: serial,
		log:    log,
		engine: engine,
		state:  state,
		wifi:   w,
		lines:  make(chan string, 8),
	}
	go c.readLines()
	return c
}

func (c *Console) readLines() {
	sc := bufio.NewScanner(c.serial)
	for sc.Scan() {
		select {
		case c.lines <- sc.Text():
		default:
			// Drop input faster than one command per tick.
		}
	}
}

// Service executes at most one queued command per tick.
func (c *Console) Service() {
	select {
	case line := <-c.lines:
		c.exec(line)
	default:
	}
}

func (c *Console) exec(line string) {
	args, err := shlex.Split(line)
	if err != nil {
		c.reply("parse error: " + err.Error())
		return
	}
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "help":
		c.reply("commands: status | counter | style <0-3> | duration <0-3> <ms> | help")
	case "status":
		c.reply(fmt.Sprintf("wifi=%s fetch-ok=%v counter=%d style=%s",
			c.wifi.Status(), c.state.LastFetchOK, c.state.Counter, c.engine.Current()))
	case "counter":
		c.reply(strconv.FormatUint(uint64(c.state.Counter), 10))
	case "style":
		if len(args) != 2 {
			c.reply("usage: style <0-3>")
			return
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			c.reply("usage: style <0-3>")
			return
		}
		c.engine.SetStyle(anim.Style(n))
	case "duration":
		if len(args) != 3 {
			c.reply("usage: duration <0-3> <ms>")
			return
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			c.reply("usage: duration <0-3> <ms>")
			return
		}
		ms, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil || ms <= 0 {
			c.reply("usage: duration <0-3> <ms>")
			return
		}
		c.engine.SetDuration(anim.Style(n), ms)
	default:
		c.reply("unknown command: " + args[0])
	}
}

func (c *Console) reply(s string) {
	fmt.Fprintf(c.serial, "%s\r\n", s)
}
