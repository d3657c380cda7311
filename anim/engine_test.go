package anim

import (
	"strings"
	"testing"

	"lumen/hal"
)

type testClock struct {
	now int64
}

func (c *testClock) Millis() int64        { return c.now }
func (c *testClock) SleepMillis(ms int64) { c.now += ms }
func (c *testClock) advance(ms int64)     { c.now += ms }

// scriptRand replays a fixed value sequence, reduced modulo the bound.
type scriptRand struct {
	vals []int
	i    int
}

func (r *scriptRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type testFB struct {
	buf      []byte
	presents int
}

func newTestFB() *testFB {
	return &testFB{buf: make([]byte, hal.PanelWidth*hal.PanelHeight*2)}
}

func (f *testFB) Width() int              { return hal.PanelWidth }
func (f *testFB) Height() int             { return hal.PanelHeight }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return hal.PanelWidth * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *testFB) Present() error {
	f.presents++
	return nil
}

func (f *testFB) pixelAt(x, y int) uint16 {
	off := y*hal.PanelWidth*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type lineLogger struct {
	lines []string
}

func (l *lineLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *lineLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func newTestEngine(opts Options) (*Engine, *testClock, *lineLogger) {
	clock := &testClock{}
	log := &lineLogger{}
	canvas := NewCanvas(newTestFB())
	e := NewEngine(canvas, clock, &scriptRand{vals: []int{3, 7, 11, 1, 1, 0, 1}}, log, opts)
	return e, clock, log
}

func enableOnly(styles ...Style) Options {
	opts := DefaultOptions()
	opts.Enabled = [StyleCount]bool{}
	for _, s := range styles {
		opts.Enabled[s] = true
	}
	return opts
}

func TestEngineStartsWithFirstEnabledStyle(t *testing.T) {
	e, _, _ := newTestEngine(enableOnly(StyleColorTransition, StyleBouncingCounter))
	if !e.Active() {
		t.Fatal("expected engine to be active")
	}
	if e.Current() != StyleColorTransition {
		t.Fatalf("expected color-transition, got %s", e.Current())
	}
}

func TestEngineCyclesThroughEnabledStyles(t *testing.T) {
	opts := enableOnly(StyleRandomPosition, StyleColorTransition)
	opts.DurationMS[StyleRandomPosition] = 100
	opts.DurationMS[StyleColorTransition] = 100
	e, clock, _ := newTestEngine(opts)

	if !e.Update(42) {
		t.Fatal("expected first draw to request a refresh")
	}

	clock.advance(100)
	if !e.Update(42) {
		t.Fatal("expected a refresh on style handover")
	}
	if e.Current() != StyleColorTransition {
		t.Fatalf("expected color-transition after handover, got %s", e.Current())
	}

	clock.advance(100)
	e.Update(42)
	if e.Current() != StyleRandomPosition {
		t.Fatalf("expected wrap back to random-position, got %s", e.Current())
	}
}

func TestEngineNeverSelectsDisabledStyle(t *testing.T) {
	opts := enableOnly(StyleRandomPosition, StyleBouncingCounter)
	opts.DurationMS[StyleRandomPosition] = 50
	opts.DurationMS[StyleBouncingCounter] = 50
	e, clock, _ := newTestEngine(opts)

	for i := 0; i < 10; i++ {
		clock.advance(60)
		e.Update(1)
		if s := e.Current(); s == StyleSimpleCounter || s == StyleColorTransition {
			t.Fatalf("engine selected disabled style %s", s)
		}
	}
}

func TestEngineSingleStyleResetsInPlace(t *testing.T) {
	opts := enableOnly(StyleColorTransition)
	opts.DurationMS[StyleColorTransition] = 100
	e, clock, log := newTestEngine(opts)

	clock.advance(150)
	if !e.Update(7) {
		t.Fatal("expected a refresh on reset")
	}
	if e.Current() != StyleColorTransition {
		t.Fatalf("expected color-transition to stay active, got %s", e.Current())
	}
	if !log.contains("no other enabled styles") {
		t.Fatalf("expected in-place reset log, got %v", log.lines)
	}
	if e.variants[StyleColorTransition].IsComplete() {
		t.Fatal("expected the style timer to restart")
	}
}

func TestEngineRejectsBadStyleSelection(t *testing.T) {
	e, _, log := newTestEngine(enableOnly(StyleRandomPosition, StyleColorTransition))

	e.SetStyle(StyleBouncingCounter)
	if e.Current() != StyleRandomPosition {
		t.Fatalf("expected current style unchanged, got %s", e.Current())
	}
	if !log.contains("disabled") {
		t.Fatalf("expected a disabled-style log, got %v", log.lines)
	}

	e.SetStyle(Style(99))
	if e.Current() != StyleRandomPosition {
		t.Fatalf("expected current style unchanged, got %s", e.Current())
	}
	if !log.contains("invalid style") {
		t.Fatalf("expected an invalid-style log, got %v", log.lines)
	}
}

func TestEngineSetDurationKeepsElapsedTime(t *testing.T) {
	opts := enableOnly(StyleColorTransition)
	opts.DurationMS[StyleColorTransition] = 10_000
	e, clock, _ := newTestEngine(opts)

	clock.advance(500)
	e.SetDuration(StyleColorTransition, 400)
	if !e.variants[StyleColorTransition].IsComplete() {
		t.Fatal("expected the shortened cycle to be complete already")
	}
}

func TestEngineInertWithoutStyles(t *testing.T) {
	e, _, log := newTestEngine(enableOnly())
	if e.Active() {
		t.Fatal("expected engine to be inert")
	}
	if e.Update(5) {
		t.Fatal("expected no refresh from an inert engine")
	}
	if !log.contains("no styles enabled") {
		t.Fatalf("expected a no-styles log, got %v", log.lines)
	}
}
