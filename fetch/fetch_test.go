package fetch

import (
	"errors"
	"strings"
	"testing"
)

type testClock struct {
	now int64
}

func (c *testClock) Millis() int64        { return c.now }
func (c *testClock) SleepMillis(ms int64) { c.now += ms }

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

// fakeRemote scripts one request at a time. The connection stays open
// until the test flips connected off.
type fakeRemote struct {
	beginErr  error
	connected bool
	status    int
	body      []byte
	bodyErr   error

	gets    int
	closes  int
	lastURL string
}

func (r *fakeRemote) SetTimeout(ms int64) {}

func (r *fakeRemote) BeginGet(url string) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	r.gets++
	r.lastURL = url
	r.connected = true
	return nil
}

func (r *fakeRemote) IsConnected() bool     { return r.connected }
func (r *fakeRemote) Status() int           { return r.status }
func (r *fakeRemote) Body() ([]byte, error) { return r.body, r.bodyErr }

func (r *fakeRemote) Close() {
	r.connected = false
	r.closes++
}

func newTestMachine() (*Machine, *fakeRemote, *testClock, *lineLogger) {
	remote := &fakeRemote{}
	clock := &testClock{}
	log := &lineLogger{}
	return NewMachine(remote, clock, log, "http://host/api/followers"), remote, clock, log
}

func TestStartOnlyWhenIdleAndConnected(t *testing.T) {
	m, remote, _, log := newTestMachine()

	if m.Start(false) {
		t.Fatal("expected start to refuse without a network")
	}
	if !log.contains("network down") {
		t.Fatalf("expected a network-down log, got %v", log.lines)
	}

	if !m.Start(true) {
		t.Fatal("expected start to issue the request")
	}
	if m.State() != Pending {
		t.Fatalf("expected pending, got %s", m.State())
	}
	if remote.lastURL != "http://host/api/followers" {
		t.Fatalf("unexpected request URL %q", remote.lastURL)
	}

	// A second start while the request is in flight is a no-op.
	if m.Start(true) {
		t.Fatal("expected start to refuse while pending")
	}
	if remote.gets != 1 {
		t.Fatalf("expected one request, got %d", remote.gets)
	}
}

func TestStartReleasesOnBeginError(t *testing.T) {
	m, remote, _, _ := newTestMachine()
	remote.beginErr = errors.New("connect refused")

	if m.Start(true) {
		t.Fatal("expected start to fail")
	}
	if m.State() != Idle {
		t.Fatalf("expected idle, got %s", m.State())
	}
	if remote.closes != 1 {
		t.Fatalf("expected the connection released, got %d closes", remote.closes)
	}
	if m.LastOK() {
		t.Fatal("expected the success flag cleared")
	}
}

func TestPollCompletesOnConnectionClose(t *testing.T) {
	m, remote, _, _ := newTestMachine()
	m.Start(true)

	m.Poll()
	if m.State() != Pending {
		t.Fatalf("expected pending while the connection is open, got %s", m.State())
	}

	remote.connected = false
	m.Poll()
	if m.State() != Complete {
		t.Fatalf("expected complete after the connection closed, got %s", m.State())
	}
}

func TestPollAbandonsAfterTimeout(t *testing.T) {
	m, remote, clock, log := newTestMachine()
	m.Start(true)

	clock.now += PendingTimeoutMS + 1
	m.Poll()
	if m.State() != Idle {
		t.Fatalf("expected idle after the timeout, got %s", m.State())
	}
	if remote.closes != 1 {
		t.Fatalf("expected the connection released, got %d closes", remote.closes)
	}
	if !log.contains("timed out") {
		t.Fatalf("expected a timeout log, got %v", log.lines)
	}
	if m.LastOK() {
		t.Fatal("expected the success flag cleared")
	}
}

func TestProcessReplacesCounterOnlyOnValidResponse(t *testing.T) {
	m, remote, _, log := newTestMachine()
	counter := uint32(7)

	cycle := func() {
		if !m.Start(true) {
			t.Fatal("expected start to issue the request")
		}
		remote.connected = false
		m.Poll()
		if value, ok := m.Process(); ok {
			counter = value
		}
	}

	// Cycle 1: a 200 with a malformed body leaves the counter untouched.
	remote.status = 200
	remote.body = []byte("{not json")
	cycle()
	if counter != 7 {
		t.Fatalf("expected counter unchanged, got %d", counter)
	}
	if m.LastOK() {
		t.Fatal("expected the success flag cleared after a malformed body")
	}
	if !log.contains("malformed response") {
		t.Fatalf("expected a malformed-response log, got %v", log.lines)
	}

	// Cycle 2: a valid body replaces the counter.
	remote.body = []byte(`{"followers_count": 120, "username": "ada", "last_updated": "2026-08-26"}`)
	cycle()
	if counter != 120 {
		t.Fatalf("expected counter 120, got %d", counter)
	}
	if !m.LastOK() {
		t.Fatal("expected the success flag set")
	}

	// Cycle 3: an error status keeps the previous value.
	remote.status = 500
	cycle()
	if counter != 120 {
		t.Fatalf("expected counter to keep its last good value, got %d", counter)
	}
	if m.LastOK() {
		t.Fatal("expected the success flag cleared after a server error")
	}
	if !log.contains("server error (500)") {
		t.Fatalf("expected a status log, got %v", log.lines)
	}

	if m.State() != Idle {
		t.Fatalf("expected idle between cycles, got %s", m.State())
	}
}

func TestProcessReleasesConnection(t *testing.T) {
	m, remote, _, _ := newTestMachine()
	remote.status = 200
	remote.body = []byte(`{"followers_count": 1, "username": "x", "last_updated": ""}`)

	m.Start(true)
	remote.connected = false
	m.Poll()
	m.Process()

	if remote.closes != 1 {
		t.Fatalf("expected one close, got %d", remote.closes)
	}
	if m.State() != Idle {
		t.Fatalf("expected idle, got %s", m.State())
	}
}

func TestDescribeStatus(t *testing.T) {
	if got := describeStatus(429); got != "rate limited (429)" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := describeStatus(503); got != "unexpected status 503" {
		t.Fatalf("unexpected description %q", got)
	}
}
