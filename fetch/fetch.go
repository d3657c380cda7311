// Package fetch turns one blocking remote request into a pollable
// three-state machine the scheduler can advance once per tick.
package fetch

import (
	"encoding/json"
	"fmt"

	"lumen/hal"
)

// RequestState is the fetch machine's phase.
type RequestState uint8

const (
	Idle RequestState = iota
	Pending
	Complete
)

func (s RequestState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Complete:
		return "complete"
	default:
		return "invalid"
	}
}

// PendingTimeoutMS aborts a request that never completes.
const PendingTimeoutMS = 60_000

// stats is the remote service's response body.
type stats struct {
	FollowersCount uint32 `json:"followers_count"`
	Username       string `json:"username"`
	LastUpdated    string `json:"last_updated"`
}

// Machine drives at most one outstanding request against the remote
// transport. Only Start, Poll and Process mutate the state.
type Machine struct {
	remote hal.Remote
	clock  hal.Clock
	log    hal.Logger

	url       string
	state     RequestState
	startedAt int64
	lastOK    bool
}

func NewMachine(remote hal.Remote, clock hal.Clock, log hal.Logger, url string) *Machine {
	return &Machine{remote: remote, clock: clock, log: log, url: url}
}

// Start opens the remote connection and issues the GET without waiting for
// the body. It is a no-op returning false unless the machine is Idle and
// the network is up.
func (m *Machine) Start(connected bool) bool {
	if m.state != Idle {
		return false
	}
	if !connected {
		m.log.WriteLineString("fetch: network down, skipping")
		return false
	}

	m.remote.SetTimeout(PendingTimeoutMS)
	if err := m.remote.BeginGet(m.url); err != nil {
		m.log.WriteLineString("fetch: request failed to start: " + err.Error())
		m.remote.Close()
		m.lastOK = false
		return false
	}

	m.state = Pending
	m.startedAt = m.clock.Millis()
	return true
}

// Poll advances Pending once per tick: the request is complete when the
// transport reports the connection closed, and abandoned after the
// pending timeout.
func (m *Machine) Poll() {
	if m.state != Pending {
		return
	}

	if !m.remote.IsConnected() {
		m.state = Complete
		return
	}

	if m.clock.Millis()-m.startedAt > PendingTimeoutMS {
		m.log.WriteLineString("fetch: request timed out, aborting")
		m.remote.Close()
		m.state = Idle
		m.lastOK = false
	}
}

// Process consumes a Complete response and returns the new counter value.
// The counter is replaced only on a 200 with a parsable body; any failure
// leaves it untouched and flips the success flag. Either way the
// connection is released and the machine returns to Idle.
func (m *Machine) Process() (uint32, bool) {
	if m.state != Complete {
		return 0, false
	}

	defer func() {
		m.remote.Close()
		m.state = Idle
	}()

	status := m.remote.Status()
	if status != 200 {
		m.log.WriteLineString(fmt.Sprintf("fetch: %s", describeStatus(status)))
		m.lastOK = false
		return 0, false
	}

	body, err := m.remote.Body()
	if err != nil {
		m.log.WriteLineString("fetch: reading body: " + err.Error())
		m.lastOK = false
		return 0, false
	}

	var st stats
	if err := json.Unmarshal(body, &st); err != nil {
		m.log.WriteLineString("fetch: malformed response: " + err.Error())
		m.lastOK = false
		return 0, false
	}

	m.lastOK = true
	m.log.WriteLineString(fmt.Sprintf("fetch: %s has %d followers (as of %s)", st.Username, st.FollowersCount, st.LastUpdated))
	return st.FollowersCount, true
}

// State returns the current request phase.
func (m *Machine) State() RequestState { return m.state }

// LastOK reports whether the most recent completed request succeeded.
func (m *Machine) LastOK() bool { return m.lastOK }

func describeStatus(code int) string {
	switch code {
	case 0:
		return "no response"
	case 400:
		return "bad request (400)"
	case 401:
		return "unauthorized (401)"
	case 403:
		return "forbidden (403)"
	case 404:
		return "endpoint not found (404)"
	case 429:
		return "rate limited (429)"
	case 500:
		return "server error (500)"
	default:
		return fmt.Sprintf("unexpected status %d", code)
	}
}
