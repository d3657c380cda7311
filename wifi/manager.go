// Package wifi manages credential-based connection attempts, reconnection
// on connectivity edges, and the configuration-portal fallback.
package wifi

import "lumen/hal"

// Status is the connectivity state.
type Status uint8

const (
	Disconnected Status = iota
	Connecting
	Connected
	PortalActive
)

func (s Status) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case PortalActive:
		return "portal-active"
	default:
		return "invalid"
	}
}

// AttemptTimeoutMS bounds one blocking connection attempt.
const AttemptTimeoutMS = 10_000

// Manager owns the connectivity state machine. Connection attempts block
// the calling tick up to the per-attempt timeout; that is the one
// acknowledged blocking boundary in the control loop.
type Manager struct {
	link   hal.Link
	store  hal.Store
	clock  hal.Clock
	log    hal.Logger
	portal *Portal

	resource  string
	timeoutMS int64

	status        Status
	prevConnected bool
}

func NewManager(link hal.Link, store hal.Store, clock hal.Clock, log hal.Logger, portal *Portal) *Manager {
	return &Manager{
		link:      link,
		store:     store,
		clock:     clock,
		log:       log,
		portal:    portal,
		resource:  CredentialResource,
		timeoutMS: AttemptTimeoutMS,
	}
}

// Status returns the current connectivity state.
func (m *Manager) Status() Status { return m.status }

// Connected reports the live link status.
func (m *Manager) Connected() bool { return m.link.Connected() }

// PortalActive reports whether the fallback portal is serving.
func (m *Manager) PortalActive() bool { return m.status == PortalActive }

// Connect reads the stored candidates and tries each in order, stopping
// at the first success. An unreadable store or exhausted candidate list
// falls back to the portal.
func (m *Manager) Connect() bool {
	m.status = Connecting

	data, err := m.store.ReadResource(m.resource)
	if err != nil {
		m.log.WriteLineString("wifi: credential store unreadable: " + err.Error())
		m.enterPortal()
		return false
	}
	creds, err := ParseCredentials(data)
	if err != nil {
		m.log.WriteLineString("wifi: " + err.Error())
		m.enterPortal()
		return false
	}

	if m.tryCandidates(creds) {
		return true
	}
	m.enterPortal()
	return false
}

func (m *Manager) tryCandidates(creds []Credential) bool {
	for _, c := range creds {
		m.log.WriteLineString("wifi: trying " + c.SSID)
		if err := m.link.Connect(c.SSID, c.Secret, m.timeoutMS); err != nil {
			m.log.WriteLineString("wifi: " + c.SSID + ": " + err.Error())
			continue
		}
		m.status = Connected
		m.prevConnected = true
		m.log.WriteLineString("wifi: connected to " + c.SSID)
		return true
	}
	return false
}

func (m *Manager) enterPortal() {
	if err := m.portal.Start(); err != nil {
		m.log.WriteLineString("wifi: portal unavailable: " + err.Error())
		m.status = Disconnected
		return
	}
	m.status = PortalActive
}

// Maintain acts only on a transition edge of the live link status: a drop
// triggers one reconnect attempt, a recovery refreshes the state. Steady
// disconnection does not retry every tick.
func (m *Manager) Maintain() {
	if m.status == PortalActive {
		return
	}

	cur := m.link.Connected()
	if cur == m.prevConnected {
		return
	}
	m.prevConnected = cur

	if !cur {
		m.log.WriteLineString("wifi: connection lost, reconnecting")
		m.status = Disconnected
		m.Connect()
		return
	}
	m.status = Connected
	m.log.WriteLineString("wifi: connection restored")
}

// ServicePortal runs one cooperative portal slice: a submission is
// persisted and tried immediately (success tears the portal down, failure
// restarts it); expiry triggers one final attempt from the store before
// settling into Disconnected.
func (m *Manager) ServicePortal() {
	sub, expired := m.portal.Service()

	if sub != nil {
		m.persist(*sub)
		m.portal.Stop()
		m.status = Connecting
		if m.tryCandidates([]Credential{*sub}) {
			return
		}
		m.log.WriteLineString("wifi: submitted credentials failed, restarting portal")
		m.enterPortal()
		return
	}

	if expired {
		m.log.WriteLineString("wifi: portal timed out")
		m.portal.Stop()
		if data, err := m.store.ReadResource(m.resource); err == nil {
			if creds, perr := ParseCredentials(data); perr == nil && m.tryCandidates(creds) {
				return
			}
		}
		m.status = Disconnected
	}
}

// persist puts the submitted entry first so it is tried before older ones.
func (m *Manager) persist(c Credential) {
	merged := []Credential{c}
	if data, err := m.store.ReadResource(m.resource); err == nil {
		if old, err := ParseCredentials(data); err == nil {
			for _, o := range old {
				if o.SSID != c.SSID {
					merged = append(merged, o)
				}
			}
		}
	}

	if err := m.store.WriteResource(m.resource, encodeCredentials(merged)); err != nil {
		m.log.WriteLineString("wifi: persisting credentials: " + err.Error())
		return
	}
	m.log.WriteLineString("wifi: stored credentials for " + c.SSID)
}
