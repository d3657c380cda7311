//go:build !tinygo

package hal

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

var errBadCredentials = errors.New("association failed")

// hostLink simulates the wireless interface.
//
// By default any non-empty SSID associates. Setting LUMEN_WIFI to a
// semicolon-separated list of ssid:secret pairs restricts the accepted
// networks, which is how the portal flow is exercised on the desktop.
type hostLink struct {
	mu        sync.Mutex
	logger    *hostLogger
	known     map[string]string
	connected bool
	ap        bool
}

func newHostLink(logger *hostLogger) *hostLink {
	l := &hostLink{logger: logger}
	if env := os.Getenv("LUMEN_WIFI"); env != "" {
		l.known = make(map[string]string)
		for _, entry := range strings.Split(env, ";") {
			ssid, secret, ok := strings.Cut(entry, ":")
			if !ok || ssid == "" {
				continue
			}
			l.known[ssid] = secret
		}
	}
	return l
}

func (l *hostLink) Connect(ssid, secret string, timeoutMS int64) error {
	// A real association takes a moment even on success.
	time.Sleep(50 * time.Millisecond)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ssid == "" {
		l.connected = false
		return errBadCredentials
	}
	if l.known != nil {
		want, ok := l.known[ssid]
		if !ok || want != secret {
			l.connected = false
			return errBadCredentials
		}
	}
	l.connected = true
	l.logger.WriteLineString("link: associated with " + ssid)
	return nil
}

func (l *hostLink) Connected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

func (l *hostLink) Disconnect() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = false
}

func (l *hostLink) StartAP(ssid, secret, ip string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ap = true
	l.logger.WriteLineString("link: AP up ssid=" + ssid + " ip=" + ip)
	return nil
}

func (l *hostLink) StopAP() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ap {
		l.logger.WriteLineString("link: AP down")
	}
	l.ap = false
}
