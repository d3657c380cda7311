//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	clock  *hostClock
	link   *hostLink
	store  *hostStore
	remote *hostRemote
	serial *hostSerial
	pnet   *hostPortalNet
}

// New returns a host HAL implementation backed by the desktop simulator.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(PanelWidth, PanelHeight),
		clock:  newHostClock(),
		link:   newHostLink(logger),
		store:  newHostStore(),
		remote: &hostRemote{timeoutMS: 60_000},
		serial: &hostSerial{r: os.Stdin, w: os.Stdout},
		pnet:   &hostPortalNet{},
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Clock() Clock         { return h.clock }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Link() Link           { return h.link }
func (h *hostHAL) Store() Store         { return h.store }
func (h *hostHAL) Remote() Remote       { return h.remote }
func (h *hostHAL) Updater() Updater     { return nullUpdater{} }
func (h *hostHAL) Serial() Serial       { return h.serial }
func (h *hostHAL) PortalNet() PortalNet { return h.pnet }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostSerial struct {
	mu sync.Mutex
	r  *os.File
	w  *os.File
}

func (s *hostSerial) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotImplemented
	}
	return s.r.Read(p)
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
