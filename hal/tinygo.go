//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *hub75
	clock  *tinyGoClock
	store  *flashStore
	serial *uartSerial
}

// New returns the baremetal HAL implementation.
//
// UART: UART0 at 115200 8N1 for logging and the command console.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newHUB75(PanelWidth, PanelHeight),
		clock:  newTinyGoClock(),
		store:  newFlashStore(),
		serial: &uartSerial{uart: uart},
	}
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Clock() Clock         { return h.clock }
func (h *tinyGoHAL) Display() Display     { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Link() Link           { return nullLink{} }
func (h *tinyGoHAL) Store() Store         { return h.store }
func (h *tinyGoHAL) Remote() Remote       { return nullRemote{} }
func (h *tinyGoHAL) Updater() Updater     { return nullUpdater{} }
func (h *tinyGoHAL) Serial() Serial       { return h.serial }
func (h *tinyGoHAL) PortalNet() PortalNet { return nil }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoClock struct {
	start time.Time
}

func newTinyGoClock() *tinyGoClock {
	return &tinyGoClock{start: time.Now()}
}

func (c *tinyGoClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *tinyGoClock) SleepMillis(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Read(p)
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}
