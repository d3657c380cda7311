package hal

import (
	"errors"
	"io"
	"net"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Panel geometry for a single 64x32 HUB75 module.
const (
	PanelWidth  = 64
	PanelHeight = 32
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Clock provides a monotonically increasing millisecond timestamp.
type Clock interface {
	Millis() int64
	SleepMillis(ms int64)
}

// Link manages the wireless station and access-point interfaces.
//
// Connect blocks the caller until the link is up or the timeout elapses.
// There is no way to abort an attempt early.
type Link interface {
	Connect(ssid, secret string, timeoutMS int64) error
	Connected() bool
	Disconnect()
	StartAP(ssid, secret, ip string) error
	StopAP()
}

// Store reads and writes small named text resources (credential file).
type Store interface {
	ReadResource(name string) ([]byte, error)
	WriteResource(name string, data []byte) error
}

// Remote is a byte-oriented HTTP-ish transport for one request at a time.
//
// BeginGet issues the request and returns without waiting for the body.
// Completion is observed through IsConnected going false.
type Remote interface {
	SetTimeout(ms int64)
	BeginGet(url string) error
	IsConnected() bool
	Status() int
	Body() ([]byte, error)
	Close()
}

// Updater polls the firmware-update channel. Poll must not block.
type Updater interface {
	Poll()
}

// Serial is the byte stream used by the command console.
type Serial interface {
	io.Reader
	io.Writer
}

// PortalNet opens the listeners backing the configuration portal.
type PortalNet interface {
	Listen() (net.Listener, net.PacketConn, error)
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	Clock() Clock
	Display() Display
	Link() Link
	Store() Store
	Remote() Remote
	Updater() Updater
	Serial() Serial
	PortalNet() PortalNet
}
