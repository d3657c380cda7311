//go:build !tinygo

package hal

import (
	"net"
	"os"
)

// hostPortalNet binds the portal's HTTP and DNS listeners on loopback.
//
// Override the defaults with LUMEN_PORTAL_HTTP / LUMEN_PORTAL_DNS when the
// ports are taken.
type hostPortalNet struct{}

func (hostPortalNet) addr(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func (p *hostPortalNet) Listen() (net.Listener, net.PacketConn, error) {
	ln, err := net.Listen("tcp", p.addr("LUMEN_PORTAL_HTTP", "127.0.0.1:8070"))
	if err != nil {
		return nil, nil, err
	}
	pc, err := net.ListenPacket("udp", p.addr("LUMEN_PORTAL_DNS", "127.0.0.1:8053"))
	if err != nil {
		ln.Close()
		return nil, nil, err
	}
	return ln, pc, nil
}
