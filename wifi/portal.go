package wifi

import (
	"net"
	"net/http"

	"golang.org/x/net/dns/dnsmessage"

	"lumen/hal"
)

// PortalConfig fixes the access point the portal exposes.
type PortalConfig struct {
	SSID      string
	Secret    string
	IP        string
	TimeoutMS int64
}

const portalPage = `<!doctype html>
<html><head><title>LED counter setup</title></head>
<body>
<h1>LED counter setup</h1>
<form method="POST" action="/save">
<label>Network <input name="ssid"></label><br>
<label>Password <input name="password" type="password"></label><br>
<button type="submit">Save</button>
</form>
</body></html>`

const portalSavedPage = `<!doctype html>
<html><body><p>Credentials saved. The panel is connecting; this network will go away.</p></body></html>`

// Portal is the credential-collection fallback: a local access point, a
// captive DNS responder answering every query with the portal IP, and a
// minimal web form. Listener IO runs on goroutines; submissions surface
// through the cooperative Service call.
type Portal struct {
	link  hal.Link
	clock hal.Clock
	log   hal.Logger
	pnet  hal.PortalNet
	cfg   PortalConfig
	addr4 [4]byte

	active    bool
	startedAt int64
	subs      chan Credential
	ln        net.Listener
	pc        net.PacketConn
}

func NewPortal(link hal.Link, clock hal.Clock, log hal.Logger, pnet hal.PortalNet, cfg PortalConfig) *Portal {
	p := &Portal{link: link, clock: clock, log: log, pnet: pnet, cfg: cfg}
	if ip := net.ParseIP(cfg.IP); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			copy(p.addr4[:], v4)
		}
	}
	return p
}

// Start brings up the access point and both responders. Restarting an
// active portal only re-arms its timeout.
func (p *Portal) Start() error {
	if p.active {
		p.startedAt = p.clock.Millis()
		return nil
	}
	if p.pnet == nil {
		return hal.ErrNotImplemented
	}

	if err := p.link.StartAP(p.cfg.SSID, p.cfg.Secret, p.cfg.IP); err != nil {
		return err
	}
	ln, pc, err := p.pnet.Listen()
	if err != nil {
		p.link.StopAP()
		return err
	}

	p.ln = ln
	p.pc = pc
	p.subs = make(chan Credential, 4)
	p.startedAt = p.clock.Millis()
	p.active = true

	go p.serveHTTP(ln)
	go p.serveDNS(pc)

	p.log.WriteLineString("portal: serving ssid=" + p.cfg.SSID + " ip=" + p.cfg.IP)
	return nil
}

// Stop tears the access point and responders down.
func (p *Portal) Stop() {
	if !p.active {
		return
	}
	p.active = false
	p.ln.Close()
	p.pc.Close()
	p.link.StopAP()
	p.log.WriteLineString("portal: stopped")
}

// Active reports whether the portal is currently serving.
func (p *Portal) Active() bool { return p.active }

// Service drains at most one submitted credential and checks the portal
// timeout. It never blocks.
func (p *Portal) Service() (sub *Credential, expired bool) {
	if !p.active {
		return nil, false
	}

	select {
	case c := <-p.subs:
		return &c, false
	default:
	}

	if p.clock.Millis()-p.startedAt >= p.cfg.TimeoutMS {
		return nil, true
	}
	return nil, false
}

func (p *Portal) serveHTTP(ln net.Listener) {
	// Serve returns once the listener closes on Stop.
	_ = http.Serve(ln, http.HandlerFunc(p.handle))
}

// handle answers every path: captive clients probe arbitrary URLs.
func (p *Portal) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		ssid := r.FormValue("ssid")
		if ssid == "" {
			http.Error(w, "ssid is required", http.StatusBadRequest)
			return
		}

		select {
		case p.subs <- Credential{SSID: ssid, Secret: r.FormValue("password")}:
		default:
			// A submission is already queued; the first one wins.
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(portalSavedPage))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(portalPage))
}

func (p *Portal) serveDNS(pc net.PacketConn) {
	buf := make([]byte, 512)
	for {
		n, raddr, err := pc.ReadFrom(buf)
		if err != nil {
			return
		}
		resp, err := p.answer(buf[:n])
		if err != nil {
			continue
		}
		pc.WriteTo(resp, raddr)
	}
}

// answer builds a response resolving every A question to the portal IP.
func (p *Portal) answer(query []byte) ([]byte, error) {
	var parser dnsmessage.Parser
	hdr, err := parser.Start(query)
	if err != nil {
		return nil, err
	}
	questions, err := parser.AllQuestions()
	if err != nil {
		return nil, err
	}

	msg := dnsmessage.Message{
		Header: dnsmessage.Header{
			ID:            hdr.ID,
			Response:      true,
			Authoritative: true,
		},
		Questions: questions,
	}
	for _, q := range questions {
		if q.Type != dnsmessage.TypeA || q.Class != dnsmessage.ClassINET {
			continue
		}
		msg.Answers = append(msg.Answers, dnsmessage.Resource{
			Header: dnsmessage.ResourceHeader{
				Name:  q.Name,
				Type:  dnsmessage.TypeA,
				Class: dnsmessage.ClassINET,
				TTL:   60,
			},
			Body: &dnsmessage.AResource{A: p.addr4},
		})
	}
	return msg.Pack()
}
