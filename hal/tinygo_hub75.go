//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// HUB75 wiring for the 64x32 panel.
const (
	pinR1  = machine.GPIO25
	pinG1  = machine.GPIO27
	pinB1  = machine.GPIO26
	pinR2  = machine.GPIO14
	pinG2  = machine.GPIO13
	pinB2  = machine.GPIO12
	pinRA  = machine.GPIO23
	pinRB  = machine.GPIO19
	pinRC  = machine.GPIO5
	pinRD  = machine.GPIO17
	pinCLK = machine.GPIO16
	pinLAT = machine.GPIO4
	pinOE  = machine.GPIO15
)

// hub75 bit-bangs a HUB75 panel with two parallel RGB lanes and a 1/16
// row scan. Color depth is one bit per channel: a channel lights when its
// RGB565 component is at least half scale.
type hub75 struct {
	width  int
	height int
	stride int
	buf    []byte

	rgb  [6]machine.Pin
	addr [4]machine.Pin
	clk  machine.Pin
	lat  machine.Pin
	oe   machine.Pin
}

func newHUB75(width, height int) *hub75 {
	d := &hub75{
		width:  width,
		height: height,
		stride: width * 2,
		buf:    make([]byte, width*2*height),
		rgb:    [6]machine.Pin{pinR1, pinG1, pinB1, pinR2, pinG2, pinB2},
		addr:   [4]machine.Pin{pinRA, pinRB, pinRC, pinRD},
		clk:    pinCLK,
		lat:    pinLAT,
		oe:     pinOE,
	}

	for _, p := range d.rgb {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	for _, p := range d.addr {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	d.clk.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.lat.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.oe.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.oe.High()

	// The panel holds no image memory; keep scanning forever.
	go d.refreshLoop()

	return d
}

func (d *hub75) Width() int          { return d.width }
func (d *hub75) Height() int         { return d.height }
func (d *hub75) Format() PixelFormat { return PixelFormatRGB565 }
func (d *hub75) StrideBytes() int    { return d.stride }
func (d *hub75) Buffer() []byte      { return d.buf }
func (d *hub75) Present() error      { return nil }

func (d *hub75) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(d.buf); i += 2 {
		d.buf[i] = lo
		d.buf[i+1] = hi
	}
}

func (d *hub75) refreshLoop() {
	for {
		d.scanFrame()
		time.Sleep(100 * time.Microsecond)
	}
}

func (d *hub75) scanFrame() {
	half := d.height / 2
	for row := 0; row < half; row++ {
		for col := 0; col < d.width; col++ {
			d.shiftPixel(row, col)
		}

		d.oe.High()
		d.setRow(row)
		d.lat.High()
		d.lat.Low()
		d.oe.Low()
	}
}

func (d *hub75) shiftPixel(row, col int) {
	top := d.pixelAt(col, row)
	bottom := d.pixelAt(col, row+d.height/2)

	d.rgb[0].Set(top>>11&0x1F >= 0x10)
	d.rgb[1].Set(top>>5&0x3F >= 0x20)
	d.rgb[2].Set(top&0x1F >= 0x10)
	d.rgb[3].Set(bottom>>11&0x1F >= 0x10)
	d.rgb[4].Set(bottom>>5&0x3F >= 0x20)
	d.rgb[5].Set(bottom&0x1F >= 0x10)

	d.clk.High()
	d.clk.Low()
}

func (d *hub75) pixelAt(x, y int) uint16 {
	off := y*d.stride + x*2
	return uint16(d.buf[off]) | uint16(d.buf[off+1])<<8
}

func (d *hub75) setRow(row int) {
	for i, p := range d.addr {
		p.Set(row&(1<<i) != 0)
	}
}
