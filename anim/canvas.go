package anim

import (
	"image/color"

	"lumen/hal"
)

// Canvas wraps the panel framebuffer with bounds-checked RGB565 writes.
// The animation engine is its only writer.
type Canvas struct {
	fb hal.Framebuffer
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb}
}

func (c *Canvas) Width() int  { return c.fb.Width() }
func (c *Canvas) Height() int { return c.fb.Height() }

func (c *Canvas) Clear() {
	c.fb.ClearRGB(0, 0, 0)
}

func (c *Canvas) Present() error {
	return c.fb.Present()
}

// SetPixel writes one packed RGB565 pixel. Out-of-bounds writes are dropped.
func (c *Canvas) SetPixel(x, y int, p uint16) {
	if c.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	if x < 0 || x >= c.fb.Width() || y < 0 || y >= c.fb.Height() {
		return
	}
	buf := c.fb.Buffer()
	off := y*c.fb.StrideBytes() + x*2
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// surface adapts the canvas to drivers.Displayer for tinyfont.
type surface struct {
	c *Canvas
}

func (s surface) Size() (int16, int16) {
	return int16(s.c.Width()), int16(s.c.Height())
}

func (s surface) SetPixel(x, y int16, col color.RGBA) {
	s.c.SetPixel(int(x), int(y), hal.RGB565(col.R, col.G, col.B))
}

func (s surface) Display() error { return nil }

// scaledSurface draws each glyph pixel as a scale x scale block with its
// origin translated, so size-2 text can use 1px digit spacing.
type scaledSurface struct {
	c       *Canvas
	originX int
	originY int
	scale   int
}

func (s scaledSurface) Size() (int16, int16) {
	return int16(s.c.Width() / s.scale), int16(s.c.Height() / s.scale)
}

func (s scaledSurface) SetPixel(x, y int16, col color.RGBA) {
	p := hal.RGB565(col.R, col.G, col.B)
	px := s.originX + int(x)*s.scale
	py := s.originY + int(y)*s.scale
	for dy := 0; dy < s.scale; dy++ {
		for dx := 0; dx < s.scale; dx++ {
			s.c.SetPixel(px+dx, py+dy, p)
		}
	}
}

func (s scaledSurface) Display() error { return nil }
