package anim

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"lumen/fonts/font5x8"
	"lumen/hal"
)

// Counter rendering geometry: five zero-padded digits at text scale 2.
const (
	CounterDigits = 5
	textScale     = 2
	digitWidth    = font5x8.GlyphWidth * textScale
	digitSpacing  = 1

	// CounterWidth and CounterHeight bound the full glyph block.
	CounterWidth  = CounterDigits*digitWidth + (CounterDigits-1)*digitSpacing
	CounterHeight = font5x8.GlyphHeight * textScale
)

// counterMax is the largest value the five-digit block can show.
const counterMax = 99_999

func formatCounter(v uint32) string {
	if v > counterMax {
		v = counterMax
	}
	return fmt.Sprintf("%0*d", CounterDigits, v)
}

// DrawCounter renders the zero-padded counter with its top-left corner at
// (x, y) in the given packed RGB565 color.
func (c *Canvas) DrawCounter(x, y int, value uint32, p uint16) {
	r, g, b := hal.RGB888From565(p)
	col := color.RGBA{R: r, G: g, B: b, A: 0xFF}

	s := formatCounter(value)
	for i, ch := range s {
		d := scaledSurface{
			c:       c,
			originX: x + i*(digitWidth+digitSpacing),
			originY: y,
			scale:   textScale,
		}
		tinyfont.DrawChar(d, font5x8.Font, 0, font5x8.GlyphHeight-1, ch, col)
	}
}

// centerCounter returns the top-left corner that centers the glyph block.
func centerCounter(c *Canvas) (x, y int) {
	return (c.Width() - CounterWidth) / 2, (c.Height() - CounterHeight) / 2
}
