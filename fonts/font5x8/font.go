// Package font5x8 provides the 5x8 glyph set used for the counter digits.
package font5x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font covers the ASCII digits plus space.
//
// It implements tinyfont.Fonter so in-app renderers can draw through the
// usual tinyfont entry points. Concurrent access is not safe due to
// internal glyph reuse.
var Font tinyfont.Fonter = &font5x8{}

// Glyph cell metrics.
const (
	GlyphWidth  = 5
	GlyphHeight = 8
)

type font5x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	idx := glyphIndex(g.r)
	if idx < 0 {
		return
	}

	base := idx * 8
	for row := 0; row < 8; row++ {
		b := glyphData[base+row]
		// Bits are stored as 0b000xxxxx (bit4 = leftmost pixel).
		for col := 0; col < 5; col++ {
			if b&(0x10>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    GlyphWidth,
		Height:   GlyphHeight,
		XAdvance: GlyphWidth + 1,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font5x8) GetYAdvance() uint8 { return GlyphHeight }

func (f *font5x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func glyphIndex(r rune) int {
	if r >= '0' && r <= '9' {
		return 1 + int(r-'0')
	}
	if r == ' ' {
		return 0
	}
	return -1
}

// glyphData holds 8 row bytes per glyph: space, then '0'..'9'.
var glyphData = [...]byte{
	// space
	0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000,
	// 0
	0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110, 0b00000,
	// 1
	0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b01110, 0b00000,
	// 2
	0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b01000, 0b11111, 0b00000,
	// 3
	0b11111, 0b00010, 0b00100, 0b00010, 0b00001, 0b10001, 0b01110, 0b00000,
	// 4
	0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010, 0b00000,
	// 5
	0b11111, 0b10000, 0b11110, 0b00001, 0b00001, 0b10001, 0b01110, 0b00000,
	// 6
	0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110, 0b00000,
	// 7
	0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b01000, 0b01000, 0b00000,
	// 8
	0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110, 0b00000,
	// 9
	0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100, 0b00000,
}
