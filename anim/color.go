package anim

import "lumen/hal"

// ColorWheel maps a position on a 256-step wheel to a packed RGB565 color,
// sweeping smoothly through the spectrum.
func ColorWheel(pos uint8) uint16 {
	switch {
	case pos < 85:
		return hal.RGB565(pos*3, 255-pos*3, 0)
	case pos < 170:
		pos -= 85
		return hal.RGB565(255-pos*3, 0, pos*3)
	default:
		pos -= 170
		return hal.RGB565(0, pos*3, 255-pos*3)
	}
}

func randomColor(rnd Rand) uint16 {
	return ColorWheel(uint8(rnd.Intn(256)))
}

// lerp565 interpolates two packed RGB565 colors component-wise. Progress is
// clamped to [0, 1]; the endpoints are returned exactly.
func lerp565(start, target uint16, progress float32) uint16 {
	if progress <= 0 {
		return start
	}
	if progress >= 1 {
		return target
	}

	sr := int32(start >> 11 & 0x1F)
	sg := int32(start >> 5 & 0x3F)
	sb := int32(start & 0x1F)

	tr := int32(target >> 11 & 0x1F)
	tg := int32(target >> 5 & 0x3F)
	tb := int32(target & 0x1F)

	r := uint16(sr + int32(float32(tr-sr)*progress))
	g := uint16(sg + int32(float32(tg-sg)*progress))
	b := uint16(sb + int32(float32(tb-sb)*progress))

	return r<<11 | g<<5 | b
}
