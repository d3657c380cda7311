package anim

import (
	"testing"

	"lumen/hal"
)

func TestColorWheelSegments(t *testing.T) {
	cases := []struct {
		pos  uint8
		want uint16
	}{
		{0, hal.RGB565(0, 255, 0)},
		{84, hal.RGB565(252, 3, 0)},
		{85, hal.RGB565(255, 0, 0)},
		{169, hal.RGB565(3, 0, 252)},
		{170, hal.RGB565(0, 0, 255)},
		{255, hal.RGB565(0, 255, 0)},
	}
	for _, c := range cases {
		if got := ColorWheel(c.pos); got != c.want {
			t.Fatalf("ColorWheel(%d) = %04x, want %04x", c.pos, got, c.want)
		}
	}
}

func TestLerpEndpointsExact(t *testing.T) {
	start := hal.RGB565(200, 10, 30)
	target := hal.RGB565(5, 250, 120)

	if got := lerp565(start, target, 0); got != start {
		t.Fatalf("expected the exact start color, got %04x", got)
	}
	if got := lerp565(start, target, -0.5); got != start {
		t.Fatalf("expected negative progress clamped to the start, got %04x", got)
	}
	if got := lerp565(start, target, 1); got != target {
		t.Fatalf("expected the exact target color, got %04x", got)
	}
	if got := lerp565(start, target, 1.5); got != target {
		t.Fatalf("expected overshoot clamped to the target, got %04x", got)
	}
}

func TestLerpMidpoint(t *testing.T) {
	got := lerp565(0x0000, 0xFFFF, 0.5)
	want := uint16(15<<11 | 31<<5 | 15)
	if got != want {
		t.Fatalf("lerp565 midpoint = %04x, want %04x", got, want)
	}
}
