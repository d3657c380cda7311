package hal

import "testing"

func TestRGB565Packing(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, c := range cases {
		if got := RGB565(c.r, c.g, c.b); got != c.want {
			t.Fatalf("RGB565(%d, %d, %d) = %04x, want %04x", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestRGB888From565Extremes(t *testing.T) {
	if r, g, b := RGB888From565(0x0000); r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected black, got (%d, %d, %d)", r, g, b)
	}
	if r, g, b := RGB888From565(0xFFFF); r != 255 || g != 255 || b != 255 {
		t.Fatalf("expected white, got (%d, %d, %d)", r, g, b)
	}
	if r, g, b := RGB888From565(0xF800); r != 255 || g != 0 || b != 0 {
		t.Fatalf("expected red, got (%d, %d, %d)", r, g, b)
	}
}
