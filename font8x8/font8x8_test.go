package font8x8

import (
	"testing"
)

func TestLookupPrintable(t *testing.T) {
	for c := 0x21; c <= 0x7E; c++ {
		if Lookup(byte(c)) == Blank {
			t.Errorf("Lookup(%q) returned a blank glyph", rune(c))
		}
	}
	if Lookup(' ') != Blank {
		t.Error("Lookup(' ') should be blank")
	}
}

func TestLookupFallback(t *testing.T) {
	tests := []struct {
		name string
		c    byte
	}{
		{"NUL", 0x00},
		{"newline", '\n'},
		{"unit separator", 0x1F},
		{"DEL", 0x7F},
		{"high byte", 0xC3},
		{"0xFF", 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.c); got != Blank {
				t.Errorf("Lookup(0x%02X) = %v, want Blank", tt.c, got)
			}
		})
	}
}

func TestLookupBitOrder(t *testing.T) {
	// '|' is a vertical bar in columns 3 and 4 with a gap on row 3.
	bar := Lookup('|')
	want := Glyph{0x18, 0x18, 0x18, 0x00, 0x18, 0x18, 0x18, 0x00}
	if bar != want {
		t.Errorf("Lookup('|') = % X, want % X", bar, want)
	}

	// '/' starts at the right on the top row and ends at the left.
	slash := Lookup('/')
	if !slash.Pixel(5, 0) || !slash.Pixel(6, 0) || slash.Pixel(0, 0) {
		t.Errorf("'/' top row = %08b, want pixels near the right edge", slash[0])
	}
	if slash[6] != 0x80 {
		t.Errorf("'/' row 6 = %08b, want only the leftmost pixel lit", slash[6])
	}
}

func TestGlyphs(t *testing.T) {
	got := Glyphs("A\x01B")
	if len(got) != 3 {
		t.Fatalf("len(Glyphs) = %d, want 3", len(got))
	}
	if got[0] != Lookup('A') || got[1] != Blank || got[2] != Lookup('B') {
		t.Errorf("Glyphs(\"A\\x01B\") = %v", got)
	}
	if len(Glyphs("")) != 0 {
		t.Error("Glyphs(\"\") should be empty")
	}
}

func TestPixelOutOfRange(t *testing.T) {
	full := Glyph{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if full.Pixel(p[0], p[1]) {
			t.Errorf("Pixel(%d, %d) = true, want false", p[0], p[1])
		}
	}
}

func TestRotate90(t *testing.T) {
	// Top-left pixel moves to the top-right corner.
	var g Glyph
	g[0] = 0x80
	r := Rotate90(g)
	want := Glyph{0x01}
	if r != want {
		t.Errorf("Rotate90(top-left) = % X, want % X", r, want)
	}

	// A full top row becomes a full right column.
	g = Glyph{0xFF}
	r = Rotate90(g)
	for y := 0; y < Height; y++ {
		if r[y] != 0x01 {
			t.Errorf("Rotate90(top row)[%d] = %08b, want 00000001", y, r[y])
		}
	}
}

func TestRotate90FourTimes(t *testing.T) {
	for c := byte(0x20); c <= 0x7E; c++ {
		g := Lookup(c)
		if got := Rotate90(Rotate90(Rotate90(Rotate90(g)))); got != g {
			t.Errorf("four rotations of %q = % X, want % X", c, got, g)
		}
	}
}
