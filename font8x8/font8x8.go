// Package font8x8 is a fixed 8x8 bitmap font for LED dot-matrix modules.
//
// Each Glyph is eight row bytes, top row first. Within a row the most
// significant bit is the leftmost column, which is the bit order a MAX7219
// digit register expects when column 0 of a module is wired to segment DP.
//
// Only printable ASCII (0x20 through 0x7E) is defined. Every other byte maps
// to Blank, so Lookup never fails.
package font8x8

// Width is the number of columns in every glyph.
const Width = 8

// Height is the number of rows in every glyph.
const Height = 8

// Glyph is one character cell, one byte per row.
type Glyph [Height]byte

// Blank is the fallback glyph for characters outside the table.
var Blank Glyph

const (
	first = 0x20
	last  = 0x7E
)

// Lookup returns the glyph for the character c.
func Lookup(c byte) Glyph {
	if c < first || c > last {
		return Blank
	}
	return ascii[c-first]
}

// Glyphs returns the glyphs for every byte of s, in order.
func Glyphs(s string) []Glyph {
	g := make([]Glyph, len(s))
	for i := 0; i < len(s); i++ {
		g[i] = Lookup(s[i])
	}
	return g
}

// Pixel reports whether the pixel at column x, row y is lit.
// Coordinates outside the cell are unlit.
func (g Glyph) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g[y]&(0x80>>uint(x)) != 0
}

// Rotate90 returns g rotated 90 degrees clockwise. It is useful for modules
// mounted with their rows running vertically.
func Rotate90(g Glyph) Glyph {
	var r Glyph
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			// (x, y) of the result comes from (y, Height-1-x) of the source.
			if g.Pixel(y, Height-1-x) {
				r[y] |= 0x80 >> uint(x)
			}
		}
	}
	return r
}
