package max7219

import (
	"context"
	"image"
	"image/draw"
	"slices"
	"time"

	"github.com/flavioheleno/max7219/font8x8"
	"github.com/flavioheleno/max7219/image1bit"
)

// WriteGlyphsAt draws glyphs side by side starting at logical column x.
// x may be negative. Columns outside the surface are dropped without error
// and columns between the glyphs' extent are left as they were.
//
// Chips covered by at least one visible column are rewritten, one transaction
// per row; the rest of the chain latches no-ops. If no column is visible
// nothing is sent.
func (d *Dev) WriteGlyphsAt(glyphs []font8x8.Glyph, x int) error {
	next := d.shadow.Clone()
	width := next.Rect.Dx()
	touched := make([]bool, d.chain.chips)

	for k, g := range glyphs {
		base := x + k*font8x8.Width
		if base >= width || base+font8x8.Width <= 0 {
			continue
		}
		for col := 0; col < font8x8.Width; col++ {
			c := base + col
			if c < 0 || c >= width {
				continue
			}
			touched[c/Columns] = true
			for row := 0; row < Rows; row++ {
				next.SetBit(c, row, image1bit.Bit(g.Pixel(col, row)))
			}
		}
	}
	return d.flush(next, touched, 0, Rows)
}

// WriteStrAtPos renders text with the font8x8 glyphs, the first character's
// leftmost column at logical column x. Each byte is one 8-column character;
// bytes outside printable ASCII render blank.
func (d *Dev) WriteStrAtPos(text string, x int) error {
	return d.WriteGlyphsAt(font8x8.Glyphs(text), x)
}

// Draw draws src onto the display. It implements display.Drawer.
//
// The destination is clipped to Bounds. Every chip the clipped rectangle
// overlaps is rewritten on the rows it spans; pixels of those chips outside
// the rectangle keep their latched value.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(d.shadow.Rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	next := d.shadow.Clone()
	draw.Draw(next, r, src, sp, draw.Src)

	touched := make([]bool, d.chain.chips)
	for chip := r.Min.X / Columns; chip <= (r.Max.X-1)/Columns; chip++ {
		touched[chip] = true
	}
	return d.flush(next, touched, r.Min.Y, r.Max.Y)
}

// ScrollText scrolls text from the right edge of the surface to the left
// until it has fully left, moving one column every interval.
//
// A blank glyph trails the text so the column it vacates is cleared. ctx is
// only checked between steps, never in the middle of a transaction.
func (d *Dev) ScrollText(ctx context.Context, text string, interval time.Duration) error {
	glyphs := append(font8x8.Glyphs(text), font8x8.Blank)
	end := -len(text) * font8x8.Width
	for x := d.shadow.Rect.Dx() - 1; x >= end; x-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.WriteGlyphsAt(glyphs, x); err != nil {
			return err
		}
		if x == end {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil
}

// flush writes rows [y0, y1) of every touched chip from next. Untouched chips
// latch no-ops. The shadow is updated row by row as each transaction
// succeeds.
func (d *Dev) flush(next *image1bit.HorizontalMSB, touched []bool, y0, y1 int) error {
	if !slices.Contains(touched, true) {
		return nil
	}

	for row := y0; row < y1; row++ {
		t := d.chain.blank()
		for chip, ok := range touched {
			if ok {
				t[chip] = Frame{Reg: Digit0 + Register(row), Data: next.Cell(chip, row)}
			}
		}
		if err := d.transmit(t); err != nil {
			return err
		}
	}
	return nil
}
