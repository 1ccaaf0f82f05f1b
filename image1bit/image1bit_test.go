package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"on", On, 0xFFFF},
		{"off", Off, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough", On, On},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitModel.Convert(tt.input).(Bit); got != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewHorizontalMSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"one module", image.Rect(0, 0, 8, 8), false, 1, 8},
		{"four modules", image.Rect(0, 0, 32, 8), false, 4, 32},
		{"twenty modules", image.Rect(0, 0, 160, 8), false, 20, 160},
		{"offset rect", image.Rect(16, 4, 32, 6), false, 2, 4},
		{"width not multiple of 8 panics", image.Rect(0, 0, 12, 8), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewHorizontalMSB(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestHorizontalMSBBitPacking(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 16, 1))

	img.SetBit(0, 0, On)
	img.SetBit(7, 0, On)
	img.SetBit(9, 0, On)

	// Leftmost pixel is the most significant bit.
	if img.Pix[0] != 0x81 {
		t.Errorf("Pix[0] = 0x%02X, want 0x81", img.Pix[0])
	}
	if img.Pix[1] != 0x40 {
		t.Errorf("Pix[1] = 0x%02X, want 0x40", img.Pix[1])
	}

	img.SetBit(0, 0, Off)
	if img.Pix[0] != 0x01 {
		t.Errorf("after clearing x=0, Pix[0] = 0x%02X, want 0x01", img.Pix[0])
	}
}

func TestHorizontalMSBAtAndSet(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 2))

	img.Set(3, 1, color.White)
	if c, ok := img.At(3, 1).(Bit); !ok || c != On {
		t.Errorf("At(3, 1) = %v, want On", img.At(3, 1))
	}
	img.Set(3, 1, color.Black)
	if img.BitAt(3, 1) != Off {
		t.Error("BitAt(3, 1) should be Off after setting black")
	}
}

func TestHorizontalMSBOutOfBounds(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 8))

	img.SetBit(-1, 0, On)
	img.SetBit(8, 0, On)
	img.SetBit(0, 8, On)
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds writes, want 0", i, b)
		}
	}
	if img.BitAt(-1, 0) != Off {
		t.Error("BitAt(-1, 0) should be Off")
	}
}

func TestHorizontalMSBOffsetRect(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(8, 2, 24, 4))

	img.SetBit(8, 2, On)
	if img.Pix[0] != 0x80 {
		t.Errorf("Pix[0] = 0x%02X, want 0x80", img.Pix[0])
	}
	img.SetBit(23, 3, On)
	if img.Cell(1, 3) != 0x01 {
		t.Errorf("Cell(1, 3) = 0x%02X, want 0x01", img.Cell(1, 3))
	}
}

func TestHorizontalMSBCell(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 24, 8))

	img.SetCell(2, 5, 0xA5)
	if got := img.Cell(2, 5); got != 0xA5 {
		t.Errorf("Cell(2, 5) = 0x%02X, want 0xA5", got)
	}
	if img.BitAt(16, 5) != On || img.BitAt(17, 5) != Off {
		t.Error("SetCell did not place the MSB at the leftmost pixel")
	}
}

func TestHorizontalMSBClone(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 8))
	img.SetCell(0, 0, 0xFF)

	c := img.Clone()
	c.SetCell(0, 0, 0x00)
	if img.Cell(0, 0) != 0xFF {
		t.Error("Clone shares pixel memory with the original")
	}
	if c.Rect != img.Rect || c.Stride != img.Stride {
		t.Errorf("Clone geometry = (%v, %d), want (%v, %d)", c.Rect, c.Stride, img.Rect, img.Stride)
	}
}

func TestHorizontalMSBDraw(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 16, 8))
	draw.Draw(img, image.Rect(4, 0, 12, 1), image.NewUniform(color.White), image.Point{}, draw.Src)

	if img.Cell(0, 0) != 0x0F || img.Cell(1, 0) != 0xF0 {
		t.Errorf("row 0 = % X, want 0F F0", img.Pix[0:2])
	}
	if img.Cell(0, 1) != 0 {
		t.Errorf("row 1 = 0x%02X, want 0", img.Cell(0, 1))
	}
}
