// Package max7219 drives a chain of MAX7219 8×8 LED dot-matrix modules via SPI.
//
// The MAX7219 is a serially interfaced LED driver with a 16-bit shift register
// per chip. Chips are daisy-chained: DOUT of one module feeds DIN of the next,
// and every chip shares the clock and the LOAD (chip select) line. This driver
// treats the chain as one logical surface, 8 columns per chip and 8 rows high,
// and implements the display.Drawer interface from periph.io.
//
// # Chain Conventions
//
// - Chip 0 is the module nearest the controller and shows the leftmost
// 8 columns. Logical column c lives on chip c/8.
// - Bit 7 of a row byte is the leftmost column of that chip.
// - Row r of a chip is held by digit register r+1 (Digit0 through Digit7).
//
// These conventions are fixed. Modules wired mirrored can use
// font8x8.Rotate90 or their own glyph table.
//
// # Hardware Connection
//
//	Module Pin → System Pin
//	VCC        → 5V
//	GND        → GND
//	DIN        → SPI Data (MOSI)
//	CLK        → SPI Clock (SCLK)
//	CS/LOAD    → GPIO (any available pin)
//
// The driver frames each chain transaction with the GPIO itself, so the SPI
// port is opened with spi.NoCS. The hardware chip select of the port may be
// left unconnected.
//
// # Wire Protocol
//
// Every transaction shifts exactly one 16-bit frame (register byte, then data
// byte, MSB first) per chip between LOAD falling and LOAD rising. Frames are
// shifted farthest chip first so that chip 0 receives the last one. Chips that
// are not addressed receive a no-op frame (register 0x00), which leaves their
// latched state untouched. The SPI port runs at 10MHz in Mode0, 8 bits per
// word.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/max7219"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI port
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		// Get LOAD GPIO pin
//		cs := gpioreg.ByName("GPIO8")
//
//		// Create device for a 4-in-1 module board
//		dev, _ := max7219.NewSPI(p, cs, &max7219.Opts{Chips: 4})
//		defer dev.Halt()
//
//		// Power-up sequence with low brightness
//		dev.Init(1)
//
//		// Render text starting at column 0
//		dev.WriteStrAtPos("Hi!", 0)
//	}
//
// # Addressing
//
// Commands can target every chip, one chip, or a set of chips, always in a
// single transaction:
//
//	dev.WriteCommandAll(max7219.Intensity, 8)
//	dev.WriteCommandOne(2, max7219.Intensity, 15)
//	dev.WriteCommandSet([]int{0, 3}, max7219.Digit0, 0xff)
//
// Register data is range checked before anything is sent: Intensity accepts
// 0-15, ScanLimit 0-7, Shutdown and DisplayTest 0-1.
//
// # Text and Bitmaps
//
// WriteStrAtPos and WriteGlyphsAt take a column offset that may be negative or
// past the end of the chain. Columns that fall outside the surface are
// dropped. Columns of a partly covered chip that the text does not reach keep
// what was there, because the driver keeps a shadow copy of every digit
// register it has latched. Each text write takes at most one transaction per
// row.
//
// ScrollText moves text across the surface one column at a time:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	dev.ScrollText(ctx, "Hello, World!", 50*time.Millisecond)
//
// Draw accepts any image.Image; pixels are converted with image1bit.BitModel.
//
// # Errors
//
// Range errors wrap the sentinel errors of this package (ErrChipIndex, ErrRow,
// ErrData and friends) and are reported before the bus is touched. A failed
// byte transfer yields a *BusError naming the chip whose frame was being
// shifted. The LOAD line is released on every path; a failure to drive it is
// reported as a *LatchError.
//
// # Concurrency
//
// A Dev is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219
