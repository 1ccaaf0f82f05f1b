// Package max7219test simulates a daisy-chain of MAX7219 chips for tests.
//
// A Chain is both the bus and the LOAD line of a max7219.Dev: bytes given to
// Tx enter the shift register of chip 0 and ripple towards the last chip, and
// a rising edge on Out latches whatever 16-bit frame each chip holds at that
// moment, exactly like the hardware. A short or misaligned transaction is
// therefore latched into the wrong chips, the same way it would be on a real
// chain.
package max7219test

import (
	"fmt"
	"image"

	"github.com/flavioheleno/max7219/image1bit"
	"periph.io/x/conn/v3/gpio"
)

// Chain is an in-memory chain of MAX7219 chips.
type Chain struct {
	// Registers is the latched register file of every chip, indexed by chip
	// position (0 is nearest the controller) then register address.
	Registers [][16]byte

	// Transactions holds the bytes shifted during each completed select
	// window, in the order they were shifted.
	Transactions [][]byte

	// TxErr, when set, is returned by Tx instead of shifting byte number
	// TxFailAt (counted from 0 across every Tx call).
	TxErr    error
	TxFailAt int

	// AssertErr and ReleaseErr are returned by Out when driving the line low
	// and high respectively. A failed Out leaves the level unchanged.
	AssertErr  error
	ReleaseErr error

	level   gpio.Level
	shift   []byte
	pending []byte
	sent    int
}

// New returns a chain of chips modules with every register zeroed and the
// LOAD line idle (high).
func New(chips int) *Chain {
	if chips < 1 {
		panic("max7219test: chips must be at least 1")
	}
	return &Chain{
		Registers: make([][16]byte, chips),
		level:     gpio.High,
		shift:     make([]byte, 2*chips),
	}
}

func (c *Chain) String() string {
	return fmt.Sprintf("max7219test.Chain{%d chips}", len(c.Registers))
}

// Chips returns the chain length.
func (c *Chain) Chips() int {
	return len(c.Registers)
}

// Level returns the current level of the LOAD line.
func (c *Chain) Level() gpio.Level {
	return c.level
}

// Shifted returns the number of bytes shifted so far.
func (c *Chain) Shifted() int {
	return c.sent
}

// Tx shifts w into chip 0. r, when given, receives the bytes falling out of
// the last chip.
func (c *Chain) Tx(w, r []byte) error {
	for i, b := range w {
		if c.TxErr != nil && c.sent == c.TxFailAt {
			return c.TxErr
		}
		c.sent++
		out := c.shift[0]
		copy(c.shift, c.shift[1:])
		c.shift[len(c.shift)-1] = b
		if i < len(r) {
			r[i] = out
		}
		if c.level == gpio.Low {
			c.pending = append(c.pending, b)
		}
	}
	return nil
}

// Out drives the LOAD line. A low to high transition latches every chip.
func (c *Chain) Out(l gpio.Level) error {
	if l == gpio.Low && c.AssertErr != nil {
		return c.AssertErr
	}
	if l == gpio.High && c.ReleaseErr != nil {
		return c.ReleaseErr
	}
	if c.level == gpio.Low && l == gpio.High {
		c.latch()
	}
	c.level = l
	return nil
}

func (c *Chain) latch() {
	c.Transactions = append(c.Transactions, c.pending)
	c.pending = nil

	n := len(c.Registers)
	for chip := range c.Registers {
		// The frame shifted last sits in chip 0.
		off := 2 * (n - 1 - chip)
		reg := c.shift[off] & 0x0f
		if reg == 0 {
			continue
		}
		c.Registers[chip][reg] = c.shift[off+1]
	}
}

// Row returns the latched pattern of row row (digit register row+1) of chip.
func (c *Chain) Row(chip, row int) byte {
	return c.Registers[chip][1+row]
}

// Surface returns the latched digit registers as an image, chip 0 leftmost.
func (c *Chain) Surface() *image1bit.HorizontalMSB {
	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 8*len(c.Registers), 8))
	for chip := range c.Registers {
		for row := 0; row < 8; row++ {
			img.SetCell(chip, row, c.Row(chip, row))
		}
	}
	return img
}
