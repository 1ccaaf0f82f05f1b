package max7219

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"periph.io/x/conn/v3/gpio"
)

// Bus shifts bytes into the first chip of the chain. spi.Conn satisfies it.
//
// The connection must leave chip select alone (spi.NoCS): the driver frames a
// whole chain transaction with its own Latch, and a select toggle after every
// byte would latch half-shifted frames.
type Bus interface {
	Tx(w, r []byte) error
}

// Latch drives the chain's LOAD (chip select) line. gpio.PinOut satisfies it.
// The line is active low and the chips latch on its rising edge.
type Latch interface {
	Out(l gpio.Level) error
}

// Frame is one register write addressed to a single chip.
type Frame struct {
	Reg  Register
	Data byte
}

func (f Frame) String() string {
	return fmt.Sprintf("%v=0x%02X", f.Reg, f.Data)
}

// frames is a full-width chain transaction indexed by chip position. The zero
// Frame is a no-op, so a freshly made frames leaves every chip untouched.
type frames []Frame

// chain encodes and shifts chain transactions. Chip 0 is nearest the
// controller; its frame is shifted last because the first frame shifted ends
// up in the farthest chip.
type chain struct {
	bus   Bus
	cs    Latch
	chips int
	log   logr.Logger

	w, r [1]byte
}

// blank returns a transaction of no-op frames.
func (c *chain) blank() frames {
	return make(frames, c.chips)
}

// all returns a transaction carrying f to every chip.
func (c *chain) all(f Frame) frames {
	t := c.blank()
	for i := range t {
		t[i] = f
	}
	return t
}

// one returns a transaction carrying f to chip only.
func (c *chain) one(chip int, f Frame) (frames, error) {
	return c.set([]int{chip}, f)
}

// set returns a transaction carrying f to every chip in chips.
func (c *chain) set(chips []int, f Frame) (frames, error) {
	t := c.blank()
	for _, i := range chips {
		if i < 0 || i >= c.chips {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrChipIndex, i, c.chips)
		}
		t[i] = f
	}
	return t, nil
}

// send shifts t between a single select assert and release. The line is
// released even when the bus fails.
func (c *chain) send(t frames) (err error) {
	if len(t) != c.chips {
		return fmt.Errorf("max7219: transaction has %d frames for %d chips", len(t), c.chips)
	}
	c.log.V(2).Info("chain transaction", "frames", t)

	defer func() {
		if rerr := c.cs.Out(gpio.High); rerr != nil {
			le := &LatchError{Err: rerr}
			if err == nil {
				err = le
			} else {
				err = errors.Join(err, le)
			}
		}
	}()
	if err := c.cs.Out(gpio.Low); err != nil {
		return &LatchError{Assert: true, Err: err}
	}

	n := 0
	for chip := c.chips - 1; chip >= 0; chip-- {
		for _, b := range [2]byte{byte(t[chip].Reg), t[chip].Data} {
			c.w[0] = b
			if err := c.bus.Tx(c.w[:], c.r[:]); err != nil {
				return &BusError{Chip: chip, Byte: n, Err: err}
			}
			n++
		}
	}
	return nil
}
