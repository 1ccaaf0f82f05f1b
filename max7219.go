// Package max7219 drives a daisy-chain of MAX7219 8x8 LED matrix modules via SPI.
//
// See the examples for how to use this package.
package max7219

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/max7219/image1bit"
	"github.com/go-logr/logr"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultChips is the chain length used when Opts is nil. It matches the
// common 4-in-1 module boards.
const DefaultChips = 4

// Opts is the configuration for the chain.
type Opts struct {
	// Chips is the number of daisy-chained modules (must be ≥1).
	Chips int

	// Logger receives transaction traces at V(2) and init steps at V(1).
	// The zero value discards everything.
	Logger logr.Logger
}

func (o *Opts) chips() (int, error) {
	if o == nil {
		return DefaultChips, nil
	}
	if o.Chips < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrChipCount, o.Chips)
	}
	return o.Chips, nil
}

// Dev is the device handle for a chain of MAX7219 matrix modules.
//
// Dev is not safe for concurrent use. Callers sharing it between goroutines
// must serialize access themselves.
type Dev struct {
	chain chain
	log   logr.Logger

	// shadow mirrors every digit register latched by this Dev. It lets
	// partial-chip writes keep the columns they do not cover.
	shadow *image1bit.HorizontalMSB
}

var _ display.Drawer = (*Dev)(nil)

// New creates a Dev that shifts frames through bus and frames each chain
// transaction with cs.
//
// New does not talk to the chips. Call Init before displaying anything.
//
// opts can be nil to use defaults (DefaultChips modules).
func New(bus Bus, cs Latch, opts *Opts) (*Dev, error) {
	chips, err := opts.chips()
	if err != nil {
		return nil, err
	}
	if bus == nil || cs == nil {
		return nil, errors.New("max7219: bus and chip select are required")
	}

	var log logr.Logger
	if opts != nil {
		log = opts.Logger
	}
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	return &Dev{
		chain:  chain{bus: bus, cs: cs, chips: chips, log: log},
		log:    log,
		shadow: image1bit.NewHorizontalMSB(image.Rect(0, 0, chips*Columns, Rows)),
	}, nil
}

// NewSPI creates a Dev connected via SPI, using cs as the LOAD line.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), MSB first,
// 8-bit transfers, with hardware chip select disabled (spi.NoCS). cs is driven
// high (idle) before NewSPI returns.
//
// opts can be nil to use defaults (DefaultChips modules).
func NewSPI(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if _, err := opts.chips(); err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, errors.New("max7219: chip select pin is required")
	}

	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("max7219: %w", err)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, &LatchError{Err: err}
	}
	return New(c, cs, opts)
}

// Chips returns the number of modules in the chain.
func (d *Dev) Chips() int {
	return d.chain.chips
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the logical surface: 8 columns per chip, 8 rows.
func (d *Dev) Bounds() image.Rectangle {
	return d.shadow.Rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%d chips}", d.chain.chips)
}

// WriteCommandAll writes data to reg on every chip in one transaction.
func (d *Dev) WriteCommandAll(reg Register, data byte) error {
	if err := reg.check(data); err != nil {
		return err
	}
	return d.sendAll(Frame{Reg: reg, Data: data})
}

// WriteCommandOne writes data to reg on chip only. Every other chip latches
// a no-op.
func (d *Dev) WriteCommandOne(chip int, reg Register, data byte) error {
	if err := reg.check(data); err != nil {
		return err
	}
	return d.sendOne(chip, Frame{Reg: reg, Data: data})
}

// WriteCommandSet writes data to reg on each chip in chips. Every other chip
// latches a no-op.
func (d *Dev) WriteCommandSet(chips []int, reg Register, data byte) error {
	if err := reg.check(data); err != nil {
		return err
	}
	return d.sendSet(chips, Frame{Reg: reg, Data: data})
}

// WriteRow sets one row of one chip to pattern. Bit 7 is the leftmost column.
func (d *Dev) WriteRow(chip, row int, pattern byte) error {
	reg, err := DigitRegister(row)
	if err != nil {
		return err
	}
	return d.sendOne(chip, Frame{Reg: reg, Data: pattern})
}

// WriteLine sets row row of every chip in one transaction. payload holds one
// pattern per chip, indexed by chip position.
func (d *Dev) WriteLine(row int, payload []byte) error {
	reg, err := DigitRegister(row)
	if err != nil {
		return err
	}
	if len(payload) != d.chain.chips {
		return fmt.Errorf("%w: got %d, want %d", ErrPayloadLength, len(payload), d.chain.chips)
	}
	t := d.chain.blank()
	for i, b := range payload {
		t[i] = Frame{Reg: reg, Data: b}
	}
	return d.transmit(t)
}

// ClearAll zeroes every row of every chip. It takes one transaction per row.
func (d *Dev) ClearAll() error {
	for row := 0; row < Rows; row++ {
		if err := d.sendAll(Frame{Reg: Digit0 + Register(row)}); err != nil {
			return err
		}
	}
	return nil
}

// Init runs the power-up sequence: shut down, scan all 8 digits, raw bitmap
// decoding, display test off, set intensity, clear, then enable.
//
// It is never called implicitly. The chips power up in shutdown with
// undefined digit registers, so Init must run once before the display
// content means anything.
func (d *Dev) Init(intensity byte) error {
	if err := Intensity.check(intensity); err != nil {
		return err
	}
	steps := []Frame{
		{Reg: Shutdown, Data: ShutdownMode},
		{Reg: ScanLimit, Data: ScanAll},
		{Reg: DecodeMode, Data: DecodeNone},
		{Reg: DisplayTest, Data: 0},
		{Reg: Intensity, Data: intensity},
	}
	for _, f := range steps {
		d.log.V(1).Info("init", "step", f)
		if err := d.sendAll(f); err != nil {
			return err
		}
	}
	d.log.V(1).Info("init", "step", "clear")
	if err := d.ClearAll(); err != nil {
		return err
	}
	d.log.V(1).Info("init", "step", Frame{Reg: Shutdown, Data: NormalOperation})
	return d.sendAll(Frame{Reg: Shutdown, Data: NormalOperation})
}

// SetIntensity sets the brightness of every chip (0-15).
func (d *Dev) SetIntensity(level byte) error {
	return d.WriteCommandAll(Intensity, level)
}

// TestDisplay turns every LED on at full brightness, overriding the digit
// registers, until called with false.
func (d *Dev) TestDisplay(on bool) error {
	var v byte
	if on {
		v = 1
	}
	return d.WriteCommandAll(DisplayTest, v)
}

// Power leaves (true) or enters (false) shutdown mode on every chip. Digit
// registers are retained while shut down.
func (d *Dev) Power(on bool) error {
	v := ShutdownMode
	if on {
		v = NormalOperation
	}
	return d.WriteCommandAll(Shutdown, v)
}

// Halt blanks the display by putting every chip in shutdown mode.
// Power(true) or Init brings it back.
func (d *Dev) Halt() error {
	return d.Power(false)
}

func (d *Dev) sendAll(f Frame) error {
	return d.transmit(d.chain.all(f))
}

func (d *Dev) sendOne(chip int, f Frame) error {
	t, err := d.chain.one(chip, f)
	if err != nil {
		return err
	}
	return d.transmit(t)
}

func (d *Dev) sendSet(chips []int, f Frame) error {
	t, err := d.chain.set(chips, f)
	if err != nil {
		return err
	}
	return d.transmit(t)
}

// transmit sends t and records the digit registers it latched.
func (d *Dev) transmit(t frames) error {
	if err := d.chain.send(t); err != nil {
		return err
	}
	for chip, f := range t {
		if row, ok := f.Reg.row(); ok {
			d.shadow.SetCell(chip, row, f.Data)
		}
	}
	return nil
}
