package max7219

import (
	"fmt"
)

// Rows is the number of digit registers (matrix rows) per chip.
const Rows = 8

// Columns is the number of LED columns per chip.
const Columns = 8

// Register is the address half of a MAX7219 frame.
type Register byte

const (
	// NoOp is latched without effect. Chips that are not the target of a
	// chain transaction receive it.
	NoOp Register = 0x0

	// Digit0 through Digit7 hold the pattern of matrix rows 0 through 7.
	Digit0 Register = 0x1
	Digit1 Register = 0x2
	Digit2 Register = 0x3
	Digit3 Register = 0x4
	Digit4 Register = 0x5
	Digit5 Register = 0x6
	Digit6 Register = 0x7
	Digit7 Register = 0x8

	DecodeMode  Register = 0x9
	Intensity   Register = 0xa
	ScanLimit   Register = 0xb
	Shutdown    Register = 0xc
	DisplayTest Register = 0xf
)

// Data values for the control registers.
const (
	// DecodeNone makes every digit register a raw 8-bit row pattern.
	DecodeNone byte = 0x00
	// DecodeB enables Code B decoding on all digits (7-segment use).
	DecodeB byte = 0xff

	MinIntensity byte = 0x00
	MaxIntensity byte = 0x0f

	// ScanAll scans all 8 digits.
	ScanAll byte = 0x07

	ShutdownMode    byte = 0x00
	NormalOperation byte = 0x01
)

// DigitRegister returns the digit register that holds matrix row row.
func DigitRegister(row int) (Register, error) {
	if row < 0 || row >= Rows {
		return NoOp, fmt.Errorf("%w: %d", ErrRow, row)
	}
	return Digit0 + Register(row), nil
}

// row returns the matrix row held by a digit register.
func (r Register) row() (int, bool) {
	if r < Digit0 || r > Digit7 {
		return 0, false
	}
	return int(r - Digit0), true
}

// check rejects registers outside the MAX7219 map and data outside the range
// the register documents.
func (r Register) check(data byte) error {
	var limit byte
	switch {
	case r >= Digit0 && r <= Digit7, r == DecodeMode:
		return nil
	case r == NoOp:
		limit = 0
	case r == Intensity:
		limit = MaxIntensity
	case r == ScanLimit:
		limit = ScanAll
	case r == Shutdown, r == DisplayTest:
		limit = 1
	default:
		return fmt.Errorf("%w: 0x%02X", ErrRegister, byte(r))
	}
	if data > limit {
		return fmt.Errorf("%w: %v accepts 0-%d, got %d", ErrData, r, limit, data)
	}
	return nil
}

func (r Register) String() string {
	if row, ok := r.row(); ok {
		return fmt.Sprintf("Digit%d", row)
	}
	switch r {
	case NoOp:
		return "NoOp"
	case DecodeMode:
		return "DecodeMode"
	case Intensity:
		return "Intensity"
	case ScanLimit:
		return "ScanLimit"
	case Shutdown:
		return "Shutdown"
	case DisplayTest:
		return "DisplayTest"
	}
	return fmt.Sprintf("Register(0x%02X)", byte(r))
}
