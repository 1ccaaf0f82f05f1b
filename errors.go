package max7219

import (
	"errors"
	"fmt"
)

// Range errors. They are detected before any bus activity, so a call that
// returns one of them has not touched the chain.
var (
	ErrChipCount     = errors.New("max7219: chip count must be at least 1")
	ErrChipIndex     = errors.New("max7219: chip index out of range")
	ErrRow           = errors.New("max7219: row out of range")
	ErrRegister      = errors.New("max7219: unknown register")
	ErrData          = errors.New("max7219: data out of range for register")
	ErrPayloadLength = errors.New("max7219: payload length must equal chip count")
)

// BusError reports a byte transfer that failed mid-transaction. The remaining
// bytes of the transaction were not sent.
type BusError struct {
	Chip int   // chip position whose frame was being shifted
	Byte int   // byte offset within the transaction
	Err  error // error returned by the bus
}

func (e *BusError) Error() string {
	return fmt.Sprintf("max7219: bus transfer failed at byte %d (chip %d): %v", e.Byte, e.Chip, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// LatchError reports a chip-select failure. When Assert is false the line could
// not be released after a transaction and the latched state of the chain is
// unknown.
type LatchError struct {
	Assert bool
	Err    error
}

func (e *LatchError) Error() string {
	if e.Assert {
		return fmt.Sprintf("max7219: failed to assert chip select: %v", e.Err)
	}
	return fmt.Sprintf("max7219: failed to release chip select, latch state unknown: %v", e.Err)
}

func (e *LatchError) Unwrap() error {
	return e.Err
}
