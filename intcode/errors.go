package intcode

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks errors caused by the program image.
	ErrMalformed = errors.New("malformed program")
	// ErrProtocol marks errors caused by the caller driving the machine wrongly.
	ErrProtocol = errors.New("protocol violation")
)

var (
	ErrNegativeWord    = fmt.Errorf("%w: negative instruction word", ErrMalformed)
	ErrUnknownOpcode   = fmt.Errorf("%w: unknown opcode", ErrMalformed)
	ErrInvalidMode     = fmt.Errorf("%w: invalid parameter mode", ErrMalformed)
	ErrImmediateWrite  = fmt.Errorf("%w: immediate mode write target", ErrMalformed)
	ErrNegativeAddress = fmt.Errorf("%w: negative address", ErrMalformed)
	ErrAddressTooLarge = fmt.Errorf("%w: address beyond memory limit", ErrMalformed)
	ErrNoPhaseSlot     = fmt.Errorf("%w: program does not start with an input instruction", ErrMalformed)
)

var (
	ErrNoInput = fmt.Errorf("%w: input requested but none available", ErrProtocol)
	ErrHalted  = fmt.Errorf("%w: execution already terminated", ErrProtocol)
)

// Fault reports a data error together with the address and raw word of the
// instruction being executed.
type Fault struct {
	Addr int64
	Raw  int64
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at %d (word %d): %v", f.Addr, f.Raw, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
