package emulator

import (
	"errors"

	"github.com/ezrec/redstone/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc    uint16 // Program counter of the failing cycle.
	Ticks int    // Cycles completed before the failure.
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("pc %04x tick %d: %v", err.Pc, err.Ticks, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
