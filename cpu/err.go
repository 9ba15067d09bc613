package cpu

import (
	"errors"

	"github.com/ezrec/redstone/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrConfigSize      = errors.New(f("region size out of range"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrCodeDuplicate   = errors.New(f("numeric code duplicated"))

	// Dictionary lookup errors
	ErrLookup = errors.New(f("lookup"))

	// Cycle errors
	ErrFetchRange     = errors.New(f("fetch out of range"))
	ErrDecode         = errors.New(f("decode"))
	ErrArithmetic     = errors.New(f("arithmetic"))
	ErrDivideByZero   = errors.New(f("divide by zero"))
	ErrRegisterRange  = errors.New(f("register out of range"))
	ErrRamRange       = errors.New(f("ram address out of range"))
	ErrOperandRange   = errors.New(f("operand address out of range"))
	ErrConsoleMissing = errors.New(f("console missing"))

	// Stack errors
	ErrStackFull = errors.New(f("stack full"))

	// Program image errors
	ErrOperandCount = errors.New(f("too many operands"))
	ErrImageStride  = errors.New(f("operand count is not three per instruction"))
	ErrImageSize    = errors.New(f("image larger than memory"))
	ErrSlotInvalid  = errors.New(f("slot invalid"))
	ErrCodeWidth    = errors.New(f("opcode code wider than an instruction word"))
)

// ErrOpcodeName is a symbolic opcode name that is not defined.
type ErrOpcodeName string

func (err ErrOpcodeName) Error() string {
	return f("opcode '%v' unknown", string(err))
}

func (err ErrOpcodeName) Is(target error) bool {
	return target == ErrOpcodeUnknown
}

// ErrConfiguration names the first opcode entry that could not be added
// to a Dictionary.
type ErrConfiguration struct {
	Index int
	Entry Entry
	Err   error
}

func (err *ErrConfiguration) Error() string {
	return f("opcode entry %d '%v %v' %v", err.Index, err.Entry.Name, err.Entry.Code, err.Err)
}

func (err *ErrConfiguration) Unwrap() error {
	return err.Err
}

// ErrLookupOpcode is a symbolic opcode missing from a Dictionary.
type ErrLookupOpcode Opcode

func (err ErrLookupOpcode) Error() string {
	return f("opcode %v has no numeric code", Opcode(err).String())
}

func (err ErrLookupOpcode) Is(target error) bool {
	return target == ErrLookup
}

// ErrLookupCode is a numeric code missing from a Dictionary.
type ErrLookupCode uint

func (err ErrLookupCode) Error() string {
	return f("numeric code %d (0x%04x) has no opcode", uint(err), uint(err))
}

func (err ErrLookupCode) Is(target error) bool {
	return target == ErrLookup
}

// ErrUnimplemented is a recognized opcode without a handler.
type ErrUnimplemented Opcode

func (err ErrUnimplemented) Error() string {
	return f("opcode %v not implemented", Opcode(err).String())
}

func (err ErrUnimplemented) Is(target error) (ok bool) {
	_, ok = target.(ErrUnimplemented)
	return
}

// Stage is the step of a cycle that failed.
type Stage int

const (
	STAGE_FETCH   = Stage(0)
	STAGE_DECODE  = Stage(1)
	STAGE_EXECUTE = Stage(2)
)

func (stage Stage) String() string {
	switch stage {
	case STAGE_FETCH:
		return "fetch"
	case STAGE_DECODE:
		return "decode"
	case STAGE_EXECUTE:
		return "execute"
	}
	return "stage?"
}

// ErrCycle reports the failed stage of a cycle, and the opcode involved
// once one has been decoded.
type ErrCycle struct {
	Stage  Stage
	Pc     uint16
	Opcode Opcode
	Err    error
}

func (err *ErrCycle) Error() string {
	if err.Stage == STAGE_EXECUTE {
		return f("pc 0x%04x %v %v: %v", err.Pc, err.Stage.String(), err.Opcode.String(), err.Err)
	}
	return f("pc 0x%04x %v: %v", err.Pc, err.Stage.String(), err.Err)
}

func (err *ErrCycle) Unwrap() error {
	return err.Err
}
