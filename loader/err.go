package loader

import (
	"errors"

	"github.com/ezrec/redstone/translate"
)

var f = translate.From

var (
	// Opcode table errors
	ErrTableFields = errors.New(f("expected 'OPCODE NUMBER'"))

	// Program errors
	ErrProgramFormat = errors.New(f("unknown program format"))
	ErrImageEmpty    = errors.New(f("image empty"))
	ErrSegmentText   = errors.New(f("segment has both words and text"))
	ErrWordRange     = errors.New(f("word out of range"))
)

// ErrSyntax locates an error in a line oriented input.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrConfigKey is a machine configuration key that is not understood.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("configuration key '%v' unknown", string(err))
}
