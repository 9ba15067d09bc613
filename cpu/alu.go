package cpu

import (
	"errors"
)

// SHIFT_MASK clamps shift counts to the word width.
const SHIFT_MASK = 0xf

// Binary applies a two argument ALU opcode to a pair of words.
// Arithmetic wraps modulo 2^16; division and modulo by zero are errors.
func Binary(op Opcode, a, b uint16) (output uint16, err error) {
	switch op {
	case ADD:
		output = a + b
	case SUB:
		output = a - b
	case MULT:
		output = a * b
	case DIV:
		if b == 0 {
			err = errors.Join(ErrArithmetic, ErrDivideByZero)
			return
		}
		output = a / b
	case MOD:
		if b == 0 {
			err = errors.Join(ErrArithmetic, ErrDivideByZero)
			return
		}
		output = a % b
	case OR:
		output = a | b
	case XOR:
		output = a ^ b
	case NOR:
		output = ^(a | b)
	case NAND:
		output = ^(a & b)
	case AND:
		output = a & b
	case SHIFTL:
		output = a << (b & SHIFT_MASK)
	case SHIFTR:
		output = a >> (b & SHIFT_MASK)
	default:
		err = ErrUnimplemented(op)
	}

	return
}

// Unary applies a single argument ALU opcode to a word.
func Unary(op Opcode, a uint16) (output uint16, err error) {
	switch op {
	case NOT:
		output = ^a
	default:
		err = ErrUnimplemented(op)
	}

	return
}
