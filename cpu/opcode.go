package cpu

import (
	"iter"
)

// Opcode is a symbolic opcode. The set is closed; only the numeric
// encoding of each opcode is configurable, through a Dictionary.
type Opcode int

//go:generate go tool stringer -type=Opcode
const (
	NOP = Opcode(iota)
	ADD
	SUB
	MULT
	DIV
	MOD

	OR
	XOR
	NOR
	NAND
	AND
	NOT
	SHIFTL
	SHIFTR

	LOAD // LOAD imm, reg

	// Stack machine, recognized but not implemented.
	HPUSH
	HPOP
	CALLR
	RETURN

	RSTORE // RSTORE reg, ram
	RCOPY  // RCOPY ram, reg
	ICOPY  // ICOPY rom, reg

	JMP
	JMPZ

	PRINT // PRINT ram, length

	HALT
)

const opcodeCount = int(HALT) + 1

// OPERAND_COUNT is the number of operand words per instruction slot.
const OPERAND_COUNT = 3

// Opcodes returns an iterator over every symbolic opcode, in numeric order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(op Opcode) bool) {
		for op := NOP; int(op) < opcodeCount; op++ {
			if !yield(op) {
				return
			}
		}
	}
}

var opcodeByName = func() (names map[string]Opcode) {
	names = make(map[string]Opcode, opcodeCount)
	for op := range Opcodes() {
		names[op.String()] = op
	}
	return
}()

// ParseOpcode returns the opcode with the exact symbolic name.
func ParseOpcode(name string) (op Opcode, err error) {
	op, ok := opcodeByName[name]
	if !ok {
		err = ErrOpcodeName(name)
		return
	}

	return
}

// Valid returns true if the opcode is one of the defined symbolic opcodes.
func (op Opcode) Valid() bool {
	return op >= NOP && int(op) < opcodeCount
}

// Binary returns true for the opcodes handled by the binary register transform.
func (op Opcode) Binary() bool {
	switch op {
	case ADD, SUB, MULT, DIV, MOD, OR, XOR, NOR, NAND, AND, SHIFTL, SHIFTR:
		return true
	}
	return false
}

// Unary returns true for the opcodes handled by the unary register transform.
func (op Opcode) Unary() bool {
	return op == NOT
}

// Implemented returns false for opcodes that have no handler.
func (op Opcode) Implemented() bool {
	switch op {
	case HPUSH, HPOP, CALLR, RETURN, HALT:
		return false
	}
	return op.Valid()
}
