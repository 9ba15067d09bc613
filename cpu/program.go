package cpu

import (
	"fmt"
	"iter"
)

// Segment is a run of words preloaded into RAM.
type Segment struct {
	Address uint16
	Words   []uint16
}

// Program is a raw memory image: one numeric opcode per instruction
// slot, three operand words per slot, and RAM preload segments.
type Program struct {
	Instructions []uint16
	Operands     []uint16
	Data         []Segment
}

// Slot is a decoded view of one instruction slot.
type Slot struct {
	Code     uint16
	Operands [OPERAND_COUNT]uint16
}

// Len returns the number of instruction slots.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Emit appends an instruction slot for op, encoded through the dictionary.
// Missing operands are zero.
func (prog *Program) Emit(dict *Dictionary, op Opcode, args ...uint16) (slot int, err error) {
	if len(args) > OPERAND_COUNT {
		err = ErrOperandCount
		return
	}

	code, err := dict.Encode(op)
	if err != nil {
		return
	}
	if code > 0xffff {
		err = fmt.Errorf("%v 0x%x: %w", op, code, ErrCodeWidth)
		return
	}

	var operands [OPERAND_COUNT]uint16
	copy(operands[:], args)

	slot = len(prog.Instructions)
	prog.Instructions = append(prog.Instructions, uint16(code))
	prog.Operands = append(prog.Operands, operands[:]...)

	return
}

// Patch rewrites operand index of an emitted slot.
func (prog *Program) Patch(slot int, index int, value uint16) (err error) {
	if slot < 0 || slot >= len(prog.Instructions) || index < 0 || index >= OPERAND_COUNT {
		err = fmt.Errorf("slot %d operand %d: %w", slot, index, ErrSlotInvalid)
		return
	}

	prog.Operands[slot*OPERAND_COUNT+index] = value
	return
}

// Store appends a RAM preload segment.
func (prog *Program) Store(address uint16, words ...uint16) {
	prog.Data = append(prog.Data, Segment{Address: address, Words: words})
}

// Slots returns an iterator over the instruction slots.
func (prog *Program) Slots() iter.Seq2[int, Slot] {
	return func(yield func(n int, slot Slot) bool) {
		for n, code := range prog.Instructions {
			slot := Slot{Code: code}
			base := n * OPERAND_COUNT
			if base < len(prog.Operands) {
				copy(slot.Operands[:], prog.Operands[base:])
			}
			if !yield(n, slot) {
				return
			}
		}
	}
}

// Validate checks the image against the state's memory regions.
func (prog *Program) Validate(state *State) (err error) {
	if len(prog.Operands) != OPERAND_COUNT*len(prog.Instructions) {
		err = fmt.Errorf("%d instructions, %d operands: %w", len(prog.Instructions), len(prog.Operands), ErrImageStride)
		return
	}

	if len(prog.Instructions) > len(state.Instruction) {
		err = fmt.Errorf("instructions: %w", ErrImageSize)
		return
	}

	if len(prog.Operands) > len(state.Operand) {
		err = fmt.Errorf("operands: %w", ErrImageSize)
		return
	}

	for _, seg := range prog.Data {
		if int(seg.Address)+len(seg.Words) > len(state.Ram) {
			err = fmt.Errorf("ram 0x%04x+%d: %w", seg.Address, len(seg.Words), ErrImageSize)
			return
		}
	}

	return
}

// Load copies the image into a state. The state is not modified when the
// image does not fit.
func (prog *Program) Load(state *State) (err error) {
	err = prog.Validate(state)
	if err != nil {
		return
	}

	copy(state.Instruction, prog.Instructions)
	copy(state.Operand, prog.Operands)
	for _, seg := range prog.Data {
		copy(state.Ram[seg.Address:], seg.Words)
	}

	return
}
