package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Emit(t *testing.T) {
	assert := assert.New(t)

	dict, err := NewDictionary([]Entry{{"LOAD", 7}, {"ADD", 0x20}, {"HALT", 0xff}})
	assert.NoError(err)

	prog := &Program{}

	slot, err := prog.Emit(dict, LOAD, 46368, 2)
	assert.NoError(err)
	assert.Equal(0, slot)

	slot, err = prog.Emit(dict, ADD, 0, 1, 0)
	assert.NoError(err)
	assert.Equal(1, slot)

	slot, err = prog.Emit(dict, HALT)
	assert.NoError(err)
	assert.Equal(2, slot)

	assert.Equal([]uint16{7, 0x20, 0xff}, prog.Instructions)
	assert.Equal([]uint16{46368, 2, 0, 0, 1, 0, 0, 0, 0}, prog.Operands)
	assert.Equal(3, prog.Len())
}

func TestProgram_Emit_Errors(t *testing.T) {
	assert := assert.New(t)

	dict, err := NewDictionary([]Entry{{"ADD", 1}})
	assert.NoError(err)

	prog := &Program{}

	_, err = prog.Emit(dict, ADD, 1, 2, 3, 4)
	assert.ErrorIs(err, ErrOperandCount)

	_, err = prog.Emit(dict, SUB, 1, 2, 3)
	assert.ErrorIs(err, ErrLookup)
	assert.Equal(ErrLookupOpcode(SUB), err)

	wide, err := NewDictionary([]Entry{{"NOP", 0x10000}})
	assert.NoError(err)
	_, err = prog.Emit(wide, NOP)
	assert.ErrorIs(err, ErrCodeWidth)

	assert.Equal(0, prog.Len())
	assert.Empty(prog.Operands)
}

func TestProgram_Patch(t *testing.T) {
	assert := assert.New(t)

	dict, err := NewDictionary(testEntries())
	assert.NoError(err)

	prog := &Program{}
	jump, _ := prog.Emit(dict, JMPZ)
	prog.Emit(dict, NOP)

	assert.NoError(prog.Patch(jump, 0, 2))
	assert.Equal(uint16(2), prog.Operands[0])

	assert.ErrorIs(prog.Patch(2, 0, 1), ErrSlotInvalid)
	assert.ErrorIs(prog.Patch(-1, 0, 1), ErrSlotInvalid)
	assert.ErrorIs(prog.Patch(0, 3, 1), ErrSlotInvalid)
}

func TestProgram_Slots(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []uint16{1, 2},
		Operands:     []uint16{10, 11, 12, 20, 21, 22},
	}

	var slots []Slot
	for n, slot := range prog.Slots() {
		assert.Equal(len(slots), n)
		slots = append(slots, slot)
	}

	assert.Equal([]Slot{
		{Code: 1, Operands: [3]uint16{10, 11, 12}},
		{Code: 2, Operands: [3]uint16{20, 21, 22}},
	}, slots)
}

func TestProgram_Load(t *testing.T) {
	assert := assert.New(t)

	state, err := NewState(Config{Instructions: 4, Operands: 12, Ram: 8, Registers: 2})
	assert.NoError(err)

	prog := &Program{
		Instructions: []uint16{1, 2},
		Operands:     []uint16{10, 11, 12, 20, 21, 22},
	}
	prog.Store(6, 'H', 'i')

	assert.NoError(prog.Load(state))
	assert.Equal([]uint16{1, 2, 0, 0}, state.Instruction)
	assert.Equal([]uint16{10, 11, 12, 20, 21, 22, 0, 0, 0, 0, 0, 0}, state.Operand)
	assert.Equal([]uint16{0, 0, 0, 0, 0, 0, 'H', 'i'}, state.Ram)
}

func TestProgram_Load_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		prog Program
		err  error
	}){
		{"stride", Program{Instructions: []uint16{1}, Operands: []uint16{1, 2}}, ErrImageStride},
		{"instructions", Program{Instructions: make([]uint16, 5), Operands: make([]uint16, 15)}, ErrImageSize},
		{"operands", Program{Instructions: make([]uint16, 4), Operands: make([]uint16, 12)}, ErrImageSize},
		{"ram", Program{Data: []Segment{{Address: 7, Words: []uint16{1, 2}}}}, ErrImageSize},
		{"ram wrap", Program{Data: []Segment{{Address: 0xffff, Words: []uint16{1}}}}, ErrImageSize},
	}

	for _, entry := range table {
		state, err := NewState(Config{Instructions: 4, Operands: 10, Ram: 8, Registers: 2})
		assert.NoError(err)
		state.Ram[0] = 0x1234
		before := state.Clone()

		err = entry.prog.Load(state)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(before, state, entry.name)
	}
}
