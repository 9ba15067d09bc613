package emulator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/redstone/cpu"
)

var testEntries = []cpu.Entry{
	{Name: "NOP", Code: 0},
	{Name: "LOAD", Code: 1},
	{Name: "ADD", Code: 2},
	{Name: "SUB", Code: 3},
	{Name: "JMP", Code: 4},
	{Name: "JMPZ", Code: 5},
	{Name: "PRINT", Code: 6},
	{Name: "CALLR", Code: 7},
	{Name: "HALT", Code: 8},
}

var testConfig = cpu.Config{
	Instructions: 16,
	Operands:     16 * cpu.OPERAND_COUNT,
	Ram:          16,
	Registers:    4,
	DataStack:    4,
	CallStack:    4,
}

type testSlot struct {
	op      cpu.Opcode
	a, b, c uint16
}

// newTestEmulator loads the slots, and captures the console output.
func newTestEmulator(t *testing.T, slots []testSlot) (emu *Emulator, output *bytes.Buffer) {
	emu, err := NewEmulator(testConfig, testEntries)
	if err != nil {
		t.Fatal(err)
	}

	for _, slot := range slots {
		_, err = emu.Program.Emit(emu.Cpu.Dictionary, slot.op, slot.a, slot.b, slot.c)
		if err != nil {
			t.Fatal(err)
		}
	}

	output = &bytes.Buffer{}
	emu.Tape.Output = output

	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(cpu.DefaultConfig(), testEntries)
	assert.NoError(err)
	assert.False(emu.Verbose)
	assert.Equal(0, emu.Program.Len())
	assert.Equal(&emu.Tape, emu.Cpu.Console)

	_, err = NewEmulator(cpu.DefaultConfig(), []cpu.Entry{{Name: "FROB", Code: 1}})
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)

	_, err = NewEmulator(cpu.Config{Ram: -1}, testEntries)
	assert.ErrorIs(err, cpu.ErrConfigSize)
}

func TestEmulator_Halt(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.LOAD, 7, 0, 0},
		{cpu.HALT, 0, 0, 0},
	})

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Halted)
	assert.Equal(uint16(1), emu.Pc)
	assert.Equal(uint16(7), emu.Register[0])

	// Halted stays halted.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(1, emu.Ticks)
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	// Count r0 down from 3 to 0.
	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.LOAD, 3, 0, 0},
		{cpu.LOAD, 1, 1, 0},
		{cpu.SUB, 0, 1, 0},
		{cpu.JMPZ, 5, 0, 0},
		{cpu.JMP, 2, 0, 0},
		{cpu.HALT, 0, 0, 0},
	})

	assert.NoError(emu.Run())
	assert.True(emu.Halted)
	assert.Equal(uint16(0), emu.Register[0])
	assert.Equal(2+3*3-1, emu.Ticks)
}

func TestEmulator_Runtime(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.NOP, 0, 0, 0},
		{cpu.CALLR, 0, 0, 0},
	})

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrUnimplemented(cpu.CALLR))
	assert.False(emu.Halted)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(uint16(1), runtime.Pc)
		assert.Equal(1, runtime.Ticks)
	}

	var cycle *cpu.ErrCycle
	if assert.True(errors.As(err, &cycle)) {
		assert.Equal(cpu.CALLR, cycle.Opcode)
	}
}

func TestEmulator_FetchRange(t *testing.T) {
	assert := assert.New(t)

	// Runs off the end of the instruction store.
	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.JMP, 15, 0, 0},
	})
	emu.Instruction[15] = 0

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrFetchRange)
	assert.Equal(uint16(16), emu.Pc)
}

func TestEmulator_TickLimit(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.JMP, 0, 0, 0},
	})
	emu.MaxTicks = 100

	err := emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(100, emu.Ticks)
}

func TestEmulator_Print(t *testing.T) {
	assert := assert.New(t)

	emu, output := newTestEmulator(t, []testSlot{
		{cpu.PRINT, 0, 2, 0},
		{cpu.PRINT, 2, 3, 0},
		{cpu.HALT, 0, 0, 0},
	})
	emu.Program.Store(0, 'H', 'i', 'B', 'y', 'e')
	assert.NoError(emu.Reset())

	assert.NoError(emu.Run())
	assert.Equal("Hi\nBye\n", output.String())
	assert.Equal(2, emu.Tape.Lines)
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.LOAD, 9, 0, 0},
		{cpu.HALT, 0, 0, 0},
	})

	assert.NoError(emu.Run())
	assert.True(emu.Halted)

	assert.NoError(emu.Reset())
	assert.False(emu.Halted)
	assert.Equal(0, emu.Ticks)
	assert.Equal(uint16(0), emu.Pc)
	assert.Equal(uint16(0), emu.Register[0])
	assert.Equal(uint16(1), emu.Instruction[0])

	emu.Program.Store(15, 1, 2)
	assert.ErrorIs(emu.Reset(), cpu.ErrImageSize)
}

func TestEmulator_Listing(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(t, []testSlot{
		{cpu.LOAD, 0x1234, 2, 0},
		{cpu.HALT, 0, 0, 0},
	})
	emu.Program.Instructions = append(emu.Program.Instructions, 0x99)
	emu.Program.Operands = append(emu.Program.Operands, 1, 2, 3)

	var lines []string
	for _, line := range emu.Listing() {
		lines = append(lines, line)
	}

	assert.Equal([]string{
		"0000: LOAD   1234 0002 0000",
		"0001: HALT   0000 0000 0000",
		"0002: .word 0099 0001 0002 0003",
	}, lines)
}
