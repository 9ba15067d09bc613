package cpu

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

const K = 1024

// MAX_INSTRUCTIONS is the largest instruction store. The program counter
// is one word wide, and it must be able to step past the last slot.
const MAX_INSTRUCTIONS = math.MaxUint16

// Config sizes, in words, of the memory regions of a State.
type Config struct {
	Instructions int `toml:"instructions"` // Instruction store, one opcode per slot.
	Operands     int `toml:"operands"`     // Operand store, three words per slot.
	Ram          int `toml:"ram"`          // Data memory.
	Registers    int `toml:"registers"`    // Register file.
	DataStack    int `toml:"data_stack"`   // Data stack depth.
	CallStack    int `toml:"call_stack"`   // Function call stack depth.
}

// DefaultConfig returns the default region sizes.
func DefaultConfig() Config {
	return Config{
		Instructions: 8 * K,
		Operands:     32 * K,
		Ram:          8 * K,
		Registers:    32,
		DataStack:    256,
		CallStack:    256,
	}
}

// Validate checks that every region size can be allocated.
func (config Config) Validate() (err error) {
	sizes := []struct {
		name string
		size int
	}{
		{"instructions", config.Instructions},
		{"operands", config.Operands},
		{"ram", config.Ram},
		{"registers", config.Registers},
		{"data_stack", config.DataStack},
		{"call_stack", config.CallStack},
	}
	for _, region := range sizes {
		if region.size < 0 {
			err = fmt.Errorf("%v: %w", region.name, ErrConfigSize)
			return
		}
	}

	if config.Instructions > MAX_INSTRUCTIONS {
		err = fmt.Errorf("instructions %d > %d: %w", config.Instructions, MAX_INSTRUCTIONS, ErrConfigSize)
		return
	}

	return
}

// State is the machine state: memory regions and control registers.
type State struct {
	Instruction []uint16 // Instruction store.
	Operand     []uint16 // Operand store.
	Ram         []uint16 // Data memory.
	Register    []uint16 // Register file.
	DataStack   Stack    // Data stack.
	CallStack   Stack    // Function call stack.

	Pc     uint16 // Program counter, an instruction slot index.
	Zero   bool   // Set by every binary and unary transform, read by JMPZ.
	Jumped bool   // Branch taken this cycle; suppresses the Pc advance.
}

// NewState allocates a zeroed state sized by the config.
func NewState(config Config) (state *State, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	state = &State{
		Instruction: make([]uint16, config.Instructions),
		Operand:     make([]uint16, config.Operands),
		Ram:         make([]uint16, config.Ram),
		Register:    make([]uint16, config.Registers),
		DataStack:   NewStack(config.DataStack),
		CallStack:   NewStack(config.CallStack),
	}

	return
}

// Reset zeroes all memory regions and control registers.
func (state *State) Reset() {
	clear(state.Instruction)
	clear(state.Operand)
	clear(state.Ram)
	clear(state.Register)
	state.DataStack.Reset()
	state.CallStack.Reset()
	state.Pc = 0
	state.Zero = false
	state.Jumped = false
}

// Clone returns a deep copy of the state.
func (state *State) Clone() *State {
	clone := *state
	clone.Instruction = slices.Clone(state.Instruction)
	clone.Operand = slices.Clone(state.Operand)
	clone.Ram = slices.Clone(state.Ram)
	clone.Register = slices.Clone(state.Register)
	clone.DataStack.Data = slices.Clone(state.DataStack.Data)
	clone.CallStack.Data = slices.Clone(state.CallStack.Data)
	return &clone
}

// Operands returns the operand triplet of an instruction slot.
func (state *State) Operands(slot uint16) (args [OPERAND_COUNT]uint16, err error) {
	base := int(slot) * OPERAND_COUNT
	if base+OPERAND_COUNT > len(state.Operand) {
		err = ErrFetchRange
		return
	}

	copy(args[:], state.Operand[base:base+OPERAND_COUNT])
	return
}

// String returns the control registers and register file as text.
func (state *State) String() string {
	var text strings.Builder

	zero := "false"
	if state.Zero {
		zero = "true"
	}
	fmt.Fprintf(&text, "% 6s: %04X\n", "pc", state.Pc)
	fmt.Fprintf(&text, "% 6s: %v\n", "zero", zero)

	for n, val := range state.Register {
		fmt.Fprintf(&text, "% 6s: %04X\n", fmt.Sprintf("r%d", n), val)
	}

	for _, stack := range []struct {
		name  string
		stack *Stack
	}{{"dstack", &state.DataStack}, {"cstack", &state.CallStack}} {
		val, ok := stack.stack.Peek()
		if ok {
			fmt.Fprintf(&text, "% 6s: %04X (%d)\n", stack.name, val, stack.stack.Pointer())
		} else {
			fmt.Fprintf(&text, "% 6s: ---- (0)\n", stack.name)
		}
	}

	return text.String()
}
