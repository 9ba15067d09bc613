package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/redstone/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// Cpu is the simulation context of the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	*State // Machine state.

	Dictionary *Dictionary // Opcode decoder.
	Console    Channel     // PRINT output.

	Ticks int // Completed cycles counter.
}

// NewCpu creates a new CPU with memory regions sized by the config.
func NewCpu(config Config, dict *Dictionary) (cpu *Cpu, err error) {
	state, err := NewState(config)
	if err != nil {
		return
	}

	cpu = &Cpu{
		State:      state,
		Dictionary: dict,
	}

	return
}

// Reset the CPU state.
// - Clears all memory regions, stacks and control registers.
// - Zeros the tick counter.
// - Rewinds the console.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.State.Reset()
	cpu.Ticks = 0

	if cpu.Console != nil {
		cpu.Console.Rewind()
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return fmt.Sprintf("% 6s: %d\n", "ticks", cpu.Ticks) + cpu.State.String()
}

// Fetch reads the opcode word and operand triplet at the program counter,
// and decodes the opcode.
func (cpu *Cpu) Fetch() (op Opcode, args [OPERAND_COUNT]uint16, err error) {
	pc := cpu.Pc

	if int(pc) >= len(cpu.Instruction) {
		err = &ErrCycle{Stage: STAGE_FETCH, Pc: pc, Err: ErrFetchRange}
		return
	}

	op, err = cpu.Dictionary.Decode(uint(cpu.Instruction[pc]))
	if err != nil {
		err = &ErrCycle{Stage: STAGE_DECODE, Pc: pc, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
		return
	}

	args, err = cpu.Operands(pc)
	if err != nil {
		err = &ErrCycle{Stage: STAGE_FETCH, Pc: pc, Opcode: op, Err: err}
		return
	}

	return
}

// Tick executes a single fetch, decode and execute cycle.
//
// On error the state is left as it was before the cycle.
func (cpu *Cpu) Tick() (err error) {
	cpu.Jumped = false

	op, args, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %v %04x %04x %04x", cpu.Pc, op, args[0], args[1], args[2])
	}

	err = cpu.Execute(op, args)
	if err != nil {
		err = &ErrCycle{Stage: STAGE_EXECUTE, Pc: cpu.Pc, Opcode: op, Err: err}
		return
	}

	if !cpu.Jumped {
		cpu.Pc++
	}
	cpu.Jumped = false

	cpu.Ticks++

	return
}

// Execute runs the handler of a single decoded instruction.
func (cpu *Cpu) Execute(op Opcode, args [OPERAND_COUNT]uint16) (err error) {
	switch op {
	case NOP:
		// pass
	case ADD, SUB, MULT, DIV, MOD, OR, XOR, NOR, NAND, AND, SHIFTL, SHIFTR:
		err = cpu.binary(op, args[0], args[1], args[2])
	case NOT:
		err = cpu.unary(op, args[0], args[1])
	case LOAD:
		err = cpu.setRegister(args[1], args[0])
	case RSTORE:
		var value uint16
		value, err = cpu.getRegister(args[0])
		if err != nil {
			return
		}
		err = cpu.setRam(args[1], value)
	case RCOPY:
		var value uint16
		value, err = cpu.getRam(args[0])
		if err != nil {
			return
		}
		err = cpu.setRegister(args[1], value)
	case ICOPY:
		if int(args[0]) >= len(cpu.Operand) {
			err = ErrOperandRange
			return
		}
		err = cpu.setRegister(args[1], cpu.Operand[args[0]])
	case PRINT:
		err = cpu.print(args[0], args[1])
	case JMP:
		cpu.jump(args[0])
	case JMPZ:
		if cpu.Zero {
			cpu.jump(args[0])
		}
	case HPUSH, HPOP, CALLR, RETURN, HALT:
		// Stack machine extension point.
		err = ErrUnimplemented(op)
	default:
		err = ErrUnimplemented(op)
	}

	return
}

// binary applies op to registers src1 and src2, storing the result in dst.
func (cpu *Cpu) binary(op Opcode, src1, src2, dst uint16) (err error) {
	a, err := cpu.getRegister(src1)
	if err != nil {
		return
	}
	b, err := cpu.getRegister(src2)
	if err != nil {
		return
	}
	if int(dst) >= len(cpu.Register) {
		err = ErrRegisterRange
		return
	}

	result, err := Binary(op, a, b)
	if err != nil {
		return
	}

	cpu.Register[dst] = result
	cpu.Zero = result == 0
	return
}

// unary applies op to register src, storing the result in dst.
func (cpu *Cpu) unary(op Opcode, src, dst uint16) (err error) {
	a, err := cpu.getRegister(src)
	if err != nil {
		return
	}
	if int(dst) >= len(cpu.Register) {
		err = ErrRegisterRange
		return
	}

	result, err := Unary(op, a)
	if err != nil {
		return
	}

	cpu.Register[dst] = result
	cpu.Zero = result == 0
	return
}

func (cpu *Cpu) jump(target uint16) {
	cpu.Pc = target
	cpu.Jumped = true
}

func (cpu *Cpu) getRegister(reg uint16) (value uint16, err error) {
	if int(reg) >= len(cpu.Register) {
		err = ErrRegisterRange
		return
	}

	value = cpu.Register[reg]
	return
}

func (cpu *Cpu) setRegister(reg uint16, value uint16) (err error) {
	if int(reg) >= len(cpu.Register) {
		err = ErrRegisterRange
		return
	}

	cpu.Register[reg] = value
	return
}

func (cpu *Cpu) getRam(addr uint16) (value uint16, err error) {
	if int(addr) >= len(cpu.Ram) {
		err = ErrRamRange
		return
	}

	value = cpu.Ram[addr]
	return
}

func (cpu *Cpu) setRam(addr uint16, value uint16) (err error) {
	if int(addr) >= len(cpu.Ram) {
		err = ErrRamRange
		return
	}

	cpu.Ram[addr] = value
	return
}

// Text decodes length RAM words from addr as UTF-16 text.
func (cpu *Cpu) Text(addr, length uint16) (text string, err error) {
	start := int(addr)
	end := start + int(length)
	if end > len(cpu.Ram) {
		err = ErrRamRange
		return
	}

	text, err = DecodeText(cpu.Ram[start:end])
	return
}

// print sends the text at RAM addr to the console.
func (cpu *Cpu) print(addr, length uint16) (err error) {
	text, err := cpu.Text(addr, length)
	if err != nil {
		return
	}

	if cpu.Console == nil {
		err = ErrConsoleMissing
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: print %q", text)
	}

	err = cpu.Console.Send(text)
	return
}
