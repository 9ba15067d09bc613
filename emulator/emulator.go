// Package emulator drives a redstone cpu over a loaded program until it
// halts.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/redstone/cpu"
	"github.com/ezrec/redstone/io"
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	MaxTicks int  // If positive, Run stops with ErrTickLimit after this many cycles.

	*cpu.Cpu // Reference to the CPU simulation.

	Program *cpu.Program // Image loaded on Reset.
	Tape    io.Tape      // Console channel.

	Halted bool // Set once a HALT has been dispatched.
}

// NewEmulator creates a new emulator, with memory regions sized by the
// config and an opcode dictionary built from the entries.
func NewEmulator(config cpu.Config, entries []cpu.Entry) (emu *Emulator, err error) {
	dict, err := cpu.NewDictionary(entries)
	if err != nil {
		return
	}

	cp, err := cpu.NewCpu(config, dict)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:     cp,
		Program: &cpu.Program{},
	}

	emu.Cpu.Console = &emu.Tape

	return
}

// Reset clears the machine and loads the program image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Halted = false

	err = emu.Program.Load(emu.Cpu.State)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d slots, %d ram segments", emu.Program.Len(), len(emu.Program.Data))
	}

	return
}

// halted is true if the error is the dispatch of HALT.
func halted(err error) bool {
	var cycle *cpu.ErrCycle
	if !errors.As(err, &cycle) {
		return false
	}

	return cycle.Stage == cpu.STAGE_EXECUTE &&
		cycle.Opcode == cpu.HALT &&
		errors.Is(cycle.Err, cpu.ErrUnimplemented(cpu.HALT))
}

// Tick performs a single cycle of the emulator. A HALT ends the run
// without error; any other failure also ends it, wrapped in ErrRuntime.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Halted {
		done = true
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc, ticks := emu.Cpu.Pc, emu.Cpu.Ticks

	err = emu.Cpu.Tick()
	if halted(err) {
		if emu.Verbose {
			log.Printf("%04x: halt after %d ticks", pc, ticks)
		}
		emu.Halted = true
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{Pc: pc, Ticks: ticks, Err: err}
		done = true
		return
	}

	return
}

// Run ticks the emulator until it is done.
func (emu *Emulator) Run() (err error) {
	for {
		if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks {
			err = &ErrRuntime{Pc: emu.Cpu.Pc, Ticks: emu.Cpu.Ticks, Err: ErrTickLimit}
			return
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}

// Listing returns an iterator over the disassembled instruction slots of
// the program.
func (emu *Emulator) Listing() iter.Seq2[int, string] {
	return func(yield func(n int, line string) bool) {
		for n, slot := range emu.Program.Slots() {
			var line string
			op, err := emu.Cpu.Dictionary.Decode(uint(slot.Code))
			if err != nil {
				line = fmt.Sprintf("%04x: .word %04x %04x %04x %04x", n, slot.Code, slot.Operands[0], slot.Operands[1], slot.Operands[2])
			} else {
				line = fmt.Sprintf("%04x: %-6v %04x %04x %04x", n, op, slot.Operands[0], slot.Operands[1], slot.Operands[2])
			}
			if !yield(n, line) {
				return
			}
		}
	}
}
