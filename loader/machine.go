package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/redstone/cpu"
)

// Machine is a machine configuration file:
//
//	opcodes = "machine.txt"
//
//	[memory]
//	instructions = 8192
//	operands = 32768
//	ram = 8192
//	registers = 32
//	data_stack = 256
//	call_stack = 256
//
// Missing memory sizes keep their cpu.DefaultConfig() value.
type Machine struct {
	Opcodes string     `toml:"opcodes"` // Path of the opcode table.
	Memory  cpu.Config `toml:"memory"`  // Memory region sizes.
}

// DefaultMachine returns the default configuration, with no opcode table.
func DefaultMachine() *Machine {
	return &Machine{
		Memory: cpu.DefaultConfig(),
	}
}

// ReadMachine parses a TOML machine configuration.
func ReadMachine(input io.Reader) (machine *Machine, err error) {
	config := DefaultMachine()

	md, err := toml.NewDecoder(input).Decode(config)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		err = ErrConfigKey(undecoded[0].String())
		return
	}

	err = config.Memory.Validate()
	if err != nil {
		return
	}

	machine = config
	return
}

// ReadMachineFile parses a TOML machine configuration file. A relative
// opcode table path is taken relative to the configuration file.
func ReadMachineFile(path string) (machine *Machine, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	machine, err = ReadMachine(inf)
	if err != nil {
		machine = nil
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	if machine.Opcodes != "" && !filepath.IsAbs(machine.Opcodes) {
		machine.Opcodes = filepath.Join(filepath.Dir(path), machine.Opcodes)
	}

	return
}

// Entries reads the opcode table named by the configuration.
func (machine *Machine) Entries() (entries []cpu.Entry, err error) {
	return ReadTableFile(machine.Opcodes)
}
