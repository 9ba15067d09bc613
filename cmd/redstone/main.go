package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/redstone/emulator"
	"github.com/ezrec/redstone/loader"
)

func main() {
	var config string
	var table string
	var program string
	var output string
	var limit int
	var verbose bool
	var dump bool

	flag.StringVar(&config, "m", "", ".toml machine configuration")
	flag.StringVar(&table, "t", "", "Opcode table (overrides the machine configuration)")
	flag.StringVar(&program, "p", "", "Program to run (.yaml image or .star script)")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.IntVar(&limit, "n", 0, "Tick limit (0 for none)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump listing and machine state at exit")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(program) == 0 {
		atexit.Fatalf("%v: no program given (-p)", os.Args[0])
	}

	machine := loader.DefaultMachine()
	if len(config) != 0 {
		var err error
		machine, err = loader.ReadMachineFile(config)
		if err != nil {
			atexit.Fatal(err)
		}
	}

	if len(table) != 0 {
		machine.Opcodes = table
	}

	if len(machine.Opcodes) == 0 {
		atexit.Fatalf("%v: no opcode table given (-t or -m)", os.Args[0])
	}

	entries, err := machine.Entries()
	if err != nil {
		atexit.Fatal(err)
	}

	emu, err := emulator.NewEmulator(machine.Memory, entries)
	if err != nil {
		atexit.Fatal(err)
	}
	emu.Verbose = verbose
	emu.MaxTicks = limit

	emu.Program, err = loader.LoadProgram(program, emu.Cpu.Dictionary)
	if err != nil {
		atexit.Fatal(err)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
	}

	console := bufio.NewWriter(ouf)
	atexit.Register(func() {
		console.Flush()
		if ouf != os.Stdout {
			ouf.Close()
		}
	})
	emu.Tape.Output = console

	if dump {
		atexit.Register(func() {
			for _, line := range emu.Listing() {
				log.Print(line)
			}
			log.Printf("state:\n%v", emu.Cpu.String())
		})
	}

	err = emu.Reset()
	if err != nil {
		atexit.Fatalf("%v: %v", program, err)
	}

	err = emu.Run()
	if err != nil {
		atexit.Fatal(err)
	}

	if verbose {
		log.Printf("%v: halted after %d ticks", program, emu.Ticks)
	}

	atexit.Exit(0)
}
