package loader

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/redstone/cpu"
)

// script builds a cpu.Program from Starlark builtins.
type script struct {
	dict *cpu.Dictionary
	prog *cpu.Program
}

// asWord converts a Starlark value to a machine word.
func asWord(value starlark.Value) (word uint16, err error) {
	n, err := starlark.AsInt32(value)
	if err != nil {
		return
	}
	if n < 0 || n > 0xffff {
		err = fmt.Errorf("%d: %w", n, ErrWordRange)
		return
	}
	word = uint16(n)
	return
}

// emit(op, a=0, b=0, c=0) appends an instruction slot, returning its index.
func (sc *script) emit(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var name string
	var a, b, c starlark.Value = starlark.MakeInt(0), starlark.MakeInt(0), starlark.MakeInt(0)
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "op", &name, "a?", &a, "b?", &b, "c?", &c)
	if err != nil {
		return
	}

	op, err := cpu.ParseOpcode(name)
	if err != nil {
		return
	}

	var operands [cpu.OPERAND_COUNT]uint16
	for n, arg := range []starlark.Value{a, b, c} {
		operands[n], err = asWord(arg)
		if err != nil {
			return
		}
	}

	slot, err := sc.prog.Emit(sc.dict, op, operands[:]...)
	if err != nil {
		return
	}

	value = starlark.MakeInt(slot)
	return
}

// here() returns the index of the next slot to be emitted.
func (sc *script) here(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	value = starlark.MakeInt(sc.prog.Len())
	return
}

// patch(slot, index, value) rewrites an operand of an emitted slot.
func (sc *script) patch(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var slot, index int
	var word starlark.Value
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "slot", &slot, "index", &index, "value", &word)
	if err != nil {
		return
	}

	w, err := asWord(word)
	if err != nil {
		return
	}

	err = sc.prog.Patch(slot, index, w)
	if err != nil {
		return
	}

	value = starlark.None
	return
}

// data(address, *words) preloads RAM.
func (sc *script) data(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	if len(kwargs) != 0 {
		err = fmt.Errorf("%v: unexpected keyword arguments", fn.Name())
		return
	}
	if len(args) < 1 {
		err = fmt.Errorf("%v: missing address", fn.Name())
		return
	}

	address, err := asWord(args[0])
	if err != nil {
		return
	}

	words := make([]uint16, 0, len(args)-1)
	for _, arg := range args[1:] {
		var w uint16
		w, err = asWord(arg)
		if err != nil {
			return
		}
		words = append(words, w)
	}

	sc.prog.Store(address, words...)

	value = starlark.MakeInt(len(words))
	return
}

// text(address, s) preloads RAM with UTF-16 text, returning its length in words.
func (sc *script) text(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var address starlark.Value
	var s string
	err = starlark.UnpackArgs(fn.Name(), args, kwargs, "address", &address, "s", &s)
	if err != nil {
		return
	}

	addr, err := asWord(address)
	if err != nil {
		return
	}

	words, err := cpu.EncodeText(s)
	if err != nil {
		return
	}

	sc.prog.Store(addr, words...)

	value = starlark.MakeInt(len(words))
	return
}

// RunScript executes a Starlark program builder. Every opcode name is
// predeclared as a string constant, alongside the builtins emit, here,
// patch, data and text.
func RunScript(filename string, src any, dict *cpu.Dictionary) (prog *cpu.Program, err error) {
	sc := &script{
		dict: dict,
		prog: &cpu.Program{},
	}

	pred := starlark.StringDict{
		"emit":  starlark.NewBuiltin("emit", sc.emit),
		"here":  starlark.NewBuiltin("here", sc.here),
		"patch": starlark.NewBuiltin("patch", sc.patch),
		"data":  starlark.NewBuiltin("data", sc.data),
		"text":  starlark.NewBuiltin("text", sc.text),
	}
	for op := range cpu.Opcodes() {
		pred[op.String()] = starlark.String(op.String())
	}

	thread := starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", thread.Name, msg)
		},
	}
	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	prog = sc.prog
	return
}

// RunScriptFile executes a Starlark program builder file.
func RunScriptFile(path string, dict *cpu.Dictionary) (prog *cpu.Program, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	prog, err = RunScript(path, src, dict)
	return
}

// LoadProgram reads a program, selecting the format by file extension:
// '.yaml' or '.yml' for a raw memory image, '.star' for a builder script.
func LoadProgram(path string, dict *cpu.Dictionary) (prog *cpu.Program, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		prog, err = ReadImageFile(path)
	case ".star":
		prog, err = RunScriptFile(path, dict)
	default:
		err = fmt.Errorf("%v: %w", path, ErrProgramFormat)
	}

	return
}
