// Package cpu implements the redstone register machine.
//
// The machine fetches one numeric opcode and a triplet of 16-bit operand
// words per instruction slot, decodes the opcode through a Dictionary
// loaded at start up, and executes it against a State: instruction and
// operand stores, RAM, a register file, two stacks, the program counter
// and the zero flag.
//
// Only the numeric encoding of the opcodes is configurable; the set of
// symbolic opcodes and their semantics are fixed.
package cpu
