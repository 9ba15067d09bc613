package cpu

import (
	"slices"
)

// Entry pairs a symbolic opcode name with its numeric code, as read
// from an opcode table.
type Entry struct {
	Name string
	Code uint
}

// Dictionary is the bidirectional mapping between symbolic opcodes and
// their numeric codes. It is immutable once built.
type Dictionary struct {
	entries []Entry
	toCode  map[Opcode]uint
	toOp    map[uint]Opcode
}

// NewDictionary builds a dictionary from opcode entries.
//
// Both directions are built from the same entry list. An entry with an
// unknown name, a name already seen, or a numeric code already assigned
// fails the build with an *ErrConfiguration for that entry.
func NewDictionary(entries []Entry) (dict *Dictionary, err error) {
	toCode := make(map[Opcode]uint, len(entries))
	toOp := make(map[uint]Opcode, len(entries))

	for n, entry := range entries {
		var op Opcode
		op, err = ParseOpcode(entry.Name)
		if err != nil {
			err = &ErrConfiguration{Index: n, Entry: entry, Err: err}
			return
		}
		if _, ok := toCode[op]; ok {
			err = &ErrConfiguration{Index: n, Entry: entry, Err: ErrOpcodeDuplicate}
			return
		}
		if _, ok := toOp[entry.Code]; ok {
			err = &ErrConfiguration{Index: n, Entry: entry, Err: ErrCodeDuplicate}
			return
		}
		toCode[op] = entry.Code
		toOp[entry.Code] = op
	}

	dict = &Dictionary{
		entries: slices.Clone(entries),
		toCode:  toCode,
		toOp:    toOp,
	}

	return
}

// Encode returns the numeric code of a symbolic opcode.
func (dict *Dictionary) Encode(op Opcode) (code uint, err error) {
	code, ok := dict.toCode[op]
	if !ok {
		err = ErrLookupOpcode(op)
		return
	}

	return
}

// Decode returns the symbolic opcode of a numeric code.
func (dict *Dictionary) Decode(code uint) (op Opcode, err error) {
	op, ok := dict.toOp[code]
	if !ok {
		err = ErrLookupCode(code)
		return
	}

	return
}

// Entries returns a copy of the entries, in build order.
func (dict *Dictionary) Entries() []Entry {
	return slices.Clone(dict.entries)
}

// Len returns the number of entries.
func (dict *Dictionary) Len() int {
	return len(dict.entries)
}
