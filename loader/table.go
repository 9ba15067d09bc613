// Package loader reads the inputs of the redstone machine: opcode tables,
// machine configuration files, and program images.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/redstone/cpu"
)

// ReadTable parses an opcode table, one 'OPCODE NUMBER' pair per line.
//
// Blank lines, and anything after a ';' or '#', are ignored. Numbers are
// decimal, leading zeros included, or hexadecimal with a 0x prefix.
// Opcode names are not checked here; that is left to cpu.NewDictionary.
func ReadTable(input io.Reader) (entries []cpu.Entry, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		text := line
		if n := strings.IndexAny(text, ";#"); n >= 0 {
			text = text[:n]
		}

		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}

		if len(words) != 2 {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrTableFields}
			return
		}

		code, perr := parseCode(words[1])
		if perr != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseNumber(words[1])}
			return
		}

		entries = append(entries, cpu.Entry{Name: words[0], Code: uint(code)})
	}

	err = scanner.Err()
	return
}

// parseCode parses a 32 bit opcode code.
func parseCode(word string) (code uint64, err error) {
	base := 10
	if len(word) > 2 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X') {
		word = word[2:]
		base = 16
	}

	code, err = strconv.ParseUint(word, base, 32)
	return
}

// ReadTableFile parses the opcode table in a file.
func ReadTableFile(path string) (entries []cpu.Entry, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	entries, err = ReadTable(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}
