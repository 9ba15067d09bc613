package cpu

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// Text in RAM is UTF-16 code units, one per word, without a byte order
// mark. Unpaired surrogates decode to U+FFFD.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeText decodes UTF-16 code units to a string.
func DecodeText(words []uint16) (text string, err error) {
	buf := make([]byte, 0, 2*len(words))
	for _, word := range words {
		buf = binary.LittleEndian.AppendUint16(buf, word)
	}

	out, err := utf16le.NewDecoder().Bytes(buf)
	if err != nil {
		return
	}

	text = string(out)
	return
}

// EncodeText encodes a string as UTF-16 code units.
func EncodeText(text string) (words []uint16, err error) {
	buf, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return
	}

	words = make([]uint16, len(buf)/2)
	for n := range words {
		words[n] = binary.LittleEndian.Uint16(buf[2*n:])
	}

	return
}
