package io

import (
	"io"
)

// Tape is a sequential output channel. Each text is written to Output
// followed by a newline.
type Tape struct {
	Output io.Writer

	Lines int // Number of texts written.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the line counter is reset.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Send writes the text and a newline to the output stream.
func (tc *Tape) Send(text string) (err error) {
	if tc.Output == nil {
		err = ErrChannelOutput
		return
	}

	_, err = io.WriteString(tc.Output, text+"\n")
	if err != nil {
		return
	}

	tc.Lines++
	return
}
