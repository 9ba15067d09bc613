package io

import (
	"strings"
)

// Temporary keeps sent texts in memory, up to a fixed capacity.
type Temporary struct {
	Capacity int // Capacity in texts.

	Data []string
}

var _ Channel = (*Temporary)(nil)

// Rewind discards all texts.
func (temp *Temporary) Rewind() {
	temp.Data = make([]string, 0, temp.Capacity)
}

// Send appends a text.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(text string) (err error) {
	if len(temp.Data) >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data = append(temp.Data, text)
	return
}

// String returns all texts, one per line.
func (temp *Temporary) String() string {
	var text strings.Builder
	for _, line := range temp.Data {
		text.WriteString(line)
		text.WriteString("\n")
	}
	return text.String()
}
