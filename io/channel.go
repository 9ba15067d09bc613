// Package io provides the output channels of the redstone machine.
// PRINT is the only I/O instruction; each PRINT sends one decoded text to
// the console channel, either a sequential Tape over an io.Writer or an
// in-memory Temporary buffer.
package io

// Channel defines the interface for all output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes one text to the channel.
	Send(text string) error
}
