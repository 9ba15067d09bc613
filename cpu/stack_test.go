package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4)
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.NoError(s.Push(0x1234))
	assert.False(s.Empty())
	assert.Equal(1, s.Pointer())
	assert.Equal(uint16(0x1234), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4)
	s.Push(0x1234)
	s.Push(0xABCD)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0xABCD), val)
	assert.Equal(1, s.Pointer())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint16(0x1234), val)
	assert.Equal(0, s.Pointer())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4)
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(uint16(0), val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4)
	s.Push(0x1234)
	s.Push(0xABCD)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16(0xABCD), val)
	assert.Equal(2, s.Pointer())
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(256)

	for i := 0; i < 256; i++ {
		assert.False(s.Full())
		assert.NoError(s.Push(uint16(i)))
	}

	assert.True(s.Full())
	assert.Equal(256, s.Pointer())
	assert.ErrorIs(s.Push(0), ErrStackFull)
	assert.Equal(256, s.Pointer())
}

func TestStack_ZeroLimit(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(0)
	assert.True(s.Full())
	assert.ErrorIs(s.Push(1), ErrStackFull)
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := NewStack(4)
	s.Push(0x1234)
	s.Push(0xABCD)

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Pointer())
	assert.Equal(4, s.Limit)
}
