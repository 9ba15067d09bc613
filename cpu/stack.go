package cpu

// Stack is a bounded word stack. The data and call stacks of a State are
// sized from the Config, and not yet used by any opcode handler.
type Stack struct {
	Limit int // Maximum stack depth
	Data  []uint16
}

// NewStack returns an empty stack of the given depth.
func NewStack(limit int) Stack {
	return Stack{
		Limit: limit,
		Data:  make([]uint16, 0, limit),
	}
}

func (s *Stack) Push(value uint16) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}

	s.Data = append(s.Data, value)
	return
}

func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= s.Limit
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Pointer is the index of the next free slot.
func (s *Stack) Pointer() int {
	return len(s.Data)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
