// Package stack provides a generic LIFO stack backed by a hybrid
// inline/heap buffer. The stack never wraps: its base is always buffer
// index 0 and its top is the last live slot, so growth is either an
// in-place reallocation or a single contiguous copy off the inline buffer.
package stack

import (
	"golang.org/x/exp/constraints"

	"github.com/napalu/hybrid"
	"github.com/napalu/hybrid/internal/assert"
	"github.com/napalu/hybrid/internal/ring"
	"github.com/napalu/hybrid/internal/util"
)

// Stack is a LIFO container of T. L is the unsigned length type bounding
// the maximum capacity; growth past its maximum value is reported as
// hybrid.ErrCapacityOverflow. Not safe for concurrent use.
type Stack[T any, L constraints.Unsigned] struct {
	buf      ring.Buffer[T, L]
	length   L
	validate func(T) bool
}

// New returns an empty stack on its inline buffer, or an error when the
// configuration violates the definition-time constraints.
func New[T any, L constraints.Unsigned](opts ...hybrid.Option[T]) (*Stack[T, L], error) {
	cfg, err := hybrid.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Stack[T, L]{
		buf:      ring.New[T, L](cfg),
		validate: cfg.Validate,
	}, nil
}

// Push appends value at the top, growing the buffer when full. It fails
// only when growth fails, in which case the stack is unchanged.
func (s *Stack[T, L]) Push(value T) error {
	assert.Validate(s.validate, value)
	if s.Full() {
		if err := s.Grow(); err != nil {
			return err
		}
	}
	s.buf.Values[s.length] = value
	s.length++
	return nil
}

// Pop discards the top element. It reports false, without mutating, when
// the stack is empty. Pop deliberately does not return the element -
// Peek before Pop when the value is needed.
func (s *Stack[T, L]) Pop() bool {
	if s.Empty() {
		return false
	}
	s.length--
	return true
}

// Peek returns the top element without removing it. Calling Peek on an
// empty stack is a contract violation and panics.
func (s *Stack[T, L]) Peek() T {
	if s.Empty() {
		panic("hybrid/stack: peek on empty stack")
	}
	return s.buf.Values[s.length-1]
}

// Grow multiplies the capacity by the growth factor without waiting for
// the stack to fill. On failure the stack is unchanged.
func (s *Stack[T, L]) Grow() error {
	_, err := s.buf.Grow(0, s.length)
	return err
}

// Reverse reverses the live elements in place.
func (s *Stack[T, L]) Reverse() {
	util.Reverse(s.buf.Values[:s.length])
}

// Clear discards all elements. The buffer and capacity are retained.
func (s *Stack[T, L]) Clear() {
	s.length = 0
}

// Delete clears the stack, releases the heap buffer if one was acquired
// and rebinds the inline buffer at its initial capacity. The stack remains
// usable as if freshly created.
func (s *Stack[T, L]) Delete() {
	s.Clear()
	s.buf.Release()
}

// Len returns the number of live elements.
func (s *Stack[T, L]) Len() int {
	return int(s.length)
}

// Cap returns the current buffer capacity.
func (s *Stack[T, L]) Cap() int {
	return int(s.buf.Cap())
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T, L]) Empty() bool {
	return s.length == 0
}

// Full reports whether the next Push would grow the buffer.
func (s *Stack[T, L]) Full() bool {
	return s.length == s.buf.Cap()
}
