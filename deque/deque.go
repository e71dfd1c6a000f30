// Package deque provides a generic double-ended queue backed by a circular
// hybrid inline/heap buffer. Storage is identical to the queue package;
// mutation is symmetric at both ends.
package deque

import (
	"golang.org/x/exp/constraints"

	"github.com/napalu/hybrid"
	"github.com/napalu/hybrid/internal/assert"
	"github.com/napalu/hybrid/internal/ring"
)

// Deque is a double-ended container of T. L is the unsigned length type
// bounding the maximum capacity. Not safe for concurrent use.
//
// There is no Reverse: swapping the roles of the front/back operations at
// the call site achieves the same effect without moving elements.
type Deque[T any, L constraints.Unsigned] struct {
	buf      ring.Buffer[T, L]
	front    L
	length   L
	validate func(T) bool
}

// New returns an empty deque on its inline buffer, or an error when the
// configuration violates the definition-time constraints.
func New[T any, L constraints.Unsigned](opts ...hybrid.Option[T]) (*Deque[T, L], error) {
	cfg, err := hybrid.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Deque[T, L]{
		buf:      ring.New[T, L](cfg),
		validate: cfg.Validate,
	}, nil
}

// InsertFront prepends value, growing the buffer when full. It fails only
// when growth fails, in which case the deque is unchanged.
func (d *Deque[T, L]) InsertFront(value T) error {
	assert.Validate(d.validate, value)
	if d.Full() {
		if err := d.Grow(); err != nil {
			return err
		}
	}
	// front-1 mod size, kept in unsigned arithmetic
	d.front = (d.front + d.buf.Mask()) & d.buf.Mask()
	d.buf.Values[d.front] = value
	d.length++
	return nil
}

// InsertBack appends value, growing the buffer when full. It fails only
// when growth fails, in which case the deque is unchanged.
func (d *Deque[T, L]) InsertBack(value T) error {
	assert.Validate(d.validate, value)
	if d.Full() {
		if err := d.Grow(); err != nil {
			return err
		}
	}
	d.buf.Values[(d.front+d.length)&d.buf.Mask()] = value
	d.length++
	return nil
}

// RemoveFront discards the front element. It reports false, without
// mutating, when the deque is empty.
func (d *Deque[T, L]) RemoveFront() bool {
	if d.Empty() {
		return false
	}
	d.front = (d.front + 1) & d.buf.Mask()
	d.length--
	return true
}

// RemoveBack discards the back element. It reports false, without
// mutating, when the deque is empty. The vacated slot is not overwritten;
// the next InsertBack reuses it.
func (d *Deque[T, L]) RemoveBack() bool {
	if d.Empty() {
		return false
	}
	d.length--
	return true
}

// PeekFront returns the front element without removing it. Calling it on
// an empty deque is a contract violation and panics.
func (d *Deque[T, L]) PeekFront() T {
	if d.Empty() {
		panic("hybrid/deque: peek on empty deque")
	}
	return d.buf.Values[d.front]
}

// PeekBack returns the back element without removing it. Calling it on an
// empty deque is a contract violation and panics.
func (d *Deque[T, L]) PeekBack() T {
	if d.Empty() {
		panic("hybrid/deque: peek on empty deque")
	}
	return d.buf.Values[(d.front+d.length-1)&d.buf.Mask()]
}

// Grow multiplies the capacity by the growth factor without waiting for
// the deque to fill. Relocation preserves the logical element order; when
// elements had wrapped around the buffer end they are flattened to start
// at index 0. On failure the deque is unchanged.
func (d *Deque[T, L]) Grow() error {
	front, err := d.buf.Grow(d.front, d.length)
	if err != nil {
		return err
	}
	d.front = front
	return nil
}

// Clear discards all elements and resets the front index. The buffer and
// capacity are retained.
func (d *Deque[T, L]) Clear() {
	d.length = 0
	d.front = 0
}

// Delete clears the deque, releases the heap buffer if one was acquired
// and rebinds the inline buffer at its initial capacity. The deque remains
// usable as if freshly created.
func (d *Deque[T, L]) Delete() {
	d.Clear()
	d.buf.Release()
}

// Len returns the number of live elements.
func (d *Deque[T, L]) Len() int {
	return int(d.length)
}

// Cap returns the current buffer capacity.
func (d *Deque[T, L]) Cap() int {
	return int(d.buf.Cap())
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T, L]) Empty() bool {
	return d.length == 0
}

// Full reports whether the next insertion would grow the buffer.
func (d *Deque[T, L]) Full() bool {
	return d.length == d.buf.Cap()
}
