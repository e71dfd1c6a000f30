// Package queue provides a generic FIFO queue backed by a circular hybrid
// inline/heap buffer. The head index advances monotonically modulo the
// capacity; capacities are powers of two so the modulo is a bitwise AND.
package queue

import (
	"golang.org/x/exp/constraints"

	"github.com/napalu/hybrid"
	"github.com/napalu/hybrid/internal/assert"
	"github.com/napalu/hybrid/internal/ring"
)

// Queue is a FIFO container of T. L is the unsigned length type bounding
// the maximum capacity. The oldest element lives at the head index, the
// newest at (head+length-1) & mask. Not safe for concurrent use.
type Queue[T any, L constraints.Unsigned] struct {
	buf      ring.Buffer[T, L]
	head     L
	length   L
	validate func(T) bool
}

// New returns an empty queue on its inline buffer, or an error when the
// configuration violates the definition-time constraints.
func New[T any, L constraints.Unsigned](opts ...hybrid.Option[T]) (*Queue[T, L], error) {
	cfg, err := hybrid.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Queue[T, L]{
		buf:      ring.New[T, L](cfg),
		validate: cfg.Validate,
	}, nil
}

// Enqueue appends value at the back, growing the buffer when full. It
// fails only when growth fails, in which case the queue is unchanged.
func (q *Queue[T, L]) Enqueue(value T) error {
	assert.Validate(q.validate, value)
	if q.Full() {
		if err := q.Grow(); err != nil {
			return err
		}
	}
	q.buf.Values[(q.head+q.length)&q.buf.Mask()] = value
	q.length++
	return nil
}

// Dequeue discards the front element. It reports false, without mutating,
// when the queue is empty. Peek before Dequeue when the value is needed.
func (q *Queue[T, L]) Dequeue() bool {
	if q.Empty() {
		return false
	}
	q.head = (q.head + 1) & q.buf.Mask()
	q.length--
	return true
}

// Peek returns the front element without removing it. Calling Peek on an
// empty queue is a contract violation and panics.
func (q *Queue[T, L]) Peek() T {
	if q.Empty() {
		panic("hybrid/queue: peek on empty queue")
	}
	return q.buf.Values[q.head]
}

// Grow multiplies the capacity by the growth factor without waiting for
// the queue to fill. Relocation preserves the logical element order; when
// elements had wrapped around the buffer end they are flattened to start
// at index 0. On failure the queue is unchanged.
func (q *Queue[T, L]) Grow() error {
	head, err := q.buf.Grow(q.head, q.length)
	if err != nil {
		return err
	}
	q.head = head
	return nil
}

// Reverse reverses the live elements in place, respecting wraparound.
func (q *Queue[T, L]) Reverse() {
	if q.length < 2 {
		return
	}
	var (
		mask = q.buf.Mask()
		head = q.head
		tail = q.head + q.length - 1
	)
	for i := L(0); i < q.length/2; i++ {
		a, b := (head+i)&mask, (tail-i)&mask
		q.buf.Values[a], q.buf.Values[b] = q.buf.Values[b], q.buf.Values[a]
	}
}

// Clear discards all elements and resets the head index. The buffer and
// capacity are retained.
func (q *Queue[T, L]) Clear() {
	q.length = 0
	q.head = 0
}

// Delete clears the queue, releases the heap buffer if one was acquired
// and rebinds the inline buffer at its initial capacity. The queue remains
// usable as if freshly created.
func (q *Queue[T, L]) Delete() {
	q.Clear()
	q.buf.Release()
}

// Len returns the number of live elements.
func (q *Queue[T, L]) Len() int {
	return int(q.length)
}

// Cap returns the current buffer capacity.
func (q *Queue[T, L]) Cap() int {
	return int(q.buf.Cap())
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T, L]) Empty() bool {
	return q.length == 0
}

// Full reports whether the next Enqueue would grow the buffer.
func (q *Queue[T, L]) Full() bool {
	return q.length == q.buf.Cap()
}
