// Package ring implements the buffer growth and relocation core shared by
// the stack, queue and deque containers.
package ring

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/napalu/hybrid"
)

// Buffer is a power-of-two sized element buffer which starts on an inline
// (never released) allocation and promotes itself to allocator-owned heap
// buffers as it grows. The container owning the Buffer tracks its own
// front/length bookkeeping; Buffer only knows how to relocate.
//
// Invariants: cap is a power of two >= the initial capacity, Values is
// either the inline buffer or a heap allocation of exactly cap elements,
// and at most one heap allocation is live per Buffer at any time.
type Buffer[T any, L constraints.Unsigned] struct {
	// Values is the active buffer. Element i of the logical sequence lives
	// at Values[(front+i) & Mask()] under the owning container's front.
	Values []T

	inline []T
	size   L
	factor L
	alloc  hybrid.Allocator[T]
}

// New returns a Buffer on its inline allocation. cfg must have been
// obtained from hybrid.NewConfig.
func New[T any, L constraints.Unsigned](cfg hybrid.Config[T]) Buffer[T, L] {
	inline := make([]T, cfg.InitCapacity)
	return Buffer[T, L]{
		Values: inline,
		inline: inline,
		size:   L(cfg.InitCapacity),
		factor: L(cfg.GrowthFactor),
		alloc:  cfg.Allocator,
	}
}

// Cap returns the slot count of the active buffer.
func (b *Buffer[T, L]) Cap() L {
	return b.size
}

// Mask returns size-1. Capacities are powers of two, so i & Mask()
// computes i mod size without division.
func (b *Buffer[T, L]) Mask() L {
	return b.size - 1
}

// InHeap reports whether the active buffer is allocator-owned rather than
// the inline buffer. Capacities are always >= 2, so both slices are
// non-empty and pointer identity of the first slot decides.
func (b *Buffer[T, L]) InHeap() bool {
	return &b.Values[0] != &b.inline[0]
}

// Grow relocates the n logical elements starting at front into a buffer of
// size*factor slots and returns the new front index. Four cases:
//
//	heap, not wrapped:   reallocate in place, front unchanged
//	heap, wrapped:       allocate, copy tail run then head run, free old
//	inline, not wrapped: allocate, copy the contiguous run to the front
//	inline, wrapped:     allocate, copy both runs; inline is never freed
//
// Every copying case leaves the sequence flat at index 0. On failure the
// Buffer is left untouched and front is returned unchanged, so the caller
// can surface the error with no side effects.
func (b *Buffer[T, L]) Grow(front, n L) (L, error) {
	max := ^L(0)
	if b.size > max/b.factor {
		return front, fmt.Errorf("%w: %d slots at factor %d", hybrid.ErrCapacityOverflow, uint64(b.size), uint64(b.factor))
	}
	newSize := b.size * b.factor

	inHeap := b.InHeap()
	notWrapped := front+n <= b.size

	if notWrapped && inHeap {
		next := b.alloc.Reallocate(b.Values, int(newSize))
		if next == nil {
			return front, fmt.Errorf("%w: reallocating %d slots", hybrid.ErrAllocation, uint64(newSize))
		}
		b.Values = next
		b.size = newSize
		return front, nil
	}

	next := b.alloc.Allocate(int(newSize))
	if next == nil {
		return front, fmt.Errorf("%w: allocating %d slots", hybrid.ErrAllocation, uint64(newSize))
	}
	if notWrapped {
		copy(next, b.Values[front:front+n])
	} else {
		tail := copy(next, b.Values[front:b.size])
		copy(next[tail:], b.Values[:front])
	}
	if inHeap {
		b.alloc.Free(b.Values)
	}
	b.Values = next
	b.size = newSize
	return 0, nil
}

// Release frees the heap buffer, if any, and rebinds the inline buffer at
// its original capacity. After Release the Buffer is as freshly created.
func (b *Buffer[T, L]) Release() {
	if !b.InHeap() {
		return
	}
	b.alloc.Free(b.Values)
	b.Values = b.inline
	b.size = L(len(b.inline))
}
