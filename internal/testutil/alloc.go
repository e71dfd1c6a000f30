// Package testutil provides a recording, fault-injecting allocator used to
// test growth, teardown and allocation-failure paths deterministically.
package testutil

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// RecordingAllocator implements hybrid.Allocator. It tracks live
// allocations in insertion order, counts calls, and can be told to start
// failing after a number of successful allocation requests.
//
// Free or Reallocate of a buffer it did not hand out (or handed out and
// already released) panics, which surfaces double-free and
// foreign-buffer bugs directly in the failing test.
type RecordingAllocator[T any] struct {
	failAfter int // 0 means never fail
	requests  int
	allocs    int
	frees     int

	nextID int
	live   *orderedmap.OrderedMap // allocation id -> slot count
	ids    map[*T]int             // first slot -> allocation id
}

// NewRecordingAllocator returns an allocator that never fails. Use
// FailAfter to arm fault injection.
func NewRecordingAllocator[T any]() *RecordingAllocator[T] {
	return &RecordingAllocator[T]{
		live: orderedmap.New(),
		ids:  map[*T]int{},
	}
}

// FailAfter arms the allocator to satisfy the next n Allocate/Reallocate
// requests and fail every one after that. n = 0 fails the next request;
// n < 0 disarms fault injection.
func (a *RecordingAllocator[T]) FailAfter(n int) {
	a.failAfter = n + 1
	a.requests = 0
}

func (a *RecordingAllocator[T]) exhausted() bool {
	a.requests++
	return a.failAfter > 0 && a.requests >= a.failAfter
}

func (a *RecordingAllocator[T]) Allocate(n int) []T {
	if a.exhausted() {
		return nil
	}
	buf := make([]T, n)
	a.record(buf, n)
	return buf
}

func (a *RecordingAllocator[T]) Reallocate(buf []T, n int) []T {
	if a.exhausted() {
		return nil
	}
	id, ok := a.ids[&buf[0]]
	if !ok {
		panic("testutil: reallocate of unknown buffer")
	}
	next := make([]T, n)
	copy(next, buf)
	a.live.Delete(id)
	delete(a.ids, &buf[0])
	a.record(next, n)
	return next
}

func (a *RecordingAllocator[T]) Free(buf []T) {
	id, ok := a.ids[&buf[0]]
	if !ok {
		panic("testutil: free of unknown or already freed buffer")
	}
	a.live.Delete(id)
	delete(a.ids, &buf[0])
	a.frees++
}

func (a *RecordingAllocator[T]) record(buf []T, n int) {
	a.nextID++
	a.allocs++
	a.live.Set(a.nextID, n)
	a.ids[&buf[0]] = a.nextID
}

// Live returns the number of outstanding heap buffers.
func (a *RecordingAllocator[T]) Live() int {
	return a.live.Len()
}

// LiveSizes returns the slot counts of outstanding buffers in allocation
// order.
func (a *RecordingAllocator[T]) LiveSizes() []int {
	sizes := make([]int, 0, a.live.Len())
	for pair := a.live.Oldest(); pair != nil; pair = pair.Next() {
		sizes = append(sizes, pair.Value.(int))
	}
	return sizes
}

// Allocs returns the number of successful Allocate/Reallocate calls.
func (a *RecordingAllocator[T]) Allocs() int {
	return a.allocs
}

// Frees returns the number of Free calls.
func (a *RecordingAllocator[T]) Frees() int {
	return a.frees
}

// Leaks returns a diagnostic describing outstanding buffers, or "" when
// everything handed out has been released.
func (a *RecordingAllocator[T]) Leaks() string {
	if a.live.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("%d live buffer(s), sizes %v", a.live.Len(), a.LiveSizes())
}
