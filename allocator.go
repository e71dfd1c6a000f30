package hybrid

// Allocator supplies and releases buffer memory for a container. The
// containers call it only while growing and during Delete; they never fall
// back to a process-wide default, which keeps allocation-failure paths
// deterministically testable (see internal/testutil).
//
// A nil slice return from Allocate or Reallocate signals allocation
// failure. On failure the caller leaves the container untouched.
type Allocator[T any] interface {
	// Allocate returns a buffer of n elements, or nil on failure.
	Allocate(n int) []T
	// Reallocate returns a buffer of n elements holding the contents of
	// buf, or nil on failure. On failure buf is still valid and unchanged.
	Reallocate(buf []T, n int) []T
	// Free releases a buffer previously obtained from Allocate or
	// Reallocate. It is never called with the inline buffer.
	Free(buf []T)
}

// RuntimeAllocator is the default Allocator, backed by the Go runtime.
// Reallocate copies into a fresh buffer (Go has no realloc) and Free is a
// no-op since the garbage collector reclaims unreferenced buffers.
type RuntimeAllocator[T any] struct{}

func (RuntimeAllocator[T]) Allocate(n int) []T {
	return make([]T, n)
}

func (RuntimeAllocator[T]) Reallocate(buf []T, n int) []T {
	next := make([]T, n)
	copy(next, buf)
	return next
}

func (RuntimeAllocator[T]) Free([]T) {}
