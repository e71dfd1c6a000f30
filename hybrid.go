// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package hybrid provides the shared configuration surface for a family of
// growable, contiguous-memory containers backed by hybrid inline/heap
// buffers: a LIFO stack, a FIFO circular queue and a double-ended circular
// deque (see the stack, queue and deque packages).
//
// Each container starts out on a fixed-capacity inline buffer and promotes
// itself to a geometrically growing heap buffer once the inline capacity is
// exhausted. Capacities are constrained to powers of two so that circular
// index arithmetic reduces to a bitwise AND with capacity-1.
//
// Containers are generic over two types: the element type and an unsigned
// length type which bounds the maximum capacity. All containers assume
// single-threaded, non-reentrant use; callers sharing an instance across
// goroutines must provide their own synchronization.
package hybrid

import (
	"errors"
	"fmt"
)

const (
	// DefaultInitCapacity is the inline buffer capacity used when
	// WithInitCapacity is not given.
	DefaultInitCapacity = 8
	// DefaultGrowthFactor is the capacity multiplier used when
	// WithGrowthFactor is not given.
	DefaultGrowthFactor = 2

	maxInitCapacity = 256
	maxGrowthFactor = 32
)

var (
	// ErrInitCapacity is returned by NewConfig when the initial capacity is
	// not a power of two in [2, 256).
	ErrInitCapacity = errors.New("initial capacity must be a power of two in [2, 256)")
	// ErrGrowthFactor is returned by NewConfig when the growth factor is
	// not a power of two in [2, 32).
	ErrGrowthFactor = errors.New("growth factor must be a power of two in [2, 32)")
	// ErrCapacityOverflow is returned when growing would exceed the maximum
	// value representable by the container's length type.
	ErrCapacityOverflow = errors.New("capacity overflows length type")
	// ErrAllocation is returned when the configured allocator fails.
	ErrAllocation = errors.New("allocation failed")
	// ErrEmpty names the remove-from-empty condition. Removal operations
	// report it as a false return rather than an error value; the variable
	// exists for documentation and tests.
	ErrEmpty = errors.New("container is empty")
)

// Config holds the definition-time parameters of a container. The zero
// value is not usable directly - obtain a validated Config through
// NewConfig.
type Config[T any] struct {
	// InitCapacity is the capacity of the inline buffer. Power of two,
	// 2 <= InitCapacity < 256.
	InitCapacity uint
	// GrowthFactor multiplies the capacity on every growth. Power of two,
	// 2 <= GrowthFactor < 32.
	GrowthFactor uint
	// Validate, when non-nil, is invoked on every inserted value in
	// assertion-enabled builds (hybriddebug build tag). A false return
	// indicates caller misuse and panics; it is never a runtime error.
	Validate func(T) bool
	// Allocator supplies buffer memory. Nil selects the runtime allocator.
	Allocator Allocator[T]
}

// Option configures a container at definition time.
type Option[T any] func(*Config[T])

// WithInitCapacity sets the inline buffer capacity. Must be a power of two
// in [2, 256).
func WithInitCapacity[T any](capacity uint) Option[T] {
	return func(c *Config[T]) {
		c.InitCapacity = capacity
	}
}

// WithGrowthFactor sets the capacity multiplier applied on growth. Must be
// a power of two in [2, 32).
func WithGrowthFactor[T any](factor uint) Option[T] {
	return func(c *Config[T]) {
		c.GrowthFactor = factor
	}
}

// WithValidator sets the element validator asserted before every insertion
// in assertion-enabled builds.
func WithValidator[T any](validate func(T) bool) Option[T] {
	return func(c *Config[T]) {
		c.Validate = validate
	}
}

// WithAllocator sets the allocator used for heap buffers.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(c *Config[T]) {
		c.Allocator = alloc
	}
}

// NewConfig applies opts over the defaults and validates the result.
// Constraint violations are reported as errors wrapping ErrInitCapacity or
// ErrGrowthFactor - containers reject them at definition time, never at
// operation time.
func NewConfig[T any](opts ...Option[T]) (Config[T], error) {
	cfg := Config[T]{
		InitCapacity: DefaultInitCapacity,
		GrowthFactor: DefaultGrowthFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.InitCapacity < 2 || cfg.InitCapacity >= maxInitCapacity || !powerOfTwo(cfg.InitCapacity) {
		return Config[T]{}, fmt.Errorf("%w: got %d", ErrInitCapacity, cfg.InitCapacity)
	}
	if cfg.GrowthFactor < 2 || cfg.GrowthFactor >= maxGrowthFactor || !powerOfTwo(cfg.GrowthFactor) {
		return Config[T]{}, fmt.Errorf("%w: got %d", ErrGrowthFactor, cfg.GrowthFactor)
	}
	if cfg.Allocator == nil {
		cfg.Allocator = RuntimeAllocator[T]{}
	}
	return cfg, nil
}

func powerOfTwo(v uint) bool {
	return v != 0 && v&(v-1) == 0
}
