// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// Package dynarray provides a generic, contiguous, growable sequence
// container with explicit capacity management.
//
// An Array owns a single contiguous buffer. Its growth behavior (initial
// capacity, growth factor and bias, optional capacity budget) is fixed per
// instance at construction time and validated by New; there is no global
// mutable configuration.
//
// Every fallible operation reports its outcome as an error return and also
// records it in a per-array last-error slot (a successful operation clears
// prior error state). Outcomes wrap one of the package sentinel errors and
// are matched with errors.Is. A failed operation never partially mutates
// the array. For the fail-fast flavor see Strict.
//
// Arrays are not safe for concurrent use; they assume a single owner.
package dynarray

import "github.com/cockroachdb/errors"

// Configuration defaults. An Array constructed by New without options
// starts with a single slot and doubles on every growth event.
const (
	defaultInitialCapacity = 1
	defaultGrowthFactor    = 2.0
	defaultGrowthBias      = 0
)

type config[T any] struct {
	initialCapacity int
	growthFactor    float64
	growthBias      int
	// maxCapacity caps every reallocation; 0 means unlimited.
	maxCapacity int
	// zero is returned by an out-of-bounds Get.
	zero T
}

// Option configures an Array at construction time.
type Option[T any] func(*config[T])

// WithInitialCapacity sets the number of slots allocated by New.
// It must be at least 1.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(c *config[T]) { c.initialCapacity = n }
}

// WithGrowthFactor sets the multiplicative term of the automatic growth
// formula new = floor(cap*factor) + bias.
func WithGrowthFactor[T any](f float64) Option[T] {
	return func(c *config[T]) { c.growthFactor = f }
}

// WithGrowthBias sets the additive term of the automatic growth formula.
func WithGrowthBias[T any](b int) Option[T] {
	return func(c *config[T]) { c.growthBias = b }
}

// WithMaxCapacity sets a capacity budget. A reallocation that would exceed
// it fails with ErrOutOfMemory, leaving the existing buffer and contents
// untouched. Automatic growth clamps its target to the budget; explicit
// requests (Reserve, Resize) past it fail outright.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(c *config[T]) { c.maxCapacity = n }
}

// WithZeroSentinel sets the value returned by an out-of-bounds Get.
// It defaults to the zero value of T.
func WithZeroSentinel[T any](v T) Option[T] {
	return func(c *config[T]) { c.zero = v }
}

func (c *config[T]) validate() error {
	if c.initialCapacity < 1 {
		return errors.Newf("initial capacity must be at least 1: %d", c.initialCapacity)
	}
	// The growth formula must produce new > cap for every cap >= 1. With
	// factor >= 2 the floor alone guarantees progress; below that the bias
	// has to contribute at least one slot (e.g. factor=1.5 stalls at cap=1).
	if c.growthFactor < 1 || (c.growthFactor < 2 && c.growthBias < 1) {
		return errors.Newf(
			"growth configuration cannot make progress: factor=%v bias=%d",
			c.growthFactor, c.growthBias)
	}
	if c.maxCapacity != 0 && c.maxCapacity < c.initialCapacity {
		return errors.Newf("max capacity %d is below initial capacity %d",
			c.maxCapacity, c.initialCapacity)
	}
	return nil
}

// Array is a growable contiguous sequence of T. The zero value is not
// usable; obtain one from New.
type Array[T any] struct {
	// buf holds capacity slots; the first size are live. Slots in
	// [size, cap) are never exposed through the public contract.
	buf     []T
	size    int
	cfg     config[T]
	lastErr error
}

// New returns a live Array holding a zero-initialized buffer of
// InitialCapacity slots. It is the only way to obtain an Array, which rules
// out re-creation over a live instance (and the leak that came with it) by
// construction. Invalid configurations are rejected here rather than
// surfacing as a runtime growth loop.
func New[T any](opts ...Option[T]) (*Array[T], error) {
	cfg := config[T]{
		initialCapacity: defaultInitialCapacity,
		growthFactor:    defaultGrowthFactor,
		growthBias:      defaultGrowthBias,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Array[T]{buf: make([]T, cfg.initialCapacity), cfg: cfg}, nil
}

// Destroy releases the buffer and returns the array to the terminal zero
// state: no buffer, size 0, capacity 0. The last-error slot is cleared as
// well. After Destroy the array must not be used again; obtain a fresh one
// from New. Unlike a manual free, calling Destroy twice is memory-safe.
func (a *Array[T]) Destroy() {
	a.buf = nil
	a.size = 0
	a.lastErr = nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// Get returns the element at index i. Out of range (checked against Len,
// not Cap) reports ErrOutOfBounds and returns the configured zero sentinel;
// the array is left unmodified.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		return a.cfg.zero, a.record(failf("get", ErrOutOfBounds, "index %d, size %d", i, a.size))
	}
	a.record(nil)
	return a.buf[i], nil
}

// Set replaces the element at index i. Out of range reports ErrOutOfBounds
// and performs no mutation.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.size {
		return a.record(failf("set", ErrOutOfBounds, "index %d, size %d", i, a.size))
	}
	a.buf[i] = v
	return a.record(nil)
}

// Front returns the first element. Unchecked: the result is undefined on
// an empty array. Callers check Empty first.
func (a *Array[T]) Front() T { return a.buf[0] }

// Back returns the last element. Unchecked: the result is undefined on an
// empty array. Callers check Empty first.
func (a *Array[T]) Back() T { return a.buf[a.size-1] }

// Data returns the live elements as a contiguous view of the backing
// buffer. The view is capacity-capped, so appending to it cannot scribble
// over the array's spare slots. Mutating elements through it is visible to
// the array; any operation that reallocates detaches the view.
func (a *Array[T]) Data() []T { return a.buf[:a.size:a.size] }
