// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

// Strict adapts an Array to the fail-fast policy: every operation that
// would report an error panics with its Diagnostic instead of returning
// it. It is a thin wrapper over the recoverable contract, for callers that
// treat any container failure as a programming error.
type Strict[T any] struct {
	arr *Array[T]
}

// NewStrict constructs an Array with the given options and wraps it.
// Configuration errors are still returned, not panicked: rejecting a bad
// growth configuration is part of construction, not an operation outcome.
func NewStrict[T any](opts ...Option[T]) (*Strict[T], error) {
	a, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	return &Strict[T]{arr: a}, nil
}

// WrapStrict adapts an existing Array. The wrapper shares the array; mixing
// strict and recoverable calls on the same underlying array is fine.
func WrapStrict[T any](a *Array[T]) *Strict[T] { return &Strict[T]{arr: a} }

// Unwrap returns the underlying Array.
func (s *Strict[T]) Unwrap() *Array[T] { return s.arr }

func (s *Strict[T]) must(err error) {
	if err != nil {
		panic(Diagnostic(err))
	}
}

// Get returns the element at index i, panicking on a bounds violation.
func (s *Strict[T]) Get(i int) T {
	v, err := s.arr.Get(i)
	s.must(err)
	return v
}

// Set replaces the element at index i, panicking on a bounds violation.
func (s *Strict[T]) Set(i int, v T) { s.must(s.arr.Set(i, v)) }

// Insert places v at pos, panicking on failure.
func (s *Strict[T]) Insert(pos Position, v T) { s.must(s.arr.Insert(pos, v)) }

// Erase removes the element at pos, panicking on failure.
func (s *Strict[T]) Erase(pos Position) { s.must(s.arr.Erase(pos)) }

// PushBack appends v, panicking on failure.
func (s *Strict[T]) PushBack(v T) { s.must(s.arr.PushBack(v)) }

// Reserve ensures capacity for at least n elements, panicking on failure.
func (s *Strict[T]) Reserve(n int) { s.must(s.arr.Reserve(n)) }

// Resize sets the live element count to n, panicking on failure.
func (s *Strict[T]) Resize(n int) { s.must(s.arr.Resize(n)) }

// Clear zero-fills the occupied region and sets the size to 0.
func (s *Strict[T]) Clear() { s.arr.Clear() }

// Destroy releases the underlying array.
func (s *Strict[T]) Destroy() { s.arr.Destroy() }

// Len returns the number of live elements.
func (s *Strict[T]) Len() int { return s.arr.Len() }

// Cap returns the number of allocated slots.
func (s *Strict[T]) Cap() int { return s.arr.Cap() }

// Empty reports whether the array holds no elements.
func (s *Strict[T]) Empty() bool { return s.arr.Empty() }

// Front returns the first element; the result is undefined on an empty
// array.
func (s *Strict[T]) Front() T { return s.arr.Front() }

// Back returns the last element; the result is undefined on an empty
// array.
func (s *Strict[T]) Back() T { return s.arr.Back() }

// Data returns the live elements as a contiguous view.
func (s *Strict[T]) Data() []T { return s.arr.Data() }

// Begin returns the position of the first element.
func (s *Strict[T]) Begin() Position { return s.arr.Begin() }

// End returns the one-past-the-last sentinel position.
func (s *Strict[T]) End() Position { return s.arr.End() }
