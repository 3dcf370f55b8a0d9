// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

// insertAt places v at offset pos on behalf of op, growing first when the
// buffer is full. pos == size appends.
func (a *Array[T]) insertAt(op string, pos int, v T) error {
	if pos < 0 {
		return a.record(failf(op, ErrInvalidIterator, "position %d precedes begin", pos))
	}
	if pos > a.size {
		return a.record(failf(op, ErrOutOfBounds, "position %d, size %d", pos, a.size))
	}
	if a.size == len(a.buf) {
		if err := a.grow(op); err != nil {
			return a.record(err)
		}
	}
	copy(a.buf[pos+1:a.size+1], a.buf[pos:a.size])
	a.buf[pos] = v
	a.size++
	return a.record(nil)
}

// Insert places v at pos, shifting [pos, End) right by one slot. pos may be
// anywhere in [Begin, End]; inserting at End appends. Past End reports
// ErrOutOfBounds. Growth may reallocate, but since positions are offsets
// they remain meaningful across it. O(n).
func (a *Array[T]) Insert(pos Position, v T) error {
	return a.insertAt("insert", int(pos), v)
}

// PushBack appends v, growing the buffer via the automatic growth formula
// when full. Amortized O(1).
func (a *Array[T]) PushBack(v T) error {
	return a.insertAt("push_back", a.size, v)
}

// Erase removes the element at pos, shifting (pos, End) left by one and
// zero-filling the vacated final slot. pos must be strictly inside
// [Begin, End): the End sentinel is not erasable and reports
// ErrOutOfBounds. O(n).
func (a *Array[T]) Erase(pos Position) error {
	p := int(pos)
	if p < 0 {
		return a.record(failf("erase", ErrInvalidIterator, "position %d precedes begin", p))
	}
	if p >= a.size {
		return a.record(failf("erase", ErrOutOfBounds, "position %d, size %d", p, a.size))
	}
	copy(a.buf[p:a.size-1], a.buf[p+1:a.size])
	var zero T
	a.buf[a.size-1] = zero
	a.size--
	return a.record(nil)
}

// Clear zero-fills the occupied region and sets the size to 0. The
// capacity is retained; no reallocation occurs. O(n).
func (a *Array[T]) Clear() {
	clear(a.buf[:a.size])
	a.size = 0
	a.record(nil)
}
