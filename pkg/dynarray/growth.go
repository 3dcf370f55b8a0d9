// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

// nextCapacity returns the target of one automatic growth step,
// new = floor(cap*factor) + bias, clamped to the capacity budget.
func (a *Array[T]) nextCapacity() int {
	next := int(float64(len(a.buf))*a.cfg.growthFactor) + a.cfg.growthBias
	if next <= len(a.buf) {
		// Unreachable for a configuration accepted by New on a live array;
		// keeps the progress invariant from the terminal zero state too.
		next = len(a.buf) + 1
	}
	if a.cfg.maxCapacity > 0 && next > a.cfg.maxCapacity {
		next = a.cfg.maxCapacity
	}
	return next
}

// grow runs one automatic growth step on behalf of op. Called by the
// mutators when size == capacity.
func (a *Array[T]) grow(op string) error {
	if a.cfg.maxCapacity > 0 && len(a.buf) >= a.cfg.maxCapacity {
		return failf(op, ErrOutOfMemory, "capacity budget %d exhausted", a.cfg.maxCapacity)
	}
	a.reallocate(a.nextCapacity())
	return nil
}

// reallocate moves the live elements into a fresh buffer of exactly n
// slots. The old buffer is not touched until the new one exists, so a
// failed allocation can never abandon live contents. Invalidates every
// outstanding Data view.
func (a *Array[T]) reallocate(n int) {
	buf := make([]T, n)
	copy(buf, a.buf[:a.size])
	a.buf = buf
}

// Reserve ensures capacity for at least n elements. It succeeds as a no-op
// when n does not exceed the current capacity (reserve never shrinks).
// n <= 0 reports ErrInvalidSize; exceeding the capacity budget reports
// ErrOutOfMemory, in both cases leaving the array unchanged.
func (a *Array[T]) Reserve(n int) error {
	if n <= 0 {
		return a.record(failf("reserve", ErrInvalidSize, "capacity cannot be %d", n))
	}
	if n <= len(a.buf) {
		return a.record(nil)
	}
	if a.cfg.maxCapacity > 0 && n > a.cfg.maxCapacity {
		return a.record(failf("reserve", ErrOutOfMemory,
			"%d exceeds capacity budget %d", n, a.cfg.maxCapacity))
	}
	a.reallocate(n)
	return a.record(nil)
}

// Resize sets the number of live elements to exactly n. n <= 0 reports
// ErrInvalidSize; n == Len is a successful no-op. Growing past the current
// capacity reallocates to exactly n (an explicit request bypasses the
// growth formula) and sets both size and capacity to n. The newly exposed
// region [old, n) is zero-filled whether or not a reallocation occurred.
// Shrinking leaves the retained prefix untouched and keeps the capacity
// (the "retain" policy); the abandoned tail is zero-filled.
func (a *Array[T]) Resize(n int) error {
	switch {
	case n <= 0:
		return a.record(failf("resize", ErrInvalidSize, "size cannot be %d", n))
	case n == a.size:
		return a.record(nil)
	case n > len(a.buf):
		if a.cfg.maxCapacity > 0 && n > a.cfg.maxCapacity {
			return a.record(failf("resize", ErrOutOfMemory,
				"%d exceeds capacity budget %d", n, a.cfg.maxCapacity))
		}
		a.reallocate(n) // the fresh tail is already zeroed
		a.size = n
	case n > a.size:
		clear(a.buf[a.size:n])
		a.size = n
	default: // n < a.size
		clear(a.buf[n:a.size])
		a.size = n
	}
	return a.record(nil)
}
