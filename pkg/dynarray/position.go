// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

// Position identifies a slot in [Begin, End]. End is a one-past-the-last
// sentinel: a legal insertion point, never a readable or erasable slot.
//
// Positions are plain integer offsets, not addresses. An operation that
// re-validates a Position does so against the array's current size, so a
// reallocation (which would invalidate a raw pointer) cannot stale a
// Position; only a change in size can push one out of range.
type Position int

// Begin returns the position of the first element. Begin == End iff the
// array is empty.
func (a *Array[T]) Begin() Position { return 0 }

// End returns the one-past-the-last sentinel position.
func (a *Array[T]) End() Position { return Position(a.size) }
