// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthDeterminism(t *testing.T) {
	// InitialCapacity=1, GrowthFactor=2, GrowthBias=0: five pushes see
	// capacities 1, 2, 4, 4, 8.
	a, err := New[int]()
	require.NoError(t, err)

	want := []int{1, 2, 4, 4, 8}
	for i, w := range want {
		require.NoError(t, a.PushBack(i))
		assert.Equal(t, w, a.Cap(), "capacity after push %d", i+1)
	}
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 8, a.Cap())
}

func TestGrowthFormula(t *testing.T) {
	// floor(cap*1.5)+1 from capacity 2: 2 -> 4 -> 7 -> 11.
	a, err := New[int](
		WithInitialCapacity[int](2),
		WithGrowthFactor[int](1.5),
		WithGrowthBias[int](1),
	)
	require.NoError(t, err)

	var caps []int
	last := a.Cap()
	caps = append(caps, last)
	for i := 0; i < 10; i++ {
		require.NoError(t, a.PushBack(i))
		if c := a.Cap(); c != last {
			caps = append(caps, c)
			last = c
		}
	}
	assert.Equal(t, []int{2, 4, 7, 11}, caps)
}

func TestCapacityMonotonic(t *testing.T) {
	a, err := New[int](WithGrowthFactor[int](1.5), WithGrowthBias[int](1))
	require.NoError(t, err)
	prev := a.Cap()
	for i := 0; i < 500; i++ {
		require.NoError(t, a.PushBack(i))
		require.GreaterOrEqual(t, a.Cap(), prev)
		require.GreaterOrEqual(t, a.Cap(), a.Len())
		prev = a.Cap()
	}
	assert.Equal(t, 500, a.Len())
}

func TestReserve(t *testing.T) {
	a, err := New[int]()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, a.PushBack(i))
	}

	require.NoError(t, a.Reserve(32))
	assert.Equal(t, 32, a.Cap())
	assert.Equal(t, []int{0, 1, 2}, a.Data())

	// Reserve never shrinks; smaller requests are successful no-ops.
	require.NoError(t, a.Reserve(4))
	assert.Equal(t, 32, a.Cap())

	require.ErrorIs(t, a.Reserve(0), ErrInvalidSize)
	require.ErrorIs(t, a.Reserve(-1), ErrInvalidSize)
	assert.Equal(t, 32, a.Cap())
	assert.Equal(t, []int{0, 1, 2}, a.Data())
}

func TestResize(t *testing.T) {
	a, err := New[int](WithInitialCapacity[int](4))
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, a.PushBack(i))
	}

	// Growing within capacity zero-fills the exposed tail and keeps the
	// capacity.
	require.NoError(t, a.Resize(4))
	assert.Equal(t, []int{1, 2, 3, 0}, a.Data())
	assert.Equal(t, 4, a.Cap())

	// Growing past capacity reallocates to exactly the requested size.
	require.NoError(t, a.Resize(7))
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0, 0}, a.Data())
	assert.Equal(t, 7, a.Cap())
	assert.Equal(t, 7, a.Len())

	// Shrinking truncates, retains capacity, leaves the prefix untouched.
	require.NoError(t, a.Set(3, 44))
	require.NoError(t, a.Resize(2))
	assert.Equal(t, []int{1, 2}, a.Data())
	assert.Equal(t, 7, a.Cap())

	// A size-preserving resize is a successful no-op.
	require.NoError(t, a.Resize(2))
	assert.Equal(t, 7, a.Cap())

	// Data abandoned by a shrink does not resurface on regrowth.
	require.NoError(t, a.Resize(5))
	assert.Equal(t, []int{1, 2, 0, 0, 0}, a.Data())

	require.ErrorIs(t, a.Resize(0), ErrInvalidSize)
	require.ErrorIs(t, a.Resize(-2), ErrInvalidSize)
	assert.Equal(t, []int{1, 2, 0, 0, 0}, a.Data())
}

func TestMaxCapacity(t *testing.T) {
	a, err := New[int](WithInitialCapacity[int](2), WithMaxCapacity[int](5))
	require.NoError(t, err)

	// Automatic growth clamps to the budget: 2 -> 4 -> 5.
	for i := 0; i < 5; i++ {
		require.NoError(t, a.PushBack(i))
	}
	assert.Equal(t, 5, a.Cap())

	// The budget exhausted, a further push fails and mutates nothing.
	err = a.PushBack(99)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Data())
	assert.Equal(t, 5, a.Cap())

	// Exact requests past the budget fail outright, prior buffer retained.
	require.ErrorIs(t, a.Reserve(6), ErrOutOfMemory)
	require.ErrorIs(t, a.Resize(9), ErrOutOfMemory)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Data())
	assert.Equal(t, 5, a.Cap())

	// Operations within the budget still work.
	require.NoError(t, a.Erase(a.Begin()))
	require.NoError(t, a.PushBack(5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Data())
}

func TestClear(t *testing.T) {
	a, err := New[int]()
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		require.NoError(t, a.PushBack(i + 1))
	}
	capBefore := a.Cap()

	a.Clear()
	assert.True(t, a.Empty())
	assert.Equal(t, capBefore, a.Cap())

	// The occupied region was zero-filled, not just forgotten.
	for i := 0; i < 9; i++ {
		assert.Zero(t, a.buf[i])
	}
	checkInvariants(t, a)
}
