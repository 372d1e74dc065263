// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"iter"
	"slices"
)

// Handle is a generational reference into an [Arena]. A handle goes
// stale when its slot is removed: the slot's generation is bumped and
// every lookup with the old handle fails from then on, even if the
// slot is reused.
type Handle struct {
	index      uint32
	generation uint32
}

// Arena is a slot allocator with generational handles. Freed slots are
// reused, and iteration visits live values in insertion order.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	order []uint32
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.value = v
	s.live = true
	a.order = append(a.order, idx)
	return Handle{index: idx, generation: s.generation}
}

// Get returns a pointer to the value for h, or false if h is stale.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.valid(h) {
		return nil, false
	}
	return &a.slots[h.index].value, true
}

// Remove frees the slot for h and returns its value. Removing with a
// stale handle is a no-op.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	if !a.valid(h) {
		return zero, false
	}
	s := &a.slots[h.index]
	v := s.value
	s.value = zero
	s.live = false
	s.generation++
	a.free = append(a.free, h.index)
	for i, idx := range a.order {
		if idx == h.index {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return len(a.order) }

// All iterates live values in insertion order. The order is
// snapshotted when iteration starts: values inserted during iteration
// are not visited, and values removed during iteration are skipped
// rather than yielded stale.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for _, idx := range slices.Clone(a.order) {
			s := &a.slots[idx]
			if !s.live {
				continue
			}
			if !yield(Handle{index: idx, generation: s.generation}, &s.value) {
				return
			}
		}
	}
}

func (a *Arena[T]) valid(h Handle) bool {
	return h.index < uint32(len(a.slots)) &&
		a.slots[h.index].live &&
		a.slots[h.index].generation == h.generation
}
