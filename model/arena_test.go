// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaInsertGet(t *testing.T) {
	var a Arena[string]
	h1 := a.Insert("one")
	h2 := a.Insert("two")

	v, ok := a.Get(h1)
	assert.True(t, ok)
	assert.Equal(t, "one", *v)
	v, ok = a.Get(h2)
	assert.True(t, ok)
	assert.Equal(t, "two", *v)
	assert.Equal(t, 2, a.Len())
}

func TestArenaStaleHandle(t *testing.T) {
	var a Arena[int]
	h := a.Insert(7)
	v, ok := a.Remove(h)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = a.Get(h)
	assert.False(t, ok)
	_, ok = a.Remove(h)
	assert.False(t, ok)

	// reusing the slot must not revive the old handle
	h2 := a.Insert(9)
	_, ok = a.Get(h)
	assert.False(t, ok)
	v2, ok := a.Get(h2)
	assert.True(t, ok)
	assert.Equal(t, 9, *v2)
}

func TestArenaInsertionOrder(t *testing.T) {
	var a Arena[int]
	h1 := a.Insert(1)
	a.Insert(2)
	a.Insert(3)
	a.Remove(h1)
	a.Insert(4) // reuses slot 0, still iterates last

	var got []int
	for _, v := range a.All() {
		got = append(got, *v)
	}
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestArenaRemoveDuringIteration(t *testing.T) {
	var a Arena[string]
	a.Insert("one")
	h2 := a.Insert("two")
	a.Insert("three")

	var got []string
	for _, v := range a.All() {
		if *v == "one" {
			a.Remove(h2)
		}
		got = append(got, *v)
	}

	// the removed value is skipped, never yielded stale or zero-valued
	assert.Equal(t, []string{"one", "three"}, got)
	assert.Equal(t, 2, a.Len())
}

func TestArenaAllHandlesAreLive(t *testing.T) {
	var a Arena[int]
	a.Insert(10)
	a.Insert(20)
	for h, want := range a.All() {
		got, ok := a.Get(h)
		assert.True(t, ok)
		assert.Equal(t, *want, *got)
	}
}
