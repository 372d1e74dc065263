// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestScrollReadableSameTick(t *testing.T) {
	in := newInput()

	// events of the current tick are pending until Step finalizes them
	in.scrollEvent(0, 2.5)
	_, dy := in.ScrollDelta()
	assert.Equal(t, float32(0), dy)

	in.finalize(0, 0)
	_, dy = in.ScrollDelta()
	assert.Equal(t, float32(2.5), dy)

	// consumed: the next tick starts from zero
	in.finalize(0, 0)
	_, dy = in.ScrollDelta()
	assert.Equal(t, float32(0), dy)
}

func TestPressedEdgeLastsOneTick(t *testing.T) {
	in := newInput()

	in.keyEvent(glfw.KeyW, glfw.Press)
	assert.True(t, in.KeyHeld(glfw.KeyW))
	assert.False(t, in.KeyPressed(glfw.KeyW))

	in.finalize(0, 0)
	assert.True(t, in.KeyPressed(glfw.KeyW))
	assert.True(t, in.KeyHeld(glfw.KeyW))

	in.finalize(0, 0)
	assert.False(t, in.KeyPressed(glfw.KeyW))
	assert.True(t, in.KeyHeld(glfw.KeyW))

	in.keyEvent(glfw.KeyW, glfw.Release)
	assert.False(t, in.KeyHeld(glfw.KeyW))
}

func TestMouseDeltaPerTick(t *testing.T) {
	in := newInput()

	// first tick establishes the reference position, no delta
	in.finalize(10, 5)
	dx, dy := in.MouseDelta()
	assert.Equal(t, float32(0), dx)
	assert.Equal(t, float32(0), dy)

	in.finalize(13, 9)
	dx, dy = in.MouseDelta()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(4), dy)

	// no movement: delta decays to zero
	in.finalize(13, 9)
	dx, dy = in.MouseDelta()
	assert.Equal(t, float32(0), dx)
	assert.Equal(t, float32(0), dy)
}
