// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestCursorGrabRequest(t *testing.T) {
	a := &App{}
	assert.False(t, a.CursorGrabbed())

	a.SetCursorGrab(true)
	assert.True(t, a.CursorGrabbed())
	assert.True(t, a.cursorDirty)

	// requesting the current mode again must not re-apply it
	a.cursorDirty = false
	a.SetCursorGrab(true)
	assert.False(t, a.cursorDirty)

	a.SetCursorGrab(false)
	assert.True(t, a.cursorDirty)
}

func TestCursorModeMapping(t *testing.T) {
	assert.Equal(t, glfw.CursorDisabled, cursorMode(true))
	assert.Equal(t, glfw.CursorNormal, cursorMode(false))
}
