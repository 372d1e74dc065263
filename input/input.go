// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input samples keyboard, mouse and scroll state once per
// tick so game logic sees a stable snapshot between frames.
package input

import "github.com/go-gl/glfw/v3.3/glfw"

// State is what game logic reads each tick. All accessors describe
// the same tick: events accumulate during polling and become readable
// together on Step, deltas and pressed edges alike.
type State interface {
	KeyHeld(key glfw.Key) bool
	KeyPressed(key glfw.Key) bool
	MouseHeld(button glfw.MouseButton) bool
	MouseDelta() (dx, dy float32)
	ScrollDelta() (dx, dy float32)
}

// Input is the glfw-backed [State]. Create it before the first
// glfw.PollEvents so no events are missed, and call [Input.Step] once
// per tick right after polling, before anything reads the state.
type Input struct {
	window *glfw.Window

	held           map[glfw.Key]bool
	pressed        map[glfw.Key]bool
	pendingPressed map[glfw.Key]bool

	cursorX, cursorY   float64
	mouseDX, mouseDY   float32
	scrollX, scrollY   float32
	pendingX, pendingY float32

	sampledCursor bool
}

func newInput() *Input {
	return &Input{
		held:           make(map[glfw.Key]bool),
		pressed:        make(map[glfw.Key]bool),
		pendingPressed: make(map[glfw.Key]bool),
	}
}

// New installs the event callbacks on the window.
func New(window *glfw.Window) *Input {
	in := newInput()
	in.window = window
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		in.keyEvent(key, action)
	})
	window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		in.scrollEvent(xoff, yoff)
	})
	return in
}

func (in *Input) keyEvent(key glfw.Key, action glfw.Action) {
	switch action {
	case glfw.Press:
		in.held[key] = true
		in.pendingPressed[key] = true
	case glfw.Release:
		delete(in.held, key)
	}
}

func (in *Input) scrollEvent(xoff, yoff float64) {
	in.pendingX += float32(xoff)
	in.pendingY += float32(yoff)
}

// Step finalizes the tick just polled: cursor movement since the
// previous Step becomes the mouse delta, accumulated scroll becomes
// the scroll delta, and pressed edges become readable for exactly one
// tick.
func (in *Input) Step() {
	x, y := in.window.GetCursorPos()
	in.finalize(x, y)
}

func (in *Input) finalize(x, y float64) {
	if in.sampledCursor {
		in.mouseDX = float32(x - in.cursorX)
		in.mouseDY = float32(y - in.cursorY)
	}
	in.cursorX, in.cursorY = x, y
	in.sampledCursor = true

	in.scrollX, in.scrollY = in.pendingX, in.pendingY
	in.pendingX, in.pendingY = 0, 0

	in.pressed, in.pendingPressed = in.pendingPressed, in.pressed
	clear(in.pendingPressed)
}

// KeyHeld reports whether the key is currently down.
func (in *Input) KeyHeld(key glfw.Key) bool { return in.held[key] }

// KeyPressed reports whether the key went down during the tick
// finalized by the last Step.
func (in *Input) KeyPressed(key glfw.Key) bool { return in.pressed[key] }

// MouseHeld reports whether the button is currently down.
func (in *Input) MouseHeld(button glfw.MouseButton) bool {
	return in.window.GetMouseButton(button) == glfw.Press
}

// MouseDelta returns the cursor movement of the tick finalized by the
// last Step, in screen pixels.
func (in *Input) MouseDelta() (dx, dy float32) { return in.mouseDX, in.mouseDY }

// ScrollDelta returns the scroll wheel movement of the tick finalized
// by the last Step.
func (in *Input) ScrollDelta() (dx, dy float32) { return in.scrollX, in.scrollY }
