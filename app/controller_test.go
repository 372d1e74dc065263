// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/Swiiz/game-template-go/camera"
)

// fakeInput implements input.State with canned values.
type fakeInput struct {
	held             map[glfw.Key]bool
	mouseDX, mouseDY float32
	scrollY          float32
}

func (f *fakeInput) KeyHeld(k glfw.Key) bool         { return f.held[k] }
func (f *fakeInput) KeyPressed(glfw.Key) bool        { return false }
func (f *fakeInput) MouseHeld(glfw.MouseButton) bool { return false }
func (f *fakeInput) MouseDelta() (float32, float32)  { return f.mouseDX, f.mouseDY }
func (f *fakeInput) ScrollDelta() (float32, float32) { return 0, f.scrollY }

func TestControllerSamplesKeys(t *testing.T) {
	c := NewController()
	c.HandleInput(&fakeInput{held: map[glfw.Key]bool{
		glfw.KeyW:         true,
		glfw.KeyA:         true,
		glfw.KeySpace:     true,
		glfw.KeyLeftShift: true,
	}}, false)

	assert.True(t, c.Forward)
	assert.False(t, c.Backward)
	assert.True(t, c.Left)
	assert.False(t, c.Right)
	assert.True(t, c.Up)
	assert.True(t, c.Down)
}

func TestControllerMovementIntegration(t *testing.T) {
	c := NewController()
	c.Speed = 2
	cam := camera.New()
	start := cam.Position

	c.HandleInput(&fakeInput{held: map[glfw.Key]bool{glfw.KeyW: true}}, false)
	c.UpdateCamera(&cam, 500*time.Millisecond)

	// default camera looks down -Z; half a second at speed 2 moves one unit
	assert.InDelta(t, start.X(), cam.Position.X(), 1e-5)
	assert.InDelta(t, start.Y(), cam.Position.Y(), 1e-5)
	assert.InDelta(t, start.Z()-1, cam.Position.Z(), 1e-5)
}

func TestControllerOpposingFlagsCancel(t *testing.T) {
	c := NewController()
	cam := camera.New()
	start := cam.Position

	c.HandleInput(&fakeInput{held: map[glfw.Key]bool{
		glfw.KeyW:         true,
		glfw.KeyS:         true,
		glfw.KeyA:         true,
		glfw.KeyD:         true,
		glfw.KeySpace:     true,
		glfw.KeyLeftShift: true,
	}}, false)
	c.UpdateCamera(&cam, time.Second)

	assert.InDelta(t, start.X(), cam.Position.X(), 1e-5)
	assert.InDelta(t, start.Y(), cam.Position.Y(), 1e-5)
	assert.InDelta(t, start.Z(), cam.Position.Z(), 1e-5)
}

func TestControllerVerticalMovementIsWorldY(t *testing.T) {
	c := NewController()
	cam := camera.New()
	cam.Pitch = 1 // looking up; vertical movement must still be world Y
	cam.UpdateOrientation()
	start := cam.Position

	c.HandleInput(&fakeInput{held: map[glfw.Key]bool{glfw.KeySpace: true}}, false)
	c.UpdateCamera(&cam, time.Second)

	assert.InDelta(t, start.X(), cam.Position.X(), 1e-5)
	assert.InDelta(t, start.Y()+c.Speed, cam.Position.Y(), 1e-5)
	assert.InDelta(t, start.Z(), cam.Position.Z(), 1e-5)
}

func TestControllerSpeedClamp(t *testing.T) {
	c := NewController()

	c.HandleInput(&fakeInput{scrollY: 1000}, true)
	assert.Equal(t, float32(20), c.Speed)

	c.HandleInput(&fakeInput{scrollY: -1000}, true)
	assert.Equal(t, float32(0.1), c.Speed)

	// not adjustable: scroll is ignored
	c.Speed = 5
	c.HandleInput(&fakeInput{scrollY: 3}, false)
	assert.Equal(t, float32(5), c.Speed)
}

func TestControllerMouseLookInvertedY(t *testing.T) {
	c := NewController()
	cam := camera.New()
	yaw, pitch := cam.Yaw, cam.Pitch

	c.HandleInput(&fakeInput{mouseDX: 10, mouseDY: 10}, false)
	c.UpdateCamera(&cam, time.Second)

	assert.Greater(t, cam.Yaw, yaw)
	assert.Less(t, cam.Pitch, pitch)
}

func TestControllerPitchClamp(t *testing.T) {
	c := NewController()
	cam := camera.New()

	for i := 0; i < 100; i++ {
		c.HandleInput(&fakeInput{mouseDY: -500}, false)
		c.UpdateCamera(&cam, time.Second)
	}
	assert.LessOrEqual(t, cam.Pitch, camera.PitchLimit)

	for i := 0; i < 100; i++ {
		c.HandleInput(&fakeInput{mouseDY: 500}, false)
		c.UpdateCamera(&cam, time.Second)
	}
	assert.GreaterOrEqual(t, cam.Pitch, -camera.PitchLimit)
}
