// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Swiiz/game-template-go/camera"
	"github.com/Swiiz/game-template-go/input"
)

// Controller turns sampled input into fly-camera movement: WASD on
// the horizontal plane, Space and left shift along world Y, mouse for
// yaw and pitch.
type Controller struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool

	Speed       float32
	Sensitivity float32

	mouseDX, mouseDY float32
}

// NewController returns a controller with the default speed and mouse
// sensitivity.
func NewController() *Controller {
	return &Controller{Speed: 2, Sensitivity: 0.1}
}

// HandleInput samples the movement keys and mouse delta. With
// adjustableSpeed the scroll wheel scales the speed, clamped to
// [0.1, 20].
func (c *Controller) HandleInput(in input.State, adjustableSpeed bool) {
	c.Forward = in.KeyHeld(glfw.KeyW)
	c.Backward = in.KeyHeld(glfw.KeyS)
	c.Left = in.KeyHeld(glfw.KeyA)
	c.Right = in.KeyHeld(glfw.KeyD)
	c.Up = in.KeyHeld(glfw.KeySpace)
	c.Down = in.KeyHeld(glfw.KeyLeftShift)

	if adjustableSpeed {
		_, scroll := in.ScrollDelta()
		c.Speed = clamp(c.Speed+scroll*0.3, 0.1, 20)
	}

	c.mouseDX, c.mouseDY = in.MouseDelta()
}

// UpdateCamera applies the sampled input to the camera, scaled by the
// frame time. Mouse Y is inverted so moving the mouse up looks up.
func (c *Controller) UpdateCamera(cam *camera.Camera, dt time.Duration) {
	t := float32(dt.Seconds())

	cam.Yaw += c.mouseDX * c.Sensitivity * t
	cam.Pitch -= c.mouseDY * c.Sensitivity * t
	cam.Pitch = clamp(cam.Pitch, -camera.PitchLimit, camera.PitchLimit)
	cam.UpdateOrientation()

	right := cam.Right()
	upMovement := mgl32.Vec3{0, 1, 0}

	step := c.Speed * t
	if c.Forward {
		cam.Position = cam.Position.Add(cam.Direction.Mul(step))
	}
	if c.Backward {
		cam.Position = cam.Position.Sub(cam.Direction.Mul(step))
	}
	if c.Left {
		cam.Position = cam.Position.Add(right.Mul(step))
	}
	if c.Right {
		cam.Position = cam.Position.Sub(right.Mul(step))
	}
	if c.Up {
		cam.Position = cam.Position.Add(upMovement.Mul(step))
	}
	if c.Down {
		cam.Position = cam.Position.Sub(upMovement.Mul(step))
	}
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
