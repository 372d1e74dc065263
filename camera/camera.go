// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the first-person camera state and its GPU
// uniform representation.
package camera

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Field of view and clip planes used for every projection.
const (
	FOVY = math32.Pi / 2
	Near = 0.1
	Far  = 100
)

// PitchLimit is the exclusive bound on |Pitch|: keeping the pitch
// strictly inside (-pi/2, pi/2) avoids the basis degenerating when
// looking straight up or down.
const PitchLimit = math32.Pi/2 - 0.01

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera holds a position and an orientation given by yaw, pitch and
// roll. Direction and Up are always derived from the angles via
// [Camera.UpdateOrientation] and must never be set independently.
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	// Yaw, Pitch and Roll are in radians. Yaw rotates around world
	// up, pitch tilts towards it, roll spins around Direction.
	Yaw   float32
	Pitch float32
	Roll  float32
}

// New returns a camera at (0,0,5) looking at the origin.
func New() Camera {
	c := Camera{
		Position: mgl32.Vec3{0, 0, 5},
		Yaw:      -math32.Pi / 2,
	}
	c.UpdateOrientation()
	return c
}

// UpdateOrientation recomputes Direction and Up from Yaw and Pitch.
// The resulting (Direction, right, Up) basis is orthonormal: right is
// derived from world up crossed with Direction, Up from Direction
// crossed with right. Call after any mutation of the angles.
func (c *Camera) UpdateOrientation() {
	c.Direction = mgl32.Vec3{
		math32.Cos(c.Pitch) * math32.Cos(c.Yaw),
		math32.Sin(c.Pitch),
		math32.Cos(c.Pitch) * math32.Sin(c.Yaw),
	}.Normalize()

	right := worldUp.Cross(c.Direction).Normalize()
	c.Up = c.Direction.Cross(right).Normalize()
}

// Right returns the camera's right axis, derived from Up and Direction.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Up.Cross(c.Direction)
}

// ViewProjection builds the right-handed look-at view matrix and the
// perspective projection for the given viewport size. Roll is applied
// by rotating Up around Direction. Both dimensions must be positive;
// the surface resize path guarantees this before rendering.
func (c *Camera) ViewProjection(size image.Point) (view, proj mgl32.Mat4) {
	rolledUp := mgl32.QuatRotate(c.Roll, c.Direction).Rotate(c.Up)
	view = mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), rolledUp)

	aspect := float32(size.X) / float32(size.Y)
	proj = mgl32.Perspective(FOVY, aspect, Near, Far)
	return view, proj
}
