// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render ties the camera uniform and the model registry into
// one renderer driven by the frame loop.
package render

import (
	"github.com/Swiiz/game-template-go/camera"
	"github.com/Swiiz/game-template-go/gpu"
	"github.com/Swiiz/game-template-go/model"
)

// Renderer owns the per-frame camera uniform and the material and
// mesh registry.
type Renderer struct {
	cameraUniform *camera.Uniform
	models        *model.Registry
}

// New creates the renderer for the given device.
func New(g *gpu.GPU) *Renderer {
	return &Renderer{
		cameraUniform: camera.NewUniform(g),
		models:        model.NewRegistry(g),
	}
}

// Models returns the material and mesh registry.
func (r *Renderer) Models() *model.Registry { return r.models }

// CameraUniform returns the camera uniform, for materials that need
// its bind group layout when building pipelines.
func (r *Renderer) CameraUniform() *camera.Uniform { return r.cameraUniform }

// UpdateCamera uploads the camera's current matrices. Call once per
// frame before [Renderer.Render].
func (r *Renderer) UpdateCamera(g *gpu.GPU, cam *camera.Camera) {
	r.cameraUniform.Update(g, cam)
}

// Render draws every registered material batch into the frame.
func (r *Renderer) Render(g *gpu.GPU, frame *gpu.Frame) {
	r.models.Render(g, frame, r.cameraUniform)
}

// OnResize rebuilds viewport-sized resources. Call after the surface
// has been reconfigured.
func (r *Renderer) OnResize(g *gpu.GPU) {
	r.models.OnResize(g)
}

// Release frees the renderer's GPU resources.
func (r *Renderer) Release() {
	r.models.Release()
	r.cameraUniform.Release()
}
