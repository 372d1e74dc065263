// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Swiiz/game-template-go/gpu"
)

// Matrices is the GPU-visible camera data: two column-major 4x4 float
// matrices, 128 bytes total with no padding, matching
//
//	struct CameraUniform { view: mat4x4<f32>, proj: mat4x4<f32> }
//
// at @group(0) @binding(0) in WGSL.
type Matrices struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Uniform owns the camera uniform buffer together with its bind group
// and layout. The layout and bind group are created once; only the
// buffer contents are refreshed each frame via [Uniform.Update].
// Materials bind it at group 0 and share the layout for their
// pipeline layouts.
type Uniform struct {
	buffer    *wgpu.Buffer
	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

// NewUniform creates the uniform buffer, its bind group layout
// (binding 0, visible to vertex, fragment and compute stages) and the
// bind group, seeded from a default camera at the current viewport.
func NewUniform(g *gpu.GPU) *Uniform {
	cam := New()
	view, proj := cam.ViewProjection(g.ViewportSize)
	data := []Matrices{{View: view, Projection: proj}}

	buffer, err := g.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "camera uniform buffer",
		Contents: wgpu.ToBytes(data),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(fmt.Sprintf("camera: could not create uniform buffer: %v", err))
	}

	layout, err := g.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding: 0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment |
				wgpu.ShaderStageCompute,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		}},
	})
	if err != nil {
		panic(fmt.Sprintf("camera: could not create bind group layout: %v", err))
	}

	bindGroup, err := g.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera bind group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buffer,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		panic(fmt.Sprintf("camera: could not create bind group: %v", err))
	}

	return &Uniform{buffer: buffer, layout: layout, bindGroup: bindGroup}
}

// Update refreshes the uniform buffer from the camera's current pose
// and the current viewport size.
func (u *Uniform) Update(g *gpu.GPU, cam *Camera) {
	view, proj := cam.ViewProjection(g.ViewportSize)
	data := []Matrices{{View: view, Projection: proj}}
	if err := g.Queue.WriteBuffer(u.buffer, 0, wgpu.ToBytes(data)); err != nil {
		slog.Error("camera: uniform write failed", "err", err)
	}
}

// Layout returns the bind group layout, for use in pipeline layouts.
func (u *Uniform) Layout() *wgpu.BindGroupLayout { return u.layout }

// BindGroup returns the bind group to set at group 0 while drawing.
func (u *Uniform) BindGroup() *wgpu.BindGroup { return u.bindGroup }

// Release frees the GPU resources owned by the uniform.
func (u *Uniform) Release() {
	if u.bindGroup != nil {
		u.bindGroup.Release()
		u.bindGroup = nil
	}
	if u.layout != nil {
		u.layout.Release()
		u.layout = nil
	}
	if u.buffer != nil {
		u.buffer.Release()
		u.buffer = nil
	}
}
