// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cogentcore/webgpu/wgpu"

// Vertex is the interleaved per-vertex layout shared by all built-in
// primitives: position then texture coordinates.
type Vertex struct {
	Position [3]float32
	UV       [2]float32
}

// VertexLayout returns the buffer layout matching [Vertex], bound at
// shader locations 0 (position) and 1 (uv).
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 5 * 4,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         3 * 4,
				ShaderLocation: 1,
			},
		},
	}
}
