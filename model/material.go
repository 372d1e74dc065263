// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"iter"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Swiiz/game-template-go/camera"
	"github.com/Swiiz/game-template-go/gpu"
)

// Material draws a batch of meshes that share one pipeline. The
// registry hands each material the open render pass once per frame
// with the meshes registered under it; the material binds its pipeline
// and resources and issues the draws.
type Material interface {
	Render(g *gpu.GPU, pass *wgpu.RenderPassEncoder, cam *camera.Uniform, meshes iter.Seq[*Mesh])
}
