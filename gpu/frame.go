// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/cogentcore/webgpu/wgpu"

// Frame bundles everything needed to record one frame of rendering:
// the view of the acquired surface texture and an open command encoder.
// A Frame lives for exactly one render and is consumed by [GPU.Present]
// (or abandoned with [Frame.Discard]); it must not be kept across ticks.
type Frame struct {
	// View is the render target for this frame's passes.
	View *wgpu.TextureView

	// Encoder records all GPU commands for this frame.
	Encoder *wgpu.CommandEncoder

	surface *wgpu.Texture
}

// Discard abandons the frame without presenting it. The acquired
// surface texture is released so the next NextFrame can succeed.
func (f *Frame) Discard() {
	f.release()
}

func (f *Frame) release() {
	if f.Encoder != nil {
		f.Encoder.Release()
		f.Encoder = nil
	}
	if f.View != nil {
		f.View.Release()
		f.View = nil
	}
	if f.surface != nil {
		f.surface.Release()
		f.surface = nil
	}
}
