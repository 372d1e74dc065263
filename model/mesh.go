// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Swiiz/game-template-go/gpu"
)

// Mesh is a vertex and index buffer pair uploaded to the device.
// Both buffers are immutable after creation.
type Mesh struct {
	VertexBuffer *wgpu.Buffer
	IndexBuffer  *wgpu.Buffer

	numIndices  uint32
	indexFormat wgpu.IndexFormat
}

// NewMesh uploads the given vertex and index data. The index format is
// taken from the width of I, which must be uint16 or uint32.
func NewMesh[I uint16 | uint32](g *gpu.GPU, vertices []Vertex, indices []I) *Mesh {
	vb, err := g.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertex Buffer",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	ib, err := g.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Index Buffer",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		vb.Release()
		panic(err)
	}

	format := wgpu.IndexFormatUint16
	if unsafe.Sizeof(I(0)) == 4 {
		format = wgpu.IndexFormatUint32
	}
	if gpu.Debug {
		slog.Debug("mesh uploaded", "vertices", len(vertices), "indices", len(indices))
	}
	return &Mesh{
		VertexBuffer: vb,
		IndexBuffer:  ib,
		numIndices:   uint32(len(indices)),
		indexFormat:  format,
	}
}

// NumIndices returns the number of indices to draw.
func (m *Mesh) NumIndices() uint32 { return m.numIndices }

// IndexFormat returns the format of the index buffer.
func (m *Mesh) IndexFormat() wgpu.IndexFormat { return m.indexFormat }

// Draw binds the mesh buffers on the pass and issues one indexed draw.
func (m *Mesh) Draw(pass *wgpu.RenderPassEncoder) {
	pass.SetVertexBuffer(0, m.VertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(m.IndexBuffer, m.indexFormat, 0, wgpu.WholeSize)
	pass.DrawIndexed(m.numIndices, 1, 0, 0, 0)
}

// Release frees the GPU buffers.
func (m *Mesh) Release() {
	m.VertexBuffer.Release()
	m.IndexBuffer.Release()
}
