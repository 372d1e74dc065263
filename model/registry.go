// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"iter"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Swiiz/game-template-go/camera"
	"github.com/Swiiz/game-template-go/gpu"
)

// MaterialID identifies a registered material.
type MaterialID struct {
	h Handle
}

// MeshID identifies a registered mesh. It carries the material the
// mesh was registered under.
type MeshID struct {
	h        Handle
	Material MaterialID
}

type materialEntry struct {
	material Material
	meshes   Arena[*Mesh]
}

// Registry groups meshes under the material that draws them. Each
// frame it opens a single render pass over the current frame and hands
// every material its own batch, in material registration order.
//
// The zero value is a usable store. Use [NewRegistry] when the registry
// will also render, so the depth attachment exists.
type Registry struct {
	materials Arena[materialEntry]

	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView
}

// NewRegistry returns a registry with a depth attachment sized to the
// current viewport.
func NewRegistry(g *gpu.GPU) *Registry {
	r := &Registry{}
	r.createDepth(g)
	return r
}

// AddMaterial registers a material and creates its mesh batch.
func (r *Registry) AddMaterial(m Material) MaterialID {
	return MaterialID{h: r.materials.Insert(materialEntry{material: m})}
}

// AddMesh registers a mesh under the given material. It fails if the
// material was removed or never registered.
func (r *Registry) AddMesh(mesh *Mesh, material MaterialID) (MeshID, error) {
	entry, ok := r.materials.Get(material.h)
	if !ok {
		return MeshID{}, fmt.Errorf("model: add mesh: material not found")
	}
	return MeshID{h: entry.meshes.Insert(mesh), Material: material}, nil
}

// RemoveMesh drops a mesh from its material's batch and returns it so
// the caller can release the buffers. Stale ids return false.
func (r *Registry) RemoveMesh(id MeshID) (*Mesh, bool) {
	entry, ok := r.materials.Get(id.Material.h)
	if !ok {
		return nil, false
	}
	return entry.meshes.Remove(id.h)
}

// RemoveMaterial drops a material and its whole batch. Every MeshID
// registered under it goes stale. The removed meshes are returned so
// the caller can release them.
func (r *Registry) RemoveMaterial(id MaterialID) []*Mesh {
	entry, ok := r.materials.Remove(id.h)
	if !ok {
		return nil
	}
	meshes := make([]*Mesh, 0, entry.meshes.Len())
	for _, m := range entry.meshes.All() {
		meshes = append(meshes, *m)
	}
	return meshes
}

// Mesh returns the mesh for id, or false if either handle is stale.
func (r *Registry) Mesh(id MeshID) (*Mesh, bool) {
	entry, ok := r.materials.Get(id.Material.h)
	if !ok {
		return nil, false
	}
	m, ok := entry.meshes.Get(id.h)
	if !ok {
		return nil, false
	}
	return *m, true
}

// NumMaterials returns the number of registered materials.
func (r *Registry) NumMaterials() int { return r.materials.Len() }

// Batch iterates the meshes registered under one material, in
// registration order. An empty sequence is returned for stale ids.
func (r *Registry) Batch(id MaterialID) iter.Seq[*Mesh] {
	return func(yield func(*Mesh) bool) {
		entry, ok := r.materials.Get(id.h)
		if !ok {
			return
		}
		for _, m := range entry.meshes.All() {
			if !yield(*m) {
				return
			}
		}
	}
}

// Render opens one render pass over the frame and draws every
// material's batch. The color attachment is loaded, not cleared, so
// anything already drawn to the frame stays underneath. Depth is
// cleared to the far plane.
func (r *Registry) Render(g *gpu.GPU, frame *gpu.Frame, cam *camera.Uniform) {
	pass := frame.Encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Model renderpass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    frame.View,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
	defer pass.Release()

	for id, entry := range r.materials.All() {
		entry.material.Render(g, pass, cam, r.Batch(MaterialID{h: id}))
	}
	pass.End()
}

// OnResize recreates the depth attachment at the new viewport size.
// Call it whenever the surface is reconfigured.
func (r *Registry) OnResize(g *gpu.GPU) {
	r.releaseDepth()
	r.createDepth(g)
}

// Release frees the depth attachment. Meshes and materials are owned
// by the caller.
func (r *Registry) Release() {
	r.releaseDepth()
}

func (r *Registry) createDepth(g *gpu.GPU) {
	tex, err := g.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(g.ViewportSize.X),
			Height:             uint32(g.ViewportSize.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth32Float,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		panic(err)
	}
	r.depthTexture = tex
	r.depthView = view
}

func (r *Registry) releaseDepth() {
	if r.depthView != nil {
		r.depthView.Release()
		r.depthView = nil
	}
	if r.depthTexture != nil {
		r.depthTexture.Release()
		r.depthTexture = nil
	}
}
