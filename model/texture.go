// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Swiiz/game-template-go/gpu"
)

// DecodeError reports that texture bytes could not be decoded as an
// image. The caller decides whether a missing texture is fatal.
type DecodeError struct {
	Label string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("model: decode texture %q: %v", e.Label, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Texture is an sRGB image uploaded to the device together with its
// view and sampler.
type Texture struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
	Sampler *wgpu.Sampler
}

// DecodeRGBA decodes encoded image bytes into RGBA pixels. The image
// format must have been registered, e.g. with a blank import of
// image/png. Failures return a *DecodeError.
func DecodeRGBA(data []byte, label string) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Label: label, Err: err}
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	return rgba, nil
}

// TextureFromBytes decodes encoded image bytes and uploads them.
// Decode failures return a *DecodeError.
func TextureFromBytes(g *gpu.GPU, data []byte, label string) (*Texture, error) {
	rgba, err := DecodeRGBA(data, label)
	if err != nil {
		return nil, err
	}
	size := rgba.Bounds().Size()
	return uploadRGBA(g, rgba.Pix, size.X, size.Y, label), nil
}

// TextureFromImage uploads a decoded image.
func TextureFromImage(g *gpu.GPU, img image.Image, label string) *Texture {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}
	size := rgba.Bounds().Size()
	return uploadRGBA(g, rgba.Pix, size.X, size.Y, label)
}

// TextureFromColor uploads a 1x1 texture of a single color.
func TextureFromColor(g *gpu.GPU, c color.Color, label string) *Texture {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return uploadRGBA(g, []byte{rgba.R, rgba.G, rgba.B, rgba.A}, 1, 1, label)
}

func uploadRGBA(g *gpu.GPU, pix []byte, width, height int, label string) *Texture {
	tex, err := g.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	g.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(width) * 4,
			RowsPerImage: uint32(height),
		},
		&wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		panic(err)
	}
	sampler, err := g.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label + " sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}
	return &Texture{Texture: tex, View: view, Sampler: sampler}
}

// Release frees the texture, view and sampler.
func (t *Texture) Release() {
	t.Sampler.Release()
	t.View.Release()
	t.Texture.Release()
}

// TextureUniform binds a [Texture] for sampling in a fragment shader,
// with the view at binding 0 and the sampler at binding 1.
type TextureUniform struct {
	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

// NewTextureUniform creates the bind group layout and bind group for
// the given texture.
func NewTextureUniform(g *gpu.GPU, tex *Texture) *TextureUniform {
	layout, err := g.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "texture_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	bindGroup, err := g.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "texture_bind_group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tex.View},
			{Binding: 1, Sampler: tex.Sampler},
		},
	})
	if err != nil {
		layout.Release()
		panic(err)
	}
	return &TextureUniform{layout: layout, bindGroup: bindGroup}
}

// Layout returns the bind group layout, for pipeline creation.
func (u *TextureUniform) Layout() *wgpu.BindGroupLayout { return u.layout }

// BindGroup returns the bind group, for render passes.
func (u *TextureUniform) BindGroup() *wgpu.BindGroup { return u.bindGroup }

// Release frees the bind group and layout.
func (u *TextureUniform) Release() {
	u.bindGroup.Release()
	u.layout.Release()
}
