// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu owns the WebGPU device, queue and presentable surface for
// one window, and hands out per-frame command recording state.
package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Debug enables verbose per-frame logging, e.g. of skipped frames.
var Debug = false

// GPU holds the WebGPU instance, adapter, device and queue, together
// with the surface for the window it renders to. All GPU resources in
// the rest of the engine are created through it. It is owned by exactly
// one goroutine; none of its methods are safe for concurrent use.
type GPU struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface

	// Format is the negotiated surface texture format: the first
	// sRGB format the surface supports, or its first format if none are.
	Format wgpu.TextureFormat

	// Capabilities as reported by the surface for the chosen adapter.
	Capabilities wgpu.SurfaceCapabilities

	// ViewportSize is the current size of the configured surface in
	// pixels. It only changes on a successful [GPU.Resize].
	ViewportSize image.Point

	// lastFrame is the time of the most recent Present.
	// presented distinguishes the zero time from "never presented".
	lastFrame time.Time
	presented bool

	vsync bool
}

// New creates the full WebGPU stack for the given window: surface,
// high-performance adapter, device with multi-draw-indirect support,
// negotiated surface format, and an initial surface configuration at
// the window's current framebuffer size. Any failure here is fatal:
// there is nothing the engine can do without a device, so New panics
// with a descriptive message rather than returning an error.
func New(window *glfw.Window) *GPU {
	g := &GPU{vsync: true}
	g.Instance = wgpu.CreateInstance(nil)
	g.Surface = g.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	if g.Surface == nil {
		panic("gpu: could not create surface for window")
	}

	adapter, err := g.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		CompatibleSurface:    g.Surface,
		ForceFallbackAdapter: false,
	})
	if err != nil {
		panic(fmt.Sprintf("gpu: could not acquire adapter: %v", err))
	}
	g.Adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "game-template device",
		RequiredFeatures: []wgpu.FeatureName{
			wgpu.NativeFeatureMultiDrawIndirect,
			wgpu.FeatureNameIndirectFirstInstance,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("gpu: could not acquire device: %v", err))
	}
	g.Device = device
	g.Queue = device.GetQueue()

	g.Capabilities = g.Surface.GetCapabilities(adapter)
	g.Format = preferredFormat(g.Capabilities.Formats)

	width, height := window.GetFramebufferSize()
	g.ViewportSize = image.Point{width, height}
	g.Resize(width, height)
	return g
}

// preferredFormat picks the first sRGB format, falling back to the
// first supported one.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGB(f) {
			return f
		}
	}
	return formats[0]
}

func isSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatBC1RGBAUnormSrgb, wgpu.TextureFormatBC2RGBAUnormSrgb,
		wgpu.TextureFormatBC3RGBAUnormSrgb, wgpu.TextureFormatBC7RGBAUnormSrgb:
		return true
	}
	return false
}

// Resize reconfigures the surface for the new window size and records
// it as the current viewport size. Zero or negative dimensions (e.g. a
// minimized window) leave the surface and the tracked size untouched;
// rendering resumes with the old configuration once the window has a
// real size again. Dependent resources (the registry's depth buffer)
// are not touched here: the owner must resize those itself.
func (g *GPU) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.Surface.Configure(g.Adapter, g.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      g.Format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: g.presentMode(),
		AlphaMode:   g.Capabilities.AlphaModes[0],
	})
	g.ViewportSize = image.Point{width, height}
}

// SetVSync selects the present mode used from the next Resize on:
// fifo when enabled, the lowest-latency supported mode otherwise. The
// surface is reconfigured immediately if it already has a size.
func (g *GPU) SetVSync(on bool) {
	if g.vsync == on {
		return
	}
	g.vsync = on
	g.Resize(g.ViewportSize.X, g.ViewportSize.Y)
}

func (g *GPU) presentMode() wgpu.PresentMode {
	if g.vsync {
		return wgpu.PresentModeFifo
	}
	for _, m := range g.Capabilities.PresentModes {
		if m != wgpu.PresentModeFifo {
			return m
		}
	}
	return g.Capabilities.PresentModes[0]
}

// NextFrame acquires the next presentable surface texture and opens a
// command encoder for it. It returns (nil, false) when no frame can be
// acquired this tick (swapchain outdated, surface lost, timeout...):
// the caller should simply skip rendering and try again next tick.
// Running out of device memory is not recoverable and panics.
func (g *GPU) NextFrame() (*Frame, bool) {
	surf, err := g.Surface.GetCurrentTexture()
	if err != nil {
		if isOutOfMemory(err) {
			panic(fmt.Sprintf("gpu: out of memory acquiring frame: %v", err))
		}
		if Debug {
			slog.Debug("gpu: skipping frame", "err", err)
		}
		return nil, false
	}
	view, err := surf.CreateView(nil)
	if err != nil {
		surf.Release()
		if Debug {
			slog.Debug("gpu: skipping frame", "err", err)
		}
		return nil, false
	}
	encoder, err := g.Device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surf.Release()
		if Debug {
			slog.Debug("gpu: skipping frame", "err", err)
		}
		return nil, false
	}
	return &Frame{View: view, Encoder: encoder, surface: surf}, true
}

func isOutOfMemory(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "out of memory")
}

// Present submits the frame's recorded commands, presents the surface
// texture and stamps the frame time used by [GPU.DT]. The frame is
// consumed: none of its fields may be used afterwards.
func (g *GPU) Present(f *Frame) {
	cmd, err := f.Encoder.Finish(nil)
	if err != nil {
		slog.Error("gpu: failed to finish command encoder", "err", err)
		f.release()
		return
	}
	g.Queue.Submit(cmd)
	cmd.Release()
	g.Surface.Present()
	f.release()
	g.markPresented(time.Now())
}

func (g *GPU) markPresented(t time.Time) {
	g.lastFrame = t
	g.presented = true
}

// DT returns the time elapsed since the last presented frame, or zero
// if no frame has been presented yet.
func (g *GPU) DT() time.Duration {
	if !g.presented {
		return 0
	}
	return time.Since(g.lastFrame)
}

// IsInit reports whether no frame has been presented yet. Renderers use
// this to lazily create one-time resources on the first frame.
func (g *GPU) IsInit() bool {
	return !g.presented
}

// Release frees the device-level objects. Call once, after all
// resources created from this GPU have been released.
func (g *GPU) Release() {
	if g.Device != nil {
		g.Device.Release()
		g.Device = nil
	}
	if g.Adapter != nil {
		g.Adapter.Release()
		g.Adapter = nil
	}
	if g.Surface != nil {
		g.Surface.Release()
		g.Surface = nil
	}
	if g.Instance != nil {
		g.Instance.Release()
		g.Instance = nil
	}
}
