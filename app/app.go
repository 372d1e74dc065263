// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app is the windowed shell: it owns the window, the GPU, the
// renderer and the fly camera, and runs the frame loop until the
// window closes.
package app

import (
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Swiiz/game-template-go/camera"
	"github.com/Swiiz/game-template-go/gpu"
	"github.com/Swiiz/game-template-go/input"
	"github.com/Swiiz/game-template-go/render"
)

func init() {
	// glfw event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Scene is the game hook driven by the frame loop. Update runs every
// tick before rendering; Render records the scene's draws after the
// camera has been uploaded and the model batches drawn. Use
// gpu.IsInit to create GPU resources lazily on the first frame.
type Scene interface {
	Update(a *App)
	Render(a *App, frame *gpu.Frame)
}

// App owns everything with the lifetime of the window.
type App struct {
	Settings Settings

	Window     *glfw.Window
	GPU        *gpu.GPU
	Renderer   *render.Renderer
	Camera     camera.Camera
	Controller *Controller
	Input      *input.Input
	Overlay    Overlay

	cursorGrabbed bool
	cursorDirty   bool
}

// New creates the window and the full GPU stack. Construction
// failures are fatal and panic.
func New(s Settings) *App {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}

	a := &App{
		Settings:   s,
		Window:     window,
		Camera:     camera.New(),
		Controller: NewController(),
		Input:      input.New(window),
		Overlay:    NullOverlay{},
	}
	a.Controller.Speed = s.Speed
	a.Controller.Sensitivity = s.Sensitivity

	a.GPU = gpu.New(window)
	a.GPU.SetVSync(s.VSync)
	a.Renderer = render.New(a.GPU)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.resize(width, height)
	})
	window.SetContentScaleCallback(func(_ *glfw.Window, _, _ float32) {
		// treated like a resize: reconfigure at the current
		// framebuffer size
		w, h := window.GetFramebufferSize()
		a.resize(w, h)
	})
	return a
}

func (a *App) resize(width, height int) {
	a.GPU.Resize(width, height)
	a.Renderer.OnResize(a.GPU)
	if gpu.Debug {
		slog.Debug("app: resized", "width", width, "height", height)
	}
}

// SetCursorGrab requests that the cursor be hidden and captured by
// the window, as expected during mouse look. The change is applied on
// the next tick of the frame loop.
func (a *App) SetCursorGrab(grab bool) {
	if a.cursorGrabbed == grab {
		return
	}
	a.cursorGrabbed = grab
	a.cursorDirty = true
}

// CursorGrabbed reports the currently requested cursor mode.
func (a *App) CursorGrabbed() bool { return a.cursorGrabbed }

func cursorMode(grabbed bool) int {
	if grabbed {
		return glfw.CursorDisabled
	}
	return glfw.CursorNormal
}

func (a *App) applyCursorMode() {
	if !a.cursorDirty {
		return
	}
	a.Window.SetInputMode(glfw.CursorMode, cursorMode(a.cursorGrabbed))
	a.cursorDirty = false
}

// Run drives the frame loop until the window is closed, then tears
// everything down. Input is finalized right after polling so the
// controller and scene read the deltas of the current tick.
func (a *App) Run(scene Scene) {
	defer a.release()

	for !a.Window.ShouldClose() {
		glfw.PollEvents()
		a.Input.Step()

		if !a.Overlay.HandleInput(a.Input) {
			a.Controller.HandleInput(a.Input, a.Settings.AdjustableSpeed)
			a.Controller.UpdateCamera(&a.Camera, a.GPU.DT())
		}
		scene.Update(a)
		a.applyCursorMode()

		frame, ok := a.GPU.NextFrame()
		if !ok {
			continue
		}
		a.Renderer.UpdateCamera(a.GPU, &a.Camera)
		a.Renderer.Render(a.GPU, frame)
		scene.Render(a, frame)
		a.Overlay.Render(a.GPU, frame)
		a.GPU.Present(frame)
	}
}

func (a *App) release() {
	a.Renderer.Release()
	a.GPU.Release()
	a.Window.Destroy()
	glfw.Terminate()
}
