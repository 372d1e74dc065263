// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/Swiiz/game-template-go/gpu"
	"github.com/Swiiz/game-template-go/input"
)

// Overlay is a debug or editor layer drawn on top of the scene. It
// sees input before the scene each tick and may consume it, and it
// renders last so it composites over everything already in the frame.
type Overlay interface {
	// HandleInput inspects this tick's input. Returning true stops the
	// controller and scene from seeing it.
	HandleInput(in input.State) (consumed bool)

	// Render records the overlay's draws into the frame, after the
	// scene has rendered.
	Render(g *gpu.GPU, frame *gpu.Frame)
}

// NullOverlay is the overlay used when no editor layer is attached,
// so the loop has a single code path.
type NullOverlay struct{}

func (NullOverlay) HandleInput(input.State) bool { return false }
func (NullOverlay) Render(*gpu.GPU, *gpu.Frame)  {}
