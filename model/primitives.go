// Copyright (c) 2025, The game-template-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"golang.org/x/exp/constraints"

	"github.com/Swiiz/game-template-go/gpu"
)

// CubeVertices returns the 24 vertices of a unit cube centered at the
// origin, four per face so every face gets its own texture coordinates.
func CubeVertices() []Vertex {
	return []Vertex{
		// front
		{Position: [3]float32{-0.5, -0.5, 0.5}, UV: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, 0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, 0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, 0.5}, UV: [2]float32{0, 1}},
		// back
		{Position: [3]float32{0.5, -0.5, -0.5}, UV: [2]float32{0, 0}},
		{Position: [3]float32{-0.5, -0.5, -0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, -0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, -0.5}, UV: [2]float32{0, 1}},
		// left
		{Position: [3]float32{-0.5, -0.5, -0.5}, UV: [2]float32{0, 0}},
		{Position: [3]float32{-0.5, -0.5, 0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, 0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, -0.5}, UV: [2]float32{0, 1}},
		// right
		{Position: [3]float32{0.5, -0.5, 0.5}, UV: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, -0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, -0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, 0.5}, UV: [2]float32{0, 1}},
		// top
		{Position: [3]float32{-0.5, 0.5, 0.5}, UV: [2]float32{0, 0}},
		{Position: [3]float32{0.5, 0.5, 0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, -0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, -0.5}, UV: [2]float32{0, 1}},
		// bottom
		{Position: [3]float32{-0.5, -0.5, -0.5}, UV: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, -0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{0.5, -0.5, 0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, -0.5, 0.5}, UV: [2]float32{0, 1}},
	}
}

// CubeIndices returns the 36 indices of the cube, two counter-clockwise
// triangles per face. With inwardFacing the winding of every triangle
// is reversed so the faces are visible from inside the cube.
func CubeIndices[I constraints.Integer](inwardFacing bool) []I {
	indices := make([]I, 0, 36)
	for face := I(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	if inwardFacing {
		for i := 0; i < len(indices); i += 3 {
			indices[i+1], indices[i+2] = indices[i+2], indices[i+1]
		}
	}
	return indices
}

// PlaneVertices returns a unit quad lying in the Y=0 plane, facing +Y.
func PlaneVertices() []Vertex {
	return []Vertex{
		{Position: [3]float32{-0.5, 0, -0.5}, UV: [2]float32{0, 1}},
		{Position: [3]float32{0.5, 0, -0.5}, UV: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0, 0.5}, UV: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0, 0.5}, UV: [2]float32{0, 0}},
	}
}

// PlaneIndices returns the two triangles of the quad.
func PlaneIndices[I constraints.Integer]() []I {
	return []I{0, 1, 2, 0, 2, 3}
}

// Cube uploads a unit cube mesh.
func Cube(g *gpu.GPU, inwardFacing bool) *Mesh {
	return NewMesh(g, CubeVertices(), CubeIndices[uint16](inwardFacing))
}

// Plane uploads a unit quad mesh.
func Plane(g *gpu.GPU) *Mesh {
	return NewMesh(g, PlaneVertices(), PlaneIndices[uint16]())
}
