package geometry

import (
	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// NewBox returns the six axis-aligned quads forming the faces of the
// rectangular prism between corners a and b, wrapped in a Scene. Per the
// design, a box has no dedicated primitive type.
func NewBox(a, b core.Vec3, mat material.Material) *Scene {
	minP := core.NewVec3(minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z))
	maxP := core.NewVec3(maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	sides := NewScene()
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat))               // front
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Neg(), dy, mat))         // right
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Neg(), dy, mat))         // back
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat))               // left
	sides.Add(NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Neg(), mat))         // top
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat))               // bottom
	return sides
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
