package material

import (
	"github.com/Jabolol/raytracer/pkg/core"
)

// HitRecord carries the result of an intersection back up the call stack.
type HitRecord struct {
	Point     core.Vec3 // world-space hit location
	Normal    core.Vec3 // outward-facing, unit length
	T         float64   // ray parameter at hit
	U, V      float64   // surface parameters in [0,1]
	FrontFace bool      // whether the ray hit the outward side
	Material  Material
}

// SetFaceNormal flips outwardNormal against the incoming ray so Normal
// always points against the ray, recording which side was struck.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// ScatterResult is what a Material produces when a ray scatters.
type ScatterResult struct {
	Attenuation core.Color
	Scattered   core.Ray
}

// Material dispatches emission and scatter sampling for a hit surface.
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false if
	// the material absorbs (e.g. DiffuseLight never scatters).
	Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool)

	// Emitted returns the material's self-emission at (u,v,p); zero for
	// non-emitters.
	Emitted(u, v float64, p core.Vec3) core.Color
}

// Texture is a polymorphic RGB value source keyed by surface parameters
// and world point.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Color
}
