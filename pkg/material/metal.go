package material

import (
	"github.com/Jabolol/raytracer/pkg/core"
)

// Metal reflects incident rays about the surface normal, perturbed by a
// fuzz factor scaled random unit vector.
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // clamped to [0,1] at construction
}

func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(sampler.RandomUnitVector().Mul(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	ok := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, ok
}

func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Color {
	return core.Color{}
}
