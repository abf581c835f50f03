package geometry

import (
	"math"
	"math/rand"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// ConstantMedium (Smoke) models an isotropic participating medium filling
// Boundary at uniform Density, using an Isotropic phase-function material.
//
// Unlike every other Hittable, its Hit draws one random number per call to
// decide whether the ray is scattered inside the volume. The Hittable
// interface carries no Sampler parameter, so a per-worker Sampler can't
// reach here; this draws from math/rand's package-level source instead,
// which is safe for concurrent use across render workers at the cost of
// per-seed reproducibility for scenes containing smoke.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
}

func NewConstantMedium(boundary Hittable, density float64, albedo core.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

func NewConstantMediumTexture(boundary Hittable, density float64, tex material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropicTexture(tex),
	}
}

func (cm *ConstantMedium) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	rec1, ok1 := cm.Boundary.Hit(ray, core.Universe)
	if !ok1 {
		return material.HitRecord{}, false
	}
	rec2, ok2 := cm.Boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)))
	if !ok2 {
		return material.HitRecord{}, false
	}

	t1 := math.Max(rec1.T, rayT.Min)
	t2 := math.Min(rec2.T, rayT.Max)
	if t1 >= t2 {
		return material.HitRecord{}, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := cm.NegInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := t1 + hitDistance/rayLength
	return material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  cm.PhaseFunction,
	}, true
}

func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.Boundary.BoundingBox()
}
